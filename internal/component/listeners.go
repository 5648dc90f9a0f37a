package component

import "brickout/internal/ecs"

const (
	CBallPaddleListener    ecs.ComponentType = 20
	CBounceListener        ecs.ComponentType = 21
	CPaddleWallListener    ecs.ComponentType = 22
	CPaddlePowerUpListener ecs.ComponentType = 23
	CGameOverListener      ecs.ComponentType = 24
)

// Listener components carry a callback and are delivered events through
// ecs.Notify. Any number of entities may hold the same listener type.

type BallPaddleListener struct{ Fn func(PaddleHit) }

func (BallPaddleListener) Type() ecs.ComponentType { return CBallPaddleListener }
func (l BallPaddleListener) Handle(e PaddleHit)    { l.Fn(e) }

type BounceListener struct{ Fn func(BounceHit) }

func (BounceListener) Type() ecs.ComponentType { return CBounceListener }
func (l BounceListener) Handle(e BounceHit)    { l.Fn(e) }

type PaddleWallListener struct{ Fn func(PaddleWallHit) }

func (PaddleWallListener) Type() ecs.ComponentType { return CPaddleWallListener }
func (l PaddleWallListener) Handle(e PaddleWallHit) { l.Fn(e) }

type PaddlePowerUpListener struct{ Fn func(PowerUpHit) }

func (PaddlePowerUpListener) Type() ecs.ComponentType { return CPaddlePowerUpListener }
func (l PaddlePowerUpListener) Handle(e PowerUpHit)  { l.Fn(e) }

type GameOverListener struct{ Fn func(GameOver) }

func (GameOverListener) Type() ecs.ComponentType { return CGameOverListener }
func (l GameOverListener) Handle(e GameOver)      { l.Fn(e) }
