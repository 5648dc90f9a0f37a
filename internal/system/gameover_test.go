package system

import (
	"testing"

	"brickout/internal/component"
	"brickout/internal/ecs"
	"brickout/internal/physics"
)

func TestCheckGameOverDeletesFallenBalls(t *testing.T) {
	w := component.NewWorld()
	rec := record(w)
	fallen := addBall(w, physics.Vec{X: 100, Y: 600}, physics.Vec{Y: 100})
	alive := addBall(w, physics.Vec{X: 100, Y: 599}, physics.Vec{Y: 100})

	if CheckGameOver(w, 600) {
		t.Fatal("one ball still in play")
	}
	if w.Has(fallen, component.CTagBall) {
		t.Error("ball at the bottom edge must be deleted")
	}
	if !w.Has(alive, component.CTagBall) {
		t.Error("ball above the edge must stay")
	}
	if rec.over != 0 {
		t.Fatalf("game over notified with a ball in play")
	}
}

func TestCheckGameOverNotifiesOnce(t *testing.T) {
	w := component.NewWorld()
	rec := record(w)
	addBall(w, physics.Vec{X: 100, Y: 650}, physics.Vec{})
	addBall(w, physics.Vec{X: 200, Y: 700}, physics.Vec{})

	if !CheckGameOver(w, 600) {
		t.Fatal("every ball fell; want game over")
	}
	if rec.over != 1 {
		t.Fatalf("game over notifications = %d; want 1", rec.over)
	}
	if n := ecs.FindAll[component.TagBall](w).Count(); n != 0 {
		t.Fatalf("balls left = %d; want 0", n)
	}
}

func TestCullPowerUps(t *testing.T) {
	w := component.NewWorld()
	gone := addPowerUp(w, physics.Vec{X: 10, Y: 600})
	kept := addPowerUp(w, physics.Vec{X: 10, Y: 300})

	if n := CullPowerUps(w, 600); n != 1 {
		t.Fatalf("culled %d; want 1", n)
	}
	if w.Has(gone, component.CTagPowerUp) || !w.Has(kept, component.CTagPowerUp) {
		t.Fatal("only the power-up below the window should be culled")
	}
}

func TestBricksLeft(t *testing.T) {
	w := component.NewWorld()
	addBrick(w, physics.Vec{})
	addBrick(w, physics.Vec{X: 50})
	addBouncer(w, physics.Vec{X: 100}, 10, 10)
	if n := BricksLeft(w); n != 2 {
		t.Fatalf("BricksLeft = %d; want 2", n)
	}
}
