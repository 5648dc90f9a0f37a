package game

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"brickout/internal/system"
)

// Action is a player command decoded from a key event.
type Action uint8

const (
	ActionNone Action = iota
	ActionLeft
	ActionRight
	ActionLaunch
	ActionPause
	ActionQuit
)

// keyToAction maps a tcell key event to a game Action.
func keyToAction(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyLeft:
		return ActionLeft
	case tcell.KeyRight:
		return ActionRight
	case tcell.KeyEnter:
		return ActionLaunch
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	switch ev.Rune() {
	case 'h', 'H', 'a', 'A':
		return ActionLeft
	case 'l', 'L', 'd', 'D':
		return ActionRight
	case ' ':
		return ActionLaunch
	case 'p', 'P':
		return ActionPause
	case 'q', 'Q':
		return ActionQuit
	}
	return ActionNone
}

// Keyboard turns key presses into held-key state. Terminals report presses
// and auto-repeats but no releases, so a key stays held for a hold window
// after its last press.
type Keyboard struct {
	mu    sync.Mutex
	clock system.Clock
	hold  time.Duration
	last  map[system.Key]time.Time
}

func NewKeyboard(clock system.Clock, hold time.Duration) *Keyboard {
	return &Keyboard{clock: clock, hold: hold, last: make(map[system.Key]time.Time)}
}

// Press marks k as held from now. Pressing one direction releases the
// other.
func (k *Keyboard) Press(key system.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	switch key {
	case system.KeyLeft:
		delete(k.last, system.KeyRight)
	case system.KeyRight:
		delete(k.last, system.KeyLeft)
	}
	k.last[key] = k.clock.Now()
}

// Release forgets any press of key.
func (k *Keyboard) Release(key system.Key) {
	k.mu.Lock()
	defer k.mu.Unlock()
	delete(k.last, key)
}

// Held implements system.Keys.
func (k *Keyboard) Held(key system.Key) bool {
	k.mu.Lock()
	defer k.mu.Unlock()
	t, ok := k.last[key]
	return ok && k.clock.Now().Sub(t) < k.hold
}
