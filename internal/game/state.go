package game

import "fmt"

// State is one mode of the game. Machine calls Enter when the state
// becomes current and Exit when it stops being current.
type State interface {
	Enter()
	Exit()
	Update(dt float64)
}

// Machine is a stack of named states; only the top one is updated.
type Machine struct {
	registered map[string]State
	stack      []string
}

func NewMachine() *Machine {
	return &Machine{registered: make(map[string]State)}
}

// Register makes s available under name.
func (m *Machine) Register(name string, s State) {
	m.registered[name] = s
}

// Current returns the name of the top state, or "" when the stack is empty.
func (m *Machine) Current() string {
	if len(m.stack) == 0 {
		return ""
	}
	return m.stack[len(m.stack)-1]
}

func (m *Machine) top() State {
	if len(m.stack) == 0 {
		return nil
	}
	return m.registered[m.Current()]
}

// Push exits the current state and enters name on top of it.
func (m *Machine) Push(name string) error {
	next, ok := m.registered[name]
	if !ok {
		return fmt.Errorf("push state %q: not registered", name)
	}
	if cur := m.top(); cur != nil {
		cur.Exit()
	}
	m.stack = append(m.stack, name)
	next.Enter()
	return nil
}

// Pop exits the current state and re-enters the one beneath it.
func (m *Machine) Pop() {
	cur := m.top()
	if cur == nil {
		return
	}
	cur.Exit()
	m.stack = m.stack[:len(m.stack)-1]
	if prev := m.top(); prev != nil {
		prev.Enter()
	}
}

// Switch replaces the current state with name, keeping the stack depth.
func (m *Machine) Switch(name string) error {
	next, ok := m.registered[name]
	if !ok {
		return fmt.Errorf("switch state %q: not registered", name)
	}
	if cur := m.top(); cur != nil {
		cur.Exit()
		m.stack = m.stack[:len(m.stack)-1]
	}
	m.stack = append(m.stack, name)
	next.Enter()
	return nil
}

// Update advances the current state by dt seconds.
func (m *Machine) Update(dt float64) {
	if cur := m.top(); cur != nil {
		cur.Update(dt)
	}
}

// Effects collects the cleanups of setup work a state performs on Enter,
// so Exit can undo all of it in order.
type Effects struct {
	cleanups []func()
}

// Use runs setup now and keeps the cleanup it returns.
func (e *Effects) Use(setup func() func()) {
	if undo := setup(); undo != nil {
		e.cleanups = append(e.cleanups, undo)
	}
}

// Cleanup runs every pending cleanup, first registered first.
func (e *Effects) Cleanup() {
	for _, undo := range e.cleanups {
		undo()
	}
	e.cleanups = nil
}
