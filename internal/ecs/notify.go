package ecs

// Listener is a component whose value is a callback for events of type E.
type Listener[E any] interface {
	Component
	Handle(E)
}

// Notify delivers ev to every entity holding listener type L. Listeners run
// in table order and may mutate the world freely, including removing their
// own listener component or clearing the world; listeners removed by an
// earlier callback are skipped.
func Notify[L Listener[E], E any](w *World, ev E) {
	MutatingEach1(FindAll[L](w), func(_ EntityID, l *L) {
		(*l).Handle(ev)
	})
}
