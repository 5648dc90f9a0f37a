package ecs

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stub components used only in tests
type testPos struct{ X, Y float64 }

func (testPos) Type() ComponentType { return 1 }

type testVel struct{ X, Y float64 }

func (testVel) Type() ComponentType { return 2 }

type testTag struct{}

func (testTag) Type() ComponentType { return 3 }

type otherTag struct{}

func (otherTag) Type() ComponentType { return 4 }

type testListener struct{ Fn func(int) }

func (testListener) Type() ComponentType { return 5 }
func (l testListener) Handle(n int)      { l.Fn(n) }

func newTestWorld() *World {
	s := NewSchema()
	Declare[testPos](s)
	Declare[testVel](s)
	Declare[testTag](s)
	Declare[otherTag](s)
	Declare[testListener](s)
	return NewWorld(s)
}

func TestCreateEntityIssuesSequentialIDs(t *testing.T) {
	w := newTestWorld()
	for want := EntityID(0); want < 5; want++ {
		if got := w.CreateEntity(); got != want {
			t.Fatalf("CreateEntity() = %d, want %d", got, want)
		}
	}
}

func TestCreateEntityAttachesComponents(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity(testPos{X: 1, Y: 2}, &testVel{X: 3}, testTag{})

	require.True(t, Has[testPos](w, id))
	require.True(t, Has[testVel](w, id))
	require.True(t, Has[testTag](w, id))
	assert.Equal(t, testPos{X: 1, Y: 2}, *Get[testPos](w, id))
	assert.Equal(t, testVel{X: 3}, *Get[testVel](w, id))
}

func TestAttachAcceptsValuesAndPointers(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity()

	w.Attach(id, &testPos{X: 5})
	w.Attach(id, testVel{Y: 7})

	assert.Equal(t, testPos{X: 5}, *Get[testPos](w, id))
	assert.Equal(t, testVel{Y: 7}, *Get[testVel](w, id))
}

func TestAddRemoveClosure(t *testing.T) {
	w := newTestWorld()
	ids := []EntityID{w.CreateEntity(), w.CreateEntity(), w.CreateEntity()}
	for _, id := range ids {
		Add(w, id, testTag{})
	}
	Remove[testTag](w, ids[1])

	assert.False(t, Has[testTag](w, ids[1]))
	FindAll[testTag](w).ForEach(func(id EntityID) {
		assert.NotEqual(t, ids[1], id, "removed entity yielded by FindAll")
	})
	assert.Equal(t, 2, FindAll[testTag](w).Count())
}

func TestRemoveNonexistentIsNoop(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity()
	Remove[testPos](w, id)
	w.RemoveType(id, testVel{}.Type())
	assert.False(t, Has[testPos](w, id))
}

func TestAddOverwritesExistingValue(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity(testPos{X: 1})
	p := Get[testPos](w, id)

	Add(w, id, testPos{X: 2})
	assert.Equal(t, 2.0, Get[testPos](w, id).X)
	assert.Equal(t, 1, w.Count(testPos{}.Type()))

	Replace(w, id, testPos{X: 3})
	assert.Equal(t, 3.0, p.X, "pointer from before the overwrite should see the new value")
}

func TestDeleteEntityRemovesEveryComponent(t *testing.T) {
	w := newTestWorld()
	keep := w.CreateEntity(testPos{}, testTag{})
	id := w.CreateEntity(testPos{}, testVel{}, testTag{}, otherTag{}, testListener{})

	w.DeleteEntity(id)

	for ct := ComponentType(1); ct <= 5; ct++ {
		if w.Has(id, ct) {
			t.Fatalf("entity still has component type %d after DeleteEntity", ct)
		}
	}
	assert.True(t, Has[testPos](w, keep))
	assert.True(t, Has[testTag](w, keep))
}

func TestClearResetsIDsAndTables(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 4; i++ {
		w.CreateEntity(testPos{}, testTag{})
	}
	w.Clear()

	assert.Equal(t, EntityID(0), w.NextEntity())
	assert.Equal(t, 0, FindAll[testPos](w).Count())
	assert.Equal(t, 0, FindAll[testTag](w).Count())
	assert.Equal(t, EntityID(0), w.CreateEntity())
}

func TestGetMissingPanicsWithDiagnostic(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity()

	defer func() {
		r := recover()
		require.NotNil(t, r, "Get on a missing component must panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		var missing *MissingComponentError
		require.True(t, errors.As(err, &missing))
		assert.Equal(t, id, missing.Entity)
		assert.Equal(t, testVel{}.Type(), missing.Type)
		assert.Contains(t, err.Error(), "testVel")
	}()
	Get[testVel](w, id)
}

func TestLookupMissing(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity()
	v, ok := Lookup[testVel](w, id)
	assert.False(t, ok)
	assert.Nil(t, v)
}

func TestUnique(t *testing.T) {
	w := newTestWorld()
	assert.Equal(t, NilEntity, Unique[testTag](w))
	_, err := UniqueStrict[testTag](w)
	assert.ErrorIs(t, err, ErrNotUnique)

	w.CreateEntity(testPos{})
	only := w.CreateEntity(testTag{})
	assert.Equal(t, only, Unique[testTag](w))
	got, err := UniqueStrict[testTag](w)
	require.NoError(t, err)
	assert.Equal(t, only, got)

	w.CreateEntity(testTag{})
	assert.Equal(t, only, Unique[testTag](w), "first stored holder wins")
	_, err = UniqueStrict[testTag](w)
	assert.ErrorIs(t, err, ErrNotUnique)
}

func TestAttachUndeclaredPanics(t *testing.T) {
	w := NewWorld(NewSchema())
	id := w.CreateEntity()
	assert.Panics(t, func() { w.Attach(id, testTag{}) })

	// Typed access declares the table lazily.
	Add(w, id, testTag{})
	assert.True(t, Has[testTag](w, id))
}

func TestNotifyReachesEveryListener(t *testing.T) {
	w := newTestWorld()
	var got []int
	w.CreateEntity(testListener{Fn: func(n int) { got = append(got, n) }})
	w.CreateEntity(testPos{})
	w.CreateEntity(testListener{Fn: func(n int) { got = append(got, n*10) }})

	Notify[testListener](w, 7)

	assert.ElementsMatch(t, []int{7, 70}, got)
}

func TestNotifyListenerMayRemoveItself(t *testing.T) {
	w := newTestWorld()
	calls := 0
	var self EntityID
	self = w.CreateEntity(testListener{Fn: func(int) {
		calls++
		Remove[testListener](w, self)
	}})
	w.CreateEntity(testListener{Fn: func(int) { calls++ }})

	Notify[testListener](w, 1)
	Notify[testListener](w, 1)

	assert.Equal(t, 3, calls)
}

func TestNotifyListenerClearingWorldStopsDelivery(t *testing.T) {
	w := newTestWorld()
	calls := 0
	for i := 0; i < 3; i++ {
		w.CreateEntity(testListener{Fn: func(int) {
			calls++
			w.Clear()
		}})
	}

	Notify[testListener](w, 0)

	assert.Equal(t, 1, calls)
	assert.Equal(t, EntityID(0), w.NextEntity())
}
