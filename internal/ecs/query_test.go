package ecs

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sorted(ids []EntityID) []EntityID {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func TestQueryJoinAndIgnore(t *testing.T) {
	w := newTestWorld()
	both := w.CreateEntity(testPos{}, testVel{})
	onlyPos := w.CreateEntity(testPos{})
	tagged := w.CreateEntity(testPos{}, testVel{}, testTag{})

	q := FindAll[testPos](w)
	assert.ElementsMatch(t, []EntityID{both, onlyPos, tagged}, q.Entities())
	assert.ElementsMatch(t, []EntityID{both, tagged}, q.Join(testVel{}.Type()).Entities())
	assert.ElementsMatch(t, []EntityID{both},
		q.Join(testVel{}.Type()).Ignore(testTag{}.Type()).Entities())
}

func TestQueryFiltersAreImmutable(t *testing.T) {
	w := newTestWorld()
	w.CreateEntity(testPos{})
	w.CreateEntity(testPos{}, testVel{})
	w.CreateEntity(testPos{}, testTag{})

	base := FindAll[testPos](w).Join(testPos{}.Type())
	withVel := base.Join(testVel{}.Type())
	withTag := base.Join(testTag{}.Type())

	assert.Equal(t, 3, base.Count())
	assert.Equal(t, 1, withVel.Count())
	assert.Equal(t, 1, withTag.Count())
}

func TestEachDeliversDeclaredTypesInOrder(t *testing.T) {
	w := newTestWorld()
	id := w.CreateEntity(testTag{}, testPos{X: 1, Y: 2}, testVel{X: 3, Y: 4})
	w.CreateEntity(testTag{}, testPos{X: 9})

	visits := 0
	Each2(FindAll[testTag](w), func(e EntityID, p *testPos, v *testVel) {
		visits++
		assert.Equal(t, id, e)
		assert.Equal(t, testPos{X: 1, Y: 2}, *p)
		assert.Equal(t, testVel{X: 3, Y: 4}, *v)
		p.X += v.X
	})
	require.Equal(t, 1, visits)
	assert.Equal(t, 4.0, Get[testPos](w, id).X, "writes through the delivered pointer must persist")
}

func TestEach4(t *testing.T) {
	w := newTestWorld()
	w.CreateEntity(testTag{}, otherTag{}, testPos{}, testVel{})
	w.CreateEntity(testTag{}, testPos{}, testVel{})

	n := 0
	Each4(FindAll[testTag](w), func(EntityID, *otherTag, *testPos, *testVel, *testTag) { n++ })
	assert.Equal(t, 1, n)
}

func TestMutatingForEachSurvivesDeletingVisitedEntity(t *testing.T) {
	w := newTestWorld()
	var all []EntityID
	for i := 0; i < 8; i++ {
		all = append(all, w.CreateEntity(testTag{}, testPos{X: float64(i)}))
	}

	var visited []EntityID
	MutatingEach1(FindAll[testTag](w), func(id EntityID, _ *testPos) {
		visited = append(visited, id)
		w.DeleteEntity(id)
	})

	assert.Equal(t, all, sorted(visited), "every entity visited exactly once")
	assert.Equal(t, 0, FindAll[testTag](w).Count())
}

func TestMutatingForEachSkipsEntitiesDeletedEarlier(t *testing.T) {
	w := newTestWorld()
	for i := 0; i < 6; i++ {
		w.CreateEntity(testTag{})
	}

	seen := map[EntityID]int{}
	FindAll[testTag](w).MutatingForEach(func(id EntityID) {
		seen[id]++
		// Delete a neighbour that has not been visited yet.
		w.DeleteEntity(id ^ 1)
	})

	assert.Len(t, seen, 3)
	for id, n := range seen {
		assert.Equal(t, 1, n, "entity %d visited %d times", id, n)
		assert.NotContains(t, seen, id^1)
	}
}

func TestMutatingForEachIgnoresEntitiesCreatedDuringIteration(t *testing.T) {
	w := newTestWorld()
	w.CreateEntity(testTag{})
	w.CreateEntity(testTag{})

	visits := 0
	FindAll[testTag](w).MutatingForEach(func(EntityID) {
		visits++
		w.CreateEntity(testTag{})
	})

	assert.Equal(t, 2, visits)
	assert.Equal(t, 4, FindAll[testTag](w).Count())
}

func TestStoreSwapRemoveKeepsIndex(t *testing.T) {
	s := NewStore[testPos]()
	for i := 0; i < 5; i++ {
		s.Insert(EntityID(i), testPos{X: float64(i)})
	}
	s.Remove(1)
	s.Remove(4)
	s.Remove(4)

	require.Equal(t, 3, s.Len())
	for _, id := range []EntityID{0, 2, 3} {
		p, ok := s.Lookup(id)
		require.True(t, ok, "entity %d lost", id)
		assert.Equal(t, float64(id), p.X)
	}
	assert.ElementsMatch(t, []EntityID{0, 2, 3}, s.Entities())
}
