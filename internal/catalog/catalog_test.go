package catalog

import (
	"strings"
	"testing"

	"github.com/jacksmith/stores/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(c *Catalog) []string {
	var out []string
	for s := range c.All() {
		out = append(out, s.Name)
	}
	return out
}

func named(ns ...string) []model.Store {
	var out []model.Store
	for _, n := range ns {
		out = append(out, model.NewStore(n, "", "", ""))
	}
	return out
}

func TestNew(t *testing.T) {
	t.Run("empty catalog", func(t *testing.T) {
		c := New()
		assert.Equal(t, 0, c.Len())
		assert.Empty(t, names(c))
	})

	t.Run("keeps given order", func(t *testing.T) {
		c := New(named("C", "A", "B")...)
		assert.Equal(t, []string{"C", "A", "B"}, names(c))
	})

	t.Run("does not alias the input slice", func(t *testing.T) {
		in := named("A", "B")
		c := New(in...)
		in[0].Name = "changed"
		assert.Equal(t, []string{"A", "B"}, names(c))
	})
}

func TestAdd(t *testing.T) {
	c := New()
	c.Add(model.NewStore("First", "", "", ""))
	c.Add(model.NewStore("Second", "", "", ""))
	c.Add(model.NewStore("First", "", "", ""))

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"First", "Second", "First"}, names(c))
}

func TestRemoveWhere(t *testing.T) {
	t.Run("removes all matches and keeps survivor order", func(t *testing.T) {
		c := New(named("A", "x1", "B", "x2", "C")...)

		removed := c.RemoveWhere(func(s model.Store) bool {
			return strings.HasPrefix(s.Name, "x")
		})

		assert.Equal(t, 2, removed)
		assert.Equal(t, []string{"A", "B", "C"}, names(c))
	})

	t.Run("no match is not an error", func(t *testing.T) {
		c := New(named("A", "B")...)

		removed := c.RemoveWhere(func(s model.Store) bool { return false })

		assert.Equal(t, 0, removed)
		assert.Equal(t, []string{"A", "B"}, names(c))
	})

	t.Run("remove everything", func(t *testing.T) {
		c := New(named("A", "B")...)
		c.RemoveWhere(func(s model.Store) bool { return true })
		assert.Equal(t, 0, c.Len())
	})

	t.Run("on empty catalog", func(t *testing.T) {
		c := New()
		assert.Equal(t, 0, c.RemoveWhere(func(s model.Store) bool { return true }))
	})
}

func TestSortBy(t *testing.T) {
	byName := func(a, b model.Store) int { return strings.Compare(a.Name, b.Name) }

	t.Run("sorts in place", func(t *testing.T) {
		c := New(named("Charlie", "Alpha", "Bravo")...)
		c.SortBy(byName)
		assert.Equal(t, []string{"Alpha", "Bravo", "Charlie"}, names(c))
	})

	t.Run("sorting twice equals sorting once", func(t *testing.T) {
		c := New(named("d", "b", "a", "c")...)
		c.SortBy(byName)
		once := names(c)
		c.SortBy(byName)
		assert.Equal(t, once, names(c))
	})
}

func TestAll(t *testing.T) {
	t.Run("restartable and reflects mutation", func(t *testing.T) {
		c := New(named("A")...)
		assert.Equal(t, []string{"A"}, names(c))

		c.Add(model.NewStore("B", "", "", ""))
		assert.Equal(t, []string{"A", "B"}, names(c))
		assert.Equal(t, []string{"A", "B"}, names(c))
	})

	t.Run("early break", func(t *testing.T) {
		c := New(named("A", "B", "C")...)
		var seen []string
		for s := range c.All() {
			seen = append(seen, s.Name)
			if len(seen) == 2 {
				break
			}
		}
		assert.Equal(t, []string{"A", "B"}, seen)
	})
}

func TestStores(t *testing.T) {
	c := New(named("A", "B")...)

	got := c.Stores()
	require.Len(t, got, 2)

	got[0].Name = "changed"
	assert.Equal(t, []string{"A", "B"}, names(c))
}
