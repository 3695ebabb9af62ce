package screen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (i item) Identifier() string { return i.ID }

func TestListLoad(t *testing.T) {
	l := NewList[item]()
	assert.Equal(t, Idle, l.State())

	err := l.Load(func() ([]item, error) {
		assert.Equal(t, Loading, l.State())
		return []item{{ID: "1"}, {ID: "2"}}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, Loaded, l.State())
	assert.Equal(t, 2, l.Len())
}

func TestListLoadFailureLeavesEmptyList(t *testing.T) {
	boom := errors.New("boom")
	l := NewList[item]()

	err := l.Load(func() ([]item, error) { return []item{{ID: "x"}}, boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, Failed, l.State())
	assert.Empty(t, l.Items())
	assert.ErrorIs(t, l.Err(), boom)

	// no recovery without a new mount
	assert.ErrorIs(t, l.Begin(), ErrTransition)
}

func TestListRemoveExactIdentifier(t *testing.T) {
	l := Restore([]item{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}, {ID: "12", Name: "c"}, {ID: "2", Name: "dup"}})

	removed, err := l.Remove("2")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, []item{{ID: "1", Name: "a"}, {ID: "12", Name: "c"}}, l.Items())
	assert.Equal(t, Loaded, l.State())

	removed, err = l.Remove("missing")
	require.NoError(t, err)
	assert.Zero(t, removed)
	assert.Equal(t, 2, l.Len())
}

func TestListRemoveRequiresLoaded(t *testing.T) {
	l := NewList[item]()
	_, err := l.Remove("1")
	assert.ErrorIs(t, err, ErrTransition)
}

func TestListItemsIsACopy(t *testing.T) {
	l := Restore([]item{{ID: "1"}})
	items := l.Items()
	items[0].ID = "changed"
	assert.Equal(t, "1", l.Items()[0].ID)
}
