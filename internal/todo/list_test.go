package todo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestList(t *testing.T, titles ...string) *List {
	t.Helper()
	l := NewList("Today")
	for _, title := range titles {
		require.NoError(t, l.Add(NewItem(title)))
	}
	return l
}

func titlesOf(l *List) []string {
	var out []string
	for _, it := range l.All() {
		out = append(out, it.Title())
	}
	return out
}

func TestListAdd(t *testing.T) {
	l := NewList("Today")
	assert.Equal(t, 0, l.Size())

	a := NewItem("a")
	require.NoError(t, l.Add(a))
	require.NoError(t, l.Add(NewItem("b")))
	require.NoError(t, l.Add(a))

	assert.Equal(t, 3, l.Size())
	assert.Equal(t, []string{"a", "b", "a"}, titlesOf(l), "order kept, duplicates allowed")

	last, err := l.Last()
	require.NoError(t, err)
	assert.Same(t, a, last)
}

func TestListAddNil(t *testing.T) {
	l := newTestList(t, "a")

	err := l.Add(nil)

	assert.ErrorIs(t, err, ErrTypeMismatch)
	assert.Equal(t, 1, l.Size(), "failed add must not change the list")
}

func TestListItemAt(t *testing.T) {
	l := newTestList(t, "a", "b", "c")

	tests := []struct {
		name    string
		index   int
		want    string
		wantErr bool
	}{
		{name: "first", index: 0, want: "a"},
		{name: "middle", index: 1, want: "b"},
		{name: "last", index: 2, want: "c"},
		{name: "negative", index: -1, wantErr: true},
		{name: "one past end", index: 3, wantErr: true},
		{name: "far past end", index: 100, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it, err := l.ItemAt(tt.index)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrIndexOutOfRange)
				assert.Nil(t, it)

				var ie *IndexError
				require.True(t, errors.As(err, &ie))
				assert.Equal(t, tt.index, ie.Index)
				assert.Equal(t, 3, ie.Size)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, it.Title())
		})
	}
}

func TestListItemAtStaleIndex(t *testing.T) {
	l := newTestList(t, "a", "b")
	_, ok := l.RemoveBack()
	require.True(t, ok)

	_, err := l.ItemAt(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestListMarkAt(t *testing.T) {
	l := newTestList(t, "a", "b")

	require.NoError(t, l.MarkDoneAt(1))
	b, _ := l.ItemAt(1)
	assert.True(t, b.IsDone())

	require.NoError(t, l.MarkUndoneAt(1))
	assert.False(t, b.IsDone())

	assert.ErrorIs(t, l.MarkDoneAt(2), ErrIndexOutOfRange)
	assert.ErrorIs(t, l.MarkUndoneAt(-1), ErrIndexOutOfRange)
	for _, it := range l.All() {
		assert.False(t, it.IsDone(), "failed mark must not touch any item")
	}
}

func TestListIsAllDone(t *testing.T) {
	l := NewList("Today")
	assert.True(t, l.IsAllDone(), "empty list is vacuously done")

	require.NoError(t, l.Add(NewItem("a")))
	assert.False(t, l.IsAllDone())
	assert.False(t, l.IsDone())

	require.NoError(t, l.MarkDoneAt(0))
	assert.True(t, l.IsAllDone())
	assert.True(t, l.IsDone())
}

func TestListFirstLastEmpty(t *testing.T) {
	l := NewList("Today")

	first, err := l.First()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Nil(t, first)

	last, err := l.Last()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Nil(t, last)
}

func TestListFirstLast(t *testing.T) {
	l := newTestList(t, "a", "b", "c")

	first, err := l.First()
	require.NoError(t, err)
	assert.Equal(t, "a", first.Title())

	last, err := l.Last()
	require.NoError(t, err)
	assert.Equal(t, "c", last.Title())
}

func TestListRemoveFrontBack(t *testing.T) {
	l := newTestList(t, "a", "b", "c")

	front, ok := l.RemoveFront()
	require.True(t, ok)
	assert.Equal(t, "a", front.Title())

	back, ok := l.RemoveBack()
	require.True(t, ok)
	assert.Equal(t, "c", back.Title())

	assert.Equal(t, []string{"b"}, titlesOf(l))

	_, ok = l.RemoveFront()
	require.True(t, ok)

	it, ok := l.RemoveFront()
	assert.False(t, ok)
	assert.Nil(t, it)
	it, ok = l.RemoveBack()
	assert.False(t, ok)
	assert.Nil(t, it)
	assert.Equal(t, 0, l.Size())
}

func TestListRemoveAt(t *testing.T) {
	l := newTestList(t, "a", "b", "c")
	a, _ := l.ItemAt(0)

	removed, err := l.RemoveAt(0)
	require.NoError(t, err)
	assert.Same(t, a, removed)
	assert.Equal(t, 2, l.Size())

	first, err := l.ItemAt(0)
	require.NoError(t, err)
	assert.Equal(t, "b", first.Title(), "former second item moves to index 0")

	_, err = l.RemoveAt(2)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, []string{"b", "c"}, titlesOf(l))
}

func TestListSizeTracksAddsAndRemovals(t *testing.T) {
	l := NewList("Today")
	adds, removals := 0, 0
	for i := 0; i < 5; i++ {
		require.NoError(t, l.Add(NewItem("x")))
		adds++
	}
	if _, ok := l.RemoveFront(); ok {
		removals++
	}
	if _, err := l.RemoveAt(1); err == nil {
		removals++
	}
	if _, err := l.RemoveAt(10); err == nil {
		removals++
	}
	if _, ok := l.RemoveBack(); ok {
		removals++
	}
	assert.Equal(t, adds-removals, l.Size())
}

func TestListString(t *testing.T) {
	l := newTestList(t, "Buy milk", "Clean room")
	require.NoError(t, l.MarkDoneAt(0))

	assert.Equal(t, "---- Today ----\n[X] Buy milk\n[ ] Clean room", l.String())
	assert.Equal(t, "---- Empty ----", NewList("Empty").String())
}

func TestListForEach(t *testing.T) {
	l := newTestList(t, "a", "b", "c")

	var seen []string
	err := l.ForEach(func(it *Item) error {
		seen = append(seen, it.Title())
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, seen)
}

func TestListForEachStopsOnError(t *testing.T) {
	l := newTestList(t, "a", "b", "c")
	boom := errors.New("boom")

	var seen []string
	err := l.ForEach(func(it *Item) error {
		seen = append(seen, it.Title())
		if it.Title() == "b" {
			return boom
		}
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, seen)
	assert.Equal(t, []string{"a", "b", "c"}, titlesOf(l), "list intact after visitor error")
}

func TestListForEachVisitorPanics(t *testing.T) {
	l := newTestList(t, "a", "b")

	assert.Panics(t, func() {
		_ = l.ForEach(func(*Item) error { panic("visitor") })
	})
	assert.Equal(t, []string{"a", "b"}, titlesOf(l))
}

func TestListForEachVisitorMutates(t *testing.T) {
	l := newTestList(t, "a", "b")

	calls := 0
	err := l.ForEach(func(*Item) error {
		calls++
		return l.Add(NewItem("more"))
	})

	require.NoError(t, err)
	assert.Equal(t, 2, calls, "items added during iteration are not visited")
	assert.Equal(t, 4, l.Size())
}

func TestListFilter(t *testing.T) {
	l := newTestList(t, "a", "b", "c")
	require.NoError(t, l.MarkDoneAt(0))
	require.NoError(t, l.MarkDoneAt(2))

	done := l.Filter((*Item).IsDone)

	assert.Equal(t, "Today", done.Title())
	assert.Equal(t, []string{"a", "c"}, titlesOf(done))
	assert.Equal(t, 3, l.Size(), "filter does not mutate the source")

	none := l.Filter(func(*Item) bool { return false })
	assert.Equal(t, 0, none.Size())
}

func TestListFilterSharesItems(t *testing.T) {
	l := newTestList(t, "a", "b")

	all := l.Filter(func(*Item) bool { return true })
	require.NoError(t, all.MarkDoneAt(1))

	b, _ := l.ItemAt(1)
	assert.True(t, b.IsDone(), "mutation through the filtered list is visible in the source")

	_, err := all.RemoveAt(0)
	require.NoError(t, err)
	assert.Equal(t, 2, l.Size(), "removal from the filtered list leaves the source alone")
}

func TestListItemsIsCopy(t *testing.T) {
	l := newTestList(t, "a", "b")

	items := l.Items()
	items[0] = NewItem("z")

	first, _ := l.First()
	assert.Equal(t, "a", first.Title())
}

func TestListAllBreak(t *testing.T) {
	l := newTestList(t, "a", "b", "c")

	var idx []int
	for i := range l.All() {
		idx = append(idx, i)
		if i == 1 {
			break
		}
	}
	assert.Equal(t, []int{0, 1}, idx)
}

func TestTodayScenario(t *testing.T) {
	l := NewList("Today")
	require.NoError(t, l.Add(NewItem("Buy milk")))
	require.NoError(t, l.Add(NewItem("Clean room")))
	require.NoError(t, l.MarkDoneAt(0))

	done := l.Filter((*Item).IsDone)

	require.Equal(t, 1, done.Size())
	first, err := done.First()
	require.NoError(t, err)
	assert.Equal(t, "Buy milk", first.Title())
	assert.Equal(t, 2, l.Size())
}
