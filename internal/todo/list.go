// Package todo holds the in-memory todo model: items and the titled,
// ordered lists that group them. Nothing in this package performs I/O.
package todo

import (
	"iter"
	"slices"
	"strings"
)

// List is an ordered, titled group of items. Insertion order is kept and
// duplicates are allowed. A List is not safe for concurrent use.
type List struct {
	title string
	items []*Item
}

// NewList returns an empty list titled title.
func NewList(title string) *List {
	return &List{title: title}
}

// Title returns the list title.
func (l *List) Title() string { return l.title }

// Size returns the number of items in the list.
func (l *List) Size() int { return len(l.items) }

// Add appends item to the end of the list.
func (l *List) Add(item *Item) error {
	if item == nil {
		return ErrTypeMismatch
	}
	l.items = append(l.items, item)
	return nil
}

// ItemAt returns the item at the 0-based index.
func (l *List) ItemAt(index int) (*Item, error) {
	if err := l.validateIndex(index); err != nil {
		return nil, err
	}
	return l.items[index], nil
}

// MarkDoneAt marks the item at index done. An invalid index changes nothing.
func (l *List) MarkDoneAt(index int) error {
	it, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	it.MarkDone()
	return nil
}

// MarkUndoneAt marks the item at index pending. An invalid index changes
// nothing.
func (l *List) MarkUndoneAt(index int) error {
	it, err := l.ItemAt(index)
	if err != nil {
		return err
	}
	it.MarkUndone()
	return nil
}

// IsAllDone reports whether every item is done. An empty list is done.
func (l *List) IsAllDone() bool {
	for _, it := range l.items {
		if !it.IsDone() {
			return false
		}
	}
	return true
}

// IsDone is an alias for IsAllDone.
func (l *List) IsDone() bool { return l.IsAllDone() }

// First returns the first item, or an ErrIndexOutOfRange error when the
// list is empty.
func (l *List) First() (*Item, error) { return l.ItemAt(0) }

// Last returns the last item, or an ErrIndexOutOfRange error when the list
// is empty.
func (l *List) Last() (*Item, error) { return l.ItemAt(len(l.items) - 1) }

// RemoveFront removes and returns the first item. ok is false when the list
// is empty.
func (l *List) RemoveFront() (item *Item, ok bool) {
	if len(l.items) == 0 {
		return nil, false
	}
	item = l.items[0]
	l.items[0] = nil
	l.items = l.items[1:]
	return item, true
}

// RemoveBack removes and returns the last item. ok is false when the list
// is empty.
func (l *List) RemoveBack() (item *Item, ok bool) {
	n := len(l.items)
	if n == 0 {
		return nil, false
	}
	item = l.items[n-1]
	l.items[n-1] = nil
	l.items = l.items[:n-1]
	return item, true
}

// RemoveAt removes and returns the item at index. Later items shift down
// by one.
func (l *List) RemoveAt(index int) (*Item, error) {
	if err := l.validateIndex(index); err != nil {
		return nil, err
	}
	item := l.items[index]
	l.items = slices.Delete(l.items, index, index+1)
	return item, nil
}

// String renders a "---- title ----" header followed by one line per item.
func (l *List) String() string {
	var b strings.Builder
	b.WriteString("---- " + l.title + " ----")
	for _, it := range l.items {
		b.WriteByte('\n')
		b.WriteString(it.String())
	}
	return b.String()
}

// ForEach calls visit for every item in order. It stops at the first error
// and returns it. Items added or removed by visit are not seen by the
// running iteration.
func (l *List) ForEach(visit func(*Item) error) error {
	for _, it := range slices.Clone(l.items) {
		if err := visit(it); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns a new list with the same title holding, in order, the
// items for which keep returns true. The items are shared, not copied.
func (l *List) Filter(keep func(*Item) bool) *List {
	out := NewList(l.title)
	for _, it := range l.items {
		if keep(it) {
			out.items = append(out.items, it)
		}
	}
	return out
}

// Items returns a copy of the item sequence.
func (l *List) Items() []*Item {
	return slices.Clone(l.items)
}

// All iterates over index/item pairs of a snapshot of the list.
func (l *List) All() iter.Seq2[int, *Item] {
	return slices.All(slices.Clone(l.items))
}

func (l *List) validateIndex(index int) error {
	if index < 0 || index >= len(l.items) {
		return &IndexError{Index: index, Size: len(l.items)}
	}
	return nil
}
