package todo

// Markers used by Item.String.
const (
	DoneMarker   = "X"
	UndoneMarker = " "
)

// Item is a single task: a fixed title and a completion flag.
// The title is not validated; an empty title renders as "[ ] ".
type Item struct {
	title string
	done  bool
}

// NewItem returns a pending item titled title.
func NewItem(title string) *Item {
	return &Item{title: title}
}

// MarkDone marks the item done. Repeated calls have no further effect.
func (i *Item) MarkDone() { i.done = true }

// MarkUndone marks the item pending again.
func (i *Item) MarkUndone() { i.done = false }

// IsDone reports whether the item is done.
func (i *Item) IsDone() bool { return i.done }

// Title returns the title the item was created with.
func (i *Item) Title() string { return i.title }

// String renders the item as "[X] title" or "[ ] title".
func (i *Item) String() string {
	marker := UndoneMarker
	if i.done {
		marker = DoneMarker
	}
	return "[" + marker + "] " + i.title
}
