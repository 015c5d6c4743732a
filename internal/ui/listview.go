package ui

import (
	"fmt"

	"github.com/Makepad-fr/tada/internal/todo"
)

const maxTitleWidth = 80

// Stats counts done and pending items.
func Stats(l *todo.List) (done, pending int) {
	for _, it := range l.All() {
		if it.IsDone() {
			done++
		} else {
			pending++
		}
	}
	return
}

// Header renders "<title>  ✔ d  • p  Total n".
func Header(l *todo.List) string {
	d, p := Stats(l)
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		current.Title.Render(l.Title()),
		current.Success.Render(current.SymDone), d,
		current.Pending.Render(current.SymPending), p,
		current.Accent.Render("Total"), l.Size(),
	)
}

// ItemLine renders a single item with its 1-based position.
func ItemLine(pos int, it *todo.Item) string {
	box, style := current.BoxUnchecked, current.Muted
	title := truncate(it.Title())
	if it.IsDone() {
		box, style = current.BoxChecked, current.Success
		title = current.Done.Render(title)
	}
	return fmt.Sprintf("%s %s %s", current.Muted.Render(fmt.Sprintf("%2d.", pos)), style.Render(box), title)
}

// Lines renders every item in list order.
func Lines(l *todo.List) []string {
	if l.Size() == 0 {
		return []string{current.Muted.Render("no items")}
	}
	out := make([]string, 0, l.Size())
	for i, it := range l.All() {
		out = append(out, ItemLine(i+1, it))
	}
	return out
}

// GroupedLines renders pending items, then done items, under their own
// headings. Positions are list positions, not group positions.
func GroupedLines(l *todo.List) []string {
	var pend, done []string
	for i, it := range l.All() {
		if it.IsDone() {
			done = append(done, ItemLine(i+1, it))
		} else {
			pend = append(pend, ItemLine(i+1, it))
		}
	}
	none := current.Muted.Render("(none)")
	if len(pend) == 0 {
		pend = []string{none}
	}
	if len(done) == 0 {
		done = []string{none}
	}

	var lines []string
	lines = append(lines, current.Accent.Render("Pending"))
	lines = append(lines, pend...)
	lines = append(lines, "")
	lines = append(lines, current.Accent.Render("Done"))
	lines = append(lines, done...)
	return lines
}

// Summary renders the full boxed view: header, progress bar and items.
func Summary(l *todo.List, grouped bool) string {
	d, p := Stats(l)
	lines := []string{
		Header(l),
		current.Muted.Render(ProgressBar(d, d+p, 28)),
		"",
	}
	if grouped {
		lines = append(lines, GroupedLines(l)...)
	} else {
		lines = append(lines, Lines(l)...)
	}
	return Panel(lines)
}

func truncate(title string) string {
	r := []rune(title)
	if len(r) > maxTitleWidth {
		return string(r[:maxTitleWidth-3]) + "..."
	}
	return title
}
