// Package tui is the interactive list view. It edits a *todo.List in place;
// nothing is saved when the program exits.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/ui"
)

// view selects which items of the source list are shown.
type view int

const (
	viewAll view = iota
	viewPending
	viewDone
)

func (v view) String() string {
	switch v {
	case viewPending:
		return "pending"
	case viewDone:
		return "done"
	default:
		return "all"
	}
}

func (v view) next() view { return (v + 1) % 3 }

func (v view) keep(it *todo.Item) bool {
	switch v {
	case viewPending:
		return !it.IsDone()
	case viewDone:
		return it.IsDone()
	default:
		return true
	}
}

// listItem adapts a todo.Item to bubbles/list.Item. index is the item's
// position in the source list at the time the view was built.
type listItem struct {
	item  *todo.Item
	index int
}

func (i listItem) Title() string       { return i.item.Title() }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.item.Title() }

// Custom delegate to control how items render (single line)
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	t := ui.Current()
	prefix := "  "
	if index == m.Index() {
		prefix = t.Selected.Render("> ")
	}
	fmt.Fprint(w, prefix+ui.ItemLine(it.index+1, it.item))
}

var (
	toggleKey = key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle"))
	removeKey = key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove"))
	addKey    = key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add"))
	viewKey   = key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "all/pending/done"))
)

// Model is the Bubble Tea model for the interactive list.
type Model struct {
	source  *todo.List
	view    view
	list    list.Model
	changed bool
	log     *zap.Logger

	// Inline add
	adding bool
	input  textinput.Model
	errMsg string // last validation or index error (shown until the next key)

	width, height int
}

// New builds the model over source. A nil logger is replaced by a no-op one.
func New(source *todo.List, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.Current().Title
	l.Styles.HelpStyle = ui.Current().Muted
	l.Styles.PaginationStyle = ui.Current().Muted
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("item", "items")
	bindings := func() []key.Binding { return []key.Binding{toggleKey, removeKey, addKey, viewKey} }
	l.AdditionalShortHelpKeys = bindings
	l.AdditionalFullHelpKeys = bindings

	in := textinput.New()
	in.Prompt = "> "
	in.Placeholder = "New item title..."
	in.CharLimit = 200

	m := Model{
		source: source,
		list:   l,
		log:    log,
		input:  in,
		width:  80,
		height: 24,
	}
	m.resize()
	m.refresh()
	return m
}

// Run starts the program on the alternate screen and blocks until the user
// quits. It reports whether the list was modified.
func Run(source *todo.List, log *zap.Logger) (bool, error) {
	p := tea.NewProgram(New(source, log), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return false, err
	}
	fm, ok := final.(Model)
	if !ok {
		return false, nil
	}
	return fm.changed, nil
}

// Changed reports whether the source list was modified.
func (m Model) Changed() bool { return m.changed }

// refresh rebuilds the visible items from the source list.
func (m *Model) refresh() {
	items := make([]list.Item, 0, m.source.Size())
	for i, it := range m.source.All() {
		if m.view.keep(it) {
			items = append(items, listItem{item: it, index: i})
		}
	}
	cursor := m.list.Index()
	// SetItems drops the fuzzy matches and defers the re-filter to a command;
	// rerun it in place so rows and cursor never go out of step.
	m.list.SetItems(items)
	if m.list.FilterState() != list.Unfiltered {
		m.list.SetFilterText(m.list.FilterValue())
	}
	if n := len(m.list.VisibleItems()); n > 0 {
		m.list.Select(min(cursor, n-1))
	}
	m.list.Title = ui.Header(m.source)
	if m.view != viewAll {
		m.list.Title += "  " + ui.Current().Muted.Render("["+m.view.String()+"]")
	}
}

func (m *Model) resize() {
	h := m.height - 4
	if m.adding {
		h -= 3
	}
	m.list.SetSize(m.width-4, max(h, 1))
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
		m.resize()
		return m, nil
	}

	if m.adding {
		return m.updateAdding(msg)
	}

	// Let the list own the keyboard while the fuzzy filter prompt is open.
	if m.list.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		m.errMsg = ""
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.list.FilterState() == list.Unfiltered {
				return m, tea.Quit
			}
		case " ":
			m.toggleSelected()
			return m, nil
		case "d":
			m.removeSelected()
			return m, nil
		case "a":
			m.adding = true
			m.input.SetValue("")
			m.input.Focus()
			m.resize()
			return m, textinput.Blink
		case "f":
			m.view = m.view.next()
			m.log.Debug("view changed", zap.Stringer("view", m.view))
			m.refresh()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter":
			title := strings.TrimSpace(m.input.Value())
			if title == "" {
				m.errMsg = "Title cannot be empty"
				return m, nil
			}
			if err := m.source.Add(todo.NewItem(title)); err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.log.Debug("item added", zap.String("title", title), zap.Int("size", m.source.Size()))
			m.changed = true
			m.stopAdding()
			m.refresh()
			if n := len(m.list.VisibleItems()); n > 0 {
				m.list.Select(n - 1)
			}
			return m, nil
		case "esc":
			m.stopAdding()
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) stopAdding() {
	m.adding = false
	m.errMsg = ""
	m.input.SetValue("")
	m.input.Blur()
	m.resize()
}

func (m *Model) toggleSelected() {
	sel, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return
	}
	var err error
	if sel.item.IsDone() {
		err = m.source.MarkUndoneAt(sel.index)
	} else {
		err = m.source.MarkDoneAt(sel.index)
	}
	if err != nil {
		m.log.Warn("toggle failed", zap.Int("index", sel.index), zap.Error(err))
		m.errMsg = err.Error()
		return
	}
	m.log.Debug("item toggled", zap.Int("index", sel.index), zap.Bool("done", sel.item.IsDone()))
	m.changed = true
	m.refresh()
}

func (m *Model) removeSelected() {
	sel, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return
	}
	it, err := m.source.RemoveAt(sel.index)
	if err != nil {
		m.log.Warn("remove failed", zap.Int("index", sel.index), zap.Error(err))
		m.errMsg = err.Error()
		return
	}
	m.log.Debug("item removed", zap.Int("index", sel.index), zap.String("title", it.Title()))
	m.changed = true
	m.refresh()
}

func (m Model) View() string {
	t := ui.Current()
	content := m.list.View()
	if m.adding {
		title := "Add new item"
		if m.errMsg != "" {
			title += " - " + t.Error.Render(m.errMsg)
		}
		content += "\n" + ui.PanelStyle().Render(title+"\n"+m.input.View())
	} else if m.errMsg != "" {
		content += "\n" + t.Error.Render(m.errMsg)
	}
	return ui.PanelStyle().Render(content)
}
