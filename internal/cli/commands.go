package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/todo"
	"github.com/Makepad-fr/tada/internal/tui"
	"github.com/Makepad-fr/tada/internal/ui"
)

// sampleTitles seed the demo list.
var sampleTitles = []string{
	"Buy milk",
	"Clean room",
	"Go to the gym",
	"Go shopping",
	"Feed the cats",
	"Study for Launch School",
}

// buildList creates a list from titles and marks the 1-based positions in
// done. An invalid position is a usage error and leaves nothing marked.
func (a *app) buildList(titles []string, done []int) (*todo.List, error) {
	l := todo.NewList(a.cfg.GetString(keyTitle))
	for _, title := range titles {
		title = strings.TrimSpace(title)
		if title == "" {
			return nil, usageErr("empty title")
		}
		if err := l.Add(todo.NewItem(title)); err != nil {
			return nil, runtimeErr(err)
		}
	}
	for _, pos := range done {
		if _, err := l.ItemAt(pos - 1); err != nil {
			return nil, usageErr("index out of range: have %d, got %d", l.Size(), pos)
		}
	}
	for _, pos := range done {
		if err := l.MarkDoneAt(pos - 1); err != nil {
			return nil, runtimeErr(err)
		}
	}
	a.log.Debug("list built", zap.Int("size", l.Size()), zap.Ints("done", done))
	return l, nil
}

func titlesArg(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return usageErr("usage: %s", cmd.UseLine())
	}
	return nil
}

func (a *app) showCmd() *cobra.Command {
	var (
		done  []int
		group bool
	)
	cmd := &cobra.Command{
		Use:   "show [--done N,...] [--group] <title>...",
		Short: "Show a styled summary of the list",
		Args:  titlesArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildList(args, done)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, ui.Summary(l, group))
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&done, "done", nil, "1-based positions to mark done")
	cmd.Flags().BoolVar(&group, "group", false, "group output by pending/done")
	return cmd
}

func (a *app) renderCmd() *cobra.Command {
	var done []int
	cmd := &cobra.Command{
		Use:   "render [--done N,...] <title>...",
		Short: "Print the plain text rendering of the list",
		Args:  titlesArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildList(args, done)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, l)
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&done, "done", nil, "1-based positions to mark done")
	return cmd
}

func (a *app) filterCmd() *cobra.Command {
	var (
		done []int
		keep string
	)
	cmd := &cobra.Command{
		Use:   "filter [--keep done|pending] [--done N,...] <title>...",
		Short: "Print only the done or pending items",
		Args:  titlesArg,
		RunE: func(cmd *cobra.Command, args []string) error {
			var pred func(*todo.Item) bool
			switch keep {
			case "done":
				pred = (*todo.Item).IsDone
			case "pending":
				pred = func(it *todo.Item) bool { return !it.IsDone() }
			default:
				return usageErr("filter: --keep must be done or pending, got %q", keep)
			}
			l, err := a.buildList(args, done)
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, l.Filter(pred))
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&done, "done", nil, "1-based positions to mark done")
	cmd.Flags().StringVar(&keep, "keep", "done", "which items to keep: done or pending")
	return cmd
}

func (a *app) lsCmd() *cobra.Command {
	var done []int
	cmd := &cobra.Command{
		Use:   "ls [--done N,...] [<title>...]",
		Short: "Edit the list interactively and print it on exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := a.buildList(args, done)
			if err != nil {
				return err
			}
			changed, err := tui.Run(l, a.log)
			if err != nil {
				return runtimeErr(fmt.Errorf("tui: %w", err))
			}
			fmt.Fprintln(a.stdout, l)
			if changed {
				ui.OK(a.stdout, "updated (not saved)")
			}
			return nil
		},
	}
	cmd.Flags().IntSliceVar(&done, "done", nil, "1-based positions to mark done")
	return cmd
}

func (a *app) demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the sample list and its first done item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			l, err := a.buildList(sampleTitles, []int{1, 5})
			if err != nil {
				return err
			}
			fmt.Fprintln(a.stdout, l)
			fmt.Fprintln(a.stdout)

			first, err := l.Filter((*todo.Item).IsDone).First()
			if errors.Is(err, todo.ErrIndexOutOfRange) {
				ui.OK(a.stdout, "nothing done yet")
				return nil
			} else if err != nil {
				return runtimeErr(err)
			}
			fmt.Fprintln(a.stdout, "first done:", first)
			return nil
		},
	}
}

func (a *app) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(a.stdout, "todo", Version)
		},
	}
}
