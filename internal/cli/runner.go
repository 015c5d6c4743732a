package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/Makepad-fr/tada/internal/ui"
)

// Version is overridden at build time with -ldflags "-X ...cli.Version=...".
var Version = "dev"

// Exit codes: 0 ok, 1 runtime error, 2 usage error.
const (
	exitOK      = 0
	exitRuntime = 1
	exitUsage   = 2
)

// exitError carries the exit code for an error returned by a command.
// A nil err means the message was already printed.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return ""
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func usageErr(format string, a ...any) error {
	return &exitError{code: exitUsage, err: fmt.Errorf(format, a...)}
}

func runtimeErr(err error) error {
	return &exitError{code: exitRuntime, err: err}
}

// app holds what every subcommand needs once the root flags are resolved.
type app struct {
	cfg    *viper.Viper
	log    *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// Run executes the command line args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{cfg: newConfig(), log: zap.NewNop(), stdout: stdout, stderr: stderr}
	defer func() { _ = a.log.Sync() }()

	root := a.rootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return exitOK
	}

	code := exitUsage
	var ee *exitError
	if errors.As(err, &ee) {
		code = ee.code
	}
	if msg := err.Error(); msg != "" {
		ui.Fail(stderr, msg)
	}
	if code == exitUsage && (ee == nil || ee.err != nil) {
		fmt.Fprintln(stderr, ui.Current().Muted.Render("Run `todo help` for usage"))
	}
	a.log.Debug("command failed", zap.Int("exit", code), zap.Error(err))
	return code
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "todo",
		Short: "todo - a tiny in-memory todo list",
		Long: `todo builds a list from the titles given on the command line,
marks the requested items done and renders, filters or edits it.
Nothing is saved between runs.`,
		Example: `  todo show --done 1 "Buy milk" "Clean room"
  todo filter --keep pending --done 1 "Buy milk" "Clean room"
  todo ls "Buy milk" "Clean room"
  todo demo`,
		Version:       Version,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.configure()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = cmd.Help()
			return &exitError{code: exitUsage}
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return usageErr("%v", err)
	})

	fl := root.PersistentFlags()
	fl.String(keyTheme, defaultTheme, "color theme: classic, neon or mono")
	fl.String(keyColor, ui.ColorAuto, "color output: auto, always or never")
	fl.Bool(keyDebug, false, "log debug output to stderr")
	fl.String(keyTitle, defaultTitle, "list title")
	for _, k := range []string{keyTheme, keyColor, keyDebug, keyTitle} {
		_ = a.cfg.BindPFlag(k, fl.Lookup(k))
	}

	root.AddCommand(
		a.showCmd(),
		a.renderCmd(),
		a.filterCmd(),
		a.lsCmd(),
		a.demoCmd(),
		a.versionCmd(),
	)
	return root
}
