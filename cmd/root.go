package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/quocvuong92/learn-cli/internal/aliases"
	"github.com/quocvuong92/learn-cli/internal/config"
	"github.com/quocvuong92/learn-cli/internal/correct"
	"github.com/quocvuong92/learn-cli/internal/display"
	"github.com/quocvuong92/learn-cli/internal/inventory"
	"github.com/quocvuong92/learn-cli/internal/logging"
)

// Version is set at build time with -ldflags "-X ...cmd.Version=...".
var Version = "dev"

// Exit codes
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// usageError marks errors caused by how learn was invoked.
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// App holds the application state
type App struct {
	cfg     *config.Config
	out     io.Writer
	errOut  io.Writer
	printer *display.Printer
	logger  *logging.Logger
	inv     *inventory.Inventory
}

// NewApp creates a new App instance with default configuration
func NewApp(out, errOut io.Writer) *App {
	return &App{
		cfg:    config.NewConfig(),
		out:    out,
		errOut: errOut,
		logger: logging.Nop(),
	}
}

// Execute runs the root command and exits with its status.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes learn with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	app := NewApp(stdout, stderr)
	rootCmd := app.newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitOK
	}
	var ue *usageError
	if errors.As(err, &ue) {
		return ExitUsage
	}
	return ExitError
}

func (app *App) newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "learn [APP]",
		Short: "Check, explain and alias shell commands",
		Long: `learn is a small shell helper. It reports whether applications are
installed, auto-corrects mistyped command names, stores command aliases in a
JSON file, and offers an interactive mode with AI suggestions.

Examples:
  learn git                          # is git installed?
  learn -a gti                       # auto-correct to git, then check
  learn -c gs "git status"           # add the alias gs
  learn -l                           # list aliases
  learn -l gs                        # show one alias
  learn -i                           # interactive mode`,
		Version: Version,
		Args:    app.validateArgs,
		RunE:    app.run,
	}

	rootCmd.Flags().BoolVarP(&app.cfg.AutoCorrect, "auto-correct", "a", false, "Auto-correct the app name against commands on PATH")
	rootCmd.Flags().BoolVarP(&app.cfg.Interactive, "interactive", "i", false, "Interactive learning mode")
	rootCmd.Flags().BoolVarP(&app.cfg.Customize, "customize", "c", false, "Add an alias: learn -c ALIAS COMMAND")
	rootCmd.Flags().BoolVarP(&app.cfg.ListAliases, "list-aliases", "l", false, "List stored aliases, or show one: learn -l ALIAS")
	rootCmd.Flags().BoolVar(&app.cfg.InitConfig, "init-config", false, "Write a commented settings file to the user config directory")
	rootCmd.Flags().BoolVarP(&app.cfg.Render, "render", "r", false, "Render AI answers as markdown")
	rootCmd.Flags().BoolVarP(&app.cfg.Verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().StringVar(&app.cfg.LogFile, "log-file", "", "Write logs to a rotating file")

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return &usageError{err: err}
	})

	return rootCmd
}

func (app *App) validateArgs(cmd *cobra.Command, args []string) error {
	if app.cfg.Customize {
		if len(args) != 2 {
			return &usageError{err: fmt.Errorf("--customize takes ALIAS and COMMAND, received %d argument(s)", len(args))}
		}
		return nil
	}
	if len(args) > 1 {
		return &usageError{err: fmt.Errorf("accepts at most 1 arg(s), received %d", len(args))}
	}
	return nil
}

func (app *App) run(cmd *cobra.Command, args []string) error {
	// Past argument checks, failures are runtime errors and need no usage text.
	cmd.SilenceUsage = true

	if err := app.cfg.Validate(); err != nil {
		return err
	}

	app.logger = newLogger(app.cfg, app.errOut)
	defer app.logger.Close()
	app.printer = display.New(app.out, app.cfg.Render)

	app.logger.Debug("configuration loaded", logging.Fields{
		"settings_file": app.cfg.SourceFile,
		"aliases_file":  app.cfg.AliasesFile,
		"model":         app.cfg.Model,
		"has_api_key":   app.cfg.HasAPIKey(),
	})

	switch {
	case app.cfg.Interactive:
		return app.runInteractive()
	case app.cfg.Customize:
		return app.customize(args[0], args[1])
	case app.cfg.ListAliases && len(args) == 1:
		return app.showAlias(args[0])
	case app.cfg.ListAliases:
		return app.listAliases()
	case app.cfg.InitConfig:
		return app.initConfig()
	case len(args) == 1:
		app.checkApp(args[0])
	}
	return nil
}

func newLogger(cfg *config.Config, w io.Writer) *logging.Logger {
	return logging.New(logging.Options{
		Level:  logging.ParseLevel(cfg.LogLevel),
		Format: logging.ParseFormat(cfg.LogFormat),
		Output: w,
		File:   cfg.LogFile,
	})
}

// commandInventory scans the search path on first use.
func (app *App) commandInventory() *inventory.Inventory {
	if app.inv == nil {
		app.inv = inventory.New(app.cfg.SearchPath())
		app.logger.Debug("inventory scanned", logging.Fields{"commands": app.inv.Len()})
	}
	return app.inv
}

func (app *App) checkApp(name string) {
	if app.cfg.AutoCorrect {
		if corrected := correct.AutoCorrect(name, app.commandInventory().Names()); corrected != name {
			app.printer.Info("Did you mean '%s'? Auto-correcting...", corrected)
			name = corrected
		}
	}
	app.printer.InstallStatus(name, inventory.IsInstalled(name))
}

func (app *App) customize(alias, command string) error {
	store := aliases.NewStore(app.cfg.AliasesFile)
	if err := store.Set(alias, command); err != nil {
		if errors.Is(err, aliases.ErrEmptyAlias) {
			return &usageError{err: err}
		}
		return err
	}
	app.logger.Info("alias saved", logging.Fields{"alias": alias, "file": store.Path()})
	app.printer.Info("Alias '%s' for command '%s' added successfully.", alias, command)
	return nil
}

func (app *App) listAliases() error {
	store := aliases.NewStore(app.cfg.AliasesFile)
	mapping, err := store.Load()
	if err != nil {
		return err
	}
	if len(mapping) == 0 {
		app.printer.Info("No aliases defined. Add one with: learn -c ALIAS COMMAND")
		return nil
	}
	for _, name := range aliases.Names(mapping) {
		app.printer.Plain("%-12s %s", name, mapping[name])
	}
	return nil
}

func (app *App) showAlias(name string) error {
	command, ok, err := aliases.NewStore(app.cfg.AliasesFile).Lookup(name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("no alias named '%s'", name)
	}
	app.printer.Plain("%-12s %s", name, command)
	return nil
}

func (app *App) initConfig() error {
	path, err := config.CreateDefaultConfigFile()
	if err != nil {
		return err
	}
	app.printer.Success("Created settings file at %s", path)
	return nil
}
