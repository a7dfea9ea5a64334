package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"twc/common"
	"twc/config"
	"twc/convert"
	"twc/misc"
	"twc/state"
	"twc/theme"
)

// initializeAppContext prepares application context before command execution but
// after command line has been parsed
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	var err error

	if cmd.NArg() == 0 {
		// nothing to do, just return
		return ctx, nil
	}

	env := state.EnvFromContext(ctx)

	configFile := cmd.String("config")
	if len(configFile) == 0 {
		configFile = config.Locate()
	}
	if env.Cfg, err = config.LoadConfiguration(configFile); err != nil {
		return ctx, fmt.Errorf("unable to prepare configuration: %w", err)
	}
	if cmd.Bool("debug") {
		if env.Rpt, err = env.Cfg.Reporting.Prepare(); err != nil {
			return ctx, fmt.Errorf("unable to prepare debug reporter: %w", err)
		}
		// save complete processed configuration if external configuration was provided
		if len(configFile) > 0 {
			if data, err := config.Dump(env.Cfg); err == nil {
				env.Rpt.StoreData(fmt.Sprintf("config/%s", filepath.Base(configFile)), data)
			}
		}
	}
	if env.Log, err = env.Cfg.Logging.Prepare(env.Rpt); err != nil {
		return ctx, fmt.Errorf("unable to prepare logs: %w", err)
	}
	env.RedirectStdLog()

	env.Log.Debug("Program started", zap.Strings("args", os.Args), zap.String("ver", misc.GetVersion()), zap.String("runtime", runtime.Version()), zap.String("hash", misc.GetGitHash()))

	if env.Rpt != nil {
		env.Log.Info("Creating debug report", zap.String("location", env.Rpt.Name()))
	}
	if len(configFile) == 0 {
		env.Log.Debug("Using defaults (no configuration file)")
	} else {
		env.Log.Debug("Using configuration", zap.String("file", configFile))
	}

	if err := env.Initialize(); err != nil {
		return ctx, fmt.Errorf("unable to prepare theme: %w", err)
	}
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) (err error) {
	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Debug("Program ended", zap.Duration("elapsed", env.Uptime()), zap.Strings("parsed args", cmd.Args().Slice()))
	}

	// close logging
	env.RestoreStdLog()

	// log is synced now and result can be used in report if necessary, errors
	// must be reported directly to stderr from now on
	if env.Rpt != nil {
		if er := env.Rpt.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close debug report: %w", er))
		}
	}
	// reporting is closed now - remove empty panic file if any
	if env.Cfg != nil && len(env.Cfg.Logging.FileLogger.Destination) > 0 {
		debug.SetCrashOutput(nil, debug.CrashOptions{})
		fname := filepath.Join(filepath.Dir(env.Cfg.Logging.FileLogger.Destination), misc.GetAppName()+"-panic.log")
		if fi, er := os.Stat(fname); er == nil && fi.Size() == 0 {
			if er := os.Remove(fname); er != nil {
				err = multierr.Append(err, fmt.Errorf("unable to remove empty panic log file '%s': %w", fname, er))
			}
		}
	}
	return
}

// Errors from subcommands are regular errors, logged once by exitErrHandler
// or printed to stderr on exit.
var errWasHandled bool

// this is called before appContext is destroyed, so we have a chance to
// properly log any error from subcommand
func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {

	env := state.EnvFromContext(ctx)

	if env.Log != nil {
		env.Log.Error("Program ended with error", zap.Error(err))
		errWasHandled = true
	}
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	// do nothing special, error is reported either by exitErrHandler or on
	// exit directly to stderr.
	return err
}

func subcommandNotFoundHandler(ctx context.Context, _ *cli.Command, name string) {
	if log := state.EnvFromContext(ctx).Log; log != nil {
		log.Warn("Unknown command, nothing to do", zap.String("command", name))
	}
}

// outputFlags are shared by the commands writing a single result.
func outputFlags(extra ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "write result to `FILE` instead of STDOUT"},
		&cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "overwrite output file if it exists"},
	}, extra...)
}

func formatFlag(usage string) cli.Flag {
	return &cli.StringFlag{Name: "to",
		Usage: usage + " `TYPE` (supported types: " + strings.Join(common.OutputFormatNames(), ", ") + ")"}
}

const classesHelp = `%s
CLASSES:
    utility classes, any number of arguments, each may hold a space separated list
    if absent or "-" - the list is read from STDIN
`

func main() {

	// allow graceful shutdown on interrupt, lint --watch runs until stopped
	ctx, stop := signal.NotifyContext(state.ContextWithEnv(context.Background()), os.Interrupt, syscall.SIGTERM)

	app := &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "compiler of utility class lists into design node styles and CSS",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			{
				Name:         "convert",
				Usage:        "Converts class list to design node style",
				OnUsageError: usageErrorHandler,
				Action:       convert.Run,
				Flags: outputFlags(
					formatFlag("output"),
					&cli.StringFlag{Name: "parent-layout", Aliases: []string{"pl"},
						Usage: "layout `MODE` of the parent frame (supported modes: " + strings.Join(common.LayoutModeNames(), ", ") + ")"},
					&cli.StringSliceFlag{Name: "variant",
						Usage: "treat `MODIFIER` as active (dark, md, hover...), may be repeated"},
				),
				ArgsUsage:          "[CLASSES...]",
				CustomHelpTemplate: fmt.Sprintf(classesHelp+`
Only classes whose modifiers are all active contribute, without --variant
only unconditioned classes are converted.
`, cli.CommandHelpTemplate),
			},
			{
				Name:               "css",
				Usage:              "Generates stylesheet for class list",
				OnUsageError:       usageErrorHandler,
				Action:             convert.CSS,
				Flags:              outputFlags(),
				ArgsUsage:          "[CLASSES...]",
				CustomHelpTemplate: fmt.Sprintf(classesHelp, cli.CommandHelpTemplate),
			},
			{
				Name:               "explain",
				Usage:              "Shows how every class is understood: modifiers, priorities, selector and style",
				OnUsageError:       usageErrorHandler,
				Action:             convert.Explain,
				Flags:              outputFlags(formatFlag("output")),
				ArgsUsage:          "[CLASSES...]",
				CustomHelpTemplate: fmt.Sprintf(classesHelp, cli.CommandHelpTemplate),
			},
			{
				Name:         "export",
				Usage:        "Converts design node style (JSON or YAML) back to class list",
				OnUsageError: usageErrorHandler,
				Action:       convert.Export,
				Flags:        outputFlags(),
				ArgsUsage:    "[SOURCE]",
				CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to design node style document, if absent or "-" - STDIN
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "roundtrip",
				Usage:        "Converts class list to design node style and back, shows the difference",
				OnUsageError: usageErrorHandler,
				Action:       convert.Roundtrip,
				Flags: outputFlags(
					&cli.BoolFlag{Name: "strict", Usage: "fail when class list does not survive the round trip"},
				),
				ArgsUsage:          "[CLASSES...]",
				CustomHelpTemplate: fmt.Sprintf(classesHelp, cli.CommandHelpTemplate),
			},
			{
				Name:         "lint",
				Usage:        "Checks class attributes in source files",
				OnUsageError: usageErrorHandler,
				Action:       convert.Lint,
				Flags: []cli.Flag{
					formatFlag("findings"),
					&cli.BoolFlag{Name: "watch", Aliases: []string{"w"}, Usage: "keep checking changed files until interrupted"},
				},
				ArgsUsage: "[PATH...]",
				CustomHelpTemplate: fmt.Sprintf(`%s
PATH:
    file or directory to check, directories are searched recursively using
    scan include and exclude patterns from configuration
    if absent - current working directory
`, cli.CommandHelpTemplate),
			},
			{
				Name:         "tokens",
				Usage:        "Lists design tokens of the active theme",
				OnUsageError: usageErrorHandler,
				Action:       convert.Tokens,
				Flags:        outputFlags(formatFlag("output")),
				ArgsUsage:    "[GROUP...]",
				CustomHelpTemplate: fmt.Sprintf(`%s
GROUP:
    token group to list (%s), if absent - all groups
`, cli.CommandHelpTemplate, strings.Join(theme.Groups, ", ")),
			},
			{
				Name:  "dumpconfig",
				Usage: "Dumps either default or actual configuration (YAML)",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
				},
				OnUsageError: usageErrorHandler,
				Action:       outputConfiguration,
				ArgsUsage:    "DESTINATION",
				CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition of
default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
			},
		},
	}

	var err error
	// NOTE: os.Exit is called at the end of main to set exit code, make sure
	// there are no other deffered functions after that
	defer func() {
		stop()
		if err != nil {
			// It may happen that log is either not set yet (argument parsing) or already closed,
			// report errors to stderr directly
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = app.Run(ctx, os.Args)
}

func outputConfiguration(ctx context.Context, cmd *cli.Command) error {

	env := state.EnvFromContext(ctx)
	if cmd.Args().Len() > 1 {
		env.Log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	fname := cmd.Args().Get(0)

	var (
		err   error
		data  []byte
		state string
	)

	out := os.Stdout
	if len(fname) > 0 {
		out, err = os.Create(fname)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", fname, err)
		}
		defer out.Close()

	}

	if cmd.Bool("default") {
		state = "default"
		data, err = config.Prepare()
	} else {
		state = "actual"
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	if len(fname) == 0 {
		fname = "STDOUT"
	}
	env.Log.Debug("Outputing configuration", zap.String("state", state), zap.String("file", fname))

	_, err = out.Write(data)
	if err != nil {
		return fmt.Errorf("unable to write configuration: %w", err)
	}
	return nil
}
