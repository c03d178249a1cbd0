package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	mdwerror "github.com/msto63/utf8x/foundation/core/error"
	mdwerrors "github.com/msto63/utf8x/foundation/core/errors"
	mdwlog "github.com/msto63/utf8x/foundation/core/log"
	"github.com/msto63/utf8x/foundation/utils/utf8x"
	"github.com/msto63/utf8x/pkg/core/config"
	"github.com/msto63/utf8x/pkg/core/logging"
	"github.com/spf13/cobra"
)

// app holds the state shared by all commands of one invocation
type app struct {
	cfgFile     string
	logLevel    string
	logFormat   string
	noNormalize bool
	fallback    bool

	cfg  *config.Config
	base *mdwlog.Logger
	log  *logging.Logger
	util *utf8x.Utility
}

// NewRootCommand builds the utf8x command tree
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "utf8x",
		Short: "UTF-8 aware string utilities",
		Long: `utf8x works on text as a sequence of Unicode scalar values instead
of bytes: length, case mapping, substrings, search, codepoints,
normalization and sanitizing.

Text is taken from the remaining arguments or, without arguments,
from standard input.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $UTF8X_CONFIG or ./utf8x.toml)")
	flags.BoolVar(&a.noNormalize, "no-normalize", false, "disable canonical normalization")
	flags.BoolVar(&a.fallback, "fallback", false, "use the fallback code paths for every capability")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (text, json, logfmt)")

	root.AddCommand(
		a.lenCmd(),
		a.upperCmd(),
		a.lowerCmd(),
		a.ucfirstCmd(),
		a.titleCmd(),
		a.foldCmd(),
		a.substrCmd(),
		a.indexCmd(),
		a.rindexCmd(),
		a.ordCmd(),
		a.chrCmd(),
		a.normalizeCmd(),
		a.checkCmd(),
		a.stripCmd(),
		a.inspectCmd(),
		a.capsCmd(),
		versionCmd(),
	)

	return root
}

// Execute runs the command line and returns the process exit code
func Execute() int {
	root := NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(root.ErrOrStderr(), "Error: %v\n", err)
		return exitCode(err)
	}
	return 0
}

// exitCode maps structured errors by their code. Anything else is a
// usage error from cobra.
func exitCode(err error) int {
	var e *mdwerror.Error
	if errors.As(err, &e) {
		return e.Code().ExitCode()
	}
	return 2
}

// setup loads the configuration, applies the global flags and builds the
// logger and utility used by the command
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	var err error
	if a.cfgFile != "" {
		a.cfg, err = config.Load(a.cfgFile)
	} else {
		a.cfg, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}

	if a.logLevel != "" {
		a.cfg.Logging.Level = a.logLevel
	}
	if a.logFormat != "" {
		a.cfg.Logging.Format = a.logFormat
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	caps := a.cfg.EffectiveCapabilities()
	if a.fallback {
		caps = utf8x.Capabilities{}
	}
	if a.noNormalize {
		caps.Normalization = false
	}

	a.base = logging.FromConfig(a.cfg, cmd.ErrOrStderr())
	a.log = logging.Wrap(a.base, "cli").With("command", cmd.Name())
	a.util = utf8x.New(caps, utf8x.WithLogger(a.base))

	a.log.Debug("configured",
		"config", a.cfg.Path,
		"capabilities", caps.String(),
	)
	return nil
}

// run wraps a command body with timing and debug logging
func (a *app) run(fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		timer := a.base.StartTimer("command." + cmd.Name())
		err := fn(cmd, args)
		timer.Stop()
		if err != nil {
			a.log.Debug("command failed", "error", err.Error())
		}
		return err
	}
}

// readInput returns the arguments joined by spaces, or standard input
// without its final line break when no arguments are given
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", mdwerrors.OperationFailed(mdwerrors.ModuleCLI, "read_input", err)
	}
	s := string(data)
	s = strings.TrimSuffix(s, "\n")
	s = strings.TrimSuffix(s, "\r")
	return s, nil
}

// usageError reports an argument that cannot be parsed
func usageError(operation string, input interface{}, expected string) error {
	return mdwerrors.NewErrorBuilder(mdwerrors.ModuleCLI).
		Operation(operation).
		Messagef("invalid argument %v for %s, expected %s", input, operation, expected).
		Code(string(mdwerror.CodeInvalidFormat)).
		Detail("input", input).
		Detail("expected", expected).
		Build()
}

func printLine(cmd *cobra.Command, v ...interface{}) {
	fmt.Fprintln(cmd.OutOrStdout(), v...)
}
