package cli

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/Pure-Company/funcdemo"
	"github.com/Pure-Company/funcdemo/internal/logger"
)

// Config holds the command-line settings.
type Config struct {
	Debug bool
	Only  []string
}

func Execute() {
	cmd := newRootCmd(os.Stdout, os.Stderr)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cfg Config

	cmd := &cobra.Command{
		Use:          "funcdemo",
		Short:        "Print the first-class function lessons",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			injector := newInjector(cfg, stderr)

			runner, err := do.Invoke[funcdemo.Runner](injector)
			if err != nil {
				return err
			}
			log := do.MustInvoke[*slog.Logger](injector)

			out := funcdemo.WriteFunc(cmd.OutOrStdout().Write)
			if cfg.Debug {
				out = out.Tee(echoTo(log))
			}
			return runner.Run(cmd.Context(), out)
		},
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.PersistentFlags().BoolVar(&cfg.Debug, "debug", false, "enable debug logging to stderr")
	cmd.Flags().StringSliceVar(&cfg.Only, "only", nil, "run only the named demos (see 'list')")

	cmd.AddCommand(listCmd())
	return cmd
}

func newInjector(cfg Config, stderr io.Writer) do.Injector {
	i := do.New()

	do.ProvideValue(i, cfg)
	do.Provide(i, func(i do.Injector) (*slog.Logger, error) {
		c := do.MustInvoke[Config](i)
		var out io.Writer
		if c.Debug {
			out = stderr
		}
		return logger.Setup(logger.Config{Out: out, Debug: c.Debug}), nil
	})
	do.Provide(i, func(i do.Injector) (funcdemo.Runner, error) {
		c := do.MustInvoke[Config](i)
		return funcdemo.NewRunner(do.MustInvoke[*slog.Logger](i)).Select(c.Only...)
	})

	return i
}

// echoTo logs every line written to stdout.
func echoTo(log *slog.Logger) funcdemo.WriteFunc {
	return func(p []byte) (int, error) {
		log.Debug("demo.output", "line", strings.TrimSuffix(string(p), "\n"))
		return len(p), nil
	}
}
