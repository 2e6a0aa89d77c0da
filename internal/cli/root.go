// Package cli wires the vector and utmatrix packages into a cobra command tree.
package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/internal/config"
	"github.com/katalvlaran/utmatrix/internal/logger"
)

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

// execute runs the command tree with args. The logger installed for the run
// is reset on every return path, including command failures.
func execute(args []string, out, errOut io.Writer) error {
	a := &app{cfg: config.Default()}
	defer a.close()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	return cmd.Execute()
}

// app carries state resolved once in PersistentPreRunE.
type app struct {
	cfg     config.Config
	cleanup func()
}

// close restores the discard logger. Safe to call more than once.
func (a *app) close() {
	if a.cleanup != nil {
		a.cleanup()
		a.cleanup = nil
	}
}

func newRootCmd(a *app) *cobra.Command {
	var (
		cfgPath   string
		debug     bool
		logFormat string
	)

	cmd := &cobra.Command{
		Use:          "utmatrix",
		Short:        "Bounded vectors and upper-triangular matrices",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.close()
			a.cleanup = logger.Setup(logger.Config{
				Debug:  debug,
				Format: logger.Format(logFormat),
				Out:    cmd.ErrOrStderr(),
			})

			cfg, err := config.Load(cfgPath)
			if err != nil {
				logger.L().Error("config.load", "path", cfgPath, "err", err)
				return err
			}
			a.cfg = cfg
			logger.L().Debug("config.loaded",
				"path", cfgPath,
				"max_vector_size", cfg.MaxVectorSize,
				"max_matrix_size", cfg.MaxMatrixSize,
				"element", string(cfg.Element),
			)
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "YAML file with max_vector_size, max_matrix_size, element")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&logFormat, "log-format", string(logger.FormatText), "log format: text|json")

	cmd.AddCommand(vectorCmd(a), matrixCmd(a), checkCmd(a))
	return cmd
}
