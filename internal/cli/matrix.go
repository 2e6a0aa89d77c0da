package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/internal/config"
	"github.com/katalvlaran/utmatrix/internal/logger"
	"github.com/katalvlaran/utmatrix/utmatrix"
	"github.com/katalvlaran/utmatrix/vector"
)

func matrixCmd(a *app) *cobra.Command {
	var (
		side int
		fill float64
	)

	c := &cobra.Command{
		Use:   "matrix",
		Short: "Build an upper-triangular matrix and print its arithmetic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if a.cfg.Element == config.ElementFloat {
				return runMatrix(w, a.cfg, side, fill)
			}
			f, err := intFlag("fill", fill)
			if err != nil {
				return err
			}
			return runMatrix(w, a.cfg, side, f)
		},
	}

	c.Flags().IntVarP(&side, "side", "n", 3, "matrix side")
	c.Flags().Float64Var(&fill, "fill", 1, "value every stored element is set to")
	return c
}

func runMatrix[T vector.Number](w io.Writer, cfg config.Config, side int, fill T) error {
	log := logger.L().With("op", "matrix", "side", side)

	m, err := utmatrix.New[T](side, cfg.MatrixOptions()...)
	if err != nil {
		log.Error("matrix.new", "err", err)
		return err
	}
	for i := 0; i < m.Side(); i++ {
		row, err := m.Row(i)
		if err != nil {
			return err
		}
		row.Fill(fill)
	}

	c := m.Clone()
	sum, err := m.Add(c)
	if err != nil {
		return err
	}
	diff, err := m.Sub(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "m =\n%v", m)
	fmt.Fprintf(w, "m + m =\n%v", sum)
	fmt.Fprintf(w, "m - m =\n%v", diff)
	fmt.Fprintf(w, "clone equal: %t\n", c.Equal(m))

	log.Info("matrix.done")
	return nil
}
