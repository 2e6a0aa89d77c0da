package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/internal/config"
	"github.com/katalvlaran/utmatrix/internal/logger"
	"github.com/katalvlaran/utmatrix/vector"
)

func vectorCmd(a *app) *cobra.Command {
	var (
		size   int
		start  int
		fill   float64
		scalar float64
	)

	c := &cobra.Command{
		Use:   "vector",
		Short: "Build a vector and print its scalar and element-wise arithmetic",
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			if a.cfg.Element == config.ElementFloat {
				return runVector(w, a.cfg, size, start, fill, scalar)
			}
			f, err := intFlag("fill", fill)
			if err != nil {
				return err
			}
			k, err := intFlag("scalar", scalar)
			if err != nil {
				return err
			}
			return runVector(w, a.cfg, size, start, f, k)
		},
	}

	c.Flags().IntVarP(&size, "size", "n", 5, "vector size")
	c.Flags().IntVar(&start, "start", vector.DefaultStartIndex, "start index")
	c.Flags().Float64Var(&fill, "fill", 1, "value every element is set to")
	c.Flags().Float64Var(&scalar, "scalar", 2, "scalar operand")
	return c
}

func runVector[T vector.Number](w io.Writer, cfg config.Config, size, start int, fill, scalar T) error {
	log := logger.L().With("op", "vector", "size", size, "start", start)

	opts := append(cfg.VectorOptions(), vector.WithStartIndex(start))
	v, err := vector.New[T](size, opts...)
	if err != nil {
		log.Error("vector.new", "err", err)
		return err
	}
	v.Fill(fill)

	sum, err := v.Add(v)
	if err != nil {
		return err
	}
	diff, err := v.Sub(v)
	if err != nil {
		return err
	}
	dot, err := v.Dot(v)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "v      = %v\n", v)
	fmt.Fprintf(w, "v + %v  = %v\n", scalar, v.AddScalar(scalar))
	fmt.Fprintf(w, "v - %v  = %v\n", scalar, v.SubScalar(scalar))
	fmt.Fprintf(w, "v * %v  = %v\n", scalar, v.MulScalar(scalar))
	fmt.Fprintf(w, "v + v  = %v\n", sum)
	fmt.Fprintf(w, "v - v  = %v\n", diff)
	fmt.Fprintf(w, "v . v  = %v\n", dot)

	log.Info("vector.done", "dot", dot)
	return nil
}
