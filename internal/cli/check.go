package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/utmatrix/internal/config"
	"github.com/katalvlaran/utmatrix/internal/logger"
	"github.com/katalvlaran/utmatrix/utmatrix"
	"github.com/katalvlaran/utmatrix/vector"
)

const checkLong = `Verify the container contracts against the configured limits.
Every vector and matrix is built under the configured caps (lowered to --probe
when larger); properties whose fixed sizes exceed a cap are reported as SKIP.`

// defaultProbe bounds the sizes the check command allocates.
const defaultProbe = 4096

var (
	// errCheckFailed is returned when at least one property fails.
	errCheckFailed = errors.New("check: property failed")

	// errSkipped marks a property whose fixed sizes exceed a configured cap.
	errSkipped = errors.New("check: exceeds configured cap")
)

type property struct {
	name string
	run  func() error
}

func checkCmd(a *app) *cobra.Command {
	var probe int

	c := &cobra.Command{
		Use:   "check",
		Short: "Verify the container contracts against the configured limits",
		Long:  checkLong,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if probe < 0 {
				return fmt.Errorf("--probe %d: %w", probe, errInvalidFlag)
			}
			w := cmd.OutOrStdout()
			if a.cfg.Element == config.ElementFloat {
				return runChecks(w, properties[float64](a.cfg, probe))
			}
			return runChecks(w, properties[int64](a.cfg, probe))
		},
	}

	c.Flags().IntVar(&probe, "probe", defaultProbe, "largest size actually allocated; caps above it are probed at this size")
	return c
}

func runChecks(w io.Writer, props []property) error {
	failed, skipped := 0, 0
	for _, p := range props {
		err := p.run()
		if errors.Is(err, errSkipped) {
			skipped++
			fmt.Fprintf(w, "SKIP %s: %v\n", p.name, err)
			logger.L().Info("check.skip", "property", p.name, "err", err)
			continue
		}
		if err != nil {
			failed++
			fmt.Fprintf(w, "FAIL %s: %v\n", p.name, err)
			logger.L().Warn("check.fail", "property", p.name, "err", err)
			continue
		}
		fmt.Fprintf(w, "PASS %s\n", p.name)
		logger.L().Debug("check.pass", "property", p.name)
	}
	fmt.Fprintf(w, "%d/%d passed, %d skipped\n", len(props)-failed-skipped, len(props), skipped)
	if failed > 0 {
		return fmt.Errorf("%d of %d: %w", failed, len(props), errCheckFailed)
	}
	return nil
}

// expectErr converts an operation result into a property verdict.
func expectErr(err, want error) error {
	if !errors.Is(err, want) {
		return fmt.Errorf("got %v, want %v", err, want)
	}
	return nil
}

// limits builds containers under the caps a check run is configured with.
type limits[T vector.Number] struct {
	vmax, mmax int
}

func (l limits[T]) vec(n int, opts ...vector.Option) (*vector.Vector[T], error) {
	if n > l.vmax {
		return nil, fmt.Errorf("vector size %d > cap %d: %w", n, l.vmax, errSkipped)
	}
	return vector.New[T](n, append([]vector.Option{vector.WithMaxSize(l.vmax)}, opts...)...)
}

func (l limits[T]) filled(n int, x T) (*vector.Vector[T], error) {
	v, err := l.vec(n)
	if err != nil {
		return nil, err
	}
	v.Fill(x)
	return v, nil
}

func (l limits[T]) mat(n int) (*utmatrix.Matrix[T], error) {
	if n > l.mmax {
		return nil, fmt.Errorf("matrix side %d > cap %d: %w", n, l.mmax, errSkipped)
	}
	return utmatrix.New[T](n, utmatrix.WithMaxSide(l.mmax))
}

// properties builds the contract checks for element type T. Every container is
// built under the configured caps; caps larger than probe are lowered to probe.
// probe must be non-negative.
func properties[T vector.Number](cfg config.Config, probe int) []property {
	l := limits[T]{
		vmax: min(cfg.MaxVectorSize, probe),
		mmax: min(cfg.MaxMatrixSize, probe),
	}

	return []property{
		{"vector sizes [0,max] construct", func() error {
			for _, n := range []int{0, 1, l.vmax / 2, l.vmax} {
				if n > l.vmax {
					continue
				}
				v, err := l.vec(n)
				if err != nil {
					return err
				}
				if v.Size() != n {
					return fmt.Errorf("size %d reported as %d", n, v.Size())
				}
			}
			return nil
		}},
		{"vector invalid sizes rejected", func() error {
			opt := vector.WithMaxSize(l.vmax)
			if _, err := vector.New[T](-1, opt); !errors.Is(err, vector.ErrInvalidSize) {
				return expectErr(err, vector.ErrInvalidSize)
			}
			_, err := vector.New[T](l.vmax+1, opt)
			return expectErr(err, vector.ErrInvalidSize)
		}},
		{"matrix invalid sides rejected", func() error {
			opt := utmatrix.WithMaxSide(l.mmax)
			if _, err := utmatrix.New[T](-1, opt); !errors.Is(err, utmatrix.ErrInvalidSize) {
				return expectErr(err, utmatrix.ErrInvalidSize)
			}
			_, err := utmatrix.New[T](l.mmax+1, opt)
			return expectErr(err, utmatrix.ErrInvalidSize)
		}},
		{"negative start index rejected", func() error {
			_, err := l.vec(min(5, l.vmax), vector.WithStartIndex(-2))
			return expectErr(err, vector.ErrInvalidStartIndex)
		}},
		{"copy is equal and independent", func() error {
			s, err := l.vec(5)
			if err != nil {
				return err
			}
			c := s.Clone()
			if !c.Equal(s) {
				return errors.New("clone differs from source")
			}
			if err := s.Set(0, 15); err != nil {
				return err
			}
			if x, _ := c.At(0); x != 0 {
				return fmt.Errorf("clone observed write: %v", x)
			}
			return nil
		}},
		{"self-assignment is a no-op", func() error {
			s, err := l.filled(10, 1)
			if err != nil {
				return err
			}
			before := s.Clone()
			if err := s.Assign(s); err != nil {
				return err
			}
			if !s.Equal(before) {
				return errors.New("vector changed")
			}
			return nil
		}},
		{"assignment adopts source size", func() error {
			dst, err := l.vec(10)
			if err != nil {
				return err
			}
			src, err := l.vec(5)
			if err != nil {
				return err
			}
			if err := dst.Assign(src); err != nil {
				return err
			}
			if dst.Size() != src.Size() || !dst.Equal(src) {
				return fmt.Errorf("size %d after assigning size %d", dst.Size(), src.Size())
			}
			return nil
		}},
		{"out-of-range index rejected", func() error {
			v, err := l.vec(10)
			if err != nil {
				return err
			}
			for _, k := range []int{-1, 10} {
				if _, err := v.At(k); !errors.Is(err, vector.ErrIndexOutOfRange) {
					return expectErr(err, vector.ErrIndexOutOfRange)
				}
			}
			m, err := l.mat(10)
			if err != nil {
				return err
			}
			_, err = m.Row(11)
			return expectErr(err, utmatrix.ErrIndexOutOfRange)
		}},
		{"element-wise add", func() error {
			ones, err := l.filled(5, 1)
			if err != nil {
				return err
			}
			twos, _ := l.filled(5, 2)
			sum, err := ones.Add(ones)
			if err != nil {
				return err
			}
			if !sum.Equal(twos) {
				return fmt.Errorf("1+1 = %v", sum)
			}
			return nil
		}},
		{"size mismatch rejected", func() error {
			a, err := l.vec(10)
			if err != nil {
				return err
			}
			b, _ := l.vec(5)
			if _, err := a.Add(b); !errors.Is(err, vector.ErrSizeMismatch) {
				return expectErr(err, vector.ErrSizeMismatch)
			}
			if _, err := a.Sub(b); !errors.Is(err, vector.ErrSizeMismatch) {
				return expectErr(err, vector.ErrSizeMismatch)
			}
			if _, err := a.Dot(b); !errors.Is(err, vector.ErrSizeMismatch) {
				return expectErr(err, vector.ErrSizeMismatch)
			}
			ma, err := l.mat(10)
			if err != nil {
				return err
			}
			mb, _ := l.mat(5)
			_, err = ma.Add(mb)
			return expectErr(err, utmatrix.ErrSizeMismatch)
		}},
		{"scalar add and multiply", func() error {
			zeros, err := l.filled(5, 0)
			if err != nil {
				return err
			}
			ones, _ := l.filled(5, 1)
			twos, _ := l.filled(5, 2)
			if !zeros.AddScalar(2).Equal(twos) || !ones.MulScalar(2).Equal(twos) {
				return errors.New("scalar arithmetic mismatch")
			}
			return nil
		}},
		{"dot product", func() error {
			ones, err := l.filled(5, 1)
			if err != nil {
				return err
			}
			dot, err := ones.Dot(ones)
			if err != nil {
				return err
			}
			if dot != 5 {
				return fmt.Errorf("dot = %v, want 5", dot)
			}
			return nil
		}},
		{"matrix shape and copy", func() error {
			m, err := l.mat(3)
			if err != nil {
				return err
			}
			r0, _ := m.Row(0)
			r2, _ := m.Row(2)
			if r0.Size() != 3 || r2.Size() != 1 {
				return fmt.Errorf("row lengths %d and %d", r0.Size(), r2.Size())
			}
			c := m.Clone()
			if err := r0.Set(0, 7); err != nil {
				return err
			}
			if x, _ := m.At(0, 0); x != 7 {
				return fmt.Errorf("read back %v", x)
			}
			if x, _ := c.At(0, 0); x != 0 {
				return fmt.Errorf("copy observed write: %v", x)
			}
			return nil
		}},
	}
}
