package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/utmatrix/utmatrix"
	"github.com/katalvlaran/utmatrix/vector"
)

func TestLoad_EmptyPathIsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, vector.MaxVectorSize, cfg.MaxVectorSize)
	require.Equal(t, utmatrix.MaxMatrixSize, cfg.MaxMatrixSize)
}

func TestLoad_MissingFileIsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "limits.yaml")
	doc := "max_vector_size: 64\nmax_matrix_size: 8\nelement: float\n"
	require.NoError(t, os.WriteFile(p, []byte(doc), 0o600))

	cfg, err := Load(p)
	require.NoError(t, err)
	require.Equal(t, Config{MaxVectorSize: 64, MaxMatrixSize: 8, Element: ElementFloat}, cfg)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("max_matrix_size: 3\n"))
	require.NoError(t, err)
	require.Equal(t, 3, cfg.MaxMatrixSize)
	require.Equal(t, vector.MaxVectorSize, cfg.MaxVectorSize)
	require.Equal(t, ElementInt, cfg.Element)
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"negative vector": "max_vector_size: -1\n",
		"negative matrix": "max_matrix_size: -1\n",
		"unknown element": "element: complex\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	_, err := Parse([]byte("max_vector_size: [1, 2]\n"))
	require.Error(t, err)
}

func TestOptions_ApplyCaps(t *testing.T) {
	cfg := Config{MaxVectorSize: 4, MaxMatrixSize: 2, Element: ElementInt}

	_, err := vector.New[int](5, cfg.VectorOptions()...)
	require.ErrorIs(t, err, vector.ErrInvalidSize)

	_, err = utmatrix.New[int](3, cfg.MatrixOptions()...)
	require.ErrorIs(t, err, utmatrix.ErrInvalidSize)
}
