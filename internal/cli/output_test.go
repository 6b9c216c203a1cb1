package cli

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.txt")
	require.NoError(t, writeFile(path, func(w io.Writer) error {
		_, err := io.WriteString(w, "ok\n")
		return err
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ok\n", string(data))
}

func TestWriteFileReportsWriteError(t *testing.T) {
	errWrite := errors.New("write failed")
	err := writeFile(filepath.Join(t.TempDir(), "out.txt"), func(io.Writer) error {
		return errWrite
	})
	require.ErrorIs(t, err, errWrite)
}

func TestWriteFileReportsCloseError(t *testing.T) {
	err := writeFile(filepath.Join(t.TempDir(), "out.txt"), func(w io.Writer) error {
		// Closing early makes the deferred close fail.
		return w.(*os.File).Close()
	})
	require.ErrorIs(t, err, os.ErrClosed)
	assert.Contains(t, err.Error(), "closing output")
}

func TestWriteFileCreateError(t *testing.T) {
	err := writeFile(filepath.Join(t.TempDir(), "missing", "out.txt"), func(io.Writer) error {
		return nil
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "creating output")
}
