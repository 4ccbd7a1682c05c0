package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenEmptyPathDiscards(t *testing.T) {
	l, c, err := Open("")
	require.NoError(t, err)
	assert.Nil(t, c)
	assert.Equal(t, NilLogger, l)
	l.Info("dropped")
}

func TestOpenWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inspector.log")
	l, c, err := Open(path)
	require.NoError(t, err)

	l.Info("set warehouse/Capacity = 12")
	l.Flush()
	require.NoError(t, c.Close())

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestOpenBadPath(t *testing.T) {
	_, _, err := Open(filepath.Join(t.TempDir(), "missing", "x.log"))
	assert.Error(t, err)
}
