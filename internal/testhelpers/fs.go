// Package testhelpers contains fixtures shared by command tests
package testhelpers

import (
	"path"
	"strings"
	"testing"

	"github.com/hack-pad/hackpadfs"
	"github.com/hack-pad/hackpadfs/mem"
	"github.com/stretchr/testify/require"
)

// FSWithFiles returns an in-memory FS with the given files contents generated inside it.
// The contents are trimmed and a newline appended, so each file reads as a list of lines.
func FSWithFiles(t *testing.T, files map[string]string) hackpadfs.FS {
	t.Helper()
	fs, err := mem.NewFS()
	require.NoError(t, err)
	for name, contents := range files {
		require.NoError(t, hackpadfs.MkdirAll(fs, path.Dir(name), 0o700))
		require.NoError(t, hackpadfs.WriteFullFile(fs, name, []byte(strings.TrimSpace(contents)+"\n"), 0o600))
	}
	return fs
}
