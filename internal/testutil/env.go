package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// WriteProgram writes source to dir/name and returns the full path.
func WriteProgram(t *testing.T, dir, name, source string) string {
	t.Helper()
	return writeFile(t, dir, name, []byte(source))
}

// WriteConfig writes a config file to dir/name and returns the full path.
func WriteConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	return writeFile(t, dir, name, []byte(content))
}

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}
