package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stay/internal/adapters/fs"
	"go.trai.ch/stay/internal/core/domain"
)

func newLocal(t *testing.T) (*fs.Local, string) {
	t.Helper()
	root := t.TempDir()
	l, err := fs.NewLocal(root)
	require.NoError(t, err)
	return l, root
}

func TestLocal_WriteAndRead(t *testing.T) {
	l, root := newLocal(t)

	require.NoError(t, l.MkdirAll(".stay"))
	require.NoError(t, l.WriteFile(".stay/positions.json", []byte(`{"a.md":{}}`)))

	data, err := l.ReadFile(".stay/positions.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a.md":{}}`, string(data))

	info, err := os.Stat(filepath.Join(root, ".stay", "positions.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(domain.FilePerm), info.Mode().Perm())
}

func TestLocal_WriteReplacesWithoutLeftovers(t *testing.T) {
	l, root := newLocal(t)

	require.NoError(t, l.WriteFile("p.json", []byte("first")))
	require.NoError(t, l.WriteFile("p.json", []byte("second")))

	data, err := l.ReadFile("p.json")
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestLocal_WriteIntoMissingDirFails(t *testing.T) {
	l, _ := newLocal(t)

	err := l.WriteFile("missing/p.json", []byte("x"))
	assert.Error(t, err)
}

func TestLocal_Exists(t *testing.T) {
	l, root := newLocal(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.md"), nil, 0o600))

	ok, err := l.Exists("a.md")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = l.Exists("b.md")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = l.Exists(filepath.Join(root, "a.md"))
	require.NoError(t, err)
	assert.True(t, ok, "absolute paths inside the root are allowed")
}

func TestLocal_RejectsPathsOutsideRoot(t *testing.T) {
	l, _ := newLocal(t)

	for _, name := range []string{"../x", "a/../../x", "/etc/passwd"} {
		t.Run(name, func(t *testing.T) {
			_, err := l.ReadFile(name)
			require.ErrorContains(t, err, domain.ErrPathOutsideScope.Error())

			err = l.WriteFile(name, nil)
			require.ErrorContains(t, err, domain.ErrPathOutsideScope.Error())

			_, err = l.Exists(name)
			require.ErrorContains(t, err, domain.ErrPathOutsideScope.Error())

			err = l.MkdirAll(name)
			require.ErrorContains(t, err, domain.ErrPathOutsideScope.Error())
		})
	}
}

func TestLocal_Root(t *testing.T) {
	root := t.TempDir()
	l, err := fs.NewLocal(root)
	require.NoError(t, err)

	abs, err := filepath.Abs(root)
	require.NoError(t, err)
	assert.Equal(t, abs, l.Root())
}
