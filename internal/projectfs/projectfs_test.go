package projectfs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/camelgen/internal/core/errors"
	"go.eggybyte.com/camelgen/internal/testingx"
)

func TestCreateDirectoryIdempotent(t *testing.T) {
	pfs := New(t.TempDir())

	created, err := pfs.CreateDirectory("src/main/java/com/acme")
	require.NoError(t, err)
	assert.True(t, created)

	created, err = pfs.CreateDirectory("src/main/java/com/acme")
	require.NoError(t, err)
	assert.False(t, created)

	ok, err := pfs.DirectoryExists("src/main/java/com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreateDirectoryOverFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), []byte("x"), 0644))

	_, err := New(root).CreateDirectory("src")
	testingx.AssertError(t, err, errors.CodeInternal)
}

func TestWriteAndReadFile(t *testing.T) {
	pfs := New(t.TempDir())

	require.NoError(t, pfs.WriteFile("src/main/resources/log4j.properties", []byte("a=b\n"), 0644))

	ok, err := pfs.FileExists("src/main/resources/log4j.properties")
	require.NoError(t, err)
	assert.True(t, ok)

	content, err := pfs.ReadFile("src/main/resources/log4j.properties")
	require.NoError(t, err)
	assert.Equal(t, "a=b\n", string(content))

	require.NoError(t, pfs.WriteFile("src/main/resources/log4j.properties", []byte("c=d\n"), 0644))
	content, err = pfs.ReadFile("src/main/resources/log4j.properties")
	require.NoError(t, err)
	assert.Equal(t, "c=d\n", string(content))
}

func TestMissingPaths(t *testing.T) {
	pfs := New(t.TempDir())

	ok, err := pfs.FileExists("pom.xml")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = pfs.DirectoryExists("src")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = pfs.ReadFile("pom.xml")
	testingx.AssertError(t, err, errors.CodeInternal)
}
