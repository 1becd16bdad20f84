// internal/storage/archive/localfs_test.go
package archive

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalFS_ImplementsStorage(t *testing.T) {
	var _ Storage = (*LocalFS)(nil)
}

func TestLocalFS_WriteRead(t *testing.T) {
	fs, err := NewLocalFS(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	data := []byte(`{"symbol":"510050"}`)

	require.NoError(t, fs.Write(ctx, "510050/physical/delta-0.3.json", data))

	got, err := fs.Read(ctx, "510050/physical/delta-0.3.json")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestLocalFS_Exists(t *testing.T) {
	fs, err := NewLocalFS(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	exists, err := fs.Exists(ctx, "missing.json")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, fs.Write(ctx, "present.json", []byte("{}")))
	exists, err = fs.Exists(ctx, "present.json")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLocalFS_ListSorted(t *testing.T) {
	fs, err := NewLocalFS(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Write(ctx, "510300/synthetic/delta-0.5.json", []byte("b")))
	require.NoError(t, fs.Write(ctx, "510300/physical/delta-0.2.json", []byte("a")))
	require.NoError(t, fs.Write(ctx, "510050/physical/delta-0.3.json", []byte("c")))

	paths, err := fs.List(ctx, "510300")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"510300/physical/delta-0.2.json",
		"510300/synthetic/delta-0.5.json",
	}, paths)

	none, err := fs.List(ctx, "159915")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestLocalFS_Delete(t *testing.T) {
	fs, err := NewLocalFS(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, fs.Write(ctx, "a.json", []byte("{}")))
	require.NoError(t, fs.Delete(ctx, "a.json"))

	exists, err := fs.Exists(ctx, "a.json")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestLocalFS_RejectsEscape(t *testing.T) {
	fs, err := NewLocalFS(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	assert.Error(t, fs.Write(ctx, "../outside.json", []byte("{}")))
	_, err = fs.Read(ctx, "../../etc/passwd")
	assert.Error(t, err)
}
