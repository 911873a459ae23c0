package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testKV(t *testing.T, kv KV) {
	t.Helper()

	_, ok, err := kv.Get("cryptoPortfolio")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set("cryptoPortfolio", []byte(`[]`)))
	require.NoError(t, kv.Set("cryptoPortfolio", []byte(`[{"id":"bitcoin"}]`)))

	v, ok, err := kv.Get("cryptoPortfolio")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"bitcoin"}]`, string(v))

	require.NoError(t, kv.Delete("cryptoPortfolio"))
	require.NoError(t, kv.Delete("cryptoPortfolio"))

	_, ok, err = kv.Get("cryptoPortfolio")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileKV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	testKV(t, kv)
}

func TestFileKVWritesNamedFile(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set("cryptoPortfolio", []byte(`[]`)))

	data, err := os.ReadFile(filepath.Join(dir, "cryptoPortfolio.json"))
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileKVRejectsBadKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		err := kv.Set(key, nil)
		assert.ErrorIs(t, err, ErrInvalidKey, key)
	}

	_, err = NewFileKV("")
	assert.Error(t, err)
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemoryKV())
}

func TestMemoryKVCopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	value := []byte("abc")
	require.NoError(t, kv.Set("k", value))
	value[0] = 'x'

	got, _, _ := kv.Get("k")
	assert.Equal(t, "abc", string(got))

	kv.FailWrites = errors.New("disk full")
	assert.EqualError(t, kv.Set("k", nil), "disk full")
}
