package auth

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchTokenRemoval(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"accessToken":"t1"}`), 0o600))

	cleared := make(chan struct{}, 1)
	w, err := WatchToken(path, func() {
		select {
		case cleared <- struct{}{}:
		default:
		}
	}, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Remove(path))

	select {
	case <-cleared:
	case <-time.After(3 * time.Second):
		t.Fatal("token removal not observed")
	}
}

func TestWatchTokenIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{}`), 0o600))
	sibling := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(sibling, []byte("x"), 0o600))

	cleared := make(chan struct{}, 1)
	w, err := WatchToken(path, func() { cleared <- struct{}{} }, nil)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.Remove(sibling))

	select {
	case <-cleared:
		t.Fatal("sibling removal must not trigger the callback")
	case <-time.After(300 * time.Millisecond):
	}
}
