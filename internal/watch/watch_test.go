package watch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFileTriggersOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: a\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 8)
	done := make(chan error, 1)
	go func() {
		done <- File(ctx, path, 20*time.Millisecond, func() error {
			calls <- struct{}{}
			return nil
		})
	}()

	// Keep writing until the watcher is registered and fires.
	deadline := time.After(5 * time.Second)
	tick := time.NewTicker(50 * time.Millisecond)
	defer tick.Stop()
wait:
	for {
		select {
		case <-calls:
			break wait
		case <-tick.C:
			require.NoError(t, os.WriteFile(path, []byte("name: b\n"), 0644))
		case <-deadline:
			t.Fatal("onChange never called")
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestFileIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pattern.yaml")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()

	called := false
	go func() {
		time.Sleep(100 * time.Millisecond)
		_ = os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0644)
	}()
	err := File(ctx, path, 10*time.Millisecond, func() error {
		called = true
		return nil
	})
	require.NoError(t, err)
	require.False(t, called)
}

func TestFileMissingDir(t *testing.T) {
	err := File(context.Background(), filepath.Join(t.TempDir(), "nope", "p.yaml"), time.Millisecond, func() error { return nil })
	require.Error(t, err)
}
