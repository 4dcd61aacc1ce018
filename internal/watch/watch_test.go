package watch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msto63/tms/pkg/core/logging"
)

func quietLogger() *logging.Logger {
	return logging.NewWithConfig(logging.Config{
		Name:   "test",
		Level:  logging.LevelError,
		Output: &bytes.Buffer{},
	})
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.toml")
	if err := os.WriteFile(path, []byte("[[state]]\nname = \"q0\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(path, quietLogger(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	// Give the watcher a moment to register before touching the file.
	time.Sleep(200 * time.Millisecond)
	if err := os.WriteFile(path, []byte("[[state]]\nname = \"q1\"\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case <-changed:
	case <-time.After(5 * time.Second):
		t.Fatal("onChange was not called after a write")
	}

	w.Stop()
	if err := <-done; err != nil {
		t.Errorf("Start() error = %v", err)
	}
}

func TestWatcher_IgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "machine.toml")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	changed := make(chan struct{}, 1)
	w, err := New(path, quietLogger(), func() {
		select {
		case changed <- struct{}{}:
		default:
		}
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Start(ctx) }()

	time.Sleep(200 * time.Millisecond)
	sibling := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(sibling, []byte("y"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	select {
	case <-changed:
		t.Error("onChange fired for an unrelated file")
	case <-time.After(1 * time.Second):
	}

	w.Stop()
	<-done
}
