package watch

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestRelevant(t *testing.T) {
	w := &Watcher{opts: Options{Match: func(path string) bool { return strings.HasSuffix(path, ".hy") }}}

	tests := []struct {
		ev       fsnotify.Event
		expected bool
	}{
		{fsnotify.Event{Name: "a.hy", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "a.hy", Op: fsnotify.Create}, true},
		{fsnotify.Event{Name: "a.hy", Op: fsnotify.Remove}, true},
		{fsnotify.Event{Name: "a.hy", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "a.hy", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "a.txt", Op: fsnotify.Write}, false},
	}

	for i, tt := range tests {
		if got := w.relevant(tt.ev); got != tt.expected {
			t.Errorf("tests[%d] - relevant(%v) = %v, want %v", i, tt.ev, got, tt.expected)
		}
	}
}

func TestFlush_SortsAndDeduplicates(t *testing.T) {
	w := &Watcher{pending: make(map[string]struct{})}
	w.add("b.hy")
	w.add("./a.hy")
	w.add("b.hy")

	var got []Change
	w.flush(context.Background(), func(_ context.Context, c Change) { got = append(got, c) })

	if len(got) != 1 {
		t.Fatalf("expected one change, got %d", len(got))
	}
	if !slices.Equal(got[0].Paths, []string{"a.hy", "b.hy"}) {
		t.Fatalf("unexpected paths %v", got[0].Paths)
	}

	w.flush(context.Background(), func(_ context.Context, c Change) { t.Fatalf("unexpected change %v", c) })
}

func TestNew_MissingPath(t *testing.T) {
	if _, err := New([]string{filepath.Join(t.TempDir(), "missing")}, Options{}); err == nil {
		t.Fatalf("expected error for a missing path")
	}
}

func TestRun_DeliversChanges(t *testing.T) {
	dir := t.TempDir()

	w, err := New([]string{dir}, Options{
		Debounce: 20 * time.Millisecond,
		Match:    func(path string) bool { return filepath.Ext(path) == ".hy" },
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	changes := make(chan Change, 8)
	done := make(chan error, 1)
	go func() {
		done <- w.Run(ctx, func(_ context.Context, c Change) { changes <- c })
	}()

	path := filepath.Join(dir, "main.hy")
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("let x = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case c := <-changes:
		if !slices.Equal(c.Paths, []string{path}) {
			t.Fatalf("unexpected paths %v", c.Paths)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("no change delivered")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not stop after cancel")
	}
}
