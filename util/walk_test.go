package util

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func createFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir for %s: %v", path, err)
		}
		if err := os.WriteFile(path, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
}

func TestWalk(t *testing.T) {
	dir := t.TempDir()
	createFiles(t, dir, "a.png", "b.JPG", "notes.txt", "sub/c.jpeg", "sub/deeper/d.png")
	if err := os.Mkdir(filepath.Join(dir, "empty"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	var got []string
	for path, err := range Walk(dir) {
		if err != nil {
			t.Fatalf("Walk returned error: %v", err)
		}
		rel, _ := filepath.Rel(dir, path)
		got = append(got, filepath.ToSlash(rel))
	}
	sort.Strings(got)

	want := []string{"a.png", "b.JPG", "notes.txt", "sub/c.jpeg", "sub/deeper/d.png"}
	if len(got) != len(want) {
		t.Fatalf("Walk yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWalkIsRestartable(t *testing.T) {
	dir := t.TempDir()
	createFiles(t, dir, "a.png", "sub/b.png")

	seq := Walk(dir)
	count := func() int {
		n := 0
		for _, err := range seq {
			if err != nil {
				t.Fatalf("Walk returned error: %v", err)
			}
			n++
		}
		return n
	}
	if first, second := count(), count(); first != 2 || second != 2 {
		t.Errorf("expected 2 files on each pass, got %d and %d", first, second)
	}
}

func TestWalkStopsEarly(t *testing.T) {
	dir := t.TempDir()
	createFiles(t, dir, "a.png", "b.png", "c.png", "d.png")

	n := 0
	for _, err := range Walk(dir) {
		if err != nil {
			t.Fatalf("Walk returned error: %v", err)
		}
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("expected to stop after 2 files, got %d", n)
	}
}

func TestWalkNonexistentRoot(t *testing.T) {
	dir := t.TempDir()
	var gotErr error
	for path, err := range Walk(filepath.Join(dir, "missing")) {
		if err == nil {
			t.Fatalf("unexpected path %q", path)
		}
		gotErr = err
	}
	if !os.IsNotExist(gotErr) {
		t.Errorf("expected a not-exist error, got %v", gotErr)
	}
}

func TestWalkSkipsDirectorySymlink(t *testing.T) {
	dir := t.TempDir()
	createFiles(t, dir, "real/a.png", "b.png")
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "album.png")); err != nil {
		t.Skipf("symlinks unavailable: %v", err)
	}
	if err := os.Symlink(filepath.Join(dir, "b.png"), filepath.Join(dir, "link.png")); err != nil {
		t.Fatalf("symlink: %v", err)
	}

	var got []string
	for path, err := range Walk(dir) {
		if err != nil {
			t.Fatalf("Walk returned error: %v", err)
		}
		rel, _ := filepath.Rel(dir, path)
		got = append(got, filepath.ToSlash(rel))
	}
	sort.Strings(got)

	want := []string{"b.png", "link.png", "real/a.png"}
	if len(got) != len(want) {
		t.Fatalf("Walk yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d: got %q, want %q", i, got[i], want[i])
		}
	}
}
