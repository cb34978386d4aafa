package upload

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestStoreSaveWritesInsideDir(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	path, err := store.Save("../../escape.png", []byte("bytes"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		t.Fatalf("Abs failed: %v", err)
	}
	if !strings.HasPrefix(abs, absDir+string(filepath.Separator)) {
		t.Fatalf("path %q escapes upload dir %q", abs, absDir)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "bytes" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestStoreSaveOverwritesSameName(t *testing.T) {
	store, err := NewStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	first, err := store.Save("photo.png", []byte("first"))
	if err != nil {
		t.Fatalf("first Save failed: %v", err)
	}
	second, err := store.Save("photo.png", []byte("second"))
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected same path, got %q and %q", first, second)
	}

	content, err := os.ReadFile(second)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(content) != "second" {
		t.Fatalf("expected last write to win, got %q", content)
	}
}

func TestStoreSaveRejectsUnusableName(t *testing.T) {
	store, err := NewStore(t.TempDir(), zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}

	if _, err := store.Save("../..", []byte("x")); !errors.Is(err, ErrUnusableFilename) {
		t.Fatalf("expected ErrUnusableFilename, got %v", err)
	}
}

func TestNewStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "nested")
	if _, err := NewStore(dir, zap.NewNop()); err != nil {
		t.Fatalf("NewStore failed: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("Stat failed: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("%q is not a directory", dir)
	}
}
