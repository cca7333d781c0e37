package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	key, err := store.Save(context.Background(), []byte("# Title\n\nbody"), SaveOptions{
		Category:  "exports",
		Extension: "md",
		BaseName:  "content-7-v2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(key, "exports/") || !strings.HasSuffix(key, "/content-7-v2.md") {
		t.Fatalf("unexpected key %q", key)
	}

	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "# Title\n\nbody" {
		t.Fatalf("unexpected file content %q", data)
	}
}

func TestLocalStorageSkipIfExists(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := SaveOptions{Category: "snapshots", Extension: "md", BaseName: "content-1-v1", SkipIfExists: true}

	first, err := store.Save(context.Background(), []byte("original"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := store.Save(context.Background(), []byte("changed"), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Fatalf("expected same key, got %q and %q", first, second)
	}
	data, _ := os.ReadFile(filepath.Join(dir, filepath.FromSlash(first)))
	if string(data) != "original" {
		t.Fatalf("expected existing file to be kept, got %q", data)
	}
}

func TestLocalStorageRejectsEmptyPayload(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := store.Save(context.Background(), nil, SaveOptions{}); err == nil {
		t.Fatal("expected error for empty payload")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := store.Save(ctx, []byte("x"), SaveOptions{}); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}
