package storage

import (
	"scribe/internal/config"
	"strings"
	"testing"
)

func TestBuildObjectPath(t *testing.T) {
	key := buildObjectPath("Exports", "My Draft!", ".MD")
	parts := strings.Split(key, "/")
	if len(parts) != 5 {
		t.Fatalf("expected category/yyyy/mm/dd/file, got %q", key)
	}
	if parts[0] != "exports" {
		t.Errorf("expected sanitised category, got %q", parts[0])
	}
	if parts[4] != "my-draft.md" {
		t.Errorf("expected sanitised filename, got %q", parts[4])
	}

	fallback := buildObjectPath("", "", "")
	if !strings.HasPrefix(fallback, "misc/") || !strings.HasSuffix(fallback, ".bin") {
		t.Errorf("unexpected fallback path %q", fallback)
	}
}

func TestDetectContentType(t *testing.T) {
	tests := map[string]string{
		"md":  "text/markdown; charset=utf-8",
		".md": "text/markdown; charset=utf-8",
		"txt": "text/plain; charset=utf-8",
		"":    "application/octet-stream",
	}
	for ext, want := range tests {
		if got := detectContentType(ext); got != want {
			t.Errorf("detectContentType(%q) = %q, want %q", ext, got, want)
		}
	}
}

func TestPublicURL(t *testing.T) {
	tests := []struct {
		base, key, want string
	}{
		{"/files", "exports/a.md", "/files/exports/a.md"},
		{"https://cdn.example.com/", "/exports/a.md", "https://cdn.example.com/exports/a.md"},
		{"", "exports/a.md", "exports/a.md"},
		{"/files", "", ""},
	}
	for _, tt := range tests {
		if got := PublicURL(tt.base, tt.key); got != tt.want {
			t.Errorf("PublicURL(%q, %q) = %q, want %q", tt.base, tt.key, got, tt.want)
		}
	}
}

func TestJoinPrefix(t *testing.T) {
	if got := joinPrefix("/scribe/", "/exports/a.md"); got != "scribe/exports/a.md" {
		t.Fatalf("unexpected key %q", got)
	}
	if got := objectKey("", SaveOptions{Category: "exports", BaseName: "a", Extension: "md"}); !strings.HasPrefix(got, "exports/") {
		t.Fatalf("unexpected key %q", got)
	}
}

func TestNewStorage(t *testing.T) {
	store, err := NewStorage(config.Config{StorageType: "none"})
	if err != nil || store != nil {
		t.Fatalf("expected disabled storage, got %v / %v", store, err)
	}

	store, err = NewStorage(config.Config{StorageType: "local", StorageLocalDir: t.TempDir()})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := store.(LocalBaseDirProvider); !ok {
		t.Fatalf("expected local storage, got %T", store)
	}

	if _, err := NewStorage(config.Config{StorageType: "ftp"}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
	if _, err := NewStorage(config.Config{StorageType: "s3"}); err == nil {
		t.Fatal("expected error for incomplete s3 config")
	}
}
