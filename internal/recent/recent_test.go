package recent

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeDoc(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("# doc\n"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoad_MissingFileReturnsEmpty(t *testing.T) {
	list := Load(filepath.Join(t.TempDir(), "recent.json"))
	if list == nil {
		t.Fatal("Load() returned nil")
	}
	if len(list.Files) != 0 {
		t.Errorf("Load() of missing file has %d entries, want 0", len(list.Files))
	}
}

func TestLoad_CorruptedFileReturnsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "recent.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	list := Load(path)
	if len(list.Files) != 0 {
		t.Errorf("Load() of corrupted file has %d entries, want 0", len(list.Files))
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	doc := writeDoc(t, dir, "a.md")
	storePath := filepath.Join(dir, "state", "recent.json")

	list := &List{}
	list.Add(doc, "a.md")
	if err := list.Save(storePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded := Load(storePath)
	if len(loaded.Files) != 1 {
		t.Fatalf("Load() has %d entries, want 1", len(loaded.Files))
	}
	if loaded.Files[0].Path != doc {
		t.Errorf("Files[0].Path = %q, want %q", loaded.Files[0].Path, doc)
	}
	if loaded.Files[0].Title != "a.md" {
		t.Errorf("Files[0].Title = %q, want %q", loaded.Files[0].Title, "a.md")
	}
}

func TestLoad_DropsMissingDocuments(t *testing.T) {
	dir := t.TempDir()
	keep := writeDoc(t, dir, "keep.md")
	gone := writeDoc(t, dir, "gone.md")
	storePath := filepath.Join(dir, "recent.json")

	list := &List{}
	list.Add(keep, "keep.md")
	list.Add(gone, "gone.md")
	if err := list.Save(storePath); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	if err := os.Remove(gone); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	loaded := Load(storePath)
	if len(loaded.Files) != 1 {
		t.Fatalf("Load() has %d entries, want 1", len(loaded.Files))
	}
	if loaded.Files[0].Path != keep {
		t.Errorf("Files[0].Path = %q, want surviving document", loaded.Files[0].Path)
	}
}

func TestAdd_MovesExistingEntryToFront(t *testing.T) {
	list := &List{}
	list.Files = []File{
		{Path: "/a.md", Title: "a.md", LastOpened: time.Now().Add(-time.Hour)},
		{Path: "/b.md", Title: "b.md", LastOpened: time.Now().Add(-time.Minute)},
	}

	list.Add("/a.md", "a.md")

	if len(list.Files) != 2 {
		t.Fatalf("Add() of existing path grew list to %d", len(list.Files))
	}
	if list.Files[0].Path != "/a.md" {
		t.Errorf("Files[0].Path = %q, want re-opened entry first", list.Files[0].Path)
	}
}

func TestAdd_TrimsToMax(t *testing.T) {
	list := &List{}
	for i := 0; i < MaxFiles+5; i++ {
		list.Add(filepath.Join("/docs", string(rune('a'+i))+".md"), "doc")
	}

	if len(list.Files) != MaxFiles {
		t.Errorf("list has %d entries, want %d", len(list.Files), MaxFiles)
	}
}

func TestPaths(t *testing.T) {
	list := &List{}
	list.Files = []File{
		{Path: "/b.md"},
		{Path: "/a.md"},
	}

	paths := list.Paths()
	if len(paths) != 2 || paths[0] != "/b.md" || paths[1] != "/a.md" {
		t.Errorf("Paths() = %v", paths)
	}
}
