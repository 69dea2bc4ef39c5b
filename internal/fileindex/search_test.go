package fileindex

import "testing"

func testIndex() *Index {
	ix := NewIndex()
	ix.Update([]string{
		"/docs/readme.md",
		"/docs/roadmap.md",
		"/notes/meeting-notes.md",
		"/notes/todo.md",
	})
	return ix
}

func TestSearch_EmptyQueryReturnsFirstN(t *testing.T) {
	ix := testIndex()

	results := ix.Search("", 2)

	if len(results) != 2 {
		t.Fatalf("Search(\"\") returned %d results, want 2", len(results))
	}
	if results[0].Path != "/docs/readme.md" {
		t.Errorf("results[0].Path = %q, want %q", results[0].Path, "/docs/readme.md")
	}
}

func TestSearch_SubstringMatch(t *testing.T) {
	ix := testIndex()

	results := ix.Search("todo", 10)

	if len(results) != 1 {
		t.Fatalf("Search(\"todo\") returned %d results, want 1", len(results))
	}
	if results[0].Path != "/notes/todo.md" {
		t.Errorf("results[0].Path = %q, want %q", results[0].Path, "/notes/todo.md")
	}
}

func TestSearch_FilenameMatchBeatsDirectoryMatch(t *testing.T) {
	ix := NewIndex()
	ix.Update([]string{
		"/todo/archive.md",
		"/notes/todo.md",
	})

	results := ix.Search("todo", 10)

	if len(results) != 2 {
		t.Fatalf("Search(\"todo\") returned %d results, want 2", len(results))
	}
	if results[0].Path != "/notes/todo.md" {
		t.Errorf("results[0].Path = %q, want the filename match first", results[0].Path)
	}
}

func TestSearch_SubsequenceMatch(t *testing.T) {
	ix := testIndex()

	results := ix.Search("mtnote", 10)

	if len(results) == 0 {
		t.Fatal("Search(\"mtnote\") returned nothing, want a subsequence hit")
	}
	if results[0].Path != "/notes/meeting-notes.md" {
		t.Errorf("results[0].Path = %q, want %q", results[0].Path, "/notes/meeting-notes.md")
	}
}

func TestSearch_NoMatch(t *testing.T) {
	ix := testIndex()

	if results := ix.Search("zzzzqx", 10); len(results) != 0 {
		t.Errorf("Search(\"zzzzqx\") returned %d results, want 0", len(results))
	}
}

func TestSearch_LimitApplies(t *testing.T) {
	ix := testIndex()

	results := ix.Search("md", 2)

	if len(results) > 2 {
		t.Errorf("Search() returned %d results, want at most 2", len(results))
	}
}

func TestSearch_CaseInsensitive(t *testing.T) {
	ix := testIndex()

	if results := ix.Search("TODO", 10); len(results) != 1 {
		t.Errorf("Search(\"TODO\") returned %d results, want 1", len(results))
	}
}

func TestIsSubsequence(t *testing.T) {
	tests := []struct {
		query  string
		target string
		want   bool
	}{
		{"abc", "aXbXc", true},
		{"abc", "abc", true},
		{"abc", "acb", false},
		{"", "anything", true},
		{"a", "", false},
	}

	for _, tt := range tests {
		if got := isSubsequence(tt.query, tt.target); got != tt.want {
			t.Errorf("isSubsequence(%q, %q) = %v, want %v", tt.query, tt.target, got, tt.want)
		}
	}
}
