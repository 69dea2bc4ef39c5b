package fileindex

import (
	"testing"
	"time"
)

func TestNewIndex_IsStaleAndEmpty(t *testing.T) {
	ix := NewIndex()

	if !ix.Empty() {
		t.Error("NewIndex().Empty() = false, want true")
	}
	if !ix.Stale(time.Hour) {
		t.Error("never-refreshed index should report stale")
	}
}

func TestIndex_Update(t *testing.T) {
	ix := NewIndex()

	ix.Update([]string{"/a.md", "/b.md"})

	if ix.Count() != 2 {
		t.Errorf("Count() = %d, want 2", ix.Count())
	}
	if ix.Empty() {
		t.Error("Empty() = true after Update")
	}
	if ix.Stale(time.Minute) {
		t.Error("freshly updated index reported stale")
	}
}

func TestIndex_StaleAfterThreshold(t *testing.T) {
	ix := NewIndex()
	ix.Update([]string{"/a.md"})

	if !ix.Stale(0) {
		t.Error("index should be stale with a zero threshold")
	}
}

func TestIndex_PathsIsCopy(t *testing.T) {
	ix := NewIndex()
	ix.Update([]string{"/a.md"})

	paths := ix.Paths()
	paths[0] = "/mutated.md"

	if ix.Paths()[0] != "/a.md" {
		t.Error("Paths() exposed internal state to mutation")
	}
}
