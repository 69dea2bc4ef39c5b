// Package recent tracks recently opened documents. The home tab shows
// this list so a reader can jump back into whatever they had open last.
package recent

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// File is one recently opened document.
type File struct {
	// Path is the absolute path to the document.
	Path string `json:"path"`
	// Title is the display title, usually the base name.
	Title string `json:"title"`
	// LastOpened is when the document was last opened.
	LastOpened time.Time `json:"last_opened"`
}

// List manages the recently opened documents, newest first.
type List struct {
	Files []File `json:"files"`
}

const (
	// MaxFiles is the maximum number of entries kept.
	MaxFiles = 10
	// FileName is the file name under the margo user directory.
	FileName = "recent.json"
)

// DefaultPath returns the recent-files path, ~/.margo/recent.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".margo", FileName), nil
}

// Load reads the recent list from path. A missing or corrupted file
// yields an empty list; entries whose documents no longer exist are
// dropped.
func Load(path string) *List {
	data, err := os.ReadFile(path)
	if err != nil {
		return &List{}
	}

	var list List
	if err := json.Unmarshal(data, &list); err != nil {
		return &List{}
	}

	valid := make([]File, 0, len(list.Files))
	for _, f := range list.Files {
		if _, err := os.Stat(f.Path); err == nil {
			valid = append(valid, f)
		}
	}
	list.Files = valid

	return &list
}

// Save writes the list to path, creating parent directories as needed.
func (l *List) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Add records a document open, moving an existing entry to the front.
func (l *List) Add(path, title string) {
	now := time.Now()

	for i := range l.Files {
		if l.Files[i].Path == path {
			l.Files[i].LastOpened = now
			l.Files[i].Title = title
			l.sortAndTrim()
			return
		}
	}

	l.Files = append(l.Files, File{
		Path:       path,
		Title:      title,
		LastOpened: now,
	})
	l.sortAndTrim()
}

// sortAndTrim sorts by last opened (newest first) and trims to max.
func (l *List) sortAndTrim() {
	sort.Slice(l.Files, func(i, j int) bool {
		return l.Files[i].LastOpened.After(l.Files[j].LastOpened)
	})
	if len(l.Files) > MaxFiles {
		l.Files = l.Files[:MaxFiles]
	}
}

// Paths returns the paths of all entries, newest first.
func (l *List) Paths() []string {
	paths := make([]string, len(l.Files))
	for i, f := range l.Files {
		paths[i] = f.Path
	}
	return paths
}
