package fileindex

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skipDirs are directory names never descended into during a scan.
var skipDirs = map[string]bool{
	".git":         true,
	"node_modules": true,
	".cache":       true,
	"Library":      true,
}

// markdownExts are the file extensions treated as markdown.
var markdownExts = map[string]bool{
	".md":       true,
	".markdown": true,
	".mdown":    true,
}

// Scan walks roots and returns every markdown file found. Unreadable
// directories are skipped rather than failing the whole scan; ctx
// cancellation aborts early with the context's error.
func Scan(ctx context.Context, roots []string) ([]string, error) {
	var paths []string
	for _, root := range roots {
		root = expandHome(root)
		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err != nil {
				// Permission errors and dangling symlinks are expected
				// under a home-directory scan.
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				name := d.Name()
				if skipDirs[name] || (strings.HasPrefix(name, ".") && path != root) {
					return fs.SkipDir
				}
				return nil
			}
			if markdownExts[strings.ToLower(filepath.Ext(path))] {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return paths, nil
}

// expandHome replaces a leading "~" with the user's home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(path, "~"))
		}
	}
	return path
}
