// Package webui serves the embedded browser front-end that calls the functions.
package webui

import (
	"embed"
	"io/fs"
	"log/slog"
	"strings"
)

//go:embed static
var staticFiles embed.FS

// ResourceReader looks up embedded resources by the tail of their path.
type ResourceReader struct {
	fsys fs.FS
}

// NewResourceReader returns a reader over fsys. A nil fsys reads the embedded front-end.
func NewResourceReader(fsys fs.FS) *ResourceReader {
	if fsys == nil {
		fsys = staticFiles
	}
	return &ResourceReader{fsys: fsys}
}

// Read returns the content of the single resource whose path ends with name.
// It returns "" when no resource or more than one resource matches.
func (r *ResourceReader) Read(name string) string {
	if name == "" {
		return ""
	}

	var matches []string
	err := fs.WalkDir(r.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, name) {
			matches = append(matches, p)
		}
		return nil
	})
	if err != nil {
		slog.Warn("failed to list resources", "name", name, "error", err)
		return ""
	}
	if len(matches) != 1 {
		return ""
	}

	b, err := fs.ReadFile(r.fsys, matches[0])
	if err != nil {
		slog.Warn("failed to read resource", "path", matches[0], "error", err)
		return ""
	}
	return string(b)
}

// Sub returns the subtree rooted at dir.
func (r *ResourceReader) Sub(dir string) (fs.FS, error) {
	return fs.Sub(r.fsys, dir)
}
