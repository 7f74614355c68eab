// Package scan walks a file source and groups paths that share a base name.
package scan

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xyproto/files"
	"go.uber.org/zap"
)

var (
	ErrRootNotFound = errors.New("root path does not exist")
	ErrRootNotDir   = errors.New("root path is not a directory")
)

// VisitFunc receives one file path at a time, in traversal order.
type VisitFunc func(path string)

// Source yields the file paths to be grouped.
type Source interface {
	Walk(ctx context.Context, visit VisitFunc) (Stats, error)
}

// LocalSource walks a directory tree on the local filesystem.
type LocalSource struct {
	Root string
	Log  *zap.Logger
}

func NewLocalSource(root string, log *zap.Logger) *LocalSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &LocalSource{Root: root, Log: log}
}

// Walk visits every regular file under Root. Entries that cannot be read are
// counted in Stats.Errors and skipped; only a bad root fails the walk.
func (s *LocalSource) Walk(ctx context.Context, visit VisitFunc) (Stats, error) {
	var stats Stats

	if !files.Exists(s.Root) {
		return stats, fmt.Errorf("%w: %s", ErrRootNotFound, s.Root)
	}
	if !files.IsDir(s.Root) {
		return stats, fmt.Errorf("%w: %s", ErrRootNotDir, s.Root)
	}

	root := s.Root
	if fi, err := os.Lstat(root); err == nil && fi.Mode()&fs.ModeSymlink != 0 {
		// WalkDir does not descend into a symlinked root unless it ends in a separator.
		root += string(filepath.Separator)
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if err != nil {
			stats.Errors++
			s.Log.Debug("skipping entry", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		stats.Files++
		visit(s.asTyped(root, path))
		return nil
	})
	return stats, err
}

// asTyped rewrites a walked path so it starts with Root as the user wrote it.
// WalkDir cleans joined paths, which would turn ./data/x.txt into data/x.txt.
func (s *LocalSource) asTyped(walkRoot, path string) string {
	sep := string(filepath.Separator)
	clean := filepath.Clean(walkRoot)

	var rest string
	switch {
	case clean == ".":
		rest = sep + path
	case strings.HasPrefix(path, clean):
		rest = path[len(clean):]
	default:
		return path
	}

	prefix := s.Root
	if !strings.HasSuffix(clean, sep) {
		prefix = strings.TrimRight(prefix, sep)
	}
	return prefix + rest
}
