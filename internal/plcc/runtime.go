package plcc

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed runtime/java runtime/python
var runtimeFS embed.FS

// CopyRuntimeFiles copies every fixed runtime-support file under
// runtime/<lang>/<group> into destDir, flattened to basenames: these are
// bundled library files copied verbatim rather than generated. lang is
// "java" or "python"; group is "token" (the files --Token gates) or
// "parser" (the files --parser gates). destDir is created if it does not
// already exist.
func CopyRuntimeFiles(lang, group, destDir string) error {
	root := "runtime/" + lang + "/" + group
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", destDir, err)
	}
	return fs.WalkDir(runtimeFS, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := runtimeFS.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading bundled file %q: %w", path, err)
		}
		dest := filepath.Join(destDir, filepath.Base(path))
		if err := os.WriteFile(dest, data, 0o644); err != nil {
			return &WriteFailureError{Path: dest, Cause: err}
		}
		return nil
	})
}

// WriteFailureError is the WriteFailure generation error, carrying the
// path that could not be written.
type WriteFailureError struct {
	Path  string
	Cause error
}

func (e *WriteFailureError) Error() string {
	return fmt.Sprintf("cannot write %q: %s", e.Path, e.Cause.Error())
}

func (e *WriteFailureError) Unwrap() error {
	return e.Cause
}

// WriteGenerated writes every rendered class in files (name -> source text,
// as produced by Generate) into destDir.
func WriteGenerated(destDir string, files map[string]string) error {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return fmt.Errorf("creating %q: %w", destDir, err)
	}
	for name, text := range files {
		dest := filepath.Join(destDir, name)
		if err := os.WriteFile(dest, []byte(text+"\n"), 0o644); err != nil {
			return &WriteFailureError{Path: dest, Cause: err}
		}
	}
	return nil
}
