// Package tempfile manages scoped files under the sched temp
// directory.
package tempfile

import (
	"io"
	"os"
	"path/filepath"
)

const subdirName = "sched"

// File is a path under the sched temp directory, exclusively owned by
// its creator. Release removes the file on every exit path; callers
// defer it immediately after Acquire.
type File struct {
	path string
}

// Acquire binds a handle to name under the sched temp directory,
// creating the directory if needed. Creation is best-effort: a
// pre-existing directory is the common case, and a real failure
// surfaces later when the file itself is created.
func Acquire(name string) *File {
	dir := filepath.Join(os.TempDir(), subdirName)
	_ = os.MkdirAll(dir, 0755)
	return &File{path: filepath.Join(dir, name)}
}

// Path returns the file path.
func (f *File) Path() string {
	return f.path
}

// Create opens the file for writing, truncating any previous content.
func (f *File) Create() (io.WriteCloser, error) {
	return os.Create(f.path)
}

// Release removes the file. Removal is best-effort; the OS reclaims
// its temp directory eventually regardless.
func (f *File) Release() {
	_ = os.Remove(f.path)
}
