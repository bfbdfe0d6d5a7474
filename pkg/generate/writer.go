package generate

import (
	"path/filepath"

	"github.com/arthur-debert/promptgen/pkg/errors"
	"github.com/arthur-debert/promptgen/pkg/types"
)

const (
	dirPerm  = 0755
	filePerm = 0644

	tempSuffix = ".tmp"
)

// tempPath returns the hidden sibling a document is staged in before the
// rename onto path
func tempPath(path string) string {
	return filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+tempSuffix)
}

// writeFile creates the parent directories of path and replaces path with
// data. The rename is the only step that touches path itself.
func writeFile(fsys types.FS, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fsys.MkdirAll(dir, dirPerm); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create directory %s", dir).
			WithDetail("path", dir)
	}

	tmp := tempPath(path)
	if err := fsys.WriteFile(tmp, data, filePerm); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path).
			WithDetail("path", path)
	}

	if err := fsys.Rename(tmp, path); err != nil {
		_ = fsys.Remove(tmp)
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to replace %s", path).
			WithDetail("path", path)
	}

	return nil
}
