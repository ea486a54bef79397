package serializer

import (
	"os"

	"task-manager/internal/domain"
	"task-manager/internal/errors"
	"task-manager/internal/logging"
)

// SaveFile writes tasks to path in the text format, truncating any existing file
func SaveFile(path string, tasks []domain.Task, perm os.FileMode) (err error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return errors.NewFileOpenError(path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.WrapError(cerr, errors.ErrorTypeFileOpen, "Failed to write file: "+path)
		}
	}()

	if err := Encode(f, tasks); err != nil {
		return errors.WrapError(err, errors.ErrorTypeFileOpen, "Failed to write file: "+path)
	}
	logging.Debugf("wrote %d tasks to %s\n", len(tasks), path)
	return nil
}

// LoadFile reads a text task file. Nothing is returned on a parse failure
// unless skip is set.
func LoadFile(path string, skip bool) (*LoadResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.NewFileOpenError(path, err)
	}
	defer f.Close()

	result, err := Decode(f, path, skip)
	if err != nil {
		return nil, err
	}
	logging.Debugf("read %d tasks from %s (%d skipped)\n", len(result.Tasks), path, len(result.Skipped))
	return result, nil
}
