package lrn

import (
	"errors"
	"path/filepath"

	"github.com/spf13/afero"
)

// ReadFile reads the LRN file at path.
//
// A file that cannot be opened or read yields an *IOError, malformed
// content a *FormatError.
func ReadFile(path string, opts ...Option) (*Dataset, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	f, err := o.fsys.Open(path)
	if err != nil {
		return nil, &IOError{Op: "open", Path: path, Err: err}
	}
	defer f.Close()

	ds, err := NewDecoder(f).Decode()
	if err != nil {
		var ioErr *IOError
		if errors.As(err, &ioErr) {
			ioErr.Path = path
		}
		return nil, err
	}
	return ds, nil
}

// WriteFile writes ds to the file at path, replacing any existing file.
//
// The dataset is validated first; an invalid dataset yields a *FormatError
// and leaves the file system untouched.
func WriteFile(path string, ds *Dataset, opts ...Option) error {
	o, err := newOptions(opts)
	if err != nil {
		return err
	}
	b, err := Marshal(ds)
	if err != nil {
		return err
	}

	if !o.atomic {
		if err := afero.WriteFile(o.fsys, path, b, o.perm); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}
		return nil
	}
	return writeAtomic(o, path, b)
}

func writeAtomic(o *options, path string, b []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := afero.TempFile(o.fsys, dir, "."+base+".tmp-*")
	if err != nil {
		return &IOError{Op: "create", Path: path, Err: err}
	}
	name := tmp.Name()
	defer func() {
		if err != nil {
			_ = o.fsys.Remove(name)
		}
	}()

	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "write", Path: path, Err: err}
	}
	if err := o.fsys.Chmod(name, o.perm); err != nil {
		return &IOError{Op: "chmod", Path: path, Err: err}
	}
	if err := o.fsys.Rename(name, path); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
