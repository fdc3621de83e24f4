package lrn

import (
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// Option configures ReadFile and WriteFile.
type Option func(*options) error

type options struct {
	fsys   afero.Fs
	perm   fs.FileMode
	atomic bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		fsys:   afero.NewOsFs(),
		perm:   0o644,
		atomic: true,
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithFs returns an Option that reads and writes files through fsys
// instead of the operating system's file system.
func WithFs(fsys afero.Fs) Option {
	return func(o *options) error {
		if fsys == nil {
			return fmt.Errorf("lrn: nil file system")
		}
		o.fsys = fsys
		return nil
	}
}

// Perm returns an Option that sets the permission bits of files created by
// WriteFile. The default is 0644.
func Perm(perm fs.FileMode) Option {
	return func(o *options) error {
		if perm&^fs.ModePerm != 0 {
			return fmt.Errorf("lrn: invalid permission bits %v", perm)
		}
		o.perm = perm
		return nil
	}
}

// Atomic returns an Option that controls whether WriteFile writes to a
// temporary file in the target directory and renames it into place, which
// is the default. With atomic writes off the target is truncated and
// written directly.
func Atomic(on bool) Option {
	return func(o *options) error {
		o.atomic = on
		return nil
	}
}
