package fuse

import (
	"os"

	"bazil.org/fuse/fs"

	pfsfs "github.com/example/procfs/pkg/fs"
)

// PFS bridges a filesystem facade into the host VFS through FUSE.
type PFS struct {
	volume pfsfs.FileSystem
}

// New creates a FUSE filesystem over the facade
func New(volume pfsfs.FileSystem) *PFS {
	return &PFS{volume: volume}
}

// Root returns the root directory of the filesystem
func (p *PFS) Root() (fs.Node, error) {
	return &Dir{volume: p.volume, id: p.volume.Root()}, nil
}

// openCloser is implemented by facades that hold remote open-file
// descriptions needing an explicit close.
type openCloser interface {
	CloseOpen(*pfsfs.OpenFile) error
}

// osMode converts a facade mode word to an os.FileMode
func osMode(mode pfsfs.FileMode) os.FileMode {
	perm := os.FileMode(mode & 0o777)
	switch {
	case mode.IsDirectory():
		return os.ModeDir | perm
	case mode.IsSymlink():
		return os.ModeSymlink | perm
	default:
		return perm
	}
}
