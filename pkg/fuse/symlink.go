package fuse

import (
	"context"

	"bazil.org/fuse"

	pfsfs "github.com/example/procfs/pkg/fs"
)

// Symlink represents a symbolic link in the filesystem
type Symlink struct {
	volume pfsfs.FileSystem
	id     pfsfs.Ident
}

// Attr sets the attributes of the symlink
func (s *Symlink) Attr(ctx context.Context, attr *fuse.Attr) error {
	meta, err := s.volume.Metadata(s.id)
	if err != nil {
		return fuse.ENOENT
	}
	attr.Inode = uint64(s.id.Index)
	attr.Mode = osMode(meta.Mode)
	attr.Uid = meta.Uid
	attr.Gid = meta.Gid
	attr.Mtime = meta.ModifyTime
	attr.Atime = meta.AccessTime
	attr.Ctime = meta.ChangeTime
	return nil
}

// Readlink reads the link target, which is generated content
func (s *Symlink) Readlink(ctx context.Context, req *fuse.ReadlinkRequest) (string, error) {
	data, _, err := s.volume.ReadBytes(s.id, 0, 4096, nil)
	if err != nil {
		return "", fuse.EIO
	}
	return string(data), nil
}
