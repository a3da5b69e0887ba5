package fuse

import (
	"context"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	pfsfs "github.com/example/procfs/pkg/fs"
)

// Dir represents a directory in the filesystem
type Dir struct {
	volume pfsfs.FileSystem
	id     pfsfs.Ident
}

// Attr sets the attributes of the directory
func (d *Dir) Attr(ctx context.Context, attr *fuse.Attr) error {
	meta, err := d.volume.Metadata(d.id)
	if err != nil {
		return fuse.ENOENT
	}
	attr.Inode = uint64(d.id.Index)
	attr.Mode = osMode(meta.Mode)
	attr.Uid = meta.Uid
	attr.Gid = meta.Gid
	attr.Mtime = meta.ModifyTime
	attr.Atime = meta.AccessTime
	attr.Ctime = meta.ChangeTime
	return nil
}

// Lookup looks up a specific entry in the directory
func (d *Dir) Lookup(ctx context.Context, name string) (fs.Node, error) {
	child, err := d.volume.Lookup(d.id, name)
	if err != nil {
		return nil, fuse.ENOENT
	}
	meta, err := d.volume.Metadata(child)
	if err != nil {
		return nil, fuse.ENOENT
	}
	switch {
	case meta.Mode.IsDirectory():
		return &Dir{volume: d.volume, id: child}, nil
	case meta.Mode.IsSymlink():
		return &Symlink{volume: d.volume, id: child}, nil
	default:
		return &File{volume: d.volume, id: child}, nil
	}
}

// ReadDirAll returns all entries in the directory
func (d *Dir) ReadDirAll(ctx context.Context) ([]fuse.Dirent, error) {
	var entries []fuse.Dirent
	err := d.volume.Traverse(d.id, func(entry pfsfs.DirEntry) bool {
		if entry.Name == "." || entry.Name == ".." {
			return true
		}
		dirent := fuse.Dirent{
			Inode: uint64(entry.ID.Index),
			Name:  entry.Name,
			Type:  fuse.DT_File,
		}
		if meta, err := d.volume.Metadata(entry.ID); err == nil {
			switch {
			case meta.Mode.IsDirectory():
				dirent.Type = fuse.DT_Dir
			case meta.Mode.IsSymlink():
				dirent.Type = fuse.DT_Link
			}
		}
		entries = append(entries, dirent)
		return true
	})
	if err != nil {
		return nil, fuse.EIO
	}
	return entries, nil
}
