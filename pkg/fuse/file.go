package fuse

import (
	"context"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	pfsfs "github.com/example/procfs/pkg/fs"
)

// File represents a regular file in the filesystem
type File struct {
	volume pfsfs.FileSystem
	id     pfsfs.Ident
}

// Attr sets the attributes of the file. Generated content reports
// size zero, so opens request direct IO to keep the kernel from
// clamping reads.
func (f *File) Attr(ctx context.Context, attr *fuse.Attr) error {
	meta, err := f.volume.Metadata(f.id)
	if err != nil {
		return fuse.ENOENT
	}
	attr.Inode = uint64(f.id.Index)
	attr.Mode = osMode(meta.Mode)
	attr.Uid = meta.Uid
	attr.Gid = meta.Gid
	attr.Size = uint64(meta.Size)
	attr.Mtime = meta.ModifyTime
	attr.Atime = meta.AccessTime
	attr.Ctime = meta.ChangeTime
	return nil
}

// Open creates a handle whose reads share one content snapshot
func (f *File) Open(ctx context.Context, req *fuse.OpenRequest, resp *fuse.OpenResponse) (fs.Handle, error) {
	resp.Flags |= fuse.OpenDirectIO
	return &FileHandle{
		volume: f.volume,
		id:     f.id,
		open:   &pfsfs.OpenFile{},
	}, nil
}

// FileHandle is one open of a file; it owns the open-file description
// that carries the content snapshot.
type FileHandle struct {
	volume pfsfs.FileSystem
	id     pfsfs.Ident
	open   *pfsfs.OpenFile
}

// Read serves a slice of the open's content snapshot
func (h *FileHandle) Read(ctx context.Context, req *fuse.ReadRequest, resp *fuse.ReadResponse) error {
	data, _, err := h.volume.ReadBytes(h.id, req.Offset, req.Size, h.open)
	if err != nil {
		return fuse.EIO
	}
	resp.Data = data
	return nil
}

// Write forwards to the facade; only runtime tunables accept it
func (h *FileHandle) Write(ctx context.Context, req *fuse.WriteRequest, resp *fuse.WriteResponse) error {
	n, err := h.volume.WriteBytes(h.id, req.Offset, req.Data)
	if err != nil {
		return fuse.EPERM
	}
	resp.Size = n
	return nil
}

// Release drops the open-file description and its snapshot
func (h *FileHandle) Release(ctx context.Context, req *fuse.ReleaseRequest) error {
	h.open.GeneratorCache = nil
	if closer, ok := h.volume.(openCloser); ok {
		return closer.CloseOpen(h.open)
	}
	return nil
}
