package procfs

import (
	"github.com/example/procfs/pkg/fs"
)

// The per-inode operation surface. Inodes carry no state of their own;
// every method forwards to the filesystem keyed by the inode's
// identifier.

// Metadata retrieves the inode's attributes.
func (i *Inode) Metadata() (fs.Metadata, error) {
	return i.fs.Metadata(i.id)
}

// Lookup resolves a name within this directory inode.
func (i *Inode) Lookup(name string) (fs.Ident, error) {
	return i.fs.Lookup(i.id, name)
}

// Traverse enumerates this directory inode.
func (i *Inode) Traverse(fn func(fs.DirEntry) bool) error {
	return i.fs.Traverse(i.id, fn)
}

// DirectoryEntryCount counts this directory inode's entries.
func (i *Inode) DirectoryEntryCount() (int, error) {
	return i.fs.DirectoryEntryCount(i.id)
}

// ReadBytes reads generated content through this inode.
func (i *Inode) ReadBytes(offset int64, count int, open *fs.OpenFile) ([]byte, bool, error) {
	return i.fs.ReadBytes(i.id, offset, count, open)
}

// WriteBytes writes through this inode; only tunables accept it.
func (i *Inode) WriteBytes(offset int64, data []byte) (int, error) {
	return i.fs.WriteBytes(i.id, offset, data)
}

// AddChild permanently fails with permission denied.
func (i *Inode) AddChild(name string, child fs.Ident) error {
	return i.fs.AddChild(i.id, name, child)
}

// RemoveChild permanently fails with permission denied.
func (i *Inode) RemoveChild(name string) error {
	return i.fs.RemoveChild(i.id, name)
}

// Chmod permanently fails with permission denied.
func (i *Inode) Chmod(mode fs.FileMode) error {
	return i.fs.Chmod(i.id, mode)
}

// Chown permanently fails with permission denied.
func (i *Inode) Chown(uid, gid uint32) error {
	return i.fs.Chown(i.id, uid, gid)
}

// FlushMetadata is a no-op.
func (i *Inode) FlushMetadata() error {
	return i.fs.FlushMetadata(i.id)
}
