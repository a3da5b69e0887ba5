package client

import (
	"context"
	"sync"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/pfs"
)

// Remote adapts a connected client to the fs.FileSystem contract so
// consumers written against the facade (the FUSE bridge, tools) can
// browse a served filesystem. Open-file descriptions are correlated
// with their server-side ids so snapshot reads keep their semantics
// across the wire.
type Remote struct {
	client *Client
	root   fs.Ident

	mu    sync.Mutex
	opens map[*fs.OpenFile]uint64
}

// NewRemote connects the facade adapter, resolving the served root.
func NewRemote(ctx context.Context, c *Client) (*Remote, error) {
	handle, err := c.GetRootFileHandle(ctx)
	if err != nil {
		return nil, err
	}
	root, err := fs.DeserializeIdent(handle)
	if err != nil {
		return nil, err
	}
	return &Remote{
		client: c,
		root:   root,
		opens:  make(map[*fs.OpenFile]uint64),
	}, nil
}

// Root returns the served filesystem's root identifier.
func (r *Remote) Root() fs.Ident {
	return r.root
}

// Metadata fetches attributes over the wire.
func (r *Remote) Metadata(id fs.Ident) (fs.Metadata, error) {
	attrs, err := r.client.GetAttr(context.Background(), id.Serialize())
	if err != nil {
		return fs.Metadata{}, err
	}
	return pfs.ProtoAttributesToMetadata(attrs), nil
}

// Lookup resolves a name over the wire.
func (r *Remote) Lookup(dir fs.Ident, name string) (fs.Ident, error) {
	handle, _, err := r.client.Lookup(context.Background(), dir.Serialize(), name)
	if err != nil {
		return fs.Ident{}, err
	}
	return fs.DeserializeIdent(handle)
}

// Traverse enumerates a directory over the wire.
func (r *Remote) Traverse(dir fs.Ident, fn func(fs.DirEntry) bool) error {
	entries, err := r.client.ReadDir(context.Background(), dir.Serialize())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		child := fs.DirEntry{
			Name:   entry.Name,
			ID:     fs.Ident{FSID: r.root.FSID, Index: uint32(entry.FileId)},
			Cookie: int64(entry.Cookie),
		}
		if !fn(child) {
			return nil
		}
	}
	return nil
}

// DirectoryEntryCount counts a directory's entries over the wire.
func (r *Remote) DirectoryEntryCount(dir fs.Ident) (int, error) {
	entries, err := r.client.ReadDir(context.Background(), dir.Serialize())
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

// openID resolves the server-side open id for an open-file
// description, creating one on first use.
func (r *Remote) openID(id fs.Ident, open *fs.OpenFile) (uint64, error) {
	r.mu.Lock()
	if openID, ok := r.opens[open]; ok {
		r.mu.Unlock()
		return openID, nil
	}
	r.mu.Unlock()

	openID, err := r.client.Open(context.Background(), id.Serialize())
	if err != nil {
		return 0, err
	}

	r.mu.Lock()
	r.opens[open] = openID
	r.mu.Unlock()
	return openID, nil
}

// ReadBytes reads over the wire. The snapshot lives on the server's
// open-file description; the local OpenFile only keys it.
func (r *Remote) ReadBytes(id fs.Ident, offset int64, count int, open *fs.OpenFile) ([]byte, bool, error) {
	var openID uint64
	if open != nil {
		var err error
		openID, err = r.openID(id, open)
		if err != nil {
			return nil, false, err
		}
	}
	return r.client.Read(context.Background(), id.Serialize(), openID, offset, count)
}

// CloseOpen drops the server-side open-file description backing the
// given OpenFile, if one was created.
func (r *Remote) CloseOpen(open *fs.OpenFile) error {
	r.mu.Lock()
	openID, ok := r.opens[open]
	delete(r.opens, open)
	r.mu.Unlock()
	if !ok {
		return nil
	}
	return r.client.CloseOpen(context.Background(), openID)
}

// WriteBytes writes over the wire.
func (r *Remote) WriteBytes(id fs.Ident, offset int64, data []byte) (int, error) {
	return r.client.Write(context.Background(), id.Serialize(), offset, data)
}

// AddChild fails: the namespace is computed.
func (r *Remote) AddChild(dir fs.Ident, name string, child fs.Ident) error {
	return fs.NewError("AddChild", name, fs.ErrPermission)
}

// RemoveChild fails: the namespace is computed.
func (r *Remote) RemoveChild(dir fs.Ident, name string) error {
	return fs.NewError("RemoveChild", name, fs.ErrPermission)
}

// Chmod fails: modes are derived from identifiers.
func (r *Remote) Chmod(id fs.Ident, mode fs.FileMode) error {
	return fs.NewError("Chmod", "", fs.ErrPermission)
}

// Chown fails: ownership is derived from the owning process.
func (r *Remote) Chown(id fs.Ident, uid, gid uint32) error {
	return fs.NewError("Chown", "", fs.ErrPermission)
}

// FlushMetadata is a no-op.
func (r *Remote) FlushMetadata(id fs.Ident) error {
	return nil
}

var _ fs.FileSystem = (*Remote)(nil)

// Readlink reads a symlink target over the wire.
func (r *Remote) Readlink(id fs.Ident) (string, error) {
	return r.client.Readlink(context.Background(), id.Serialize())
}

// Attributes fetches the raw wire attributes, for tools that print
// them directly.
func (r *Remote) Attributes(id fs.Ident) (*api.FileAttributes, error) {
	return r.client.GetAttr(context.Background(), id.Serialize())
}
