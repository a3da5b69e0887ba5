package fs

// FileSystem is the contract a mounted synthetic filesystem offers to
// the surrounding VFS layer. All operations are keyed by inode
// identifier; name resolution and enumeration go through Lookup and
// Traverse, content through ReadBytes and WriteBytes. Implementations
// are projections of live state: nothing here creates durable storage.
type FileSystem interface {
	// Root returns the identifier of the filesystem's root directory.
	Root() Ident

	// Metadata retrieves the attributes of the inode.
	Metadata(id Ident) (Metadata, error)

	// Lookup finds a child by name within a directory. "." and ".."
	// always resolve. A name with no matching entry returns
	// ErrNotExist.
	Lookup(dir Ident, name string) (Ident, error)

	// Traverse enumerates a directory, invoking fn for each entry
	// ("." and ".." first). Enumeration stops early when fn returns
	// false.
	Traverse(dir Ident, fn func(DirEntry) bool) error

	// DirectoryEntryCount returns the number of entries Traverse
	// would emit, including "." and "..".
	DirectoryEntryCount(dir Ident) (int, error)

	// ReadBytes reads generated content. When open is non-nil the
	// content is snapshotted on the open-file description at first
	// read, and subsequent reads serve slices of that snapshot until
	// it is drained. Returns the data read and whether the end of the
	// content was reached.
	ReadBytes(id Ident, offset int64, count int, open *OpenFile) ([]byte, bool, error)

	// WriteBytes writes data to a writable inode at the given offset.
	// Returns the number of bytes consumed. Writes to anything that
	// is not a runtime tunable fail with ErrPermission.
	WriteBytes(id Ident, offset int64, data []byte) (int, error)

	// AddChild permanently fails with ErrPermission.
	AddChild(dir Ident, name string, child Ident) error

	// RemoveChild permanently fails with ErrPermission.
	RemoveChild(dir Ident, name string) error

	// Chmod permanently fails with ErrPermission.
	Chmod(id Ident, mode FileMode) error

	// Chown permanently fails with ErrPermission.
	Chown(id Ident, uid, gid uint32) error

	// FlushMetadata is a no-op; synthetic inodes carry no dirty state.
	FlushMetadata(id Ident) error
}
