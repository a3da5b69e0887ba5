// pkg/fs/types.go
package fs

import (
	"time"
)

// FileType represents the type of a file.
type FileType uint32

const (
	// FileTypeRegular is a regular file
	FileTypeRegular FileType = iota
	// FileTypeDirectory is a directory
	FileTypeDirectory
	// FileTypeSymlink is a symbolic link
	FileTypeSymlink
)

// String returns a string representation of the file type
func (ft FileType) String() string {
	switch ft {
	case FileTypeRegular:
		return "regular"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	default:
		return "unknown"
	}
}

// FileMode holds the full mode word of a file: the type bits in the
// upper nibble plus the permission bits.
type FileMode uint32

const (
	// ModeTypeMask selects the file type bits
	ModeTypeMask FileMode = 0o170000
	// ModeDirectory marks a directory
	ModeDirectory FileMode = 0o040000
	// ModeSymlink marks a symbolic link
	ModeSymlink FileMode = 0o120000
	// ModeRegular marks a regular file
	ModeRegular FileMode = 0o100000
	// ModePermMask selects the permission bits
	ModePermMask FileMode = 0o7777
)

// IsDirectory reports whether the mode describes a directory
func (m FileMode) IsDirectory() bool {
	return m&ModeTypeMask == ModeDirectory
}

// IsSymlink reports whether the mode describes a symbolic link
func (m FileMode) IsSymlink() bool {
	return m&ModeTypeMask == ModeSymlink
}

// Type maps the mode word to a FileType
func (m FileMode) Type() FileType {
	switch m & ModeTypeMask {
	case ModeDirectory:
		return FileTypeDirectory
	case ModeSymlink:
		return FileTypeSymlink
	default:
		return FileTypeRegular
	}
}

// Epoch is the fixed timestamp reported for every synthetic inode.
var Epoch = time.Unix(0, 0).UTC()

// Metadata contains the attributes of an inode.
type Metadata struct {
	// Inode is the identifier the attributes belong to
	Inode Ident

	// Mode contains the type and permission bits
	Mode FileMode

	// Uid is the user ID of the inode's owner
	Uid uint32

	// Gid is the group ID of the inode's group
	Gid uint32

	// Size is the size in bytes; generated content reports zero
	Size int64

	// Nlink is the number of links to the inode
	Nlink uint32

	// AccessTime is the time of last access
	AccessTime time.Time

	// ModifyTime is the time of last modification
	ModifyTime time.Time

	// ChangeTime is the time of last status change
	ChangeTime time.Time
}

// DirEntry represents an entry emitted during directory traversal.
type DirEntry struct {
	// Name is the name of the entry
	Name string

	// ID is the identifier of the entry's inode
	ID Ident

	// Cookie is a position for resuming paginated directory reads
	Cookie int64
}

// Credentials represents the authentication information for a user.
type Credentials struct {
	// UID is the user ID
	UID uint32

	// GID is the primary group ID
	GID uint32

	// Groups is the list of supplementary group IDs
	Groups []uint32
}

// OpenFile is an open-file description. It is owned by the consumer of
// the filesystem (the VFS layer, or the server's per-client open
// table); the filesystem only reads and writes the generator cache
// field on the description it is handed. An OpenFile is never shared
// between opens, so it carries no lock.
type OpenFile struct {
	// GeneratorCache holds the content snapshot taken at first read.
	// It is cleared when a read drains past the end of the snapshot.
	GeneratorCache []byte
}
