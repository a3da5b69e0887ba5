package pfs

import (
	"time"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/fs"
)

// MetadataToProtoAttributes converts filesystem Metadata to wire
// FileAttributes
func MetadataToProtoAttributes(meta fs.Metadata) *api.FileAttributes {
	// Create file time structure for access time
	atime := &api.FileTime{
		Seconds: meta.AccessTime.Unix(),
		Nano:    int32(meta.AccessTime.Nanosecond()),
	}

	// Create file time structure for modification time
	mtime := &api.FileTime{
		Seconds: meta.ModifyTime.Unix(),
		Nano:    int32(meta.ModifyTime.Nanosecond()),
	}

	// Create file time structure for change time
	ctime := &api.FileTime{
		Seconds: meta.ChangeTime.Unix(),
		Nano:    int32(meta.ChangeTime.Nanosecond()),
	}

	// Convert file type
	var fileType api.FileType
	switch meta.Mode.Type() {
	case fs.FileTypeDirectory:
		fileType = api.FileType_DIRECTORY
	case fs.FileTypeSymlink:
		fileType = api.FileType_SYMLINK
	default:
		fileType = api.FileType_REGULAR
	}

	// Create and return attributes
	return &api.FileAttributes{
		Type:   fileType,
		Mode:   uint32(meta.Mode),
		Nlink:  meta.Nlink,
		Uid:    meta.Uid,
		Gid:    meta.Gid,
		Size:   uint64(meta.Size),
		Fsid:   meta.Inode.FSID,
		Fileid: uint64(meta.Inode.Index),
		Atime:  atime,
		Mtime:  mtime,
		Ctime:  ctime,
	}
}

// ProtoAttributesToMetadata converts wire FileAttributes back to
// filesystem Metadata
func ProtoAttributesToMetadata(attr *api.FileAttributes) fs.Metadata {
	if attr == nil {
		return fs.Metadata{}
	}

	meta := fs.Metadata{
		Inode: fs.Ident{FSID: attr.Fsid, Index: uint32(attr.Fileid)},
		Mode:  fs.FileMode(attr.Mode),
		Uid:   attr.Uid,
		Gid:   attr.Gid,
		Size:  int64(attr.Size),
		Nlink: attr.Nlink,
	}

	if attr.Atime != nil {
		meta.AccessTime = time.Unix(attr.Atime.Seconds, int64(attr.Atime.Nano))
	}
	if attr.Mtime != nil {
		meta.ModifyTime = time.Unix(attr.Mtime.Seconds, int64(attr.Mtime.Nano))
	}
	if attr.Ctime != nil {
		meta.ChangeTime = time.Unix(attr.Ctime.Seconds, int64(attr.Ctime.Nano))
	}

	return meta
}

// ProtoCredsToFSCreds converts wire Credentials to filesystem
// Credentials
func ProtoCredsToFSCreds(creds *api.Credentials) fs.Credentials {
	if creds == nil {
		// Default to root if no credentials provided
		return fs.Credentials{
			UID:    0,
			GID:    0,
			Groups: []uint32{0},
		}
	}

	return fs.Credentials{
		UID:    creds.Uid,
		GID:    creds.Gid,
		Groups: creds.Groups,
	}
}
