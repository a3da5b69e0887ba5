// Package api defines the wire protocol of the process-filesystem
// service: status codes, request/response messages, the JSON codec the
// RPCs travel with, and the gRPC service descriptor. Messages are
// plain structs serialized by the registered codec; the field tags are
// the wire contract.
package api

// Status is the protocol-level result of an operation.
type Status int32

const (
	Status_OK Status = iota
	Status_ERR_PERM
	Status_ERR_NOENT
	Status_ERR_IO
	Status_ERR_ACCES
	Status_ERR_NOTDIR
	Status_ERR_ISDIR
	Status_ERR_INVAL
	Status_ERR_FBIG
	Status_ERR_ROFS
	Status_ERR_STALE
	Status_ERR_BADHANDLE
	Status_ERR_BAD_COOKIE
	Status_ERR_NOTSUPP
	Status_ERR_SERVERFAULT
)

// String returns the protocol name of the status
func (s Status) String() string {
	switch s {
	case Status_OK:
		return "OK"
	case Status_ERR_PERM:
		return "ERR_PERM"
	case Status_ERR_NOENT:
		return "ERR_NOENT"
	case Status_ERR_IO:
		return "ERR_IO"
	case Status_ERR_ACCES:
		return "ERR_ACCES"
	case Status_ERR_NOTDIR:
		return "ERR_NOTDIR"
	case Status_ERR_ISDIR:
		return "ERR_ISDIR"
	case Status_ERR_INVAL:
		return "ERR_INVAL"
	case Status_ERR_FBIG:
		return "ERR_FBIG"
	case Status_ERR_ROFS:
		return "ERR_ROFS"
	case Status_ERR_STALE:
		return "ERR_STALE"
	case Status_ERR_BADHANDLE:
		return "ERR_BADHANDLE"
	case Status_ERR_BAD_COOKIE:
		return "ERR_BAD_COOKIE"
	case Status_ERR_NOTSUPP:
		return "ERR_NOTSUPP"
	case Status_ERR_SERVERFAULT:
		return "ERR_SERVERFAULT"
	default:
		return "UNKNOWN"
	}
}

// FileType is the wire file type.
type FileType int32

const (
	FileType_REGULAR FileType = iota
	FileType_DIRECTORY
	FileType_SYMLINK
)

// FileTime is a timestamp split into seconds and nanoseconds.
type FileTime struct {
	Seconds int64 `json:"seconds"`
	Nano    int32 `json:"nano"`
}

// FileAttributes carries inode attributes on the wire.
type FileAttributes struct {
	Type   FileType  `json:"type"`
	Mode   uint32    `json:"mode"`
	Nlink  uint32    `json:"nlink"`
	Uid    uint32    `json:"uid"`
	Gid    uint32    `json:"gid"`
	Size   uint64    `json:"size"`
	Fsid   uint32    `json:"fsid"`
	Fileid uint64    `json:"fileid"`
	Atime  *FileTime `json:"atime,omitempty"`
	Mtime  *FileTime `json:"mtime,omitempty"`
	Ctime  *FileTime `json:"ctime,omitempty"`
}

// Credentials identifies the caller.
type Credentials struct {
	Uid    uint32   `json:"uid"`
	Gid    uint32   `json:"gid"`
	Groups []uint32 `json:"groups,omitempty"`
}

// DirEntry is one directory listing row.
type DirEntry struct {
	FileId uint64 `json:"file_id"`
	Name   string `json:"name"`
	Cookie uint64 `json:"cookie"`
}

// GetRootRequest asks for the filesystem's root handle.
type GetRootRequest struct {
	Credentials *Credentials `json:"credentials,omitempty"`
}

// GetRootResponse returns the root handle and its attributes.
type GetRootResponse struct {
	Status     Status          `json:"status"`
	FileHandle []byte          `json:"file_handle,omitempty"`
	Attributes *FileAttributes `json:"attributes,omitempty"`
}

// GetAttrRequest asks for the attributes of a handle.
type GetAttrRequest struct {
	FileHandle  []byte       `json:"file_handle"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// GetAttrResponse returns the attributes of a handle.
type GetAttrResponse struct {
	Status     Status          `json:"status"`
	Attributes *FileAttributes `json:"attributes,omitempty"`
}

// LookupRequest resolves a name within a directory handle.
type LookupRequest struct {
	DirectoryHandle []byte       `json:"directory_handle"`
	Name            string       `json:"name"`
	Credentials     *Credentials `json:"credentials,omitempty"`
}

// LookupResponse returns the resolved handle and attributes.
type LookupResponse struct {
	Status        Status          `json:"status"`
	FileHandle    []byte          `json:"file_handle,omitempty"`
	Attributes    *FileAttributes `json:"attributes,omitempty"`
	DirAttributes *FileAttributes `json:"dir_attributes,omitempty"`
}

// ReadDirRequest reads a page of directory entries.
type ReadDirRequest struct {
	DirectoryHandle []byte       `json:"directory_handle"`
	Cookie          uint64       `json:"cookie"`
	Count           uint32       `json:"count"`
	Credentials     *Credentials `json:"credentials,omitempty"`
}

// ReadDirResponse returns a page of directory entries.
type ReadDirResponse struct {
	Status  Status      `json:"status"`
	Entries []*DirEntry `json:"entries,omitempty"`
	Eof     bool        `json:"eof"`
}

// OpenRequest creates a server-side open-file description, the owner
// of the content snapshot for subsequent reads.
type OpenRequest struct {
	FileHandle  []byte       `json:"file_handle"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// OpenResponse returns the open-file description id.
type OpenResponse struct {
	Status Status `json:"status"`
	OpenId uint64 `json:"open_id,omitempty"`
}

// CloseRequest drops a server-side open-file description.
type CloseRequest struct {
	OpenId uint64 `json:"open_id"`
}

// CloseResponse acknowledges the close.
type CloseResponse struct {
	Status Status `json:"status"`
}

// ReadRequest reads file content. OpenId zero means a stateless read.
type ReadRequest struct {
	FileHandle  []byte       `json:"file_handle"`
	OpenId      uint64       `json:"open_id,omitempty"`
	Offset      uint64       `json:"offset"`
	Count       uint32       `json:"count"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// ReadResponse returns file content.
type ReadResponse struct {
	Status Status `json:"status"`
	Data   []byte `json:"data,omitempty"`
	Eof    bool   `json:"eof"`
}

// WriteRequest writes to a tunable.
type WriteRequest struct {
	FileHandle  []byte       `json:"file_handle"`
	Offset      uint64       `json:"offset"`
	Data        []byte       `json:"data"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// WriteResponse returns the bytes consumed.
type WriteResponse struct {
	Status Status `json:"status"`
	Count  uint32 `json:"count"`
}

// ReadlinkRequest reads a symlink's target.
type ReadlinkRequest struct {
	FileHandle  []byte       `json:"file_handle"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// ReadlinkResponse returns the symlink target.
type ReadlinkResponse struct {
	Status Status `json:"status"`
	Target string `json:"target,omitempty"`
}
