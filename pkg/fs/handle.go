// pkg/fs/handle.go
package fs

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Ident identifies an inode within a mounted filesystem. FSID is
// assigned by the VFS layer when the filesystem is mounted; Index is a
// 32-bit routing key whose layout is owned by the filesystem
// implementation.
type Ident struct {
	// FSID identifies the specific filesystem instance
	FSID uint32

	// Index uniquely identifies an inode within the filesystem
	Index uint32
}

// IsValid reports whether the identifier refers to an inode. The zero
// Index is reserved as the "no such inode" sentinel.
func (id Ident) IsValid() bool {
	return id.Index != 0
}

// Size returns the size of a serialized identifier in bytes
func (id Ident) Size() int {
	return 8 // 4 + 4 bytes
}

// Serialize converts the identifier to a byte slice for use as an
// opaque file handle on the wire.
func (id Ident) Serialize() []byte {
	data := make([]byte, id.Size())

	binary.BigEndian.PutUint32(data[0:4], id.FSID)
	binary.BigEndian.PutUint32(data[4:8], id.Index)

	return data
}

// DeserializeIdent parses a byte slice into an identifier
func DeserializeIdent(data []byte) (Ident, error) {
	if len(data) < 8 {
		return Ident{}, errors.New("handle data too short")
	}

	id := Ident{
		FSID:  binary.BigEndian.Uint32(data[0:4]),
		Index: binary.BigEndian.Uint32(data[4:8]),
	}

	return id, nil
}

// String returns a string representation of the identifier
func (id Ident) String() string {
	return fmt.Sprintf("Ident{FS:%d, Index:%#08x}", id.FSID, id.Index)
}
