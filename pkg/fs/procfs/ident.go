package procfs

import (
	"fmt"

	"github.com/example/procfs/pkg/fs"
)

// Identifier index layout:
//
//	bits 0-7   file kind, or KindMaxStaticFileIndex+fd for fd children
//	bits 8-11  reserved
//	bits 12-15 parent-directory kind
//	bits 16-31 owner: pid, or tunable index for /sys files
//
// The packed index is the sole routing truth: every dispatch decision
// decodes it and nothing else.

// Encode packs a parent-directory kind, owner pid, and file kind into
// an identifier.
func Encode(fsid uint32, parent ParentDir, pid int, kind FileKind) fs.Ident {
	return fs.Ident{
		FSID:  fsid,
		Index: uint32(parent)<<12 | uint32(pid)<<16 | uint32(kind),
	}
}

// EncodeFD packs an fd-directory child for the given pid and
// descriptor number.
func EncodeFD(fsid uint32, pid int, fd int) fs.Ident {
	return fs.Ident{
		FSID:  fsid,
		Index: uint32(ParentPIDFD)<<12 | uint32(pid)<<16 | uint32(KindMaxStaticFileIndex)+uint32(fd),
	}
}

// EncodeSysVar packs a tunable file for the given registry index.
func EncodeSysVar(fsid uint32, index int) fs.Ident {
	if index >= 256 {
		panic(fmt.Sprintf("procfs: sys variable index %d out of range", index))
	}
	return fs.Ident{
		FSID:  fsid,
		Index: uint32(ParentRootSys)<<12 | uint32(index)<<16 | uint32(KindRootSysVariable),
	}
}

// PID extracts the owner pid.
func PID(id fs.Ident) int {
	return int(id.Index >> 16)
}

// ParentDirOf extracts the parent-directory kind.
func ParentDirOf(id fs.Ident) ParentDir {
	return ParentDir((id.Index >> 12) & 0xf)
}

// KindOf extracts the file kind.
func KindOf(id fs.Ident) FileKind {
	return FileKind(id.Index & 0xff)
}

// FD extracts the descriptor number of an fd-directory child. The
// identifier must carry the fd parent kind.
func FD(id fs.Ident) int {
	if ParentDirOf(id) != ParentPIDFD {
		panic(fmt.Sprintf("procfs: FD on non-fd identifier %v", id))
	}
	return int(id.Index&0xff) - int(KindMaxStaticFileIndex)
}

// SysIndex extracts the tunable registry index. The identifier must be
// a tunable file.
func SysIndex(id fs.Ident) int {
	if ParentDirOf(id) != ParentRootSys {
		panic(fmt.Sprintf("procfs: SysIndex on non-sys identifier %v", id))
	}
	if KindOf(id) != KindRootSysVariable {
		panic(fmt.Sprintf("procfs: SysIndex on non-variable identifier %v", id))
	}
	return int(id.Index >> 16)
}

// ParentOf returns the identifier of the directory containing id. It
// is total over legal identifiers and inverts descent by Lookup.
func ParentOf(id fs.Ident) fs.Ident {
	switch ParentDirOf(id) {
	case ParentAbstractRoot, ParentRoot:
		return fs.Ident{FSID: id.FSID, Index: uint32(KindRoot)}
	case ParentRootSys:
		return Encode(id.FSID, ParentRoot, 0, KindRootSys)
	case ParentRootNet:
		return Encode(id.FSID, ParentRoot, 0, KindRootNet)
	case ParentPID:
		return Encode(id.FSID, ParentRoot, PID(id), KindPID)
	case ParentPIDFD:
		return Encode(id.FSID, ParentPID, PID(id), KindPIDFD)
	}
	panic(fmt.Sprintf("procfs: identifier %v has no parent class", id))
}

// isDirectory reports whether the identifier names a directory kind.
func isDirectory(id fs.Ident) bool {
	switch KindOf(id) {
	case KindRoot, KindRootSys, KindRootNet, KindPID, KindPIDFD:
		return true
	default:
		return false
	}
}

// isPersistent reports whether the identifier belongs to the tunables
// directory, the single class whose inodes accept writes.
func isPersistent(id fs.Ident) bool {
	return ParentDirOf(id) == ParentRootSys
}

// isProcessRelated reports whether the identifier's owner field is a
// pid whose process supplies uid/gid metadata.
func isProcessRelated(id fs.Ident) bool {
	if KindOf(id) == KindPID {
		return true
	}
	switch ParentDirOf(id) {
	case ParentPID, ParentPIDFD:
		return true
	default:
		return false
	}
}
