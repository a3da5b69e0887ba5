package procfs

import (
	"github.com/example/procfs/pkg/fs"
)

// WriteBytes routes a write to the tunable handlers. Only identifiers
// under the tunables directory accept writes; everything else fails
// with ErrPermission. Writes at non-zero offsets are refused: the
// surrounding layer must not route them here.
func (p *ProcFS) WriteBytes(id fs.Ident, offset int64, data []byte) (int, error) {
	var write writeFunc

	if entry := p.directoryEntry(id); entry != nil {
		if entry.write == nil {
			return 0, fs.NewError("WriteBytes", entry.name, fs.ErrPermission)
		}
		write = entry.write
	} else if ParentDirOf(id) == ParentRootSys {
		if KindOf(id) != KindRootSysVariable {
			return 0, fs.NewError("WriteBytes", "", fs.ErrInvalidHandle)
		}
		switch p.sysForInode(id).typ {
		case sysBoolean:
			write = p.writeSysBool
		case sysString:
			write = p.writeSysString
		default:
			return 0, fs.NewError("WriteBytes", "", fs.ErrInvalidHandle)
		}
	} else {
		return 0, fs.NewError("WriteBytes", "", fs.ErrPermission)
	}

	if !isPersistent(id) {
		return 0, fs.NewError("WriteBytes", "", fs.ErrPermission)
	}
	if offset != 0 {
		return 0, fs.NewError("WriteBytes", "", fs.ErrInvalid)
	}
	return write(id, data)
}
