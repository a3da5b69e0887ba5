package procfs

import (
	"github.com/example/procfs/pkg/fs"
)

// Metadata derives the attributes of an inode from its identifier
// alone: mode bits follow the file kind, ownership comes from the
// owning process for process-related nodes, and every timestamp is the
// fixed epoch.
func (p *ProcFS) Metadata(id fs.Ident) (fs.Metadata, error) {
	meta := fs.Metadata{
		Inode:      id,
		Nlink:      1,
		AccessTime: fs.Epoch,
		ModifyTime: fs.Epoch,
		ChangeTime: fs.Epoch,
	}

	if isProcessRelated(id) {
		proc := p.kernel.Processes.FromPID(PID(id))
		if proc == nil {
			return fs.Metadata{}, fs.NewError("Metadata", "", fs.ErrNotExist)
		}
		meta.Uid = proc.UID()
		meta.Gid = proc.GID()
	}

	if ParentDirOf(id) == ParentPIDFD {
		meta.Mode = 0o120777
		return meta, nil
	}

	switch KindOf(id) {
	case KindRootSelf, KindPIDCwd, KindPIDExe:
		meta.Mode = 0o120777
	case KindRoot, KindRootSys, KindRootNet, KindPID, KindPIDFD:
		meta.Mode = 0o040777
	default:
		meta.Mode = 0o100644
	}
	return meta, nil
}
