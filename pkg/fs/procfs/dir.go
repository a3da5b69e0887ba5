package procfs

import (
	"strconv"

	"github.com/example/procfs/pkg/fs"
)

// Traverse enumerates a directory against the live registries: the
// static entry table for well-known children, the process table for
// pid directories, the tunable registry for /sys, and the owning
// process's descriptor table for fd directories. "." and ".." are
// emitted first. Each source is snapshotted for the duration of the
// call; no lock is held across the callback.
func (p *ProcFS) Traverse(dir fs.Ident, fn func(fs.DirEntry) bool) error {
	if !isDirectory(dir) {
		return fs.NewError("Traverse", "", fs.ErrNotDir)
	}

	pid := PID(dir)
	kind := KindOf(dir)

	cookie := int64(0)
	emit := func(name string, id fs.Ident) bool {
		cookie++
		return fn(fs.DirEntry{Name: name, ID: id, Cookie: cookie})
	}

	if !emit(".", dir) {
		return nil
	}
	if !emit("..", ParentOf(dir)) {
		return nil
	}

	switch kind {
	case KindRoot:
		for i := range p.entries {
			entry := &p.entries[i]
			if entry.name == "" || !isRootKind(entry.kind) {
				continue
			}
			if !emit(entry.name, Encode(p.fsid, ParentRoot, 0, entry.kind)) {
				return nil
			}
		}
		for _, childPID := range p.kernel.Processes.AllPIDs() {
			if !emit(strconv.Itoa(childPID), Encode(p.fsid, ParentRoot, childPID, KindPID)) {
				return nil
			}
		}

	case KindRootSys:
		vars := p.sys.snapshot()
		for i := 1; i < len(vars); i++ {
			if !emit(vars[i].name, EncodeSysVar(p.fsid, i)) {
				return nil
			}
		}

	case KindRootNet:
		for _, netKind := range []FileKind{KindRootNetAdapters, KindRootNetTCP, KindRootNetUDP, KindRootNetLocal} {
			if !emit(p.entries[netKind].name, Encode(p.fsid, ParentRootNet, 0, netKind)) {
				return nil
			}
		}

	case KindPID:
		proc := p.kernel.Processes.FromPID(pid)
		if proc == nil {
			return fs.NewError("Traverse", strconv.Itoa(pid), fs.ErrNotExist)
		}
		for i := range p.entries {
			entry := &p.entries[i]
			if entry.name == "" || !isPIDKind(entry.kind) {
				continue
			}
			if entry.kind == KindPIDExe && proc.Executable() == "" {
				continue
			}
			if !emit(entry.name, Encode(p.fsid, ParentPID, pid, entry.kind)) {
				return nil
			}
		}

	case KindPIDFD:
		proc := p.kernel.Processes.FromPID(pid)
		if proc == nil {
			return fs.NewError("Traverse", strconv.Itoa(pid), fs.ErrNotExist)
		}
		for _, fd := range proc.OpenFDs() {
			if !emit(strconv.Itoa(fd), EncodeFD(p.fsid, pid, fd)) {
				return nil
			}
		}
	}

	return nil
}

// Lookup resolves a name within a directory, symmetric with Traverse:
// every name Traverse emits resolves to the same identifier, and
// nothing else resolves. A miss returns ErrNotExist.
func (p *ProcFS) Lookup(dir fs.Ident, name string) (fs.Ident, error) {
	if !isDirectory(dir) {
		return fs.Ident{}, fs.NewError("Lookup", name, fs.ErrNotDir)
	}
	if name == "." {
		return dir, nil
	}
	if name == ".." {
		return ParentOf(dir), nil
	}

	switch KindOf(dir) {
	case KindRoot:
		for i := range p.entries {
			entry := &p.entries[i]
			if entry.name == "" || !isRootKind(entry.kind) {
				continue
			}
			if name == entry.name {
				return Encode(p.fsid, ParentRoot, 0, entry.kind), nil
			}
		}
		if pid, err := strconv.Atoi(name); err == nil && pid >= 0 && pid < 1<<16 {
			if p.kernel.Processes.FromPID(pid) != nil {
				return Encode(p.fsid, ParentRoot, pid, KindPID), nil
			}
		}

	case KindRootSys:
		vars := p.sys.snapshot()
		for i := 1; i < len(vars); i++ {
			if name == vars[i].name {
				return EncodeSysVar(p.fsid, i), nil
			}
		}

	case KindRootNet:
		for _, netKind := range []FileKind{KindRootNetAdapters, KindRootNetTCP, KindRootNetUDP, KindRootNetLocal} {
			if name == p.entries[netKind].name {
				return Encode(p.fsid, ParentRootNet, 0, netKind), nil
			}
		}

	case KindPID:
		pid := PID(dir)
		proc := p.kernel.Processes.FromPID(pid)
		if proc == nil {
			return fs.Ident{}, fs.NewError("Lookup", name, fs.ErrNotExist)
		}
		for i := range p.entries {
			entry := &p.entries[i]
			if entry.name == "" || !isPIDKind(entry.kind) {
				continue
			}
			if entry.kind == KindPIDExe && proc.Executable() == "" {
				continue
			}
			if name == entry.name {
				return Encode(p.fsid, ParentPID, pid, entry.kind), nil
			}
		}

	case KindPIDFD:
		pid := PID(dir)
		if fd, err := strconv.Atoi(name); err == nil && fd >= 0 && fd <= 0xff-int(KindMaxStaticFileIndex) {
			if proc := p.kernel.Processes.FromPID(pid); proc != nil {
				if _, open := proc.FileDescription(fd); open {
					return EncodeFD(p.fsid, pid, fd), nil
				}
			}
		}
	}

	return fs.Ident{}, fs.NewError("Lookup", name, fs.ErrNotExist)
}

// DirectoryEntryCount counts the entries Traverse would emit.
func (p *ProcFS) DirectoryEntryCount(dir fs.Ident) (int, error) {
	count := 0
	err := p.Traverse(dir, func(fs.DirEntry) bool {
		count++
		return true
	})
	if err != nil {
		return 0, err
	}
	return count, nil
}
