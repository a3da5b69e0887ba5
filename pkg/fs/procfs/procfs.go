package procfs

import (
	"sync"

	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/kernel"
)

// readFunc generates the current content of a node.
type readFunc func(id fs.Ident) ([]byte, error)

// writeFunc applies a write to a node and returns the bytes consumed.
type writeFunc func(id fs.Ident, data []byte) (int, error)

// dirEntry is one slot of the static entry table: the name and
// generators of a well-known file kind. Directory kinds have no read
// callback; they are listed but not read as files.
type dirEntry struct {
	name  string
	kind  FileKind
	read  readFunc
	write writeFunc
}

// ProcFS is the filesystem facade: it owns the static entry table, the
// tunable registry, and the interned inode cache, and implements the
// fs.FileSystem contract over packed identifiers.
type ProcFS struct {
	kernel *kernel.Kernel
	fsid   uint32

	entries [KindMaxStaticFileIndex]dirEntry

	sys sysRegistry

	// mu guards inodes and every Inode's refcount. Held only across
	// cache lookup, insert, and remove; never across generator work.
	mu     sync.Mutex
	inodes map[uint32]*Inode
	root   *Inode
}

// New creates a process filesystem over the given kernel state. fsid
// is the identity the VFS assigned at mount.
func New(k *kernel.Kernel, fsid uint32) *ProcFS {
	p := &ProcFS{
		kernel: k,
		fsid:   fsid,
		inodes: make(map[uint32]*Inode),
	}
	p.root = &Inode{fs: p, id: fs.Ident{FSID: fsid, Index: uint32(KindRoot)}}
	p.sys.init()

	p.entries[KindRootMM] = dirEntry{"mm", KindRootMM, p.mm, nil}
	p.entries[KindRootMounts] = dirEntry{"mounts", KindRootMounts, p.mounts, nil}
	p.entries[KindRootDF] = dirEntry{"df", KindRootDF, p.df, nil}
	p.entries[KindRootAll] = dirEntry{"all", KindRootAll, p.all, nil}
	p.entries[KindRootMemstat] = dirEntry{"memstat", KindRootMemstat, p.memstat, nil}
	p.entries[KindRootCPUInfo] = dirEntry{"cpuinfo", KindRootCPUInfo, p.cpuinfo, nil}
	p.entries[KindRootInodes] = dirEntry{"inodes", KindRootInodes, p.inodesList, nil}
	p.entries[KindRootDmesg] = dirEntry{"dmesg", KindRootDmesg, p.dmesg, nil}
	p.entries[KindRootSelf] = dirEntry{"self", KindRootSelf, p.self, nil}
	p.entries[KindRootPCI] = dirEntry{"pci", KindRootPCI, p.pci, nil}
	p.entries[KindRootDevices] = dirEntry{"devices", KindRootDevices, p.devices, nil}
	p.entries[KindRootUptime] = dirEntry{"uptime", KindRootUptime, p.uptime, nil}
	p.entries[KindRootCmdline] = dirEntry{"cmdline", KindRootCmdline, p.cmdline, nil}
	p.entries[KindRootSys] = dirEntry{name: "sys", kind: KindRootSys}
	p.entries[KindRootNet] = dirEntry{name: "net", kind: KindRootNet}

	p.entries[KindRootNetAdapters] = dirEntry{"adapters", KindRootNetAdapters, p.netAdapters, nil}
	p.entries[KindRootNetTCP] = dirEntry{"tcp", KindRootNetTCP, p.netTCP, nil}
	p.entries[KindRootNetUDP] = dirEntry{"udp", KindRootNetUDP, p.netUDP, nil}
	p.entries[KindRootNetLocal] = dirEntry{"local", KindRootNetLocal, p.netLocal, nil}

	p.entries[KindPIDVM] = dirEntry{"vm", KindPIDVM, p.pidVM, nil}
	p.entries[KindPIDVMO] = dirEntry{"vmo", KindPIDVMO, p.pidVMO, nil}
	p.entries[KindPIDStack] = dirEntry{"stack", KindPIDStack, p.pidStack, nil}
	p.entries[KindPIDRegs] = dirEntry{"regs", KindPIDRegs, p.pidRegs, nil}
	p.entries[KindPIDFDs] = dirEntry{"fds", KindPIDFDs, p.pidFDs, nil}
	p.entries[KindPIDExe] = dirEntry{"exe", KindPIDExe, p.pidExe, nil}
	p.entries[KindPIDCwd] = dirEntry{"cwd", KindPIDCwd, p.pidCwd, nil}
	p.entries[KindPIDFD] = dirEntry{name: "fd", kind: KindPIDFD}

	return p
}

// FSID returns the mount identity of the filesystem.
func (p *ProcFS) FSID() uint32 {
	return p.fsid
}

// Root returns the identifier of the root directory.
func (p *ProcFS) Root() fs.Ident {
	return p.root.id
}

// directoryEntry returns the static table slot for the identifier's
// kind, or nil for kinds that exist only as computed children (fd
// entries and tunables).
func (p *ProcFS) directoryEntry(id fs.Ident) *dirEntry {
	kind := KindOf(id)
	if kind == KindInvalid || kind == KindRootSysVariable || kind >= KindMaxStaticFileIndex {
		return nil
	}
	if p.entries[kind].name == "" {
		return nil
	}
	return &p.entries[kind]
}

// Inode is one materialized node. It holds only its identifier and a
// back-reference to the filesystem; all dispatch decodes the
// identifier. Inodes are interned: at most one live Inode exists per
// identifier, and the cache drops its entry when the last reference is
// released.
type Inode struct {
	fs   *ProcFS
	id   fs.Ident
	refs int // guarded by fs.mu
}

// Identifier returns the inode's identifier.
func (i *Inode) Identifier() fs.Ident {
	return i.id
}

// RootInode returns the pre-constructed root inode. The root is owned
// by the filesystem and is not reference-counted.
func (p *ProcFS) RootInode() *Inode {
	return p.root
}

// GetInode returns the interned inode for the identifier, creating it
// on demand. Every call acquires one reference the caller must drop
// with Release; the cache itself holds no reference.
func (p *ProcFS) GetInode(id fs.Ident) *Inode {
	if id == p.root.id {
		return p.root
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if ino, ok := p.inodes[id.Index]; ok {
		ino.refs++
		return ino
	}
	ino := &Inode{fs: p, id: id, refs: 1}
	p.inodes[id.Index] = ino
	return ino
}

// Release drops one reference. When the last reference goes the cache
// entry is removed; a later GetInode for the same identifier yields a
// fresh inode, so callers must not rely on pointer identity across the
// gap.
func (i *Inode) Release() {
	if i == i.fs.root {
		return
	}
	i.fs.mu.Lock()
	defer i.fs.mu.Unlock()
	i.refs--
	if i.refs <= 0 {
		delete(i.fs.inodes, i.id.Index)
	}
}

// liveInode is one row of the interned-inode listing.
type liveInode struct {
	id   fs.Ident
	refs int
}

// liveInodes snapshots the cache (root included) for /proc/inodes.
func (p *ProcFS) liveInodes() []liveInode {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]liveInode, 0, len(p.inodes)+1)
	out = append(out, liveInode{p.root.id, 1})
	for _, ino := range p.inodes {
		out = append(out, liveInode{ino.id, ino.refs})
	}
	return out
}

// AddChild permanently fails: the namespace is computed, never edited.
func (p *ProcFS) AddChild(dir fs.Ident, name string, child fs.Ident) error {
	return fs.NewError("AddChild", name, fs.ErrPermission)
}

// RemoveChild permanently fails.
func (p *ProcFS) RemoveChild(dir fs.Ident, name string) error {
	return fs.NewError("RemoveChild", name, fs.ErrPermission)
}

// Chmod permanently fails.
func (p *ProcFS) Chmod(id fs.Ident, mode fs.FileMode) error {
	return fs.NewError("Chmod", "", fs.ErrPermission)
}

// Chown permanently fails.
func (p *ProcFS) Chown(id fs.Ident, uid, gid uint32) error {
	return fs.NewError("Chown", "", fs.ErrPermission)
}

// FlushMetadata is a no-op; there is nothing to flush.
func (p *ProcFS) FlushMetadata(id fs.Ident) error {
	return nil
}

var _ fs.FileSystem = (*ProcFS)(nil)
