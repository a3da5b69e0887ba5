// Package procfs implements a synthetic in-memory process-information
// filesystem: a read-mostly namespace projecting kernel and
// per-process state as files and directories, with a small whitelisted
// set of writable runtime tunables under /sys. Inodes are materialized
// on demand from packed 32-bit identifiers and interned so concurrent
// lookups observe one inode per identifier.
package procfs

// ParentDir is the 4-bit parent-directory class stored in bits 12-15
// of an identifier's index.
type ParentDir uint32

const (
	ParentAbstractRoot ParentDir = iota
	ParentRoot
	ParentRootSys
	ParentRootNet
	ParentPID
	ParentPIDFD
)

// FileKind tags the role of a node. The value is stored in bits 0-7 of
// an identifier's index; fd children store KindMaxStaticFileIndex plus
// the descriptor number there instead.
type FileKind uint32

const (
	KindInvalid FileKind = iota

	KindRoot // directory

	kindRootStart
	KindRootMM
	KindRootMounts
	KindRootDF
	KindRootAll
	KindRootMemstat
	KindRootCPUInfo
	KindRootInodes
	KindRootDmesg
	KindRootPCI
	KindRootDevices
	KindRootUptime
	KindRootCmdline
	KindRootSelf // symlink
	KindRootSys  // directory
	KindRootNet  // directory
	kindRootEnd

	KindRootSysVariable

	KindRootNetAdapters
	KindRootNetTCP
	KindRootNetUDP
	KindRootNetLocal

	KindPID

	kindPIDStart
	KindPIDVM
	KindPIDVMO
	KindPIDStack
	KindPIDRegs
	KindPIDFDs
	KindPIDExe // symlink
	KindPIDCwd // symlink
	KindPIDFD  // directory
	kindPIDEnd

	// KindMaxStaticFileIndex is the first value past every static
	// kind; fd children are encoded from it upward (fd n as this plus n).
	KindMaxStaticFileIndex
)

// isRootKind reports whether the kind is a root-level file.
func isRootKind(k FileKind) bool {
	return k > kindRootStart && k < kindRootEnd
}

// isPIDKind reports whether the kind is a per-process file.
func isPIDKind(k FileKind) bool {
	return k > kindPIDStart && k < kindPIDEnd
}
