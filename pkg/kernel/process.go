package kernel

import (
	"sort"
	"sync"
)

// FileDescription describes one open file descriptor of a process.
type FileDescription struct {
	AbsolutePath string
	Seekable     bool
	ClassName    string
	Offset       int64
}

// PhysicalPage describes one physical page backing a region.
type PhysicalPage struct {
	Address  uint64
	RefCount uint32
	COW      bool
}

// VMORef describes the virtual memory object backing a region.
type VMORef struct {
	ID        uint64
	Anonymous bool
	RefCount  uint32
	Pages     []PhysicalPage
}

// Region describes one mapped virtual memory region of a process.
type Region struct {
	Readable       bool
	Writable       bool
	Address        uint64
	Size           uint64
	AmountResident uint64
	Name           string
	VMO            VMORef
}

// RegisterState holds the saved register file of a thread.
type RegisterState struct {
	EAX, EBX, ECX, EDX uint32
	ESI, EDI, EBP      uint32
	ESP, EIP           uint32
	CS, SS             uint16
	EFlags, CR3        uint32
}

// StackFrame is one symbolized frame of a thread backtrace.
type StackFrame struct {
	Address uint64
	Symbol  string
}

// Thread describes one thread of a process. The first thread of a
// process is its main thread.
type Thread struct {
	TID            int
	State          string
	TimesScheduled uint64
	Ticks          uint64
	Regs           RegisterState
	Backtrace      []StackFrame
}

// Process is one entry in the process table. Mutable state is guarded
// by the process's own lock; accessors return copies.
type Process struct {
	mu sync.Mutex

	pid          int
	ppid         int
	pgid         int
	pgp          int
	sid          int
	uid          uint32
	gid          uint32
	name         string
	ttyName      string
	priority     string
	syscallCount uint64
	iconID       int

	amountVirtual  uint64
	amountResident uint64
	amountShared   uint64

	executable string
	cwd        string
	fds        map[int]FileDescription
	regions    []Region
	threads    []Thread
}

// NewProcess creates a process with the given identity. The process is
// not visible until added to a table.
func NewProcess(pid int, name string, uid, gid uint32) *Process {
	return &Process{
		pid:      pid,
		name:     name,
		uid:      uid,
		gid:      gid,
		ttyName:  "notty",
		priority: "Normal",
		fds:      make(map[int]FileDescription),
	}
}

// PID returns the process id.
func (p *Process) PID() int { return p.pid }

// UID returns the owning user id.
func (p *Process) UID() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.uid
}

// GID returns the owning group id.
func (p *Process) GID() uint32 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gid
}

// Name returns the process name.
func (p *Process) Name() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.name
}

// SetParent records the parent pid.
func (p *Process) SetParent(ppid int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ppid = ppid
}

// SetSession records the process group and session ids.
func (p *Process) SetSession(pgid, pgp, sid int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pgid, p.pgp, p.sid = pgid, pgp, sid
}

// SetTTY records the controlling terminal name; an empty name means
// no terminal.
func (p *Process) SetTTY(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if name == "" {
		name = "notty"
	}
	p.ttyName = name
}

// SetPriority records the scheduling priority label.
func (p *Process) SetPriority(label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.priority = label
}

// SetMemoryUse records the accounted memory amounts.
func (p *Process) SetMemoryUse(virtual, resident, shared uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.amountVirtual = virtual
	p.amountResident = resident
	p.amountShared = shared
}

// CountSyscall bumps the syscall counter.
func (p *Process) CountSyscall() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.syscallCount++
}

// SetIconID records the icon id shown by system monitors.
func (p *Process) SetIconID(id int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.iconID = id
}

// SetExecutable records the path of the executable custody; an empty
// path means the process has none (kernel processes).
func (p *Process) SetExecutable(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.executable = path
}

// Executable returns the executable custody path, or "" when the
// process has none.
func (p *Process) Executable() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.executable
}

// SetCWD records the current directory custody path.
func (p *Process) SetCWD(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cwd = path
}

// CWD returns the current directory custody path.
func (p *Process) CWD() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cwd
}

// OpenFD installs a file description at the given descriptor number.
func (p *Process) OpenFD(fd int, d FileDescription) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fds[fd] = d
}

// CloseFD removes the file description at the given descriptor number.
func (p *Process) CloseFD(fd int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.fds, fd)
}

// FileDescription returns the description at the descriptor number and
// whether the descriptor is open.
func (p *Process) FileDescription(fd int) (FileDescription, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	d, ok := p.fds[fd]
	return d, ok
}

// OpenFDs returns the open descriptor numbers in ascending order.
func (p *Process) OpenFDs() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	fds := make([]int, 0, len(p.fds))
	for fd := range p.fds {
		fds = append(fds, fd)
	}
	sort.Ints(fds)
	return fds
}

// NumberOfOpenFDs returns how many descriptors are open.
func (p *Process) NumberOfOpenFDs() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.fds)
}

// AddRegion appends a mapped region.
func (p *Process) AddRegion(r Region) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.regions = append(p.regions, r)
}

// Regions returns a snapshot of the mapped regions.
func (p *Process) Regions() []Region {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Region(nil), p.regions...)
}

// AddThread appends a thread. The first thread added is the main
// thread.
func (p *Process) AddThread(t Thread) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.threads = append(p.threads, t)
}

// Threads returns a snapshot of the thread list.
func (p *Process) Threads() []Thread {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Thread(nil), p.threads...)
}

// MainThread returns the first thread and whether one exists.
func (p *Process) MainThread() (Thread, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.threads) == 0 {
		return Thread{}, false
	}
	return p.threads[0], true
}

// Stats is the accounting snapshot one process contributes to the
// global process listing.
type Stats struct {
	PID            int
	PPID           int
	PGID           int
	PGP            int
	SID            int
	UID            uint32
	GID            uint32
	State          string
	TimesScheduled uint64
	Ticks          uint64
	NFDs           int
	Name           string
	TTY            string
	AmountVirtual  uint64
	AmountResident uint64
	AmountShared   uint64
	Priority       string
	SyscallCount   uint64
	IconID         int
}

// Stats takes a consistent accounting snapshot of the process.
func (p *Process) Stats() Stats {
	p.mu.Lock()
	defer p.mu.Unlock()
	s := Stats{
		PID:          p.pid,
		PPID:         p.ppid,
		PGID:         p.pgid,
		PGP:          p.pgp,
		SID:          p.sid,
		UID:          p.uid,
		GID:          p.gid,
		State:        "Invalid",
		NFDs:         len(p.fds),
		Name:         p.name,
		TTY:          p.ttyName,
		Priority:     p.priority,
		SyscallCount: p.syscallCount,
		IconID:       p.iconID,

		AmountVirtual:  p.amountVirtual,
		AmountResident: p.amountResident,
		AmountShared:   p.amountShared,
	}
	if len(p.threads) > 0 {
		main := p.threads[0]
		s.State = main.State
		s.TimesScheduled = main.TimesScheduled
		s.Ticks = main.Ticks
	}
	return s
}

// ProcessTable holds the live processes keyed by pid.
type ProcessTable struct {
	mu    sync.Mutex
	procs map[int]*Process
}

// NewProcessTable creates an empty process table.
func NewProcessTable() *ProcessTable {
	return &ProcessTable{procs: make(map[int]*Process)}
}

// Add makes a process visible in the table.
func (t *ProcessTable) Add(p *Process) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.procs[p.pid] = p
}

// Remove takes the process with the given pid out of the table.
func (t *ProcessTable) Remove(pid int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.procs, pid)
}

// FromPID returns the live process with the given pid, or nil.
func (t *ProcessTable) FromPID(pid int) *Process {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.procs[pid]
}

// AllPIDs returns the live pids in ascending order.
func (t *ProcessTable) AllPIDs() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	pids := make([]int, 0, len(t.procs))
	for pid := range t.procs {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	return pids
}

// All returns a snapshot of the live processes in pid order.
func (t *ProcessTable) All() []*Process {
	t.mu.Lock()
	defer t.mu.Unlock()
	pids := make([]int, 0, len(t.procs))
	for pid := range t.procs {
		pids = append(pids, pid)
	}
	sort.Ints(pids)
	procs := make([]*Process, 0, len(pids))
	for _, pid := range pids {
		procs = append(procs, t.procs[pid])
	}
	return procs
}
