package procfs

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/example/procfs/pkg/fs"
)

// Generators produce the current content of one node as a byte
// buffer. Structured files serialize JSON documents whose field names
// are part of the external contract; the struct tags below are
// load-bearing. Text files are human-readable and make no cross-read
// promises.

type fdEntry struct {
	FD           int    `json:"fd"`
	AbsolutePath string `json:"absolute_path"`
	Seekable     bool   `json:"seekable"`
	Class        string `json:"class"`
	Offset       int64  `json:"offset"`
}

func (p *ProcFS) pidFDs(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "fds", fs.ErrNotExist)
	}
	entries := []fdEntry{}
	for _, fd := range proc.OpenFDs() {
		description, ok := proc.FileDescription(fd)
		if !ok {
			continue
		}
		entries = append(entries, fdEntry{
			FD:           fd,
			AbsolutePath: description.AbsolutePath,
			Seekable:     description.Seekable,
			Class:        description.ClassName,
			Offset:       description.Offset,
		})
	}
	return json.Marshal(entries)
}

// pidFDEntry resolves an fd-directory child to the descriptor's
// absolute path, with no trailing newline.
func (p *ProcFS) pidFDEntry(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "fd", fs.ErrNotExist)
	}
	description, ok := proc.FileDescription(FD(id))
	if !ok {
		return nil, fs.NewError("read", "fd", fs.ErrNotExist)
	}
	return []byte(description.AbsolutePath), nil
}

type vmRegion struct {
	Readable       bool   `json:"readable"`
	Writable       bool   `json:"writable"`
	Address        uint64 `json:"address"`
	Size           uint64 `json:"size"`
	AmountResident uint64 `json:"amount_resident"`
	Name           string `json:"name"`
}

func (p *ProcFS) pidVM(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "vm", fs.ErrNotExist)
	}
	regions := []vmRegion{}
	for _, region := range proc.Regions() {
		regions = append(regions, vmRegion{
			Readable:       region.Readable,
			Writable:       region.Writable,
			Address:        region.Address,
			Size:           region.Size,
			AmountResident: region.AmountResident,
			Name:           region.Name,
		})
	}
	return json.Marshal(regions)
}

func (p *ProcFS) pidVMO(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "vmo", fs.ErrNotExist)
	}
	var b bytes.Buffer
	b.WriteString("BEGIN       END         SIZE        NAME\n")
	for _, region := range proc.Regions() {
		fmt.Fprintf(&b, "%x -- %x    %x    %s\n",
			region.Address,
			region.Address+region.Size-1,
			region.Size,
			region.Name)
		backing := "file-backed"
		if region.VMO.Anonymous {
			backing = "anonymous"
		}
		fmt.Fprintf(&b, "VMO: %s @ %x(%d)\n", backing, region.VMO.ID, region.VMO.RefCount)
		for _, page := range region.VMO.Pages {
			cow := ""
			if page.COW {
				cow = "!"
			}
			fmt.Fprintf(&b, "P%x%s(%d) ", page.Address, cow, page.RefCount)
		}
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

func (p *ProcFS) pidStack(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "stack", fs.ErrNotExist)
	}
	main, ok := proc.MainThread()
	if !ok {
		return nil, fs.NewError("read", "stack", fs.ErrNotExist)
	}
	var b bytes.Buffer
	for _, frame := range main.Backtrace {
		fmt.Fprintf(&b, "%08x  %s\n", frame.Address, frame.Symbol)
	}
	return b.Bytes(), nil
}

func (p *ProcFS) pidRegs(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "regs", fs.ErrNotExist)
	}
	var b bytes.Buffer
	for _, thread := range proc.Threads() {
		regs := thread.Regs
		fmt.Fprintf(&b, "Thread %d:\n", thread.TID)
		fmt.Fprintf(&b, "eax: %x\n", regs.EAX)
		fmt.Fprintf(&b, "ebx: %x\n", regs.EBX)
		fmt.Fprintf(&b, "ecx: %x\n", regs.ECX)
		fmt.Fprintf(&b, "edx: %x\n", regs.EDX)
		fmt.Fprintf(&b, "esi: %x\n", regs.ESI)
		fmt.Fprintf(&b, "edi: %x\n", regs.EDI)
		fmt.Fprintf(&b, "ebp: %x\n", regs.EBP)
		fmt.Fprintf(&b, "cr3: %x\n", regs.CR3)
		fmt.Fprintf(&b, "flg: %x\n", regs.EFlags)
		fmt.Fprintf(&b, "sp:  %04x:%x\n", regs.SS, regs.ESP)
		fmt.Fprintf(&b, "pc:  %04x:%x\n", regs.CS, regs.EIP)
	}
	return b.Bytes(), nil
}

// pidExe resolves the executable custody path. The entry is hidden
// while the process has no executable, so a miss here means the
// process died or dropped it between lookup and read.
func (p *ProcFS) pidExe(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "exe", fs.ErrNotExist)
	}
	exe := proc.Executable()
	if exe == "" {
		return nil, fs.NewError("read", "exe", fs.ErrNotExist)
	}
	return []byte(exe), nil
}

func (p *ProcFS) pidCwd(id fs.Ident) ([]byte, error) {
	proc := p.kernel.Processes.FromPID(PID(id))
	if proc == nil {
		return nil, fs.NewError("read", "cwd", fs.ErrNotExist)
	}
	return []byte(proc.CWD()), nil
}

// self renders the inspecting process's pid as decimal digits, no
// trailing newline.
func (p *ProcFS) self(id fs.Ident) ([]byte, error) {
	return []byte(strconv.Itoa(p.kernel.CurrentPID())), nil
}

type pciFunction struct {
	Bus               uint8  `json:"bus"`
	Slot              uint8  `json:"slot"`
	Function          uint8  `json:"function"`
	VendorID          uint16 `json:"vendor_id"`
	DeviceID          uint16 `json:"device_id"`
	RevisionID        uint8  `json:"revision_id"`
	Subclass          uint8  `json:"subclass"`
	Class             uint8  `json:"class"`
	SubsystemID       uint16 `json:"subsystem_id"`
	SubsystemVendorID uint16 `json:"subsystem_vendor_id"`
}

func (p *ProcFS) pci(id fs.Ident) ([]byte, error) {
	functions := []pciFunction{}
	for _, device := range p.kernel.PCIDevices() {
		functions = append(functions, pciFunction{
			Bus:               device.Bus,
			Slot:              device.Slot,
			Function:          device.Function,
			VendorID:          device.VendorID,
			DeviceID:          device.DeviceID,
			RevisionID:        device.RevisionID,
			Subclass:          device.Subclass,
			Class:             device.Class,
			SubsystemID:       device.SubsystemID,
			SubsystemVendorID: device.SubsystemVendorID,
		})
	}
	return json.Marshal(functions)
}

type deviceEntry struct {
	Major     uint32 `json:"major"`
	Minor     uint32 `json:"minor"`
	ClassName string `json:"class_name"`
	Type      string `json:"type"`
}

func (p *ProcFS) devices(id fs.Ident) ([]byte, error) {
	entries := []deviceEntry{}
	for _, device := range p.kernel.Devices() {
		kind := "character"
		if device.Block {
			kind = "block"
		}
		entries = append(entries, deviceEntry{
			Major:     device.Major,
			Minor:     device.Minor,
			ClassName: device.ClassName,
			Type:      kind,
		})
	}
	return json.Marshal(entries)
}

func (p *ProcFS) uptime(id fs.Ident) ([]byte, error) {
	seconds := uint64(p.kernel.Uptime().Seconds())
	return []byte(fmt.Sprintf("%d\n", seconds)), nil
}

func (p *ProcFS) cmdline(id fs.Ident) ([]byte, error) {
	return []byte(p.kernel.Cmdline() + "\n"), nil
}

type adapterEntry struct {
	Name        string `json:"name"`
	ClassName   string `json:"class_name"`
	MACAddress  string `json:"mac_address"`
	IPv4Address string `json:"ipv4_address"`
	PacketsIn   uint64 `json:"packets_in"`
	BytesIn     uint64 `json:"bytes_in"`
	PacketsOut  uint64 `json:"packets_out"`
	BytesOut    uint64 `json:"bytes_out"`
	LinkUp      bool   `json:"link_up"`
}

func (p *ProcFS) netAdapters(id fs.Ident) ([]byte, error) {
	entries := []adapterEntry{}
	for _, adapter := range p.kernel.Adapters() {
		entries = append(entries, adapterEntry{
			Name:        adapter.Name,
			ClassName:   adapter.ClassName,
			MACAddress:  adapter.MACAddress,
			IPv4Address: adapter.IPv4Address,
			PacketsIn:   adapter.PacketsIn,
			BytesIn:     adapter.BytesIn,
			PacketsOut:  adapter.PacketsOut,
			BytesOut:    adapter.BytesOut,
			LinkUp:      adapter.LinkUp,
		})
	}
	return json.Marshal(entries)
}

type tcpSocketEntry struct {
	LocalAddress   string `json:"local_address"`
	LocalPort      uint16 `json:"local_port"`
	PeerAddress    string `json:"peer_address"`
	PeerPort       uint16 `json:"peer_port"`
	State          string `json:"state"`
	AckNumber      uint32 `json:"ack_number"`
	SequenceNumber uint32 `json:"sequence_number"`
	PacketsIn      uint64 `json:"packets_in"`
	BytesIn        uint64 `json:"bytes_in"`
	PacketsOut     uint64 `json:"packets_out"`
	BytesOut       uint64 `json:"bytes_out"`
}

func (p *ProcFS) netTCP(id fs.Ident) ([]byte, error) {
	entries := []tcpSocketEntry{}
	for _, socket := range p.kernel.TCPSockets() {
		entries = append(entries, tcpSocketEntry{
			LocalAddress:   socket.LocalAddress,
			LocalPort:      socket.LocalPort,
			PeerAddress:    socket.PeerAddress,
			PeerPort:       socket.PeerPort,
			State:          socket.State,
			AckNumber:      socket.AckNumber,
			SequenceNumber: socket.SequenceNumber,
			PacketsIn:      socket.PacketsIn,
			BytesIn:        socket.BytesIn,
			PacketsOut:     socket.PacketsOut,
			BytesOut:       socket.BytesOut,
		})
	}
	return json.Marshal(entries)
}

type udpSocketEntry struct {
	LocalAddress string `json:"local_address"`
	LocalPort    uint16 `json:"local_port"`
	PeerAddress  string `json:"peer_address"`
	PeerPort     uint16 `json:"peer_port"`
}

func (p *ProcFS) netUDP(id fs.Ident) ([]byte, error) {
	entries := []udpSocketEntry{}
	for _, socket := range p.kernel.UDPSockets() {
		entries = append(entries, udpSocketEntry{
			LocalAddress: socket.LocalAddress,
			LocalPort:    socket.LocalPort,
			PeerAddress:  socket.PeerAddress,
			PeerPort:     socket.PeerPort,
		})
	}
	return json.Marshal(entries)
}

type localSocketEntry struct {
	Path        string `json:"path"`
	OriginPID   int    `json:"origin_pid"`
	AcceptorPID int    `json:"acceptor_pid"`
}

func (p *ProcFS) netLocal(id fs.Ident) ([]byte, error) {
	entries := []localSocketEntry{}
	for _, socket := range p.kernel.LocalSockets() {
		entries = append(entries, localSocketEntry{
			Path:        socket.Path,
			OriginPID:   socket.OriginPID,
			AcceptorPID: socket.AcceptorPID,
		})
	}
	return json.Marshal(entries)
}

func (p *ProcFS) mm(id fs.Ident) ([]byte, error) {
	stats := p.kernel.MemStats()
	var b bytes.Buffer
	count := 0
	for _, object := range p.kernel.VMObjects() {
		count++
		backing := "file"
		if object.Anonymous {
			backing = "anon"
		}
		fmt.Fprintf(&b, "VMObject: %#x %s(%d): p:%4d\n", object.ID, backing, object.RefCount, object.PageCount)
	}
	fmt.Fprintf(&b, "VMO count: %d\n", count)
	fmt.Fprintf(&b, "Free physical pages: %d\n", stats.UserPhysicalPages-stats.UserPhysicalPagesUsed)
	fmt.Fprintf(&b, "Free supervisor physical pages: %d\n", stats.SuperPhysicalPages-stats.SuperPhysicalPagesUsed)
	return b.Bytes(), nil
}

func (p *ProcFS) dmesg(id fs.Ident) ([]byte, error) {
	return p.kernel.ConsoleLog(), nil
}

func (p *ProcFS) mounts(id fs.Ident) ([]byte, error) {
	var b bytes.Buffer
	for _, mount := range p.kernel.Mounts() {
		fmt.Fprintf(&b, "%s @ ", mount.ClassName)
		if !mount.Host.IsValid() {
			b.WriteString("/")
		} else {
			fmt.Fprintf(&b, "%d:%d %s", mount.Host.FSID, mount.Host.Index, mount.MountPoint)
		}
		b.WriteByte('\n')
	}
	return b.Bytes(), nil
}

type dfEntry struct {
	ClassName       string  `json:"class_name"`
	TotalBlockCount uint64  `json:"total_block_count"`
	FreeBlockCount  uint64  `json:"free_block_count"`
	TotalInodeCount uint64  `json:"total_inode_count"`
	FreeInodeCount  uint64  `json:"free_inode_count"`
	MountPoint      string  `json:"mount_point"`
	BlockSize       uint32  `json:"block_size"`
	ReadOnly        bool    `json:"readonly"`
	Device          *string `json:"device"`
}

func (p *ProcFS) df(id fs.Ident) ([]byte, error) {
	entries := []dfEntry{}
	for _, mount := range p.kernel.Mounts() {
		entry := dfEntry{
			ClassName:       mount.ClassName,
			TotalBlockCount: mount.TotalBlockCount,
			FreeBlockCount:  mount.FreeBlockCount,
			TotalInodeCount: mount.TotalInodeCount,
			FreeInodeCount:  mount.FreeInodeCount,
			MountPoint:      mount.MountPoint,
			BlockSize:       mount.BlockSize,
			ReadOnly:        mount.ReadOnly,
		}
		if mount.Device != "" {
			device := mount.Device
			entry.Device = &device
		}
		entries = append(entries, entry)
	}
	return json.Marshal(entries)
}

func (p *ProcFS) cpuinfo(id fs.Ident) ([]byte, error) {
	info := p.kernel.CPUInfo()
	var b bytes.Buffer
	fmt.Fprintf(&b, "cpuid:     %s\n", info.VendorID)
	fmt.Fprintf(&b, "family:    %d\n", info.Family)
	fmt.Fprintf(&b, "model:     %d\n", info.Model)
	fmt.Fprintf(&b, "stepping:  %d\n", info.Stepping)
	fmt.Fprintf(&b, "type:      %d\n", info.Type)
	fmt.Fprintf(&b, "brandstr:  %q\n", info.Brand)
	return b.Bytes(), nil
}

type memstatDocument struct {
	KmallocAllocated        uint64 `json:"kmalloc_allocated"`
	KmallocAvailable        uint64 `json:"kmalloc_available"`
	KmallocEternalAllocated uint64 `json:"kmalloc_eternal_allocated"`
	UserPhysicalAllocated   uint64 `json:"user_physical_allocated"`
	UserPhysicalAvailable   uint64 `json:"user_physical_available"`
	SuperPhysicalAllocated  uint64 `json:"super_physical_allocated"`
	SuperPhysicalAvailable  uint64 `json:"super_physical_available"`
	KmallocCallCount        uint64 `json:"kmalloc_call_count"`
	KfreeCallCount          uint64 `json:"kfree_call_count"`
}

func (p *ProcFS) memstat(id fs.Ident) ([]byte, error) {
	stats := p.kernel.MemStats()
	return json.Marshal(memstatDocument{
		KmallocAllocated:        stats.KmallocAllocated,
		KmallocAvailable:        stats.KmallocAvailable,
		KmallocEternalAllocated: stats.KmallocEternalAllocated,
		UserPhysicalAllocated:   stats.UserPhysicalPagesUsed,
		UserPhysicalAvailable:   stats.UserPhysicalPages,
		SuperPhysicalAllocated:  stats.SuperPhysicalPagesUsed,
		SuperPhysicalAvailable:  stats.SuperPhysicalPages,
		KmallocCallCount:        stats.KmallocCallCount,
		KfreeCallCount:          stats.KfreeCallCount,
	})
}

type processStatistics struct {
	PID            int    `json:"pid"`
	TimesScheduled uint64 `json:"times_scheduled"`
	PGID           int    `json:"pgid"`
	PGP            int    `json:"pgp"`
	SID            int    `json:"sid"`
	UID            uint32 `json:"uid"`
	GID            uint32 `json:"gid"`
	State          string `json:"state"`
	PPID           int    `json:"ppid"`
	NFDs           int    `json:"nfds"`
	Name           string `json:"name"`
	TTY            string `json:"tty"`
	AmountVirtual  uint64 `json:"amount_virtual"`
	AmountResident uint64 `json:"amount_resident"`
	AmountShared   uint64 `json:"amount_shared"`
	Ticks          uint64 `json:"ticks"`
	Priority       string `json:"priority"`
	SyscallCount   uint64 `json:"syscall_count"`
	IconID         int    `json:"icon_id"`
}

func (p *ProcFS) all(id fs.Ident) ([]byte, error) {
	listing := []processStatistics{}
	for _, proc := range p.kernel.Processes.All() {
		stats := proc.Stats()
		listing = append(listing, processStatistics{
			PID:            stats.PID,
			TimesScheduled: stats.TimesScheduled,
			PGID:           stats.PGID,
			PGP:            stats.PGP,
			SID:            stats.SID,
			UID:            stats.UID,
			GID:            stats.GID,
			State:          stats.State,
			PPID:           stats.PPID,
			NFDs:           stats.NFDs,
			Name:           stats.Name,
			TTY:            stats.TTY,
			AmountVirtual:  stats.AmountVirtual,
			AmountResident: stats.AmountResident,
			AmountShared:   stats.AmountShared,
			Ticks:          stats.Ticks,
			Priority:       stats.Priority,
			SyscallCount:   stats.SyscallCount,
			IconID:         stats.IconID,
		})
	}
	return json.Marshal(listing)
}

// inodesList reports the filesystem's own interned inode table.
func (p *ProcFS) inodesList(id fs.Ident) ([]byte, error) {
	live := p.liveInodes()
	sort.Slice(live, func(i, j int) bool { return live[i].id.Index < live[j].id.Index })
	var b bytes.Buffer
	for _, ino := range live {
		fmt.Fprintf(&b, "Inode{%02d:%08x} (%d)\n", ino.id.FSID, ino.id.Index, ino.refs)
	}
	return b.Bytes(), nil
}
