// Package kernel models the live kernel state a process filesystem
// projects: the process table, network adapters and socket tables, PCI
// and device registries, the mount table, memory statistics, the
// console log, and the lock-protected cells behind runtime tunables.
// Each table guards itself; accessors return copies so callers format
// a consistent snapshot without holding any kernel lock.
package kernel

import (
	"bytes"
	"fmt"
	"sync"
	"time"

	"github.com/example/procfs/pkg/fs"
)

// NetworkAdapter describes one network interface.
type NetworkAdapter struct {
	Name        string
	ClassName   string
	MACAddress  string
	IPv4Address string
	PacketsIn   uint64
	BytesIn     uint64
	PacketsOut  uint64
	BytesOut    uint64
	LinkUp      bool
}

// TCPSocket describes one TCP socket.
type TCPSocket struct {
	LocalAddress   string
	LocalPort      uint16
	PeerAddress    string
	PeerPort       uint16
	State          string
	AckNumber      uint32
	SequenceNumber uint32
	PacketsIn      uint64
	BytesIn        uint64
	PacketsOut     uint64
	BytesOut       uint64
}

// UDPSocket describes one UDP socket.
type UDPSocket struct {
	LocalAddress string
	LocalPort    uint16
	PeerAddress  string
	PeerPort     uint16
}

// LocalSocket describes one local (unix-domain) socket.
type LocalSocket struct {
	Path        string
	OriginPID   int
	AcceptorPID int
}

// PCIDevice describes one enumerated PCI function.
type PCIDevice struct {
	Bus               uint8
	Slot              uint8
	Function          uint8
	VendorID          uint16
	DeviceID          uint16
	RevisionID        uint8
	Subclass          uint8
	Class             uint8
	SubsystemID       uint16
	SubsystemVendorID uint16
}

// Device describes one registered block or character device.
type Device struct {
	Major     uint32
	Minor     uint32
	ClassName string
	Block     bool
}

// Mount describes one entry in the mount table. A zero Host marks the
// root mount.
type Mount struct {
	ClassName       string
	Host            fs.Ident
	MountPoint      string
	TotalBlockCount uint64
	FreeBlockCount  uint64
	TotalInodeCount uint64
	FreeInodeCount  uint64
	BlockSize       uint32
	ReadOnly        bool
	Device          string
}

// VMObject describes one virtual memory object known to the memory
// manager.
type VMObject struct {
	ID        uint64
	Anonymous bool
	RefCount  uint32
	PageCount uint32
}

// MemStats holds the allocator and physical page counters.
type MemStats struct {
	KmallocAllocated        uint64
	KmallocAvailable        uint64
	KmallocEternalAllocated uint64
	UserPhysicalPages       uint64
	UserPhysicalPagesUsed   uint64
	SuperPhysicalPages      uint64
	SuperPhysicalPagesUsed  uint64
	KmallocCallCount        uint64
	KfreeCallCount          uint64
}

// CPUInfo holds the processor identification strings and numbers.
type CPUInfo struct {
	VendorID string
	Family   uint32
	Model    uint32
	Stepping uint32
	Type     uint32
	Brand    string
}

// Kernel aggregates the collaborator state. The zero value is not
// usable; call New.
type Kernel struct {
	Processes *ProcessTable

	mu         sync.Mutex
	adapters   []NetworkAdapter
	tcpSockets []TCPSocket
	udpSockets []UDPSocket
	locals     []LocalSocket
	pci        []PCIDevice
	devices    []Device
	mounts     []Mount
	vmObjects  []VMObject
	memStats   MemStats
	cpuInfo    CPUInfo
	cmdline    string
	uptime     time.Duration
	currentPID int

	consoleMu sync.Mutex
	console   bytes.Buffer
}

// New creates an empty kernel.
func New() *Kernel {
	return &Kernel{
		Processes: NewProcessTable(),
	}
}

// AddAdapter registers a network adapter.
func (k *Kernel) AddAdapter(a NetworkAdapter) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.adapters = append(k.adapters, a)
}

// Adapters returns a snapshot of the adapter list.
func (k *Kernel) Adapters() []NetworkAdapter {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]NetworkAdapter(nil), k.adapters...)
}

// AddTCPSocket registers a TCP socket.
func (k *Kernel) AddTCPSocket(s TCPSocket) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.tcpSockets = append(k.tcpSockets, s)
}

// TCPSockets returns a snapshot of the TCP socket table.
func (k *Kernel) TCPSockets() []TCPSocket {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]TCPSocket(nil), k.tcpSockets...)
}

// AddUDPSocket registers a UDP socket.
func (k *Kernel) AddUDPSocket(s UDPSocket) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.udpSockets = append(k.udpSockets, s)
}

// UDPSockets returns a snapshot of the UDP socket table.
func (k *Kernel) UDPSockets() []UDPSocket {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]UDPSocket(nil), k.udpSockets...)
}

// AddLocalSocket registers a local socket.
func (k *Kernel) AddLocalSocket(s LocalSocket) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.locals = append(k.locals, s)
}

// LocalSockets returns a snapshot of the local socket table.
func (k *Kernel) LocalSockets() []LocalSocket {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]LocalSocket(nil), k.locals...)
}

// AddPCIDevice registers a PCI function.
func (k *Kernel) AddPCIDevice(d PCIDevice) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.pci = append(k.pci, d)
}

// PCIDevices returns a snapshot of the PCI enumeration.
func (k *Kernel) PCIDevices() []PCIDevice {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]PCIDevice(nil), k.pci...)
}

// AddDevice registers a block or character device.
func (k *Kernel) AddDevice(d Device) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.devices = append(k.devices, d)
}

// Devices returns a snapshot of the device registry.
func (k *Kernel) Devices() []Device {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]Device(nil), k.devices...)
}

// AddMount registers a mount. The mount table is racy against readers
// by design; each read takes its own snapshot.
func (k *Kernel) AddMount(m Mount) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.mounts = append(k.mounts, m)
}

// Mounts returns a snapshot of the mount table.
func (k *Kernel) Mounts() []Mount {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]Mount(nil), k.mounts...)
}

// RegisterVMObject records a virtual memory object.
func (k *Kernel) RegisterVMObject(v VMObject) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.vmObjects = append(k.vmObjects, v)
}

// VMObjects returns a snapshot of the memory manager's object list.
func (k *Kernel) VMObjects() []VMObject {
	k.mu.Lock()
	defer k.mu.Unlock()
	return append([]VMObject(nil), k.vmObjects...)
}

// SetMemStats replaces the memory counters.
func (k *Kernel) SetMemStats(m MemStats) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.memStats = m
}

// MemStats returns the current memory counters.
func (k *Kernel) MemStats() MemStats {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.memStats
}

// SetCPUInfo replaces the processor identification.
func (k *Kernel) SetCPUInfo(c CPUInfo) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.cpuInfo = c
}

// CPUInfo returns the processor identification.
func (k *Kernel) CPUInfo() CPUInfo {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cpuInfo
}

// SetCmdline sets the kernel command line.
func (k *Kernel) SetCmdline(s string) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.cmdline = s
}

// Cmdline returns the kernel command line.
func (k *Kernel) Cmdline() string {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.cmdline
}

// SetUptime sets the time since boot.
func (k *Kernel) SetUptime(d time.Duration) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.uptime = d
}

// Uptime returns the time since boot.
func (k *Kernel) Uptime() time.Duration {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.uptime
}

// SetCurrentPID records which process is inspecting the filesystem;
// the "self" symlink resolves to it.
func (k *Kernel) SetCurrentPID(pid int) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.currentPID = pid
}

// CurrentPID returns the inspecting process's pid.
func (k *Kernel) CurrentPID() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.currentPID
}

// Logf appends a formatted line to the console log buffer.
func (k *Kernel) Logf(format string, args ...interface{}) {
	k.consoleMu.Lock()
	defer k.consoleMu.Unlock()
	fmt.Fprintf(&k.console, format, args...)
}

// ConsoleLog returns a copy of the console log buffer.
func (k *Kernel) ConsoleLog() []byte {
	k.consoleMu.Lock()
	defer k.consoleMu.Unlock()
	return append([]byte(nil), k.console.Bytes()...)
}
