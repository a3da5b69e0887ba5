package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/example/procfs/pkg/fs/procfs"
	"github.com/example/procfs/pkg/kernel"
	"github.com/example/procfs/pkg/server"
)

func main() {
	// Parse command line flags
	listenAddr := flag.String("listen", ":2049", "Network address to listen on")
	configPath := flag.String("config", "", "Optional YAML configuration file")
	maxConcurrent := flag.Int("max-concurrent", 100, "Maximum concurrent requests")
	maxReadSize := flag.Int("max-read", 1024*1024, "Maximum read size in bytes")
	maxWriteSize := flag.Int("max-write", 1024*1024, "Maximum write size in bytes")
	requestTimeout := flag.Int("timeout", 30, "Request timeout in seconds")
	fsid := flag.Uint("fsid", 3, "Filesystem id to serve under")

	flag.Parse()

	// Create the server configuration
	var config *server.Config
	if *configPath != "" {
		loaded, err := server.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		config = loaded
	} else {
		config = &server.Config{
			ListenAddress:  *listenAddr,
			MaxConcurrent:  *maxConcurrent,
			MaxReadSize:    *maxReadSize,
			MaxWriteSize:   *maxWriteSize,
			RequestTimeout: *requestTimeout,
			MaxOpenFiles:   1024,
		}
	}

	// Create the filesystem over a populated kernel
	k := buildKernel()
	fileSystem := procfs.New(k, uint32(*fsid))
	registerTunables(fileSystem, k)

	// Create and start the PFS server
	pfsServer, err := server.NewPFSServer(config, fileSystem)
	if err != nil {
		log.Fatalf("Failed to create PFS server: %v", err)
	}

	// Start the server in a goroutine
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- pfsServer.Start()
	}()

	// Wait for signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for either the server to error or a signal
	select {
	case err := <-serverErr:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	log.Println("PFS server stopped")
}

// buildKernel assembles the simulated kernel state the daemon serves.
func buildKernel() *kernel.Kernel {
	k := kernel.New()
	k.SetCmdline("root=/dev/hda1 acpi=on")
	k.SetUptime(90 * time.Second)
	k.SetCurrentPID(1)
	k.SetCPUInfo(kernel.CPUInfo{
		VendorID: "GenuineIntel",
		Family:   6,
		Model:    142,
		Stepping: 10,
		Type:     0,
		Brand:    "Intel(R) Core(TM) i5",
	})
	k.SetMemStats(kernel.MemStats{
		KmallocAllocated:       1 << 20,
		KmallocAvailable:       3 << 20,
		UserPhysicalPages:      4096,
		UserPhysicalPagesUsed:  1024,
		SuperPhysicalPages:     512,
		SuperPhysicalPagesUsed: 128,
		KmallocCallCount:       20000,
		KfreeCallCount:         18000,
	})
	k.Logf("Kernel booted\n")
	k.Logf("procfs: serving synthetic namespace\n")
	k.RegisterVMObject(kernel.VMObject{ID: 1, Anonymous: false, RefCount: 1, PageCount: 4})
	k.RegisterVMObject(kernel.VMObject{ID: 2, Anonymous: true, RefCount: 2, PageCount: 16})

	k.AddAdapter(kernel.NetworkAdapter{
		Name:        "loop0",
		ClassName:   "LoopbackAdapter",
		MACAddress:  "00:00:00:00:00:00",
		IPv4Address: "127.0.0.1",
		LinkUp:      true,
	})
	k.AddAdapter(kernel.NetworkAdapter{
		Name:        "e1k0",
		ClassName:   "E1000NetworkAdapter",
		MACAddress:  "52:54:00:12:34:56",
		IPv4Address: "10.0.2.15",
		PacketsIn:   128,
		BytesIn:     16384,
		PacketsOut:  96,
		BytesOut:    8192,
		LinkUp:      true,
	})

	k.AddPCIDevice(kernel.PCIDevice{
		Bus: 0, Slot: 2, Function: 0,
		VendorID: 0x8086, DeviceID: 0x100e,
		Class: 0x02, Subclass: 0x00,
	})
	k.AddDevice(kernel.Device{Major: 4, Minor: 0, ClassName: "VirtualConsole", Block: false})
	k.AddDevice(kernel.Device{Major: 3, Minor: 0, ClassName: "IDEDiskDevice", Block: true})

	k.AddMount(kernel.Mount{
		ClassName:       "Ext2FS",
		MountPoint:      "/",
		TotalBlockCount: 65536,
		FreeBlockCount:  32768,
		TotalInodeCount: 16384,
		FreeInodeCount:  8192,
		BlockSize:       1024,
		Device:          "/dev/hda1",
	})

	init := kernel.NewProcess(1, "init", 0, 0)
	init.SetExecutable("/bin/init")
	init.SetCWD("/")
	init.SetSession(1, 1, 1)
	init.AddThread(kernel.Thread{TID: 1, State: "Runnable", TimesScheduled: 42, Ticks: 100})
	init.OpenFD(0, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	init.OpenFD(1, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	init.OpenFD(2, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	k.Processes.Add(init)

	shell := kernel.NewProcess(2, "sh", 100, 100)
	shell.SetParent(1)
	shell.SetExecutable("/bin/sh")
	shell.SetCWD("/home/user")
	shell.SetTTY("tty0")
	shell.AddThread(kernel.Thread{TID: 2, State: "BlockedRead", TimesScheduled: 7, Ticks: 12})
	shell.OpenFD(0, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	shell.AddRegion(kernel.Region{
		Readable: true, Writable: false,
		Address: 0x08048000, Size: 0x4000, AmountResident: 0x4000,
		Name: "/bin/sh: .text",
		VMO:  kernel.VMORef{ID: 1, Anonymous: false, RefCount: 1},
	})
	k.Processes.Add(shell)

	return k
}

// registerTunables wires the boot-time tunables under /sys.
func registerTunables(fileSystem *procfs.ProcFS, k *kernel.Kernel) {
	kmallocStacks := kernel.NewBoolCell(false)
	fileSystem.AddSysBool("kmalloc_stacks", kmallocStacks, func() {
		log.Printf("kmalloc_stacks is now %v", kmallocStacks.Get())
	})

	hostname := kernel.NewStringCell("courage")
	fileSystem.AddSysString("hostname", hostname, nil)
}
