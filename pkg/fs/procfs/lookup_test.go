package procfs

import (
	"errors"
	"testing"

	"github.com/example/procfs/pkg/fs"
)

func TestLookupRootStaticNames(t *testing.T) {
	p, _ := newTestFS()
	root := p.Root()

	testCases := []struct {
		name string
		kind FileKind
	}{
		{"mm", KindRootMM},
		{"mounts", KindRootMounts},
		{"df", KindRootDF},
		{"all", KindRootAll},
		{"memstat", KindRootMemstat},
		{"cpuinfo", KindRootCPUInfo},
		{"inodes", KindRootInodes},
		{"dmesg", KindRootDmesg},
		{"pci", KindRootPCI},
		{"devices", KindRootDevices},
		{"uptime", KindRootUptime},
		{"cmdline", KindRootCmdline},
		{"self", KindRootSelf},
		{"sys", KindRootSys},
		{"net", KindRootNet},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := p.Lookup(root, tc.name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tc.name, err)
			}
			if got := KindOf(id); got != tc.kind {
				t.Errorf("Kind mismatch: got %d, want %d", got, tc.kind)
			}
			if got := ParentDirOf(id); got != ParentRoot {
				t.Errorf("Parent class mismatch: got %d, want %d", got, ParentRoot)
			}
		})
	}
}

func TestLookupRootPid(t *testing.T) {
	p, k := newTestFS()
	root := p.Root()

	id, err := p.Lookup(root, "17")
	if err != nil {
		t.Fatalf("Lookup(17) failed: %v", err)
	}
	if KindOf(id) != KindPID || PID(id) != 17 {
		t.Errorf("Wrong identifier for pid dir: %v", id)
	}

	// A dead pid does not resolve
	if _, err := p.Lookup(root, "23"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for dead pid, got %v", err)
	}

	// A pid stops resolving when the process exits
	k.Processes.Remove(17)
	if _, err := p.Lookup(root, "17"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist after exit, got %v", err)
	}
}

func TestLookupUnknownName(t *testing.T) {
	p, _ := newTestFS()

	if _, err := p.Lookup(p.Root(), "nonsense"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestLookupDotAndDotDot(t *testing.T) {
	p, _ := newTestFS()
	netDir, err := p.Lookup(p.Root(), "net")
	if err != nil {
		t.Fatalf("Lookup(net) failed: %v", err)
	}

	self, err := p.Lookup(netDir, ".")
	if err != nil || self != netDir {
		t.Errorf("Lookup(.): got %v, %v; want %v", self, err, netDir)
	}

	parent, err := p.Lookup(netDir, "..")
	if err != nil || parent != p.Root() {
		t.Errorf("Lookup(..): got %v, %v; want root", parent, err)
	}
}

func TestLookupNetNames(t *testing.T) {
	p, _ := newTestFS()
	netDir, _ := p.Lookup(p.Root(), "net")

	for name, kind := range map[string]FileKind{
		"adapters": KindRootNetAdapters,
		"tcp":      KindRootNetTCP,
		"udp":      KindRootNetUDP,
		"local":    KindRootNetLocal,
	} {
		id, err := p.Lookup(netDir, name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if got := KindOf(id); got != kind {
			t.Errorf("Kind mismatch for %q: got %d, want %d", name, got, kind)
		}
	}

	if _, err := p.Lookup(netDir, "ipx"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestLookupPidDirectory(t *testing.T) {
	p, _ := newTestFS()
	pidDir, err := p.Lookup(p.Root(), "17")
	if err != nil {
		t.Fatalf("Lookup(17) failed: %v", err)
	}

	for _, name := range []string{"vm", "vmo", "stack", "regs", "fds", "exe", "cwd", "fd"} {
		id, err := p.Lookup(pidDir, name)
		if err != nil {
			t.Fatalf("Lookup(%q) failed: %v", name, err)
		}
		if got := PID(id); got != 17 {
			t.Errorf("PID mismatch for %q: got %d, want 17", name, got)
		}
	}
}

func TestLookupExeHiddenWithoutCustody(t *testing.T) {
	p, _ := newTestFS()

	// pid 99 has no executable custody, so exe must not resolve
	pidDir, err := p.Lookup(p.Root(), "99")
	if err != nil {
		t.Fatalf("Lookup(99) failed: %v", err)
	}
	if _, err := p.Lookup(pidDir, "exe"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for custody-less exe, got %v", err)
	}

	// cwd still resolves
	if _, err := p.Lookup(pidDir, "cwd"); err != nil {
		t.Errorf("Lookup(cwd) failed: %v", err)
	}
}

func TestLookupFdDirectory(t *testing.T) {
	p, _ := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")
	fdDir, err := p.Lookup(pidDir, "fd")
	if err != nil {
		t.Fatalf("Lookup(fd) failed: %v", err)
	}

	// Open descriptors resolve
	id, err := p.Lookup(fdDir, "5")
	if err != nil {
		t.Fatalf("Lookup(5) failed: %v", err)
	}
	if got := FD(id); got != 5 {
		t.Errorf("FD mismatch: got %d, want 5", got)
	}

	// Closed descriptors do not
	if _, err := p.Lookup(fdDir, "3"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for closed fd, got %v", err)
	}
	if _, err := p.Lookup(fdDir, "x"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist for non-numeric fd, got %v", err)
	}
}

func TestLookupOnNonDirectory(t *testing.T) {
	p, _ := newTestFS()
	file, _ := p.Lookup(p.Root(), "mm")

	if _, err := p.Lookup(file, "anything"); !errors.Is(err, fs.ErrNotDir) {
		t.Errorf("Expected ErrNotDir, got %v", err)
	}
}
