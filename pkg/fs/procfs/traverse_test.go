package procfs

import (
	"errors"
	"testing"

	"github.com/example/procfs/pkg/fs"
)

// collect runs a traversal and returns the entries in order.
func collect(t *testing.T, p *ProcFS, dir fs.Ident) []fs.DirEntry {
	t.Helper()
	var entries []fs.DirEntry
	if err := p.Traverse(dir, func(entry fs.DirEntry) bool {
		entries = append(entries, entry)
		return true
	}); err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	return entries
}

func TestTraverseNetDirectory(t *testing.T) {
	p, _ := newTestFS()
	netDir, _ := p.Lookup(p.Root(), "net")

	entries := collect(t, p, netDir)

	want := []string{".", "..", "adapters", "tcp", "udp", "local"}
	if len(entries) != len(want) {
		t.Fatalf("Wrong entry count: got %d, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("Entry %d: got %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestTraverseRoot(t *testing.T) {
	p, _ := newTestFS()

	entries := collect(t, p, p.Root())

	// ".", "..", 15 static entries, 3 pids
	if len(entries) != 2+15+3 {
		t.Errorf("Wrong entry count: got %d, want %d", len(entries), 2+15+3)
	}

	// Dot entries come first
	if entries[0].Name != "." || entries[1].Name != ".." {
		t.Errorf("Dot entries missing: got %q, %q", entries[0].Name, entries[1].Name)
	}

	// Pids follow the static entries in ascending order
	tail := entries[len(entries)-3:]
	for i, want := range []string{"1", "17", "99"} {
		if tail[i].Name != want {
			t.Errorf("Pid entry %d: got %q, want %q", i, tail[i].Name, want)
		}
	}
}

func TestTraverseFdDirectory(t *testing.T) {
	p, _ := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")
	fdDir, _ := p.Lookup(pidDir, "fd")

	entries := collect(t, p, fdDir)

	want := []string{".", "..", "0", "1", "2", "5"}
	if len(entries) != len(want) {
		t.Fatalf("Wrong entry count: got %d, want %d", len(entries), len(want))
	}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("Entry %d: got %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestTraversePidDirectorySkipsMissingExe(t *testing.T) {
	p, _ := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "99")

	for _, entry := range collect(t, p, pidDir) {
		if entry.Name == "exe" {
			t.Error("exe enumerated for process without executable custody")
		}
	}
}

func TestTraverseDeadPidFails(t *testing.T) {
	p, k := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")
	k.Processes.Remove(17)

	err := p.Traverse(pidDir, func(fs.DirEntry) bool { return true })
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestTraverseEarlyStop(t *testing.T) {
	p, _ := newTestFS()

	count := 0
	if err := p.Traverse(p.Root(), func(fs.DirEntry) bool {
		count++
		return count < 3
	}); err != nil {
		t.Fatalf("Traverse failed: %v", err)
	}
	if count != 3 {
		t.Errorf("Callback ran %d times, want 3", count)
	}
}

// TestLookupTraverseSymmetry checks that every name a directory
// enumerates resolves to exactly the identifier it was enumerated
// with, for every directory in the namespace.
func TestLookupTraverseSymmetry(t *testing.T) {
	p, _ := newTestFS()

	// Give /sys some content too
	p.AddSysBool("caps_lock_to_ctrl", newTestBoolCell(false), nil)

	var dirs []fs.Ident
	dirs = append(dirs, p.Root())

	// Collect every directory reachable from the root
	var walk func(dir fs.Ident)
	walk = func(dir fs.Ident) {
		for _, entry := range collect(t, p, dir) {
			if entry.Name == "." || entry.Name == ".." {
				continue
			}
			if isDirectory(entry.ID) {
				dirs = append(dirs, entry.ID)
				walk(entry.ID)
			}
		}
	}
	walk(p.Root())

	for _, dir := range dirs {
		for _, entry := range collect(t, p, dir) {
			if entry.Name == "." || entry.Name == ".." {
				continue
			}
			resolved, err := p.Lookup(dir, entry.Name)
			if err != nil {
				t.Errorf("Lookup(%v, %q) failed: %v", dir, entry.Name, err)
				continue
			}
			if resolved != entry.ID {
				t.Errorf("Asymmetry at %q: traverse emitted %v, lookup returned %v",
					entry.Name, entry.ID, resolved)
			}
			// Descent inverts ParentOf
			if got := ParentOf(entry.ID); got != dir {
				t.Errorf("ParentOf(%v): got %v, want %v", entry.ID, got, dir)
			}
		}
	}
}

func TestDirectoryEntryCount(t *testing.T) {
	p, _ := newTestFS()
	netDir, _ := p.Lookup(p.Root(), "net")

	count, err := p.DirectoryEntryCount(netDir)
	if err != nil {
		t.Fatalf("DirectoryEntryCount failed: %v", err)
	}
	if count != 6 {
		t.Errorf("Wrong count: got %d, want 6", count)
	}

	file, _ := p.Lookup(p.Root(), "mm")
	if _, err := p.DirectoryEntryCount(file); !errors.Is(err, fs.ErrNotDir) {
		t.Errorf("Expected ErrNotDir, got %v", err)
	}
}
