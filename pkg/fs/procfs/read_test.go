package procfs

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/kernel"
)

// readAll drains an identifier through one open-file description.
func readAll(t *testing.T, p *ProcFS, id fs.Ident, chunk int) []byte {
	t.Helper()
	open := &fs.OpenFile{}
	var content []byte
	offset := int64(0)
	for {
		data, eof, err := p.ReadBytes(id, offset, chunk, open)
		if err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		content = append(content, data...)
		offset += int64(len(data))
		if eof || len(data) == 0 {
			return content
		}
	}
}

func TestReadSelf(t *testing.T) {
	p, _ := newTestFS()

	id, err := p.Lookup(p.Root(), "self")
	if err != nil {
		t.Fatalf("Lookup(self) failed: %v", err)
	}
	if got := KindOf(id); got != KindRootSelf {
		t.Errorf("Kind mismatch: got %d, want %d", got, KindRootSelf)
	}

	data, eof, err := p.ReadBytes(id, 0, 64, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("Wrong self content: got %q, want %q", string(data), "42")
	}
	if !eof {
		t.Error("Expected EOF on full read")
	}
}

func TestReadFdEntry(t *testing.T) {
	p, _ := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")
	fdDir, _ := p.Lookup(pidDir, "fd")
	fd5, err := p.Lookup(fdDir, "5")
	if err != nil {
		t.Fatalf("Lookup(5) failed: %v", err)
	}

	data, _, err := p.ReadBytes(fd5, 0, 64, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(data) != "/tmp/x" {
		t.Errorf("Wrong fd target: got %q, want %q", string(data), "/tmp/x")
	}
}

func TestReadSymlinks(t *testing.T) {
	p, _ := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")

	testCases := []struct {
		name string
		want string
	}{
		{"exe", "/bin/sh"},
		{"cwd", "/home/user"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id, err := p.Lookup(pidDir, tc.name)
			if err != nil {
				t.Fatalf("Lookup(%q) failed: %v", tc.name, err)
			}
			data, _, err := p.ReadBytes(id, 0, 256, nil)
			if err != nil {
				t.Fatalf("ReadBytes failed: %v", err)
			}
			if string(data) != tc.want {
				t.Errorf("Wrong target: got %q, want %q", string(data), tc.want)
			}
		})
	}
}

func TestReadChunkedMatchesWhole(t *testing.T) {
	p, _ := newTestFS()
	id, _ := p.Lookup(p.Root(), "all")

	whole := readAll(t, p, id, 1<<20)
	if len(whole) == 0 {
		t.Fatal("Empty process listing")
	}

	for _, chunk := range []int{1, 7, 64} {
		if got := readAll(t, p, id, chunk); !bytes.Equal(got, whole) {
			t.Errorf("Chunk size %d: content differs from whole read", chunk)
		}
	}
}

// TestReadSnapshotStability pins the per-open snapshot semantics: a
// process spawned after the first read is invisible until the snapshot
// is drained, then visible on the refreshed snapshot.
func TestReadSnapshotStability(t *testing.T) {
	p, k := newTestFS()
	id, _ := p.Lookup(p.Root(), "all")

	open := &fs.OpenFile{}

	// First read takes the snapshot
	first, _, err := p.ReadBytes(id, 0, 10, open)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	snapshot := append([]byte(nil), open.GeneratorCache...)

	// A new process appears in the kernel mid-read
	late := kernel.NewProcess(1000, "late", 0, 0)
	late.AddThread(kernel.Thread{TID: 1000, State: "Runnable"})
	k.Processes.Add(late)

	// Drain the rest of the snapshot
	content := append([]byte(nil), first...)
	offset := int64(len(first))
	for {
		data, eof, err := p.ReadBytes(id, offset, 10, open)
		if err != nil {
			t.Fatalf("ReadBytes failed: %v", err)
		}
		content = append(content, data...)
		offset += int64(len(data))
		if eof || len(data) == 0 {
			break
		}
	}

	if !bytes.Equal(content, snapshot) {
		t.Error("Concatenated reads differ from the first-read snapshot")
	}
	if bytes.Contains(content, []byte(`"late"`)) {
		t.Error("Process spawned after first read leaked into the snapshot")
	}

	// Reading past the end cleared the snapshot; the next read sees
	// the new process
	if _, eof, err := p.ReadBytes(id, offset, 10, open); err != nil || !eof {
		t.Fatalf("Drain read: eof=%v err=%v", eof, err)
	}
	refreshed := readAll(t, p, id, 64)
	if !bytes.Contains(refreshed, []byte(`"late"`)) {
		t.Error("Refreshed snapshot is missing the new process")
	}
}

func TestReadNegativeOffset(t *testing.T) {
	p, _ := newTestFS()
	id, _ := p.Lookup(p.Root(), "uptime")

	if _, _, err := p.ReadBytes(id, -1, 10, nil); !errors.Is(err, fs.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}

func TestReadDirectoryFails(t *testing.T) {
	p, _ := newTestFS()

	for _, name := range []string{"sys", "net"} {
		id, _ := p.Lookup(p.Root(), name)
		if _, _, err := p.ReadBytes(id, 0, 10, nil); !errors.Is(err, fs.ErrIsDir) {
			t.Errorf("Reading %q: expected ErrIsDir, got %v", name, err)
		}
	}
}

func TestReadDeadProcessFails(t *testing.T) {
	p, k := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")
	id, _ := p.Lookup(pidDir, "fds")
	k.Processes.Remove(17)

	if _, _, err := p.ReadBytes(id, 0, 10, nil); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestReadFdsDocument(t *testing.T) {
	p, _ := newTestFS()
	pidDir, _ := p.Lookup(p.Root(), "17")
	id, _ := p.Lookup(pidDir, "fds")

	data, _, err := p.ReadBytes(id, 0, 1<<20, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}

	var entries []map[string]interface{}
	if err := json.Unmarshal(data, &entries); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if len(entries) != 4 {
		t.Fatalf("Wrong entry count: got %d, want 4", len(entries))
	}

	last := entries[3]
	if last["fd"] != float64(5) {
		t.Errorf("fd field: got %v, want 5", last["fd"])
	}
	if last["absolute_path"] != "/tmp/x" {
		t.Errorf("absolute_path field: got %v, want /tmp/x", last["absolute_path"])
	}
	for _, field := range []string{"fd", "absolute_path", "seekable", "class", "offset"} {
		if _, ok := last[field]; !ok {
			t.Errorf("Missing field %q", field)
		}
	}
}

func TestReadUptimeAndCmdline(t *testing.T) {
	p, k := newTestFS()
	k.SetUptime(95 * time.Second)

	id, _ := p.Lookup(p.Root(), "uptime")
	data, _, err := p.ReadBytes(id, 0, 64, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(data) != "95\n" {
		t.Errorf("Wrong uptime: got %q, want %q", string(data), "95\n")
	}

	id, _ = p.Lookup(p.Root(), "cmdline")
	data, _, err = p.ReadBytes(id, 0, 64, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(data) != "root=/dev/hda1\n" {
		t.Errorf("Wrong cmdline: got %q", string(data))
	}
}

func TestReadMemstatFields(t *testing.T) {
	p, k := newTestFS()
	k.SetMemStats(kernel.MemStats{
		UserPhysicalPages:     4096,
		UserPhysicalPagesUsed: 1024,
	})

	id, _ := p.Lookup(p.Root(), "memstat")
	data, _, err := p.ReadBytes(id, 0, 1<<20, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	for _, field := range []string{
		"kmalloc_allocated", "kmalloc_available", "kmalloc_eternal_allocated",
		"user_physical_allocated", "user_physical_available",
		"super_physical_allocated", "super_physical_available",
		"kmalloc_call_count", "kfree_call_count",
	} {
		if _, ok := doc[field]; !ok {
			t.Errorf("Missing field %q", field)
		}
	}
	if doc["user_physical_allocated"] != float64(1024) {
		t.Errorf("user_physical_allocated: got %v, want 1024", doc["user_physical_allocated"])
	}
}
