package kernel

import (
	"testing"
)

func TestProcessTable(t *testing.T) {
	table := NewProcessTable()

	table.Add(NewProcess(3, "c", 0, 0))
	table.Add(NewProcess(1, "a", 0, 0))
	table.Add(NewProcess(2, "b", 0, 0))

	// Pids come back sorted
	pids := table.AllPIDs()
	want := []int{1, 2, 3}
	if len(pids) != len(want) {
		t.Fatalf("Wrong pid count: got %d, want %d", len(pids), len(want))
	}
	for i, pid := range want {
		if pids[i] != pid {
			t.Errorf("Pid %d: got %d, want %d", i, pids[i], pid)
		}
	}

	if table.FromPID(2) == nil {
		t.Error("FromPID(2) returned nil for a live process")
	}
	if table.FromPID(9) != nil {
		t.Error("FromPID(9) returned a process that was never added")
	}

	table.Remove(2)
	if table.FromPID(2) != nil {
		t.Error("FromPID(2) returned a removed process")
	}
}

func TestProcessFDTable(t *testing.T) {
	p := NewProcess(1, "init", 0, 0)

	p.OpenFD(5, FileDescription{AbsolutePath: "/tmp/x"})
	p.OpenFD(0, FileDescription{AbsolutePath: "/dev/tty0"})
	p.OpenFD(2, FileDescription{AbsolutePath: "/dev/tty0"})

	fds := p.OpenFDs()
	want := []int{0, 2, 5}
	if len(fds) != len(want) {
		t.Fatalf("Wrong fd count: got %d, want %d", len(fds), len(want))
	}
	for i, fd := range want {
		if fds[i] != fd {
			t.Errorf("FD %d: got %d, want %d", i, fds[i], fd)
		}
	}

	if d, ok := p.FileDescription(5); !ok || d.AbsolutePath != "/tmp/x" {
		t.Errorf("FileDescription(5): got %v, %v", d, ok)
	}
	if _, ok := p.FileDescription(1); ok {
		t.Error("FileDescription(1) reported a closed descriptor open")
	}

	p.CloseFD(5)
	if p.NumberOfOpenFDs() != 2 {
		t.Errorf("Open count after close: got %d, want 2", p.NumberOfOpenFDs())
	}
}

func TestProcessStats(t *testing.T) {
	p := NewProcess(7, "worker", 100, 200)
	p.SetParent(1)
	p.SetSession(7, 7, 1)
	p.AddThread(Thread{TID: 7, State: "Runnable", TimesScheduled: 3, Ticks: 9})
	p.OpenFD(0, FileDescription{})

	stats := p.Stats()
	if stats.PID != 7 || stats.PPID != 1 {
		t.Errorf("Identity: got pid=%d ppid=%d", stats.PID, stats.PPID)
	}
	if stats.UID != 100 || stats.GID != 200 {
		t.Errorf("Ownership: got %d:%d", stats.UID, stats.GID)
	}
	if stats.State != "Runnable" || stats.TimesScheduled != 3 || stats.Ticks != 9 {
		t.Errorf("Main thread accounting: %+v", stats)
	}
	if stats.NFDs != 1 {
		t.Errorf("NFDs: got %d, want 1", stats.NFDs)
	}
	if stats.TTY != "notty" {
		t.Errorf("TTY default: got %q, want %q", stats.TTY, "notty")
	}
}

func TestCells(t *testing.T) {
	b := NewBoolCell(true)
	if !b.Get() {
		t.Error("BoolCell initial value lost")
	}
	b.Set(false)
	if b.Get() {
		t.Error("BoolCell Set did not stick")
	}

	s := NewStringCell("one")
	if s.Get() != "one" {
		t.Error("StringCell initial value lost")
	}
	s.Set("two")
	if s.Get() != "two" {
		t.Error("StringCell Set did not stick")
	}
}

func TestKernelSnapshots(t *testing.T) {
	k := New()

	k.AddAdapter(NetworkAdapter{Name: "loop0"})
	adapters := k.Adapters()
	if len(adapters) != 1 || adapters[0].Name != "loop0" {
		t.Errorf("Adapters snapshot: %+v", adapters)
	}

	// Snapshots are copies; mutating one does not affect the kernel
	adapters[0].Name = "mangled"
	if k.Adapters()[0].Name != "loop0" {
		t.Error("Snapshot aliases kernel state")
	}

	k.Logf("line %d\n", 1)
	k.Logf("line %d\n", 2)
	if got := string(k.ConsoleLog()); got != "line 1\nline 2\n" {
		t.Errorf("Console log: got %q", got)
	}
}
