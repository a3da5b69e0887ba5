package procfs

import (
	"sync"
	"testing"
)

func TestGetInodeInterning(t *testing.T) {
	p, _ := newTestFS()
	id := Encode(testFSID, ParentRoot, 17, KindPID)

	a := p.GetInode(id)
	b := p.GetInode(id)
	if a != b {
		t.Error("Two gets of the same identifier returned different inodes")
	}
	if a.Identifier() != id {
		t.Errorf("Identifier mismatch: got %v, want %v", a.Identifier(), id)
	}

	// Dropping one reference keeps the interned inode alive
	b.Release()
	c := p.GetInode(id)
	if c != a {
		t.Error("Inode replaced while a reference was still held")
	}

	// Dropping the last references retires the entry; the next get
	// materializes a fresh inode
	c.Release()
	a.Release()
	d := p.GetInode(id)
	if d == a {
		t.Error("Expected a fresh inode after the last release")
	}
	d.Release()
}

func TestGetInodeConcurrent(t *testing.T) {
	p, _ := newTestFS()
	id := Encode(testFSID, ParentPID, 17, KindPIDVM)

	const goroutines = 16
	inodes := make([]*Inode, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(slot int) {
			defer wg.Done()
			inodes[slot] = p.GetInode(id)
		}(i)
	}
	wg.Wait()

	// While all references are held, every get observed one inode
	for i := 1; i < goroutines; i++ {
		if inodes[i] != inodes[0] {
			t.Fatalf("Slot %d got a different inode", i)
		}
	}

	for _, ino := range inodes {
		ino.Release()
	}
}

func TestRootInode(t *testing.T) {
	p, _ := newTestFS()

	root := p.RootInode()
	if root.Identifier() != p.Root() {
		t.Errorf("Root identifier mismatch: got %v, want %v", root.Identifier(), p.Root())
	}

	// The root is pre-constructed and always the same object
	if p.GetInode(p.Root()) != root {
		t.Error("GetInode(root) returned a different inode")
	}

	// Releasing the root is a no-op
	root.Release()
	if p.GetInode(p.Root()) != root {
		t.Error("Root inode retired by Release")
	}
}

func TestInodeDelegation(t *testing.T) {
	p, _ := newTestFS()
	root := p.RootInode()

	id, err := root.Lookup("self")
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	ino := p.GetInode(id)
	defer ino.Release()

	meta, err := ino.Metadata()
	if err != nil {
		t.Fatalf("Metadata failed: %v", err)
	}
	if !meta.Mode.IsSymlink() {
		t.Errorf("self mode: got %o, want symlink", meta.Mode)
	}

	data, _, err := ino.ReadBytes(0, 16, nil)
	if err != nil {
		t.Fatalf("ReadBytes failed: %v", err)
	}
	if string(data) != "42" {
		t.Errorf("self content: got %q, want %q", string(data), "42")
	}

	count, err := root.DirectoryEntryCount()
	if err != nil || count == 0 {
		t.Errorf("DirectoryEntryCount: got %d, %v", count, err)
	}
}
