package procfs

import (
	"testing"

	"github.com/example/procfs/pkg/fs"
)

const testFSID = 7

func TestIdentifierRoundTrip(t *testing.T) {
	testCases := []struct {
		name   string
		parent ParentDir
		pid    int
		kind   FileKind
	}{
		{"root file", ParentRoot, 0, KindRootMM},
		{"root dir", ParentRoot, 0, KindRootSys},
		{"net file", ParentRootNet, 0, KindRootNetTCP},
		{"pid dir", ParentRoot, 42, KindPID},
		{"pid file", ParentPID, 42, KindPIDVM},
		{"pid symlink", ParentPID, 65535, KindPIDExe},
		{"fd dir", ParentPID, 17, KindPIDFD},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			id := Encode(testFSID, tc.parent, tc.pid, tc.kind)
			if got := ParentDirOf(id); got != tc.parent {
				t.Errorf("ParentDirOf: got %d, want %d", got, tc.parent)
			}
			if got := PID(id); got != tc.pid {
				t.Errorf("PID: got %d, want %d", got, tc.pid)
			}
			if got := KindOf(id); got != tc.kind {
				t.Errorf("KindOf: got %d, want %d", got, tc.kind)
			}
			if id.FSID != testFSID {
				t.Errorf("FSID: got %d, want %d", id.FSID, testFSID)
			}
		})
	}
}

func TestEncodeFDRoundTrip(t *testing.T) {
	for _, fd := range []int{0, 1, 2, 5, 100} {
		id := EncodeFD(testFSID, 17, fd)
		if got := ParentDirOf(id); got != ParentPIDFD {
			t.Errorf("ParentDirOf: got %d, want %d", got, ParentPIDFD)
		}
		if got := PID(id); got != 17 {
			t.Errorf("PID: got %d, want 17", got)
		}
		if got := FD(id); got != fd {
			t.Errorf("FD: got %d, want %d", got, fd)
		}
	}
}

func TestEncodeSysVarRoundTrip(t *testing.T) {
	for _, index := range []int{1, 2, 255} {
		id := EncodeSysVar(testFSID, index)
		if got := ParentDirOf(id); got != ParentRootSys {
			t.Errorf("ParentDirOf: got %d, want %d", got, ParentRootSys)
		}
		if got := KindOf(id); got != KindRootSysVariable {
			t.Errorf("KindOf: got %d, want %d", got, KindRootSysVariable)
		}
		if got := SysIndex(id); got != index {
			t.Errorf("SysIndex: got %d, want %d", got, index)
		}
	}
}

func TestEncodeSysVarRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range sys index")
		}
	}()
	EncodeSysVar(testFSID, 256)
}

func TestFDOnNonFDIdentifier(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for FD on non-fd identifier")
		}
	}()
	FD(Encode(testFSID, ParentRoot, 0, KindRootMM))
}

func TestParentOf(t *testing.T) {
	root := fs.Ident{FSID: testFSID, Index: uint32(KindRoot)}

	testCases := []struct {
		name   string
		child  fs.Ident
		parent fs.Ident
	}{
		{"root file to root", Encode(testFSID, ParentRoot, 0, KindRootMM), root},
		{"root dir to root", Encode(testFSID, ParentRoot, 0, KindRootNet), root},
		{"pid dir to root", Encode(testFSID, ParentRoot, 42, KindPID), root},
		{"sys var to sys", EncodeSysVar(testFSID, 3), Encode(testFSID, ParentRoot, 0, KindRootSys)},
		{"net file to net", Encode(testFSID, ParentRootNet, 0, KindRootNetUDP), Encode(testFSID, ParentRoot, 0, KindRootNet)},
		{"pid file to pid dir", Encode(testFSID, ParentPID, 42, KindPIDVM), Encode(testFSID, ParentRoot, 42, KindPID)},
		{"fd entry to fd dir", EncodeFD(testFSID, 42, 5), Encode(testFSID, ParentPID, 42, KindPIDFD)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParentOf(tc.child); got != tc.parent {
				t.Errorf("ParentOf(%v): got %v, want %v", tc.child, got, tc.parent)
			}
		})
	}
}

func TestIsDirectory(t *testing.T) {
	dirs := []fs.Ident{
		{FSID: testFSID, Index: uint32(KindRoot)},
		Encode(testFSID, ParentRoot, 0, KindRootSys),
		Encode(testFSID, ParentRoot, 0, KindRootNet),
		Encode(testFSID, ParentRoot, 42, KindPID),
		Encode(testFSID, ParentPID, 42, KindPIDFD),
	}
	for _, id := range dirs {
		if !isDirectory(id) {
			t.Errorf("isDirectory(%v): got false, want true", id)
		}
	}

	files := []fs.Ident{
		Encode(testFSID, ParentRoot, 0, KindRootMM),
		Encode(testFSID, ParentPID, 42, KindPIDVM),
		EncodeFD(testFSID, 42, 0),
		EncodeSysVar(testFSID, 1),
	}
	for _, id := range files {
		if isDirectory(id) {
			t.Errorf("isDirectory(%v): got true, want false", id)
		}
	}
}
