package fs

import (
	"testing"
)

func TestIdentSerializeDeserialize(t *testing.T) {
	// Create sample identifier
	original := Ident{
		FSID:  12345,
		Index: 0x00251012,
	}

	// Serialize
	data := original.Serialize()

	// Check length
	if len(data) != 8 {
		t.Errorf("Serialized handle length wrong: got %d, want 8", len(data))
	}

	// Deserialize
	recovered, err := DeserializeIdent(data)
	if err != nil {
		t.Fatalf("Failed to deserialize: %v", err)
	}

	// Check fields match
	if recovered.FSID != original.FSID {
		t.Errorf("FSID mismatch: got %d, want %d",
			recovered.FSID, original.FSID)
	}
	if recovered.Index != original.Index {
		t.Errorf("Index mismatch: got %d, want %d",
			recovered.Index, original.Index)
	}
}

func TestDeserializeInvalidHandle(t *testing.T) {
	// Test with too short data
	_, err := DeserializeIdent([]byte{1, 2, 3})
	if err == nil {
		t.Error("Expected error for too short data, got nil")
	}
}

func TestIdentIsValid(t *testing.T) {
	if (Ident{}).IsValid() {
		t.Error("Zero identifier should be invalid")
	}
	if !(Ident{FSID: 0, Index: 1}).IsValid() {
		t.Error("Root identifier should be valid")
	}
}

func TestFileModeClassification(t *testing.T) {
	testCases := []struct {
		name    string
		mode    FileMode
		dir     bool
		symlink bool
		typ     FileType
	}{
		{"directory", 0o040777, true, false, FileTypeDirectory},
		{"symlink", 0o120777, false, true, FileTypeSymlink},
		{"regular", 0o100644, false, false, FileTypeRegular},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.mode.IsDirectory(); got != tc.dir {
				t.Errorf("IsDirectory: got %v, want %v", got, tc.dir)
			}
			if got := tc.mode.IsSymlink(); got != tc.symlink {
				t.Errorf("IsSymlink: got %v, want %v", got, tc.symlink)
			}
			if got := tc.mode.Type(); got != tc.typ {
				t.Errorf("Type: got %v, want %v", got, tc.typ)
			}
		})
	}
}
