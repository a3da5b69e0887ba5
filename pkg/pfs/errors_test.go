package pfs

import (
	"testing"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/fs"
)

func TestMapErrorToStatus(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want api.Status
	}{
		{"nil", nil, api.Status_OK},
		{"not exist", fs.ErrNotExist, api.Status_ERR_NOENT},
		{"permission", fs.ErrPermission, api.Status_ERR_ACCES},
		{"is dir", fs.ErrIsDir, api.Status_ERR_ISDIR},
		{"not dir", fs.ErrNotDir, api.Status_ERR_NOTDIR},
		{"invalid", fs.ErrInvalid, api.Status_ERR_INVAL},
		{"bad handle", fs.ErrInvalidHandle, api.Status_ERR_BADHANDLE},
		{"stale", fs.ErrStale, api.Status_ERR_STALE},
		{"wrapped", fs.NewError("Lookup", "self", fs.ErrNotExist), api.Status_ERR_NOENT},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := MapErrorToStatus(tc.err); got != tc.want {
				t.Errorf("Status: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestAttributeConversionRoundTrip(t *testing.T) {
	meta := fs.Metadata{
		Inode: fs.Ident{FSID: 3, Index: 0x00111005},
		Mode:  0o120777,
		Uid:   100,
		Gid:   100,
		Nlink: 1,
	}

	attrs := MetadataToProtoAttributes(meta)
	if attrs.Type != api.FileType_SYMLINK {
		t.Errorf("Type: got %v, want symlink", attrs.Type)
	}
	if attrs.Fsid != 3 || attrs.Fileid != 0x00111005 {
		t.Errorf("Identity: got %d:%d", attrs.Fsid, attrs.Fileid)
	}

	back := ProtoAttributesToMetadata(attrs)
	if back.Inode != meta.Inode {
		t.Errorf("Inode: got %v, want %v", back.Inode, meta.Inode)
	}
	if back.Mode != meta.Mode {
		t.Errorf("Mode: got %o, want %o", back.Mode, meta.Mode)
	}
	if back.Uid != meta.Uid || back.Gid != meta.Gid {
		t.Errorf("Ownership: got %d:%d", back.Uid, back.Gid)
	}
}

func TestProtoCredsToFSCreds(t *testing.T) {
	// Nil credentials default to root
	creds := ProtoCredsToFSCreds(nil)
	if creds.UID != 0 || creds.GID != 0 {
		t.Errorf("Default creds: got %d:%d, want 0:0", creds.UID, creds.GID)
	}

	creds = ProtoCredsToFSCreds(&api.Credentials{Uid: 5, Gid: 6, Groups: []uint32{7}})
	if creds.UID != 5 || creds.GID != 6 || len(creds.Groups) != 1 {
		t.Errorf("Creds: %+v", creds)
	}
}
