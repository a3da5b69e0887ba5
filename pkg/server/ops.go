package server

import (
	"context"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/pfs"
	"google.golang.org/grpc/peer"
)

// clientAddr extracts the caller's address for logging
func clientAddr(ctx context.Context) string {
	if p, ok := peer.FromContext(ctx); ok && p.Addr != nil {
		return p.Addr.String()
	}
	return "unknown"
}

// GetRoot implements the GetRoot RPC method
func (s *PFSServer) GetRoot(ctx context.Context, req *api.GetRootRequest) (*api.GetRootResponse, error) {
	result, err := s.processRequest(ctx, "GetRoot", reqID("getroot"), clientAddr(ctx), func() (interface{}, error) {
		root := s.fileSystem.Root()

		meta, err := s.fileSystem.Metadata(root)
		if err != nil {
			return &api.GetRootResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.GetRootResponse{
			Status:     api.Status_OK,
			FileHandle: root.Serialize(),
			Attributes: pfs.MetadataToProtoAttributes(meta),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.GetRootResponse), nil
}

// GetAttr implements the GetAttr RPC method
func (s *PFSServer) GetAttr(ctx context.Context, req *api.GetAttrRequest) (*api.GetAttrResponse, error) {
	result, err := s.processRequest(ctx, "GetAttr", reqID("getattr"), clientAddr(ctx), func() (interface{}, error) {
		id, err := s.decodeHandle(req.FileHandle)
		if err != nil {
			return &api.GetAttrResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		meta, err := s.fileSystem.Metadata(id)
		if err != nil {
			return &api.GetAttrResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.GetAttrResponse{
			Status:     api.Status_OK,
			Attributes: pfs.MetadataToProtoAttributes(meta),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.GetAttrResponse), nil
}

// Lookup implements the Lookup RPC method
func (s *PFSServer) Lookup(ctx context.Context, req *api.LookupRequest) (*api.LookupResponse, error) {
	result, err := s.processRequest(ctx, "Lookup", reqID("lookup"), clientAddr(ctx), func() (interface{}, error) {
		dir, err := s.decodeHandle(req.DirectoryHandle)
		if err != nil {
			return &api.LookupResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		target, err := s.fileSystem.Lookup(dir, req.Name)
		if err != nil {
			return &api.LookupResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		meta, err := s.fileSystem.Metadata(target)
		if err != nil {
			return &api.LookupResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		// Directory attributes are optional on the wire
		var dirAttrs *api.FileAttributes
		if dir != target {
			if dirMeta, err := s.fileSystem.Metadata(dir); err == nil {
				dirAttrs = pfs.MetadataToProtoAttributes(dirMeta)
			}
		}

		return &api.LookupResponse{
			Status:        api.Status_OK,
			FileHandle:    target.Serialize(),
			Attributes:    pfs.MetadataToProtoAttributes(meta),
			DirAttributes: dirAttrs,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.LookupResponse), nil
}

// ReadDir implements the ReadDir RPC method. Entries resume after the
// request cookie, which is the ordinal the traversal assigned to the
// last entry of the previous page.
func (s *PFSServer) ReadDir(ctx context.Context, req *api.ReadDirRequest) (*api.ReadDirResponse, error) {
	result, err := s.processRequest(ctx, "ReadDir", reqID("readdir"), clientAddr(ctx), func() (interface{}, error) {
		dir, err := s.decodeHandle(req.DirectoryHandle)
		if err != nil {
			return &api.ReadDirResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		// Determine the maximum number of entries to return
		maxCount := int(req.Count)
		if maxCount <= 0 {
			maxCount = 1000 // Default limit if not specified
		} else if maxCount > 10000 {
			maxCount = 10000 // Hard upper limit
		}

		entries := []*api.DirEntry{}
		eof := true
		err = s.fileSystem.Traverse(dir, func(entry fs.DirEntry) bool {
			if uint64(entry.Cookie) <= req.Cookie {
				return true
			}
			if len(entries) >= maxCount {
				eof = false
				return false
			}
			entries = append(entries, &api.DirEntry{
				FileId: uint64(entry.ID.Index),
				Name:   entry.Name,
				Cookie: uint64(entry.Cookie),
			})
			return true
		})
		if err != nil {
			return &api.ReadDirResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.ReadDirResponse{
			Status:  api.Status_OK,
			Entries: entries,
			Eof:     eof,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.ReadDirResponse), nil
}

// Open implements the Open RPC method
func (s *PFSServer) Open(ctx context.Context, req *api.OpenRequest) (*api.OpenResponse, error) {
	result, err := s.processRequest(ctx, "Open", reqID("open"), clientAddr(ctx), func() (interface{}, error) {
		if _, err := s.decodeHandle(req.FileHandle); err != nil {
			return &api.OpenResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		openID, err := s.registerOpen()
		if err != nil {
			return &api.OpenResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.OpenResponse{
			Status: api.Status_OK,
			OpenId: openID,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.OpenResponse), nil
}

// Close implements the Close RPC method
func (s *PFSServer) Close(ctx context.Context, req *api.CloseRequest) (*api.CloseResponse, error) {
	result, err := s.processRequest(ctx, "Close", reqID("close"), clientAddr(ctx), func() (interface{}, error) {
		if !s.dropOpen(req.OpenId) {
			return &api.CloseResponse{Status: api.Status_ERR_BADHANDLE}, nil
		}
		return &api.CloseResponse{Status: api.Status_OK}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.CloseResponse), nil
}

// Read implements the Read RPC method
func (s *PFSServer) Read(ctx context.Context, req *api.ReadRequest) (*api.ReadResponse, error) {
	result, err := s.processRequest(ctx, "Read", reqID("read"), clientAddr(ctx), func() (interface{}, error) {
		id, err := s.decodeHandle(req.FileHandle)
		if err != nil {
			return &api.ReadResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		// Limit read size
		count := req.Count
		if count > uint32(s.config.MaxReadSize) {
			count = uint32(s.config.MaxReadSize)
		}

		// Resolve the open-file description, if the client opened one
		var open *fs.OpenFile
		if req.OpenId != 0 {
			var ok bool
			open, ok = s.lookupOpen(req.OpenId)
			if !ok {
				return &api.ReadResponse{Status: api.Status_ERR_BADHANDLE}, nil
			}
		}

		data, eof, err := s.fileSystem.ReadBytes(id, int64(req.Offset), int(count), open)
		if err != nil {
			return &api.ReadResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.ReadResponse{
			Status: api.Status_OK,
			Data:   data,
			Eof:    eof,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.ReadResponse), nil
}

// Write implements the Write RPC method
func (s *PFSServer) Write(ctx context.Context, req *api.WriteRequest) (*api.WriteResponse, error) {
	result, err := s.processRequest(ctx, "Write", reqID("write"), clientAddr(ctx), func() (interface{}, error) {
		id, err := s.decodeHandle(req.FileHandle)
		if err != nil {
			return &api.WriteResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		// Limit write size
		if len(req.Data) > s.config.MaxWriteSize {
			return &api.WriteResponse{Status: api.Status_ERR_FBIG}, nil
		}

		n, err := s.fileSystem.WriteBytes(id, int64(req.Offset), req.Data)
		if err != nil {
			return &api.WriteResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.WriteResponse{
			Status: api.Status_OK,
			Count:  uint32(n),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.WriteResponse), nil
}

// Readlink implements the Readlink RPC method. Symlink targets are
// generated content, so this is a stateless read of the whole buffer.
func (s *PFSServer) Readlink(ctx context.Context, req *api.ReadlinkRequest) (*api.ReadlinkResponse, error) {
	result, err := s.processRequest(ctx, "Readlink", reqID("readlink"), clientAddr(ctx), func() (interface{}, error) {
		id, err := s.decodeHandle(req.FileHandle)
		if err != nil {
			return &api.ReadlinkResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		meta, err := s.fileSystem.Metadata(id)
		if err != nil {
			return &api.ReadlinkResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}
		if !meta.Mode.IsSymlink() {
			return &api.ReadlinkResponse{Status: api.Status_ERR_INVAL}, nil
		}

		data, _, err := s.fileSystem.ReadBytes(id, 0, s.config.MaxReadSize, nil)
		if err != nil {
			return &api.ReadlinkResponse{Status: pfs.MapErrorToStatus(err)}, nil
		}

		return &api.ReadlinkResponse{
			Status: api.Status_OK,
			Target: string(data),
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*api.ReadlinkResponse), nil
}
