package client

import (
	"context"
	"strings"

	"github.com/example/procfs/pkg/api"
)

// GetRootFileHandle retrieves the root directory file handle from the
// server
func (c *Client) GetRootFileHandle(ctx context.Context) ([]byte, error) {
	var resp *api.GetRootResponse
	err := c.callWithRetry(ctx, "GetRoot", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.GetRoot(ctx, &api.GetRootRequest{})
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := StatusToError("GetRoot", resp.Status); err != nil {
		return nil, err
	}
	return resp.FileHandle, nil
}

// GetAttr retrieves attributes for a file or directory
func (c *Client) GetAttr(ctx context.Context, fileHandle []byte) (*api.FileAttributes, error) {
	var resp *api.GetAttrResponse
	err := c.callWithRetry(ctx, "GetAttr", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.GetAttr(ctx, &api.GetAttrRequest{FileHandle: fileHandle})
		return err
	})
	if err != nil {
		return nil, err
	}
	if err := StatusToError("GetAttr", resp.Status); err != nil {
		return nil, err
	}
	return resp.Attributes, nil
}

// Lookup looks up a file name in a directory
func (c *Client) Lookup(ctx context.Context, dirHandle []byte, name string) ([]byte, *api.FileAttributes, error) {
	var resp *api.LookupResponse
	err := c.callWithRetry(ctx, "Lookup", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.Lookup(ctx, &api.LookupRequest{
			DirectoryHandle: dirHandle,
			Name:            name,
		})
		return err
	})
	if err != nil {
		return nil, nil, err
	}
	if err := StatusToError("Lookup", resp.Status); err != nil {
		return nil, nil, err
	}
	return resp.FileHandle, resp.Attributes, nil
}

// ReadDir reads the complete contents of a directory, following
// cookies across pages
func (c *Client) ReadDir(ctx context.Context, dirHandle []byte) ([]*api.DirEntry, error) {
	var entries []*api.DirEntry
	cookie := uint64(0)

	for {
		var resp *api.ReadDirResponse
		err := c.callWithRetry(ctx, "ReadDir", func(ctx context.Context) error {
			var err error
			resp, err = c.pfsClient.ReadDir(ctx, &api.ReadDirRequest{
				DirectoryHandle: dirHandle,
				Cookie:          cookie,
				Count:           1000,
			})
			return err
		})
		if err != nil {
			return nil, err
		}
		if err := StatusToError("ReadDir", resp.Status); err != nil {
			return nil, err
		}

		entries = append(entries, resp.Entries...)
		if resp.Eof || len(resp.Entries) == 0 {
			break
		}
		cookie = resp.Entries[len(resp.Entries)-1].Cookie
	}

	return entries, nil
}

// Open creates a server-side open-file description for snapshot reads
func (c *Client) Open(ctx context.Context, fileHandle []byte) (uint64, error) {
	var resp *api.OpenResponse
	err := c.callWithRetry(ctx, "Open", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.Open(ctx, &api.OpenRequest{FileHandle: fileHandle})
		return err
	})
	if err != nil {
		return 0, err
	}
	if err := StatusToError("Open", resp.Status); err != nil {
		return 0, err
	}
	return resp.OpenId, nil
}

// CloseOpen drops a server-side open-file description
func (c *Client) CloseOpen(ctx context.Context, openID uint64) error {
	var resp *api.CloseResponse
	err := c.callWithRetry(ctx, "Close", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.Close(ctx, &api.CloseRequest{OpenId: openID})
		return err
	})
	if err != nil {
		return err
	}
	return StatusToError("Close", resp.Status)
}

// Read reads data from a file at the specified offset. openID zero
// requests a stateless read; a non-zero openID reads from the open's
// content snapshot.
func (c *Client) Read(ctx context.Context, fileHandle []byte, openID uint64, offset int64, count int) ([]byte, bool, error) {
	var resp *api.ReadResponse
	err := c.callWithRetry(ctx, "Read", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.Read(ctx, &api.ReadRequest{
			FileHandle: fileHandle,
			OpenId:     openID,
			Offset:     uint64(offset),
			Count:      uint32(count),
		})
		return err
	})
	if err != nil {
		return nil, false, err
	}
	if err := StatusToError("Read", resp.Status); err != nil {
		return nil, false, err
	}
	return resp.Data, resp.Eof, nil
}

// ReadAll drains a file through one open-file description so the
// result is a single coherent snapshot
func (c *Client) ReadAll(ctx context.Context, fileHandle []byte) ([]byte, error) {
	openID, err := c.Open(ctx, fileHandle)
	if err != nil {
		return nil, err
	}
	defer c.CloseOpen(ctx, openID)

	var content []byte
	offset := int64(0)
	for {
		data, eof, err := c.Read(ctx, fileHandle, openID, offset, 64*1024)
		if err != nil {
			return nil, err
		}
		content = append(content, data...)
		offset += int64(len(data))
		if eof || len(data) == 0 {
			return content, nil
		}
	}
}

// Write writes data to a file at the given offset; only runtime tunables
// accept writes, and they refuse non-zero offsets
func (c *Client) Write(ctx context.Context, fileHandle []byte, offset int64, data []byte) (int, error) {
	var resp *api.WriteResponse
	err := c.callWithRetry(ctx, "Write", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.Write(ctx, &api.WriteRequest{
			FileHandle: fileHandle,
			Offset:     uint64(offset),
			Data:       data,
		})
		return err
	})
	if err != nil {
		return 0, err
	}
	if err := StatusToError("Write", resp.Status); err != nil {
		return 0, err
	}
	return int(resp.Count), nil
}

// Readlink reads the target of a symbolic link
func (c *Client) Readlink(ctx context.Context, fileHandle []byte) (string, error) {
	var resp *api.ReadlinkResponse
	err := c.callWithRetry(ctx, "Readlink", func(ctx context.Context) error {
		var err error
		resp, err = c.pfsClient.Readlink(ctx, &api.ReadlinkRequest{FileHandle: fileHandle})
		return err
	})
	if err != nil {
		return "", err
	}
	if err := StatusToError("Readlink", resp.Status); err != nil {
		return "", err
	}
	return resp.Target, nil
}

// LookupPath resolves a file path to a file handle, starting from the
// root
func (c *Client) LookupPath(ctx context.Context, path string) ([]byte, error) {
	if !strings.HasPrefix(path, "/") {
		return nil, NewPFSError("LookupPath", api.Status_ERR_INVAL, "path must be absolute", ErrInvalidPath)
	}

	if handle, ok := c.handleCache.Get(path); ok {
		return handle, nil
	}

	handle, err := c.GetRootFileHandle(ctx)
	if err != nil {
		return nil, err
	}

	for _, component := range strings.Split(path, "/") {
		if component == "" {
			continue
		}
		next, _, err := c.Lookup(ctx, handle, component)
		if err != nil {
			return nil, err
		}
		handle = next
	}

	c.handleCache.Store(path, handle)
	return handle, nil
}
