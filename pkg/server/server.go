// Package server exposes a process filesystem over gRPC
package server

import (
	"context"
	"fmt"
	"log"
	"net"
	"os"
	"sync"
	"time"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/pfs"
	"golang.org/x/net/netutil"
	"google.golang.org/grpc"
	"gopkg.in/yaml.v3"
)

// Config contains the PFS server configuration
type Config struct {
	// Network address to listen on (e.g. ":2049")
	ListenAddress string `yaml:"listen_address"`

	// Maximum concurrent requests
	MaxConcurrent int `yaml:"max_concurrent"`

	// Maximum read size in bytes
	MaxReadSize int `yaml:"max_read_size"`

	// Maximum write size in bytes
	MaxWriteSize int `yaml:"max_write_size"`

	// Request timeout in seconds
	RequestTimeout int `yaml:"request_timeout"`

	// Maximum open-file descriptions per server
	MaxOpenFiles int `yaml:"max_open_files"`
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		ListenAddress:  ":2049",
		MaxConcurrent:  100,
		MaxReadSize:    1024 * 1024, // 1MB
		MaxWriteSize:   1024 * 1024, // 1MB
		RequestTimeout: 30,          // 30 seconds
		MaxOpenFiles:   1024,
	}
}

// LoadConfig reads a YAML configuration file over the defaults
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return config, nil
}

// PFSServer implements the PFS service over a filesystem facade
type PFSServer struct {
	api.UnimplementedPFSServiceServer

	// Configuration
	config *Config

	// The underlying filesystem implementation
	fileSystem fs.FileSystem

	// Open-file descriptions keyed by open id; each owns the content
	// snapshot of one client open
	opensMu    sync.Mutex
	opens      map[uint64]*fs.OpenFile
	nextOpenID uint64

	// Worker pool for limiting concurrent requests
	workerPool chan struct{}
}

// NewPFSServer creates a new PFS server
func NewPFSServer(config *Config, fileSystem fs.FileSystem) (*PFSServer, error) {
	// Create worker pool for controlling concurrency
	workerPool := make(chan struct{}, config.MaxConcurrent)

	return &PFSServer{
		config:     config,
		fileSystem: fileSystem,
		opens:      make(map[uint64]*fs.OpenFile),
		workerPool: workerPool,
	}, nil
}

// Start launches the PFS server
func (s *PFSServer) Start() error {
	// Create listener, bounded to the configured concurrency
	lis, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}
	lis = netutil.LimitListener(lis, s.config.MaxConcurrent)

	// Register the wire codec and create the gRPC server
	api.RegisterCodec()
	grpcServer := grpc.NewServer()

	// Register PFS service
	api.RegisterPFSServiceServer(grpcServer, s)

	// Start serving
	log.Printf("PFS server starting on %s", s.config.ListenAddress)
	if err := grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// acquireWorker gets a worker from the pool or times out
func (s *PFSServer) acquireWorker(ctx context.Context) error {
	select {
	case s.workerPool <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// releaseWorker returns a worker to the pool
func (s *PFSServer) releaseWorker() {
	<-s.workerPool
}

// processRequest handles common request processing logic
func (s *PFSServer) processRequest(ctx context.Context, op string, reqID string, clientAddr string,
	process func() (interface{}, error)) (interface{}, error) {

	// Log request
	pfs.LogRequest(op, reqID, clientAddr)
	startTime := time.Now()

	// Acquire worker
	if err := s.acquireWorker(ctx); err != nil {
		pfs.LogError(op, reqID, err)
		return nil, err
	}
	defer s.releaseWorker()

	// Execute the operation
	result, err := process()

	// Log the result
	duration := time.Since(startTime)
	var status api.Status
	if err != nil {
		pfs.LogError(op, reqID, err)
		status = pfs.MapErrorToStatus(err)
	} else {
		status = api.Status_OK
	}

	pfs.LogResponse(op, reqID, status, duration.String())
	return result, err
}

// reqID creates a unique request id for logging
func reqID(op string) string {
	return fmt.Sprintf("%s-%d", op, time.Now().UnixNano())
}

// decodeHandle validates a file handle and returns its identifier.
// The handle must parse and belong to the served filesystem.
func (s *PFSServer) decodeHandle(handle []byte) (fs.Ident, error) {
	id, err := fs.DeserializeIdent(handle)
	if err != nil {
		return fs.Ident{}, fs.ErrInvalidHandle
	}
	if id.FSID != s.fileSystem.Root().FSID || !id.IsValid() {
		return fs.Ident{}, fs.ErrStale
	}
	return id, nil
}

// registerOpen installs a new open-file description
func (s *PFSServer) registerOpen() (uint64, error) {
	s.opensMu.Lock()
	defer s.opensMu.Unlock()
	if len(s.opens) >= s.config.MaxOpenFiles {
		return 0, fs.ErrNotSupported
	}
	s.nextOpenID++
	id := s.nextOpenID
	s.opens[id] = &fs.OpenFile{}
	return id, nil
}

// lookupOpen finds an open-file description by id
func (s *PFSServer) lookupOpen(id uint64) (*fs.OpenFile, bool) {
	s.opensMu.Lock()
	defer s.opensMu.Unlock()
	open, ok := s.opens[id]
	return open, ok
}

// dropOpen removes an open-file description, releasing its snapshot
func (s *PFSServer) dropOpen(id uint64) bool {
	s.opensMu.Lock()
	defer s.opensMu.Unlock()
	if _, ok := s.opens[id]; !ok {
		return false
	}
	delete(s.opens, id)
	return true
}
