package fuse

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bazil.org/fuse"
	"bazil.org/fuse/fs"

	"github.com/example/procfs/pkg/client"
)

// MountOptions contains options for mounting the filesystem
type MountOptions struct {
	MountPoint string
	ServerAddr string // PFS server address
	ReadOnly   bool
	Debug      bool
}

// Mount mounts a served process filesystem at the specified mount
// point and blocks until interrupted.
func Mount(options MountOptions) error {
	// Create PFS client
	config := client.DefaultConfig()
	config.ServerAddress = options.ServerAddr

	log.Printf("Connecting to PFS server at %s", options.ServerAddr)
	pfsClient, err := client.NewClient(config)
	if err != nil {
		return fmt.Errorf("failed to connect to PFS server: %w", err)
	}

	// Resolve the served root
	log.Println("Getting root directory handle")
	remote, err := client.NewRemote(context.Background(), pfsClient)
	if err != nil {
		pfsClient.Close()
		return fmt.Errorf("failed to get root handle: %w", err)
	}

	// Mount options
	mountOpts := []fuse.MountOption{
		fuse.FSName("pfs-fuse"),
		fuse.Subtype("pfs"),
	}

	if options.ReadOnly {
		mountOpts = append(mountOpts, fuse.ReadOnly())
	}

	if options.Debug {
		fuse.Debug = func(msg interface{}) {
			fmt.Printf("FUSE: %v\n", msg)
		}
	}

	// Mount the filesystem
	log.Printf("Mounting FUSE filesystem at %s", options.MountPoint)
	c, err := fuse.Mount(options.MountPoint, mountOpts...)
	if err != nil {
		pfsClient.Close()
		return fmt.Errorf("failed to mount: %w", err)
	}
	defer c.Close()

	// Serve the filesystem until unmounted
	go func() {
		log.Println("Starting FUSE server")
		if err := fs.Serve(c, New(remote)); err != nil {
			log.Printf("Error serving filesystem: %v", err)
		}
	}()

	// Give the mount a moment to settle before announcing it
	log.Println("Waiting for mount to be ready...")
	time.Sleep(1 * time.Second)

	// Wait for SIGINT or SIGTERM to unmount
	log.Println("FUSE filesystem mounted successfully")
	log.Println("Press Ctrl+C to unmount")
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	// Unmount
	log.Println("Unmounting filesystem...")
	if err := Unmount(options.MountPoint); err != nil {
		log.Printf("Warning: failed to unmount cleanly: %v", err)
	}

	// Close PFS client
	pfsClient.Close()
	log.Println("PFS connection closed")

	return nil
}

// Unmount unmounts the filesystem
func Unmount(mountPoint string) error {
	return fuse.Unmount(mountPoint)
}
