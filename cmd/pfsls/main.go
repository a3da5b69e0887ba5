package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/example/procfs/pkg/api"
	"github.com/example/procfs/pkg/client"
)

func usage() {
	fmt.Println("Usage: pfsls [-server addr] <command> <path>")
	fmt.Println("Commands:")
	fmt.Println("  ls <path>     list a directory")
	fmt.Println("  cat <path>    print a file's content")
	fmt.Println("  stat <path>   print a file's attributes")
	fmt.Println("  write <path> <data>   write to a tunable")
	os.Exit(1)
}

func main() {
	serverAddr := flag.String("server", "localhost:2049", "PFS server address")
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
	}
	command, path := args[0], args[1]

	config := client.DefaultConfig()
	config.ServerAddress = *serverAddr
	c, err := client.NewClient(config)
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer c.Close()

	ctx := context.Background()
	handle, err := c.LookupPath(ctx, path)
	if err != nil {
		log.Fatalf("Failed to resolve %s: %v", path, err)
	}

	switch command {
	case "ls":
		entries, err := c.ReadDir(ctx, handle)
		if err != nil {
			log.Fatalf("Failed to read directory: %v", err)
		}
		for _, entry := range entries {
			fmt.Printf("%10d  %s\n", entry.FileId, entry.Name)
		}

	case "cat":
		content, err := c.ReadAll(ctx, handle)
		if err != nil {
			log.Fatalf("Failed to read file: %v", err)
		}
		os.Stdout.Write(content)

	case "stat":
		attrs, err := c.GetAttr(ctx, handle)
		if err != nil {
			log.Fatalf("Failed to get attributes: %v", err)
		}
		printAttributes(path, attrs)

	case "write":
		if len(args) < 3 {
			usage()
		}
		n, err := c.Write(ctx, handle, 0, []byte(args[2]))
		if err != nil {
			log.Fatalf("Failed to write: %v", err)
		}
		fmt.Printf("wrote %d bytes\n", n)

	default:
		usage()
	}
}

// printAttributes renders a stat-like listing
func printAttributes(path string, attrs *api.FileAttributes) {
	kind := "regular"
	switch attrs.Type {
	case api.FileType_DIRECTORY:
		kind = "directory"
	case api.FileType_SYMLINK:
		kind = "symlink"
	}
	fmt.Printf("File:   %s\n", path)
	fmt.Printf("Type:   %s\n", kind)
	fmt.Printf("Mode:   %o\n", attrs.Mode)
	fmt.Printf("Size:   %s (%d bytes)\n", humanize.Bytes(attrs.Size), attrs.Size)
	fmt.Printf("Owner:  %d:%d\n", attrs.Uid, attrs.Gid)
	fmt.Printf("Inode:  %s\n", humanize.Comma(int64(attrs.Fileid)))
	fmt.Printf("FSID:   %d\n", attrs.Fsid)
}
