package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"log"

	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/fs/procfs"
)

func main() {
	// Parse command line flags
	handleHex := flag.String("handle", "", "File handle in hex")

	flag.Parse()

	if *handleHex == "" {
		log.Fatal("a -handle is required")
	}

	raw, err := hex.DecodeString(*handleHex)
	if err != nil {
		log.Fatalf("Failed to decode hex: %v", err)
	}

	id, err := fs.DeserializeIdent(raw)
	if err != nil {
		log.Fatalf("Failed to parse handle: %v", err)
	}

	// Display the decoded routing fields
	fmt.Printf("Handle:       %s\n", *handleHex)
	fmt.Printf("FSID:         %d\n", id.FSID)
	fmt.Printf("Index:        %#08x\n", id.Index)
	fmt.Printf("Parent class: %d\n", procfs.ParentDirOf(id))
	fmt.Printf("File kind:    %d\n", procfs.KindOf(id))

	switch procfs.ParentDirOf(id) {
	case procfs.ParentPIDFD:
		fmt.Printf("PID:          %d\n", procfs.PID(id))
		fmt.Printf("FD:           %d\n", procfs.FD(id))
	case procfs.ParentRootSys:
		if procfs.KindOf(id) == procfs.KindRootSysVariable {
			fmt.Printf("Sys index:    %d\n", procfs.SysIndex(id))
		}
	default:
		fmt.Printf("PID:          %d\n", procfs.PID(id))
	}

	parent := procfs.ParentOf(id)
	fmt.Printf("Parent:       %#08x\n", parent.Index)
}
