package procfs

import (
	"github.com/example/procfs/pkg/kernel"
)

// newTestKernel builds the kernel fixture shared by the package tests:
// init at pid 1, a shell at pid 17 with descriptors {0,1,2,5} where
// descriptor 5 points at /tmp/x, and a kernel task at pid 99 with no
// executable custody.
func newTestKernel() *kernel.Kernel {
	k := kernel.New()
	k.SetCmdline("root=/dev/hda1")
	k.SetCurrentPID(42)

	init := kernel.NewProcess(1, "init", 0, 0)
	init.SetExecutable("/bin/init")
	init.SetCWD("/")
	init.AddThread(kernel.Thread{TID: 1, State: "Runnable"})
	k.Processes.Add(init)

	shell := kernel.NewProcess(17, "sh", 100, 100)
	shell.SetParent(1)
	shell.SetExecutable("/bin/sh")
	shell.SetCWD("/home/user")
	shell.AddThread(kernel.Thread{TID: 17, State: "BlockedRead"})
	shell.OpenFD(0, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	shell.OpenFD(1, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	shell.OpenFD(2, kernel.FileDescription{AbsolutePath: "/dev/tty0", ClassName: "VirtualConsole"})
	shell.OpenFD(5, kernel.FileDescription{AbsolutePath: "/tmp/x", ClassName: "InodeFile", Seekable: true})
	k.Processes.Add(shell)

	task := kernel.NewProcess(99, "kworker", 0, 0)
	task.SetCWD("/")
	task.AddThread(kernel.Thread{TID: 99, State: "Runnable"})
	k.Processes.Add(task)

	return k
}

// newTestFS builds a filesystem over the test kernel.
func newTestFS() (*ProcFS, *kernel.Kernel) {
	k := newTestKernel()
	return New(k, testFSID), k
}

func newTestBoolCell(initial bool) *kernel.BoolCell {
	return kernel.NewBoolCell(initial)
}

func newTestStringCell(initial string) *kernel.StringCell {
	return kernel.NewStringCell(initial)
}
