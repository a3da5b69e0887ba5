package procfs

import (
	"fmt"
	"sync"

	"github.com/example/procfs/pkg/fs"
	"github.com/example/procfs/pkg/kernel"
)

// sysType tags the value shape of a tunable.
type sysType uint8

const (
	sysInvalid sysType = iota
	sysBoolean
	sysString
)

// sysVariable is one registered tunable. The cells are owned by the
// registering subsystem; the registry only aliases them.
type sysVariable struct {
	name     string
	typ      sysType
	boolCell *kernel.BoolCell
	strCell  *kernel.StringCell
	notify   func()
}

// sysRegistry is the ordered, append-only tunable list. Slot 0 is the
// invalid sentinel so out-of-range and uninitialized share one branch.
type sysRegistry struct {
	mu   sync.Mutex
	vars []sysVariable
}

func (r *sysRegistry) init() {
	r.vars = []sysVariable{{typ: sysInvalid}}
}

// add appends a variable and returns its stable index.
func (r *sysRegistry) add(v sysVariable) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.vars = append(r.vars, v)
	return len(r.vars) - 1
}

// snapshot returns the current list; the slice header is copied under
// the lock and the backing array is append-only, so iteration is safe.
func (r *sysRegistry) snapshot() []sysVariable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.vars
}

// forIndex returns the variable at the index, or the sentinel when the
// index is out of range.
func (r *sysRegistry) forIndex(index int) sysVariable {
	r.mu.Lock()
	defer r.mu.Unlock()
	if index <= 0 || index >= len(r.vars) {
		return r.vars[0]
	}
	return r.vars[index]
}

// sysForInode resolves a tunable identifier to its variable.
func (p *ProcFS) sysForInode(id fs.Ident) sysVariable {
	return p.sys.forIndex(SysIndex(id))
}

// AddSysBool registers a boolean tunable backed by the given cell. The
// hook, if any, fires after each successful write, outside the cell
// lock.
func (p *ProcFS) AddSysBool(name string, cell *kernel.BoolCell, notify func()) {
	p.sys.add(sysVariable{
		name:     name,
		typ:      sysBoolean,
		boolCell: cell,
		notify:   notify,
	})
}

// AddSysString registers a string tunable backed by the given cell.
func (p *ProcFS) AddSysString(name string, cell *kernel.StringCell, notify func()) {
	p.sys.add(sysVariable{
		name:    name,
		typ:     sysString,
		strCell: cell,
		notify:  notify,
	})
}

// readSysBool renders a boolean tunable as '0' or '1' plus a newline.
func (p *ProcFS) readSysBool(id fs.Ident) ([]byte, error) {
	variable := p.sysForInode(id)
	if variable.typ != sysBoolean {
		panic(fmt.Sprintf("procfs: boolean read on %q", variable.name))
	}
	if variable.boolCell.Get() {
		return []byte("1\n"), nil
	}
	return []byte("0\n"), nil
}

// writeSysBool applies a boolean write. Input that is not '0' or '1'
// is consumed without mutating the cell; this matches the documented
// behavior and is not an error.
func (p *ProcFS) writeSysBool(id fs.Ident, data []byte) (int, error) {
	variable := p.sysForInode(id)
	if variable.typ != sysBoolean {
		panic(fmt.Sprintf("procfs: boolean write on %q", variable.name))
	}
	if len(data) == 0 || (data[0] != '0' && data[0] != '1') {
		return len(data), nil
	}
	variable.boolCell.Set(data[0] == '1')
	if variable.notify != nil {
		variable.notify()
	}
	return len(data), nil
}

// readSysString renders a string tunable as its raw cell bytes.
func (p *ProcFS) readSysString(id fs.Ident) ([]byte, error) {
	variable := p.sysForInode(id)
	if variable.typ != sysString {
		panic(fmt.Sprintf("procfs: string read on %q", variable.name))
	}
	return []byte(variable.strCell.Get()), nil
}

// writeSysString replaces the cell with the exact byte range.
func (p *ProcFS) writeSysString(id fs.Ident, data []byte) (int, error) {
	variable := p.sysForInode(id)
	if variable.typ != sysString {
		panic(fmt.Sprintf("procfs: string write on %q", variable.name))
	}
	variable.strCell.Set(string(data))
	if variable.notify != nil {
		variable.notify()
	}
	return len(data), nil
}
