package procfs

import (
	"github.com/example/procfs/pkg/fs"
)

// generatorFor routes an identifier to its content generator: the
// static table first, then the computed classes (fd targets, tunable
// readers). Identifiers with no generator are not readable.
func (p *ProcFS) generatorFor(id fs.Ident) (readFunc, error) {
	if entry := p.directoryEntry(id); entry != nil && entry.read != nil {
		return entry.read, nil
	}
	if isDirectory(id) {
		return nil, fs.NewError("ReadBytes", "", fs.ErrIsDir)
	}

	switch ParentDirOf(id) {
	case ParentPIDFD:
		return p.pidFDEntry, nil
	case ParentRootSys:
		if KindOf(id) != KindRootSysVariable {
			break
		}
		switch p.sysForInode(id).typ {
		case sysBoolean:
			return p.readSysBool, nil
		case sysString:
			return p.readSysString, nil
		}
	}
	return nil, fs.NewError("ReadBytes", "", fs.ErrInvalidHandle)
}

// ReadBytes serves generated content. With an open-file description
// the generator runs once per snapshot: the first read stores the
// output on the description and later reads serve slices of it, so a
// reader that drains the file in chunks observes one coherent
// document. A read that lands at or past the end clears the snapshot,
// letting a long-lived handle pick up fresh content by seeking back.
// Without a description every read generates fresh.
func (p *ProcFS) ReadBytes(id fs.Ident, offset int64, count int, open *fs.OpenFile) ([]byte, bool, error) {
	if offset < 0 {
		return nil, false, fs.NewError("ReadBytes", "", fs.ErrInvalid)
	}

	generate, err := p.generatorFor(id)
	if err != nil {
		return nil, false, err
	}

	var data []byte
	if open == nil {
		data, err = generate(id)
		if err != nil {
			return nil, false, err
		}
	} else {
		if open.GeneratorCache == nil {
			generated, err := generate(id)
			if err != nil {
				return nil, false, err
			}
			open.GeneratorCache = generated
		}
		data = open.GeneratorCache
	}

	if offset >= int64(len(data)) {
		if open != nil {
			open.GeneratorCache = nil
		}
		return nil, true, nil
	}

	n := int64(count)
	if remaining := int64(len(data)) - offset; n > remaining {
		n = remaining
	}
	out := make([]byte, n)
	copy(out, data[offset:offset+n])

	eof := offset+n >= int64(len(data))
	return out, eof, nil
}
