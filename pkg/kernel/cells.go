package kernel

import (
	"sync"
)

// BoolCell is a lock-protected boolean owned by a kernel subsystem and
// exposed as a runtime tunable. The filesystem never owns the cell; it
// only reads and writes it through the lock.
type BoolCell struct {
	mu    sync.Mutex
	value bool
}

// NewBoolCell creates a cell holding the initial value.
func NewBoolCell(initial bool) *BoolCell {
	return &BoolCell{value: initial}
}

// Get returns the current value under the cell lock.
func (c *BoolCell) Get() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value under the cell lock. The lock is released
// before Set returns, so change hooks may fire afterwards.
func (c *BoolCell) Set(v bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
}

// StringCell is a lock-protected string owned by a kernel subsystem
// and exposed as a runtime tunable.
type StringCell struct {
	mu    sync.Mutex
	value string
}

// NewStringCell creates a cell holding the initial value.
func NewStringCell(initial string) *StringCell {
	return &StringCell{value: initial}
}

// Get returns the current value under the cell lock.
func (c *StringCell) Get() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

// Set replaces the value under the cell lock.
func (c *StringCell) Set(v string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = v
}
