package lisp

import "sync"

// Cell is a shared mutable storage location holding one value.  A cell may be
// reachable through several bindings and closures at once; writes through any
// of them are observed by all.
type Cell struct {
	mut sync.Mutex
	v   *LVal
}

// NewCell allocates a cell holding v.
func NewCell(v *LVal) *Cell {
	return &Cell{v: v}
}

// Get returns the current contents of c.
func (c *Cell) Get() *LVal {
	c.mut.Lock()
	defer c.mut.Unlock()
	return c.v
}

// Set replaces the contents of c.
func (c *Cell) Set(v *LVal) {
	c.mut.Lock()
	c.v = v
	c.mut.Unlock()
}
