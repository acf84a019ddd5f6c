package strpool

import "fmt"

// ID references an interned string. Every name and description in a
// generated world is stored once in the pool and referenced by ID.
type ID int32

// Pool interns strings to sequential IDs. The first time a string is seen it
// gets the next free ID; repeats return the existing one, so the mapping is
// bijective by construction.
type Pool struct {
	ids  map[string]ID
	strs []string
}

// New returns an empty pool.
func New() *Pool {
	return &Pool{ids: make(map[string]ID)}
}

// Intern returns the ID for s, assigning the next sequential ID on first use.
func (p *Pool) Intern(s string) ID {
	if id, ok := p.ids[s]; ok {
		return id
	}
	id := ID(len(p.strs))
	p.ids[s] = id
	p.strs = append(p.strs, s)
	return id
}

// Resolve returns the string for an ID, or an error for an ID the pool never
// assigned.
func (p *Pool) Resolve(id ID) (string, error) {
	if id < 0 || int(id) >= len(p.strs) {
		return "", fmt.Errorf("string pool: id %d out of range (pool has %d entries)", id, len(p.strs))
	}
	return p.strs[id], nil
}

// Len returns the number of interned strings.
func (p *Pool) Len() int {
	return len(p.strs)
}

// Strings returns a copy of the pool contents in ID order, suitable for
// embedding in a serialized resource table.
func (p *Pool) Strings() []string {
	out := make([]string, len(p.strs))
	copy(out, p.strs)
	return out
}
