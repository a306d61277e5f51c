package model

import "github.com/katalvlaran/moletrap/grid"

// VarID is a dense, zero-based DecisionVariable identifier.
type VarID int

// Registry is the bidirectional mapping between free cells and VarIDs.
// IDs are assigned in row-major order of the cells they represent.
type Registry struct {
	byOffset map[int]VarID
	offsets  []int
	indices  []grid.Index
}

func newRegistry(capacity int) *Registry {
	return &Registry{
		byOffset: make(map[int]VarID, capacity),
		offsets:  make([]int, 0, capacity),
		indices:  make([]grid.Index, 0, capacity),
	}
}

// add registers the cell at off/idx and returns its new VarID.
func (r *Registry) add(off int, idx grid.Index) VarID {
	id := VarID(len(r.offsets))
	r.byOffset[off] = id
	r.offsets = append(r.offsets, off)
	r.indices = append(r.indices, idx)

	return id
}

// Len returns the number of registered variables.
func (r *Registry) Len() int { return len(r.offsets) }

// ID returns the VarID of the cell at a row-major offset.
func (r *Registry) ID(off int) (VarID, bool) {
	id, ok := r.byOffset[off]

	return id, ok
}

// Offset returns the row-major offset of the cell behind v.
func (r *Registry) Offset(v VarID) int { return r.offsets[v] }

// Index returns a copy of the Index of the cell behind v.
func (r *Registry) Index(v VarID) grid.Index { return r.indices[v].Clone() }
