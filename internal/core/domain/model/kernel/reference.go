package kernel

import "fmt"

// RefKind enumerates the shapes a Reference can take.
type RefKind int

const (
	// RefMissing is the zero value: neither id nor data. Resolvers reject it.
	RefMissing RefKind = iota
	// RefByID points at an entity that must already exist.
	RefByID
	// RefInline carries data for a new entity with a store-generated id.
	RefInline
	// RefByIDOrCreate points at an entity by id and carries data to create
	// it under that id when it does not exist yet.
	RefByIDOrCreate
)

func (k RefKind) String() string {
	switch k {
	case RefByID:
		return "by-id"
	case RefInline:
		return "inline"
	case RefByIDOrCreate:
		return "by-id-or-create"
	default:
		return "missing"
	}
}

// Reference describes how a task refers to one of its linked entities.
// D is the inline payload type (parcel.Data, robot.Data).
type Reference[D any] struct {
	kind RefKind
	id   ID
	data D
}

// ByID builds a reference to an existing entity.
func ByID[D any](id ID) Reference[D] {
	return Reference[D]{kind: RefByID, id: id}
}

// Inline builds a reference that creates a new entity from data.
func Inline[D any](data D) Reference[D] {
	return Reference[D]{kind: RefInline, data: data}
}

// ByIDOrCreate builds a reference that resolves id and falls back to creating
// an entity with that id from data.
func ByIDOrCreate[D any](id ID, data D) Reference[D] {
	return Reference[D]{kind: RefByIDOrCreate, id: id, data: data}
}

func (r Reference[D]) Kind() RefKind {
	return r.kind
}

// ID returns the referenced id; zero for inline references.
func (r Reference[D]) ID() ID {
	return r.id
}

// Data returns the inline payload and whether the reference carries one.
func (r Reference[D]) Data() (D, bool) {
	return r.data, r.kind == RefInline || r.kind == RefByIDOrCreate
}

func (r Reference[D]) String() string {
	if r.id.IsZero() {
		return r.kind.String()
	}
	return fmt.Sprintf("%s(%s)", r.kind, r.id)
}
