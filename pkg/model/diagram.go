// Package model holds the diagram data model: elements, relationships,
// and the Diagram aggregate that owns them.
//
// A Diagram is a plain in-memory value with single-writer access. All
// mutation goes through its methods, which maintain referential
// integrity: no relationship may outlive either of its endpoints.
// Exporters and codecs only read through [Diagram.Elements],
// [Diagram.Relationships] and [Diagram.Element].
//
// Diagram is not safe for concurrent use without external
// synchronization; hosts must not mutate it while an export or encode
// pass is reading it.
package model

import "errors"

var (
	// ErrUnknownElement is returned when an operation references an
	// element ID not present in the diagram.
	ErrUnknownElement = errors.New("unknown element")

	// ErrUnknownRelationship is returned when an operation references a
	// relationship ID not present in the diagram.
	ErrUnknownRelationship = errors.New("unknown relationship")

	// ErrInvalidID is returned by [Diagram.PutElement] and
	// [Diagram.PutRelationship] when the ID is the zero value.
	ErrInvalidID = errors.New("ID must not be zero")

	// ErrDuplicateID is returned by [Diagram.PutElement] and
	// [Diagram.PutRelationship] when the ID is already present.
	ErrDuplicateID = errors.New("duplicate ID")
)

// DiagramType selects which C4 view a diagram represents and which
// export macro set applies.
type DiagramType int

const (
	// SystemContext is the C1 view: systems and their actors.
	SystemContext DiagramType = iota
	// Container is the C2 view: deployable units inside one system.
	Container
)

// String returns the display name for the diagram type.
func (t DiagramType) String() string {
	if t == Container {
		return "Container"
	}
	return "System Context"
}

// SupportsContainers reports whether container elements are expected in
// this view.
func (t DiagramType) SupportsContainers() bool { return t == Container }

// Diagram owns the elements and relationships of one C4 view.
// Element insertion order is preserved and determines export order;
// relationships keep their insertion order as well.
//
// The zero value is not usable - use New.
type Diagram struct {
	Name        string
	Description string
	Type        DiagramType

	elements map[ID]*Element
	order    []ID
	rels     []Relationship
}

// New creates an empty diagram.
func New(name, description string, typ DiagramType) *Diagram {
	return &Diagram{
		Name:        name,
		Description: description,
		Type:        typ,
		elements:    make(map[ID]*Element),
	}
}

// AddElement inserts el, allocating a fresh ID (any ID already set on
// el is replaced) and returning it. It always succeeds.
func (d *Diagram) AddElement(el Element) ID {
	el.ID = NewID()
	_ = d.PutElement(el) // fresh ID cannot collide
	return el.ID
}

// PutElement inserts el under its existing ID, preserving it. Used when
// restoring persisted diagrams. Returns ErrInvalidID for a zero ID and
// ErrDuplicateID when the ID is already taken.
func (d *Diagram) PutElement(el Element) error {
	if el.ID == (ID{}) {
		return ErrInvalidID
	}
	if _, exists := d.elements[el.ID]; exists {
		return ErrDuplicateID
	}
	e := el
	d.elements[e.ID] = &e
	d.order = append(d.order, e.ID)
	return nil
}

// RemoveElement deletes the element with the given ID and every
// relationship touching it. Removing an absent ID is a no-op.
func (d *Diagram) RemoveElement(id ID) {
	if _, ok := d.elements[id]; !ok {
		return
	}
	delete(d.elements, id)
	for i, oid := range d.order {
		if oid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	kept := d.rels[:0]
	for _, r := range d.rels {
		if r.SourceID != id && r.TargetID != id {
			kept = append(kept, r)
		}
	}
	d.rels = kept
}

// AddRelationship appends a directed edge from source to target and
// returns its ID. An empty description defaults to
// [DefaultRelationshipDescription]. Returns ErrUnknownElement if either
// endpoint is not present.
func (d *Diagram) AddRelationship(source, target ID, description, technology string) (ID, error) {
	if _, ok := d.elements[source]; !ok {
		return ID{}, ErrUnknownElement
	}
	if _, ok := d.elements[target]; !ok {
		return ID{}, ErrUnknownElement
	}
	if description == "" {
		description = DefaultRelationshipDescription
	}
	r := Relationship{
		ID:          NewID(),
		SourceID:    source,
		TargetID:    target,
		Description: description,
		Technology:  technology,
	}
	d.rels = append(d.rels, r)
	return r.ID, nil
}

// PutRelationship appends r verbatim, preserving its ID. Used when
// restoring persisted diagrams. Returns ErrInvalidID for a zero ID,
// ErrUnknownElement when an endpoint is not present, and ErrDuplicateID
// when the ID is already taken.
func (d *Diagram) PutRelationship(r Relationship) error {
	if r.ID == (ID{}) {
		return ErrInvalidID
	}
	if _, ok := d.elements[r.SourceID]; !ok {
		return ErrUnknownElement
	}
	if _, ok := d.elements[r.TargetID]; !ok {
		return ErrUnknownElement
	}
	for _, have := range d.rels {
		if have.ID == r.ID {
			return ErrDuplicateID
		}
	}
	d.rels = append(d.rels, r)
	return nil
}

// RemoveRelationship deletes the relationship with the given ID.
// Removing an absent ID is a no-op.
func (d *Diagram) RemoveRelationship(id ID) {
	for i, r := range d.rels {
		if r.ID == id {
			d.rels = append(d.rels[:i], d.rels[i+1:]...)
			return
		}
	}
}

// UpdateElement applies fn to the element with the given ID. The
// element's ID and Kind are restored afterwards, so mutators cannot
// change identity or variant. Returns ErrUnknownElement if absent.
func (d *Diagram) UpdateElement(id ID, fn func(*Element)) error {
	el, ok := d.elements[id]
	if !ok {
		return ErrUnknownElement
	}
	keepID, keepKind := el.ID, el.Kind
	fn(el)
	el.ID, el.Kind = keepID, keepKind
	return nil
}

// UpdateRelationship applies fn to the relationship with the given ID.
// The relationship's ID is restored afterwards. Returns
// ErrUnknownRelationship if absent.
func (d *Diagram) UpdateRelationship(id ID, fn func(*Relationship)) error {
	for i := range d.rels {
		if d.rels[i].ID == id {
			fn(&d.rels[i])
			d.rels[i].ID = id
			return nil
		}
	}
	return ErrUnknownRelationship
}

// Element returns the element with the given ID, or false if absent.
// The returned value is a copy; mutate through [Diagram.UpdateElement].
func (d *Diagram) Element(id ID) (Element, bool) {
	el, ok := d.elements[id]
	if !ok {
		return Element{}, false
	}
	return *el, true
}

// Elements returns the elements in insertion order. The slice is a
// fresh copy on every call.
func (d *Diagram) Elements() []Element {
	out := make([]Element, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, *d.elements[id])
	}
	return out
}

// Relationships returns the relationships in insertion order as a
// fresh copy.
func (d *Diagram) Relationships() []Relationship {
	out := make([]Relationship, len(d.rels))
	copy(out, d.rels)
	return out
}

// RelationshipsFrom returns the relationships whose source is id.
func (d *Diagram) RelationshipsFrom(id ID) []Relationship {
	var out []Relationship
	for _, r := range d.rels {
		if r.SourceID == id {
			out = append(out, r)
		}
	}
	return out
}

// RelationshipsTo returns the relationships whose target is id.
func (d *Diagram) RelationshipsTo(id ID) []Relationship {
	var out []Relationship
	for _, r := range d.rels {
		if r.TargetID == id {
			out = append(out, r)
		}
	}
	return out
}

// RelationshipsConnectedTo returns every relationship touching id as
// source or target.
func (d *Diagram) RelationshipsConnectedTo(id ID) []Relationship {
	var out []Relationship
	for _, r := range d.rels {
		if r.SourceID == id || r.TargetID == id {
			out = append(out, r)
		}
	}
	return out
}
