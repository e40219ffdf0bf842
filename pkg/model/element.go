package model

// Kind distinguishes the element variants of a C4 diagram.
// The set is closed: exporters switch exhaustively over it, so adding a
// variant means touching every exporter.
type Kind int

const (
	// KindPerson represents a human actor (C1).
	KindPerson Kind = iota
	// KindSoftwareSystem represents a software system (C1).
	KindSoftwareSystem
	// KindContainer represents a deployable unit inside a system (C2).
	KindContainer
)

// String returns the display name for the kind.
func (k Kind) String() string {
	switch k {
	case KindPerson:
		return "Person"
	case KindSoftwareSystem:
		return "Software System"
	case KindContainer:
		return "Container"
	}
	return "Unknown"
}

// ContainerKind enumerates the recognized container categories.
// ContainerOther carries a free-text label via [ContainerType.Label].
type ContainerKind int

const (
	ContainerWebApplication ContainerKind = iota
	ContainerMobileApp
	ContainerDatabase
	ContainerMicroservice
	ContainerQueue
	ContainerOther
)

// ContainerType is the category of a container element. For
// ContainerOther the Label field holds the user-supplied category name;
// for all other kinds Label is empty.
type ContainerType struct {
	Kind  ContainerKind
	Label string
}

// OtherContainer returns a free-text container type.
func OtherContainer(label string) ContainerType {
	return ContainerType{Kind: ContainerOther, Label: label}
}

// String returns the display name for the container type.
func (t ContainerType) String() string {
	switch t.Kind {
	case ContainerWebApplication:
		return "Web Application"
	case ContainerMobileApp:
		return "Mobile App"
	case ContainerDatabase:
		return "Database"
	case ContainerMicroservice:
		return "Microservice"
	case ContainerQueue:
		return "Message Queue"
	}
	return t.Label
}

// Position is a canvas coordinate. Purely presentational: it never
// affects export semantics or identity.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a canvas extent, presentational like [Position].
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Element is a node on the diagram canvas. ID and Kind are fixed at
// creation; changing an element's kind means delete and recreate, since
// exporters key their macro choice off the variant.
//
// Name, Description and External apply to every kind. ContainerType and
// Technology are meaningful only when Kind is KindContainer; External
// is always false for containers.
type Element struct {
	ID            ID
	Kind          Kind
	Name          string
	Description   string
	External      bool
	ContainerType ContainerType
	Technology    string
	Position      Position
	Size          Size
}

// DefaultSize returns the initial canvas extent for a kind.
func DefaultSize(k Kind) Size {
	if k == KindPerson {
		return Size{Width: 120, Height: 80}
	}
	return Size{Width: 160, Height: 100}
}

// NewPerson builds a person element at pos. External marks actors
// outside the system boundary.
func NewPerson(name, description string, external bool, pos Position) Element {
	return Element{
		ID:          NewID(),
		Kind:        KindPerson,
		Name:        name,
		Description: description,
		External:    external,
		Position:    pos,
		Size:        DefaultSize(KindPerson),
	}
}

// NewSoftwareSystem builds a software system element at pos.
func NewSoftwareSystem(name, description string, external bool, pos Position) Element {
	return Element{
		ID:          NewID(),
		Kind:        KindSoftwareSystem,
		Name:        name,
		Description: description,
		External:    external,
		Position:    pos,
		Size:        DefaultSize(KindSoftwareSystem),
	}
}

// NewContainer builds a container element at pos. Technology is a
// free-text annotation such as "React" or "PostgreSQL" and may be empty.
func NewContainer(name, description string, ct ContainerType, technology string, pos Position) Element {
	return Element{
		ID:            NewID(),
		Kind:          KindContainer,
		Name:          name,
		Description:   description,
		ContainerType: ct,
		Technology:    technology,
		Position:      pos,
		Size:          DefaultSize(KindContainer),
	}
}
