// Package codec maps diagrams to and from the versioned .c4d JSON
// document format.
//
// The format carries an explicit version field so older tools can
// refuse documents written by newer ones, and it is decoded strictly:
// structural problems and dangling relationship endpoints fail the
// load instead of silently truncating the diagram. Unknown extra
// fields are ignored for forward compatibility with minor additions.
package codec

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// FormatVersion is the document version written by this codec.
const FormatVersion = "1.0"

var (
	// ErrUnsupportedVersion is returned when a document's major version
	// is newer than this codec understands.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrMalformed is returned when structural fields are missing or of
	// the wrong shape.
	ErrMalformed = errors.New("malformed document")

	// ErrDanglingRelationship is returned when a relationship references
	// an element absent from the document.
	ErrDanglingRelationship = errors.New("dangling relationship")
)

// Document type discriminators and diagram type names used on the wire.
const (
	typePerson         = "Person"
	typeSoftwareSystem = "SoftwareSystem"
	typeContainer      = "Container"

	diagramSystemContext = "SystemContext"
	diagramContainer     = "Container"
)

type document struct {
	Version       string               `json:"version"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	DiagramType   string               `json:"diagram_type"`
	Elements      []elementRecord      `json:"elements"`
	Relationships []relationshipRecord `json:"relationships"`
}

type elementRecord struct {
	ID             string  `json:"id"`
	Type           string  `json:"type"`
	Name           string  `json:"name"`
	Description    string  `json:"description,omitempty"`
	External       bool    `json:"is_external,omitempty"`
	ContainerType  string  `json:"container_type,omitempty"`
	ContainerLabel string  `json:"container_label,omitempty"`
	Technology     string  `json:"technology,omitempty"`
	X              float64 `json:"x"`
	Y              float64 `json:"y"`
	Width          float64 `json:"width"`
	Height         float64 `json:"height"`
}

type relationshipRecord struct {
	ID          string `json:"id"`
	SourceID    string `json:"source_id"`
	TargetID    string `json:"target_id"`
	Description string `json:"description"`
	Technology  string `json:"technology,omitempty"`
}

var containerTypeNames = map[model.ContainerKind]string{
	model.ContainerWebApplication: "WebApplication",
	model.ContainerMobileApp:      "MobileApp",
	model.ContainerDatabase:       "Database",
	model.ContainerMicroservice:   "Microservice",
	model.ContainerQueue:          "Queue",
	model.ContainerOther:          "Other",
}

var containerTypesByName = map[string]model.ContainerKind{
	"WebApplication": model.ContainerWebApplication,
	"MobileApp":      model.ContainerMobileApp,
	"Database":       model.ContainerDatabase,
	"Microservice":   model.ContainerMicroservice,
	"Queue":          model.ContainerQueue,
	"Other":          model.ContainerOther,
}

// Marshal encodes a diagram as a pretty-printed .c4d document.
// Elements keep their insertion order, so repeated saves of the same
// diagram are byte-identical.
func Marshal(d *model.Diagram) ([]byte, error) {
	doc := toDocument(d)
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	return append(data, '\n'), nil
}

// Unmarshal decodes a .c4d document and re-validates its invariants.
// It fails with ErrUnsupportedVersion, ErrMalformed, or
// ErrDanglingRelationship; a partially loaded diagram is never
// returned.
func Unmarshal(data []byte) (*model.Diagram, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return fromDocument(doc)
}

func toDocument(d *model.Diagram) document {
	doc := document{
		Version:       FormatVersion,
		Name:          d.Name,
		Description:   d.Description,
		DiagramType:   diagramSystemContext,
		Elements:      []elementRecord{},
		Relationships: []relationshipRecord{},
	}
	if d.Type == model.Container {
		doc.DiagramType = diagramContainer
	}

	for _, el := range d.Elements() {
		rec := elementRecord{
			ID:          el.ID.String(),
			Name:        el.Name,
			Description: el.Description,
			X:           el.Position.X,
			Y:           el.Position.Y,
			Width:       el.Size.Width,
			Height:      el.Size.Height,
		}
		switch el.Kind {
		case model.KindPerson:
			rec.Type = typePerson
			rec.External = el.External
		case model.KindSoftwareSystem:
			rec.Type = typeSoftwareSystem
			rec.External = el.External
		case model.KindContainer:
			rec.Type = typeContainer
			rec.ContainerType = containerTypeNames[el.ContainerType.Kind]
			rec.ContainerLabel = el.ContainerType.Label
			rec.Technology = el.Technology
		}
		doc.Elements = append(doc.Elements, rec)
	}

	for _, r := range d.Relationships() {
		doc.Relationships = append(doc.Relationships, relationshipRecord{
			ID:          r.ID.String(),
			SourceID:    r.SourceID.String(),
			TargetID:    r.TargetID.String(),
			Description: r.Description,
			Technology:  r.Technology,
		})
	}

	return doc
}

func fromDocument(doc document) (*model.Diagram, error) {
	if err := checkVersion(doc.Version); err != nil {
		return nil, err
	}

	var typ model.DiagramType
	switch doc.DiagramType {
	case diagramSystemContext:
		typ = model.SystemContext
	case diagramContainer:
		typ = model.Container
	default:
		return nil, fmt.Errorf("%w: unknown diagram_type %q", ErrMalformed, doc.DiagramType)
	}

	d := model.New(doc.Name, doc.Description, typ)

	for _, rec := range doc.Elements {
		el, err := decodeElement(rec)
		if err != nil {
			return nil, err
		}
		if err := d.PutElement(el); err != nil {
			return nil, fmt.Errorf("%w: element %s: %v", ErrMalformed, rec.ID, err)
		}
	}

	for _, rec := range doc.Relationships {
		r, err := decodeRelationship(rec)
		if err != nil {
			return nil, err
		}
		if err := d.PutRelationship(r); err != nil {
			if errors.Is(err, model.ErrUnknownElement) {
				return nil, fmt.Errorf("%w: relationship %s references a missing element", ErrDanglingRelationship, rec.ID)
			}
			return nil, fmt.Errorf("%w: relationship %s: %v", ErrMalformed, rec.ID, err)
		}
	}

	return d, nil
}

func decodeElement(rec elementRecord) (model.Element, error) {
	id, err := model.ParseID(rec.ID)
	if err != nil {
		return model.Element{}, fmt.Errorf("%w: element ID %q: %v", ErrMalformed, rec.ID, err)
	}

	el := model.Element{
		ID:          id,
		Name:        rec.Name,
		Description: rec.Description,
		Position:    model.Position{X: rec.X, Y: rec.Y},
		Size:        model.Size{Width: rec.Width, Height: rec.Height},
	}

	switch rec.Type {
	case typePerson:
		el.Kind = model.KindPerson
		el.External = rec.External
	case typeSoftwareSystem:
		el.Kind = model.KindSoftwareSystem
		el.External = rec.External
	case typeContainer:
		el.Kind = model.KindContainer
		el.Technology = rec.Technology
		kind, ok := containerTypesByName[rec.ContainerType]
		if !ok {
			return model.Element{}, fmt.Errorf("%w: element %s: unknown container_type %q", ErrMalformed, rec.ID, rec.ContainerType)
		}
		el.ContainerType = model.ContainerType{Kind: kind}
		if kind == model.ContainerOther {
			el.ContainerType.Label = rec.ContainerLabel
		}
	default:
		return model.Element{}, fmt.Errorf("%w: element %s: unknown type %q", ErrMalformed, rec.ID, rec.Type)
	}

	return el, nil
}

func decodeRelationship(rec relationshipRecord) (model.Relationship, error) {
	id, err := model.ParseID(rec.ID)
	if err != nil {
		return model.Relationship{}, fmt.Errorf("%w: relationship ID %q: %v", ErrMalformed, rec.ID, err)
	}
	src, err := model.ParseID(rec.SourceID)
	if err != nil {
		return model.Relationship{}, fmt.Errorf("%w: relationship %s: source_id %q: %v", ErrMalformed, rec.ID, rec.SourceID, err)
	}
	dst, err := model.ParseID(rec.TargetID)
	if err != nil {
		return model.Relationship{}, fmt.Errorf("%w: relationship %s: target_id %q: %v", ErrMalformed, rec.ID, rec.TargetID, err)
	}
	return model.Relationship{
		ID:          id,
		SourceID:    src,
		TargetID:    dst,
		Description: rec.Description,
		Technology:  rec.Technology,
	}, nil
}

// checkVersion accepts documents whose major version is at most ours.
// A missing version is treated as the current format, matching the
// original file format's lenient default.
func checkVersion(v string) error {
	if v == "" {
		return nil
	}
	major, ok := majorOf(v)
	if !ok {
		return fmt.Errorf("%w: bad version %q", ErrMalformed, v)
	}
	supported, _ := majorOf(FormatVersion)
	if major > supported {
		return fmt.Errorf("%w: %s (this build reads up to %s)", ErrUnsupportedVersion, v, FormatVersion)
	}
	return nil
}

func majorOf(v string) (int, bool) {
	head, _, _ := strings.Cut(v, ".")
	n, err := strconv.Atoi(head)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
