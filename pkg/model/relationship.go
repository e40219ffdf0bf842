package model

// DefaultRelationshipDescription is substituted when a relationship is
// created with an empty description, keeping exported relation lines
// readable.
const DefaultRelationshipDescription = "Uses"

// Relationship is a directed, described edge between two elements of
// the same diagram. Technology is an optional protocol or medium
// annotation ("HTTPS", "JDBC"); empty means unset and the exporters
// omit the argument.
//
// Source and target must resolve to live elements; [Diagram] enforces
// this at creation and cascades deletes (see [Diagram.RemoveElement]).
// Self-loops (SourceID == TargetID) are representable and exported as
// ordinary relation lines.
type Relationship struct {
	ID          ID
	SourceID    ID
	TargetID    ID
	Description string
	Technology  string
}
