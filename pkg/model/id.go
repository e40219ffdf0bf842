package model

import "github.com/google/uuid"

// ID uniquely identifies an element or relationship within a process.
// IDs are 128-bit random values: no coordination is needed between
// diagrams or files, and values are never reused.
type ID = uuid.UUID

// NewID returns a fresh random identifier.
func NewID() ID { return uuid.New() }

// ParseID parses the canonical text form produced by [ID.String].
func ParseID(s string) (ID, error) { return uuid.Parse(s) }

// Alias returns a fixed-width token derived losslessly from id that is
// legal in both the PlantUML and Mermaid C4 grammars: letters, digits
// and underscores only, never starting with a digit. The same ID always
// yields the same alias, so exports are stable across invocations.
func Alias(id ID) string {
	buf := [37]byte{'e', 'l', 'e', 'm', '_'}
	n := 5
	for _, b := range id.String() {
		if b == '-' {
			continue
		}
		buf[n] = byte(b)
		n++
	}
	return string(buf[:n])
}
