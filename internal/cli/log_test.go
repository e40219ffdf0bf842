package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)

	p := newProgress(logger)
	p.done("Exported 3 format(s)")

	out := buf.String()
	if !strings.Contains(out, "Exported 3 format(s)") {
		t.Errorf("output missing message: %q", out)
	}
	// The elapsed duration is appended in parentheses.
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("output missing elapsed time: %q", out)
	}
}
