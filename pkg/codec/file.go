package codec

import (
	"fmt"
	"io"
	"os"

	"github.com/ianwalkeruk/c2draw/pkg/model"
)

// Write encodes a diagram and writes the document to w.
func Write(d *model.Diagram, w io.Writer) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

// Read decodes a .c4d document from r. It returns the same validation
// errors as [Unmarshal]. Read does not close r.
func Read(r io.Reader) (*model.Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// WriteFile writes a diagram to a .c4d file at path.
// The file is created with 0644 permissions.
func WriteFile(d *model.Diagram, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return Write(d, f)
}

// ReadFile reads and decodes the .c4d file at path.
func ReadFile(path string) (*model.Diagram, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}
