package sbml

import (
	"fmt"
	"io"
	"os"
)

// WriteTo serializes the document, indented, to w.
func (d *Document) WriteTo(w io.Writer) error {
	d.doc.Indent(2)
	if _, err := d.doc.WriteTo(w); err != nil {
		return fmt.Errorf("unable to serialize SBML document: %w", err)
	}
	return nil
}

// SaveFile writes the document to the given path, overwriting it.
func (d *Document) SaveFile(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create SBML file: %w", err)
	}
	defer file.Close()

	if err := d.WriteTo(file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("unable to write SBML file: %w", err)
	}
	return nil
}
