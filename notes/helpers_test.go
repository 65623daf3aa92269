package notes

import (
	"fmt"
	"strings"
	"testing"

	"github.com/beevik/etree"
)

// stubElement is a minimal notes container for tests. Appends merge body
// wrappers into a single body the way SBML libraries do.
type stubElement struct {
	notes *etree.Element
}

func (e *stubElement) HasNotes() bool        { return e.notes != nil }
func (e *stubElement) Notes() *etree.Element { return e.notes }
func (e *stubElement) UnsetNotes()           { e.notes = nil }

func (e *stubElement) AppendNotes(markup string) error {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(markup); err != nil {
		return err
	}
	root := doc.Root()
	if root == nil {
		return fmt.Errorf("empty notes markup")
	}
	if e.notes == nil {
		e.notes = etree.NewElement("notes")
	}
	if root.Tag == "body" {
		for _, child := range e.notes.ChildElements() {
			if child.Tag == "body" {
				for _, item := range root.ChildElements() {
					child.AddChild(item.Copy())
				}
				return nil
			}
		}
	}
	e.notes.AddChild(root.Copy())
	return nil
}

// mustNotes parses a notes element literal.
func mustNotes(t *testing.T, xml string) *stubElement {
	t.Helper()

	doc := etree.NewDocument()
	if err := doc.ReadFromString(xml); err != nil {
		t.Fatalf("read xml: %v", err)
	}
	if doc.Root() == nil {
		t.Fatalf("xml has no root element")
	}
	return &stubElement{notes: doc.Root()}
}

// failingEditor rejects appends whose markup contains a marker string.
type failingEditor struct {
	*stubElement
	failOn string
}

func (e *failingEditor) AppendNotes(markup string) error {
	if len(e.failOn) > 0 && strings.Contains(markup, e.failOn) {
		return fmt.Errorf("rejected markup")
	}
	return e.stubElement.AppendNotes(markup)
}
