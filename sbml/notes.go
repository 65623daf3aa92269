package sbml

import (
	"fmt"

	"github.com/beevik/etree"
)

// Notes accessors mirroring the usual SBML library contract: notes hold one
// markup fragment, appends with matching body wrappers merge into the
// existing body instead of stacking wrappers.

// HasNotes reports whether the element carries a notes child.
func (s *SBase) HasNotes() bool {
	return s.Notes() != nil
}

// Notes returns the notes element or nil when absent.
func (s *SBase) Notes() *etree.Element {
	if s.el == nil {
		return nil
	}
	for _, child := range s.el.ChildElements() {
		if child.Tag == "notes" {
			return child
		}
	}
	return nil
}

// UnsetNotes removes the notes child if present.
func (s *SBase) UnsetNotes() {
	if notes := s.Notes(); notes != nil {
		s.el.RemoveChild(notes)
	}
}

// AppendNotes parses the given markup fragment and appends it to the notes
// of the element, creating the notes child when needed. When both the
// existing notes and the fragment are wrapped in a body element the body
// children are merged, keeping a single body. Malformed markup is rejected.
func (s *SBase) AppendNotes(markup string) error {
	if s.el == nil {
		return fmt.Errorf("element is not attached to a document")
	}

	frag := etree.NewDocument()
	if err := frag.ReadFromString(markup); err != nil {
		return fmt.Errorf("malformed notes markup: %w", err)
	}
	root := frag.Root()
	if root == nil {
		return fmt.Errorf("empty notes markup")
	}

	notes := s.Notes()
	if notes == nil {
		notes = s.el.CreateElement("notes")
	}

	if root.Tag == "body" {
		if body := firstChildElement(notes, "body"); body != nil {
			for _, child := range root.ChildElements() {
				body.AddChild(child.Copy())
			}
			return nil
		}
	}
	notes.AddChild(root.Copy())
	return nil
}

func firstChildElement(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}
