package sbml

import (
	"github.com/beevik/etree"
)

// Type definitions for the subset of SBML structures the program works
// with. Every entity keeps a handle to its element in the source document
// so notes edits happen in place and the rest of the file survives a
// round trip untouched.

// Document is a parsed SBML file.
type Document struct {
	Level   int
	Version int
	Model   *Model

	doc *etree.Document
}

// SBase carries the attributes and notes shared by all SBML elements.
type SBase struct {
	ID     string
	Name   string
	MetaID string

	el *etree.Element
}

// Model mirrors the model element with its entity lists.
type Model struct {
	SBase
	Compartments []*Compartment
	Species      []*Species
	Reactions    []*Reaction
	Parameters   []*Parameter
}

// Compartment corresponds to a listOfCompartments entry.
type Compartment struct {
	SBase
	Size string
}

// Species corresponds to a listOfSpecies entry.
type Species struct {
	SBase
	Compartment       string
	BoundaryCondition bool
}

// Reaction corresponds to a listOfReactions entry.
type Reaction struct {
	SBase
	Reversible bool
}

// Parameter corresponds to a listOfParameters entry.
type Parameter struct {
	SBase
	Value string
}

// ElementKind names the kind of a notes-carrying element.
type ElementKind string

const (
	KindModel       ElementKind = "model"
	KindCompartment ElementKind = "compartment"
	KindSpecies     ElementKind = "species"
	KindReaction    ElementKind = "reaction"
	KindParameter   ElementKind = "parameter"
)

// Element pairs an SBase with its kind for generic traversal.
type Element struct {
	Kind ElementKind
	*SBase
}

// Elements returns the model itself followed by all entities in document
// order.
func (m *Model) Elements() []Element {
	els := []Element{{KindModel, &m.SBase}}
	for _, c := range m.Compartments {
		els = append(els, Element{KindCompartment, &c.SBase})
	}
	for _, s := range m.Species {
		els = append(els, Element{KindSpecies, &s.SBase})
	}
	for _, r := range m.Reactions {
		els = append(els, Element{KindReaction, &r.SBase})
	}
	for _, p := range m.Parameters {
		els = append(els, Element{KindParameter, &p.SBase})
	}
	return els
}

// FindElement locates an entity by its id attribute. An empty id addresses
// the model itself. Returns nil when nothing matches.
func (m *Model) FindElement(id string) *Element {
	if len(id) == 0 {
		return &Element{KindModel, &m.SBase}
	}
	for _, el := range m.Elements() {
		if el.ID == id {
			return &el
		}
	}
	return nil
}
