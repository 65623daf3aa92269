// Package notes extracts and serializes COBRA-style KEY: VALUE annotations
// kept as XHTML paragraphs inside SBML notes elements.
package notes

import "github.com/beevik/etree"

// XHTMLNamespace is the namespace attached to body elements generated when
// writing notes content. It is never required for reading.
const XHTMLNamespace = "http://www.w3.org/1999/xhtml"

// NotesHolder is the read side of an element carrying optional notes markup.
type NotesHolder interface {
	HasNotes() bool
	Notes() *etree.Element
}

// NotesEditor extends NotesHolder with mutation. AppendNotes receives a
// serialized markup fragment and may reject it when the markup is malformed.
type NotesEditor interface {
	NotesHolder
	UnsetNotes()
	AppendNotes(markup string) error
}
