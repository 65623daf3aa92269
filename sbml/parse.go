package sbml

import (
	"fmt"
	"os"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// XML parsing functions for SBML documents. We only type the elements the
// program needs (model and its entity lists); everything else is left alone
// in the underlying DOM so writing the document back preserves it.

// LoadFile reads and parses an SBML file.
func LoadFile(path string, log *zap.Logger) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open SBML file: %w", err)
	}
	defer file.Close()

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		ValidateInput: false,
		Permissive:    true,
	}
	if _, err := doc.ReadFrom(file); err != nil {
		return nil, fmt.Errorf("unable to parse SBML file: %w", err)
	}
	return ParseDocument(doc, log)
}

// ParseDocument walks the etree DOM and constructs the typed representation.
func ParseDocument(doc *etree.Document, log *zap.Logger) (*Document, error) {
	if doc == nil {
		return nil, fmt.Errorf("nil document")
	}

	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element")
	}
	if root.Tag != "sbml" {
		return nil, fmt.Errorf("unexpected root element %q", root.Tag)
	}

	d := &Document{doc: doc}
	if v, err := strconv.Atoi(root.SelectAttrValue("level", "")); err == nil {
		d.Level = v
	}
	if v, err := strconv.Atoi(root.SelectAttrValue("version", "")); err == nil {
		d.Version = v
	}

	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "model":
			d.Model = parseModel(child, log)
		case "notes", "annotation":
			// document level notes are not typed, leave them in the DOM
		default:
			log.Warn("Unexpected tag in sbml, ignoring", zap.String("parent", root.Tag), zap.String("tag", child.Tag))
		}
	}
	if d.Model == nil {
		return nil, fmt.Errorf("document has no model element")
	}
	return d, nil
}

func parseModel(el *etree.Element, log *zap.Logger) *Model {
	model := &Model{SBase: parseSBase(el)}
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "listOfCompartments":
			for _, c := range child.ChildElements() {
				if c.Tag != "compartment" {
					log.Warn("Unexpected tag in listOfCompartments, ignoring", zap.String("tag", c.Tag))
					continue
				}
				model.Compartments = append(model.Compartments, &Compartment{
					SBase: parseSBase(c),
					Size:  c.SelectAttrValue("size", ""),
				})
			}
		case "listOfSpecies":
			for _, s := range child.ChildElements() {
				if s.Tag != "species" {
					log.Warn("Unexpected tag in listOfSpecies, ignoring", zap.String("tag", s.Tag))
					continue
				}
				model.Species = append(model.Species, &Species{
					SBase:             parseSBase(s),
					Compartment:       s.SelectAttrValue("compartment", ""),
					BoundaryCondition: s.SelectAttrValue("boundaryCondition", "") == "true",
				})
			}
		case "listOfReactions":
			for _, r := range child.ChildElements() {
				if r.Tag != "reaction" {
					log.Warn("Unexpected tag in listOfReactions, ignoring", zap.String("tag", r.Tag))
					continue
				}
				model.Reactions = append(model.Reactions, &Reaction{
					SBase:      parseSBase(r),
					Reversible: r.SelectAttrValue("reversible", "true") == "true",
				})
			}
		case "listOfParameters":
			for _, p := range child.ChildElements() {
				if p.Tag != "parameter" {
					log.Warn("Unexpected tag in listOfParameters, ignoring", zap.String("tag", p.Tag))
					continue
				}
				model.Parameters = append(model.Parameters, &Parameter{
					SBase: parseSBase(p),
					Value: p.SelectAttrValue("value", ""),
				})
			}
		case "notes", "annotation":
			// handled through SBase accessors
		default:
			log.Debug("Untyped tag in model, keeping in DOM only", zap.String("tag", child.Tag))
		}
	}
	return model
}

func parseSBase(el *etree.Element) SBase {
	return SBase{
		ID:     el.SelectAttrValue("id", ""),
		Name:   el.SelectAttrValue("name", ""),
		MetaID: el.SelectAttrValue("metaid", ""),
		el:     el,
	}
}
