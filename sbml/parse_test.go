package sbml

import (
	"testing"

	"github.com/beevik/etree"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestParseDocumentFromSample(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), log)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if doc.Level != 3 || doc.Version != 1 {
		t.Fatalf("expected level 3 version 1, got %d/%d", doc.Level, doc.Version)
	}
	if doc.Model.ID != "toy_model" {
		t.Fatalf("model id mismatch: %q", doc.Model.ID)
	}
	if len(doc.Model.Compartments) != 1 {
		t.Fatalf("expected 1 compartment, got %d", len(doc.Model.Compartments))
	}
	if len(doc.Model.Species) != 2 {
		t.Fatalf("expected 2 species, got %d", len(doc.Model.Species))
	}
	if len(doc.Model.Reactions) != 1 {
		t.Fatalf("expected 1 reaction, got %d", len(doc.Model.Reactions))
	}
	if len(doc.Model.Parameters) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(doc.Model.Parameters))
	}

	species := doc.Model.Species[0]
	if species.ID != "M_h4n_c" || species.Compartment != "c" || species.BoundaryCondition {
		t.Fatalf("unexpected first species: %+v", species)
	}
	if !species.HasNotes() {
		t.Fatal("first species must carry notes")
	}
	if doc.Model.Species[1].HasNotes() {
		t.Fatal("second species must not carry notes")
	}
	if doc.Model.Reactions[0].Reversible {
		t.Fatal("reaction must be irreversible")
	}
}

func TestParseDocumentRejectsForeignRoot(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc := etree.NewDocument()
	if err := doc.ReadFromString(`<notsbml/>`); err != nil {
		t.Fatalf("read xml: %v", err)
	}
	if _, err := ParseDocument(doc, log); err == nil {
		t.Fatal("expected error for foreign root element")
	}
}

func TestFindElement(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	doc, err := ParseDocument(loadSampleDocument(t), log)
	if err != nil {
		t.Fatalf("ParseDocument failed: %v", err)
	}

	if el := doc.Model.FindElement(""); el == nil || el.Kind != KindModel {
		t.Fatalf("empty id must address the model, got %+v", el)
	}
	if el := doc.Model.FindElement("R_GLNS"); el == nil || el.Kind != KindReaction {
		t.Fatalf("reaction lookup failed, got %+v", el)
	}
	if el := doc.Model.FindElement("no_such_id"); el != nil {
		t.Fatalf("expected nil for unknown id, got %+v", el)
	}

	if els := doc.Model.Elements(); len(els) != 6 {
		t.Fatalf("expected 6 traversable elements, got %d", len(els))
	}
}
