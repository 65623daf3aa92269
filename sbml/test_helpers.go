package sbml

import (
	"os"
	"testing"

	"github.com/beevik/etree"
)

const sampleSBML = "testdata/toy_model.xml"

func loadSampleDocument(t *testing.T) *etree.Document {
	t.Helper()

	file, err := os.Open(sampleSBML)
	if err != nil {
		t.Fatalf("open sample file: %v", err)
	}
	t.Cleanup(func() { _ = file.Close() })

	doc := etree.NewDocument()
	doc.ReadSettings = etree.ReadSettings{
		ValidateInput: false,
		Permissive:    true,
	}

	if _, err := doc.ReadFrom(file); err != nil {
		t.Fatalf("parse sample file: %v", err)
	}
	return doc
}
