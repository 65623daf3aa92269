package notes

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func TestExtractFieldsKnownKeys(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	sb := mustNotes(t, `<notes><body xmlns="http://www.w3.org/1999/xhtml">
		<p>FORMULA: H4N</p>
		<p>CHARGE: 1</p>
		<p>EC Number: 123</p>
	</body></notes>`)

	fields := ExtractFields(sb, log)
	if fields.Len() != 3 {
		t.Fatalf("expected 3 fields, got %d: %v", fields.Len(), fields.Keys())
	}
	for key, want := range map[string]string{"FORMULA": "H4N", "CHARGE": "1", "EC Number": "123"} {
		if got, ok := fields.Get(key); !ok || got != want {
			t.Fatalf("field %q = %q (present %v), want %q", key, got, ok, want)
		}
	}
	if keys := fields.Keys(); keys[0] != "FORMULA" || keys[1] != "CHARGE" || keys[2] != "EC Number" {
		t.Fatalf("document order not preserved: %v", keys)
	}
}

func TestExtractFieldsIgnoresProse(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	sb := mustNotes(t, `<notes><body xmlns="http://www.w3.org/1999/xhtml">
		<p>This is an explanation: not a COBRA field.</p>
		<p>Another sentence: still not a structured key.</p>
		<p>No colon in this line at all</p>
	</body></notes>`)

	if fields := ExtractFields(sb, log); fields.Len() != 0 {
		t.Fatalf("prose lines must be ignored, got %v", fields.Keys())
	}
}

func TestExtractFieldsIdentifierHeuristic(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	sb := mustNotes(t, `<notes><body xmlns="http://www.w3.org/1999/xhtml">
		<p>GENE_ASSOCIATION: 1594.1</p>
		<p>Confidence Level: 4</p>
	</body></notes>`)

	fields := ExtractFields(sb, log)
	if got, _ := fields.Get("GENE_ASSOCIATION"); got != "1594.1" {
		t.Fatalf("GENE_ASSOCIATION = %q, want 1594.1", got)
	}
	if got, _ := fields.Get("Confidence Level"); got != "4" {
		t.Fatalf("Confidence Level = %q, want 4", got)
	}
}

func TestExtractFieldsSplitsOnFirstColon(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	sb := mustNotes(t, `<notes><body xmlns="http://www.w3.org/1999/xhtml">
		<p>NOTES: pg.196, vol. 2: see ref</p>
	</body></notes>`)

	fields := ExtractFields(sb, log)
	if got, _ := fields.Get("NOTES"); got != "pg.196, vol. 2: see ref" {
		t.Fatalf("value with colons mangled: %q", got)
	}
}

func TestExtractFieldsTrimsAndKeepsEmptyValues(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	sb := mustNotes(t, `<notes><body xmlns="http://www.w3.org/1999/xhtml">
		<p>  FORMULA  :  C6H12O6  </p>
		<p>SUBSYSTEM:</p>
	</body></notes>`)

	fields := ExtractFields(sb, log)
	if got, _ := fields.Get("FORMULA"); got != "C6H12O6" {
		t.Fatalf("whitespace around key/value not trimmed: %q", got)
	}
	if got, ok := fields.Get("SUBSYSTEM"); !ok || got != "" {
		t.Fatalf("empty value must still be recorded, got %q (present %v)", got, ok)
	}
}

func TestExtractFieldsLastWriteWins(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	sb := mustNotes(t, `<notes><body xmlns="http://www.w3.org/1999/xhtml">
		<p>CHARGE: 1</p>
		<p>FORMULA: H4N</p>
		<p>CHARGE: 2</p>
	</body></notes>`)

	fields := ExtractFields(sb, log)
	if got, _ := fields.Get("CHARGE"); got != "2" {
		t.Fatalf("later paragraph must win, got CHARGE = %q", got)
	}
	if keys := fields.Keys(); len(keys) != 2 || keys[0] != "CHARGE" {
		t.Fatalf("duplicate key must keep its original position: %v", keys)
	}
}

func TestExtractFieldsContainerFallbacks(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	tests := []struct {
		name string
		xml  string
	}{
		{"body", `<notes><body><p>FORMULA: X</p></body></notes>`},
		{"p wrapper", `<notes><p><p>FORMULA: X</p></p></notes>`},
		{"html wrapper", `<notes><html><p>FORMULA: X</p></html></notes>`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fields := ExtractFields(mustNotes(t, tc.xml), log)
			if got, _ := fields.Get("FORMULA"); got != "X" {
				t.Fatalf("extraction via %s failed: %v", tc.name, fields.Keys())
			}
		})
	}

	// a lone p wrapper is a container, not a line
	if fields := ExtractFields(mustNotes(t, `<notes><p>FORMULA: X</p></notes>`), log); fields.Len() != 0 {
		t.Fatalf("direct p child must be treated as wrapper, got %v", fields.Keys())
	}
}

func TestExtractFieldsNoNotes(t *testing.T) {
	log := zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))

	if fields := ExtractFields(&stubElement{}, log); fields.Len() != 0 {
		t.Fatalf("element without notes must yield an empty map, got %v", fields.Keys())
	}
	if fields := ExtractFields(mustNotes(t, `<notes/>`), log); fields.Len() != 0 {
		t.Fatalf("empty notes must yield an empty map, got %v", fields.Keys())
	}
}
