package notes

import (
	"fmt"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// WriteFields replaces the notes of sb with one paragraph per field, in
// FieldMap iteration order. Existing notes content is removed first.
func WriteFields(sb NotesEditor, fields *FieldMap, log *zap.Logger) error {
	sb.UnsetNotes()
	return AppendFields(sb, fields, log)
}

// AppendFields appends one paragraph per field to the notes of sb without
// touching existing content. Each pair goes out as an independent append so
// a later extraction recovers the same fields. A pair the underlying markup
// layer rejects is logged and skipped, the remaining pairs are still
// written; the returned error aggregates all per-pair failures.
func AppendFields(sb NotesEditor, fields *FieldMap, log *zap.Logger) error {
	var errs error
	fields.Each(func(key, value string) {
		markup := fmt.Sprintf("<body xmlns=%q><p>%s: %s</p></body>", XHTMLNamespace, key, value)
		if err := sb.AppendNotes(markup); err != nil {
			log.Error("Unable to append notes field", zap.String("key", key), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("field %q: %w", key, err))
		}
	})
	return errs
}
