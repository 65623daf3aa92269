package notes

import (
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"
)

// ExtractFields reads COBRA-style fields from the notes of sb using the
// stock classifier.
func ExtractFields(sb NotesHolder, log *zap.Logger) *FieldMap {
	return defaultClassifier.ExtractFields(sb, log)
}

// ExtractFields collects every "KEY: VALUE" paragraph from the notes of sb
// into a FieldMap, later paragraphs overriding earlier ones on the same key.
// Lines without a colon and lines whose key fails classification are skipped.
// It never fails; an element without notes yields an empty map.
func (c *Classifier) ExtractFields(sb NotesHolder, log *zap.Logger) *FieldMap {
	fields := NewFieldMap()
	if !sb.HasNotes() {
		return fields
	}

	for _, p := range paragraphNodes(sb.Notes()) {
		content := strings.TrimSpace(p.Text())
		if len(content) == 0 {
			continue
		}
		colon := strings.IndexByte(content, ':')
		if colon < 0 {
			log.Debug("Ignoring notes line without colon", zap.String("content", content))
			continue
		}
		// split on the first colon only, the value may contain more
		key := strings.TrimSpace(content[:colon])
		value := strings.TrimSpace(content[colon+1:])
		if !c.IsFieldKey(key) {
			log.Debug("Ignoring notes line, key looks like prose", zap.String("key", key))
			continue
		}
		fields.Set(key, value)
	}
	return fields
}

// paragraphNodes returns the direct p children of the scan root within the
// notes element, in document order. The root is the first body child when
// present; some models wrap paragraphs directly or use an html wrapper
// instead, and a few put p elements straight under notes.
func paragraphNodes(notes *etree.Element) []*etree.Element {
	if notes == nil {
		return nil
	}
	root := notes
	for _, tag := range []string{"body", "p", "html"} {
		if el := childElement(notes, tag); el != nil {
			root = el
			break
		}
	}
	var paragraphs []*etree.Element
	for _, child := range root.ChildElements() {
		if child.Tag == "p" {
			paragraphs = append(paragraphs, child)
		}
	}
	return paragraphs
}

func childElement(el *etree.Element, tag string) *etree.Element {
	for _, child := range el.ChildElements() {
		if child.Tag == tag {
			return child
		}
	}
	return nil
}
