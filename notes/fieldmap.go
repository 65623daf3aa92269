package notes

import (
	orderedmap "github.com/elliotchance/orderedmap/v3"
)

// FieldMap is an ordered KEY -> VALUE mapping of structured annotation
// fields. Keys are unique and non-empty, values may be empty strings.
// Setting an existing key replaces its value but keeps its original
// position, so a write/extract round trip preserves field order.
type FieldMap struct {
	m *orderedmap.OrderedMap[string, string]
}

func NewFieldMap() *FieldMap {
	return &FieldMap{m: orderedmap.NewOrderedMap[string, string]()}
}

// Set records a value for the key. Empty keys are ignored, an empty value is
// a valid entry.
func (f *FieldMap) Set(key, value string) {
	if len(key) == 0 {
		return
	}
	f.m.Set(key, value)
}

func (f *FieldMap) Get(key string) (string, bool) {
	return f.m.Get(key)
}

func (f *FieldMap) Has(key string) bool {
	_, ok := f.m.Get(key)
	return ok
}

func (f *FieldMap) Len() int {
	return f.m.Len()
}

// Keys returns all keys in insertion order.
func (f *FieldMap) Keys() []string {
	keys := make([]string, 0, f.m.Len())
	for el := f.m.Front(); el != nil; el = el.Next() {
		keys = append(keys, el.Key)
	}
	return keys
}

// Each calls fn for every pair in insertion order.
func (f *FieldMap) Each(fn func(key, value string)) {
	for el := f.m.Front(); el != nil; el = el.Next() {
		fn(el.Key, el.Value)
	}
}

// Equal reports whether both maps hold the same pairs, ignoring order.
func (f *FieldMap) Equal(other *FieldMap) bool {
	if f.Len() != other.Len() {
		return false
	}
	equal := true
	f.Each(func(key, value string) {
		if v, ok := other.Get(key); !ok || v != value {
			equal = false
		}
	})
	return equal
}
