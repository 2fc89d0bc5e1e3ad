// Package document converts loosely typed records into canonical shapes:
// it prunes update documents and normalizes stored or transported values
// into models.Account.
package document

import "reflect"

// SequencePolicy decides what an empty sequence in an update means.
type SequencePolicy int

const (
	// SkipEmptySequences treats an empty sequence as "no change".
	SkipEmptySequences SequencePolicy = iota
	// ClearEmptySequences keeps empty sequences so they replace the stored value.
	ClearEmptySequences
)

// ParseSequencePolicy maps the configuration value ("skip", "clear") to a
// policy. Anything else is "skip".
func ParseSequencePolicy(s string) SequencePolicy {
	if s == "clear" {
		return ClearEmptySequences
	}
	return SkipEmptySequences
}

// Pruner removes empty values from update documents. It never mutates its
// input.
type Pruner struct {
	Sequences SequencePolicy
}

// Prune applies the default policy: empty strings, nils, empty sequences
// and empty mappings are dropped at every depth.
func Prune(doc map[string]any) map[string]any {
	return Pruner{}.Prune(doc)
}

func (p Pruner) Prune(doc map[string]any) map[string]any {
	out := make(map[string]any, len(doc))
	for key, value := range doc {
		if pruned, keep := p.value(value); keep {
			out[key] = pruned
		}
	}
	return out
}

// value returns the pruned value and whether it survives.
func (p Pruner) value(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case string:
		return t, t != ""
	case map[string]any:
		m := p.Prune(t)
		return m, len(m) > 0
	case []any:
		return p.sequence(t)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return nil, false
		}
		return v, true
	case reflect.Map:
		if rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
			return v, !rv.IsNil() && rv.Len() > 0
		}
		m := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			m[iter.Key().String()] = iter.Value().Interface()
		}
		return p.value(m)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return v, rv.Len() > 0
		}
		s := make([]any, rv.Len())
		for i := range s {
			s[i] = rv.Index(i).Interface()
		}
		return p.sequence(s)
	}
	return v, true
}

func (p Pruner) sequence(s []any) (any, bool) {
	out := make([]any, 0, len(s))
	for _, item := range s {
		if pruned, keep := p.value(item); keep {
			out = append(out, pruned)
		}
	}
	if len(out) == 0 {
		return out, p.Sequences == ClearEmptySequences
	}
	return out, true
}
