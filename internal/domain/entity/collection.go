package entity

// Keyed is implemented by embedded documents addressed by a hex id within
// their parent's ordered sequence.
type Keyed interface {
	Key() string
}

// InsertFront prepends el so the newest element sits at index 0.
func InsertFront[T any](seq []T, el T) []T {
	out := make([]T, 0, len(seq)+1)
	out = append(out, el)
	return append(out, seq...)
}

// FindByKey returns the first element whose key equals id.
func FindByKey[T Keyed](seq []T, id string) (T, bool) {
	for _, el := range seq {
		if el.Key() == id {
			return el, true
		}
	}
	var zero T
	return zero, false
}

// RemoveByKey removes exactly one element, the first whose key equals id,
// preserving the relative order of the rest. The second result reports
// whether anything was removed.
func RemoveByKey[T Keyed](seq []T, id string) ([]T, bool) {
	for i, el := range seq {
		if el.Key() == id {
			out := make([]T, 0, len(seq)-1)
			out = append(out, seq[:i]...)
			return append(out, seq[i+1:]...), true
		}
	}
	return seq, false
}
