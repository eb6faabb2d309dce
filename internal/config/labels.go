package config

// Labels is a pair of localized display strings representing a boolean
// setting's value. Labels are presentation only and are never persisted.
type Labels struct {
	True  string
	False string
}

// ToLabel returns the display label for the given boolean value.
func (l Labels) ToLabel(v bool) string {
	if v {
		return l.True
	}
	return l.False
}

// FromLabel converts a display label back into a boolean. Only an exact match
// of the true label yields true; any other input (the false label, an empty
// string, a mistyped label) yields false.
func (l Labels) FromLabel(label string) bool {
	return label == l.True
}

// Options returns the labels in select-widget order (true first).
func (l Labels) Options() []string {
	return []string{l.True, l.False}
}
