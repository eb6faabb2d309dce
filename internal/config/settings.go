package config

import (
	"fyne.io/fyne/v2"
)

// Settings manages application and profile configuration. Profile settings
// live in the in-memory Store under their profile's group name and are
// written through to Fyne preferences (namespaced as "<group>.<key>") so they
// survive a restart. Every typed access is validated against the declared
// schema: reads of a never-set pair fall back to the schema default instead
// of propagating the nil sentinel to the UI.
type Settings struct {
	app   fyne.App
	store *Store
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app, store: NewStore()}
}

// Store exposes the underlying settings store.
func (s *Settings) Store() *Store {
	return s.store
}

func (s *Settings) prefKey(group, key string) string {
	return group + "." + key
}

// Bool returns the boolean value of (group, key), falling back to the
// persisted value and then the schema default.
func (s *Settings) Bool(group, key string) bool {
	if v, ok := s.store.GetOK(group, key); ok {
		if b, ok := v.(bool); ok {
			return b
		}
	}
	def, _ := DefaultFor(key).(bool)
	v := s.app.Preferences().BoolWithFallback(s.prefKey(group, key), def)
	s.store.Set(group, key, v)
	return v
}

// SetBool sets the boolean value of (group, key).
func (s *Settings) SetBool(group, key string, v bool) {
	s.store.Set(group, key, v)
	s.app.Preferences().SetBool(s.prefKey(group, key), v)
}

// Int returns the integer value of (group, key).
func (s *Settings) Int(group, key string) int {
	if v, ok := s.store.GetOK(group, key); ok {
		if n, ok := v.(int); ok {
			return n
		}
	}
	def, _ := DefaultFor(key).(int)
	v := s.app.Preferences().IntWithFallback(s.prefKey(group, key), def)
	s.store.Set(group, key, v)
	return v
}

// SetInt sets the integer value of (group, key), clamped to the schema range
// when the definition declares one.
func (s *Settings) SetInt(group, key string, v int) {
	if def, ok := Lookup(key); ok && def.HasRange() {
		if v < int(def.Min) {
			v = int(def.Min)
		}
		if v > int(def.Max) {
			v = int(def.Max)
		}
	}
	s.store.Set(group, key, v)
	s.app.Preferences().SetInt(s.prefKey(group, key), v)
}

// Float returns the float value of (group, key).
func (s *Settings) Float(group, key string) float64 {
	if v, ok := s.store.GetOK(group, key); ok {
		if f, ok := v.(float64); ok {
			return f
		}
	}
	def, _ := DefaultFor(key).(float64)
	v := s.app.Preferences().FloatWithFallback(s.prefKey(group, key), def)
	s.store.Set(group, key, v)
	return v
}

// SetFloat sets the float value of (group, key), clamped to the schema range
// when the definition declares one.
func (s *Settings) SetFloat(group, key string, v float64) {
	if def, ok := Lookup(key); ok && def.HasRange() {
		if v < def.Min {
			v = def.Min
		}
		if v > def.Max {
			v = def.Max
		}
	}
	s.store.Set(group, key, v)
	s.app.Preferences().SetFloat(s.prefKey(group, key), v)
}

// String returns the string value of (group, key). For settings with declared
// options an unknown persisted value falls back to the schema default.
func (s *Settings) String(group, key string) string {
	if v, ok := s.store.GetOK(group, key); ok {
		if str, ok := v.(string); ok {
			return str
		}
	}
	def, _ := DefaultFor(key).(string)
	v := s.app.Preferences().StringWithFallback(s.prefKey(group, key), def)
	if sd, ok := Lookup(key); ok && len(sd.Options) > 0 && !containsString(sd.Options, v) {
		v = def
	}
	s.store.Set(group, key, v)
	return v
}

// SetString sets the string value of (group, key).
func (s *Settings) SetString(group, key, v string) {
	s.store.Set(group, key, v)
	s.app.Preferences().SetString(s.prefKey(group, key), v)
}

// StringList returns the string-list value of (group, key).
func (s *Settings) StringList(group, key string) []string {
	if v, ok := s.store.GetOK(group, key); ok {
		if list, ok := v.([]string); ok {
			return list
		}
	}
	def, _ := DefaultFor(key).([]string)
	v := s.app.Preferences().StringListWithFallback(s.prefKey(group, key), def)
	s.store.Set(group, key, v)
	return v
}

// SetStringList sets the string-list value of (group, key).
func (s *Settings) SetStringList(group, key string, v []string) {
	s.store.Set(group, key, v)
	s.app.Preferences().SetStringList(s.prefKey(group, key), v)
}

// FloatPair returns the two-value float pair of (group, key). Anything other
// than exactly two persisted values falls back to the schema default.
func (s *Settings) FloatPair(group, key string) []float64 {
	if v, ok := s.store.GetOK(group, key); ok {
		if pair, ok := v.([]float64); ok && len(pair) == 2 {
			return pair
		}
	}
	def, _ := DefaultFor(key).([]float64)
	v := s.app.Preferences().FloatListWithFallback(s.prefKey(group, key), def)
	if len(v) != 2 {
		v = def
	}
	s.store.Set(group, key, v)
	return v
}

// SetFloatPair sets the two-value float pair of (group, key).
func (s *Settings) SetFloatPair(group, key string, v []float64) {
	if len(v) != 2 {
		return
	}
	s.store.Set(group, key, v)
	s.app.Preferences().SetFloatList(s.prefKey(group, key), v)
}

// Value returns the schema-typed value of (group, key), or nil for a key the
// schema does not declare.
func (s *Settings) Value(group, key string) any {
	def, ok := Lookup(key)
	if !ok {
		return nil
	}

	switch def.Type {
	case TypeBool:
		return s.Bool(group, key)
	case TypeInt:
		return s.Int(group, key)
	case TypeFloat:
		return s.Float(group, key)
	case TypeString:
		return s.String(group, key)
	case TypeStringList:
		return s.StringList(group, key)
	case TypeFloatPair:
		return s.FloatPair(group, key)
	}
	return nil
}

// Reset applies the schema default to every setting of the given group.
func (s *Settings) Reset(group string) {
	for _, def := range Schema() {
		switch def.Type {
		case TypeBool:
			s.SetBool(group, def.Key, def.Default.(bool))
		case TypeInt:
			s.SetInt(group, def.Key, def.Default.(int))
		case TypeFloat:
			s.SetFloat(group, def.Key, def.Default.(float64))
		case TypeString:
			s.SetString(group, def.Key, def.Default.(string))
		case TypeStringList:
			s.SetStringList(group, def.Key, def.Default.([]string))
		case TypeFloatPair:
			s.SetFloatPair(group, def.Key, def.Default.([]float64))
		}
	}
}

// RemoveGroup removes every setting of the group from the store and from the
// persisted preferences.
func (s *Settings) RemoveGroup(group string) {
	s.store.Delete(group)
	for _, def := range Schema() {
		s.app.Preferences().RemoveValue(s.prefKey(group, def.Key))
	}
}

// BoolLabel returns the display label of a boolean setting using the given
// label pair.
func (s *Settings) BoolLabel(group, key string, labels Labels) string {
	return labels.ToLabel(s.Bool(group, key))
}

// SetBoolLabel sets a boolean setting from its display label. Labels other
// than the true label store false.
func (s *Settings) SetBoolLabel(group, key, label string, labels Labels) {
	s.SetBool(group, key, labels.FromLabel(label))
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLastProfile returns the ID of the profile open when the app last closed.
func (s *Settings) GetLastProfile() string {
	return s.app.Preferences().String(KeyLastProfile)
}

// SetLastProfile records the ID of the currently open profile.
func (s *Settings) SetLastProfile(id string) {
	s.app.Preferences().SetString(KeyLastProfile, id)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}

func containsString(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
