package profile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
	"github.com/GroupeChemia/valexa/internal/platform"
)

// profileFile is the on-disk YAML layout of an exported profile.
type profileFile struct {
	CompoundName string         `yaml:"compound_name"`
	Settings     map[string]any `yaml:"settings"`
	Validation   []rowFile      `yaml:"validation"`
	Calibration  []rowFile      `yaml:"calibration,omitempty"`
}

type rowFile struct {
	Series int     `yaml:"series"`
	Level  int     `yaml:"level"`
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
}

// Export writes a profile (settings plus dataset) to a YAML file in the
// service's export directory and returns the written path.
func (s *Service) Export(id string) (string, error) {
	s.mu.RLock()
	p, ok := s.profiles[id]
	s.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("profile not found: %s", id)
	}

	file := profileFile{
		CompoundName: p.CompoundName,
		Settings:     make(map[string]any),
		Validation:   toRowFiles(p.Dataset.Validation),
		Calibration:  toRowFiles(p.Dataset.Calibration),
	}
	for _, def := range config.Schema() {
		file.Settings[def.Key] = s.settings.Value(p.Group, def.Key)
	}

	raw, err := yaml.Marshal(&file)
	if err != nil {
		return "", fmt.Errorf("failed to encode profile: %w", err)
	}

	if err := platform.CreateDirectoryIfNotExists(s.exportDir); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := platform.UniqueProfilePath(s.exportDir, p.CompoundName)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", fmt.Errorf("failed to write profile file: %w", err)
	}
	return path, nil
}

// ImportFile creates a new profile from an exported YAML file.
func (s *Service) ImportFile(path string) (*model.Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile file: %w", err)
	}

	var file profileFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to decode profile file: %w", err)
	}

	p, err := s.Create(file.CompoundName)
	if err != nil {
		return nil, err
	}

	for _, def := range config.Schema() {
		value, ok := file.Settings[def.Key]
		if !ok {
			continue
		}
		s.applySetting(p.Group, def, value)
	}

	s.mu.Lock()
	p.Dataset.Validation = fromRowFiles(file.Validation)
	p.Dataset.Calibration = fromRowFiles(file.Calibration)
	p.RefreshStatus()
	s.mu.Unlock()

	s.notifyUpdate(p)
	return p, nil
}

// applySetting coerces a decoded YAML value onto the schema type of its
// setting; values of the wrong shape are ignored and the default stays.
func (s *Service) applySetting(group string, def config.Definition, value any) {
	switch def.Type {
	case config.TypeBool:
		if b, ok := value.(bool); ok {
			s.settings.SetBool(group, def.Key, b)
		}
	case config.TypeInt:
		if n, ok := asInt(value); ok {
			s.settings.SetInt(group, def.Key, n)
		}
	case config.TypeFloat:
		if f, ok := asFloat(value); ok {
			s.settings.SetFloat(group, def.Key, f)
		}
	case config.TypeString:
		if str, ok := value.(string); ok {
			s.settings.SetString(group, def.Key, str)
		}
	case config.TypeStringList:
		if list, ok := asStringList(value); ok {
			s.settings.SetStringList(group, def.Key, list)
		}
	case config.TypeFloatPair:
		if pair, ok := asFloatPair(value); ok {
			s.settings.SetFloatPair(group, def.Key, pair)
		}
	}
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func asFloat(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case int:
		return float64(f), true
	case int64:
		return float64(f), true
	}
	return 0, false
}

func asStringList(v any) ([]string, bool) {
	items, ok := v.([]any)
	if !ok {
		if typed, ok := v.([]string); ok {
			return typed, true
		}
		return nil, false
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		str, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, str)
	}
	return out, true
}

func asFloatPair(v any) ([]float64, bool) {
	if typed, ok := v.([]float64); ok && len(typed) == 2 {
		return typed, true
	}
	items, ok := v.([]any)
	if !ok || len(items) != 2 {
		return nil, false
	}
	out := make([]float64, 2)
	for i, item := range items {
		f, ok := asFloat(item)
		if !ok {
			return nil, false
		}
		out[i] = f
	}
	return out, true
}

func toRowFiles(rows []model.Measurement) []rowFile {
	if len(rows) == 0 {
		return nil
	}
	out := make([]rowFile, len(rows))
	for i, row := range rows {
		out[i] = rowFile{Series: row.Series, Level: row.Level, X: row.Concentration, Y: row.Response}
	}
	return out
}

func fromRowFiles(rows []rowFile) []model.Measurement {
	if len(rows) == 0 {
		return nil
	}
	out := make([]model.Measurement, len(rows))
	for i, row := range rows {
		out[i] = model.NewMeasurement(row.Series, row.Level, row.X, row.Y)
	}
	return out
}
