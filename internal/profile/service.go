package profile

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
)

// DataKind selects one of a profile's measurement tables.
type DataKind string

const (
	DataValidation  DataKind = "Validation"
	DataCalibration DataKind = "Calibration"
)

// Manager defines the interface for the profile service.
type Manager interface {
	SetUpdateCallback(func(*model.Profile))
	Create(compoundName string) (*model.Profile, error)
	Duplicate(id string) (*model.Profile, error)
	Rename(id, compoundName string) error
	Delete(id string) error
	Get(id string) (*model.Profile, bool)
	All() []*model.Profile
	AddMeasurement(id string, kind DataKind, m model.Measurement) error
	RemoveMeasurement(id string, kind DataKind, rowID string) error
	Resolve(id string) (*Resolved, error)
	Export(id string) (string, error)
	ImportFile(path string) (*model.Profile, error)
}

// Service handles profile lifecycle operations
type Service struct {
	profiles map[string]*model.Profile
	order    []string
	mu       sync.RWMutex

	settings  *config.Settings
	exportDir string

	updateCallback func(*model.Profile)
}

// NewService creates a new profile service. exportDir is where exported
// profile files are written.
func NewService(settings *config.Settings, exportDir string) *Service {
	return &Service{
		profiles:  make(map[string]*model.Profile),
		settings:  settings,
		exportDir: exportDir,
	}
}

// SetUpdateCallback sets the callback function for profile updates
func (s *Service) SetUpdateCallback(callback func(*model.Profile)) {
	s.updateCallback = callback
}

// Create adds a new profile with schema defaults applied to its settings
// group.
func (s *Service) Create(compoundName string) (*model.Profile, error) {
	id := uuid.NewString()
	now := time.Now()

	p := &model.Profile{
		ID:           id,
		CompoundName: compoundName,
		Group:        id,
		Status:       model.ProfileStatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.settings.Reset(p.Group)

	s.mu.Lock()
	s.profiles[id] = p
	s.order = append(s.order, id)
	s.mu.Unlock()

	s.notifyUpdate(p)
	return p, nil
}

// Duplicate copies a profile: its dataset (with fresh row IDs) and every
// setting of its group.
func (s *Service) Duplicate(id string) (*model.Profile, error) {
	s.mu.RLock()
	src, ok := s.profiles[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("profile not found: %s", id)
	}

	copyName := src.CompoundName + " (copy)"
	dst, err := s.Create(copyName)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	dst.Dataset = copyDataset(src.Dataset)
	dst.RefreshStatus()
	s.mu.Unlock()

	s.copyGroup(src.Group, dst.Group)
	s.notifyUpdate(dst)
	return dst, nil
}

// Rename changes a profile's compound name.
func (s *Service) Rename(id, compoundName string) error {
	s.mu.Lock()
	p, ok := s.profiles[id]
	if ok {
		p.CompoundName = compoundName
		p.UpdatedAt = time.Now()
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("profile not found: %s", id)
	}
	s.notifyUpdate(p)
	return nil
}

// Delete removes a profile and every setting of its group.
func (s *Service) Delete(id string) error {
	s.mu.Lock()
	p, ok := s.profiles[id]
	if ok {
		delete(s.profiles, id)
		for i, existing := range s.order {
			if existing == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("profile not found: %s", id)
	}
	s.settings.RemoveGroup(p.Group)
	return nil
}

// Get returns a profile by ID
func (s *Service) Get(id string) (*model.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[id]
	return p, ok
}

// All returns all profiles in creation order
func (s *Service) All() []*model.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.Profile, 0, len(s.order))
	for _, id := range s.order {
		if p, ok := s.profiles[id]; ok {
			out = append(out, p)
		}
	}
	return out
}

// AddMeasurement appends a measurement to one of the profile's tables.
func (s *Service) AddMeasurement(id string, kind DataKind, m model.Measurement) error {
	s.mu.Lock()
	p, ok := s.profiles[id]
	if ok {
		if m.ID == "" {
			m.ID = uuid.NewString()
		}
		switch kind {
		case DataCalibration:
			p.Dataset.Calibration = append(p.Dataset.Calibration, m)
		default:
			p.Dataset.Validation = append(p.Dataset.Validation, m)
		}
		p.UpdatedAt = time.Now()
		p.RefreshStatus()
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("profile not found: %s", id)
	}
	s.notifyUpdate(p)
	return nil
}

// RemoveMeasurement deletes a measurement row by its row ID.
func (s *Service) RemoveMeasurement(id string, kind DataKind, rowID string) error {
	s.mu.Lock()
	p, ok := s.profiles[id]
	removed := false
	if ok {
		rows := &p.Dataset.Validation
		if kind == DataCalibration {
			rows = &p.Dataset.Calibration
		}
		for i, row := range *rows {
			if row.ID == rowID {
				*rows = append((*rows)[:i], (*rows)[i+1:]...)
				removed = true
				break
			}
		}
		if removed {
			p.UpdatedAt = time.Now()
			p.RefreshStatus()
		}
	}
	s.mu.Unlock()

	if !ok {
		return fmt.Errorf("profile not found: %s", id)
	}
	if !removed {
		return fmt.Errorf("measurement not found: %s", rowID)
	}
	s.notifyUpdate(p)
	return nil
}

// Resolve turns a profile's settings and dataset into a runnable
// configuration, updating its status to computed or invalid.
func (s *Service) Resolve(id string) (*Resolved, error) {
	s.mu.RLock()
	p, ok := s.profiles[id]
	s.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("profile not found: %s", id)
	}

	request, err := s.requestFor(p)
	if err == nil {
		var resolved *Resolved
		resolved, err = request.Resolve()
		if err == nil {
			s.setStatus(p, model.ProfileStatusComputed)
			return resolved, nil
		}
	}

	s.setStatus(p, model.ProfileStatusInvalid)
	return nil, err
}

// requestFor assembles a Request from the profile's settings group and its
// dataset.
func (s *Service) requestFor(p *model.Profile) (*Request, error) {
	transformation, err := ParseTransformation(s.settings.String(p.Group, config.KeyDataTransformation))
	if err != nil {
		return nil, err
	}

	return &Request{
		CompoundName:          p.CompoundName,
		ToleranceLimit:        s.settings.Float(p.Group, config.KeyToleranceLimit),
		AcceptanceLimit:       s.settings.Float(p.Group, config.KeyAcceptanceLimit),
		AcceptanceAbsolute:    s.settings.Bool(p.Group, config.KeyAcceptanceAbsolute),
		QuantityUnits:         s.settings.String(p.Group, config.KeyQuantityUnits),
		RollingData:           s.settings.Bool(p.Group, config.KeyRollingData),
		RollingLimit:          s.settings.Int(p.Group, config.KeyRollingLimit),
		ModelToTest:           s.settings.StringList(p.Group, config.KeyModelToTest),
		CorrectionAllow:       s.settings.Bool(p.Group, config.KeyCorrectionAllow),
		CorrectionThreshold:   s.settings.FloatPair(p.Group, config.KeyCorrectionThreshold),
		CorrectionForcedValue: s.settings.Float(p.Group, config.KeyCorrectionForcedValue),
		CorrectionRoundTo:     s.settings.Int(p.Group, config.KeyCorrectionRoundTo),
		SignificantFigure:     s.settings.Int(p.Group, config.KeySignificantFigure),
		DataTransformation:    transformation,
		UseMedian:             s.settings.Bool(p.Group, config.KeyUseMedian),
		LODAllowed:            s.settings.Bool(p.Group, config.KeyLODAllowed),
		LODForceMiller:        s.settings.Bool(p.Group, config.KeyLODForceMiller),
		Validation:            toWideRows(p.Dataset.Validation),
		Calibration:           toWideRows(p.Dataset.Calibration),
	}, nil
}

func (s *Service) setStatus(p *model.Profile, status model.ProfileStatus) {
	s.mu.Lock()
	p.Status = status
	p.UpdatedAt = time.Now()
	s.mu.Unlock()
	s.notifyUpdate(p)
}

// copyGroup copies every declared setting from one group to another.
func (s *Service) copyGroup(src, dst string) {
	for _, def := range config.Schema() {
		switch def.Type {
		case config.TypeBool:
			s.settings.SetBool(dst, def.Key, s.settings.Bool(src, def.Key))
		case config.TypeInt:
			s.settings.SetInt(dst, def.Key, s.settings.Int(src, def.Key))
		case config.TypeFloat:
			s.settings.SetFloat(dst, def.Key, s.settings.Float(src, def.Key))
		case config.TypeString:
			s.settings.SetString(dst, def.Key, s.settings.String(src, def.Key))
		case config.TypeStringList:
			s.settings.SetStringList(dst, def.Key, s.settings.StringList(src, def.Key))
		case config.TypeFloatPair:
			s.settings.SetFloatPair(dst, def.Key, s.settings.FloatPair(src, def.Key))
		}
	}
}

// notifyUpdate calls the update callback if set
func (s *Service) notifyUpdate(p *model.Profile) {
	if s.updateCallback != nil {
		s.updateCallback(p)
	}
}

func copyDataset(d model.Dataset) model.Dataset {
	return model.Dataset{
		Validation:  copyRows(d.Validation),
		Calibration: copyRows(d.Calibration),
	}
}

func copyRows(rows []model.Measurement) []model.Measurement {
	if len(rows) == 0 {
		return nil
	}
	out := make([]model.Measurement, len(rows))
	for i, row := range rows {
		out[i] = row
		out[i].ID = uuid.NewString()
	}
	return out
}

func toWideRows(rows []model.Measurement) []WideRow {
	if len(rows) == 0 {
		return nil
	}
	out := make([]WideRow, len(rows))
	for i, row := range rows {
		out[i] = WideRow{
			Series: row.Series,
			Level:  row.Level,
			X:      []float64{row.Concentration},
			Y:      []float64{row.Response},
		}
	}
	return out
}
