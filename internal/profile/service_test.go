package profile

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/GroupeChemia/valexa/internal/config"
	"github.com/GroupeChemia/valexa/internal/model"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	return NewService(config.NewSettings(test.NewApp()), t.TempDir())
}

func addReadyDataset(t *testing.T, svc *Service, id string) {
	t.Helper()
	points := []struct {
		series, level int
		x, y          float64
	}{
		{1, 1, 406, 1.00}, {2, 1, 419, 1.10}, {3, 1, 443, 1.34},
		{1, 2, 1015, 4.18}, {2, 2, 1047.5, 4.46}, {3, 2, 1107.5, 4.63},
	}
	for _, pt := range points {
		err := svc.AddMeasurement(id, DataValidation, model.NewMeasurement(pt.series, pt.level, pt.x, pt.y))
		if err != nil {
			t.Fatalf("Failed to add measurement: %v", err)
		}
	}
}

func TestServiceCreate(t *testing.T) {
	svc := newTestService(t)

	p, err := svc.Create("Pyrene")
	if err != nil {
		t.Fatalf("Failed to create profile: %v", err)
	}
	if p.ID == "" || p.Group != p.ID {
		t.Errorf("Profile should be keyed by its own ID, got %s/%s", p.ID, p.Group)
	}
	if p.Status != model.ProfileStatusDraft {
		t.Errorf("New profile should be draft, got %s", p.Status)
	}

	// Schema defaults are seeded into the settings group.
	if v := svc.settings.Float(p.Group, config.KeyToleranceLimit); v != config.DefaultToleranceLimit {
		t.Errorf("Expected seeded default tolerance, got %v", v)
	}
}

func TestServiceAddMeasurementUpdatesStatus(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")

	addReadyDataset(t, svc, p.ID)

	stored, _ := svc.Get(p.ID)
	if stored.Status != model.ProfileStatusReady {
		t.Errorf("Profile with enough points should be ready, got %s", stored.Status)
	}
	if len(stored.Dataset.Validation) != 6 {
		t.Errorf("Expected 6 validation rows, got %d", len(stored.Dataset.Validation))
	}
}

func TestServiceRemoveMeasurement(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")
	addReadyDataset(t, svc, p.ID)

	stored, _ := svc.Get(p.ID)
	rowID := stored.Dataset.Validation[0].ID

	if err := svc.RemoveMeasurement(p.ID, DataValidation, rowID); err != nil {
		t.Fatalf("Failed to remove measurement: %v", err)
	}
	stored, _ = svc.Get(p.ID)
	if len(stored.Dataset.Validation) != 5 {
		t.Errorf("Expected 5 rows after removal, got %d", len(stored.Dataset.Validation))
	}

	if err := svc.RemoveMeasurement(p.ID, DataValidation, "missing"); err == nil {
		t.Error("Removing an unknown row should error")
	}
}

func TestServiceDuplicate(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")
	addReadyDataset(t, svc, p.ID)
	svc.settings.SetFloat(p.Group, config.KeyAcceptanceLimit, 15)

	dup, err := svc.Duplicate(p.ID)
	if err != nil {
		t.Fatalf("Failed to duplicate profile: %v", err)
	}

	if dup.CompoundName != "Pyrene (copy)" {
		t.Errorf("Expected copy suffix, got %s", dup.CompoundName)
	}
	if len(dup.Dataset.Validation) != 6 {
		t.Errorf("Dataset should be copied, got %d rows", len(dup.Dataset.Validation))
	}
	if dup.Dataset.Validation[0].ID == p.Dataset.Validation[0].ID {
		t.Error("Copied rows should receive fresh IDs")
	}
	if v := svc.settings.Float(dup.Group, config.KeyAcceptanceLimit); v != 15 {
		t.Errorf("Settings should be copied, got %v", v)
	}

	// The copy is independent of the original.
	svc.settings.SetFloat(dup.Group, config.KeyAcceptanceLimit, 30)
	if v := svc.settings.Float(p.Group, config.KeyAcceptanceLimit); v != 15 {
		t.Errorf("Original settings should be untouched, got %v", v)
	}
}

func TestServiceDelete(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")
	svc.settings.SetBool(p.Group, config.KeyCorrectionAllow, true)

	if err := svc.Delete(p.ID); err != nil {
		t.Fatalf("Failed to delete profile: %v", err)
	}
	if _, ok := svc.Get(p.ID); ok {
		t.Error("Deleted profile should be gone")
	}
	if _, ok := svc.settings.Store().GetOK(p.Group, config.KeyCorrectionAllow); ok {
		t.Error("Deleted profile's settings group should be removed")
	}
	if err := svc.Delete(p.ID); err == nil {
		t.Error("Deleting twice should error")
	}
}

func TestServiceAllPreservesOrder(t *testing.T) {
	svc := newTestService(t)
	first, _ := svc.Create("A")
	second, _ := svc.Create("B")
	third, _ := svc.Create("C")

	if err := svc.Delete(second.ID); err != nil {
		t.Fatalf("Failed to delete: %v", err)
	}

	all := svc.All()
	if len(all) != 2 || all[0].ID != first.ID || all[1].ID != third.ID {
		t.Errorf("Expected [A C] in creation order, got %v", all)
	}
}

func TestServiceResolve(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")
	addReadyDataset(t, svc, p.ID)
	svc.settings.SetStringList(p.Group, config.KeyModelToTest, []string{"Linear"})
	svc.settings.SetBool(p.Group, config.KeyLODAllowed, true)
	svc.settings.SetBool(p.Group, config.KeyLODForceMiller, true)

	resolved, err := svc.Resolve(p.ID)
	if err != nil {
		t.Fatalf("Failed to resolve profile: %v", err)
	}
	if len(resolved.Validation) != 6 {
		t.Errorf("Expected 6 resolved rows, got %d", len(resolved.Validation))
	}
	if !resolved.LODAllowed || !resolved.LODForceMiller {
		t.Errorf("LOD settings should reach the resolved configuration, got allowed=%v miller=%v",
			resolved.LODAllowed, resolved.LODForceMiller)
	}

	stored, _ := svc.Get(p.ID)
	if stored.Status != model.ProfileStatusComputed {
		t.Errorf("Resolved profile should be computed, got %s", stored.Status)
	}
}

func TestServiceResolveInvalid(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")
	// Only one point: resolution must fail and mark the profile invalid.
	err := svc.AddMeasurement(p.ID, DataValidation, model.NewMeasurement(1, 1, 406, 1.0))
	if err != nil {
		t.Fatalf("Failed to add measurement: %v", err)
	}

	if _, err := svc.Resolve(p.ID); err == nil {
		t.Fatal("Resolving an underfilled profile should error")
	}
	stored, _ := svc.Get(p.ID)
	if stored.Status != model.ProfileStatusInvalid {
		t.Errorf("Failed resolution should mark the profile invalid, got %s", stored.Status)
	}
}

func TestServiceUpdateCallback(t *testing.T) {
	svc := newTestService(t)

	var updates []string
	svc.SetUpdateCallback(func(p *model.Profile) {
		updates = append(updates, p.ID)
	})

	p, _ := svc.Create("Pyrene")
	if len(updates) != 1 || updates[0] != p.ID {
		t.Errorf("Create should notify, got %v", updates)
	}
}

func TestServiceExportImportRoundTrip(t *testing.T) {
	svc := newTestService(t)
	p, _ := svc.Create("Pyrene")
	addReadyDataset(t, svc, p.ID)
	svc.settings.SetBool(p.Group, config.KeyAcceptanceAbsolute, true)
	svc.settings.SetFloatPair(p.Group, config.KeyCorrectionThreshold, []float64{1, 1})
	svc.settings.SetStringList(p.Group, config.KeyModelToTest, []string{"Linear", "Quadratic"})

	path, err := svc.Export(p.ID)
	if err != nil {
		t.Fatalf("Failed to export profile: %v", err)
	}

	imported, err := svc.ImportFile(path)
	if err != nil {
		t.Fatalf("Failed to import profile: %v", err)
	}

	if imported.CompoundName != "Pyrene" {
		t.Errorf("Expected compound Pyrene, got %s", imported.CompoundName)
	}
	if len(imported.Dataset.Validation) != 6 {
		t.Errorf("Expected 6 imported rows, got %d", len(imported.Dataset.Validation))
	}
	if !svc.settings.Bool(imported.Group, config.KeyAcceptanceAbsolute) {
		t.Error("acceptance_absolute should survive the round trip")
	}
	pair := svc.settings.FloatPair(imported.Group, config.KeyCorrectionThreshold)
	if pair[0] != 1 || pair[1] != 1 {
		t.Errorf("Correction threshold should survive the round trip, got %v", pair)
	}
	models := svc.settings.StringList(imported.Group, config.KeyModelToTest)
	if len(models) != 2 || models[0] != "Linear" {
		t.Errorf("Model selection should survive the round trip, got %v", models)
	}
	if imported.Status != model.ProfileStatusReady {
		t.Errorf("Imported profile with data should be ready, got %s", imported.Status)
	}
}
