package files

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pluqqy/maskedit/pkg/models"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	tempDir := t.TempDir()
	oldWd, _ := os.Getwd()
	t.Cleanup(func() { os.Chdir(oldWd) })
	if err := os.Chdir(tempDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}
	return tempDir
}

func TestInitProjectStructure(t *testing.T) {
	chdirTemp(t)

	if ProjectExists() {
		t.Fatal("ProjectExists() = true before init")
	}

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	if !ProjectExists() {
		t.Error("ProjectExists() = false after init")
	}

	if _, err := os.Stat(filepath.Join(MaskeditDir, SettingsFile)); os.IsNotExist(err) {
		t.Errorf("Expected %s to be created", SettingsFile)
	}
}

func TestInitProjectStructure_KeepsExistingSettings(t *testing.T) {
	chdirTemp(t)

	custom := &models.Settings{
		Fields: []models.FieldSettings{{Name: "pin", Mask: "9999"}},
		Output: models.OutputSettings{Format: "yaml"},
	}
	if err := WriteSettings(custom); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	if err := InitProjectStructure(); err != nil {
		t.Fatalf("InitProjectStructure failed: %v", err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}
	if len(settings.Fields) != 1 || settings.Fields[0].Name != "pin" {
		t.Errorf("Expected custom field to survive init, got %+v", settings.Fields)
	}
}

func TestReadWriteSettings(t *testing.T) {
	chdirTemp(t)

	settings := models.DefaultSettings()
	settings.UI.Width = 60
	settings.Fields = append(settings.Fields, models.FieldSettings{Name: "card", Mask: "9999 9999"})

	if err := WriteSettings(settings); err != nil {
		t.Fatalf("WriteSettings failed: %v", err)
	}

	loaded, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if loaded.UI.Width != 60 {
		t.Errorf("Expected width 60, got %d", loaded.UI.Width)
	}
	if len(loaded.Fields) != len(settings.Fields) {
		t.Errorf("Expected %d fields, got %d", len(settings.Fields), len(loaded.Fields))
	}
}

func TestReadSettings_PartialFile(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(MaskeditDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "output:\n  format: json\n"
	if err := os.WriteFile(filepath.Join(MaskeditDir, SettingsFile), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	settings, err := ReadSettings()
	if err != nil {
		t.Fatalf("ReadSettings failed: %v", err)
	}

	if settings.Output.Format != "json" {
		t.Errorf("Expected format json, got %q", settings.Output.Format)
	}
	if len(settings.Fields) != len(models.DefaultSettings().Fields) {
		t.Errorf("Expected default fields, got %+v", settings.Fields)
	}
	if settings.UI.Width != 40 {
		t.Errorf("Expected default width 40, got %d", settings.UI.Width)
	}
}

func TestReadSettings_Missing(t *testing.T) {
	chdirTemp(t)

	if _, err := ReadSettings(); err == nil {
		t.Error("Expected error for missing settings file")
	}
}

func TestReadSettings_InvalidYAML(t *testing.T) {
	chdirTemp(t)

	if err := os.MkdirAll(MaskeditDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(MaskeditDir, SettingsFile), []byte("fields: [\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadSettings(); err == nil {
		t.Error("Expected error for invalid YAML")
	}
}

func TestReadWriteValues(t *testing.T) {
	chdirTemp(t)

	values, err := ReadValues()
	if err != nil {
		t.Fatalf("ReadValues without file failed: %v", err)
	}
	if len(values.Fields) != 0 {
		t.Errorf("Expected no values, got %v", values.Fields)
	}

	values.Set("phone", "5551234")
	values.Set("date", "0101")

	if err := WriteValues(values); err != nil {
		t.Fatalf("WriteValues failed: %v", err)
	}

	loaded, err := ReadValues()
	if err != nil {
		t.Fatalf("ReadValues failed: %v", err)
	}

	if loaded.Get("phone") != "5551234" {
		t.Errorf("Expected phone 5551234, got %q", loaded.Get("phone"))
	}
	if loaded.Get("date") != "0101" {
		t.Errorf("Expected date 0101, got %q", loaded.Get("date"))
	}
}
