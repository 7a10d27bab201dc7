package files

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pluqqy/maskedit/pkg/models"
	"gopkg.in/yaml.v3"
)

const (
	MaskeditDir  = ".maskedit"
	SettingsFile = "settings.yaml"
	ValuesFile   = "values.yaml"
)

// InitProjectStructure creates the .maskedit directory and writes default
// settings unless a settings file already exists
func InitProjectStructure() error {
	if err := os.MkdirAll(MaskeditDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", MaskeditDir, err)
	}

	if _, err := os.Stat(settingsPath()); err == nil {
		return nil
	}

	return WriteSettings(models.DefaultSettings())
}

// ProjectExists reports whether the .maskedit directory is present
func ProjectExists() bool {
	info, err := os.Stat(MaskeditDir)
	return err == nil && info.IsDir()
}

func settingsPath() string {
	return filepath.Join(MaskeditDir, SettingsFile)
}

func valuesPath() string {
	return filepath.Join(MaskeditDir, ValuesFile)
}

// ReadSettings loads settings.yaml. Sections missing from the file keep
// their default values.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(settingsPath())
	if err != nil {
		return nil, fmt.Errorf("failed to read settings %s: %w", settingsPath(), err)
	}

	settings := models.DefaultSettings()
	settings.Fields = nil
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML %s: %w", settingsPath(), err)
	}

	if len(settings.Fields) == 0 {
		settings.Fields = models.DefaultSettings().Fields
	}

	return settings, nil
}

// WriteSettings stores settings as settings.yaml
func WriteSettings(settings *models.Settings) error {
	return writeYAML(settingsPath(), settings)
}

// ReadValues loads the saved field values. A missing file yields an empty
// set.
func ReadValues() (*models.Values, error) {
	content, err := os.ReadFile(valuesPath())
	if os.IsNotExist(err) {
		return models.NewValues(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read values %s: %w", valuesPath(), err)
	}

	values := models.NewValues()
	if err := yaml.Unmarshal(content, values); err != nil {
		return nil, fmt.Errorf("failed to parse values YAML %s: %w", valuesPath(), err)
	}
	if values.Fields == nil {
		values.Fields = make(map[string]string)
	}

	return values, nil
}

// WriteValues stores the field values as values.yaml
func WriteValues(values *models.Values) error {
	return writeYAML(valuesPath(), values)
}

func writeYAML(path string, v interface{}) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	content, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal %s to YAML: %w", path, err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
