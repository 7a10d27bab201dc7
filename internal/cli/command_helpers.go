package cli

import (
	"fmt"
	"os"

	"github.com/pluqqy/maskedit/pkg/files"
	"github.com/pluqqy/maskedit/pkg/models"
)

// CommandContext manages project validation and common command context
type CommandContext struct {
	ProjectPath string
	Settings    *models.Settings
	Values      *models.Values
	validated   bool
}

// NewCommandContext creates a new command context
func NewCommandContext() *CommandContext {
	return &CommandContext{
		ProjectPath: files.MaskeditDir,
	}
}

// ValidateProject ensures the project is initialized
func (c *CommandContext) ValidateProject() error {
	if c.validated {
		return nil
	}

	info, err := os.Stat(c.ProjectPath)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("no %s directory found. Run 'maskedit init' first", c.ProjectPath)
	}

	c.validated = true
	return nil
}

// LoadSettingsWithDefault loads settings or returns default if error
func (c *CommandContext) LoadSettingsWithDefault() *models.Settings {
	if c.Settings != nil {
		return c.Settings
	}

	settings, err := files.ReadSettings()
	if err != nil {
		settings = models.DefaultSettings()
	}

	c.Settings = settings
	return settings
}

// LoadValuesWithDefault loads saved values or returns an empty set
func (c *CommandContext) LoadValuesWithDefault() *models.Values {
	if c.Values != nil {
		return c.Values
	}

	values, err := files.ReadValues()
	if err != nil {
		PrintWarning("Could not read saved values: %v", err)
		values = models.NewValues()
	}

	c.Values = values
	return values
}

// OutputFormat resolves the output format from a flag value, falling back
// to the configured default when the flag is empty
func (c *CommandContext) OutputFormat(flag string) (OutputFormat, error) {
	if flag == "" {
		flag = c.LoadSettingsWithDefault().Output.Format
	}
	return ParseOutputFormat(flag)
}

// ResolveField finds a configured field and its saved value
func (c *CommandContext) ResolveField(name string) (models.FieldSettings, string, error) {
	field, err := c.LoadSettingsWithDefault().Field(name)
	if err != nil {
		return models.FieldSettings{}, "", err
	}
	return field, c.LoadValuesWithDefault().Get(name), nil
}
