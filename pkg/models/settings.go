package models

import "fmt"

// Settings represents the application configuration
type Settings struct {
	Fields []FieldSettings `yaml:"fields"`
	UI     UISettings      `yaml:"ui"`
	Output OutputSettings  `yaml:"output"`
}

// FieldSettings describes one masked field shown in the form
type FieldSettings struct {
	Name  string `yaml:"name"`
	Label string `yaml:"label,omitempty"`
	Mask  string `yaml:"mask"`
}

// UISettings controls UI preferences
type UISettings struct {
	Width        int  `yaml:"width"`
	ShowRealText bool `yaml:"show_real_text"`
	ShowSlots    bool `yaml:"show_slots"`
}

// OutputSettings controls command output
type OutputSettings struct {
	Format string `yaml:"format"` // "text", "json" or "yaml"
}

// DefaultSettings returns the default configuration
func DefaultSettings() *Settings {
	return &Settings{
		Fields: []FieldSettings{
			{Name: "phone", Label: "Phone number", Mask: "(999) 999-9999"},
			{Name: "date", Label: "Date", Mask: "99/99/9999"},
			{Name: "zip", Label: "ZIP code", Mask: "99999"},
		},
		UI: UISettings{
			Width:        40,
			ShowRealText: true,
			ShowSlots:    false,
		},
		Output: OutputSettings{
			Format: "text",
		},
	}
}

// Field returns the field settings with the given name
func (s *Settings) Field(name string) (FieldSettings, error) {
	for _, f := range s.Fields {
		if f.Name == name {
			return f, nil
		}
	}
	return FieldSettings{}, fmt.Errorf("field '%s' not found", name)
}

// DisplayLabel returns the label, falling back to the name
func (f FieldSettings) DisplayLabel() string {
	if f.Label != "" {
		return f.Label
	}
	return f.Name
}
