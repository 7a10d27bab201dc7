package models

// Values holds the saved real text of each field, keyed by field name
type Values struct {
	Fields map[string]string `yaml:"fields"`
}

// NewValues returns an empty value set
func NewValues() *Values {
	return &Values{Fields: make(map[string]string)}
}

// Get returns the saved value for a field, or "" when nothing was saved
func (v *Values) Get(name string) string {
	if v == nil || v.Fields == nil {
		return ""
	}
	return v.Fields[name]
}

// Set stores the value for a field. Empty values are removed.
func (v *Values) Set(name, real string) {
	if v.Fields == nil {
		v.Fields = make(map[string]string)
	}
	if real == "" {
		delete(v.Fields, name)
		return
	}
	v.Fields[name] = real
}
