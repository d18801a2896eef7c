package bridge

import "encoding/json"

// Property names exposed by the dual listbox control.
const (
	PropLeftOptions = "leftOptions"
	PropRightOut    = "rightOut"
	PropLeftTitle   = "leftTitle"
	PropRightTitle  = "rightTitle"
	PropHeaderColor = "headerColor"
)

// EventValueChange is raised with the control's value as detail.
const EventValueChange = "ntx-value-change"

type Property struct {
	Name         string `json:"-"`
	Type         string `json:"type"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	IsValueField bool   `json:"isValueField,omitempty"`
}

type StandardProperties struct {
	Description  bool `json:"description"`
	DefaultValue bool `json:"defaultValue"`
	FieldLabel   bool `json:"fieldLabel"`
	ReadOnly     bool `json:"readOnly"`
	Required     bool `json:"required"`
	Visibility   bool `json:"visibility"`
}

// Meta is the registration record a form host reads before placing the
// control.
type Meta struct {
	ControlName           string             `json:"controlName"`
	Version               string             `json:"version"`
	Description           string             `json:"description"`
	GroupName             string             `json:"groupName"`
	FallbackDisableSubmit bool               `json:"fallbackDisableSubmit"`
	StandardProperties    StandardProperties `json:"standardProperties"`
	Properties            []Property         `json:"-"`
	Events                []string           `json:"events"`
}

// PropertyMap keys properties by name, the shape hosts expect on the wire.
func (m Meta) PropertyMap() map[string]Property {
	out := make(map[string]Property, len(m.Properties))
	for _, p := range m.Properties {
		out[p.Name] = p
	}
	return out
}

// MarshalJSON emits properties as an object keyed by name.
func (m Meta) MarshalJSON() ([]byte, error) {
	type plain Meta
	return json.Marshal(struct {
		plain
		Properties map[string]Property `json:"properties"`
	}{plain(m), m.PropertyMap()})
}

// ValueField is the property the host binds to the form value.
func (m Meta) ValueField() (Property, bool) {
	for _, p := range m.Properties {
		if p.IsValueField {
			return p, true
		}
	}
	return Property{}, false
}

func DualListboxMeta() Meta {
	return Meta{
		ControlName:           "Dual Listbox v2",
		Version:               "1.1.0",
		Description:           "Dual listbox control with customizable titles and header color.",
		GroupName:             "Web Integrations",
		FallbackDisableSubmit: false,
		StandardProperties: StandardProperties{
			Description:  true,
			DefaultValue: true,
			FieldLabel:   true,
			ReadOnly:     true,
			Required:     false,
			Visibility:   true,
		},
		Properties: []Property{
			{Name: PropLeftOptions, Type: "string", Title: "Left List Options", Description: "Comma-separated values for the left list."},
			{Name: PropRightOut, Type: "string", Title: "Selected Output", IsValueField: true},
			{Name: PropLeftTitle, Type: "string", Title: "Left List Title", Description: "Custom header text for the left list."},
			{Name: PropRightTitle, Type: "string", Title: "Right List Title", Description: "Custom header text for the right list."},
			{Name: PropHeaderColor, Type: "string", Title: "Header Background Color", Description: "Hex color code for list headers (e.g., #eb4034)."},
		},
		Events: []string{EventValueChange},
	}
}
