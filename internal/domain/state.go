package domain

import (
	"encoding/json"
	"fmt"
)

// Theme is the persisted UI color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// FieldValue is one persisted form-field value: boolean for toggle-type
// fields, text for everything else. It marshals to a bare JSON string or
// bool so the persisted document stays `{id: string|boolean}`.
type FieldValue struct {
	IsBool bool
	Bool   bool
	Text   string
}

// TextValue builds a text field value.
func TextValue(s string) FieldValue { return FieldValue{Text: s} }

// BoolValue builds a toggle field value.
func BoolValue(b bool) FieldValue { return FieldValue{IsBool: true, Bool: b} }

// MarshalJSON encodes the value as a bare string or bool.
func (v FieldValue) MarshalJSON() ([]byte, error) {
	if v.IsBool {
		return json.Marshal(v.Bool)
	}
	return json.Marshal(v.Text)
}

// UnmarshalJSON accepts a bare string or bool.
func (v *FieldValue) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*v = BoolValue(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("field value must be string or bool: %w", err)
	}
	*v = TextValue(s)
	return nil
}

// PersistedState is the single durable document: the full snapshot of the
// form. It is created or overwritten whole on every save, read once at
// startup, and never partially merged.
type PersistedState struct {
	Theme  Theme                            `json:"theme"`
	Inputs map[string]FieldValue            `json:"inputs"`
	Custom map[ExpenseCategory][]CustomItem `json:"custom"`
}

// NewPersistedState returns an empty snapshot with allocated maps.
func NewPersistedState() *PersistedState {
	return &PersistedState{
		Theme:  ThemeLight,
		Inputs: make(map[string]FieldValue),
		Custom: make(map[ExpenseCategory][]CustomItem),
	}
}
