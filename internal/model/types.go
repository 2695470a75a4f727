package model

// FieldKind is the simplified enum of coercion kinds a form field can carry.
type FieldKind string

const (
	FieldKindString  FieldKind = "string"
	FieldKindNumber  FieldKind = "number"
	FieldKindBoolean FieldKind = "boolean"
	FieldKindDate    FieldKind = "date"
)

// Field describes a single form field: its wire name, the coercion kind that
// drives encoding/decoding, and presentation metadata. Struct fields are
// annotated so callers can serialise descriptor tables directly when needed.
type Field struct {
	Name        string    `json:"name"`
	Kind        FieldKind `json:"kind"`
	Label       string    `json:"label,omitempty"`
	Description string    `json:"description,omitempty"`
	Required    bool      `json:"required"`
	// Identity marks the persisted-row key. Identity fields with empty
	// values are omitted from encoded payloads; the codec never fabricates
	// an id.
	Identity bool `json:"identity,omitempty"`
}

// FormModel is the declared field-descriptor table for one entity form plus
// the operation metadata it was derived from. It is read-only to the codec.
type FormModel struct {
	OperationID string  `json:"operationId"`
	Endpoint    string  `json:"endpoint"`
	Method      string  `json:"method"`
	Summary     string  `json:"summary,omitempty"`
	Fields      []Field `json:"fields"`
}

// FieldByName returns the descriptor for the named field.
func (m FormModel) FieldByName(name string) (Field, bool) {
	for _, field := range m.Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{}, false
}

// KindOf reports the coercion kind declared for a field name, defaulting to
// FieldKindString for unknown names so coercion stays total.
func (m FormModel) KindOf(name string) FieldKind {
	if field, ok := m.FieldByName(name); ok && field.Kind != "" {
		return field.Kind
	}
	return FieldKindString
}
