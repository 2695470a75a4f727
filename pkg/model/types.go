package model

import internalmodel "github.com/goliatone/go-ticketdesk/internal/model"

// FieldKind re-exports the internal FieldKind enumeration.
type FieldKind = internalmodel.FieldKind

const (
	FieldKindString  = internalmodel.FieldKindString
	FieldKindNumber  = internalmodel.FieldKindNumber
	FieldKindBoolean = internalmodel.FieldKindBoolean
	FieldKindDate    = internalmodel.FieldKindDate
)

type Field = internalmodel.Field
type FormModel = internalmodel.FormModel
type Record = internalmodel.Record

// DefaultLabeler converts a field name into a human-friendly label.
var DefaultLabeler = internalmodel.DefaultLabeler
