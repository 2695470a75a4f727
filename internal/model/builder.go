package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	pkgopenapi "github.com/goliatone/go-ticketdesk/pkg/openapi"
)

// Builder converts OpenAPI operations into flat field-descriptor tables.
type Builder struct {
	opts Options
}

// New creates a Builder with the supplied options.
func New(options Options) *Builder {
	opts := defaultOptions()
	if options.Labeler != nil {
		opts.Labeler = options.Labeler
	}
	return &Builder{opts: opts}
}

// Build transforms an OpenAPI operation into a FormModel. Only the request
// body's top-level primitive properties participate; the ticket service is a
// flat entity so nested objects and arrays are rejected rather than silently
// flattened.
func (b *Builder) Build(op pkgopenapi.Operation) (FormModel, error) {
	if err := validateOperation(op); err != nil {
		return FormModel{}, err
	}

	form := FormModel{
		OperationID: op.ID,
		Endpoint:    op.Path,
		Method:      strings.ToUpper(op.Method),
		Summary:     op.Summary,
	}

	body := op.RequestBody
	if body.Type != "" && body.Type != "object" {
		return FormModel{}, fmt.Errorf("model builder: request body must be an object, got %q", body.Type)
	}

	requiredSet := make(map[string]struct{}, len(body.Required))
	for _, name := range body.Required {
		requiredSet[name] = struct{}{}
	}

	names := make([]string, 0, len(body.Properties))
	for name := range body.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := body.Properties[name]
		field, err := b.fieldFromSchema(name, prop)
		if err != nil {
			return FormModel{}, err
		}
		_, field.Required = requiredSet[name]
		form.Fields = append(form.Fields, field)
	}

	return form, nil
}

func (b *Builder) fieldFromSchema(name string, schema pkgopenapi.Schema) (Field, error) {
	kind, err := kindFromSchema(name, schema)
	if err != nil {
		return Field{}, err
	}
	return Field{
		Name:        name,
		Kind:        kind,
		Label:       b.opts.Labeler(name),
		Description: schema.Description,
		Identity:    name == "id",
	}, nil
}

func kindFromSchema(name string, schema pkgopenapi.Schema) (FieldKind, error) {
	switch schema.Type {
	case "boolean":
		return FieldKindBoolean, nil
	case "number", "integer":
		return FieldKindNumber, nil
	case "string", "":
		if schema.Format == "date" || schema.Format == "date-time" {
			return FieldKindDate, nil
		}
		return FieldKindString, nil
	default:
		return "", fmt.Errorf("model builder: field %q has unsupported type %q", name, schema.Type)
	}
}

func validateOperation(op pkgopenapi.Operation) error {
	if op.ID == "" {
		return errors.New("model builder: operation id is required")
	}
	if op.Path == "" {
		return errors.New("model builder: operation path is required")
	}
	if op.Method == "" {
		return errors.New("model builder: operation method is required")
	}
	return nil
}
