package prompt

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-ticketdesk/pkg/codec"
	"github.com/goliatone/go-ticketdesk/pkg/model"
)

// Option configures a Filler during construction.
type Option func(*Filler)

// WithDriver injects a custom prompt driver, used by tests and alternative
// terminal frontends.
func WithDriver(driver PromptDriver) Option {
	return func(f *Filler) {
		if driver != nil {
			f.driver = driver
		}
	}
}

// Filler prompts for each declared field and assembles a form snapshot. It
// never coerces: raw answers go into the snapshot, the codec does the typing.
type Filler struct {
	driver PromptDriver
}

// NewFiller constructs a Filler with the survey-backed driver by default.
func NewFiller(options ...Option) *Filler {
	f := &Filler{driver: NewSurveyDriver()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(f)
	}
	return f
}

// Fill walks the descriptor table and prompts for every non-identity field.
// Seed values become prompt defaults so edit flows show the current state;
// identity fields are carried over untouched, the filler never invents ids.
func (f *Filler) Fill(ctx context.Context, form model.FormModel, seed codec.Snapshot) (codec.Snapshot, error) {
	if f.driver == nil {
		return nil, errors.New("prompt: driver is nil")
	}

	snap := make(codec.Snapshot, len(form.Fields))
	for name, state := range seed {
		snap[name] = state
	}

	for _, field := range form.Fields {
		if field.Identity {
			continue
		}
		state, err := f.promptField(ctx, field, snap[field.Name])
		if err != nil {
			return nil, err
		}
		snap[field.Name] = state
	}
	return snap, nil
}

func (f *Filler) promptField(ctx context.Context, field model.Field, current codec.FieldState) (codec.FieldState, error) {
	label := field.Label
	if label == "" {
		label = field.Name
	}

	switch field.Kind {
	case model.FieldKindBoolean:
		checked, err := f.driver.Confirm(ctx, ConfirmConfig{
			Message: label,
			Default: current.Checked,
			Help:    field.Description,
		})
		if err != nil {
			return codec.FieldState{}, err
		}
		return codec.FieldState{Checked: checked}, nil

	case model.FieldKindNumber:
		value, err := f.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   current.Value,
			Help:      field.Description,
			Validator: numberValidator(field),
		})
		if err != nil {
			return codec.FieldState{}, err
		}
		return codec.FieldState{Value: value}, nil

	case model.FieldKindDate:
		help := field.Description
		if help == "" {
			help = "YYYY-MM-DD"
		}
		value, err := f.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   current.Value,
			Help:      help,
			Validator: dateValidator(field),
		})
		if err != nil {
			return codec.FieldState{}, err
		}
		return codec.FieldState{Value: value}, nil

	default:
		value, err := f.driver.Input(ctx, InputConfig{
			Message:   label,
			Default:   current.Value,
			Help:      field.Description,
			Validator: requiredValidator(field),
		})
		if err != nil {
			return codec.FieldState{}, err
		}
		return codec.FieldState{Value: value}, nil
	}
}

func requiredValidator(field model.Field) func(string) error {
	if !field.Required {
		return nil
	}
	return func(value string) error {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s is required", field.Name)
		}
		return nil
	}
}

func numberValidator(field model.Field) func(string) error {
	return func(value string) error {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if field.Required {
				return fmt.Errorf("%s is required", field.Name)
			}
			return nil
		}
		if _, err := strconv.ParseFloat(trimmed, 64); err != nil {
			return fmt.Errorf("%s must be a number", field.Name)
		}
		return nil
	}
}

func dateValidator(field model.Field) func(string) error {
	return func(value string) error {
		trimmed := strings.TrimSpace(value)
		if trimmed == "" {
			if field.Required {
				return fmt.Errorf("%s is required", field.Name)
			}
			return nil
		}
		if _, err := time.Parse("2006-01-02", trimmed); err != nil {
			return fmt.Errorf("%s must be a YYYY-MM-DD date", field.Name)
		}
		return nil
	}
}
