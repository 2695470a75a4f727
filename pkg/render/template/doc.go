// Package template defines renderer-agnostic template interfaces and
// adapters so card renderers stay decoupled from any concrete engine.
package template
