// Package model defines the field-descriptor table that drives coercion in
// both directions, plus the map-backed Record exchanged with the ticket
// store. Descriptors are derived from the service's OpenAPI document by the
// builder in internal/model but returned as the types defined here, keeping
// the public API decoupled from the parser.
package model
