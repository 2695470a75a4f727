// Package openapi defines the public contracts for loading and parsing the
// ticket service's OpenAPI document. Loaders resolve a Source into a raw
// Document; parsers normalise the document into Operation wrappers that the
// field-descriptor builder consumes.
package openapi
