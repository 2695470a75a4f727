// Package ticketdesk is the top-level entry point for the concert ticket
// client. It bundles the service contract, exposes constructors for the
// loader and parser stages, and offers a shortcut for building the default
// ticket form descriptor table.
package ticketdesk

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	internalLoader "github.com/goliatone/go-ticketdesk/internal/openapi/loader"
	internalParser "github.com/goliatone/go-ticketdesk/internal/openapi/parser"
	"github.com/goliatone/go-ticketdesk/pkg/model"
	pkgopenapi "github.com/goliatone/go-ticketdesk/pkg/openapi"
	vanilla "github.com/goliatone/go-ticketdesk/pkg/renderers/vanilla"
)

//go:embed schema/ticketservice.json
var embeddedSchema embed.FS

const schemaPath = "schema/ticketservice.json"

// Operation ids declared by the bundled ticket service contract.
const (
	OperationList   = "listTickets"
	OperationCreate = "createTicket"
	OperationUpdate = "updateTicket"
	OperationDelete = "deleteTicket"
)

// NewLoader constructs a loader using the internal implementation while
// keeping the concrete type hidden from consumers.
func NewLoader(options ...pkgopenapi.LoaderOption) pkgopenapi.Loader {
	cfg := pkgopenapi.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewParser constructs a parser backed by the internal implementation.
func NewParser(options ...pkgopenapi.ParserOption) pkgopenapi.Parser {
	cfg := pkgopenapi.NewParserOptions(options...)
	return internalParser.New(cfg)
}

// SchemaFS exposes the embedded ticket service contract so callers can serve
// or inspect it without shipping the file separately.
func SchemaFS() fs.FS {
	return embeddedSchema
}

// DefaultDocument loads the embedded ticket service contract.
func DefaultDocument(ctx context.Context) (pkgopenapi.Document, error) {
	loader := NewLoader(pkgopenapi.WithFileSystem(embeddedSchema))
	return loader.Load(ctx, pkgopenapi.SourceFromFS(schemaPath))
}

// FormFor parses a document and builds the field descriptor table for one of
// its operations.
func FormFor(ctx context.Context, doc pkgopenapi.Document, operationID string) (model.FormModel, error) {
	parser := NewParser()
	operations, err := parser.Operations(ctx, doc)
	if err != nil {
		return model.FormModel{}, err
	}

	op, ok := operations[operationID]
	if !ok {
		return model.FormModel{}, fmt.Errorf("ticketdesk: operation %q not found in %s", operationID, doc.Location())
	}

	return model.NewBuilder().Build(op)
}

// DefaultForm builds the ticket form from the embedded contract. The create
// operation carries the full entity schema, so its descriptor table drives
// both create and edit flows.
func DefaultForm(ctx context.Context) (model.FormModel, error) {
	doc, err := DefaultDocument(ctx)
	if err != nil {
		return model.FormModel{}, err
	}
	return FormFor(ctx, doc, OperationCreate)
}

// EmbeddedTemplates exposes the built-in card renderer templates so callers
// can reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}
