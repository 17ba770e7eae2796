// Package azdo provides access to the Azure DevOps Extension Management
// data API: the document-storage surface behind
// .../_apis/ExtensionManagement/InstalledExtensions.
//
// The package defines [DocumentClient], the narrow capability the tool
// layer consumes, and [RESTClient], its HTTP implementation. Hosts that
// already hold an authenticated SDK connection can supply their own
// DocumentClient instead.
package azdo

import (
	"context"
	"encoding/json"

	extdata "github.com/azdo-tools/extdata-mcp"
)

// Collection addresses one document collection inside an installed
// extension's data storage.
type Collection struct {
	// Publisher is the publisher id of the extension that owns the data.
	Publisher string
	// Extension is the extension id.
	Extension string
	// Scope is the resolved scope pair (see extdata.ResolveScope).
	Scope extdata.Scope
	// Name is the collection name. Collections are created implicitly on
	// first write.
	Name string
}

// DocumentClient is the remote capability the document tools are built on.
// Get, List, Create, Set and Update return the raw response body from the
// service; Delete returns no body.
//
// The service enforces concurrency for Update through the document's
// __etag attribute: the write succeeds only when the supplied token
// matches the stored one, or unconditionally when it is the literal -1.
// Clients forward the document verbatim and leave that decision to the
// service.
type DocumentClient interface {
	GetDocument(ctx context.Context, coll Collection, documentID string) (json.RawMessage, error)
	ListDocuments(ctx context.Context, coll Collection) (json.RawMessage, error)
	CreateDocument(ctx context.Context, coll Collection, doc json.RawMessage) (json.RawMessage, error)
	SetDocument(ctx context.Context, coll Collection, doc json.RawMessage) (json.RawMessage, error)
	UpdateDocument(ctx context.Context, coll Collection, doc json.RawMessage) (json.RawMessage, error)
	DeleteDocument(ctx context.Context, coll Collection, documentID string) error
}

// ClientProvider produces an authenticated DocumentClient for one call.
// Providers may fail (missing configuration, credential acquisition); the
// tool layer surfaces such failures as ordinary error results.
type ClientProvider func(ctx context.Context) (DocumentClient, error)

// StaticProvider wraps an existing client as a ClientProvider.
func StaticProvider(c DocumentClient) ClientProvider {
	return func(context.Context) (DocumentClient, error) {
		return c, nil
	}
}
