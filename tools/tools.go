// Package tools exposes the extension data store as a set of MCP tools.
//
// Six operations are served, one per document verb:
//
//	extensiondata_get_document
//	extensiondata_get_documents
//	extensiondata_create_document
//	extensiondata_set_document
//	extensiondata_update_document
//	extensiondata_delete_document
//
// All six share one executor: parse arguments, resolve the collection
// scope, acquire a client from the supplied [azdo.ClientProvider], make
// exactly one remote call, and shape the outcome. Every call returns a
// well-formed result — failures of any kind (bad arguments, missing
// configuration, remote rejection, transport fault) come back as an error
// result with a readable message, never as a raised error.
//
// Example:
//
//	client, _ := azdo.NewRESTClient("https://dev.azure.com/myorg",
//	    azdo.WithAccessToken(pat),
//	)
//
//	if err := tools.ServeStdio(azdo.StaticProvider(client),
//	    tools.WithName("extdata-mcp"),
//	    tools.WithVersion("1.0.0"),
//	); err != nil {
//	    log.Fatal(err)
//	}
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/tidwall/gjson"

	extdata "github.com/azdo-tools/extdata-mcp"
	"github.com/azdo-tools/extdata-mcp/azdo"
)

type opKind int

const (
	opGet opKind = iota
	opList
	opCreate
	opSet
	opUpdate
	opDelete
)

// operation describes one document tool: its public name, the label used
// in error-result text, which arguments it takes, and the remote verb.
type operation struct {
	kind        opKind
	name        string
	label       string // verb-ing phrase for "Error <label>: <detail>"
	description string
	needsID     bool   // takes a documentId argument
	needsDoc    bool   // takes a document argument
	needsDocID  bool   // the document must carry a non-empty id
	opWord      string // operation word in the missing-id message
}

var operations = []operation{
	{
		kind:        opGet,
		name:        "extensiondata_get_document",
		label:       "getting document",
		description: "Get a single document by id from a collection in an extension's data storage.",
		needsID:     true,
	},
	{
		kind:        opList,
		name:        "extensiondata_get_documents",
		label:       "getting documents",
		description: "Get all documents from a collection in an extension's data storage. The service returns at most 100,000 documents per collection.",
	},
	{
		kind:        opCreate,
		name:        "extensiondata_create_document",
		label:       "creating document",
		description: "Create a new document in a collection. Fails if a document with the same id already exists; omit the id to have the service assign one.",
		needsDoc:    true,
	},
	{
		kind:        opSet,
		name:        "extensiondata_set_document",
		label:       "setting document",
		description: "Set a document in a collection, creating it if absent or fully overwriting it if present. The document must include an id.",
		needsDoc:    true,
		needsDocID:  true,
		opWord:      "set",
	},
	{
		kind:        opUpdate,
		name:        "extensiondata_update_document",
		label:       "updating document",
		description: "Update an existing document using optimistic concurrency. The document's __etag must match the stored version; pass -1 to force the update.",
		needsDoc:    true,
		needsDocID:  true,
		opWord:      "update",
	},
	{
		kind:        opDelete,
		name:        "extensiondata_delete_document",
		label:       "deleting document",
		description: "Delete a document by id from a collection in an extension's data storage.",
		needsID:     true,
	},
}

// Option configures a Server.
type Option func(*config)

type config struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) Option {
	return func(c *config) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) Option {
	return func(c *config) {
		c.version = version
	}
}

// NewServer creates an MCP server exposing the six extension data tools,
// backed by clients from the given provider.
func NewServer(provider azdo.ClientProvider, opts ...Option) *server.MCPServer {
	cfg := &config{
		name:    "extdata-mcp",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)
	Register(s, provider)
	return s
}

// Register mounts the extension data tools onto an existing MCP server.
func Register(s *server.MCPServer, provider azdo.ClientProvider) {
	for _, op := range operations {
		s.AddTool(op.tool(), op.handler(provider))
	}
}

// ServeStdio serves the extension data tools over stdin/stdout, the
// standard transport for MCP servers invoked as subprocesses.
func ServeStdio(provider azdo.ClientProvider, opts ...Option) error {
	return server.ServeStdio(NewServer(provider, opts...))
}

// tool builds the MCP tool declaration for an operation.
func (o operation) tool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(o.description),
		mcp.WithString("publisherName",
			mcp.Required(),
			mcp.Description("Publisher id of the extension that owns the data."),
		),
		mcp.WithString("extensionName",
			mcp.Required(),
			mcp.Description("Extension id that owns the data."),
		),
		mcp.WithString("collectionName",
			mcp.Required(),
			mcp.Description("Name of the document collection. Collections are created implicitly on first write."),
		),
	}
	if o.needsID {
		opts = append(opts, mcp.WithString("documentId",
			mcp.Required(),
			mcp.Description("Id of the document."),
		))
	}
	if o.needsDoc {
		opts = append(opts, mcp.WithObject("document",
			mcp.Required(),
			mcp.Description("The document to store, as a JSON object."),
		))
	}
	opts = append(opts,
		mcp.WithString("scopeType",
			mcp.Enum(string(extdata.ScopeDefault), string(extdata.ScopeUser)),
			mcp.Description("Collection scope: Default (organization-wide) or User (per-user)."),
		),
		mcp.WithString("scopeValue",
			mcp.Description("Scope value override; defaults to Current for Default scope and me for User scope."),
		),
	)
	return mcp.NewTool(o.name, opts...)
}

// handler builds the executor for an operation. Handlers never return a Go
// error; every failure is shaped into an error result.
func (o operation) handler(provider azdo.ClientProvider) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		publisher, err := req.RequireString("publisherName")
		if err != nil {
			return o.failure(err), nil
		}
		extension, err := req.RequireString("extensionName")
		if err != nil {
			return o.failure(err), nil
		}
		collection, err := req.RequireString("collectionName")
		if err != nil {
			return o.failure(err), nil
		}

		var documentID string
		if o.needsID {
			if documentID, err = req.RequireString("documentId"); err != nil {
				return o.failure(err), nil
			}
		}

		var doc json.RawMessage
		if o.needsDoc {
			if doc, err = documentArg(req); err != nil {
				return o.failure(err), nil
			}
			if o.needsDocID && extdata.DocumentID(doc) == "" {
				return o.failureText(fmt.Sprintf("Document must include an 'id' property for %s operation", o.opWord)), nil
			}
		}

		coll := azdo.Collection{
			Publisher: publisher,
			Extension: extension,
			Scope: extdata.ResolveScope(
				extdata.ScopeType(req.GetString("scopeType", "")),
				req.GetString("scopeValue", ""),
			),
			Name: collection,
		}

		client, err := provider(ctx)
		if err != nil {
			return o.failure(err), nil
		}

		switch o.kind {
		case opGet:
			return o.document(client.GetDocument(ctx, coll, documentID))
		case opList:
			raw, err := client.ListDocuments(ctx, coll)
			if err != nil {
				return o.failure(err), nil
			}
			// The REST surface wraps lists in {"count": n, "value": [...]};
			// other client implementations may return the array directly.
			if value := gjson.GetBytes(raw, "value"); value.IsArray() {
				raw = json.RawMessage(value.Raw)
			}
			return o.document(raw, nil)
		case opCreate:
			return o.document(client.CreateDocument(ctx, coll, doc))
		case opSet:
			return o.document(client.SetDocument(ctx, coll, doc))
		case opUpdate:
			return o.document(client.UpdateDocument(ctx, coll, doc))
		case opDelete:
			if err := client.DeleteDocument(ctx, coll, documentID); err != nil {
				return o.failure(err), nil
			}
			return mcp.NewToolResultText(fmt.Sprintf("Document %q deleted from collection %q.", documentID, collection)), nil
		default:
			return o.failureText("Unknown error occurred"), nil
		}
	}
}

// document renders a successful JSON payload, or normalizes the error.
func (o operation) document(raw json.RawMessage, err error) (*mcp.CallToolResult, error) {
	if err != nil {
		return o.failure(err), nil
	}
	text, err := extdata.RenderJSON(raw)
	if err != nil {
		return o.failure(err), nil
	}
	return mcp.NewToolResultText(text), nil
}

// failure shapes any error as the uniform error result.
func (o operation) failure(err error) *mcp.CallToolResult {
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	if detail == "" {
		detail = "Unknown error occurred"
	}
	return o.failureText(detail)
}

func (o operation) failureText(detail string) *mcp.CallToolResult {
	return mcp.NewToolResultError(fmt.Sprintf("Error %s: %s", o.label, detail))
}

// documentArg extracts the "document" argument as raw JSON.
func documentArg(req mcp.CallToolRequest) (json.RawMessage, error) {
	value, ok := req.GetArguments()["document"]
	if !ok || value == nil {
		return nil, fmt.Errorf("required argument %q not found", "document")
	}
	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("invalid document argument: %w", err)
	}
	return data, nil
}
