// Package extdata provides the domain types for an MCP server over the
// Azure DevOps extension data storage service.
//
// Extension data storage is a scoped document store: JSON documents live in
// named collections owned by a publisher+extension pair, addressed on two
// axes — an organization-wide (Default) scope or a per-user (User) scope.
// Documents carry two reserved attributes: "id" (the key within a
// collection) and "__etag" (an opaque version token the service increments
// on every write, used for optimistic concurrency).
//
// This package holds the pure pieces: scope resolution and document helpers.
// The remote client lives in [github.com/azdo-tools/extdata-mcp/azdo] and
// the MCP tool surface in [github.com/azdo-tools/extdata-mcp/tools].
//
// # Basic Usage
//
// Wire a REST client into the tool server and serve over stdio:
//
//	client, err := azdo.NewRESTClient("https://dev.azure.com/myorg",
//	    azdo.WithAccessToken(os.Getenv("AZDO_PAT")),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := tools.ServeStdio(azdo.StaticProvider(client)); err != nil {
//	    log.Fatal(err)
//	}
package extdata
