// Package cli implements the barcart command-line interface.
//
// # Overview
//
// The barcart CLI queries the drinks and ingredients catalog from a terminal
// using the same query engine that backs the barcartd REST and GraphQL
// endpoints. It can also run that server in the foreground.
//
// # Commands
//
// ingredients - List ingredients or look one up:
//
//	barcart ingredients [--id ID | --name NAME]
//
// drinks - List drinks or look them up by id, name, or ingredient:
//
//	barcart drinks [--id ID | --name NAME | --ingredient NAME]
//
// search - Case-insensitive substring match on drink names:
//
//	barcart search ojito
//
// fuzzy - Approximate match on drink names; without a term lists popular drinks:
//
//	barcart fuzzy --limit 3 margerita
//
// filter - Drinks containing every listed ingredient:
//
//	barcart filter -i gin -i "sweet vermouth" --limit 5 --offset 0
//
// random - A uniformly chosen drink:
//
//	barcart random
//
// popular - The curated popular drinks in curated order:
//
//	barcart popular
//
// serve - Serve REST and GraphQL until interrupted:
//
//	barcart serve --port 8080
//
// # Global Flags
//
//	--data-dir, -d  Catalog directory or URL (env: BARCART_DATA_DIR, default: embedded)
//	--log-level     debug, info, warn, error (env: LOG_LEVEL, default: warn)
//	--help, -h      Show command help
//	--version, -v   Show version information
//
// # Output Flags
//
// Query commands accept:
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//
// Lists render as aligned columns in table format; single records are
// flattened into key/value rows.
//
// # Exit Status
//
// Commands exit non-zero when the catalog cannot be loaded, a lookup by id
// or name finds nothing, or a random pick is requested from an empty catalog.
package cli
