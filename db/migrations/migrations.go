package migrations

import "embed"

// FS holds the campaign registry and asset ledger schema.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version this build of the launchpad runs against.
const Version uint = 1
