// Package migrations embeds the goose SQL migrations of the quipu schema.
package migrations

import "embed"

// FS holds every *.sql migration in lexical (version) order.
//
//go:embed *.sql
var FS embed.FS
