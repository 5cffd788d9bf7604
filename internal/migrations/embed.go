// Package migrations embeds the ordered schema files applied by infra.Migrate.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
