// Package migrations embute os arquivos SQL aplicados pelo golang-migrate.
package migrations

import "embed"

//go:embed *.sql
var Files embed.FS
