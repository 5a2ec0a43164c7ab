// Package migrations содержит SQL-миграции схемы PostgreSQL для goose.
package migrations

import "embed"

// FS - встроенные файлы миграций
//
//go:embed *.sql
var FS embed.FS
