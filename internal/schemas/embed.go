// Package schemas содержит JSON-схемы контентных документов сайта.
package schemas

import "embed"

//go:embed documents
var DocumentsFS embed.FS
