// Package gamedata embeds the world content files and their JSON schemas.
package gamedata

import "embed"

//go:embed *.json
var dataFS embed.FS

// FS returns the embedded filesystem containing content and schema files.
func FS() embed.FS {
	return dataFS
}
