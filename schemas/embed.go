// Package schemas embeds the JSON Schemas that describe the shape of the input datasets.
package schemas

import "embed"

// Schema file names.
const (
	Roles  = "roles.schema.json"
	Skills = "skills.schema.json"
)

// FS holds every *.schema.json file in this directory.
//
//go:embed *.schema.json
var FS embed.FS
