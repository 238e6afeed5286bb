// Package dataset embeds the bundled brickset dataset.
package dataset

import "embed"

// DefaultResource is the name of the bundled dataset file.
const DefaultResource = "brickset.json"

// FS contains the bundled dataset embedded at compile time.
//
//go:embed brickset.json
var FS embed.FS
