// Package levels bundles the level files shipped with the viewer.
package levels

import "embed"

//go:embed *.yaml *.tmx
var FS embed.FS

// Default is the name of the level the viewer opens first.
const Default = "meadow"
