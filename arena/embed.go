package arena

import (
	_ "embed"
)

//go:embed default.yaml
var defaultYAML []byte

// DefaultName is the file name of the built-in arena, usable as a -arena override target
const DefaultName = "default.yaml"
