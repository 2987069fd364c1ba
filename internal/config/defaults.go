package config

import (
	_ "embed"
)

//go:embed defaults/2048.yaml
var defaultYAML []byte
