package main

import _ "embed"

// embeddedConfig holds the YAML configuration compiled into the binary.
// It sits between the built-in defaults and any config file on disk;
// packagers may overwrite embed_config.yaml before building.
//
//go:embed embed_config.yaml
var embeddedConfig []byte
