package main

import (
	_ "embed"
)

var (
	//go:embed flappy.toml
	Default_toml []byte
)
