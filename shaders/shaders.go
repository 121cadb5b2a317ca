// Package shaders bundles the GLSL sources of the built-in scenes.
package shaders

import "embed"

//go:embed *.vert *.frag
var FS embed.FS
