// Package shaders provides the embedded GLSL sources shadercheck links when
// no files are given.
package shaders

import "embed"

// FS holds the built-in shader pair.
//
//go:embed lit.vert lit.frag
var FS embed.FS

// Names of the built-in stages inside FS.
const (
	LitVertex   = "lit.vert"
	LitFragment = "lit.frag"
)
