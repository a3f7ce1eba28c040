// shadercheck builds GLSL programs on a real OpenGL context and generates
// smooth normals for built-in meshes.
package main

import (
	"fmt"
	"os"

	"github.com/Faultbox/glprogram/internal/config"
	"github.com/Faultbox/glprogram/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	switch args[0] {
	case "link":
		err = cmdLink(cfg, args[1:])
	case "normals":
		err = cmdNormals(args[1:])
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", args[0])
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shadercheck - GLSL program and mesh normal utility

Usage:
  shadercheck [flags] <command> [args]

Commands:
  link [shader.vert shader.frag]   Compile, link and introspect a program
                                   (built-in lit shaders if no files given)
  normals [cube | grid <n>]        Print generated vertex normals

Flags:
  -config <path>    Config file
  -policy <name>    immediate | deferred
  -visible          Show the GL window
  -debug            Debug logging
  -log <path>       Also log to a rotating file

Examples:
  shadercheck link
  shadercheck -policy deferred link model.vert model.frag
  shadercheck normals grid 4`)
}
