package main

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/glprogram/cmd/shadercheck/shaders"
	"github.com/Faultbox/glprogram/internal/config"
	"github.com/Faultbox/glprogram/internal/engine/shader"
	"github.com/Faultbox/glprogram/internal/engine/shader/gldevice"
	"github.com/Faultbox/glprogram/internal/engine/window"
	"github.com/Faultbox/glprogram/internal/logger"
)

func cmdLink(cfg *config.Config, args []string) error {
	if len(args) != 0 && len(args) != 2 {
		return fmt.Errorf("usage: shadercheck link [shader.vert shader.frag]")
	}

	policy, err := cfg.Policy()
	if err != nil {
		return err
	}

	win, err := window.New(window.Config{
		Title:   "shadercheck",
		Width:   cfg.Window.Width,
		Height:  cfg.Window.Height,
		Visible: cfg.Window.Visible,
		VSync:   cfg.Window.VSync,
	})
	if err != nil {
		return err
	}
	defer win.Close()

	dev, err := gldevice.New()
	if err != nil {
		return err
	}
	logger.Info("OpenGL ready", zap.String("version", dev.Version()), zap.Stringer("policy", policy))

	prog := shader.New(dev, policy)
	defer prog.Delete()

	if len(args) == 0 {
		if err := prog.AttachShaderFS(shaders.FS, shaders.LitVertex, shader.StageVertex); err != nil {
			return err
		}
		if err := prog.AttachShaderFS(shaders.FS, shaders.LitFragment, shader.StageFragment); err != nil {
			return err
		}
	} else {
		for _, path := range args {
			stage, err := shader.StageForFile(path)
			if err != nil {
				return err
			}
			// Compile errors are reported by the program and surface
			// again as the link failure below.
			if err := prog.AttachShaderFile(path, stage); err != nil {
				var fetchErr *shader.SourceFetchError
				if errors.As(err, &fetchErr) {
					return err
				}
			}
		}
	}

	if err := prog.BindAttribLocation(cfg.Shader.AttribLocations); err != nil {
		return err
	}
	_ = prog.Link()
	prog.Use()

	if prog.State() != shader.StateReady {
		return prog.Err()
	}

	fmt.Printf("Program: %d (%s)\n", prog.Handle(), policy)
	printLocations("Attributes", prog.Attribs())
	printLocations("Uniforms", prog.Uniforms())
	return nil
}

func printLocations(title string, locs map[string]int32) {
	fmt.Printf("%s:\n", title)
	for _, name := range slices.Sorted(maps.Keys(locs)) {
		fmt.Printf("  %-24s %d\n", name, locs[name])
	}
}
