package config

import (
	"fmt"

	"github.com/Faultbox/glprogram/internal/engine/shader"
)

// Policy returns the configured shader policy.
func (c *Config) Policy() (shader.Policy, error) {
	p, err := shader.ParsePolicy(c.Shader.Policy)
	if err != nil {
		return 0, fmt.Errorf("shader.policy: %w", err)
	}
	return p, nil
}
