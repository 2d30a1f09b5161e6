package policyfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"paycalc/internal/domain/payroll"
	"paycalc/internal/domain/presets"
)

// LoadPolicy reads a YAML compensation policy, layered over the built-in
// defaults so a file only needs the fields it changes. An empty path returns
// the defaults untouched.
func LoadPolicy(path string) (payroll.Policy, error) {
	policy := payroll.DefaultPolicy()
	if path == "" {
		return policy, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return payroll.Policy{}, fmt.Errorf("read policy file: %w", err)
	}
	if err := yaml.Unmarshal(data, &policy); err != nil {
		return payroll.Policy{}, fmt.Errorf("parse policy file %s: %w", path, err)
	}
	if err := policy.Validate(); err != nil {
		return payroll.Policy{}, fmt.Errorf("invalid policy file %s: %w", path, err)
	}
	return policy, nil
}

type presetSeed struct {
	Presets []presets.Preset `yaml:"presets"`
}

// LoadPresets reads the preset seed file. The store stays in-memory; the
// file is read once at boot and never written back.
func LoadPresets(path string) ([]presets.Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets file: %w", err)
	}
	var seed presetSeed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse presets file %s: %w", path, err)
	}
	return seed.Presets, nil
}
