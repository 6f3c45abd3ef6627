// Package config provides the file layout used by a cleaning run and its validation.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Fixed file names read and written in the data directory.
const (
	RolesFile          = "roles.json"
	SkillsFile         = "skills.json"
	RolesCleanedFile   = "roles_cleaned.json"
	SkillsCleanedFile  = "skills_cleaned.json"
	defaultDataDirName = "."
)

// Config describes where a run reads its inputs and writes its outputs.
// File names are relative to Dir.
type Config struct {
	Dir          string `validate:"required"`
	RolesInput   string `validate:"required"`
	SkillsInput  string `validate:"required,nefield=RolesInput"`
	RolesOutput  string `validate:"required,nefield=RolesInput,nefield=SkillsInput"`
	SkillsOutput string `validate:"required,nefield=RolesInput,nefield=SkillsInput,nefield=RolesOutput"`
	Verbose      bool
}

// Default returns the zero-configuration layout: the fixed file names in the working directory.
func Default() Config {
	return Config{
		Dir:          defaultDataDirName,
		RolesInput:   RolesFile,
		SkillsInput:  SkillsFile,
		RolesOutput:  RolesCleanedFile,
		SkillsOutput: SkillsCleanedFile,
	}
}

// Validate checks that every path is set and that no output overwrites an input.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Dir == "" {
		result.Dir = defaults.Dir
	}
	if result.RolesInput == "" {
		result.RolesInput = defaults.RolesInput
	}
	if result.SkillsInput == "" {
		result.SkillsInput = defaults.SkillsInput
	}
	if result.RolesOutput == "" {
		result.RolesOutput = defaults.RolesOutput
	}
	if result.SkillsOutput == "" {
		result.SkillsOutput = defaults.SkillsOutput
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// Path resolves a file name against Dir.
func (c *Config) Path(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.Dir, name)
}
