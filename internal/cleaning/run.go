package cleaning

import (
	"fmt"

	"github.com/jonathan/skill-cleaner/internal/config"
	"github.com/jonathan/skill-cleaner/internal/dataset"
	"github.com/jonathan/skill-cleaner/internal/types"
	"go.uber.org/zap"
)

// Result is the outcome of a cleaning run.
type Result struct {
	Source  types.RoleSkills
	Roles   types.RoleSkills
	Skills  types.SkillList
	Summary Summary
}

// Run loads both inputs, cleans them, and writes both outputs.
// Nothing is written unless both inputs load successfully.
func Run(cfg config.Config, logger *zap.Logger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rolesPath := cfg.Path(cfg.RolesInput)
	roles, err := dataset.LoadRoles(rolesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}
	logger.Debug("Loaded roles", zap.String("path", rolesPath), zap.Int("roles", len(roles)))

	skillsPath := cfg.Path(cfg.SkillsInput)
	skills, err := dataset.LoadSkills(skillsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load skills: %w", err)
	}
	logger.Debug("Loaded skills", zap.String("path", skillsPath), zap.Int("skills", len(skills)))

	cleanedRoles := CleanRoles(roles)
	cleanedSkills := CleanSkills(skills)
	logger.Debug("Cleaned datasets",
		zap.Int("skills_removed", len(skills)-len(cleanedSkills)))

	rolesOut := cfg.Path(cfg.RolesOutput)
	if err := dataset.WriteJSON(rolesOut, cleanedRoles); err != nil {
		return nil, fmt.Errorf("failed to save cleaned roles: %w", err)
	}
	logger.Debug("Wrote cleaned roles", zap.String("path", rolesOut))

	skillsOut := cfg.Path(cfg.SkillsOutput)
	if err := dataset.WriteJSON(skillsOut, cleanedSkills); err != nil {
		return nil, fmt.Errorf("failed to save cleaned skills: %w", err)
	}
	logger.Debug("Wrote cleaned skills", zap.String("path", skillsOut))

	summary := Summarize(cleanedRoles, cleanedSkills)
	summary.RolesOutput = cfg.RolesOutput
	summary.SkillsOutput = cfg.SkillsOutput

	return &Result{
		Source:  roles,
		Roles:   cleanedRoles,
		Skills:  cleanedSkills,
		Summary: summary,
	}, nil
}

// Extract reads the roles input and writes the sorted unique skills to the skills input path.
func Extract(cfg config.Config, logger *zap.Logger) (types.SkillList, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	rolesPath := cfg.Path(cfg.RolesInput)
	roles, err := dataset.LoadRoles(rolesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load roles: %w", err)
	}

	skills := ExtractSkills(roles)
	skillsPath := cfg.Path(cfg.SkillsInput)
	if err := dataset.WriteJSON(skillsPath, skills); err != nil {
		return nil, fmt.Errorf("failed to save extracted skills: %w", err)
	}
	logger.Debug("Extracted skills",
		zap.String("from", rolesPath),
		zap.String("to", skillsPath),
		zap.Int("unique", len(skills)))

	return skills, nil
}
