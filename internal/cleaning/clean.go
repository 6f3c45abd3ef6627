// Package cleaning filters role and skill datasets down to their mainstream entries.
package cleaning

import (
	"sort"
	"strings"

	"github.com/jonathan/skill-cleaner/internal/keywords"
	"github.com/jonathan/skill-cleaner/internal/types"
)

// CleanRoles keeps only the mainstream skills of every role.
// Every role survives, even when its list ends up empty.
func CleanRoles(roles types.RoleSkills) types.RoleSkills {
	cleaned := make(types.RoleSkills, 0, len(roles))
	for _, role := range roles {
		cleaned = append(cleaned, types.Role{
			Name:   role.Name,
			Skills: CleanSkills(role.Skills),
		})
	}
	return cleaned
}

// CleanSkills keeps only the mainstream skills, in input order.
func CleanSkills(skills types.SkillList) types.SkillList {
	cleaned := types.SkillList{}
	for _, skill := range skills {
		if keywords.IsMainstream(skill) {
			cleaned = append(cleaned, skill)
		}
	}
	return cleaned
}

// ExtractSkills collects the skills of every role, lowercased, deduplicated and sorted.
func ExtractSkills(roles types.RoleSkills) types.SkillList {
	seen := make(map[string]struct{})
	for _, role := range roles {
		for _, skill := range role.Skills {
			seen[strings.ToLower(skill)] = struct{}{}
		}
	}

	skills := make(types.SkillList, 0, len(seen))
	for skill := range seen {
		skills = append(skills, skill)
	}
	sort.Strings(skills)
	return skills
}
