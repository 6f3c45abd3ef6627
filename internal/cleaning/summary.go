package cleaning

import "github.com/jonathan/skill-cleaner/internal/types"

// Summary holds the counts reported at the end of a run.
type Summary struct {
	RolesOutput  string
	SkillsOutput string
	RolesKept    int
	RolesEmpty   int
	SkillsKept   int
}

// Summarize counts roles with and without remaining skills, and the kept skills.
func Summarize(roles types.RoleSkills, skills types.SkillList) Summary {
	var s Summary
	for _, role := range roles {
		if len(role.Skills) > 0 {
			s.RolesKept++
		} else {
			s.RolesEmpty++
		}
	}
	s.SkillsKept = len(skills)
	return s
}
