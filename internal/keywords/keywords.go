// Package keywords holds the mainstream keyword table and the substring classifier built on it.
package keywords

import "strings"

// mainstream is the editable allow-list of lowercase technology terms.
// Order only affects Match results; duplicates are harmless.
var mainstream = [...]string{
	"python", "java", "javascript", "typescript", "c++", "c#", "go", "rust", "php", "ruby",
	"html", "css", "react", "vue", "angular", "node", "express", "django", "flask", "spring",
	"sql", "mysql", "postgresql", "postgres", "sqlite", "mongodb", "redis", "oracle",
	"git", "github", "gitlab", "docker", "kubernetes", "linux", "bash", "shell",
	"aws", "gcp", "azure", "firebase", "terraform", "ansible",
	"machine learning", "deep learning", "pytorch", "tensorflow", "scikit-learn",
	"nlp", "computer vision", "opencv", "pandas", "numpy",
	"excel", "microsoft excel", "power bi", "tableau", "hadoop", "spark", "mongo", "mongodb",
}

// All returns a copy of the keyword table in declaration order.
func All() []string {
	out := make([]string, len(mainstream))
	copy(out, mainstream[:])
	return out
}

// IsMainstream reports whether any keyword occurs as a substring of the
// lowercased skill, so "mango" matches "go".
func IsMainstream(skill string) bool {
	_, ok := Match(skill)
	return ok
}

// Match returns the first keyword, in table order, contained in the lowercased skill.
func Match(skill string) (string, bool) {
	s := strings.ToLower(skill)
	for _, key := range mainstream {
		if strings.Contains(s, key) {
			return key, true
		}
	}
	return "", false
}
