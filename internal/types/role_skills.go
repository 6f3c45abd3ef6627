// Package types provides the data model shared by the loader, the cleaner and the CLI.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// SkillList is an ordered, flat list of skill names.
type SkillList []string

// MarshalJSON encodes the list, writing an empty array instead of null for a nil list.
func (s SkillList) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("[]"), nil
	}
	return marshalNoEscape([]string(s))
}

// Role is a single named entry of a RoleSkills mapping.
type Role struct {
	Name   string
	Skills SkillList
}

// RoleSkills maps role names to skill lists while keeping the document order of the roles.
// Role names are unique.
type RoleSkills []Role

// Get returns the skills of the named role.
func (r RoleSkills) Get(name string) (SkillList, bool) {
	for _, role := range r {
		if role.Name == name {
			return role.Skills, true
		}
	}
	return nil, false
}

// Names returns the role names in order.
func (r RoleSkills) Names() []string {
	names := make([]string, len(r))
	for i, role := range r {
		names[i] = role.Name
	}
	return names
}

// Set replaces the skills of an existing role in place, or appends a new role.
func (r *RoleSkills) Set(name string, skills SkillList) {
	for i := range *r {
		if (*r)[i].Name == name {
			(*r)[i].Skills = skills
			return
		}
	}
	*r = append(*r, Role{Name: name, Skills: skills})
}

// MarshalJSON encodes the roles as a JSON object in their stored order.
func (r RoleSkills) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, role := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := marshalNoEscape(role.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal role name %q: %w", role.Name, err)
		}
		value, err := role.Skills.MarshalJSON()
		if err != nil {
			return nil, fmt.Errorf("failed to marshal skills of role %q: %w", role.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object of string arrays, keeping key order.
// A repeated key keeps its first position and takes the last value.
func (r *RoleSkills) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}
	parsed := gjson.ParseBytes(data)
	if !parsed.IsObject() {
		return fmt.Errorf("roles must be a JSON object, got %s", parsed.Type)
	}

	roles := RoleSkills{}
	index := make(map[string]int)
	var walkErr error
	parsed.ForEach(func(key, value gjson.Result) bool {
		skills, err := skillsFromResult(value)
		if err != nil {
			walkErr = fmt.Errorf("role %q: %w", key.String(), err)
			return false
		}
		name := key.String()
		if i, exists := index[name]; exists {
			roles[i].Skills = skills
			return true
		}
		index[name] = len(roles)
		roles = append(roles, Role{Name: name, Skills: skills})
		return true
	})
	if walkErr != nil {
		return walkErr
	}

	*r = roles
	return nil
}

// UnmarshalJSON decodes a JSON array of strings.
func (s *SkillList) UnmarshalJSON(data []byte) error {
	if !gjson.ValidBytes(data) {
		return fmt.Errorf("invalid JSON")
	}
	skills, err := skillsFromResult(gjson.ParseBytes(data))
	if err != nil {
		return err
	}
	*s = skills
	return nil
}

func skillsFromResult(value gjson.Result) (SkillList, error) {
	if !value.IsArray() {
		return nil, fmt.Errorf("skills must be a JSON array, got %s", value.Type)
	}
	skills := SkillList{}
	var walkErr error
	value.ForEach(func(_, item gjson.Result) bool {
		if item.Type != gjson.String {
			walkErr = fmt.Errorf("skill at position %d must be a string, got %s", len(skills), item.Type)
			return false
		}
		skills = append(skills, item.String())
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return skills, nil
}

// marshalNoEscape encodes v without HTML escaping so names like "AT&T" stay readable.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
