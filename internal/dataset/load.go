// Package dataset reads the role and skill JSON documents and writes their cleaned counterparts.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jonathan/skill-cleaner/internal/schemas"
	"github.com/jonathan/skill-cleaner/internal/types"
	files "github.com/jonathan/skill-cleaner/schemas"
)

// LoadRoles loads a role to skills mapping from a JSON object file.
func LoadRoles(path string) (types.RoleSkills, error) {
	content, err := readDocument(path, files.Roles)
	if err != nil {
		return nil, err
	}

	var roles types.RoleSkills
	if err := json.Unmarshal(content, &roles); err != nil {
		return nil, &SchemaError{
			Path:    path,
			Message: "roles document must be an object of string arrays",
			Cause:   err,
		}
	}
	return roles, nil
}

// LoadSkills loads a flat skill list from a JSON array file.
func LoadSkills(path string) (types.SkillList, error) {
	content, err := readDocument(path, files.Skills)
	if err != nil {
		return nil, err
	}

	var skills types.SkillList
	if err := json.Unmarshal(content, &skills); err != nil {
		return nil, &SchemaError{
			Path:    path,
			Message: "skills document must be an array of strings",
			Cause:   err,
		}
	}
	return skills, nil
}

// readDocument reads the whole file and checks it is JSON of the shape described by schemaName.
func readDocument(path, schemaName string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path, Cause: err}
		}
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	var raw json.RawMessage
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, &ParseError{Path: path, Cause: err}
	}

	if err := schemas.Validate(schemaName, content); err != nil {
		var validationErr *schemas.ValidationError
		if errors.As(err, &validationErr) {
			return nil, &SchemaError{
				Path:    path,
				Message: fmt.Sprintf("document does not match %s", schemaName),
				Cause:   err,
			}
		}
		return nil, fmt.Errorf("failed to validate %s: %w", path, err)
	}

	return content, nil
}
