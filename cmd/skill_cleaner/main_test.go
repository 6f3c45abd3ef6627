package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// executeCommand runs the root command with args and returns stdout and stderr.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	dataDir = "."
	verbose = false

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeDataFiles(t *testing.T, roles, skills string) string {
	t.Helper()
	dir := t.TempDir()
	if roles != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "roles.json"), []byte(roles), 0644))
	}
	if skills != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "skills.json"), []byte(skills), 0644))
	}
	return dir
}

func TestRootCommand_CleansDirectory(t *testing.T) {
	dir := writeDataFiles(t,
		`{"Backend Dev": ["Node.js", "COBOL", "Docker"], "Mainframe Dev": ["COBOL", "PL/I"]}`,
		`["Python", "Cobol", "Excel", "Fortran"]`)

	stdout, _, err := executeCommand(t, "--dir", dir)
	require.NoError(t, err)

	want := "\n🎉 Cleaning Complete!\n" +
		"Roles cleaned → roles_cleaned.json\n" +
		"Skills cleaned → skills_cleaned.json\n" +
		"Mainstream roles kept: 1\n" +
		"Empty roles: 1\n" +
		"Skills kept: 2\n"
	assert.Equal(t, want, stdout)

	roles, err := os.ReadFile(filepath.Join(dir, "roles_cleaned.json"))
	require.NoError(t, err)
	assert.Equal(t, `{
  "Backend Dev": [
    "Node.js",
    "Docker"
  ],
  "Mainframe Dev": []
}
`, string(roles))

	skills, err := os.ReadFile(filepath.Join(dir, "skills_cleaned.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"Python\",\n  \"Excel\"\n]\n", string(skills))
}

func TestRootCommand_WorkingDirectoryDefault(t *testing.T) {
	dir := writeDataFiles(t, `{"Dev": ["Go"]}`, `["Go"]`)
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	stdout, _, err := executeCommand(t)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Skills kept: 1")
	assert.FileExists(t, filepath.Join(dir, "roles_cleaned.json"))
	assert.FileExists(t, filepath.Join(dir, "skills_cleaned.json"))
}

func TestRootCommand_MissingSkills(t *testing.T) {
	dir := writeDataFiles(t, `{"Dev": ["Go"]}`, "")

	stdout, _, err := executeCommand(t, "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file not found")
	assert.Empty(t, stdout)
	assert.NoFileExists(t, filepath.Join(dir, "roles_cleaned.json"))
	assert.NoFileExists(t, filepath.Join(dir, "skills_cleaned.json"))
}

func TestRootCommand_SchemaError(t *testing.T) {
	dir := writeDataFiles(t, `["Go"]`, `["Go"]`)

	_, _, err := executeCommand(t, "--dir", dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema error")
}

func TestRootCommand_RejectsArguments(t *testing.T) {
	_, _, err := executeCommand(t, "roles.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

func TestRootCommand_VerboseBreakdownOnStderr(t *testing.T) {
	dir := writeDataFiles(t, `{"Backend Dev": ["Node.js", "COBOL"]}`, `[]`)

	stdout, stderr, err := executeCommand(t, "--dir", dir, "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stderr, "ROLE BREAKDOWN")
	assert.Contains(t, stderr, "Backend Dev: 1/2 kept")
	assert.NotContains(t, stdout, "ROLE BREAKDOWN")
	assert.Contains(t, stdout, "Skills kept: 0")
}

func TestExtractSkillsCommand(t *testing.T) {
	dir := writeDataFiles(t, `{"A": ["Python", "SQL"], "B": ["python"]}`, "")

	stdout, _, err := executeCommand(t, "extract-skills", "--dir", dir)
	require.NoError(t, err)
	assert.Equal(t, "✅ Extracted 2 unique skills → skills.json\n", stdout)

	data, err := os.ReadFile(filepath.Join(dir, "skills.json"))
	require.NoError(t, err)
	assert.Equal(t, "[\n  \"python\",\n  \"sql\"\n]\n", string(data))
}

func TestClassifyCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "classify", "Python", "COBOL", "mango")
	require.NoError(t, err)
	assert.Equal(t, "Python\ttrue\tpython\nCOBOL\tfalse\t\nmango\ttrue\tgo\n", stdout)
}

func TestClassifyCommand_RequiresArgs(t *testing.T) {
	_, _, err := executeCommand(t, "classify")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg")
}

func TestKeywordsCommand(t *testing.T) {
	stdout, _, err := executeCommand(t, "keywords")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSuffix(stdout, "\n"), "\n")
	assert.Equal(t, "python", lines[0])
	assert.Contains(t, lines, "machine learning")
}
