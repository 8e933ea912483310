// Test Type: Unit Test
// Description: Tests for the pack command - packaging a rules directory

package pack_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winclean/rulepack/pkg/commands/pack"
	"github.com/winclean/rulepack/pkg/errors"
)

func writeRule(t *testing.T, root, category, filename, content string) {
	t.Helper()
	dir := filepath.Join(root, category)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, filename), []byte(content), 0644))
}

func TestPackRules(t *testing.T) {
	root := t.TempDir()
	writeRule(t, root, "browsers", "chrome.yaml", "id: chrome\nrisk: medium\n")
	writeRule(t, root, "privacy", "temp.yaml", "id: temp\n")

	out := filepath.Join(t.TempDir(), "dist", "rules.bin")
	result, err := pack.PackRules(pack.PackRulesOptions{
		InputDir:    root,
		OutputPath:  out,
		Compression: "zstd",
		Glob:        "*.yaml",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, result.RuleCount)
	assert.Equal(t, []string{"browsers", "privacy"}, result.Categories)
	assert.Equal(t, "zstd", result.Compression)
	assert.Greater(t, result.EncodedSize, 0)
	assert.Greater(t, result.CompressedSize, 0)
	assert.Len(t, result.PackedFiles, 2)

	// The parent directory was created and the file written.
	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Equal(t, int64(result.CompressedSize), info.Size())
}

func TestPackRulesIdempotent(t *testing.T) {
	root := t.TempDir()
	writeRule(t, root, "apps", "office.yaml", "id: office\n")

	clock := func() time.Time { return time.Unix(1700000000, 0) }

	outA := filepath.Join(t.TempDir(), "a.bin")
	outB := filepath.Join(t.TempDir(), "b.bin")

	_, err := pack.PackRules(pack.PackRulesOptions{
		InputDir: root, OutputPath: outA, Compression: "none", Glob: "*.yaml", Clock: clock,
	})
	require.NoError(t, err)
	_, err = pack.PackRules(pack.PackRulesOptions{
		InputDir: root, OutputPath: outB, Compression: "none", Glob: "*.yaml", Clock: clock,
	})
	require.NoError(t, err)

	a, err := os.ReadFile(outA)
	require.NoError(t, err)
	b, err := os.ReadFile(outB)
	require.NoError(t, err)
	assert.Equal(t, a, b, "same input and time must yield byte-identical output")
}

func TestPackRulesUnsupportedCompression(t *testing.T) {
	root := t.TempDir()
	writeRule(t, root, "apps", "a.yaml", "id: a\n")

	out := filepath.Join(t.TempDir(), "rules.bin")
	_, err := pack.PackRules(pack.PackRulesOptions{
		InputDir:    root,
		OutputPath:  out,
		Compression: "rot13",
		Glob:        "*.yaml",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigCompression))
	assert.Contains(t, err.Error(), "rot13")

	// No output file may exist after a failed pack.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPackRulesMalformedDocumentAborts(t *testing.T) {
	root := t.TempDir()
	writeRule(t, root, "apps", "good.yaml", "id: good\n")
	writeRule(t, root, "apps", "bad.yaml", "id: [unclosed\n  x: {")

	out := filepath.Join(t.TempDir(), "rules.bin")
	_, err := pack.PackRules(pack.PackRulesOptions{
		InputDir:    root,
		OutputPath:  out,
		Compression: "none",
		Glob:        "*.yaml",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrExtractionParse))

	// A failed pack must not leave a truncated output file.
	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPackRulesMissingInput(t *testing.T) {
	_, err := pack.PackRules(pack.PackRulesOptions{
		InputDir:    filepath.Join(t.TempDir(), "missing"),
		OutputPath:  filepath.Join(t.TempDir(), "rules.bin"),
		Compression: "zstd",
		Glob:        "*.yaml",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrDiscoveryRoot))
}
