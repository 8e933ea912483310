package rulepack_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winclean/rulepack/cmd/rulepack"
)

func TestNewRootCmd(t *testing.T) {
	cmd := rulepack.NewRootCmd()

	assert.Equal(t, "rulepack", cmd.Use)

	names := make(map[string]bool)
	for _, sub := range cmd.Commands() {
		names[sub.Name()] = true
	}
	assert.True(t, names["pack"])
	assert.True(t, names["unpack"])
	assert.True(t, names["info"])
	assert.True(t, names["genconfig"])

	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("quiet"))
}

func TestRootCmdWithoutSubcommand(t *testing.T) {
	cmd := rulepack.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.Error(t, err)
}

func TestPackUnpackViaCLI(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "privacy"), 0755))
	ruleDoc := "id: clear-cache\nname: Clear Cache\n"
	require.NoError(t, os.WriteFile(filepath.Join(root, "privacy", "clear-cache.yaml"), []byte(ruleDoc), 0644))

	pkgFile := filepath.Join(t.TempDir(), "rules.bin")

	var out bytes.Buffer
	cmd := rulepack.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"pack", "--input", root, "--output", pkgFile, "--compress", "zstd"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), pkgFile)

	outDir := filepath.Join(t.TempDir(), "restored")
	out.Reset()
	cmd = rulepack.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs([]string{"unpack", "--input", pkgFile, "--output", outDir})
	require.NoError(t, cmd.Execute())

	restored, err := os.ReadFile(filepath.Join(outDir, "privacy", "clear-cache.yaml"))
	require.NoError(t, err)
	assert.Equal(t, ruleDoc, string(restored))
}

func TestInfoViaCLI(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "apps"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "apps", "a.yaml"), []byte("id: a\nrisk: high\n"), 0644))

	pkgFile := filepath.Join(t.TempDir(), "rules.bin")

	cmd := rulepack.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"pack", "--input", root, "--output", pkgFile})
	require.NoError(t, cmd.Execute())

	var out bytes.Buffer
	cmd = rulepack.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"info", "--input", pkgFile})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "apps")
	assert.Contains(t, out.String(), "a")
}

func TestGenconfigViaCLI(t *testing.T) {
	var out bytes.Buffer
	cmd := rulepack.NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"genconfig"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, out.String(), "[pack]")
	assert.Contains(t, out.String(), "compress")
}
