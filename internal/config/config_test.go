package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// isolate points XDG at a fresh dir and moves into another fresh dir so no
// real config files leak into a test.
func isolate(t *testing.T) (xdgDir, workDir string) {
	t.Helper()
	xdgDir = t.TempDir()
	workDir = t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", xdgDir)
	t.Setenv("CALCR_LOG_LEVEL", "")
	t.Setenv("CALCR_LOG_FILE", "")
	t.Chdir(workDir)
	return xdgDir, workDir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestGlobalPath(t *testing.T) {
	t.Run("with XDG_CONFIG_HOME set", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "/custom/config")
		require.Equal(t, "/custom/config/calcr/calcr.yml", GlobalPath())
	})

	t.Run("without XDG_CONFIG_HOME", func(t *testing.T) {
		t.Setenv("XDG_CONFIG_HOME", "")
		got := GlobalPath()
		require.True(t, strings.HasSuffix(got, filepath.Join(".config", "calcr", "calcr.yml")), "got %s", got)
	})
}

func TestProjectPath(t *testing.T) {
	require.Equal(t, "calcr.yml", ProjectPath())
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, &Config{LogLevel: "info", LogFile: ""}, cfg)
}

func TestLoad_Precedence(t *testing.T) {
	xdgDir, _ := isolate(t)

	writeFile(t, filepath.Join(xdgDir, "calcr", "calcr.yml"), "log_level: warn\nlog_file: /tmp/global.log\n")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "warn", cfg.LogLevel)
	require.Equal(t, "/tmp/global.log", cfg.LogFile)

	// Project file overrides only the keys it sets.
	writeFile(t, "calcr.yml", "log_level: debug\n")

	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "/tmp/global.log", cfg.LogFile)

	// Environment wins over both files.
	t.Setenv("CALCR_LOG_LEVEL", "error")
	t.Setenv("CALCR_LOG_FILE", "/tmp/env.log")

	cfg, err = Load()
	require.NoError(t, err)
	require.Equal(t, "error", cfg.LogLevel)
	require.Equal(t, "/tmp/env.log", cfg.LogFile)
}

func TestLoad_InvalidYAML(t *testing.T) {
	isolate(t)
	writeFile(t, "calcr.yml", "log_level: [unterminated\n")

	_, err := Load()
	require.ErrorContains(t, err, "merging project config")
}

func TestRender(t *testing.T) {
	out, err := Render(&Config{LogLevel: "debug", LogFile: "calcr.log"})
	require.NoError(t, err)
	require.Equal(t, "log_level: debug\nlog_file: calcr.log\n", out)
}
