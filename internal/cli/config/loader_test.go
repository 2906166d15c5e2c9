package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultDBFile, cfg.DBPath)
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
	assert.False(t, cfg.Verbose)
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/book.db\noutput: json\n"), 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/book.db", cfg.DBPath)
	assert.Equal(t, "json", cfg.OutputFormat)
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carnet.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: /tmp/from-file.db\n"), 0o644))

	t.Setenv("CARNET_DB_PATH", "/tmp/from-env.db")

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.DBPath)
}

func TestLoadFlagsOverrideEverything(t *testing.T) {
	t.Setenv("CARNET_DB_PATH", "/tmp/from-env.db")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("db", "", "")
	flags.String("output", "", "")
	require.NoError(t, flags.Parse([]string{"--db", "/tmp/from-flag.db"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)

	// --db maps to db_path and wins over the environment
	assert.Equal(t, "/tmp/from-flag.db", cfg.DBPath)
	// unchanged flags fall through to lower layers
	assert.Equal(t, DefaultOutput, cfg.OutputFormat)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"), nil)
	assert.Error(t, err)
}
