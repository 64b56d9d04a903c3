package cobrax

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	LogLevel string `yaml:"logLevel"`
	KeysPath string `yaml:"keysPath"`
}

func TestLoadConfigFromFile(t *testing.T) {
	t.Parallel()

	name := t.TempDir() + "/config.yaml"
	require.NoError(t, os.WriteFile(name, []byte("keysPath: /var/lib/elara/signer.yaml\n"), 0o644))

	cfg := &testConfig{LogLevel: "info", KeysPath: "keys.yaml"}
	require.NoError(t, LoadConfigFromFile(name, cfg))
	assert.Equal(t, "/var/lib/elara/signer.yaml", cfg.KeysPath)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, "info", cfg.LogLevel)

	// An empty file name is a no-op.
	require.NoError(t, LoadConfigFromFile("", cfg))
	assert.Equal(t, "/var/lib/elara/signer.yaml", cfg.KeysPath)

	require.Error(t, LoadConfigFromFile(t.TempDir()+"/missing.yaml", cfg))
	require.NoError(t, os.WriteFile(name, []byte(":not yaml:["), 0o644))
	require.Error(t, LoadConfigFromFile(name, cfg))
}

func TestGetConfigNameFromArgs(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"elara", "--config", "conf.yaml", "address"}
	assert.Equal(t, "conf.yaml", GetConfigNameFromArgs())

	os.Args = []string{"elara", "-c", "conf.yaml"}
	assert.Equal(t, "conf.yaml", GetConfigNameFromArgs())

	os.Args = []string{"elara", "address"}
	assert.Empty(t, GetConfigNameFromArgs())
}
