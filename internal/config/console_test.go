package config

import (
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConsoleConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	fs := pflag.NewFlagSet("console", pflag.ContinueOnError)
	RegisterConsoleFlags(fs)
	require.NoError(t, fs.Parse(nil))

	cfg, err := LoadConsoleConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIURL)
	assert.Equal(t, 15*time.Second, cfg.Timeout)
	assert.Empty(t, cfg.Username)
}

func TestLoadConsoleConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("CATALOG_API_URL", "http://env.example/api")
	t.Setenv("CATALOG_USERNAME", "from-env")

	fs := pflag.NewFlagSet("console", pflag.ContinueOnError)
	RegisterConsoleFlags(fs)
	require.NoError(t, fs.Parse([]string{"--api-url", "http://flag.example/api", "--timeout", "2s"}))

	cfg, err := LoadConsoleConfig(fs)
	require.NoError(t, err)
	assert.Equal(t, "http://flag.example/api", cfg.APIURL)
	assert.Equal(t, "from-env", cfg.Username)
	assert.Equal(t, 2*time.Second, cfg.Timeout)
}
