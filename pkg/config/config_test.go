package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/limbo/lifeboard/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LB_TEST_ADDR=:9090\nLB_TEST_GUEST=true\nLB_TEST_SIZE=64\nLB_TEST_TTL=90s\n"), 0600))
	t.Cleanup(func() {
		for _, k := range []string{"LB_TEST_ADDR", "LB_TEST_GUEST", "LB_TEST_SIZE", "LB_TEST_TTL"} {
			os.Unsetenv(k)
		}
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.GetString("LB_TEST_ADDR"))
	assert.True(t, cfg.GetBool("LB_TEST_GUEST", false))
	assert.Equal(t, 64, cfg.GetInt("LB_TEST_SIZE", 1))
	assert.Equal(t, 90*time.Second, cfg.GetDuration("LB_TEST_TTL", time.Second))
}

func TestLoadMissingFile(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestDefaults(t *testing.T) {
	t.Setenv("LB_TEST_BAD_INT", "many")
	t.Setenv("LB_TEST_BAD_BOOL", "perhaps")
	cfg := &config.Config{}
	assert.Equal(t, 7, cfg.GetInt("LB_TEST_BAD_INT", 7))
	assert.True(t, cfg.GetBool("LB_TEST_BAD_BOOL", true))
	assert.Equal(t, "fallback", cfg.GetStringOr("LB_TEST_UNSET", "fallback"))
	assert.Equal(t, time.Minute, cfg.GetDuration("LB_TEST_UNSET", time.Minute))
}
