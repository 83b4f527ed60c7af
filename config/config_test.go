package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "absent.yaml"))

	cfg := LoadConfig()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, 10, cfg.Password.BcryptCost)
}

func TestLoadConfig_YAMLKeepsUnsetDefaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeYAML(t, "server:\n  port: \"9090\"\ndatabase:\n  driver: sqlite\n  dsn: social.db\n"))

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "social.db", cfg.Database.DSN)
	assert.Equal(t, "social-system", cfg.JWT.Issuer)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", writeYAML(t, "jwt:\n  secret: from-file\n  expireTime: 1h\n"))
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_EXPIRE_TIME", "0")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("DB_DRIVER", "sqlite")

	cfg := LoadConfig()

	assert.Equal(t, "from-env", cfg.JWT.Secret)
	assert.Equal(t, time.Duration(0), cfg.JWT.ExpireTime)
	assert.Equal(t, 4, cfg.Password.BcryptCost)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
}

func TestLoadConfig_DotEnvSelectsConfigFile(t *testing.T) {
	yamlPath := writeYAML(t, "server:\n  port: \"7070\"\n")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CONFIG_FILE="+yamlPath+"\n"), 0o600))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv 写入的变量不会被 t.Setenv 还原
	require.NoError(t, os.Unsetenv("CONFIG_FILE"))
	t.Cleanup(func() { _ = os.Unsetenv("CONFIG_FILE") })

	cfg := LoadConfig()

	assert.Equal(t, "7070", cfg.Server.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg := getDefaultConfig()
		cfg.JWT.Secret = "s3cret"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "ok", mutate: func(*Config) {}},
		{name: "missing secret", mutate: func(c *Config) { c.JWT.Secret = "" }, wantErr: "secret"},
		{name: "unknown driver", mutate: func(c *Config) { c.Database.Driver = "oracle" }, wantErr: "driver"},
		{name: "cost too low", mutate: func(c *Config) { c.Password.BcryptCost = 1 }, wantErr: "bcrypt"},
		{name: "negative expiry", mutate: func(c *Config) { c.JWT.ExpireTime = -time.Second }, wantErr: "expire"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
