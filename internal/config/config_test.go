package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		filePath  string
		wantErr   bool
		errString string
	}{
		{
			name:     "valid config file",
			filePath: "testdata/valid_config.yaml",
			wantErr:  false,
		},
		{
			name:      "non-existent file",
			filePath:  "testdata/nonexistent.yaml",
			wantErr:   true,
			errString: "failed to read config file",
		},
		{
			name:      "malformed yaml",
			filePath:  "testdata/malformed.yaml",
			wantErr:   true,
			errString: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(tt.filePath)

			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
				assert.Nil(t, cfg)
			} else {
				require.NoError(t, err)
				require.NotNil(t, cfg)

				assert.Equal(t, 8080, cfg.Server.Port)
				assert.Equal(t, "jobs.db", cfg.Database.Path)
				assert.Equal(t, "tech-secret", cfg.Auth.TechToken)
				assert.Equal(t, "admin-secret", cfg.Auth.AdminToken)
				assert.Equal(t, "jobtrack-api", cfg.App.Name)
			}
		})
	}
}

func TestLoad_EnvOverridesTokens(t *testing.T) {
	t.Setenv("TECH_TOKEN", "tech-from-env")
	t.Setenv("ADMIN_TOKEN", "admin-from-env")

	cfg, err := Load("testdata/valid_config.yaml")
	require.NoError(t, err)

	assert.Equal(t, "tech-from-env", cfg.Auth.TechToken)
	assert.Equal(t, "admin-from-env", cfg.Auth.AdminToken)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: 8080},
			Database: DatabaseConfig{Path: "jobs.db"},
			Auth: AuthConfig{
				TechToken:  "tech-secret",
				AdminToken: "admin-secret",
			},
		}
	}

	tests := []struct {
		name      string
		mutate    func(*Config)
		wantErr   bool
		errString string
	}{
		{
			name:    "valid config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name:      "invalid server port - too low",
			mutate:    func(c *Config) { c.Server.Port = 0 },
			wantErr:   true,
			errString: "invalid server port",
		},
		{
			name:      "invalid server port - too high",
			mutate:    func(c *Config) { c.Server.Port = 70000 },
			wantErr:   true,
			errString: "invalid server port",
		},
		{
			name:      "missing database path",
			mutate:    func(c *Config) { c.Database.Path = "" },
			wantErr:   true,
			errString: "database path is required",
		},
		{
			name:      "missing tech token",
			mutate:    func(c *Config) { c.Auth.TechToken = "" },
			wantErr:   true,
			errString: "tech token is required",
		},
		{
			name:      "missing admin token",
			mutate:    func(c *Config) { c.Auth.AdminToken = "" },
			wantErr:   true,
			errString: "admin token is required",
		},
		{
			name: "identical tokens",
			mutate: func(c *Config) {
				c.Auth.TechToken = "same"
				c.Auth.AdminToken = "same"
			},
			wantErr:   true,
			errString: "must differ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errString)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
