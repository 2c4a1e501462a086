package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "http://localhost:4000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, ".parve", cfg.Storage.Dir)
	assert.Equal(t, false, cfg.Roaming.Enabled)
	assert.Equal(t, "localhost:9000", cfg.Roaming.Endpoint)
	assert.Equal(t, "parve-access-key", cfg.Roaming.AccessKey)
	assert.Equal(t, "parve-secret-key", cfg.Roaming.SecretKey)
	assert.Equal(t, "parve-state", cfg.Roaming.Bucket)
	assert.Equal(t, false, cfg.Roaming.UseSSL)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "2",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, 2, cfg.LogLevel)
			},
		},
		{
			name: "api config override",
			envVars: map[string]string{
				"API_BASE_URL": "https://api.parve.example/api",
				"API_TIMEOUT":  "3s",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "https://api.parve.example/api", cfg.API.BaseURL)
				assert.Equal(t, 3*time.Second, cfg.API.Timeout)
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"STORAGE_DIR": "/tmp/parve-state",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/tmp/parve-state", cfg.Storage.Dir)
			},
		},
		{
			name: "roaming config override",
			envVars: map[string]string{
				"MINIO_ENABLED":     "true",
				"MINIO_ENDPOINT":    "minio.example.com:9000",
				"MINIO_ACCESS_KEY":  "access123",
				"MINIO_SECRET_KEY":  "secret123",
				"MINIO_BUCKET_NAME": "custom-bucket",
				"MINIO_USE_SSL":     "true",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, true, cfg.Roaming.Enabled)
				assert.Equal(t, "minio.example.com:9000", cfg.Roaming.Endpoint)
				assert.Equal(t, "access123", cfg.Roaming.AccessKey)
				assert.Equal(t, "secret123", cfg.Roaming.SecretKey)
				assert.Equal(t, "custom-bucket", cfg.Roaming.Bucket)
				assert.Equal(t, true, cfg.Roaming.UseSSL)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				os.Setenv(key, value)
				defer os.Unsetenv(key)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}
