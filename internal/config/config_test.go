package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"port": 9090,
		"database_url": "postgres://localhost/cvbuilder",
		"output_dir": "/tmp/out",
		"language": "english",
		"concurrency": 8,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "postgres://localhost/cvbuilder", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/out", cfg.OutputDir)
	assert.Equal(t, "english", cfg.Language)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfigFile(t, `{not json`)
	_, err = LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"empty config is valid", Config{}, false},
		{"valid language", Config{Language: "azerbaijani"}, false},
		{"invalid language", Config{Language: "german"}, true},
		{"negative port", Config{Port: -1}, true},
		{"port too large", Config{Port: 70000}, true},
		{"negative concurrency", Config{Concurrency: -2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateOutputDirIsFile(t *testing.T) {
	path := writeConfigFile(t, `{}`)
	cfg := Config{OutputDir: path}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		Port:        8080,
		DatabaseURL: "postgres://localhost/cvbuilder",
		Language:    "english",
		Concurrency: 2,
	})

	// Set values win, unset values come from defaults.
	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/cvbuilder", merged.DatabaseURL)
	assert.Equal(t, "english", merged.Language)
	assert.Equal(t, 2, merged.Concurrency)
}

func TestMergeWithDefaultsConcurrencyFallback(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 4, merged.Concurrency)
}
