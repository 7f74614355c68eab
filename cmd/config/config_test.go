package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		content     *string
		wantErr     bool
		errContains string
		validate    func(t *testing.T, cfg *Config)
	}{
		{
			name: "full file",
			content: ptr(`
ignore:
  mode: glob
  patterns: ["*.tmp", "**/vendor/**"]
  files: [".dupignore"]
  defaults: true
output: json
`),
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "glob", cfg.Ignore.Mode)
				assert.Equal(t, []string{"*.tmp", "**/vendor/**"}, cfg.Ignore.Patterns)
				assert.Equal(t, []string{".dupignore"}, cfg.Ignore.Files)
				assert.True(t, cfg.Ignore.Defaults)
				assert.Equal(t, "json", cfg.Output)
			},
		},
		{
			name:    "partial file keeps defaults",
			content: ptr("ignore:\n  patterns: [\"/build/\"]\n"),
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "substring", cfg.Ignore.Mode)
				assert.Equal(t, "text", cfg.Output)
				assert.Equal(t, []string{"/build/"}, cfg.Ignore.Patterns)
			},
		},
		{
			name:    "empty file",
			content: ptr(""),
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, Default(), cfg)
			},
		},
		{
			name:        "invalid yaml",
			content:     ptr("ignore: [unclosed"),
			wantErr:     true,
			errContains: "failed to parse config",
		},
		{
			name:        "explicit missing file",
			wantErr:     true,
			errContains: "failed to read config file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "dupnames.yaml")
			if tt.content != nil {
				require.NoError(t, os.WriteFile(path, []byte(*tt.content), 0o644))
			}

			cfg, err := Load(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			tt.validate(t, cfg)
		})
	}
}

func TestLoadDefaultFile(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultFile), []byte("output: yaml\n"), 0o644))
	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "yaml", cfg.Output)
}

func ptr(s string) *string { return &s }
