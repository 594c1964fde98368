package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, OutputText, conf.Output)
	assert.Equal(t, 1, conf.Search.Workers)
	assert.Equal(t, uint64(0), conf.Search.MaxSubsets)
	assert.Equal(t, time.Duration(0), conf.Search.Timeout)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.Equal(t, "text", conf.Logger.LogType)
}

func TestLoadMissingFile(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 1, conf.Search.Workers)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", `
output: json
search:
  workers: 4
  max_subsets: 1000
  timeout: 30s
logger:
  level: debug
  log_type: json
`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, OutputJSON, conf.Output)
	assert.Equal(t, 4, conf.Search.Workers)
	assert.Equal(t, uint64(1000), conf.Search.MaxSubsets)
	assert.Equal(t, 30*time.Second, conf.Search.Timeout)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.Equal(t, "json", conf.Logger.LogType)
}

func TestLoadYAMLUnknownField(t *testing.T) {
	path := writeFile(t, "config.yml", "search:\n  threads: 4\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{
  "search": {"workers": 2, "timeout": "1m30s"},
  "logger": {"level": "warn"}
}`)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, OutputText, conf.Output)
	assert.Equal(t, 2, conf.Search.Workers)
	assert.Equal(t, 90*time.Second, conf.Search.Timeout)
	assert.Equal(t, "warn", conf.Logger.Level)
	assert.Equal(t, "text", conf.Logger.LogType)
}

func TestLoadJSONErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", `{"search": `},
		{"bad duration", `{"search": {"timeout": "soon"}}`},
		{"unknown field", `{"verbose": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "config.json", tt.content)
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	path := writeFile(t, "config.toml", "output = 'json'")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestLoadEnv(t *testing.T) {
	path := writeFile(t, "config.yaml", "search:\n  workers: 4\n")

	t.Setenv("SECRETFINDER_SEARCH_WORKERS", "8")
	t.Setenv("SECRETFINDER_SEARCH_MAX_SUBSETS", "500")
	t.Setenv("SECRETFINDER_SEARCH_TIMEOUT", "5s")
	t.Setenv("SECRETFINDER_OUTPUT", "json")
	t.Setenv("SECRETFINDER_LOGGER_LEVEL", "off")
	t.Setenv("SECRETFINDER_LOGGER_ADD_SOURCE", "true")

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, conf.Search.Workers)
	assert.Equal(t, uint64(500), conf.Search.MaxSubsets)
	assert.Equal(t, 5*time.Second, conf.Search.Timeout)
	assert.Equal(t, OutputJSON, conf.Output)
	assert.Equal(t, "off", conf.Logger.Level)
	assert.True(t, conf.Logger.AddSource)
}

func TestLoadEnvInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"SECRETFINDER_SEARCH_WORKERS", "many"},
		{"SECRETFINDER_SEARCH_MAX_SUBSETS", "-1"},
		{"SECRETFINDER_SEARCH_TIMEOUT", "10"},
		{"SECRETFINDER_LOGGER_ADD_SOURCE", "maybe"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load("")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		conf    Config
		wantErr bool
	}{
		{"text", Config{Output: "text", Search: Search{Workers: 1}}, false},
		{"json upper case", Config{Output: "JSON", Search: Search{Workers: 3}}, false},
		{"unknown output", Config{Output: "xml", Search: Search{Workers: 1}}, true},
		{"zero workers", Config{Output: "text"}, true},
		{"negative timeout", Config{Output: "text", Search: Search{Workers: 1, Timeout: -time.Second}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.conf.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSearchOptions(t *testing.T) {
	conf := Config{Search: Search{Workers: 2, MaxSubsets: 10}}
	assert.Len(t, conf.SearchOptions(), 2)
}

func TestApplyDefaultTagsKeepsSetValues(t *testing.T) {
	conf := Config{Output: "json"}
	conf.Search.Workers = 6

	require.NoError(t, applyDefaultTags(reflect.ValueOf(&conf).Elem()))

	assert.Equal(t, "json", conf.Output)
	assert.Equal(t, 6, conf.Search.Workers)
	assert.Equal(t, "info", conf.Logger.Level)
}
