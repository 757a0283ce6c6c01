// Copyright (c) 2026 Hyperscale Consulting Ltd.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig points OZONE_CFG_FILE at a testdata file and resets the
// global Config so the next getter reloads it.
func setupTestConfig(t *testing.T, testdataFile string) {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("testdata", testdataFile))
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("OZONE_CFG_FILE", absPath)
	Reset()
	t.Cleanup(Reset)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name      string
		testFile  string
		checkFunc func(*testing.T, Type)
	}{
		{
			name:     "simple string values",
			testFile: "simple.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source)
				assert.Equal(t, "eu-west-2", cfg.Data["region"])
			},
		},
		{
			name:     "nested structure",
			testFile: "rvm.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				rvm, ok := cfg.Data["rvm"].(map[string]interface{})
				require.True(t, ok, "rvm should be a map")
				assert.Equal(t, "Resource vending machine pipeline", rvm["description"])
			},
		},
		{
			name:     "empty file",
			testFile: "empty.yaml",
			checkFunc: func(t *testing.T, cfg Type) {
				assert.NotEmpty(t, cfg.Source, "should have a source path")
				assert.Empty(t, cfg.Data)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			cfg, err := Load()
			require.NoError(t, err)
			tt.checkFunc(t, cfg)
		})
	}
}

func TestLoad_NoConfigFile(t *testing.T) {
	t.Setenv("OZONE_CFG_FILE", "/nonexistent/path/ozone.yaml")
	Reset()

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "config file not found")
}

func TestLoad_IsDirectory(t *testing.T) {
	t.Setenv("OZONE_CFG_FILE", "testdata")
	Reset()

	_, err := Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "points to a directory")
}

func TestGetString(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []string
		want         string
		wantErr      bool
	}{
		{name: "top level", testFile: "simple.yaml", key: "region", want: "eu-west-2"},
		{name: "nested", testFile: "rvm.yaml", key: "rvm.description", want: "Resource vending machine pipeline"},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []string{"fallback"}, want: "fallback"},
		{name: "missing without default", testFile: "simple.yaml", key: "missing", wantErr: true},
		{name: "path through scalar", testFile: "simple.yaml", key: "region.name", wantErr: true},
		{name: "not a string", testFile: "mixed-types.yaml", key: "version", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			got, err := GetString(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetString_MissingReportsNotFound(t *testing.T) {
	setupTestConfig(t, "simple.yaml")

	_, err := GetString("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue []int
		want         int
		wantErr      bool
	}{
		{name: "int", testFile: "mixed-types.yaml", key: "version", want: 1},
		{name: "float truncated", testFile: "mixed-types.yaml", key: "timeout", want: 30},
		{name: "nested", testFile: "rvm.yaml", key: "rvm.max_session", want: 3600},
		{name: "missing with default", testFile: "simple.yaml", key: "missing", defaultValue: []int{60}, want: 60},
		{name: "not an int", testFile: "simple.yaml", key: "region", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			got, err := GetInt(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGetBool(t *testing.T) {
	setupTestConfig(t, "rvm.yaml")

	got, err := GetBool("rvm.retain")
	assert.NoError(t, err)
	assert.True(t, got)

	got, err = GetBool("rvm.missing", false)
	assert.NoError(t, err)
	assert.False(t, got)

	_, err = GetBool("rvm.description")
	assert.Error(t, err)
}

func TestGetStringSlice(t *testing.T) {
	tests := []struct {
		name         string
		testFile     string
		key          string
		defaultValue [][]string
		want         []string
		wantErr      bool
	}{
		{name: "list", testFile: "rvm.yaml", key: "rvm.subjects", want: []string{"ref:refs/heads/main", "environment:production"}},
		{name: "scalar promoted", testFile: "mixed-types.yaml", key: "subject", want: []string{"ref:refs/heads/main"}},
		{name: "missing with default", testFile: "simple.yaml", key: "rvm.subjects", defaultValue: [][]string{{"*"}}, want: []string{"*"}},
		{name: "mixed element types", testFile: "mixed-types.yaml", key: "tags", wantErr: true},
		{name: "not a slice", testFile: "mixed-types.yaml", key: "enabled", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestConfig(t, tt.testFile)

			got, err := GetStringSlice(tt.key, tt.defaultValue...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLazyLoadWithoutFile(t *testing.T) {
	t.Setenv("OZONE_CFG_FILE", "/nonexistent/ozone.yaml")
	Reset()
	t.Cleanup(Reset)

	got, err := GetString("rvm.description", "default")
	assert.NoError(t, err)
	assert.Equal(t, "default", got)
}

func TestLazyLoadRemembersMissingFile(t *testing.T) {
	t.Setenv("OZONE_CFG_FILE", filepath.Join(t.TempDir(), "ozone.yaml"))
	Reset()
	t.Cleanup(Reset)

	got, err := GetString("region", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", got)

	// A file appearing later is not read until the configuration is reset.
	simple, err := filepath.Abs(filepath.Join("testdata", "simple.yaml"))
	require.NoError(t, err)
	t.Setenv("OZONE_CFG_FILE", simple)

	got, err = GetString("region", "default")
	require.NoError(t, err)
	assert.Equal(t, "default", got)
	assert.Empty(t, Config.Source)

	Reset()
	got, err = GetString("region", "default")
	require.NoError(t, err)
	assert.Equal(t, "eu-west-2", got)
	assert.Equal(t, simple, Config.Source)
}
