/*
Copyright (C) 2023  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingPathReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigNonexistentFileReturnsDefaults(t *testing.T) {
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)
}

func TestLoadConfigParsesYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "golisp.yaml")
	err := os.WriteFile(path, []byte("prelude: prelude.scm\nhistory: hist.txt\ncolor: false\n"), 0o644)
	require.NoError(t, err)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "prelude.scm", cfg.Prelude)
	assert.Equal(t, "hist.txt", cfg.History)
	assert.False(t, cfg.Color)
}

func TestCompletionCandidatesIncludeReservedAndPrimitives(t *testing.T) {
	candidates := completionCandidates(nil)
	assert.Contains(t, candidates, "lambda")
	assert.Contains(t, candidates, "+")
}
