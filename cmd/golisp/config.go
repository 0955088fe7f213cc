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

	"github.com/goccy/go-yaml"
)

// config is the REPL's on-disk configuration (§ AMBIENT STACK): the
// teacher's scm package has none of its own, being embedded in a
// larger server, so a standalone CLI needs to grow one.
type config struct {
	Prelude string `yaml:"prelude"`
	History string `yaml:"history"`
	Color   bool   `yaml:"color"`
}

func defaultConfig() config {
	return config{Color: true}
}

// loadConfig reads path if it exists, leaving defaultConfig() fields
// untouched for anything the file doesn't set. A missing file is not
// an error -- there's nothing unusual about running golisp with no
// config at all.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
