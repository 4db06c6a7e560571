// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Profile is a named list of cases loaded from YAML. Fields left empty in a
// case are taken from Defaults.
type Profile struct {
	Name     string `yaml:"name"`
	Defaults Case   `yaml:"defaults"`
	Cases    []Case `yaml:"cases"`
}

func loadProfile(path string) (*Profile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	p, err := parseProfile(raw)
	if err != nil {
		return nil, fmt.Errorf("profile %s: %w", path, err)
	}
	return p, nil
}

func parseProfile(raw []byte) (*Profile, error) {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)

	var p Profile
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("decoding yaml: %w", err)
	}
	if len(p.Cases) == 0 {
		return nil, errors.New("no cases")
	}
	for i, c := range p.Resolved() {
		if err := c.Validate(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
	}
	return &p, nil
}

// Resolved returns the cases with defaults applied.
func (p *Profile) Resolved() []Case {
	d := p.Defaults
	out := make([]Case, len(p.Cases))
	for i, c := range p.Cases {
		if c.Type == "" {
			c.Type = orDefault(d.Type, "float64")
		}
		if c.Dist == "" {
			c.Dist = orDefault(d.Dist, "random")
		}
		if c.Strategy == "" {
			c.Strategy = orDefault(d.Strategy, "sort")
		}
		if c.Size == 0 {
			c.Size = d.Size
		}
		if c.Width == 0 {
			c.Width = d.Width
		}
		if c.Workers == 0 {
			c.Workers = d.Workers
		}
		if c.Repeat == 0 {
			c.Repeat = d.Repeat
		}
		if c.Seed == 0 {
			c.Seed = d.Seed
		}
		out[i] = c
	}
	return out
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
