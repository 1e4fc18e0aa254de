// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package manifest loads declarative command manifests. A manifest annotates
// the command tree without code: it declares command groups (stub nodes) and
// their help text. Manifests are YAML or HCL files, read from the local
// filesystem or fetched from any go-getter source URL.
package manifest

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/afero"
)

var (
	// ErrReadFile is returned when a manifest file cannot be read.
	ErrReadFile = errors.New("failed to read manifest file")
	// ErrParse is returned when a manifest cannot be decoded.
	ErrParse = errors.New("failed to parse manifest")
	// ErrFetch is returned when a remote manifest cannot be retrieved.
	ErrFetch = errors.New("failed to fetch manifest")
)

// FsFactory returns the filesystem manifests are read from. Tests replace it
// with an in-memory filesystem.
var FsFactory = func() afero.Fs {
	return afero.NewOsFs()
}

// Decl declares one command group: its leaf name, optional parent path
// (space-separated segments) and help text.
type Decl struct {
	Name string `yaml:"name"`
	Path string `yaml:"path,omitempty"`
	Help string `yaml:"help,omitempty"`
}

// Manifest is the decoded content of one manifest file.
type Manifest struct {
	Commands []Decl `yaml:"commands"`
}

// Load reads and decodes the manifest at source. A source that exists on the
// local filesystem is read directly; anything else is treated as a go-getter
// URL. The extension selects the decoder: ".hcl" for HCL, everything else is
// YAML. appName is exposed to HCL manifests as the app.name variable.
func Load(ctx context.Context, appName, source string) (*Manifest, error) {
	data, err := read(ctx, source)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(source), ".hcl") {
		return parseHCL(source, data, appName)
	}

	return parseYAML(data)
}

func read(ctx context.Context, source string) ([]byte, error) {
	fs := FsFactory()

	exists, err := afero.Exists(fs, source)
	if err == nil && exists {
		data, err := afero.ReadFile(fs, source)
		if err != nil {
			return nil, errors.Join(ErrReadFile, err)
		}

		return data, nil
	}

	if !looksRemote(source) {
		return nil, fmt.Errorf("%w: %s", ErrReadFile, source)
	}

	return fetch(ctx, source)
}

// looksRemote reports whether the source uses go-getter URL syntax rather
// than a plain filesystem path.
func looksRemote(source string) bool {
	return strings.Contains(source, "://") || strings.Contains(source, "::")
}

func parseYAML(data []byte) (*Manifest, error) {
	m := &Manifest{}
	if err := yaml.Unmarshal(data, m); err != nil {
		return nil, errors.Join(ErrParse, err)
	}

	return m, nil
}
