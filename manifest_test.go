// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"context"
	"testing"

	"github.com/prashantv/gostub"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/matt-FFFFFF/clif/internal/manifest"
)

func stubManifestFs(t *testing.T, name, content string) {
	t.Helper()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, name, []byte(content), 0o644))

	stubs := gostub.Stub(&manifest.FsFactory, func() afero.Fs {
		return fs
	})
	t.Cleanup(stubs.Reset)
}

func TestLoadManifestAnnotatesStubs(t *testing.T) {
	stubManifestFs(t, "/groups.yaml", `
commands:
  - name: test
    help: Commands for trying things out.
  - name: path
    path: command
    help: Deeply nested command group.
`)

	reg, _, _ := newTestRegistry(t)

	require.NoError(t, LoadManifest(context.Background(), reg, "/groups.yaml"))

	node, ok := reg.Lookup("test")
	require.True(t, ok)
	assert.True(t, node.IsStub())
	assert.Equal(t, "Commands for trying things out.", node.Help())

	// Declarations may create whole new stub chains.
	node, ok = reg.Lookup("command", "path")
	require.True(t, ok)
	assert.True(t, node.IsStub())
	assert.Equal(t, "Deeply nested command group.", node.Help())

	// The annotated help shows up in listings.
	assert.Contains(t, reg.HelpFor(reg.Root()), "Commands for trying things out.")
}

func TestLoadManifestHCLInterpolatesAppName(t *testing.T) {
	stubManifestFs(t, "/groups.hcl", `
command "test" {
  help = "Subcommands of ${app.name}."
}
`)

	reg, _, _ := newTestRegistry(t)

	require.NoError(t, LoadManifest(context.Background(), reg, "/groups.hcl"))

	node, ok := reg.Lookup("test")
	require.True(t, ok)
	assert.Equal(t, "Subcommands of app.", node.Help())
}

func TestLoadManifestNeverDisplacesHandlers(t *testing.T) {
	stubManifestFs(t, "/groups.yaml", `
commands:
  - name: second
    path: test
    help: Replacement help.
`)

	reg, _, calls := newTestRegistry(t)

	require.NoError(t, LoadManifest(context.Background(), reg, "/groups.yaml"))

	require.NoError(t, reg.Dispatch(context.Background(), []string{"test", "second"}))
	assert.Equal(t, 1, calls["second"], "the registered handler must survive a manifest load")
}

func TestLoadManifestMissingSource(t *testing.T) {
	stubManifestFs(t, "/other.yaml", "commands: []")

	reg, _, _ := newTestRegistry(t)

	err := LoadManifest(context.Background(), reg, "/groups.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, manifest.ErrReadFile)
}

func TestLoadManifestInvalidDeclaration(t *testing.T) {
	stubManifestFs(t, "/groups.yaml", `
commands:
  - name: "two words"
`)

	reg, _, _ := newTestRegistry(t)

	err := LoadManifest(context.Background(), reg, "/groups.yaml")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidCommand)
}
