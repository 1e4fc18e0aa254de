// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"context"

	"github.com/matt-FFFFFF/clif/internal/ctxlog"
	"github.com/matt-FFFFFF/clif/internal/manifest"
)

// LoadManifest reads a command manifest and registers its declarations as
// group nodes, annotating auto-created stubs with help text. The source is a
// local path or any go-getter URL; ".hcl" manifests are decoded as HCL,
// everything else as YAML. Manifests declare no handlers, so loading one can
// never displace a registered command.
func LoadManifest(ctx context.Context, r *Registry, source string) error {
	m, err := manifest.Load(ctx, r.app, source)
	if err != nil {
		return err
	}

	for _, decl := range m.Commands {
		if err := r.Register(&Command{
			Name: decl.Name,
			Path: decl.Path,
			Help: decl.Help,
		}); err != nil {
			return err
		}
	}

	ctxlog.Debug(ctx, "loaded command manifest", "source", source, "commands", len(m.Commands))

	return nil
}
