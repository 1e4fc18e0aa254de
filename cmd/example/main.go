// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main contains an example application built on the clif framework.
// It registers a small command tree, optionally annotates the intermediate
// groups from a manifest file, and dispatches os.Args.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/matt-FFFFFF/clif"
	"github.com/matt-FFFFFF/clif/internal/ctxlog"
	"github.com/matt-FFFFFF/clif/internal/signalbroker"
)

const manifestFile = "groups.yaml"

func first(_ context.Context, inv *clif.Invocation) error {
	fmt.Printf(
		"verbose=%t required=%q positional=%q optional=%q\n",
		inv.Bool("verbose"),
		inv.String("required"),
		inv.String("positional_arg"),
		inv.String("optional"),
	)

	return nil
}

func second(_ context.Context, inv *clif.Invocation) error {
	fmt.Printf("ran %q\n", inv.CommandPath())

	return nil
}

func nested(ctx context.Context, inv *clif.Invocation) error {
	ctxlog.Info(ctx, "nested handler", "path", inv.CommandPath())

	return nil
}

func register(reg *clif.Registry) {
	reg.MustRegister(&clif.Command{
		Name: "first",
		Help: "The first command. It demonstrates every argument kind.",
		Args: []*clif.ArgSpec{
			clif.Flag("-v", "--verbose", "Enable verbose output."),
			clif.Argument("-r", "--required", "A required named argument."),
			clif.Positional("positional_arg", "A positional argument."),
			clif.Argument("-o", "--optional", "An optional named argument.").WithDefault("fallback"),
		},
		Run: first,
	})

	reg.MustRegister(&clif.Command{
		Name: "second",
		Path: "test",
		Help: "A nested command reached through the test group.",
		Run:  second,
	})

	reg.MustRegister(&clif.Command{
		Name: "nested",
		Path: "command path",
		Help: "A deeply nested command.",
		Run:  nested,
	})
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	ctx = ctxlog.New(ctx, ctxlog.DefaultLogger)

	defer cancel()

	sigCh := signalbroker.New(ctx)

	go signalbroker.Watch(ctx, sigCh, cancel)

	reg := clif.NewRegistry("example")
	register(reg)

	if _, err := os.Stat(manifestFile); err == nil {
		if err := clif.LoadManifest(ctx, reg, manifestFile); err != nil {
			ctxlog.Error(ctx, "failed to load manifest", "error", err)
			os.Exit(1)
		}
	}

	os.Exit(reg.Execute(ctx))
}
