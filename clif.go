// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

// Package clif is a declarative command-line framework. Commands are plain
// functions paired with metadata: argument specs, help text and an optional
// nesting path. The framework assembles registered commands into a command
// tree, resolves an argument vector against that tree, parses the remaining
// tokens per the target command's specs and invokes its handler with the bound
// values. Help output is generated for every node in the tree.
//
// A minimal application:
//
//	reg := clif.NewRegistry("mytool")
//	reg.MustRegister(&clif.Command{
//		Name: "greet",
//		Help: "Print a greeting.",
//		Args: []*clif.ArgSpec{
//			clif.Flag("-l", "--loud", "Shout the greeting."),
//			clif.Positional("name", "Who to greet."),
//		},
//		Run: func(ctx context.Context, inv *clif.Invocation) error {
//			fmt.Println("hello", inv.String("name"))
//			return nil
//		},
//	})
//	os.Exit(reg.Execute(context.Background()))
//
// Commands nest with Path, e.g. Path: "remote add" places the command three
// levels deep; missing intermediate nodes are created as help-only stubs.
package clif

var (
	// Version is set during the build process.
	Version = "dev"
	// Commit is set during the build process.
	Commit = "unknown"
)
