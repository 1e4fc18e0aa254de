// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/matt-FFFFFF/clif/internal/ctxlog"
)

var helpTriggers = []string{"-h", "-?", "--help"}

func isHelpTrigger(token string) bool {
	return slices.Contains(helpTriggers, token)
}

// Dispatch resolves argv (excluding the program name) against the command
// tree and invokes the matched handler with its bound arguments.
//
// Leading tokens that exactly match a child segment are consumed greedily,
// descending one level per match; descent is never traded off against
// argument parsing. The remaining tokens are the argument tokens. A help
// trigger (-h, -? or --help) among them renders the target node's help and
// succeeds, as does resolving to a stub with no tokens left. A stub with
// leftover tokens is an unknown command. Otherwise the tokens are parsed per
// the target's argument specs and the handler runs; a handler failure is
// wrapped in ErrHandler and propagated.
//
// Dispatch never mutates the tree: repeated calls with the same argv against
// the same registry produce the same outcome.
func (r *Registry) Dispatch(ctx context.Context, argv []string) error {
	node, rest := r.resolve(argv)

	ctxlog.Debug(ctx, "resolved command path",
		"app", r.app,
		"path", strings.Join(node.path, " "),
		"args", rest,
	)

	if slices.ContainsFunc(rest, isHelpTrigger) {
		return r.writeHelp(node)
	}

	if node.IsStub() {
		if len(rest) == 0 {
			return r.writeHelp(node)
		}

		return fmt.Errorf("%w: %s", ErrUnknownCommand, rest[0])
	}

	values, err := bindArgs(node, rest)
	if err != nil {
		return err
	}

	inv := &Invocation{node: node, values: values}

	ctxlog.Debug(ctx, "invoking handler", "path", inv.CommandPath())

	if err := node.run(ctx, inv); err != nil {
		return errors.Join(ErrHandler, err)
	}

	return nil
}

// Execute dispatches os.Args and maps the outcome to a process exit code:
// 0 for a successful invocation or a help render, 1 for any failure. Usage
// errors are reported on ErrOut followed by the target node's help.
func (r *Registry) Execute(ctx context.Context) int {
	argv := os.Args[1:]

	err := r.Dispatch(ctx, argv)
	if err == nil {
		return 0
	}

	fmt.Fprintf(r.ErrOut, "%s: %s\n", r.app, err)

	if IsUsageError(err) {
		node, _ := r.resolve(argv)

		fmt.Fprintln(r.ErrOut)
		fmt.Fprint(r.ErrOut, r.HelpFor(node))
	}

	ctxlog.Debug(ctx, "dispatch failed", "error", err)

	return 1
}
