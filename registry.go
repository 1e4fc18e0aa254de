// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Registry owns the command tree for one process invocation. It is populated
// by Register calls during startup and must be treated as read-only once the
// first Dispatch runs; dispatch itself never mutates the tree, so concurrent
// dispatch calls against a populated registry are safe.
type Registry struct {
	// Out receives rendered help. Defaults to os.Stdout.
	Out io.Writer
	// ErrOut receives user-facing error reports from Execute. Defaults to os.Stderr.
	ErrOut io.Writer

	app  string
	root *Node
}

// NewRegistry creates an empty registry. The app name is the name the program
// is invoked by and is used to render accurate usage lines.
func NewRegistry(app string) *Registry {
	return &Registry{
		Out:    os.Stdout,
		ErrOut: os.Stderr,
		app:    app,
		root: &Node{
			children: make(map[string]*Node),
		},
	}
}

// AppName returns the name used in usage lines.
func (r *Registry) AppName() string {
	return r.app
}

// Root returns the root node of the command tree.
func (r *Registry) Root() *Node {
	return r.root
}

// Register inserts a command into the tree. Intermediate path segments with
// no existing node are auto-created as stubs so the tree remains walkable.
// Registering a handler where a stub exists promotes the stub to a leaf;
// registering a handler where a leaf exists fails with ErrDuplicateCommand.
// A group declaration (nil Run) only creates the node or fills in missing
// help, and never displaces a handler.
func (r *Registry) Register(cmd *Command) error {
	if err := cmd.validate(); err != nil {
		return err
	}

	parent := r.root
	for _, seg := range cmd.pathSegments() {
		child := parent.child(seg)
		if child == nil {
			child = newNode(seg, parent.path)
			parent.children[seg] = child
		}

		parent = child
	}

	node := parent.child(cmd.Name)
	if node == nil {
		node = newNode(cmd.Name, parent.path)
		parent.children[cmd.Name] = node
	}

	if cmd.Run == nil {
		// Group declaration: annotate only.
		if node.help == "" {
			node.help = cmd.Help
		}

		return nil
	}

	if node.run != nil {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, strings.Join(node.path, " "))
	}

	node.run = cmd.Run
	node.args = cmd.Args

	if cmd.Help != "" {
		node.help = cmd.Help
	}

	return nil
}

// MustRegister is Register for startup wiring: a failed registration is a
// configuration mistake and panics so the process never reaches dispatch.
func (r *Registry) MustRegister(cmd *Command) {
	if err := r.Register(cmd); err != nil {
		panic(err)
	}
}

// Lookup walks the tree along the given segments and returns the node, or
// false if any segment does not resolve. With no segments it returns the root.
func (r *Registry) Lookup(segments ...string) (*Node, bool) {
	node := r.root
	for _, seg := range segments {
		node = node.child(seg)
		if node == nil {
			return nil, false
		}
	}

	return node, true
}

// resolve greedily consumes leading tokens that match child segment names and
// returns the deepest matched node plus the remaining argument tokens.
// Descent always wins over argument interpretation: command names are
// reserved words within their parent's namespace.
func (r *Registry) resolve(argv []string) (*Node, []string) {
	node := r.root

	i := 0
	for i < len(argv) {
		child := node.child(argv[i])
		if child == nil {
			break
		}

		node = child
		i++
	}

	return node, argv[i:]
}
