// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"context"
	"fmt"
	"strings"
)

// HandlerFunc is the function a command executes. The Invocation carries the
// values bound from the parsed argument tokens. Registering a function as a
// handler does not alter it; it remains independently callable.
type HandlerFunc func(ctx context.Context, inv *Invocation) error

// Command declares one command: its leaf name, an optional parent path of
// space-separated segments, help text, argument specs and the handler.
// A Command with a nil Run declares a group: it annotates (or creates) a stub
// node that exists only to host children.
type Command struct {
	// Name is the leaf path segment the command is invoked by.
	Name string
	// Path is the parent path, segments separated by whitespace, e.g.
	// "remote add". Empty attaches the command at the root.
	Path string
	// Help is the command's help text. The first line is used as the summary
	// in parent listings.
	Help string
	// Args are the command's argument specs, in declaration order. Order
	// matters for positional binding.
	Args []*ArgSpec
	// Run is the handler. Nil declares a group node.
	Run HandlerFunc
}

// pathSegments returns the parent path split into segments.
func (c *Command) pathSegments() []string {
	return strings.Fields(c.Path)
}

// validate checks the declaration before it is inserted into a registry.
func (c *Command) validate() error {
	if c.Name == "" || strings.ContainsAny(c.Name, " \t\n/") {
		return fmt.Errorf("%w: command name %q must be a single path segment", ErrInvalidCommand, c.Name)
	}

	seenForms := make(map[string]struct{})
	seenKeywords := make(map[string]struct{})

	for _, spec := range c.Args {
		if err := spec.validate(); err != nil {
			return fmt.Errorf("command %q: %w", c.Name, err)
		}

		for _, form := range []string{spec.Short, spec.Long} {
			if form == "" || spec.Kind == KindPositional {
				continue
			}

			if _, ok := seenForms[form]; ok {
				return fmt.Errorf("%w: command %q declares form %q twice", ErrInvalidCommand, c.Name, form)
			}

			seenForms[form] = struct{}{}
		}

		kw := spec.Keyword()
		if _, ok := seenKeywords[kw]; ok {
			return fmt.Errorf("%w: command %q declares keyword %q twice", ErrInvalidCommand, c.Name, kw)
		}

		seenKeywords[kw] = struct{}{}
	}

	return nil
}

// Node is one entry in the command tree: a leaf carrying a handler, or a stub
// that exists only to host children.
type Node struct {
	name     string
	path     []string // full path from the root, including name; nil for the root
	help     string
	args     []*ArgSpec
	run      HandlerFunc
	children map[string]*Node
}

func newNode(name string, parentPath []string) *Node {
	path := make([]string, 0, len(parentPath)+1)
	path = append(path, parentPath...)
	path = append(path, name)

	return &Node{
		name:     name,
		path:     path,
		children: make(map[string]*Node),
	}
}

// Name returns the node's leaf path segment. Empty for the root.
func (n *Node) Name() string {
	return n.name
}

// Path returns the node's full path from the root.
func (n *Node) Path() []string {
	return append([]string(nil), n.path...)
}

// Help returns the node's help text.
func (n *Node) Help() string {
	return n.help
}

// Args returns the node's argument specs in declaration order.
func (n *Node) Args() []*ArgSpec {
	return append([]*ArgSpec(nil), n.args...)
}

// IsStub reports whether the node carries no handler and exists only to host
// children. Dispatch resolving exactly to a stub renders help instead of
// invoking anything.
func (n *Node) IsStub() bool {
	return n.run == nil
}

// child returns the named child, or nil.
func (n *Node) child(name string) *Node {
	return n.children[name]
}

// spec returns the declared spec for keyword, or nil.
func (n *Node) spec(keyword string) *ArgSpec {
	for _, s := range n.args {
		if s.Keyword() == keyword {
			return s
		}
	}

	return nil
}

// binding is one bound argument value.
type binding struct {
	spec *ArgSpec
	set  bool // the user supplied the value (as opposed to a default)
	str  string
	b    bool
}

// Invocation is the explicit binding contract between the dispatcher and a
// handler: a mapping from argument keyword to bound value, plus the identity
// of the resolved command. Accessing a keyword the command never declared is
// a configuration error and panics.
type Invocation struct {
	node   *Node
	values map[string]*binding
}

// CommandPath returns the invoked command's full path, segments joined by spaces.
func (inv *Invocation) CommandPath() string {
	return strings.Join(inv.node.path, " ")
}

// Bool returns the value bound to a flag keyword.
func (inv *Invocation) Bool(keyword string) bool {
	return inv.lookup(keyword).b
}

// String returns the value bound to an argument or positional keyword.
// Absent optional arguments yield their default.
func (inv *Invocation) String(keyword string) string {
	return inv.lookup(keyword).str
}

// IsSet reports whether the user explicitly supplied the argument, as opposed
// to the value coming from a default (or a flag being absent).
func (inv *Invocation) IsSet(keyword string) bool {
	return inv.lookup(keyword).set
}

func (inv *Invocation) lookup(keyword string) *binding {
	b, ok := inv.values[keyword]
	if !ok {
		panic(fmt.Sprintf("clif: argument %q is not declared by command %q", keyword, inv.CommandPath()))
	}

	return b
}
