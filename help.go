// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"fmt"
	"sort"
	"strings"

	"github.com/matt-FFFFFF/clif/internal/helpfmt"
)

// HelpFor renders the help text for a node: a usage line with the full path
// from the root, the node's own help, its immediate children in alphabetical
// order with truncated summaries, and the node's argument specs. Rendering is
// pure formatting; it never mutates the registry.
func (r *Registry) HelpFor(node *Node) string {
	out := strings.Builder{}

	usage := r.app
	if len(node.path) > 0 {
		usage += " " + strings.Join(node.path, " ")
	}

	fmt.Fprintf(&out, "Usage: %s\n\n", usage)

	if node.help != "" {
		out.WriteString(helpfmt.OneColumn(node.help))
		out.WriteString("\n\n")
	}

	if len(node.children) > 0 {
		out.WriteString(helpfmt.Heading("Available Commands:"))
		out.WriteString("\n")

		names := make([]string, 0, len(node.children))
		for name := range node.children {
			names = append(names, name)
		}

		sort.Strings(names)

		for _, name := range names {
			out.WriteString(helpfmt.TwoColumn(name, helpfmt.Summary(node.children[name].help)))
			out.WriteString("\n")
		}

		out.WriteString("\n")
	}

	if len(node.args) == 0 {
		out.WriteString("This command has no arguments specified.\n")

		return out.String()
	}

	out.WriteString(helpfmt.Heading("Arguments:"))
	out.WriteString("\n")

	for _, spec := range node.args {
		out.WriteString(helpfmt.TwoColumn(spec.Forms(), spec.Help))
		out.WriteString("\n")
	}

	return out.String()
}

// writeHelp renders help for the node on the registry's Out writer.
func (r *Registry) writeHelp(node *Node) error {
	_, err := fmt.Fprint(r.Out, r.HelpFor(node))

	return err
}
