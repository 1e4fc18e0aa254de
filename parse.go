// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"fmt"
	"strings"
)

// bindArgs parses argument tokens against a node's specs and produces the
// keyword-to-value mapping for the Invocation. It fails without partial
// results: on any error the handler must not be invoked.
func bindArgs(node *Node, tokens []string) (map[string]*binding, error) {
	values := make(map[string]*binding, len(node.args))

	var positionals []*binding

	for _, spec := range node.args {
		b := &binding{spec: spec}
		values[spec.Keyword()] = b

		if spec.Kind == KindPositional {
			positionals = append(positionals, b)
		}
	}

	nextPositional := 0

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]

		if !strings.HasPrefix(tok, "-") {
			if nextPositional >= len(positionals) {
				return nil, fmt.Errorf("%w: %s", ErrUnexpectedArgument, tok)
			}

			b := positionals[nextPositional]
			b.str = tok
			b.set = true
			nextPositional++

			continue
		}

		spec := matchSpec(node, tok)
		if spec == nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownArgument, tok)
		}

		b := values[spec.Keyword()]

		switch spec.Kind {
		case KindFlag:
			b.b = true
			b.set = true
		case KindArgument:
			if i+1 >= len(tokens) {
				return nil, fmt.Errorf("%w: %s", ErrMissingValue, spec.Forms())
			}

			i++
			b.str = tokens[i]
			b.set = true
		}
	}

	// Declaration order, so that with several arguments missing the error
	// deterministically names the first one.
	for _, spec := range node.args {
		b := values[spec.Keyword()]
		if b.set {
			continue
		}

		if spec.HasDefault {
			b.str = spec.Default

			continue
		}

		if spec.Required() {
			return nil, fmt.Errorf("%w: %s", ErrMissingArgument, spec.Forms())
		}
	}

	return values, nil
}

// matchSpec finds the flag or argument spec selected by an exact short or
// long form, or nil.
func matchSpec(node *Node, token string) *ArgSpec {
	for _, spec := range node.args {
		if spec.matches(token) {
			return spec
		}
	}

	return nil
}
