// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"fmt"
	"strings"
)

// ArgKind discriminates the three argument shapes a command may declare.
type ArgKind int

const (
	// KindFlag is a boolean switch; it consumes no value.
	KindFlag ArgKind = iota
	// KindArgument is a named argument that consumes the following token as its value.
	KindArgument
	// KindPositional is an unnamed argument bound by position.
	KindPositional
)

// String implements fmt.Stringer for ArgKind.
func (k ArgKind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindArgument:
		return "argument"
	case KindPositional:
		return "positional"
	default:
		return "unknown"
	}
}

// ArgSpec describes one flag, named argument or positional accepted by a
// command. Specs are immutable once registered; build them with Flag,
// Argument and Positional.
type ArgSpec struct {
	// Kind is the argument shape.
	Kind ArgKind
	// Short is the short form, e.g. "-v". Unused by positionals.
	Short string
	// Long is the long form, e.g. "--verbose". Unused by positionals.
	Long string
	// Name is the binding keyword. Derived from the long or short form when
	// empty; required for positionals.
	Name string
	// Help is the help text shown for this argument. May be empty.
	Help string
	// Default is the value bound when the argument is absent.
	Default string
	// HasDefault records whether Default was explicitly supplied, making the
	// argument optional.
	HasDefault bool
}

// Flag declares a boolean switch. Flags are never required and bind false
// when absent.
func Flag(short, long, help string) *ArgSpec {
	return &ArgSpec{
		Kind:  KindFlag,
		Short: short,
		Long:  long,
		Help:  help,
	}
}

// Argument declares a named argument that consumes the next token as its
// value. It is required unless a default is supplied with WithDefault.
func Argument(short, long, help string) *ArgSpec {
	return &ArgSpec{
		Kind:  KindArgument,
		Short: short,
		Long:  long,
		Help:  help,
	}
}

// Positional declares an argument bound by position, in declaration order.
// It is required unless a default is supplied with WithDefault.
func Positional(name, help string) *ArgSpec {
	return &ArgSpec{
		Kind: KindPositional,
		Name: name,
		Help: help,
	}
}

// WithDefault supplies a default value, making the argument optional.
// It returns the spec for chaining inside an Args literal.
func (s *ArgSpec) WithDefault(value string) *ArgSpec {
	s.Default = value
	s.HasDefault = true

	return s
}

// Required reports whether the argument must be supplied by the user.
// Flags are never required; arguments and positionals are required unless
// they carry a default.
func (s *ArgSpec) Required() bool {
	if s.Kind == KindFlag {
		return false
	}

	return !s.HasDefault
}

// Keyword returns the name under which the bound value is exposed on the
// Invocation: the explicit Name, or the long (then short) form stripped of
// leading dashes with inner dashes mapped to underscores.
func (s *ArgSpec) Keyword() string {
	if s.Name != "" {
		return s.Name
	}

	form := s.Long
	if form == "" {
		form = s.Short
	}

	return strings.ReplaceAll(strings.TrimLeft(form, "-"), "-", "_")
}

// Forms returns the user-facing identity of the argument for help and error
// output, e.g. "-v, --verbose" or the positional's name.
func (s *ArgSpec) Forms() string {
	if s.Kind == KindPositional {
		return s.Name
	}

	forms := s.Short
	if s.Long != "" {
		if forms != "" {
			forms += ", "
		}

		forms += s.Long
	}

	return forms
}

// matches reports whether the token selects this spec by exact short or long form.
func (s *ArgSpec) matches(token string) bool {
	if s.Kind == KindPositional {
		return false
	}

	return (s.Short != "" && token == s.Short) || (s.Long != "" && token == s.Long)
}

// validate checks a single spec in isolation.
func (s *ArgSpec) validate() error {
	if s.Kind == KindPositional {
		if s.Name == "" {
			return fmt.Errorf("%w: positionals require a name", ErrInvalidArgSpec)
		}

		return nil
	}

	if s.Short == "" && s.Long == "" {
		return fmt.Errorf("%w: no CLI form specified for %s %q", ErrInvalidArgSpec, s.Kind, s.Keyword())
	}

	for _, form := range []string{s.Short, s.Long} {
		if form == "" {
			continue
		}

		if !strings.HasPrefix(form, "-") {
			return fmt.Errorf("%w: form %q must start with %q", ErrInvalidArgSpec, form, "-")
		}

		if isHelpTrigger(form) {
			return fmt.Errorf("%w: form %q is reserved for help", ErrInvalidArgSpec, form)
		}
	}

	return nil
}
