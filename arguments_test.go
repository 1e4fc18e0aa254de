// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package clif

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgSpecKeyword(t *testing.T) {
	tests := []struct {
		name string
		spec *ArgSpec
		want string
	}{
		{
			name: "long form wins",
			spec: Flag("-v", "--verbose", ""),
			want: "verbose",
		},
		{
			name: "short form fallback",
			spec: Flag("-v", "", ""),
			want: "v",
		},
		{
			name: "dashes become underscores",
			spec: Argument("", "--dry-run", ""),
			want: "dry_run",
		},
		{
			name: "positional name",
			spec: Positional("positional_arg", ""),
			want: "positional_arg",
		},
		{
			name: "explicit name wins",
			spec: &ArgSpec{Kind: KindArgument, Short: "-r", Name: "required"},
			want: "required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Keyword())
		})
	}
}

func TestArgSpecForms(t *testing.T) {
	tests := []struct {
		name string
		spec *ArgSpec
		want string
	}{
		{
			name: "both forms",
			spec: Flag("-v", "--verbose", ""),
			want: "-v, --verbose",
		},
		{
			name: "short only",
			spec: Flag("-v", "", ""),
			want: "-v",
		},
		{
			name: "long only",
			spec: Argument("", "--required", ""),
			want: "--required",
		},
		{
			name: "positional",
			spec: Positional("positional_arg", ""),
			want: "positional_arg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.spec.Forms())
		})
	}
}

func TestArgSpecRequired(t *testing.T) {
	assert.False(t, Flag("-v", "--verbose", "").Required(), "flags are never required")
	assert.True(t, Argument("-r", "--required", "").Required())
	assert.False(t, Argument("-o", "--optional", "").WithDefault("").Required())
	assert.True(t, Positional("name", "").Required())
	assert.False(t, Positional("name", "").WithDefault("fallback").Required())
}

func TestArgSpecMatches(t *testing.T) {
	spec := Argument("-r", "--required", "")

	assert.True(t, spec.matches("-r"))
	assert.True(t, spec.matches("--required"))
	assert.False(t, spec.matches("-required"))
	assert.False(t, spec.matches("--r"))
	assert.False(t, Positional("x", "").matches("x"), "positionals never match by form")
}

func TestArgSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    *ArgSpec
		wantErr bool
	}{
		{
			name: "valid flag",
			spec: Flag("-v", "--verbose", "help"),
		},
		{
			name: "valid positional",
			spec: Positional("name", "help"),
		},
		{
			name:    "positional without name",
			spec:    &ArgSpec{Kind: KindPositional},
			wantErr: true,
		},
		{
			name:    "no forms at all",
			spec:    &ArgSpec{Kind: KindArgument},
			wantErr: true,
		},
		{
			name:    "form without dash",
			spec:    Flag("v", "", ""),
			wantErr: true,
		},
		{
			name:    "short help trigger reserved",
			spec:    Flag("-h", "", ""),
			wantErr: true,
		},
		{
			name:    "long help trigger reserved",
			spec:    Flag("", "--help", ""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidArgSpec)

				return
			}

			require.NoError(t, err)
		})
	}
}

func TestArgKindString(t *testing.T) {
	assert.Equal(t, "flag", KindFlag.String())
	assert.Equal(t, "argument", KindArgument.String())
	assert.Equal(t, "positional", KindPositional.String())
}
