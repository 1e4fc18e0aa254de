// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-getter/v2"
)

// fetch retrieves a remote manifest using Hashicorp's go-getter and removes
// the temporary copy after reading it.
func fetch(ctx context.Context, source string) ([]byte, error) {
	tmpDir, err := os.MkdirTemp("", "clif-manifest-*")
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	defer os.RemoveAll(tmpDir) //nolint:errcheck

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	cli := getter.Client{
		DisableSymlinks: true,
	}

	req := &getter.Request{
		Src:     source,
		Dst:     filepath.Join(tmpDir, "manifest"),
		Pwd:     wd,
		GetMode: getter.ModeFile,
	}

	res, err := cli.Get(ctx, req)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	data, err := os.ReadFile(res.Dst)
	if err != nil {
		return nil, errors.Join(ErrFetch, err)
	}

	return data, nil
}
