// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package signalbroker

import (
	"context"
	"os"

	"github.com/matt-FFFFFF/clif/internal/ctxlog"
)

// Watch monitors the signal channel. The first signal cancels the context
// so that running handlers can wind down. A second signal of the same type
// closes the channel and returns, which a caller may treat as a request
// for immediate termination.
func Watch(ctx context.Context, sigCh chan os.Signal, cancel context.CancelFunc) {
	seen := make(map[os.Signal]struct{})

	for sig := range sigCh {
		if _, ok := seen[sig]; ok {
			ctxlog.Logger(ctx).Info("watchdog", "detail", "repeated signal, terminating", "signal", sig.String())
			close(sigCh)

			return
		}

		ctxlog.Logger(ctx).Info("watchdog", "detail", "signal received, cancelling", "signal", sig.String())
		cancel()

		seen[sig] = struct{}{}
	}
}
