// Copyright 2025 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import (
	"context"
	"log/slog"
)

// Trace emits a debug record on l. A nil logger disables tracing.
func Trace(l *slog.Logger, msg string, attrs ...slog.Attr) {
	if l == nil {
		return
	}
	l.LogAttrs(context.Background(), slog.LevelDebug, msg, attrs...)
}
