// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

/*
Package logging bridges the common Go logging APIs to a [logger.Logger], so
libraries written against [log/slog], zap or logr print the same colored
lines as the rest of the program.

# slog

	log := logger.New("api")
	slogger := logging.New(log)
	slogger.Info("server started", "port", 8080)

	> [api; main.go:12] [INFO] server started port=8080

Warn, error and fatal records take their status code and suggestion from the
[StatusKey] and [SuggestionKey] attributes:

	slogger.Error("port out of range",
		logging.StatusAttr(logger.StatusBadValue),
		logging.SuggestionAttr("use 1-65535"))

[LevelVerbose] and [LevelFatal] name the two logger levels slog lacks.

# zap and logr

	z := logging.NewZap(log)
	z.Warn("retrying", logging.StatusField(logger.StatusVersion), zap.Int("attempt", 2))

	lr := logging.NewLogr(log)
	lr.V(2).Info("cache miss", "key", k) // verbose

Visibility always follows the logger flags; the adapters never filter on
their own.
*/
package logging
