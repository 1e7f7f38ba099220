// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

// Package recovery logs panics through a logger.Logger.
//
// The HTTP middleware recovers from panics in handlers, logs them at error
// level and returns a 500 Internal Server Error response to the client. This
// prevents a single panicking request from crashing the entire server.
//
// # Basic Usage
//
//	log := logger.New("http")
//	mux := http.NewServeMux()
//	mux.HandleFunc("/", handler)
//	http.ListenAndServe(":8080", recovery.Middleware(log)(mux))
//
// Outside HTTP, LogPanic records a panic at fatal level before letting it
// continue:
//
//	func main() {
//		log := logger.New("main")
//		defer recovery.LogPanic(log)
//		run()
//	}
package recovery
