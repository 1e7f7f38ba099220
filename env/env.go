// SPDX-FileCopyrightText: Copyright 2026 The Kojo Authors
// SPDX-License-Identifier: Apache-2.0

package env

//go:generate mockgen -copyright_file=../.github/license-header.txt -source=env.go -destination=mocks/mock_reader.go -package=mocks Reader

import (
	"os"
	"strconv"
	"strings"
)

// Reader defines an interface for environment variable access
type Reader interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
}

// OSReader implements Reader using the standard os package
type OSReader struct{}

// Getenv returns the value of the environment variable named by the key
func (*OSReader) Getenv(key string) string {
	return os.Getenv(key)
}

// LookupEnv returns the value of the environment variable named by the key
// and whether it is set, even to an empty value
func (*OSReader) LookupEnv(key string) (string, bool) {
	return os.LookupEnv(key)
}

// Bool parses the variable named by key with strconv.ParseBool.
// An unset, empty or unparsable value yields def.
func Bool(r Reader, key string, def bool) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(r.Getenv(key)))
	if err != nil {
		return def
	}
	return v
}

// Present reports whether the variable named by key is set, whatever its value.
func Present(r Reader, key string) bool {
	_, ok := r.LookupEnv(key)
	return ok
}
