// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// algebra.Option.
package config

// Config collects all configurable parameters for the functions in this module.
type Config struct {
	// MaxDistance aborts the edit distance computation once the distance exceeds this value. A
	// value <= 0 disables the limit.
	MaxDistance int

	// Offset is the minimum number of reference symbols added on both sides of an allele when
	// searching for its supremal variant.
	Offset int

	// If set, edges are expanded into all their atomic (deletion and insertion only)
	// representations.
	Atomics bool
}

// Default is the default configuration.
var Default = Config{
	MaxDistance: 0,
	Offset:      10,
	Atomics:     false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	MaxDistance Flag = 1 << iota
	Offset
	Atomics
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case MaxDistance:
		return "algebra.MaxDistance"
	case Offset:
		return "algebra.Offset"
	case Atomics:
		return "algebra.Atomics"
	default:
		panic("never reached")
	}
}
