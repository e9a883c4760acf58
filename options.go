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

package algebra

import "znkr.io/algebra/internal/config"

// Option configures the behavior of the functions in this package. Passing an option to a
// function that doesn't support it panics.
type Option = config.Option

// MaxDistance limits the edit distance that [NewGraph] and [Extract] are willing to compute. If
// the distance between the two sequences is larger than n, they fail with [ErrMaxDistance]. A
// value <= 0 removes the limit, which is the default.
func MaxDistance(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.MaxDistance = max(0, n)
		return config.MaxDistance
	}
}

// Offset sets the minimum number of reference symbols that are initially added on both sides of
// an allele when searching for its supremal variant. The search widens the window until the
// supremal variant is stable, the offset only changes how many rounds that takes. The default is
// 10.
func Offset(n int) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Offset = max(1, n)
		return config.Offset
	}
}

// Atomics expands every variant into all of its representations with single symbol deletions and
// insertions when traversing a [Graph].
func Atomics() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Atomics = true
		return config.Atomics
	}
}
