// Copyright 2024 The Depfed Authors
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

package gather

import "log/slog"

type options struct {
	includePrerelease bool
	maxParallelism    int
	logger            *slog.Logger
}

// Option configures a Gather invocation.
type Option func(*options)

// WithIncludePrerelease controls whether prerelease versions are
// requested from each source. Default: false.
func WithIncludePrerelease(include bool) Option {
	return func(o *options) { o.includePrerelease = include }
}

// WithMaxParallelism bounds how many (source, id) queries may be
// in flight at once. Values <= 0 are ignored; the default is the
// number of sources passed to Gather, so that a single pass can fan out
// fully without the caller needing to think about it.
func WithMaxParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxParallelism = n
		}
	}
}

// WithLogger overrides the *slog.Logger gather uses to report per-source
// diagnostics. Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func defaultOptions(sourceCount int) *options {
	p := sourceCount
	if p < 1 {
		p = 1
	}
	return &options{maxParallelism: p, logger: slog.Default()}
}
