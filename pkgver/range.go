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

package pkgver

import "strings"

// Range is an interval over Versions, with inclusive or exclusive bounds
// and an optional floating specifier (e.g. a wildcard component such as
// "1.2.*" that should float to the highest matching release).
//
// Range is opaque to the gather core: nothing in this module ever asks
// whether a Version falls inside a Range. It exists so that a
// PackageDependency carries everything the downstream resolver needs,
// verbatim, without the gather core having to understand constraint
// grammar for every packaging ecosystem it federates across.
type Range struct {
	raw string

	hasMin       bool
	min          Version
	minInclusive bool

	hasMax       bool
	max          Version
	maxInclusive bool

	floating string
}

// ParseRange builds a Range from a raw constraint string using a small,
// permissive bracket/interval grammar:
//
//	"1.2.3"          exact version
//	"[1.2.3,)"       >= 1.2.3
//	"(1.2.3,)"       > 1.2.3
//	"[1.2.3,2.0.0)"  >= 1.2.3 and < 2.0.0
//	"1.2.*"          floating: matches the 1.2.x series
//
// Unrecognized syntax is preserved verbatim (see String) and otherwise
// treated as an unbounded range; the gather core never needs ParseRange to
// succeed in order to do its job; it is provided for adapters and tests
// that want a structured Range instead of a bare string.
func ParseRange(raw string) Range {
	r := Range{raw: raw}
	s := strings.TrimSpace(raw)
	if s == "" {
		return r
	}
	if strings.ContainsAny(s, "*") {
		r.floating = s
		return r
	}
	if len(s) >= 2 && (s[0] == '[' || s[0] == '(') && (s[len(s)-1] == ']' || s[len(s)-1] == ')') {
		minInclusive := s[0] == '['
		maxInclusive := s[len(s)-1] == ']'
		inner := s[1 : len(s)-1]
		parts := strings.SplitN(inner, ",", 2)
		lo := strings.TrimSpace(parts[0])
		hi := ""
		if len(parts) == 2 {
			hi = strings.TrimSpace(parts[1])
		}
		if lo != "" {
			r.hasMin = true
			r.min = Parse(lo)
			r.minInclusive = minInclusive
		}
		if hi != "" {
			r.hasMax = true
			r.max = Parse(hi)
			r.maxInclusive = maxInclusive
		}
		return r
	}
	// A bare version string means an exact pin, i.e. a minimum-inclusive
	// bound equal to the maximum-inclusive bound.
	v := Parse(s)
	if len(v.num) == 0 {
		// No numeric core: not a version string, so leave it unbounded.
		return r
	}
	r.hasMin, r.min, r.minInclusive = true, v, true
	r.hasMax, r.max, r.maxInclusive = true, v, true
	return r
}

// String returns the original constraint string.
func (r Range) String() string { return r.raw }

// IsFloating reports whether this range carries a floating specifier.
func (r Range) IsFloating() bool { return r.floating != "" }

// Bounds returns the lower and upper bounds of the range, if present, and
// whether each is inclusive. hasMin/hasMax report whether that bound is
// set at all; an unset bound is unbounded in that direction.
func (r Range) Bounds() (min Version, minInclusive, hasMin bool, max Version, maxInclusive, hasMax bool) {
	return r.min, r.minInclusive, r.hasMin, r.max, r.maxInclusive, r.hasMax
}
