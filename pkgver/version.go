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

/*
Package pkgver provides the normalized version and version range types
used to identify package releases and declared dependency constraints.

Gather treats both as structural values: it compares and sorts Versions,
but never evaluates a Range against a Version. Range matching is the
downstream resolver's job.
*/
package pkgver

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a normalized, structural representation of a package version
// string, in the style of semver: a dot-separated sequence of numeric
// components optionally followed by a prerelease tag. Unlike full semver it
// makes no claim about the number of components, so it can represent the
// version strings produced by any packaging ecosystem.
type Version struct {
	raw   string
	num   []int64
	pre   string
	build string
}

// Parse normalizes a raw version string into a Version. Parsing never
// fails: any component that isn't a valid non-negative integer is folded
// into the prerelease tag, so every string has some Version representation.
func Parse(raw string) Version {
	v := Version{raw: raw}
	s := raw
	if i := strings.IndexByte(s, '+'); i >= 0 {
		v.build = s[i+1:]
		s = s[:i]
	}
	core := s
	pre := ""
	if i := strings.IndexByte(s, '-'); i >= 0 {
		core = s[:i]
		pre = s[i+1:]
	}
	for _, part := range strings.Split(core, ".") {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			// Not a clean numeric core: treat the whole remainder as
			// prerelease so the version still compares consistently.
			pre = s
			v.num = nil
			break
		}
		v.num = append(v.num, n)
	}
	v.pre = pre
	return v
}

// String returns the original, un-normalized version string.
func (v Version) String() string { return v.raw }

// IsZero reports whether v is the zero Version (no version parsed).
func (v Version) IsZero() bool { return v.raw == "" }

// Compare returns -1, 0 or 1 as v is less than, equal to, or greater than
// w, comparing numeric components in order and then the prerelease tag.
// A version with a prerelease tag sorts before its release counterpart.
func (v Version) Compare(w Version) int {
	for i := 0; i < len(v.num) || i < len(w.num); i++ {
		var a, b int64
		if i < len(v.num) {
			a = v.num[i]
		}
		if i < len(w.num) {
			b = w.num[i]
		}
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	switch {
	case v.pre == w.pre:
		return 0
	case v.pre == "":
		return 1
	case w.pre == "":
		return -1
	case v.pre < w.pre:
		return -1
	default:
		return 1
	}
}

// Equal reports whether v and w are structurally equal.
func (v Version) Equal(w Version) bool { return v.Compare(w) == 0 }

// Less reports whether v sorts before w.
func (v Version) Less(w Version) bool { return v.Compare(w) < 0 }

// IsPrerelease reports whether v carries a prerelease tag.
func (v Version) IsPrerelease() bool { return v.pre != "" }

func (v Version) GoString() string {
	return fmt.Sprintf("pkgver.Parse(%q)", v.raw)
}

// CanonicalKey returns a string that is equal for two Versions iff they
// are structurally Equal, suitable for use as (part of) a map key.
func (v Version) CanonicalKey() string {
	// Trailing zero components don't affect Compare ("1.0" == "1.0.0"),
	// so they are left out of the key as well.
	end := len(v.num)
	for end > 0 && v.num[end-1] == 0 {
		end--
	}
	var b strings.Builder
	for i, n := range v.num[:end] {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%d", n)
	}
	b.WriteByte('|')
	b.WriteString(v.pre)
	return b.String()
}
