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
Package profile identifies the caller's target compatibility profile
(the "framework" a package's dependency groups are declared against) and
implements the nearest-compatible-framework relation used to narrow a
package's declared dependency groups down to the single group that
applies to a given target.

This corresponds to .NET/NuGet target framework moniker compatibility,
simplified to a flat precedence table: a real implementation would need
a per-ecosystem compatibility graph, but gather only needs a consistent,
documented tie-break rule, not a complete one.
*/
package profile

// Profile identifies a target compatibility specifier, such as a
// runtime/framework moniker. The zero value ("") is not Any: like every
// profile missing from the compatibility table, it accepts only groups
// declared for itself or for Any.
type Profile string

// Any is the wildcard profile: a DependencyGroup declared against Any is
// considered compatible with every target profile, but is the least
// specific possible match.
const Any Profile = "any"

// compatibility lists, for each known profile, the other profiles it can
// fall back to, nearest first. Order within a row is the tie-break order
// when more than one declared group matches a target.
var compatibility = map[Profile][]Profile{
	"net8.0":          {"net8.0", "net7.0", "net6.0", "netstandard2.1", "netstandard2.0", Any},
	"net7.0":          {"net7.0", "net6.0", "netstandard2.1", "netstandard2.0", Any},
	"net6.0":          {"net6.0", "netstandard2.1", "netstandard2.0", Any},
	"netstandard2.1":  {"netstandard2.1", "netstandard2.0", Any},
	"netstandard2.0":  {"netstandard2.0", Any},
	"netcoreapp3.1":   {"netcoreapp3.1", "netstandard2.1", "netstandard2.0", Any},
	Any:               {Any},
}

// Precedence returns the ordered list of profiles that p is willing to
// accept a dependency group from, nearest match first, always ending in
// Any. Profiles not present in the compatibility table fall back to
// themselves and then Any.
func Precedence(p Profile) []Profile {
	if order, ok := compatibility[p]; ok {
		return order
	}
	if p == Any {
		return []Profile{Any}
	}
	return []Profile{p, Any}
}

// NearestCompatible returns the index into Precedence(target) of the
// most specific profile present in candidates, and whether any candidate
// matched at all. Ties among candidates sharing a profile are broken by
// the caller using the order the candidates were supplied in (the
// package's own declared group order is irrelevant here; only the
// precedence-table rank matters).
func NearestCompatible(target Profile, candidates []Profile) (rank int, ok bool) {
	order := Precedence(target)
	best := -1
	for _, cand := range candidates {
		for i, p := range order {
			if p == cand {
				if best == -1 || i < best {
					best = i
				}
				break
			}
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}
