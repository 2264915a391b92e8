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
Package dep provides the declared-dependency data structures: a single
PackageDependency, and the DependencyGroup that scopes a list of them to
a target compatibility profile.
*/
package dep

import (
	"strings"

	"depfed.dev/gather/pkgver"
	"depfed.dev/gather/profile"
)

// PackageDependency is a single declared dependency: an id and the range
// of versions that satisfy it. Gather never evaluates Range; it is
// carried through to the resolver.
type PackageDependency struct {
	ID    string
	Range pkgver.Range
}

// CanonicalID returns ID lower-cased, for comparison and ledger lookups.
func (d PackageDependency) CanonicalID() string { return strings.ToLower(d.ID) }

// DependencyGroup pairs a target compatibility Profile with the ordered
// list of PackageDependency a package declares for that profile. A
// package may declare zero or more groups; see profile.SelectGroup for
// how a Source Query Capability narrows these down to one per target.
type DependencyGroup struct {
	Profile      profile.Profile
	Dependencies []PackageDependency
}

// GroupProfile implements profile.Group.
func (g DependencyGroup) GroupProfile() profile.Profile { return g.Profile }
