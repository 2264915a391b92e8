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

package profile

// Group is the minimal shape profile.SelectGroup needs from a
// package's declared dependency group; dep.DependencyGroup satisfies it.
type Group interface {
	GroupProfile() Profile
}

// SelectGroup returns the index of the group in groups whose profile is
// the nearest compatible match for target, per the
// nearest-compatible-framework relation. If no group matches, it returns
// (-1, false) and the caller should treat the package as having no
// declared dependencies for that target.
func SelectGroup[G Group](target Profile, groups []G) (int, bool) {
	bestIdx := -1
	bestRank := -1
	for i, g := range groups {
		rank, ok := NearestCompatible(target, []Profile{g.GroupProfile()})
		if !ok {
			continue
		}
		if bestRank == -1 || rank < bestRank {
			bestRank, bestIdx = rank, i
		}
	}
	if bestIdx == -1 {
		return -1, false
	}
	return bestIdx, true
}
