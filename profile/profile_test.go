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

import "testing"

type fakeGroup struct {
	profile Profile
	label   string
}

func (g fakeGroup) GroupProfile() Profile { return g.profile }

func TestNearestCompatibleExactMatch(t *testing.T) {
	rank, ok := NearestCompatible("net6.0", []Profile{"net6.0", Any})
	if !ok {
		t.Fatalf("NearestCompatible(net6.0, [net6.0, any]) ok = false, want true")
	}
	if rank != 0 {
		t.Errorf("NearestCompatible(net6.0, [net6.0, any]) rank = %d, want 0 (exact match nearest)", rank)
	}
}

func TestNearestCompatibleFallsBack(t *testing.T) {
	rank, ok := NearestCompatible("net8.0", []Profile{"netstandard2.0", Any})
	if !ok {
		t.Fatalf("NearestCompatible(net8.0, [netstandard2.0, any]) ok = false, want true")
	}
	order := Precedence("net8.0")
	var wantRank int
	for i, p := range order {
		if p == "netstandard2.0" {
			wantRank = i
		}
	}
	if rank != wantRank {
		t.Errorf("NearestCompatible rank = %d, want %d", rank, wantRank)
	}
}

func TestNearestCompatibleNoMatch(t *testing.T) {
	_, ok := NearestCompatible("net8.0", []Profile{"unrelated-framework"})
	if ok {
		t.Errorf("NearestCompatible(net8.0, [unrelated-framework]) ok = true, want false")
	}
}

func TestSelectGroupPicksNearest(t *testing.T) {
	groups := []fakeGroup{
		{profile: Any, label: "any"},
		{profile: "netstandard2.0", label: "netstandard"},
		{profile: "net6.0", label: "net6"},
	}
	idx, ok := SelectGroup[fakeGroup]("net6.0", groups)
	if !ok {
		t.Fatalf("SelectGroup ok = false, want true")
	}
	if groups[idx].label != "net6" {
		t.Errorf("SelectGroup picked %q, want %q", groups[idx].label, "net6")
	}
}

func TestSelectGroupNoMatchReturnsFalse(t *testing.T) {
	groups := []fakeGroup{{profile: "net48"}}
	if _, ok := SelectGroup[fakeGroup]("netstandard2.0", groups); ok {
		t.Errorf("SelectGroup ok = true, want false (no compatible group)")
	}
}

func TestSelectGroupEmpty(t *testing.T) {
	if _, ok := SelectGroup[fakeGroup](Any, nil); ok {
		t.Errorf("SelectGroup on no groups ok = true, want false")
	}
}
