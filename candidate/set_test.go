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

package candidate

import (
	"sort"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"depfed.dev/gather/identity"
	"depfed.dev/gather/record"
)

func tagged(id, version, source string) record.Tagged {
	return record.Tagged{
		Record: record.Record{Identity: identity.New(id, version)},
		Source: record.SourceRef{Name: source},
	}
}

func TestInsertDeduplicates(t *testing.T) {
	s := New()
	if !s.Insert(tagged("Foo", "1.0.0", "X")) {
		t.Fatalf("first Insert returned false, want true")
	}
	if s.Insert(tagged("foo", "1.0", "X")) {
		t.Errorf("duplicate Insert (case/format differences) returned true, want false")
	}
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestInsertRetainsDistinctSources(t *testing.T) {
	s := New()
	s.Insert(tagged("Foo", "1.0.0", "X"))
	s.Insert(tagged("Foo", "1.0.0", "Y"))
	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (same id/version from distinct sources)", s.Len())
	}
}

func TestSnapshotDeterministicOrder(t *testing.T) {
	s := New()
	s.Insert(tagged("Zeta", "1.0.0", "X"))
	s.Insert(tagged("Alpha", "2.0.0", "X"))
	s.Insert(tagged("Alpha", "1.0.0", "X"))

	first := s.Snapshot()
	second := s.Snapshot()
	firstKeys := make([]record.Key, len(first))
	for i, t := range first {
		firstKeys[i] = t.Key()
	}
	secondKeys := make([]record.Key, len(second))
	for i, t := range second {
		secondKeys[i] = t.Key()
	}
	if diff := cmp.Diff(firstKeys, secondKeys); diff != "" {
		t.Errorf("Snapshot() not stable across calls (-first +second):\n%s", diff)
	}
	if !sort.SliceIsSorted(first, func(i, j int) bool { return first[i].Key().CanonicalID < first[j].Key().CanonicalID }) {
		t.Errorf("Snapshot not sorted by canonical id: %+v", first)
	}
}

func TestKnownIDs(t *testing.T) {
	s := New()
	s.Insert(tagged("Foo", "1.0.0", "X"))
	s.Insert(tagged("Bar", "1.0.0", "X"))
	s.Insert(tagged("foo", "2.0.0", "Y"))

	ids := s.KnownIDs()
	sort.Strings(ids)
	want := []string{"bar", "foo"}
	if len(ids) != len(want) {
		t.Fatalf("KnownIDs() = %v, want %v", ids, want)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("KnownIDs() = %v, want %v", ids, want)
		}
	}
}

func TestInsertConcurrentSafe(t *testing.T) {
	s := New()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Insert(tagged("Same", "1.0.0", "X"))
		}(i)
	}
	wg.Wait()
	if s.Len() != 1 {
		t.Errorf("Len() after concurrent duplicate inserts = %d, want 1", s.Len())
	}
}
