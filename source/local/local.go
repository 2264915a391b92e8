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
Package local provides an in-memory source.Capability backed by a fixed
table of versions the caller populates ahead of time. It is useful both
as a real adapter (a local feed, a vendor folder, a lock file replayed
as a source) and as the test double the gather package's scenario tests
build their fixtures on.
*/
package local

import (
	"context"
	"sort"
	"sync"

	"depfed.dev/gather/dep"
	"depfed.dev/gather/identity"
	"depfed.dev/gather/pkgver"
	"depfed.dev/gather/profile"
	"depfed.dev/gather/record"
)

type versionEntry struct {
	version pkgver.Version
	listed  bool
	groups  []dep.DependencyGroup
}

// Source is a source.Capability backed by an in-memory table of
// versions, each with its dependency groups already split out per
// target profile. The zero value is ready to use.
type Source struct {
	mu       sync.RWMutex
	versions map[string][]versionEntry // canonical id -> entries
}

// New returns an empty Source.
func New() *Source {
	return &Source{versions: make(map[string][]versionEntry)}
}

// AddVersion registers one version of id, along with the dependency
// groups declared for each target profile it supports. Any existing
// entry for the same id and version is replaced.
func (s *Source) AddVersion(id, version string, listed bool, groups ...dep.DependencyGroup) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.versions == nil {
		s.versions = make(map[string][]versionEntry)
	}
	canon := identity.New(id, version).CanonicalID()
	entries := s.versions[canon]
	v := pkgver.Parse(version)
	replaced := false
	for i, e := range entries {
		if e.version.Equal(v) {
			entries[i] = versionEntry{version: v, listed: listed, groups: groups}
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, versionEntry{version: v, listed: listed, groups: groups})
		sort.Slice(entries, func(i, j int) bool { return entries[i].version.Less(entries[j].version) })
	}
	s.versions[canon] = entries
}

func narrow(e versionEntry, target profile.Profile) []dep.PackageDependency {
	if len(e.groups) == 0 {
		return nil
	}
	i, ok := profile.SelectGroup(target, e.groups)
	if !ok {
		return nil
	}
	return e.groups[i].Dependencies
}

func (s *Source) toRecord(id string, e versionEntry, target profile.Profile) record.Record {
	return record.Record{
		Identity:     identity.Identity{ID: id, Version: e.version},
		Listed:       e.listed,
		Dependencies: narrow(e, target),
	}
}

// ResolveByIdentity implements source.Capability.
func (s *Source) ResolveByIdentity(ctx context.Context, identities []identity.Identity, target profile.Profile, includePrerelease bool) ([]record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []record.Record
	for _, want := range identities {
		canon := want.CanonicalID()
		for _, e := range s.versions[canon] {
			if !e.version.Equal(want.Version) {
				continue
			}
			if !includePrerelease && e.version.IsPrerelease() {
				continue
			}
			out = append(out, s.toRecord(want.ID, e, target))
		}
	}
	return out, nil
}

// ResolveByID implements source.Capability.
func (s *Source) ResolveByID(ctx context.Context, id string, target profile.Profile, includePrerelease bool) ([]record.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	canon := identity.New(id, "").CanonicalID()
	entries := s.versions[canon]
	out := make([]record.Record, 0, len(entries))
	for _, e := range entries {
		if !includePrerelease && e.version.IsPrerelease() {
			continue
		}
		out = append(out, s.toRecord(id, e, target))
	}
	return out, nil
}
