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
Package httpfeed provides a source.Capability over a NuGet V3-style
registration feed: one JSON document per package id, listing every
version and the dependency groups declared per target framework. See
https://learn.microsoft.com/nuget/api/registration-base-url-resource
for the document shape this package consumes.
*/
package httpfeed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"depfed.dev/gather/dep"
	"depfed.dev/gather/identity"
	"depfed.dev/gather/pkgver"
	"depfed.dev/gather/profile"
	"depfed.dev/gather/record"
	"depfed.dev/gather/source"
)

// Source queries a single NuGet V3-style registration feed over HTTP.
type Source struct {
	name    string
	baseURL string
	client  *http.Client
}

// New returns a Source that fetches registration documents from
// baseURL/registration/<lowercased-id>/index.json. If httpClient is nil,
// http.DefaultClient is used. name identifies this source in source.Error
// values; it need not match a source.Repository's Name, though callers
// will usually pass the same string.
func New(name, baseURL string, httpClient *http.Client) *Source {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Source{name: name, baseURL: strings.TrimRight(baseURL, "/"), client: httpClient}
}

type registrationIndex struct {
	Items []registrationPage `json:"items"`
}

type registrationPage struct {
	Items []registrationLeaf `json:"items"`
}

type registrationLeaf struct {
	CatalogEntry *catalogEntry `json:"catalogEntry"`
}

type catalogEntry struct {
	PackageID        string            `json:"id"`
	Version          string            `json:"version"`
	Listed           bool              `json:"listed"`
	DependencyGroups []dependencyGroup `json:"dependencyGroups"`
}

type dependencyGroup struct {
	TargetFramework string           `json:"targetFramework"`
	Dependencies    []dependencyJSON `json:"dependencies"`
}

type dependencyJSON struct {
	ID    string `json:"id"`
	Range string `json:"range"`
}

func toGroups(groups []dependencyGroup) []dep.DependencyGroup {
	out := make([]dep.DependencyGroup, 0, len(groups))
	for _, g := range groups {
		p := profile.Any
		if g.TargetFramework != "" {
			p = profile.Profile(g.TargetFramework)
		}
		deps := make([]dep.PackageDependency, 0, len(g.Dependencies))
		for _, d := range g.Dependencies {
			deps = append(deps, dep.PackageDependency{ID: d.ID, Range: pkgver.ParseRange(d.Range)})
		}
		out = append(out, dep.DependencyGroup{Profile: p, Dependencies: deps})
	}
	return out
}

func (e *catalogEntry) toRecord(target profile.Profile) record.Record {
	groups := toGroups(e.DependencyGroups)
	var deps []dep.PackageDependency
	if i, ok := profile.SelectGroup(target, groups); ok {
		deps = groups[i].Dependencies
	}
	return record.Record{
		Identity:     identity.New(e.PackageID, e.Version),
		Listed:       e.Listed,
		Dependencies: deps,
	}
}

// fetch retrieves and parses the registration document for id. A 404
// response is not an error: it means this feed has never heard of id,
// and fetch returns a nil index.
func (s *Source) fetch(ctx context.Context, id string) (*registrationIndex, error) {
	u := fmt.Sprintf("%s/registration/%s/index.json", s.baseURL, url.PathEscape(strings.ToLower(id)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, source.Unavailablef(s.name, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, source.Unavailablef(s.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, source.Unavailablef(s.name, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, u))
	}

	var idx registrationIndex
	if err := json.NewDecoder(resp.Body).Decode(&idx); err != nil {
		return nil, source.Malformedf(s.name, fmt.Errorf("decode %s: %w", u, err))
	}
	return &idx, nil
}

func (s *Source) entries(idx *registrationIndex) []*catalogEntry {
	if idx == nil {
		return nil
	}
	var out []*catalogEntry
	for _, page := range idx.Items {
		for _, leaf := range page.Items {
			if leaf.CatalogEntry != nil {
				out = append(out, leaf.CatalogEntry)
			}
		}
	}
	return out
}

// ResolveByID implements source.Capability.
func (s *Source) ResolveByID(ctx context.Context, id string, target profile.Profile, includePrerelease bool) ([]record.Record, error) {
	idx, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	var out []record.Record
	for _, e := range s.entries(idx) {
		v := pkgver.Parse(e.Version)
		if !includePrerelease && v.IsPrerelease() {
			continue
		}
		out = append(out, e.toRecord(target))
	}
	return out, nil
}

// ResolveByIdentity implements source.Capability. It issues one
// registration fetch per distinct requested id, then filters the
// returned versions down to the ones actually requested.
func (s *Source) ResolveByIdentity(ctx context.Context, identities []identity.Identity, target profile.Profile, includePrerelease bool) ([]record.Record, error) {
	wanted := make(map[string][]identity.Identity)
	var order []string
	for _, want := range identities {
		canon := want.CanonicalID()
		if _, ok := wanted[canon]; !ok {
			order = append(order, canon)
		}
		wanted[canon] = append(wanted[canon], want)
	}

	var out []record.Record
	for _, canon := range order {
		want := wanted[canon]
		idx, err := s.fetch(ctx, want[0].ID)
		if err != nil {
			return nil, err
		}
		for _, e := range s.entries(idx) {
			v := pkgver.Parse(e.Version)
			for _, w := range want {
				if !v.Equal(w.Version) {
					continue
				}
				if !includePrerelease && v.IsPrerelease() {
					continue
				}
				out = append(out, e.toRecord(target))
			}
		}
	}
	return out, nil
}
