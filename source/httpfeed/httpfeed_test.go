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

package httpfeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"depfed.dev/gather/identity"
	"depfed.dev/gather/profile"
	"depfed.dev/gather/source"
)

const fooIndex = `{
  "items": [
    {
      "items": [
        {
          "catalogEntry": {
            "id": "Foo",
            "version": "1.0.0",
            "listed": true,
            "dependencyGroups": [
              { "targetFramework": "net6.0", "dependencies": [ { "id": "Bar", "range": "[1.0.0,)" } ] }
            ]
          }
        },
        {
          "catalogEntry": {
            "id": "Foo",
            "version": "2.0.0-beta",
            "listed": true,
            "dependencyGroups": []
          }
        }
      ]
    }
  ]
}`

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/registration/foo/index.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(fooIndex))
	})
	mux.HandleFunc("/registration/missing/index.json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	mux.HandleFunc("/registration/broken/index.json", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("{not json"))
	})
	return httptest.NewServer(mux)
}

func TestResolveByIDParsesCatalog(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	s := New("test-feed", srv.URL, nil)
	records, err := s.ResolveByID(context.Background(), "Foo", "net6.0", false)
	if err != nil {
		t.Fatalf("ResolveByID: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ResolveByID (no prerelease) returned %d records, want 1", len(records))
	}
	if len(records[0].Dependencies) != 1 || records[0].Dependencies[0].ID != "Bar" {
		t.Errorf("ResolveByID dependencies = %+v, want [Bar]", records[0].Dependencies)
	}
}

func TestResolveByIDIncludePrerelease(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	s := New("test-feed", srv.URL, nil)
	records, err := s.ResolveByID(context.Background(), "Foo", "net6.0", true)
	if err != nil {
		t.Fatalf("ResolveByID: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("ResolveByID (include prerelease) returned %d records, want 2", len(records))
	}
}

func TestResolveByIDNotFoundIsEmptyNotError(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	s := New("test-feed", srv.URL, nil)
	records, err := s.ResolveByID(context.Background(), "Missing", profile.Any, false)
	if err != nil {
		t.Fatalf("ResolveByID for unknown id returned error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("ResolveByID for unknown id returned %d records, want 0", len(records))
	}
}

func TestResolveByIDMalformedJSON(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	s := New("test-feed", srv.URL, nil)
	_, err := s.ResolveByID(context.Background(), "Broken", profile.Any, false)
	var serr *source.Error
	if !errors.As(err, &serr) || serr.Kind != source.Malformed {
		t.Errorf("ResolveByID for malformed response returned %v, want a source.Malformed error", err)
	}
}

func TestResolveByIdentityFiltersToRequestedVersion(t *testing.T) {
	srv := newTestServer(t)
	defer srv.Close()

	s := New("test-feed", srv.URL, nil)
	records, err := s.ResolveByIdentity(context.Background(), []identity.Identity{identity.New("Foo", "1.0.0")}, "net6.0", false)
	if err != nil {
		t.Fatalf("ResolveByIdentity: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("ResolveByIdentity returned %d records, want 1", len(records))
	}
	if !records[0].Identity.Version.Equal(identity.New("Foo", "1.0.0").Version) {
		t.Errorf("ResolveByIdentity returned version %v, want 1.0.0", records[0].Identity.Version)
	}
}

func TestResolveByIDUnavailable(t *testing.T) {
	s := New("unreachable", "http://127.0.0.1:1", nil)
	_, err := s.ResolveByID(context.Background(), "Foo", profile.Any, false)
	var serr *source.Error
	if !errors.As(err, &serr) || serr.Kind != source.Unavailable {
		t.Errorf("ResolveByID against unreachable host returned %v, want a source.Unavailable error", err)
	}
}
