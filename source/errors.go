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

package source

import "fmt"

// Kind classifies why a Capability call failed.
type Kind int

const (
	// Unavailable indicates a transport failure (the repository could
	// not be reached, timed out, or returned a server error).
	Unavailable Kind = iota
	// Malformed indicates the repository answered but its response
	// could not be parsed.
	Malformed
)

func (k Kind) String() string {
	switch k {
	case Unavailable:
		return "unavailable"
	case Malformed:
		return "malformed"
	default:
		return "unknown"
	}
}

// Error is returned by a Capability implementation to report a
// per-source failure. Gather logs these and continues with other
// sources; it never treats an Error as fatal to the whole invocation.
type Error struct {
	Kind   Kind
	Source string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("source %s: %s: %v", e.Source, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Unavailablef builds an Unavailable Error for the given source.
func Unavailablef(source string, err error) error {
	return &Error{Kind: Unavailable, Source: source, Err: err}
}

// Malformedf builds a Malformed Error for the given source.
func Malformedf(source string, err error) error {
	return &Error{Kind: Malformed, Source: source, Err: err}
}
