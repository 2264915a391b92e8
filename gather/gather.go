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
Package gather implements the fixed-point multi-source dependency
gathering algorithm: given a root package identity and a set of
repositories, it seeds a Candidate Set with the root's metadata from
every repository, then repeatedly re-queries every repository for every
id discovered anywhere until a full pass discovers nothing new.

Dependency information is federated — a package id's metadata can live
on any subset of configured repositories, and a transitive dependency
discovered via one repository may only resolve against another. Gather
exists to find every edge of that graph regardless of which repository
introduced it, without re-querying a (repository, id) pair more than
once.
*/
package gather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"depfed.dev/gather/candidate"
	"depfed.dev/gather/identity"
	"depfed.dev/gather/ledger"
	"depfed.dev/gather/profile"
	"depfed.dev/gather/record"
	"depfed.dev/gather/source"
)

// Realm tags every log entry this package emits.
const Realm = "gather"

// Gather runs the fixed-point algorithm rooted at root, returning a
// deduplicated snapshot of every Source-Tagged Record discovered across
// sources. Sources that don't expose a query capability are silently
// excluded; if none remain, Gather fails fast with
// ErrNoSourcesAvailable. If ctx is cancelled at any point, Gather
// abandons in-flight queries and returns the context's error without a
// partial result.
func Gather(ctx context.Context, root identity.Identity, target profile.Profile, sources []source.Repository, opts ...Option) ([]record.Tagged, error) {
	o := defaultOptions(len(sources))
	for _, opt := range opts {
		opt(o)
	}

	var usable []source.Repository
	var names []string
	for _, s := range sources {
		if !s.SupportsQuery() {
			continue
		}
		usable = append(usable, s)
		names = append(names, s.Name)
	}
	if len(usable) == 0 {
		return nil, ErrNoSourcesAvailable
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("gather: %w", err)
	}

	c := candidate.New()
	l := ledger.New(names)

	if err := seedPass(ctx, o, root, target, usable, c, l); err != nil {
		return nil, err
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("gather: %w", err)
		}

		universe := l.Universe()
		tasks := pendingQueries(usable, l, universe)
		if len(tasks) == 0 {
			break
		}
		if err := runPass(ctx, o, target, tasks, c, l); err != nil {
			return nil, err
		}
	}

	return c.Snapshot(), nil
}

type queryTask struct {
	source source.Repository
	id     string
}

func pendingQueries(sources []source.Repository, l *ledger.Ledger, universe []string) []queryTask {
	var tasks []queryTask
	for _, s := range sources {
		for _, id := range l.Missing(s.Name, universe) {
			tasks = append(tasks, queryTask{source: s, id: id})
		}
	}
	return tasks
}

// seedPass queries every source for root, the one query every gather
// invocation performs regardless of what the fixed-point loop later
// discovers.
func seedPass(ctx context.Context, o *options, root identity.Identity, target profile.Profile, sources []source.Repository, c *candidate.Set, l *ledger.Ledger) error {
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.maxParallelism)

	for _, s := range sources {
		s := s
		l.MarkQueried(s.Name, root.ID)

		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}

			records, err := s.Query.ResolveByIdentity(egctx, []identity.Identity{root}, target, o.includePrerelease)
			if err != nil {
				if isCancellation(err) {
					return err
				}
				logSourceError(o.logger, s.Name, root.ID, err)
				return nil
			}

			absorb(c, l, s, records)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	return nil
}

// runPass dispatches one pass of the fixed-point loop: every (source,
// id) pair currently owed, concurrently, bounded by maxParallelism.
func runPass(ctx context.Context, o *options, target profile.Profile, tasks []queryTask, c *candidate.Set, l *ledger.Ledger) error {
	eg, egctx := errgroup.WithContext(ctx)
	eg.SetLimit(o.maxParallelism)

	for _, t := range tasks {
		t := t
		l.MarkQueried(t.source.Name, t.id)

		eg.Go(func() error {
			if err := egctx.Err(); err != nil {
				return err
			}

			records, err := t.source.Query.ResolveByID(egctx, t.id, target, o.includePrerelease)
			if err != nil {
				if isCancellation(err) {
					return err
				}
				logSourceError(o.logger, t.source.Name, t.id, err)
				return nil
			}

			absorb(c, l, t.source, records)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return fmt.Errorf("gather: %w", err)
	}
	return nil
}

// absorb inserts every record into c, tagged with s, and adds each
// record's declared dependency ids to the globally discovered universe.
//
// Newly discovered ids are never pre-marked as already queried against
// s itself, even though s is the source that just declared them: doing
// so (a literal reading of the original algorithm's ledger update) can
// permanently hide a dependency that s hosts but only reveals through
// its own resolve-by-id, not through the record that first named it.
// See DESIGN.md.
func absorb(c *candidate.Set, l *ledger.Ledger, s source.Repository, records []record.Record) {
	for _, r := range records {
		c.Insert(record.Tagged{Record: r, Source: s.Ref()})
		for _, d := range r.Dependencies {
			l.MarkDiscovered(d.ID)
		}
	}
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

func logSourceError(logger *slog.Logger, sourceName, id string, err error) {
	kind := "unknown"
	var serr *source.Error
	if errors.As(err, &serr) {
		kind = serr.Kind.String()
	}
	logger.Warn("source query failed, gather continues without it",
		"realm", Realm, "source", sourceName, "id", id, "kind", kind, "error", err)
}
