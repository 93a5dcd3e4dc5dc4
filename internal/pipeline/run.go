// Package pipeline drives the term×location sweep and owns the single
// accumulating job list for a run.
package pipeline

import (
	"context"
	"log"

	"github.com/harshtiwariiii/job-finder-bot/internal/filter"
	"github.com/harshtiwariiii/job-finder-bot/internal/source"
)

// Result of one full sweep. Jobs holds every filter-accepted record in
// discovery order: term-major, location-minor, API order within a call.
type Result struct {
	Jobs        []source.Job
	PairsTotal  int
	PairsFailed int
}

// Collect runs every (term, location) pair against src sequentially. A
// failed pair is logged and contributes zero records; it never aborts the
// sweep.
func Collect(ctx context.Context, src source.Source, terms, locations []string) Result {
	var res Result

	for _, term := range terms {
		for _, loc := range locations {
			res.PairsTotal++

			jobs, err := src.Search(ctx, term, loc)
			if err != nil {
				log.Printf("❌ Error fetching %q in %q: %v", term, loc, err)
				res.PairsFailed++
				continue
			}

			accepted := 0
			for _, job := range jobs {
				if filter.MatchesInterest(job) {
					res.Jobs = append(res.Jobs, job)
					accepted++
				}
			}
			log.Printf("  🔍 %s: %q in %q -> %d/%d jobs kept", src.Name(), term, loc, accepted, len(jobs))
		}
	}

	return res
}
