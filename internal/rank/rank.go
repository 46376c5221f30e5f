// Package rank orders candidate lines by how tightly they contain a needle
package rank

import (
	"context"
	"runtime"
	"sort"

	"github.com/johnstarich/go/minspan"
	"github.com/johnstarich/go/minspan/internal/tokenize"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options configures a Rank run
type Options struct {
	// Mode selects the kind of element needle and candidates are compared by. Defaults to runes.
	Mode tokenize.Mode
	// Limit is the maximum number of results. Returns all results if Limit <= 0.
	Limit int
	// Unique drops repeated candidates, keeping the first occurrence
	Unique bool
	// Workers is the number of candidates matched concurrently. Defaults to GOMAXPROCS.
	Workers int
	// Logger receives debug information about each run. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Result is a matching candidate and its minimal span
type Result struct {
	// Index is the candidate's position in the input
	Index int
	// Text is the candidate itself
	Text string
	// Span is the minimal span, counted in tokens of the chosen Mode
	Span minspan.Span
	// ByteStart and ByteEnd are Span's byte offsets into Text
	ByteStart, ByteEnd int
}

// Match returns the portion of Text covered by Span
func (r Result) Match() string {
	return r.Text[r.ByteStart:r.ByteEnd]
}

type slot struct {
	result Result
	found  bool
}

// Rank returns every candidate containing needle as a subsequence, ordered by ascending span length.
// Candidates with equal span lengths keep their input order.
func Rank(ctx context.Context, needle string, candidates []string, options Options) (_ []Result, err error) {
	defer func() { err = errors.Wrap(err, "rank") }()
	if options.Workers <= 0 {
		options.Workers = runtime.GOMAXPROCS(0)
	}
	if options.Logger == nil {
		options.Logger = zap.NewNop()
	}

	needleTokens := tokenize.Split(needle, options.Mode).Values
	indexes := candidateIndexes(candidates, options.Unique)
	slots := make([]slot, len(candidates))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(options.Workers)
	for _, i := range indexes {
		if groupCtx.Err() != nil {
			break
		}
		i := i // per-iteration copy for the goroutine (go 1.21 loop semantics)
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			slots[i] = match(needleTokens, i, candidates[i], options.Mode)
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(slots))
	for _, s := range slots {
		if s.found {
			results = append(results, s.result)
		}
	}
	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Span.Len() < results[b].Span.Len()
	})
	options.Logger.Debug("Ranked candidates",
		zap.String("needle", needle),
		zap.Stringer("mode", options.Mode),
		zap.Int("candidates", len(indexes)),
		zap.Int("matches", len(results)),
	)
	if options.Limit > 0 && len(results) > options.Limit {
		results = results[:options.Limit]
	}
	return results, nil
}

func match(needle []string, index int, candidate string, mode tokenize.Mode) slot {
	tokens := tokenize.Split(candidate, mode)
	span, found := minspan.Find(needle, tokens.Values)
	if !found {
		return slot{}
	}
	start, end := tokens.ByteRange(span)
	return slot{
		found: true,
		result: Result{
			Index:     index,
			Text:      candidate,
			Span:      span,
			ByteStart: start,
			ByteEnd:   end,
		},
	}
}

// candidateIndexes returns the indexes of candidates to match, skipping repeats if unique is set
func candidateIndexes(candidates []string, unique bool) []int {
	indexes := make([]int, 0, len(candidates))
	seen := make(map[string]bool)
	for i, c := range candidates {
		if unique {
			if seen[c] {
				continue
			}
			seen[c] = true
		}
		indexes = append(indexes, i)
	}
	return indexes
}
