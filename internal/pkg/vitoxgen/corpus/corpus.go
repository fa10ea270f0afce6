// Package corpus drives a generation run. New samples are appended to any
// existing dataset and the file is replaced in one step.
package corpus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"vitoxgen/internal/pkg/vitoxgen/dataset"
)

const (
	DefaultCount         = 2000000
	DefaultProgressEvery = 100000
	DefaultBatchSize     = 1000
)

// Source produces the samples to append.
type Source interface {
	Next() dataset.Sample
}

type Options struct {
	Store         *dataset.Store
	Count         int
	ProgressEvery int
	BatchSize     int

	// OnExisting is called once the prior file has been inspected. err is nil
	// for a valid file, wraps os.ErrNotExist when absent, or
	// dataset.ErrMalformed when it could not be decoded.
	OnExisting func(records int, err error)
	// Progress is called every ProgressEvery generated samples.
	Progress func(generated int)
}

type Stats struct {
	RunID     uuid.UUID
	Existing  int
	Generated int
	Total     int
	Malformed bool
	Elapsed   time.Duration
}

func (o *Options) setDefaults() {
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = DefaultProgressEvery
	}
	if o.BatchSize <= 0 {
		o.BatchSize = DefaultBatchSize
	}
}

// Run appends opts.Count samples from src to the dataset. Prior records are
// carried over verbatim; a missing prior file, or one that is not valid JSON,
// counts as empty. The target file is left untouched unless the whole run
// succeeds. A failure to clean up the temp file is joined to the returned error.
func Run(ctx context.Context, opts Options, src Source) (_ *Stats, err error) {
	if opts.Store == nil {
		return nil, errors.New("corpus: no store configured")
	}
	if opts.Count < 0 {
		return nil, fmt.Errorf("corpus: count must not be negative, got %d", opts.Count)
	}
	opts.setDefaults()

	start := time.Now()
	stats := &Stats{RunID: uuid.New()}

	existing, err := opts.Store.Count()
	switch {
	case err == nil:
		stats.Existing = existing
	case errors.Is(err, os.ErrNotExist):
	case errors.Is(err, dataset.ErrMalformed):
		stats.Malformed = true
	default:
		// Unreadable for another reason, such as a directory: treated like
		// a malformed file rather than aborting.
		stats.Malformed = true
		err = fmt.Errorf("%w: %v", dataset.ErrMalformed, err)
	}
	if opts.OnExisting != nil {
		opts.OnExisting(stats.Existing, err)
	}

	app, err := opts.Store.NewAppender(stats.RunID)
	if err != nil {
		return nil, err
	}
	committed := false
	defer func() {
		if !committed {
			err = errors.Join(err, app.Abort())
		}
	}()

	if stats.Existing > 0 {
		copied, err := app.CopyFrom(opts.Store)
		if err != nil {
			return nil, fmt.Errorf("corpus: copy existing records: %w", err)
		}
		if copied != stats.Existing {
			return nil, fmt.Errorf("corpus: %s changed during the run (%d records, expected %d)",
				opts.Store.Path, copied, stats.Existing)
		}
	}

	for i := 0; i < opts.Count; i++ {
		if i%opts.BatchSize == 0 {
			if err := ctx.Err(); err != nil {
				return nil, fmt.Errorf("corpus: interrupted after %d samples: %w", i, err)
			}
		}
		if err := app.Append(src.Next()); err != nil {
			return nil, err
		}
		stats.Generated++
		if stats.Generated%opts.BatchSize == 0 {
			if err := app.Flush(); err != nil {
				return nil, err
			}
		}
		if opts.Progress != nil && stats.Generated%opts.ProgressEvery == 0 {
			opts.Progress(stats.Generated)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("corpus: interrupted before commit: %w", err)
	}
	if err := app.Commit(); err != nil {
		return nil, err
	}
	committed = true

	stats.Total = app.Count()
	stats.Elapsed = time.Since(start)
	return stats, nil
}
