// Package batch drives the fetcher over every row of the photos list.
package batch

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/youruser/productimages/internal/fetch"
	"github.com/youruser/productimages/internal/products"
)

// Fetcher is satisfied by *fetch.Fetcher
type Fetcher interface {
	Fetch(ctx context.Context, row products.Row) fetch.Result
}

// FailureRecord is one row of the failure report
type FailureRecord struct {
	Barcode   string
	ProductID string
	Reason    string
}

type Summary struct {
	RunID       string
	Total       int
	Processed   int
	Succeeded   int
	Failures    []FailureRecord
	Interrupted bool
}

type Runner struct {
	fetcher Fetcher
	delay   time.Duration
	log     zerolog.Logger
}

// NewRunner waits delay after every row, successful or not, to stay under
// the lookup service's rate limit.
func NewRunner(f Fetcher, delay time.Duration, log zerolog.Logger) *Runner {
	return &Runner{fetcher: f, delay: delay, log: log}
}

// Run processes rows in order. A failing row is recorded and the run moves
// on. Cancelling ctx stops the run after the current row; that row's fetch
// is not cancelled.
func (r *Runner) Run(ctx context.Context, rows []products.Row) Summary {
	s := Summary{RunID: uuid.NewString(), Total: len(rows)}
	log := r.log.With().Str("run_id", s.RunID).Logger()

	log.Info().Int("total", s.Total).Msg("starting download of product images")
	for i, row := range rows {
		if ctx.Err() != nil {
			s.Interrupted = true
			break
		}

		log.Info().
			Str("progress", progress(i+1, s.Total)).
			Str("barcode", row.Barcode).
			Str("product_number", row.ProductID).
			Msg("processing product")

		// a stop request lets the row in flight finish
		res := r.fetcher.Fetch(context.WithoutCancel(ctx), row)
		s.Processed++
		if res.OK() {
			s.Succeeded++
			log.Info().Str("product_number", row.ProductID).Str("path", res.Path).Int("bytes", res.Size).Msg("downloaded image")
		} else {
			s.Failures = append(s.Failures, FailureRecord{Barcode: row.Barcode, ProductID: row.ProductID, Reason: res.Reason})
			log.Warn().Str("barcode", row.Barcode).Str("product_number", row.ProductID).Str("reason", res.Reason).Msg("failed to download image")
		}

		if !sleep(ctx, r.delay) {
			s.Interrupted = i+1 < len(rows)
			break
		}
	}
	return s
}

func progress(n, total int) string {
	return strconv.Itoa(n) + "/" + strconv.Itoa(total)
}

// sleep waits d or until ctx is done; it reports whether the full wait elapsed
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
