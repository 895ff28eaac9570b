//go:build !ios && !android && (amd64 || arm64)

package orcgo

import (
	"context"
	"io"
	"runtime"

	"github.com/apache/arrow-go/v18/arrow"
	"golang.org/x/sync/errgroup"
)

// ReadStripes decodes every stripe of r concurrently and calls fn for each
// record batch. fn may be called from multiple goroutines at once and must
// Release the record when done with it. Records within one stripe arrive in
// order; records of different stripes interleave.
//
// The first error (from decoding or from fn) cancels the remaining work.
func ReadStripes(ctx context.Context, r *Reader, fn func(stripe int, rec arrow.Record) error) error {
	parallelism := r.opts.parallelism
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i := 0; i < r.NumStripes(); i++ {
		g.Go(func() error {
			sr, err := r.StripeReaderAt(i)
			if err != nil {
				return err
			}
			defer sr.Close()

			for {
				if err := ctx.Err(); err != nil {
					return err
				}

				rec, err := sr.Next()
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				// fn owns the record, error or not; releasing here too would
				// underflow the refcount.
				if err := fn(i, rec); err != nil {
					return err
				}
			}
		})
	}

	return g.Wait()
}
