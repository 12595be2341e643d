// Package recovery reconstructs the secrets of many share documents at once.
//
// Each document is handled independently with its own point set; a malformed
// document fails only its own Result. Documents are processed concurrently,
// bounded by Options.Workers.
package recovery

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vitalvas/shamirkit/shamir"
	"github.com/vitalvas/shamirkit/sharefile"
	"github.com/vitalvas/shamirkit/xlogger"
)

type Options struct {
	// Workers bounds the number of documents processed at once.
	// Zero means runtime.GOMAXPROCS(0).
	Workers   int
	Selection sharefile.Selection
	// Verify checks every share of a document, not only the first k.
	Verify bool
	Logger *slog.Logger
}

// Result is the outcome for one document.
type Result struct {
	Source string
	K      int
	Secret *big.Int
	// Inconsistent lists shares that do not lie on the recovered polynomial.
	// Only filled when Options.Verify is set.
	Inconsistent []shamir.Point
	Err          error
}

type Recoverer struct {
	workers   int
	selection sharefile.Selection
	verify    bool
	logger    *slog.Logger
}

func New(opts Options) (*Recoverer, error) {
	selection, err := sharefile.ParseSelection(string(opts.Selection))
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	logger := opts.Logger
	if logger == nil {
		logger = xlogger.Discard()
	}

	return &Recoverer{
		workers:   workers,
		selection: selection,
		verify:    opts.Verify,
		logger:    logger,
	}, nil
}

// RecoverFiles loads and reconstructs every file. Results keep the order of
// paths. The returned error is non-nil only when ctx is done before all files
// were processed.
func (r *Recoverer) RecoverFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	var stopped error

	for i, path := range paths {
		if err := groupCtx.Err(); err != nil {
			stopped = context.Cause(groupCtx)
			break
		}

		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return context.Cause(groupCtx)
			}

			results[i] = r.recoverFile(path)
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	if stopped != nil {
		return nil, stopped
	}

	return results, nil
}

func (r *Recoverer) recoverFile(path string) Result {
	doc, err := sharefile.Load(path)
	if err != nil {
		r.logger.Warn("failed to load share document", "file", path, "error", err)
		return Result{Source: path, Err: err}
	}

	return r.RecoverDocument(path, doc)
}

// RecoverDocument reconstructs the secret of a parsed document.
func (r *Recoverer) RecoverDocument(source string, doc *sharefile.Document) Result {
	result := Result{Source: source, K: doc.Keys.K}

	logger := r.logger.With("file", source, "k", doc.Keys.K)

	if err := r.recover(doc, &result); err != nil {
		logger.Warn("failed to recover secret", "error", err)
		result.Err = err
		result.Secret = nil
		return result
	}

	if missing := doc.Missing(); missing > 0 {
		logger.Info("document lists fewer shares than issued", "n", doc.Keys.N, "missing", missing)
	}

	for _, point := range result.Inconsistent {
		logger.Warn("share does not lie on the recovered polynomial", "x", point.X.String())
	}

	logger.Debug("secret recovered", "shares", len(doc.Entries))

	return result
}

func (r *Recoverer) recover(doc *sharefile.Document, result *Result) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	records, err := doc.Records(r.selection)
	if err != nil {
		return err
	}

	// with verification every share is read, otherwise only the first k
	if !r.verify {
		records = records[:doc.Keys.K]
	}

	points, err := shamir.DecodeRecords(records)
	if err != nil {
		return err
	}

	secret, err := shamir.ReconstructPoints(doc.Keys.K, points)
	if err != nil {
		return err
	}
	result.Secret = secret

	if !r.verify {
		return nil
	}

	result.Inconsistent, err = shamir.Verify(doc.Keys.K, points)
	if err != nil {
		return fmt.Errorf("verify: %w", err)
	}

	return nil
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
		}
	}
	return failed
}
