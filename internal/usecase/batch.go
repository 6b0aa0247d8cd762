package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/svhawkins/czech-verb-conjugator/internal/domain"
	"github.com/svhawkins/czech-verb-conjugator/internal/port"
)

// Conjugator is anything that turns a word into conjugation results. Both
// ConjugateUseCase and its cached decorator satisfy it.
type Conjugator interface {
	Conjugate(ctx context.Context, word string, opts ConjugateOptions) ([]domain.Conjugation, error)
}

// BatchUseCase conjugates every word of every word-list file under a
// directory and persists the tables.
type BatchUseCase struct {
	conjugator Conjugator
	store      port.TableStore
	walker     port.FileWalker
	reader     port.FileReader
	workers    int
}

// NewBatchUseCase creates a new batch use case. workers below one means one.
func NewBatchUseCase(
	conjugator Conjugator,
	store port.TableStore,
	walker port.FileWalker,
	reader port.FileReader,
	workers int,
) *BatchUseCase {
	if workers < 1 {
		workers = 1
	}
	return &BatchUseCase{
		conjugator: conjugator,
		store:      store,
		walker:     walker,
		reader:     reader,
		workers:    workers,
	}
}

// BatchOptions controls a batch run.
type BatchOptions struct {
	Conjugate ConjugateOptions
	// Force re-reads files whose modification time has not changed.
	Force bool
}

// Progress is called after every word with the number of words done so far
// and the total number of words to do. Calls are serialized.
type Progress func(done, total int)

// WordError records a word that could not be conjugated.
type WordError struct {
	File string
	Word string
	Err  error
}

func (e WordError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.File, e.Word, e.Err)
}

// BatchResult contains the results of a batch run.
type BatchResult struct {
	Files        int
	FilesSkipped int
	Words        int
	Conjugated   int
	Failed       int
	Errors       []WordError
}

type fileJob struct {
	file  port.FileInfo
	words []string
}

// Run walks root, conjugates the words of changed files and stores the
// tables. A word that fails is recorded and the run goes on. Cancelling ctx
// stops the run between words and returns the partial result with ctx's error.
func (u *BatchUseCase) Run(ctx context.Context, root string, opts BatchOptions, progress Progress) (*BatchResult, error) {
	result := &BatchResult{}

	files, err := u.walker.Walk(root)
	if err != nil {
		return nil, fmt.Errorf("failed to walk directory: %w", err)
	}

	var jobs []fileJob
	total := 0
	for _, file := range files {
		result.Files++

		if !opts.Force {
			seen, err := u.store.FileModTime(file.Path)
			if err != nil {
				return nil, fmt.Errorf("failed to read mod time of %s: %w", file.Path, err)
			}
			if seen >= file.ModTime {
				result.FilesSkipped++
				continue
			}
		}

		words, err := u.reader.ReadLines(file.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", file.Path, err)
		}
		jobs = append(jobs, fileJob{file: file, words: words})
		total += len(words)
	}

	done := 0
	var mu sync.Mutex
	report := func() {
		done++
		if progress != nil {
			progress(done, total)
		}
	}

	for _, job := range jobs {
		tables, err := u.runFile(ctx, job, opts.Conjugate, result, &mu, report)
		if len(tables) > 0 {
			if perr := u.store.BatchPut(tables); perr != nil {
				return result, fmt.Errorf("failed to store tables for %s: %w", job.file.Path, perr)
			}
		}
		if err != nil {
			return result, err
		}
		if err := u.store.SetFileModTime(job.file.Path, job.file.ModTime); err != nil {
			return result, fmt.Errorf("failed to record mod time of %s: %w", job.file.Path, err)
		}
	}

	return result, nil
}

// runFile conjugates the words of one file on a bounded pool of workers.
func (u *BatchUseCase) runFile(
	ctx context.Context,
	job fileJob,
	opts ConjugateOptions,
	result *BatchResult,
	mu *sync.Mutex,
	report func(),
) ([]port.StoredTable, error) {
	var tables []port.StoredTable

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.workers)

	for _, word := range job.words {
		if gctx.Err() != nil {
			break
		}
		word := word
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results, err := u.conjugator.Conjugate(gctx, word, opts)

			mu.Lock()
			defer mu.Unlock()
			result.Words++
			report()

			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				result.Failed++
				result.Errors = append(result.Errors, WordError{File: job.file.Path, Word: word, Err: err})
				log.Warn().Err(err).Str("file", job.file.Path).Str("word", word).Msg("conjugation failed")
				return nil
			}

			result.Conjugated++
			tables = append(tables, port.StoredTable{
				Word:    results[0].Word,
				Flags:   results[0].Flags,
				Results: results,
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return tables, err
	}
	return tables, ctx.Err()
}
