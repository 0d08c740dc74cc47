// Package batch lexes many buffers concurrently, one session per buffer.
package batch

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"slices"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/tliron/commonlog"

	"stant/internal/lexer"
	"stant/token"
)

var log = commonlog.GetLogger("stant.batch")

// Source is a named buffer.
type Source struct {
	Name string
	Text string
}

// Result is the outcome of lexing one Source. Err is set when the source
// could not be read or the batch was cancelled before it ran.
type Result struct {
	Source
	Tokens []token.Token
	Errors []lexer.ScanError
	Err    error
}

// Tokenize lexes every source on a pool of at most workers goroutines.
// Results are returned in input order.
func Tokenize(ctx context.Context, sources []Source, workers int, opts ...lexer.Option) ([]Result, error) {
	results := make([]Result, len(sources))
	for i, src := range sources {
		results[i].Source = src
	}

	err := run(ctx, len(sources), workers, func(i int) {
		r := &results[i]
		if err := ctx.Err(); err != nil {
			r.Err = err
			return
		}
		r.Tokens, r.Errors = lexer.Tokenize(r.Text, append(slices.Clip(opts), lexer.WithFilename(r.Name))...)
	})

	return results, err
}

// TokenizeFiles reads and lexes every path.
func TokenizeFiles(ctx context.Context, paths []string, workers int, opts ...lexer.Option) ([]Result, error) {
	results := make([]Result, len(paths))
	for i, path := range paths {
		results[i].Name = path
	}

	err := run(ctx, len(paths), workers, func(i int) {
		r := &results[i]
		if err := ctx.Err(); err != nil {
			r.Err = err
			return
		}

		data, err := os.ReadFile(r.Name)
		if err != nil {
			r.Err = fmt.Errorf("failed to read file: %w", err)
			return
		}

		r.Text = string(data)
		r.Tokens, r.Errors = lexer.Tokenize(r.Text, append(slices.Clip(opts), lexer.WithFilename(r.Name))...)
	})

	return results, err
}

func run(ctx context.Context, n, workers int, task func(int)) error {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	pool, err := ants.NewPool(min(workers, n))
	if err != nil {
		return fmt.Errorf("failed to create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			task(i)
		}); err != nil {
			wg.Done()
			wg.Wait()
			return fmt.Errorf("failed to submit task %d: %w", i, err)
		}
	}
	wg.Wait()

	log.Debugf("lexed %d sources on %d workers", n, min(workers, n))

	return ctx.Err()
}
