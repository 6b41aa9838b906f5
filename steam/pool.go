package steam

import (
	"context"
	"log/slog"
	"sync"
)

// Task is one member of a concurrent batch.
type Task[V any] func(context.Context) (V, error)

// Pool issues every task concurrently and waits for all of them to settle.
// Failed tasks are simply absent from the returned map, so one broken call
// never affects its siblings and the batch latency is bounded by the slowest
// member rather than the sum.
func Pool[K comparable, V any](ctx context.Context, tasks map[K]Task[V]) map[K]V {
	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		results = make(map[K]V, len(tasks))
	)
	for key, task := range tasks {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err := task(ctx)
			if err != nil {
				slog.Debug("Pool task failed",
					slog.String("error", err.Error()),
				)
				return
			}
			mu.Lock()
			results[key] = value
			mu.Unlock()
		}()
	}
	wg.Wait()
	return results
}
