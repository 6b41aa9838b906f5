package steam

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPool_PartialFailure(t *testing.T) {
	tasks := map[int]Task[string]{}
	for i := 1; i <= 6; i++ {
		tasks[i] = func(context.Context) (string, error) {
			if i%3 == 0 {
				return "", errors.New("boom")
			}
			return fmt.Sprintf("value-%d", i), nil
		}
	}

	results := Pool(context.Background(), tasks)

	assert.Len(t, results, 4)
	for _, i := range []int{1, 2, 4, 5} {
		assert.Equal(t, fmt.Sprintf("value-%d", i), results[i])
	}
	_, ok := results[3]
	assert.False(t, ok)
	_, ok = results[6]
	assert.False(t, ok)
}

func TestPool_AllSucceed(t *testing.T) {
	tasks := map[string]Task[int]{
		"a": func(context.Context) (int, error) { return 1, nil },
		"b": func(context.Context) (int, error) { return 2, nil },
	}

	results := Pool(context.Background(), tasks)

	assert.Equal(t, map[string]int{"a": 1, "b": 2}, results)
}

func TestPool_Empty(t *testing.T) {
	results := Pool(context.Background(), map[string]Task[int]{})
	assert.Empty(t, results)
}
