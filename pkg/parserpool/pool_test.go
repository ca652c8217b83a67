package parserpool_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdverse/mddx/pkg/parserpool"
)

func TestNewPool(t *testing.T) {
	tests := []struct {
		msg     string
		jobsNum int
	}{
		{"default size", 0},
		{"single worker", 1},
		{"custom size", 4},
	}

	for _, v := range tests {
		pool := parserpool.NewPool(v.jobsNum)
		require.NotNil(t, pool, v.msg)

		res := pool.Parse("Homo sapiens")
		assert.True(t, res.Parsed, v.msg)
		pool.Close()
	}
}

func TestParse(t *testing.T) {
	pool := parserpool.NewPool(2)
	defer pool.Close()

	tests := []struct {
		msg, name, canonical string
		parsed               bool
	}{
		{"binomial", "Panthera leo", "Panthera leo", true},
		{"with authority", "Panthera leo (Linnaeus, 1758)",
			"Panthera leo", true},
		{"trinomial", "Canis lupus familiaris",
			"Canis lupus familiaris", true},
		{"not a name", "?????", "", false},
	}

	for _, v := range tests {
		res := pool.Parse(v.name)
		assert.Equal(t, v.parsed, res.Parsed, v.msg)
		if v.parsed {
			require.NotNil(t, res.Canonical, v.msg)
			assert.Equal(t, v.canonical, res.Canonical.Simple, v.msg)
		}
	}
}

// The pool applies the zoological code: a parenthesized subgenus is the
// primary name part.
func TestParseZoologicalCode(t *testing.T) {
	pool := parserpool.NewPool(1)
	defer pool.Close()

	res := pool.Parse("Aus (Bus)")
	require.True(t, res.Parsed)
	require.NotNil(t, res.Canonical)
	assert.Equal(t, "Bus", res.Canonical.Simple)
}

func TestParseConcurrent(t *testing.T) {
	pool := parserpool.NewPool(4)
	defer pool.Close()

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 10 {
				res := pool.Parse("Mus musculus")
				assert.True(t, res.Parsed)
			}
		}()
	}
	wg.Wait()
}
