package randutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewIsDeterministic(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.IntN(1000), b.IntN(1000))
	}
}

func TestNewSeedsDiffer(t *testing.T) {
	a := New(1)
	b := New(2)

	same := 0
	for i := 0; i < 100; i++ {
		if a.IntN(1<<30) == b.IntN(1<<30) {
			same++
		}
	}
	assert.Less(t, same, 5)
}

func TestResolveSeed(t *testing.T) {
	assert.Equal(t, int64(7), ResolveSeed(7))
	assert.NotZero(t, ResolveSeed(0))
}
