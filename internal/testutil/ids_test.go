package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticIDGenerator_EmptyUsesDefault(t *testing.T) {
	gen := NewStaticIDGenerator("")
	assert.Equal(t, StaticInstanceID, gen.Generate())
	assert.Equal(t, StaticInstanceID, gen.Generate())
}

func TestStaticIDGenerator_CustomID(t *testing.T) {
	gen := NewStaticIDGenerator("01234567-89ab-cdef-0123-456789abcdef")
	assert.Equal(t, "01234567-89ab-cdef-0123-456789abcdef", gen.Generate())
}

func TestStaticIDGenerator_ThreadSafe(t *testing.T) {
	gen := NewStaticIDGenerator("thread-safe-id")

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func() {
			for j := 0; j < 100; j++ {
				assert.Equal(t, "thread-safe-id", gen.Generate())
			}
			done <- true
		}()
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestSequenceIDGenerator(t *testing.T) {
	gen := NewSequenceIDGenerator("run")
	assert.Equal(t, "run-1", gen.Generate())
	assert.Equal(t, "run-2", gen.Generate())
	assert.Equal(t, "run-3", gen.Generate())
}
