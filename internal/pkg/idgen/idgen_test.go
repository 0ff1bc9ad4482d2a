package idgen_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-tooltips/internal/pkg/idgen"
)

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("hover")
	assert.Equal(t, "hover_1", gen.Generate())
	assert.Equal(t, "hover_2", gen.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestSequentialGeneratorConcurrent(t *testing.T) {
	gen := idgen.NewSequential("t")
	seen := sync.Map{}
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, dup := seen.LoadOrStore(gen.Generate(), true)
			assert.False(t, dup)
		}()
	}
	wg.Wait()
}

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("Item").Generate()
	require.True(t, strings.HasPrefix(id, "Item."))
	_, err := uuid.Parse(strings.TrimPrefix(id, "Item."))
	assert.NoError(t, err)

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}
