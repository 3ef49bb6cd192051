package bus

import (
	"context"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConsensusState(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/bus/consensus/state", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{
			"blockHeight": 436326,
			"lastBlockTime": "2023-09-22T14:37:32Z",
			"synced": true
		}`))
	})
	c := newTestClient(t, r)

	state, err := c.ConsensusState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, uint64(436326), state.BlockHeight)
	assert.Equal(t, parseTime(t, "2023-09-22T14:37:32Z"), state.LastBlockTime.UTC())
	assert.True(t, state.Synced)
}
