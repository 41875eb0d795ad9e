package volunteer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBeginOperation_BlocksDuplicates(t *testing.T) {
	c := NewClient("http://unused")

	reqID, release, ok := c.beginOperation("join:1")
	require.True(t, ok)
	require.NotEmpty(t, reqID)
	assert.True(t, c.operationCurrent("join:1", reqID))

	_, _, ok = c.beginOperation("join:1")
	assert.False(t, ok, "identical operation must be rejected while in flight")

	_, _, ok = c.beginOperation("join:2")
	assert.True(t, ok, "distinct operations are independent")

	release()
	assert.False(t, c.operationCurrent("join:1", reqID), "released id is no longer current")

	_, _, ok = c.beginOperation("join:1")
	assert.True(t, ok, "key is free again after release")
}

func TestBeginOperation_LogoutSupersedesPendingIDs(t *testing.T) {
	c := NewClient("http://unused")

	reqID, release, ok := c.beginOperation("join:1")
	require.True(t, ok)
	defer release()

	c.Logout()

	assert.False(t, c.operationCurrent("join:1", reqID), "logout invalidates pending ids")
}

// A second identical join fired while the first is still on the wire must
// fail fast with ErrOperationInFlight instead of producing a second request.
func TestJoinEvent_CollapsesConcurrentDuplicates(t *testing.T) {
	requests := 0
	started := make(chan struct{})
	proceed := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		close(started)
		<-proceed
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 1},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := c.JoinEvent(context.Background(), 1)
		assert.NoError(t, err)
	}()

	<-started
	_, err := c.JoinEvent(context.Background(), 1)
	assert.ErrorIs(t, err, ErrOperationInFlight)

	close(proceed)
	wg.Wait()

	assert.Equal(t, 1, requests, "only one request may reach the server")
}

// A join that completes after the session was torn down carries a
// superseded request id; its result is discarded, never applied.
func TestJoinEvent_DiscardsResultAfterLogout(t *testing.T) {
	started := make(chan struct{})
	proceed := make(chan struct{})

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(started)
		<-proceed
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data":    map[string]any{"id": 1},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		e, err := c.JoinEvent(context.Background(), 1)
		assert.Nil(t, e)
		assert.ErrorIs(t, err, ErrStaleResult)
	}()

	<-started
	c.Logout()
	close(proceed)
	wg.Wait()
}
