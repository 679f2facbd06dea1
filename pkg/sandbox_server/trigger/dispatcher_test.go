package trigger_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/model"
	"github.com/integrationsandbox/integrationsandbox/pkg/sandbox_server/trigger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatch(t *testing.T) {
	var received string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		body, _ := io.ReadAll(r.Body)
		received = string(body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer server.Close()

	d := trigger.NewHTTPDispatcher(trigger.Config{Timeout: 1, MaxRetry: 3})
	err := d.Dispatch(context.Background(), server.URL, []map[string]int{{"count": 1}})
	require.NoError(t, err)
	assert.JSONEq(t, `[{"count":1}]`, received)
}

func TestDispatchRetries(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&attempts, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	d := trigger.NewHTTPDispatcher(trigger.Config{Timeout: 1, MaxRetry: 3}, trigger.WithRetryDelay(time.Millisecond))
	err := d.Dispatch(context.Background(), server.URL, "payload")
	require.NoError(t, err)
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestDispatchUnreachable(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	d := trigger.NewHTTPDispatcher(trigger.Config{Timeout: 1, MaxRetry: 2}, trigger.WithRetryDelay(time.Millisecond))
	err := d.Dispatch(context.Background(), server.URL, "payload")
	assert.ErrorIs(t, err, model.ErrTargetUnreachable)
	assert.Equal(t, http.StatusBadGateway, model.ErrorToHttpStatus(err))
	assert.EqualValues(t, 2, atomic.LoadInt32(&attempts))

	server.Close()
	err = d.Dispatch(context.Background(), server.URL, "payload")
	assert.ErrorIs(t, err, model.ErrTargetUnreachable)
}

func TestDispatchRateLimit(t *testing.T) {
	var attempts int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&attempts, 1)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	d := trigger.NewHTTPDispatcher(trigger.Config{Timeout: 1, MaxRetry: 1, RateLimit: 20, Burst: 1})
	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, d.Dispatch(context.Background(), server.URL, i))
	}
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
	assert.EqualValues(t, 3, atomic.LoadInt32(&attempts))
}

func TestDispatchCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := trigger.NewHTTPDispatcher(trigger.Config{Timeout: 1, MaxRetry: 3})
	err := d.Dispatch(ctx, "http://127.0.0.1:1", "payload")
	assert.ErrorIs(t, err, context.Canceled)
}
