package xrpc

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMakeParams tests the makeParams function.
func TestMakeParams(t *testing.T) {
	testCases := []struct {
		name     string
		input    map[string]any
		expected string
	}{
		{
			name:     "Empty input",
			input:    map[string]any{},
			expected: "",
		},
		{
			name: "Single value",
			input: map[string]any{
				"key": "value",
			},
			expected: "key=value",
		},
		{
			name: "Integer value",
			input: map[string]any{
				"depth": 6,
			},
			expected: "depth=6",
		},
		{
			name: "Slice of strings",
			input: map[string]any{
				"uris": []string{"at://a", "at://b"},
			},
			expected: "uris=at%3A%2F%2Fa&uris=at%3A%2F%2Fb",
		},
		{
			name: "Mixed values",
			input: map[string]any{
				"key1": "value1",
				"key2": []string{"value2", "value3"},
			},
			expected: "key1=value1&key2=value2&key2=value3",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := makeParams(tc.input)
			if result != tc.expected {
				t.Errorf("got '%q', want '%q'", result, tc.expected)
			}
		})
	}
}

func TestDoQuery(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal("/xrpc/com.example.ping", r.URL.Path)
		assert.Equal("Bearer access-token", r.Header.Get("Authorization"))
		assert.Equal("hi", r.URL.Query().Get("msg"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"msg":"hi back"}`))
	}))
	defer srv.Close()

	c := &Client{
		Host: srv.URL,
		Auth: &AuthInfo{AccessJwt: "access-token"},
	}
	before := testutil.ToFloat64(requestsTotal.WithLabelValues("com.example.ping", "200"))

	var out struct {
		Msg string `json:"msg"`
	}
	err := c.Do(context.Background(), Query, "", "com.example.ping", map[string]any{"msg": "hi"}, nil, &out)
	require.NoError(t, err)
	assert.Equal("hi back", out.Msg)
	assert.Equal(before+1, testutil.ToFloat64(requestsTotal.WithLabelValues("com.example.ping", "200")))
}

func TestDoErrorResponse(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(http.MethodPost, r.Method)
		assert.Equal("application/json", r.Header.Get("Content-Type"))
		w.Header().Set("ratelimit-limit", "100")
		w.Header().Set("ratelimit-remaining", "0")
		w.Header().Set("ratelimit-reset", "1700000000")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"RateLimitExceeded","message":"slow down"}`))
	}))
	defer srv.Close()

	c := &Client{Host: srv.URL}
	err := c.Do(context.Background(), Procedure, "application/json", "com.example.write", nil, map[string]string{"a": "b"}, nil)
	require.Error(t, err)

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.True(xerr.IsThrottled())
	assert.Equal("RateLimitExceeded", xerr.ErrorName())
	assert.Equal(100, xerr.Ratelimit.Limit)
	assert.Equal(0, xerr.Ratelimit.Remaining)

	var xe *XRPCError
	assert.True(errors.As(err, &xe))
	assert.Equal("slow down", xe.Message)
}

func TestDoUndecodableError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer srv.Close()

	c := &Client{Host: srv.URL}
	err := c.LexDo(context.Background(), http.MethodGet, "", "com.example.ping", nil, nil, nil)

	var xerr *Error
	require.True(t, errors.As(err, &xerr))
	assert.Equal(t, http.StatusBadGateway, xerr.StatusCode)
	assert.Equal(t, "", xerr.ErrorName())
}

func TestLexDoUnsupportedMethod(t *testing.T) {
	c := &Client{Host: "http://localhost:1"}
	err := c.LexDo(context.Background(), http.MethodDelete, "", "com.example.ping", nil, nil, nil)
	assert.Error(t, err)
}
