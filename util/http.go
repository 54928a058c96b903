package util

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Generates an HTTP client with decent general-purpose defaults around
// timeouts and connection pooling. The transport comes from go-cleanhttp,
// so it does not share global state with http.DefaultTransport, and is
// instrumented for OTEL tracing of outgoing requests.
//
// Requests are not retried: a failed round trip is returned to the caller
// as-is.
func DefaultHTTPClient() *http.Client {
	client := cleanhttp.DefaultPooledClient()
	client.Transport = otelhttp.NewTransport(client.Transport)
	client.Timeout = 20 * time.Second
	return client
}
