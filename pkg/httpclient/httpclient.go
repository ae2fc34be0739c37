package httpclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultTimeout = 10 * time.Second

// Request describes one outbound call. Header values override anything
// set by the helpers below.
type Request struct {
	URL     string
	Method  string
	Body    []byte
	Headers map[string]string
}

// Response is the status and fully read body of an outbound call.
type Response struct {
	StatusCode int
	Body       []byte
}

var client = &http.Client{
	Timeout:   defaultTimeout,
	Transport: otelhttp.NewTransport(http.DefaultTransport),
}

// FormRequest builds a request whose body is form encoded. A nil form sends
// no body.
func FormRequest(method string, rawURL string, form url.Values, headers map[string]string) Request {
	req := Request{
		URL:     rawURL,
		Method:  method,
		Headers: map[string]string{},
	}

	if form != nil {
		req.Body = []byte(form.Encode())
		req.Headers["Content-Type"] = "application/x-www-form-urlencoded"
	}

	for key, value := range headers {
		req.Headers[key] = value
	}

	return req
}

// Do sends req with trace propagation. Non-2xx statuses are not errors.
func Do(ctx context.Context, req Request) (Response, error) {
	request, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return Response{}, fmt.Errorf("building request: %w", err)
	}

	for key, value := range req.Headers {
		request.Header.Set(key, value)
	}

	response, err := client.Do(request)
	if err != nil {
		return Response{}, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return Response{StatusCode: response.StatusCode}, fmt.Errorf("reading response body: %w", err)
	}

	return Response{StatusCode: response.StatusCode, Body: body}, nil
}
