package profiler

import (
	"fmt"
	"io"
	"net/http"
	"sync"
)

// CategoryHTTP is the custom timing category used for outgoing HTTP calls.
const CategoryHTTP = "http"

var _ http.RoundTripper = (*transport)(nil)

type transport struct {
	base http.RoundTripper
}

// Transport wraps base so that requests made with a profiled context are
// recorded as custom timings of category "http". The timing's first fetch
// is the arrival of the response headers. It stops when the body is closed.
// A nil base means http.DefaultTransport.
//
// Example:
//
//	client := &http.Client{Transport: profiler.Transport(nil)}
func Transport(base http.RoundTripper) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	return &transport{base: base}
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	ct := Current(req.Context()).CustomTiming(CategoryHTTP,
		fmt.Sprintf("%s %s", req.Method, req.URL.Redacted()), ExecuteNone)
	if ct == nil {
		return t.base.RoundTrip(req)
	}

	resp, err := t.base.RoundTrip(req)
	if err != nil {
		ct.Stop(err)
		return nil, err
	}
	ct.FirstFetchCompleted()

	var status error
	if resp.StatusCode >= http.StatusInternalServerError {
		status = fmt.Errorf("status %d", resp.StatusCode)
	}
	if resp.Body == nil || resp.Body == http.NoBody {
		ct.Stop(status)
		return resp, nil
	}
	resp.Body = &timedBody{ReadCloser: resp.Body, timing: ct, status: status}
	return resp, nil
}

// timedBody stops its timing on Close.
type timedBody struct {
	io.ReadCloser
	timing *CustomTiming
	status error
	once   sync.Once
}

func (b *timedBody) Close() error {
	err := b.ReadCloser.Close()
	b.once.Do(func() { b.timing.Stop(b.status) })
	return err
}
