package progress

import (
	"io"
	"net/http"
)

// Transport reports the download of every response body on Out.
type Transport struct {
	Base http.RoundTripper
	Name string
	Out  io.Writer
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	resp, err := base.RoundTrip(req)
	if err != nil {
		return nil, err
	}

	name := t.Name
	if name == "" {
		name = req.URL.Host
	}

	task, err := NewTask(name, resp.ContentLength, t.Out)
	if err != nil {
		// the response is still usable without a bar
		return resp, nil
	}
	resp.Body = task.Reader(resp.Body)

	return resp, nil
}
