package trello

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Request describes one HTTP call: verb, absolute URL, query parameters and
// an optional JSON body. The client builds it, the transport consumes it.
type Request struct {
	Method string
	URL    string
	Args   Arguments
	Body   []byte
	Header http.Header
}

// Response wraps the raw status code and body of one HTTP call.
type Response struct {
	StatusCode int
	Body       []byte
}

// Success reports whether the response carries a 2xx status.
func (r *Response) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Object decodes the body as a single JSON object. A JSON null or empty body
// decodes to a nil map.
func (r *Response) Object() (map[string]interface{}, error) {
	if len(r.Body) == 0 {
		return nil, nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(r.Body, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode response object: %w", err)
	}
	return obj, nil
}

// Array decodes the body as a JSON array of objects, preserving order.
func (r *Response) Array() ([]map[string]interface{}, error) {
	if len(r.Body) == 0 {
		return nil, nil
	}
	var items []map[string]interface{}
	if err := json.Unmarshal(r.Body, &items); err != nil {
		return nil, fmt.Errorf("failed to decode response array: %w", err)
	}
	return items, nil
}
