// Package httpjson holds the request/response JSON helpers shared by
// every feature handler. Error responses always carry the shape
// {"message": "..."} so the SPA can display them uniformly.
package httpjson

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies to keep a hostile client from
// streaming an unbounded document into memory.
const maxBodyBytes = 1 << 20 // 1 MiB

// Write serializes v as JSON with the given status.
func Write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the standard {"message": ...} error envelope.
func Error(w http.ResponseWriter, status int, message string) {
	Write(w, status, map[string]string{"message": message})
}

// Decode reads one JSON object from the request body into dst,
// rejecting trailing garbage. Unknown fields are ignored so clients
// can send supersets of a request shape.
func Decode(r *http.Request, dst any) error {
	body := http.MaxBytesReader(nil, r.Body, maxBodyBytes)
	dec := json.NewDecoder(body)
	if err := dec.Decode(dst); err != nil {
		return err
	}
	// A second decode must hit EOF; anything else is trailing data.
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}
