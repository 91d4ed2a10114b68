package types

import "encoding/json"

// ------------------------------
// Envelope
// ------------------------------

// Response is the uniform envelope every call resolves to.
//
// Success is true exactly when the backend answered with a 2xx status; in that
// case Error is empty. When Success is false Data is nil and Error holds a
// human-readable reason. Message carries the backend's "message" field when
// the body has one.
type Response[T any] struct {
	Success bool   `json:"success"`
	Data    *T     `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Status  int    `json:"status,omitempty"`
}

// RawResponse is the envelope produced by the request helper before decoding.
type RawResponse = Response[json.RawMessage]

// Failure builds a failed envelope.
func Failure[T any](status int, msg string) *Response[T] {
	return &Response[T]{Success: false, Error: msg, Status: status}
}
