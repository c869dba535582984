// Package envelope provides the uniform response shape shared by every
// demolink endpoint.
package envelope

import (
	"encoding/json"
	"net/http"
)

// Response wraps a payload of any type together with a human-readable message.
type Response[T any] struct {
	Data    T      `json:"data"`
	Message string `json:"message"`
}

// New returns a Response carrying data and message.
func New[T any](data T, message string) Response[T] {
	return Response[T]{Data: data, Message: message}
}

// Payload returns the wrapped data.
func (r Response[T]) Payload() T { return r.Data }

// Text returns the message.
func (r Response[T]) Text() string { return r.Message }

// Write serializes resp as JSON with the given status code.
func Write[T any](w http.ResponseWriter, status int, resp Response[T]) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
