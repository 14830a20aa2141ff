package types

// ErrorResponse is the flat error body returned on every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// AckResponse acknowledges a write with no payload of its own.
type AckResponse struct {
	OK bool `json:"ok"`
}
