package models

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"error"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
