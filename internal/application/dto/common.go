package dto

// ErrorResponse cuerpo de error HTTP: {"message": "..."} con 400/401/404.
type ErrorResponse struct {
	Message string `json:"message"`
}

// MessageResponse cuerpo de éxito sin payload.
type MessageResponse struct {
	Message string `json:"message"`
}
