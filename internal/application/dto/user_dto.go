package dto

// RegisterRequest entrada para registro: username, email y password son requeridos.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse salida con el bearer token JWT.
type LoginResponse struct {
	Token   string `json:"token"`
	Message string `json:"message"`
}
