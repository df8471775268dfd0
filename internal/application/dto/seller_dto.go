package dto

// CreateSellerRequest entrada para crear un vendedor. Name, Zone y Email requeridos.
type CreateSellerRequest struct {
	Name  string `json:"name"`
	Zone  string `json:"zone"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// UpdateSellerRequest patch parcial: solo los campos presentes sobrescriben.
type UpdateSellerRequest struct {
	Name  *string `json:"name"`
	Zone  *string `json:"zone"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// SellerResponse salida de un vendedor.
type SellerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Zone  string `json:"zone"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}
