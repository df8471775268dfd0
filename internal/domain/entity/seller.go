package entity

// Seller representa un vendedor de la ferretería. Email es único.
type Seller struct {
	ID    int64  `db:"id"`
	Name  string `db:"name"`
	Zone  string `db:"zone"`
	Phone string `db:"phone"` // opcional
	Email string `db:"email"`
}
