package entity

// Client representa un cliente de la ferretería. Email es único.
type Client struct {
	ID      int64  `db:"id"`
	Name    string `db:"name"`
	Phone   string `db:"phone"`   // opcional
	Email   string `db:"email"`
	Address string `db:"address"` // opcional
}
