package entity

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleVendedor = "vendedor"
)

// User representa un usuario del sistema. Username y Email son únicos.
type User struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"` // bcrypt hash, nunca plano después de persistir
	Role         string `db:"role"`          // admin, vendedor
}
