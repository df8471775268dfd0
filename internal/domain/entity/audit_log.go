package entity

import "time"

// AuditLog registra una mutación del sistema. Append-only: nunca se actualiza ni se borra.
type AuditLog struct {
	ID         int64     `db:"id"`
	UserID     *int64    `db:"user_id"` // nullable: mutaciones sin usuario identificado
	Action     string    `db:"action"`  // create, update, delete
	TargetType string    `db:"target_type"`
	TargetID   *int64    `db:"target_id"`
	CreatedAt  time.Time `db:"created_at"`
}
