package sqlite

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
)

var _ repository.AuditLogRepository = (*AuditLogRepo)(nil)

// AuditLogRepo adaptador append-only del registro de auditoría.
type AuditLogRepo struct {
	db *sqlx.DB
}

// NewAuditLogRepository construye el adaptador de auditoría.
func NewAuditLogRepository(db *sqlx.DB) *AuditLogRepo {
	return &AuditLogRepo{db: db}
}

// Append inserta una entrada. created_at lo pone la DB (DEFAULT CURRENT_TIMESTAMP).
func (r *AuditLogRepo) Append(entry *entity.AuditLog) error {
	res, err := r.db.Exec(
		`INSERT INTO audit_logs (user_id, action, target_type, target_id) VALUES (?, ?, ?, ?)`,
		entry.UserID, entry.Action, entry.TargetType, entry.TargetID,
	)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	entry.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("insert audit log id: %w", err)
	}
	return nil
}
