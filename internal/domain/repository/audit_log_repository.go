package repository

import "github.com/jhoicas/ferreteria-api/internal/domain/entity"

// AuditLogRepository puerto append-only para el registro de auditoría.
type AuditLogRepository interface {
	Append(entry *entity.AuditLog) error
}
