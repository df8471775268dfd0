package audit

import (
	"github.com/jhoicas/ferreteria-api/internal/domain/entity"
	"github.com/jhoicas/ferreteria-api/internal/domain/repository"
	"github.com/jhoicas/ferreteria-api/pkg/logger"
)

// Acciones registradas.
const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

// Recorder escribe una entrada de auditoría por cada mutación.
// Best-effort: un fallo al registrar no revierte la operación principal, solo se loggea.
type Recorder struct {
	repo repository.AuditLogRepository
	log  *logger.Logger
}

// NewRecorder construye el recorder.
func NewRecorder(repo repository.AuditLogRepository, log *logger.Logger) *Recorder {
	return &Recorder{repo: repo, log: log}
}

// Record registra una mutación. userID 0 se persiste como NULL (mutación sin
// usuario identificable); targetID 0 igual (mutación sin fila concreta).
func (r *Recorder) Record(userID int64, action, targetType string, targetID int64) {
	entry := &entity.AuditLog{
		Action:     action,
		TargetType: targetType,
	}
	if userID != 0 {
		entry.UserID = &userID
	}
	if targetID != 0 {
		entry.TargetID = &targetID
	}
	if err := r.repo.Append(entry); err != nil {
		r.log.Warn().Err(err).
			Str("action", action).
			Str("target_type", targetType).
			Int64("target_id", targetID).
			Msg("no se pudo registrar la auditoría")
	}
}
