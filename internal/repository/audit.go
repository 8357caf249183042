package repository

import (
	"time"

	"github.com/linskybing/gigboard/internal/domain/audit"
	"gorm.io/gorm"
)

// AuditQuery selects one user's entries. Empty strings match anything.
type AuditQuery struct {
	UserID       uint
	Action       string
	ResourceType string
	ResourceID   string
	Limit        int
	Offset       int
}

type AuditRepo interface {
	GetAuditLogs(q AuditQuery) ([]audit.AuditLog, error)
	CreateAuditLog(entry *audit.AuditLog) error
	DeleteOldAuditLogs(retentionDays int) (int64, error)
	WithTx(tx *gorm.DB) AuditRepo
}

type DBAuditRepo struct {
	db *gorm.DB
}

func NewAuditRepo(db *gorm.DB) *DBAuditRepo {
	return &DBAuditRepo{
		db: db,
	}
}

// DeleteOldAuditLogs removes entries older than retentionDays and reports how
// many went.
func (r *DBAuditRepo) DeleteOldAuditLogs(retentionDays int) (int64, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	res := r.db.Where("created_at < ?", cutoff).Delete(&audit.AuditLog{})
	return res.RowsAffected, res.Error
}

func (r *DBAuditRepo) GetAuditLogs(q AuditQuery) ([]audit.AuditLog, error) {
	var logs []audit.AuditLog
	query := r.db.Where("user_id = ?", q.UserID)

	if q.Action != "" {
		query = query.Where("action = ?", q.Action)
	}
	if q.ResourceType != "" {
		query = query.Where("resource_type = ?", q.ResourceType)
	}
	if q.ResourceID != "" {
		query = query.Where("resource_id = ?", q.ResourceID)
	}

	query = query.Order("created_at DESC, id DESC")
	if q.Limit > 0 {
		query = query.Limit(q.Limit)
	}
	if q.Offset > 0 {
		query = query.Offset(q.Offset)
	}

	err := query.Find(&logs).Error
	return logs, err
}

func (r *DBAuditRepo) CreateAuditLog(entry *audit.AuditLog) error {
	return r.db.Create(entry).Error
}

func (r *DBAuditRepo) WithTx(tx *gorm.DB) AuditRepo {
	if tx == nil {
		return r
	}
	return &DBAuditRepo{
		db: tx,
	}
}
