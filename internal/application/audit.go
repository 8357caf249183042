package application

import (
	"log"
	"strings"

	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/utils"
)

const maxAuditPage = 200

type AuditService struct {
	Repos *repository.Repos
}

func NewAuditService(repos *repository.Repos) *AuditService {
	return &AuditService{
		Repos: repos,
	}
}

// AuditFilter narrows a user's audit listing. Empty fields match anything.
type AuditFilter struct {
	Action       string
	ResourceType string
	ResourceID   string
}

// ListUserLogs returns the entries written for the acting user, newest first.
func (s *AuditService) ListUserLogs(userID uint, f AuditFilter, limit, offset int) ([]audit.AuditLog, error) {
	if limit <= 0 || limit > maxAuditPage {
		limit = maxAuditPage
	}
	if offset < 0 {
		offset = 0
	}
	logs, err := s.Repos.Audit.GetAuditLogs(repository.AuditQuery{
		UserID:       userID,
		Action:       strings.TrimSpace(f.Action),
		ResourceType: strings.TrimSpace(f.ResourceType),
		ResourceID:   strings.TrimSpace(f.ResourceID),
		Limit:        limit,
		Offset:       offset,
	})
	return logs, storeErr("audit log", err)
}

func (s *AuditService) CleanupOldLogs(days int) (int64, error) {
	n, err := s.Repos.Audit.DeleteOldAuditLogs(days)
	return n, storeErr("audit log", err)
}

// recordAudit writes an entry after the change it describes has committed.
// The change stands even if the entry cannot be written.
func recordAudit(repos *repository.Repos, ev utils.AuditEvent) {
	if err := utils.LogAudit(repos.Audit, ev); err != nil {
		log.Printf("[audit] failed to record %s on %s %s: %v", ev.Action, ev.ResourceType, ev.ResourceID, err)
	}
}
