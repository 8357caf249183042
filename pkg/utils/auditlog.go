package utils

import (
	"encoding/json"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/repository"
)

// AuditEvent describes one audited change. Before and After are marshalled
// to JSON as-is.
type AuditEvent struct {
	UserID       uint
	IP           string
	UserAgent    string
	Action       string
	ResourceType string
	ResourceID   string
	Before       any
	After        any
	Description  string
}

// LogAuditWithConsole fills the caller from the request and writes the event
// in the background. Failures are only logged.
var LogAuditWithConsole = func(c *gin.Context, repo repository.AuditRepo, ev AuditEvent) {
	if uid, err := GetUserIDFromContext(c); err == nil && ev.UserID == 0 {
		ev.UserID = uid
	}
	ev.IP = c.ClientIP()
	ev.UserAgent = c.GetHeader("User-Agent")

	go func() {
		if err := LogAudit(repo, ev); err != nil {
			log.Printf("[audit] error: %v", err)
		}
	}()
}

var LogAudit = func(repo repository.AuditRepo, ev AuditEvent) error {
	entry := &audit.AuditLog{
		UserID:       ev.UserID,
		Action:       ev.Action,
		ResourceType: ev.ResourceType,
		ResourceID:   ev.ResourceID,
		OldData:      marshalAuditData(ev.Before),
		NewData:      marshalAuditData(ev.After),
		IPAddress:    ev.IP,
		UserAgent:    ev.UserAgent,
		Description:  ev.Description,
	}
	return repo.CreateAuditLog(entry)
}

func marshalAuditData(v any) []byte {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[audit] marshal error: %v", err)
		return nil
	}
	return data
}
