package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/pkg/utils"
)

type AuditHandler struct {
	svc *application.AuditService
}

func NewAuditHandler(svc *application.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// GetAuditLogs godoc
// @Summary Audit entries written for the caller
// @Tags audit
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries (default 50, max 200)"
// @Param offset query int false "Entries to skip"
// @Param action query string false "Action, e.g. proposal.hire"
// @Param resource_type query string false "user, job, proposal or contract"
// @Param resource_id query string false "Resource ID"
// @Success 200 {array} audit.AuditLog
// @Router /audit/logs [get]
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	limit := utils.ParseQueryIntParam(c, "limit", 50)
	offset := utils.ParseQueryIntParam(c, "offset", 0)

	filter := application.AuditFilter{
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
	}

	logs, err := h.svc.ListUserLogs(uid, filter, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	if logs == nil {
		logs = []audit.AuditLog{}
	}
	c.JSON(http.StatusOK, logs)
}
