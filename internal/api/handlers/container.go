package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/repository"
)

type Handlers struct {
	Audit    *AuditHandler
	User     *UserHandler
	Job      *JobHandler
	Proposal *ProposalHandler
	Contract *ContractHandler
	Message  *MessageHandler
	Router   *gin.Engine
}

func New(svc *application.Services, repos *repository.Repos, router *gin.Engine) *Handlers {
	h := &Handlers{
		Audit:    NewAuditHandler(svc.Audit),
		User:     NewUserHandler(svc.User, repos.Audit),
		Job:      NewJobHandler(svc.Job),
		Proposal: NewProposalHandler(svc.Pipeline),
		Contract: NewContractHandler(svc.Contract),
		Message:  NewMessageHandler(svc.Gateway),
		Router:   router,
	}
	return h
}
