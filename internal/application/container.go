package application

import (
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/moderation"
)

type Services struct {
	Audit    *AuditService
	User     *UserService
	Job      *JobService
	Pipeline *PipelineService
	Contract *ContractService
	Gateway  *GatewayService
}

// Deps are the collaborators outside the relational store. Any of them may
// be nil; the features that need them then report a precondition failure.
type Deps struct {
	Broker Broker
	Filter *moderation.Filter
	Store  ObjectStore
}

func New(repos *repository.Repos, deps Deps) *Services {
	return &Services{
		Audit:    NewAuditService(repos),
		User:     NewUserService(repos, deps.Store),
		Job:      NewJobService(repos),
		Pipeline: NewPipelineService(repos),
		Contract: NewContractService(repos),
		Gateway:  NewGatewayService(repos, deps.Broker, deps.Filter),
	}
}
