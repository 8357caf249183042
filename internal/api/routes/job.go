package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/api/handlers"
	"github.com/linskybing/gigboard/internal/api/middleware"
	"github.com/linskybing/gigboard/internal/domain/user"
)

// JobRoutes registers job and proposal endpoints
func JobRoutes(rg *gin.RouterGroup, h *handlers.Handlers) {
	clientOnly := middleware.Role(user.RoleClient)
	freelancerOnly := middleware.Role(user.RoleFreelancer)

	jobs := rg.Group("/jobs")
	{
		jobs.POST("", clientOnly, h.Job.PostJob)
		jobs.GET("", h.Job.ListOpenJobs)
		jobs.GET("/mine", clientOnly, h.Job.ListMyJobs)
		jobs.GET("/:id", h.Job.GetJob)
		jobs.POST("/:id/proposals", freelancerOnly, h.Proposal.SubmitProposal)
		jobs.GET("/:id/proposals", clientOnly, h.Proposal.ListJobProposals)
	}

	proposals := rg.Group("/proposals")
	{
		proposals.GET("/mine", freelancerOnly, h.Proposal.ListMyProposals)
		proposals.GET("/:id", h.Proposal.GetProposal)
		proposals.PUT("/:id/status", clientOnly, h.Proposal.UpdateStatus)
		proposals.GET("/:id/messages", h.Message.ListMessages)
		proposals.POST("/:id/messages", h.Message.SendMessage)
	}

	contracts := rg.Group("/contracts")
	{
		contracts.GET("", h.Contract.ListContracts)
		contracts.GET("/:id", h.Contract.GetContract)
		contracts.POST("/:id/submit-work", freelancerOnly, h.Contract.SubmitWork)
		contracts.POST("/:id/release", clientOnly, h.Contract.ReleasePayment)
	}

	rg.GET("/wallet", freelancerOnly, h.Contract.Wallet)
}
