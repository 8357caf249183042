package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gigboard/internal/application"
	"github.com/linskybing/gigboard/internal/domain/contract"
	"github.com/linskybing/gigboard/internal/domain/proposal"
)

type ProposalHandler struct {
	svc *application.PipelineService
}

func NewProposalHandler(svc *application.PipelineService) *ProposalHandler {
	return &ProposalHandler{svc: svc}
}

// AdvanceResponse is the result of a stage change. Contract is set when the
// proposal was hired.
type AdvanceResponse struct {
	Proposal proposal.Proposal  `json:"proposal"`
	Contract *contract.Contract `json:"contract,omitempty"`
}

// SubmitProposal godoc
// @Summary Apply to a job
// @Tags proposals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param input body proposal.SubmitProposalInput true "Bid and cover letter"
// @Success 201 {object} proposal.Proposal
// @Failure 400 {object} response.ErrorResponse "Invalid bid"
// @Failure 409 {object} response.ErrorResponse "Already applied"
// @Failure 412 {object} response.ErrorResponse "Job closed"
// @Router /jobs/{id}/proposals [post]
func (h *ProposalHandler) SubmitProposal(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "job")
	if !ok {
		return
	}
	var input proposal.SubmitProposalInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	p, err := h.svc.SubmitProposal(uid, jobID, input)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// ListJobProposals godoc
// @Summary Applicants for one of the caller's jobs
// @Description Each applicant includes the freelancer's profile. Newest first.
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {array} proposal.Applicant
// @Failure 403 {object} response.ErrorResponse "Not your job"
// @Router /jobs/{id}/proposals [get]
func (h *ProposalHandler) ListJobProposals(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	jobID, ok := pathID(c, "job")
	if !ok {
		return
	}
	ps, err := h.svc.ListProposalsForJob(uid, jobID)
	if err != nil {
		writeError(c, err)
		return
	}
	if ps == nil {
		ps = []proposal.Applicant{}
	}
	c.JSON(http.StatusOK, ps)
}

// ListMyProposals godoc
// @Summary Proposals submitted by the caller
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Success 200 {array} proposal.Proposal
// @Router /proposals/mine [get]
func (h *ProposalHandler) ListMyProposals(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	ps, err := h.svc.ListMyProposals(uid)
	if err != nil {
		writeError(c, err)
		return
	}
	if ps == nil {
		ps = []proposal.Proposal{}
	}
	c.JSON(http.StatusOK, ps)
}

// GetProposal godoc
// @Summary Get a proposal
// @Tags proposals
// @Security BearerAuth
// @Produce json
// @Param id path int true "Proposal ID"
// @Success 200 {object} proposal.Detail
// @Failure 403 {object} response.ErrorResponse "Not a participant"
// @Failure 404 {object} response.ErrorResponse "Not found"
// @Router /proposals/{id} [get]
func (h *ProposalHandler) GetProposal(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "proposal")
	if !ok {
		return
	}
	p, err := h.svc.GetProposal(uid, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateStatus godoc
// @Summary Move a proposal to the next stage
// @Description Stages go applied, viewed, interview, hired. Hiring creates the contract and closes the job.
// @Tags proposals
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "Proposal ID"
// @Param input body proposal.AdvanceInput true "Target stage"
// @Success 200 {object} AdvanceResponse
// @Failure 403 {object} response.ErrorResponse "Not the job's client"
// @Failure 412 {object} response.ErrorResponse "Illegal transition or job closed"
// @Router /proposals/{id}/status [put]
func (h *ProposalHandler) UpdateStatus(c *gin.Context) {
	uid, ok := currentUser(c)
	if !ok {
		return
	}
	id, ok := pathID(c, "proposal")
	if !ok {
		return
	}
	var input proposal.AdvanceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		writeBindError(c, err)
		return
	}

	if input.Status == proposal.StatusHired {
		p, ct, err := h.svc.Hire(uid, id)
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, AdvanceResponse{Proposal: p, Contract: &ct})
		return
	}

	p, err := h.svc.Advance(uid, id, input.Status)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, AdvanceResponse{Proposal: p})
}
