package application

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/domain/contract"
	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/utils"
	"gorm.io/gorm"
)

// PipelineService drives proposals through the hiring stages.
type PipelineService struct {
	Repos *repository.Repos
	// Now is swapped in tests.
	Now func() time.Time
}

func NewPipelineService(repos *repository.Repos) *PipelineService {
	return &PipelineService{
		Repos: repos,
		Now:   time.Now,
	}
}

func (s *PipelineService) SubmitProposal(freelancerID, jobID uint, input proposal.SubmitProposalInput) (proposal.Proposal, error) {
	bid, err := cents("bid amount", input.BidAmount)
	if err != nil {
		return proposal.Proposal{}, err
	}
	if !bid.IsPositive() {
		return proposal.Proposal{}, apperr.Validation("bid amount must be at least 0.01")
	}

	j, err := s.Repos.Job.GetJobByID(jobID)
	if err != nil {
		return proposal.Proposal{}, storeErr("job", err)
	}
	if !j.IsOpen() {
		return proposal.Proposal{}, apperr.Precondition("job %d is no longer accepting proposals", jobID)
	}
	if j.ClientID == freelancerID {
		return proposal.Proposal{}, apperr.Authorization("cannot apply to your own job")
	}

	_, err = s.Repos.Proposal.FindByJobAndFreelancer(jobID, freelancerID)
	if err == nil {
		return proposal.Proposal{}, apperr.Duplicate("you have already applied to job %d", jobID)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return proposal.Proposal{}, storeErr("proposal", err)
	}

	p := proposal.Proposal{
		JobID:        jobID,
		FreelancerID: freelancerID,
		BidAmount:    bid,
		CoverLetter:  strings.TrimSpace(input.CoverLetter),
		Status:       proposal.StatusApplied,
	}
	// The unique index still catches a concurrent second submission.
	if err := s.Repos.Proposal.CreateProposal(&p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return proposal.Proposal{}, apperr.Duplicate("you have already applied to job %d", jobID)
		}
		return proposal.Proposal{}, storeErr("proposal", err)
	}

	recordAudit(s.Repos, utils.AuditEvent{
		UserID:       freelancerID,
		Action:       audit.ActionProposalSubmit,
		ResourceType: audit.ResourceProposal,
		ResourceID:   idString(p.ID),
		After:        p,
		Description:  fmt.Sprintf("applied to job %d", jobID),
	})
	return p, nil
}

// ListProposalsForJob is the client's applicant list for one of their jobs.
// Applicants carry the freelancer's profile and come newest first.
func (s *PipelineService) ListProposalsForJob(clientID, jobID uint) ([]proposal.Applicant, error) {
	j, err := s.Repos.Job.GetJobByID(jobID)
	if err != nil {
		return nil, storeErr("job", err)
	}
	if j.ClientID != clientID {
		return nil, apperr.Authorization("job %d belongs to another client", jobID)
	}
	ps, err := s.Repos.Proposal.ListByJob(jobID)
	return ps, storeErr("proposal", err)
}

func (s *PipelineService) ListMyProposals(freelancerID uint) ([]proposal.Proposal, error) {
	ps, err := s.Repos.Proposal.ListByFreelancer(freelancerID)
	return ps, storeErr("proposal", err)
}

// GetProposal returns a proposal to one of its two principals, with a
// summary of the job it was made for.
func (s *PipelineService) GetProposal(actorID, id uint) (proposal.Detail, error) {
	p, j, err := s.load(id)
	if err != nil {
		return proposal.Detail{}, err
	}
	if actorID != j.ClientID && actorID != p.FreelancerID {
		return proposal.Detail{}, apperr.Authorization("not a participant of proposal %d", id)
	}
	summary, err := s.Repos.Job.GetJobSummary(j.ID)
	if err != nil {
		return proposal.Detail{}, storeErr("job", err)
	}
	return proposal.Detail{Proposal: p, Job: summary}, nil
}

// Advance moves a proposal one stage forward on behalf of the job's client.
// Moving to hired also creates the contract and closes the job, all in one
// transaction. On any error nothing has changed.
func (s *PipelineService) Advance(actorID, proposalID uint, to proposal.Status) (proposal.Proposal, error) {
	p, j, err := s.load(proposalID)
	if err != nil {
		return proposal.Proposal{}, err
	}
	if j.ClientID != actorID {
		return proposal.Proposal{}, apperr.Authorization("only the client of job %d can move its proposals", j.ID)
	}
	if !to.Valid() {
		return proposal.Proposal{}, apperr.Validation("unknown stage %q", to)
	}
	if !proposal.CanAdvance(p.Status, to) {
		return proposal.Proposal{}, apperr.Precondition("cannot move proposal from %s to %s", p.Status, to)
	}
	if !j.IsOpen() {
		return proposal.Proposal{}, apperr.Precondition("job %d is closed", j.ID)
	}

	if to == proposal.StatusHired {
		hired, _, err := s.hire(actorID, p, j)
		return hired, err
	}

	ok, err := s.Repos.Proposal.AdvanceIfJobOpen(p.ID, j.ID, p.Status, to)
	if err != nil {
		return proposal.Proposal{}, storeErr("proposal", err)
	}
	if !ok {
		return proposal.Proposal{}, apperr.Precondition("proposal %d changed while moving to %s", p.ID, to)
	}

	before := p
	p.Status = to
	recordAudit(s.Repos, utils.AuditEvent{
		UserID:       actorID,
		Action:       audit.ActionProposalAdvance,
		ResourceType: audit.ResourceProposal,
		ResourceID:   idString(p.ID),
		Before:       before,
		After:        p,
		Description:  fmt.Sprintf("moved proposal from %s to %s", before.Status, to),
	})
	return p, nil
}

// Hire is Advance to hired, also returning the created contract.
func (s *PipelineService) Hire(actorID, proposalID uint) (proposal.Proposal, contract.Contract, error) {
	p, j, err := s.load(proposalID)
	if err != nil {
		return proposal.Proposal{}, contract.Contract{}, err
	}
	if j.ClientID != actorID {
		return proposal.Proposal{}, contract.Contract{}, apperr.Authorization("only the client of job %d can hire", j.ID)
	}
	if !proposal.CanAdvance(p.Status, proposal.StatusHired) {
		return proposal.Proposal{}, contract.Contract{}, apperr.Precondition("cannot hire from stage %s", p.Status)
	}
	if !j.IsOpen() {
		return proposal.Proposal{}, contract.Contract{}, apperr.Precondition("job %d is closed", j.ID)
	}
	return s.hire(actorID, p, j)
}

func (s *PipelineService) hire(actorID uint, p proposal.Proposal, j job.Job) (proposal.Proposal, contract.Contract, error) {
	now := s.Now()
	c := contract.Contract{
		JobID:        j.ID,
		ProposalID:   p.ID,
		ClientID:     j.ClientID,
		FreelancerID: p.FreelancerID,
		Budget:       p.BidAmount,
		Status:       contract.StatusActive,
		StartDate:    now,
	}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		closed, err := tx.Job.CloseIfOpen(j.ID)
		if err != nil {
			return storeErr("job", err)
		}
		if !closed {
			return apperr.Precondition("job %d is closed", j.ID)
		}

		moved, err := tx.Proposal.UpdateStatusIf(p.ID, proposal.StatusInterview, proposal.StatusHired)
		if err != nil {
			return storeErr("proposal", err)
		}
		if !moved {
			return apperr.Precondition("proposal %d is no longer in interview", p.ID)
		}

		if err := tx.Contract.CreateContract(&c); err != nil {
			return storeErr("contract", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[hire] proposal %d on job %d not hired: %v", p.ID, j.ID, err)
		return proposal.Proposal{}, contract.Contract{}, err
	}

	log.Printf("[hire] proposal %d hired, contract %d created, job %d closed", p.ID, c.ID, j.ID)

	before := p
	p.Status = proposal.StatusHired
	recordAudit(s.Repos, utils.AuditEvent{
		UserID:       actorID,
		Action:       audit.ActionHire,
		ResourceType: audit.ResourceProposal,
		ResourceID:   idString(p.ID),
		Before:       before,
		After:        c,
		Description:  fmt.Sprintf("hired freelancer %d for job %d at %s", p.FreelancerID, j.ID, c.Budget.StringFixed(2)),
	})
	return p, c, nil
}

func (s *PipelineService) load(proposalID uint) (proposal.Proposal, job.Job, error) {
	p, err := s.Repos.Proposal.GetProposalByID(proposalID)
	if err != nil {
		return proposal.Proposal{}, job.Job{}, storeErr("proposal", err)
	}
	j, err := s.Repos.Job.GetJobByID(p.JobID)
	if err != nil {
		return proposal.Proposal{}, job.Job{}, storeErr("job", err)
	}
	return p, j, nil
}

func idString(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
