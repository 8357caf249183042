package repository

import (
	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"gorm.io/gorm"
)

type ProposalRepo interface {
	CreateProposal(p *proposal.Proposal) error
	GetProposalByID(id uint) (proposal.Proposal, error)
	FindByJobAndFreelancer(jobID, freelancerID uint) (proposal.Proposal, error)
	// ListByJob returns the job's applicants with their profiles, newest
	// first.
	ListByJob(jobID uint) ([]proposal.Applicant, error)
	ListByFreelancer(freelancerID uint) ([]proposal.Proposal, error)
	// UpdateStatusIf moves a proposal from one stage to another only if it
	// is still at from. It reports whether the row changed.
	UpdateStatusIf(id uint, from, to proposal.Status) (bool, error)
	// AdvanceIfJobOpen is UpdateStatusIf with the extra condition that the
	// proposal's job is still open, checked in the same statement.
	AdvanceIfJobOpen(id, jobID uint, from, to proposal.Status) (bool, error)
	WithTx(tx *gorm.DB) ProposalRepo
}

type DBProposalRepo struct {
	db *gorm.DB
}

func NewProposalRepo(db *gorm.DB) *DBProposalRepo {
	return &DBProposalRepo{
		db: db,
	}
}

func (r *DBProposalRepo) CreateProposal(p *proposal.Proposal) error {
	return r.db.Create(p).Error
}

func (r *DBProposalRepo) GetProposalByID(id uint) (proposal.Proposal, error) {
	var p proposal.Proposal
	err := r.db.First(&p, id).Error
	return p, err
}

func (r *DBProposalRepo) FindByJobAndFreelancer(jobID, freelancerID uint) (proposal.Proposal, error) {
	var p proposal.Proposal
	err := r.db.Where("job_id = ? AND freelancer_id = ?", jobID, freelancerID).First(&p).Error
	return p, err
}

func (r *DBProposalRepo) ListByJob(jobID uint) ([]proposal.Applicant, error) {
	var ps []proposal.Applicant
	err := r.db.Preload("Freelancer").
		Where("job_id = ?", jobID).
		Order("created_at desc, id desc").
		Find(&ps).Error
	return ps, err
}

func (r *DBProposalRepo) ListByFreelancer(freelancerID uint) ([]proposal.Proposal, error) {
	var ps []proposal.Proposal
	err := r.db.Where("freelancer_id = ?", freelancerID).Order("created_at desc").Find(&ps).Error
	return ps, err
}

func (r *DBProposalRepo) UpdateStatusIf(id uint, from, to proposal.Status) (bool, error) {
	res := r.db.Model(&proposal.Proposal{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBProposalRepo) AdvanceIfJobOpen(id, jobID uint, from, to proposal.Status) (bool, error) {
	res := r.db.Model(&proposal.Proposal{}).
		Where("id = ? AND job_id = ? AND status = ?", id, jobID, from).
		Where("EXISTS (SELECT 1 FROM jobs WHERE jobs.id = ? AND jobs.status = ?)", jobID, job.StatusOpen).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBProposalRepo) WithTx(tx *gorm.DB) ProposalRepo {
	if tx == nil {
		return r
	}
	return &DBProposalRepo{
		db: tx,
	}
}
