package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	User     UserRepo
	Job      JobRepo
	Proposal ProposalRepo
	Contract ContractRepo
	Payment  PaymentRepo
	Message  MessageRepo
	Audit    AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		User:     NewUserRepo(db),
		Job:      NewJobRepo(db),
		Proposal: NewProposalRepo(db),
		Contract: NewContractRepo(db),
		Payment:  NewPaymentRepo(db),
		Message:  NewMessageRepo(db),
		Audit:    NewAuditRepo(db),
		db:       db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		User:     r.User.WithTx(tx),
		Job:      r.Job.WithTx(tx),
		Proposal: r.Proposal.WithTx(tx),
		Contract: r.Contract.WithTx(tx),
		Payment:  r.Payment.WithTx(tx),
		Message:  r.Message.WithTx(tx),
		Audit:    r.Audit.WithTx(tx),
		db:       tx,
	}
}

// ExecTx runs fn against transaction-bound repositories. Any error returned
// by fn rolls the whole unit back.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
