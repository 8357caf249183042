package application

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/domain/contract"
	"github.com/linskybing/gigboard/internal/domain/payment"
	"github.com/linskybing/gigboard/internal/repository"
	"github.com/linskybing/gigboard/pkg/apperr"
	"github.com/linskybing/gigboard/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ContractService struct {
	Repos *repository.Repos
	Now   func() time.Time
}

func NewContractService(repos *repository.Repos) *ContractService {
	return &ContractService{
		Repos: repos,
		Now:   time.Now,
	}
}

func (s *ContractService) ListContracts(userID uint) ([]contract.Contract, error) {
	cs, err := s.Repos.Contract.ListContractsByUser(userID)
	return cs, storeErr("contract", err)
}

func (s *ContractService) GetContract(actorID, id uint) (contract.Contract, error) {
	c, err := s.Repos.Contract.GetContractByID(id)
	if err != nil {
		return contract.Contract{}, storeErr("contract", err)
	}
	if actorID != c.ClientID && actorID != c.FreelancerID {
		return contract.Contract{}, apperr.Authorization("not a party to contract %d", id)
	}
	return c, nil
}

// SubmitWork flags an active contract as delivered. It can be done once.
func (s *ContractService) SubmitWork(freelancerID, contractID uint) (contract.Contract, error) {
	c, err := s.Repos.Contract.GetContractByID(contractID)
	if err != nil {
		return contract.Contract{}, storeErr("contract", err)
	}
	if c.FreelancerID != freelancerID {
		return contract.Contract{}, apperr.Authorization("only the hired freelancer can submit work")
	}
	if !c.IsActive() {
		return contract.Contract{}, apperr.Precondition("contract %d is %s", c.ID, c.Status)
	}
	if c.WorkSubmitted {
		return contract.Contract{}, apperr.Precondition("work for contract %d was already submitted", c.ID)
	}

	now := s.Now()
	ok, err := s.Repos.Contract.MarkWorkSubmitted(c.ID, now)
	if err != nil {
		return contract.Contract{}, storeErr("contract", err)
	}
	if !ok {
		return contract.Contract{}, apperr.Precondition("contract %d changed while submitting work", c.ID)
	}

	before := c
	c.WorkSubmitted = true
	c.WorkSubmittedAt = &now
	recordAudit(s.Repos, utils.AuditEvent{
		UserID:       freelancerID,
		Action:       audit.ActionWorkSubmit,
		ResourceType: audit.ResourceContract,
		ResourceID:   idString(c.ID),
		Before:       before,
		After:        c,
		Description:  "work submitted",
	})
	return c, nil
}

// ReleasePayment pays the contract budget to the freelancer and completes the
// contract. Both writes commit together or not at all.
func (s *ContractService) ReleasePayment(clientID, contractID uint) (payment.Payment, error) {
	c, err := s.Repos.Contract.GetContractByID(contractID)
	if err != nil {
		return payment.Payment{}, storeErr("contract", err)
	}
	if c.ClientID != clientID {
		return payment.Payment{}, apperr.Authorization("only the client can release payment")
	}
	if !c.IsActive() {
		return payment.Payment{}, apperr.Precondition("contract %d is %s", c.ID, c.Status)
	}

	now := s.Now()
	p := payment.Payment{
		ContractID: c.ID,
		PayerID:    c.ClientID,
		PayeeID:    c.FreelancerID,
		Amount:     c.Budget,
		Status:     payment.StatusReleased,
	}
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		done, err := tx.Contract.CompleteIfActive(c.ID, now)
		if err != nil {
			return storeErr("contract", err)
		}
		if !done {
			return apperr.Precondition("contract %d is no longer active", c.ID)
		}
		if err := tx.Payment.CreatePayment(&p); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return apperr.Precondition("contract %d was already paid", c.ID)
			}
			return storeErr("payment", err)
		}
		return nil
	})
	if err != nil {
		log.Printf("[payment] release for contract %d failed: %v", c.ID, err)
		return payment.Payment{}, err
	}

	log.Printf("[payment] released %s for contract %d", p.Amount.StringFixed(2), c.ID)
	recordAudit(s.Repos, utils.AuditEvent{
		UserID:       clientID,
		Action:       audit.ActionPaymentRelease,
		ResourceType: audit.ResourceContract,
		ResourceID:   idString(c.ID),
		Before:       c,
		After:        p,
		Description:  fmt.Sprintf("released %s to freelancer %d", p.Amount.StringFixed(2), p.PayeeID),
	})
	return p, nil
}

// Wallet lists payments received by freelancerID, each with its job title,
// and their sum.
func (s *ContractService) Wallet(freelancerID uint) (payment.Wallet, error) {
	ps, err := s.Repos.Payment.ListPaymentsByPayee(freelancerID)
	if err != nil {
		return payment.Wallet{}, storeErr("payment", err)
	}
	total := decimal.Zero
	for _, p := range ps {
		total = total.Add(p.Amount)
	}
	if ps == nil {
		ps = []payment.Entry{}
	}
	return payment.Wallet{Payments: ps, Total: total}, nil
}
