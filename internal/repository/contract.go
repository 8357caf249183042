package repository

//go:generate mockgen -destination=mock/contract_mock.go -package=mock github.com/linskybing/gigboard/internal/repository ContractRepo

import (
	"time"

	"github.com/linskybing/gigboard/internal/domain/contract"
	"gorm.io/gorm"
)

type ContractRepo interface {
	CreateContract(c *contract.Contract) error
	GetContractByID(id uint) (contract.Contract, error)
	GetContractByJobID(jobID uint) (contract.Contract, error)
	ListContractsByUser(userID uint) ([]contract.Contract, error)
	// MarkWorkSubmitted sets the work flag on an active contract that has
	// not been flagged yet, reporting whether this call did it.
	MarkWorkSubmitted(id uint, at time.Time) (bool, error)
	// CompleteIfActive moves an active contract to completed, reporting
	// whether this call did it.
	CompleteIfActive(id uint, at time.Time) (bool, error)
	WithTx(tx *gorm.DB) ContractRepo
}

type DBContractRepo struct {
	db *gorm.DB
}

func NewContractRepo(db *gorm.DB) *DBContractRepo {
	return &DBContractRepo{
		db: db,
	}
}

func (r *DBContractRepo) CreateContract(c *contract.Contract) error {
	return r.db.Create(c).Error
}

func (r *DBContractRepo) GetContractByID(id uint) (contract.Contract, error) {
	var c contract.Contract
	err := r.db.First(&c, id).Error
	return c, err
}

func (r *DBContractRepo) GetContractByJobID(jobID uint) (contract.Contract, error) {
	var c contract.Contract
	err := r.db.Where("job_id = ?", jobID).First(&c).Error
	return c, err
}

func (r *DBContractRepo) ListContractsByUser(userID uint) ([]contract.Contract, error) {
	var cs []contract.Contract
	err := r.db.Where("client_id = ? OR freelancer_id = ?", userID, userID).
		Order("created_at desc").
		Find(&cs).Error
	return cs, err
}

func (r *DBContractRepo) MarkWorkSubmitted(id uint, at time.Time) (bool, error) {
	res := r.db.Model(&contract.Contract{}).
		Where("id = ? AND status = ? AND work_submitted = ?", id, contract.StatusActive, false).
		Updates(map[string]any{"work_submitted": true, "work_submitted_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBContractRepo) CompleteIfActive(id uint, at time.Time) (bool, error) {
	res := r.db.Model(&contract.Contract{}).
		Where("id = ? AND status = ?", id, contract.StatusActive).
		Updates(map[string]any{"status": contract.StatusCompleted, "completed_at": at})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *DBContractRepo) WithTx(tx *gorm.DB) ContractRepo {
	if tx == nil {
		return r
	}
	return &DBContractRepo{
		db: tx,
	}
}
