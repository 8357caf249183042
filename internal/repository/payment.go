package repository

//go:generate mockgen -destination=mock/payment_mock.go -package=mock github.com/linskybing/gigboard/internal/repository PaymentRepo

import (
	"github.com/linskybing/gigboard/internal/domain/payment"
	"gorm.io/gorm"
)

// PaymentRepo has no update or delete: the ledger is append-only.
type PaymentRepo interface {
	CreatePayment(p *payment.Payment) error
	GetPaymentByContractID(contractID uint) (payment.Payment, error)
	// ListPaymentsByPayee returns the payee's payments with the job each
	// one paid for, newest first.
	ListPaymentsByPayee(payeeID uint) ([]payment.Entry, error)
	WithTx(tx *gorm.DB) PaymentRepo
}

type DBPaymentRepo struct {
	db *gorm.DB
}

func NewPaymentRepo(db *gorm.DB) *DBPaymentRepo {
	return &DBPaymentRepo{
		db: db,
	}
}

func (r *DBPaymentRepo) CreatePayment(p *payment.Payment) error {
	return r.db.Create(p).Error
}

func (r *DBPaymentRepo) GetPaymentByContractID(contractID uint) (payment.Payment, error) {
	var p payment.Payment
	err := r.db.Where("contract_id = ?", contractID).First(&p).Error
	return p, err
}

func (r *DBPaymentRepo) ListPaymentsByPayee(payeeID uint) ([]payment.Entry, error) {
	var ps []payment.Entry
	err := r.db.Table("payments p").
		Select("p.*, c.job_id, j.title AS job_title").
		Joins("JOIN contracts c ON c.id = p.contract_id").
		Joins("JOIN jobs j ON j.id = c.job_id").
		Where("p.payee_id = ?", payeeID).
		Order("p.created_at desc, p.id desc").
		Scan(&ps).Error
	return ps, err
}

func (r *DBPaymentRepo) WithTx(tx *gorm.DB) PaymentRepo {
	if tx == nil {
		return r
	}
	return &DBPaymentRepo{
		db: tx,
	}
}
