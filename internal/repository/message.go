package repository

//go:generate mockgen -destination=mock/message_mock.go -package=mock github.com/linskybing/gigboard/internal/repository MessageRepo

import (
	"github.com/linskybing/gigboard/internal/domain/message"
	"gorm.io/gorm"
)

type MessageRepo interface {
	CreateMessage(m *message.Message) error
	ListByProposal(proposalID uint) ([]message.Message, error)
	WithTx(tx *gorm.DB) MessageRepo
}

type DBMessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *DBMessageRepo {
	return &DBMessageRepo{
		db: db,
	}
}

func (r *DBMessageRepo) CreateMessage(m *message.Message) error {
	return r.db.Create(m).Error
}

func (r *DBMessageRepo) ListByProposal(proposalID uint) ([]message.Message, error) {
	var msgs []message.Message
	err := r.db.Where("proposal_id = ?", proposalID).Order("created_at asc, id asc").Find(&msgs).Error
	return msgs, err
}

func (r *DBMessageRepo) WithTx(tx *gorm.DB) MessageRepo {
	if tx == nil {
		return r
	}
	return &DBMessageRepo{
		db: tx,
	}
}
