package repository

//go:generate mockgen -destination=mock/user_mock.go -package=mock github.com/linskybing/gigboard/internal/repository UserRepo

import (
	"github.com/linskybing/gigboard/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	CreateUser(u *user.User) error
	GetUserByID(id uint) (user.User, error)
	GetUserByUsername(username string) (user.User, error)
	SaveUser(u *user.User) error
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{
		db: db,
	}
}

func (r *DBUserRepo) CreateUser(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetUserByID(id uint) (user.User, error) {
	var u user.User
	err := r.db.First(&u, id).Error
	return u, err
}

func (r *DBUserRepo) GetUserByUsername(username string) (user.User, error) {
	var u user.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return u, err
	}
	return u, nil
}

func (r *DBUserRepo) SaveUser(u *user.User) error {
	return r.db.Save(u).Error
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{
		db: tx,
	}
}
