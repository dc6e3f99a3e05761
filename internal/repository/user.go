package repository

import (
	"github.com/google/uuid"
	"github.com/jobdesk/jobdesk-go/internal/domain/user"
	"gorm.io/gorm"
)

type UserRepo interface {
	Create(u *user.User) error
	GetByID(id uuid.UUID) (user.User, error)
	GetByEmail(email string) (user.User, error)
	WithTx(tx *gorm.DB) UserRepo
}

type DBUserRepo struct {
	db *gorm.DB
}

func NewUserRepo(db *gorm.DB) *DBUserRepo {
	return &DBUserRepo{db: db}
}

func (r *DBUserRepo) Create(u *user.User) error {
	return r.db.Create(u).Error
}

func (r *DBUserRepo) GetByID(id uuid.UUID) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "id = ?", id).Error
	return u, err
}

func (r *DBUserRepo) GetByEmail(email string) (user.User, error) {
	var u user.User
	err := r.db.First(&u, "email = ?", email).Error
	return u, err
}

func (r *DBUserRepo) WithTx(tx *gorm.DB) UserRepo {
	if tx == nil {
		return r
	}
	return &DBUserRepo{db: tx}
}
