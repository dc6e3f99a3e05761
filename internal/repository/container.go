package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Job         JobRepo
	Application ApplicationRepo
	User        UserRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Job:         NewJobRepo(db),
		Application: NewApplicationRepo(db),
		User:        NewUserRepo(db),
		db:          db,
	}
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Job:         r.Job.WithTx(tx),
		Application: r.Application.WithTx(tx),
		User:        r.User.WithTx(tx),
		db:          tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
