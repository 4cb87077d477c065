package postgre

import (
	"gorm.io/gorm"

	"market-intel-srv/internal/report/repository"
	"market-intel-srv/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

func New(db *gorm.DB, l log.Logger) repository.ReportRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
