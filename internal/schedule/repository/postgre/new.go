package postgre

import (
	"gorm.io/gorm"

	"market-intel-srv/internal/schedule/repository"
	"market-intel-srv/pkg/log"
)

type implRepository struct {
	db *gorm.DB
	l  log.Logger
}

func New(db *gorm.DB, l log.Logger) repository.ScheduleRepository {
	return &implRepository{
		db: db,
		l:  l,
	}
}
