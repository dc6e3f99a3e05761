package db

import (
	"fmt"
	"log"

	"github.com/jobdesk/jobdesk-go/internal/config"
	"github.com/jobdesk/jobdesk-go/internal/domain/job"
	"github.com/jobdesk/jobdesk-go/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	// Applications carry job_id as a plain column. No foreign key is
	// declared: an application may outlive or predate its job row.
	if err := DB.AutoMigrate(
		&user.User{},
		&job.Job{},
		&job.Application{},
	); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}

// InitWithGormDB swaps in an externally built connection (tests).
func InitWithGormDB(gormDB *gorm.DB) {
	DB = gormDB
}
