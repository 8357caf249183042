package db

import (
	"fmt"
	"log"

	"github.com/linskybing/gigboard/internal/config"
	"github.com/linskybing/gigboard/internal/domain/audit"
	"github.com/linskybing/gigboard/internal/domain/contract"
	"github.com/linskybing/gigboard/internal/domain/job"
	"github.com/linskybing/gigboard/internal/domain/message"
	"github.com/linskybing/gigboard/internal/domain/payment"
	"github.com/linskybing/gigboard/internal/domain/proposal"
	"github.com/linskybing/gigboard/internal/domain/user"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Models lists every table owned by the service, in migration order.
func Models() []any {
	return []any{
		&user.User{},
		&job.Job{},
		&proposal.Proposal{},
		&contract.Contract{},
		&payment.Payment{},
		&message.Message{},
		&audit.AuditLog{},
	}
}

func DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		config.DbHost,
		config.DbPort,
		config.DbUser,
		config.DbPassword,
		config.DbName,
	)
}

func Init() {
	var err error
	DB, err = gorm.Open(postgres.Open(DSN()), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}

	if err := DB.AutoMigrate(Models()...); err != nil {
		log.Fatal("Failed to auto migrate:", err)
	}

	log.Println("Database connected and migrated")
}
