package database

import (
	"cruise_manager/config"
	"cruise_manager/logger"
	"cruise_manager/model"
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB(s *config.Settings) error {
	var err error
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable", s.DBHost, s.DBPort, s.DBUser, s.DBPassword, s.DBName)
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return errors.Wrap(err, "failed to connect database")
	}
	logger.Info("connection opened to database", "host", s.DBHost, "db", s.DBName)

	err = DB.AutoMigrate(
		&model.Account{},
		&model.Cruise{},
		&model.CruiseAvailability{},
		&model.Catamaran{},
		&model.Member{},
		&model.Post{},
		&model.PostLike{},
		&model.PostComment{},
		&model.DirectMessage{},
		&model.Conversation{},
		&model.Payment{},
	)
	if err != nil {
		return errors.Wrap(err, "database migration")
	}
	logger.Info("database migrated")

	// initial data
	SeedData(DB, s)
	return nil
}
