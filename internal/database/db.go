package database

import (
	"fmt"
	"log"

	"github.com/buckery/backend/internal/config"
	"github.com/buckery/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)

	// TranslateError maps driver unique-violation errors to
	// gorm.ErrDuplicatedKey so stores can surface conflicts.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	DB = db

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Token{},
		&models.Category{},
		&models.Product{},
		&models.HeroImage{},
		&models.TimelineEvent{},
		&models.TeamMember{},
		&models.ContactInformation{},
		&models.Testimonial{},
		&models.Payment{},
	)
	if err != nil {
		return err
	}
	log.Println("Database migrated successfully!")
	return nil
}
