package migration

import (
	"PropInspect-Backend/entities"
	"fmt"
	"log"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Inspection{}); err != nil {
		log.Fatalf("Error migrating inspection database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Room{}); err != nil {
		log.Fatalf("Error migrating room database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Photo{}); err != nil {
		log.Fatalf("Error migrating photo database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.CreditTransaction{}); err != nil {
		log.Fatalf("Error migrating credit transaction database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
