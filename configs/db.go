package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diptansh-1/restaurant-app/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.Restaurant{}, &entity.MenuItem{},
		&entity.StateEntry{},
	)
}
