package configs

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

// SetupDatabase migrates the schema. Ids are sqlite autoincrement primary
// keys, so each entity type numbers its rows sequentially from 1.
func SetupDatabase() {
	db.AutoMigrate(
		&entity.Business{},
		&entity.MenuItem{},
		&entity.Review{},
		&entity.Order{},
		&entity.OrderItem{},
	)
}
