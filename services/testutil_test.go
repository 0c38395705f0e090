package services_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Bekfastjam/LocalBake/entity"
)

// openTestDB gives each test its own in-memory sqlite database. The named
// shared-cache DSN keeps the schema visible across pooled connections.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.Business{},
		&entity.MenuItem{},
		&entity.Review{},
		&entity.Order{},
		&entity.OrderItem{},
	))
	return db
}

func seedBusiness(t *testing.T, db *gorm.DB, b entity.Business) entity.Business {
	t.Helper()
	require.NoError(t, db.Create(&b).Error)
	return b
}
