package configs

import (
	"fmt"
	"strings"

	"preorder/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// ConnectionDB opens the database selected by DB_DRIVER.
// sqlite stores decimal(10,2) with NUMERIC affinity (float for fractions), so money is exact only
// within entity.MaxLineQuantity-bounded totals; use postgres for exact NUMERIC columns.
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(sqliteDSN(cfg.DBSource))
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}
	return db, nil
}

// sqlite ต้องเปิด foreign_keys เองทุก connection ไม่งั้น cascade ไม่ทำงาน
func sqliteDSN(src string) string {
	if strings.Contains(src, "?") {
		return src + "&_foreign_keys=on"
	}
	return src + "?_foreign_keys=on"
}

func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Notification{},
		&entity.Favorite{},
	)
}
