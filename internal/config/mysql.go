package config

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// DB is set by InitDB when the mysql post store is selected.
var DB *gorm.DB

// InitDB opens the MySQL connection used by the SQL post store.
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("connecting to the database: %w", err)
	}
	DB = db
	Logger.Info("Database connected")
	return db, nil
}
