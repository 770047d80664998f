package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Open returns a connected GORM DB. A non-empty MySQL DSN takes precedence;
// otherwise the embedded SQLite file at sqlitePath is used, which matches
// the single-writer deployment model of a small newsroom.
func Open(mysqlDSN, sqlitePath string) (*gorm.DB, error) {
	if mysqlDSN != "" {
		db, err := gorm.Open(mysql.Open(mysqlDSN), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("connect mysql: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(sqlitePath), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", sqlitePath, err)
	}
	return db, nil
}
