package repository

import "database/sql"

// NewSQLiteStores returns repositories backed by an opened, migrated database.
func NewSQLiteStores(database *sql.DB) Stores {
	return Stores{
		Progress:  NewSQLiteProgressRepo(database),
		Settings:  NewSQLiteSettingsRepo(database),
		Difficult: NewSQLiteDifficultWordRepo(database),
		History:   NewSQLiteHistoryRepo(database),
	}
}
