// Package dbtx binds gorm repositories to a transaction opened on the shared
// *sql.DB, so services can keep the BeginTx / WithTx / Commit flow while the
// repositories keep using gorm.
package dbtx

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

// Conn returns a gorm handle for ctx. When tx is non-nil every statement
// issued through the handle runs on tx.
func Conn(ctx context.Context, db *gorm.DB, tx *sql.Tx) *gorm.DB {
	if tx == nil {
		return db.WithContext(ctx)
	}
	session := db.Session(&gorm.Session{Context: ctx, SkipDefaultTransaction: true})
	session.Statement.ConnPool = tx
	return session
}
