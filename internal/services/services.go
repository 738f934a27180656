// Package services holds the request-independent logic behind the
// REST handlers: timeline composition, map data shaping, GeoJSON
// export, unified search, and the health check.
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist.
// Handlers translate it to a 404.
var ErrNotFound = errors.New("not found")

// searchable builds a case-insensitive substring condition over the
// given columns, OR-combined. Works across the supported dialects by
// lowering both sides.
func searchable(db *gorm.DB, term string, columns ...string) *gorm.DB {
	pattern := "%" + strings.ToLower(term) + "%"
	cond := db.Session(&gorm.Session{NewDB: true})
	for i, col := range columns {
		expr := "LOWER(" + col + ") LIKE ?"
		if i == 0 {
			cond = cond.Where(expr, pattern)
		} else {
			cond = cond.Or(expr, pattern)
		}
	}
	return cond
}
