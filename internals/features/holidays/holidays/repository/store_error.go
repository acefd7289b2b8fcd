// file: internals/features/holidays/holidays/repository/store_error.go
package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"go.mongodb.org/mongo-driver/mongo"
)

// DescribeStoreError gives a log-friendly classification of a persistence
// failure (pgx / libpq / mongo). Clients only ever see a generic 500.
func DescribeStoreError(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout: " + err.Error()
	}

	// pgx
	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		return fmt.Sprintf("pg %s (%s): %s", pgxErr.Code, pgClass(pgxErr.Code), pgxErr.Message)
	}
	// lib/pq
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		code := string(pqErr.Code)
		return fmt.Sprintf("pg %s (%s): %s", code, pgClass(code), pqErr.Message)
	}
	// mongo
	var we mongo.WriteException
	if errors.As(err, &we) {
		return "mongo write: " + we.Error()
	}
	if mongo.IsTimeout(err) || mongo.IsNetworkError(err) {
		return "mongo unavailable: " + err.Error()
	}
	return err.Error()
}

func pgClass(code string) string {
	switch code {
	case "23505":
		return "unique violation"
	case "23502":
		return "not null violation"
	case "22P02":
		return "invalid text representation"
	case "57014":
		return "statement timeout"
	case "53300":
		return "too many connections"
	}
	if len(code) >= 2 && code[:2] == "08" {
		return "connection exception"
	}
	return "unclassified"
}
