// Package dbutil holds helpers shared by the SQL repositories.
package dbutil

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// DBExecutor интерфейс для чтения из БД.
// Реализуется *sql.DB и *sql.Tx.
type DBExecutor interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
}

// timeLayouts форматы, в которых sqlite может вернуть время
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FlexTime сканирует время из time.Time, строки или []byte.
// lib/pq отдаёт time.Time, sqlite может отдать строку.
type FlexTime struct {
	Time  time.Time
	Valid bool
}

// Scan implements sql.Scanner
func (t *FlexTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v, true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("dbutil: cannot scan %T into FlexTime", value)
	}
}

func (t *FlexTime) parse(s string) error {
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed, true
			return nil
		}
	}
	return fmt.Errorf("dbutil: unsupported time format %q", s)
}

// StringPtr возвращает nil для NULL
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
