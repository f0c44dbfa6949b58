package errors

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

type ErrorDump struct {
	TopMessage string `json:"top_message"`
	Code       Code   `json:"code,omitempty"`

	Chain []string `json:"chain,omitempty"`

	SQLiteCode         string `json:"sqlite_code,omitempty"`
	SQLiteExtendedCode string `json:"sqlite_extended_code,omitempty"`

	PGCode    string `json:"pg_code,omitempty"`
	PGTable   string `json:"pg_table,omitempty"`
	PGColumn  string `json:"pg_column,omitempty"`
	PGDetail  string `json:"pg_detail,omitempty"`
	PGMessage string `json:"pg_message,omitempty"`
}

// Fields flattens the dump into log fields, skipping empty driver columns.
func (d ErrorDump) Fields() map[string]any {
	fields := map[string]any{
		"error":       d.TopMessage,
		"error_code":  d.Code,
		"error_chain": d.Chain,
	}
	optional := map[string]string{
		"sqlite_code":          d.SQLiteCode,
		"sqlite_extended_code": d.SQLiteExtendedCode,
		"pg_code":              d.PGCode,
		"pg_table":             d.PGTable,
		"pg_column":            d.PGColumn,
		"pg_detail":            d.PGDetail,
		"pg_message":           d.PGMessage,
	}
	for k, v := range optional {
		if v != "" {
			fields[k] = v
		}
	}
	return fields
}

func Dump(err error) ErrorDump {
	if err == nil {
		return ErrorDump{}
	}

	d := ErrorDump{
		TopMessage: err.Error(),
	}

	if te := As(err); te != nil {
		d.Code = te.Code()
	}

	for e := err; e != nil; e = errors.Unwrap(e) {
		d.Chain = append(d.Chain, fmt.Sprintf("%T: %v", e, e))
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		d.SQLiteCode = sqliteErr.Code.Error()
		d.SQLiteExtendedCode = sqliteErr.ExtendedCode.Error()
		return d
	}

	var pgxErr *pgconn.PgError
	if errors.As(err, &pgxErr) {
		d.PGCode = pgxErr.Code
		d.PGTable = pgxErr.TableName
		d.PGColumn = pgxErr.ColumnName
		d.PGDetail = pgxErr.Detail
		d.PGMessage = pgxErr.Message
		return d
	}

	return d
}
