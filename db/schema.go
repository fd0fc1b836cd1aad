// Package db carries the forum schema. The application never applies it;
// it documents the tables the repositories read and seeds test databases.
package db

import (
	_ "embed"
	"strings"
)

//go:embed schema.sql
var Schema string

// Statements splits Schema into individual statements, dropping comments.
func Statements() []string {
	var b strings.Builder
	for _, line := range strings.Split(Schema, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}

	var stmts []string
	for _, stmt := range strings.Split(b.String(), ";") {
		if stmt = strings.TrimSpace(stmt); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}
