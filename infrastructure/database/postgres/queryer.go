package postgres

import (
	"context"
	"database/sql"
)

// Queryer é o subconjunto de operações de consulta usado pelos repositórios.
// Tanto *Connection quanto transações adaptadas satisfazem a interface, o que
// permite substituí-la por dublês nos testes.
type Queryer interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (sql.Result, error)
	Query(ctx context.Context, sql string, args ...interface{}) (*sql.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) *sql.Row
}
