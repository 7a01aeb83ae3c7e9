package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
)

const (
	saleRecordsTable = "sale_records"

	saleRecordColumns = "id, product, sales_revenue, region, category, sale_date, cost, profit, age_group, gender, occupation, created_at, updated_at"
)

type SaleRecordRepository interface {
	Insert(ctx context.Context, record *domain.SaleRecord) (*domain.SaleRecord, error)
	Delete(ctx context.Context, id string) (*domain.SaleRecord, error)
	ListAll(ctx context.Context) ([]*domain.SaleRecord, error)
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type saleRecordRepository struct {
	conn *postgres.Connection
}

func NewSaleRecordRepository(conn *postgres.Connection) SaleRecordRepository {
	return &saleRecordRepository{
		conn: conn,
	}
}

// Insert persiste um novo registro de venda. O ID e os timestamps de
// bookkeeping são atribuídos aqui, nunca pelo caller.
func (r *saleRecordRepository) Insert(ctx context.Context, record *domain.SaleRecord) (*domain.SaleRecord, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert(saleRecordsTable).
		Columns("id", "product", "sales_revenue", "region", "category", "sale_date", "cost", "profit", "age_group", "gender", "occupation").
		Values(
			uuid.New().String(),
			record.Product,
			record.SalesRevenue,
			record.Region,
			record.Category,
			record.Date,
			record.Cost,
			record.Profit,
			record.AgeGroup,
			record.Gender,
			record.Occupation,
		).
		Suffix("RETURNING " + saleRecordColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	saved, err := r.scanRecord(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir registro de venda: %w", err)
	}

	return saved, nil
}

// Delete remove o registro pelo ID e retorna o registro removido.
// Retorna nil sem erro quando o ID não existe.
func (r *saleRecordRepository) Delete(ctx context.Context, id string) (*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Delete(saleRecordsTable).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + saleRecordColumns).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(ctx, query, args...)
	deleted, err := r.scanRecord(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao remover registro de venda: %w", err)
	}

	return deleted, nil
}

// ListAll retorna todos os registros de venda ordenados por criação e ID.
// A ordem estável garante que agregações repetidas sobre os mesmos dados
// produzam o mesmo resultado, inclusive em empates.
func (r *saleRecordRepository) ListAll(ctx context.Context) ([]*domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select(saleRecordColumns).
		From(saleRecordsTable).
		OrderBy("created_at ASC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.SaleRecord, 0)
	for rows.Next() {
		record, err := r.scanRecordRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro de venda: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

// DeleteOlderThan remove registros com data de venda anterior ao corte
func (r *saleRecordRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete(saleRecordsTable).
		Where(squirrel.Lt{"sale_date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *saleRecordRepository) scanRecord(row *sql.Row) (*domain.SaleRecord, error) {
	record := &domain.SaleRecord{}

	err := row.Scan(
		&record.ID,
		&record.Product,
		&record.SalesRevenue,
		&record.Region,
		&record.Category,
		&record.Date,
		&record.Cost,
		&record.Profit,
		&record.AgeGroup,
		&record.Gender,
		&record.Occupation,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}

func (r *saleRecordRepository) scanRecordRows(rows *sql.Rows) (*domain.SaleRecord, error) {
	record := &domain.SaleRecord{}

	err := rows.Scan(
		&record.ID,
		&record.Product,
		&record.SalesRevenue,
		&record.Region,
		&record.Category,
		&record.Date,
		&record.Cost,
		&record.Profit,
		&record.AgeGroup,
		&record.Gender,
		&record.Occupation,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return record, nil
}
