package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"tickerfeed/internal/model"
)

// PostgresStore is the pgx-backed TickerStore.
type PostgresStore struct {
	db     *pgxpool.Pool
	logger *slog.Logger
}

// NewPostgresStore creates a store on an existing pool.
func NewPostgresStore(db *pgxpool.Pool, logger *slog.Logger) *PostgresStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresStore{db: db, logger: logger}
}

// Insert appends one ticker price row. The price string is parsed with
// exact decimal arithmetic so "50000.00" survives the round trip without
// floating-point loss; an unparseable price is an error, not a silent 0.
func (s *PostgresStore) Insert(ctx context.Context, u model.TickerUpdate) (model.StoredTickerPrice, error) {
	price, err := decimal.NewFromString(u.Price)
	if err != nil {
		return model.StoredTickerPrice{}, fmt.Errorf("parse price %q for %s: %w", u.Price, u.Symbol, err)
	}

	row := model.StoredTickerPrice{
		ID:        uuid.New(),
		Symbol:    u.Symbol,
		Price:     price.String(),
		EventTime: u.EventTime,
	}

	err = s.db.QueryRow(ctx, `
		INSERT INTO ticker_prices (id, symbol, price, event_time)
		VALUES ($1, $2, $3, $4)
		RETURNING received_at
	`, row.ID, row.Symbol, row.Price, row.EventTime).Scan(&row.ReceivedAt)
	if err != nil {
		return model.StoredTickerPrice{}, fmt.Errorf("insert ticker price: %w", err)
	}

	row.ReceivedAt = row.ReceivedAt.UTC()
	return row, nil
}

// Latest returns the most recent row per symbol, newest first.
func (s *PostgresStore) Latest(ctx context.Context, symbol string) ([]model.StoredTickerPrice, error) {
	sql, args := latestQuery(symbol)
	return s.queryRows(ctx, sql, args)
}

// History returns all rows matching the filter, newest first.
func (s *PostgresStore) History(ctx context.Context, f Filter) ([]model.StoredTickerPrice, error) {
	sql, args := historyQuery(f)
	return s.queryRows(ctx, sql, args)
}

func (s *PostgresStore) queryRows(ctx context.Context, sql string, args []any) ([]model.StoredTickerPrice, error) {
	rows, err := s.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query ticker prices: %w", err)
	}
	defer rows.Close()

	var result []model.StoredTickerPrice
	for rows.Next() {
		var p model.StoredTickerPrice
		if err := rows.Scan(&p.ID, &p.Symbol, &p.Price, &p.EventTime, &p.ReceivedAt); err != nil {
			return nil, fmt.Errorf("scan ticker price: %w", err)
		}
		p.EventTime = p.EventTime.UTC()
		p.ReceivedAt = p.ReceivedAt.UTC()
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ticker prices: %w", err)
	}
	return result, nil
}

const selectColumns = "id, symbol, price::text, event_time, received_at"

// latestQuery selects the newest row per symbol via DISTINCT ON, then
// orders the per-symbol winners newest first.
func latestQuery(symbol string) (string, []any) {
	var args []any
	where := ""
	if symbol != "" {
		args = append(args, symbol)
		where = "WHERE symbol ILIKE $1"
	}
	sql := fmt.Sprintf(`
		SELECT %s FROM (
			SELECT DISTINCT ON (symbol) %s
			FROM ticker_prices
			%s
			ORDER BY symbol, event_time DESC
		) latest
		ORDER BY event_time DESC
	`, selectColumns, selectColumns, where)
	return sql, args
}

// historyQuery builds the filtered history select, newest first.
func historyQuery(f Filter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if f.Symbol != "" {
		args = append(args, f.Symbol)
		conds = append(conds, fmt.Sprintf("symbol ILIKE $%d", len(args)))
	}
	if !f.Start.IsZero() {
		args = append(args, f.Start)
		conds = append(conds, fmt.Sprintf("event_time >= $%d", len(args)))
	}
	if !f.End.IsZero() {
		args = append(args, f.End)
		conds = append(conds, fmt.Sprintf("event_time <= $%d", len(args)))
	}

	sql := "SELECT " + selectColumns + " FROM ticker_prices"
	if len(conds) > 0 {
		sql += " WHERE " + strings.Join(conds, " AND ")
	}
	sql += " ORDER BY event_time DESC"
	return sql, args
}
