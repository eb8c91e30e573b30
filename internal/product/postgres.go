package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockview-be/internal/logger"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

const pgUniqueViolation = "23505"

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository returns a product source backed by the products and
// product_stock_history tables.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) List(ctx context.Context) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "List"),
	)

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, category, quantity, unit, image, description, sku, created_at
		FROM products
		ORDER BY seq DESC
	`)
	if err != nil {
		log.Error("DB query failed", zap.Error(err))
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var (
		products []Product
		index    = make(map[string]int)
	)
	for rows.Next() {
		var (
			p           Product
			image, desc sql.NullString
			createdAt   sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Category, &p.Quantity, &p.Unit, &image, &desc, &p.SKU, &createdAt); err != nil {
			log.Error("row scan failed", zap.Error(err))
			return nil, fmt.Errorf("scan product: %w", err)
		}
		p.Image = image.String
		p.Description = desc.String
		if createdAt.Valid {
			p.CreatedAt = createdAt.Time.Format(DateLayout)
		}
		index[p.ID] = len(products)
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	if len(products) == 0 {
		return []Product{}, nil
	}

	histRows, err := r.db.QueryContext(ctx, `
		SELECT product_id, action, date
		FROM product_stock_history
		ORDER BY id ASC
	`)
	if err != nil {
		log.Error("history query failed", zap.Error(err))
		return nil, fmt.Errorf("list stock history: %w", err)
	}
	defer histRows.Close()

	for histRows.Next() {
		var (
			productID string
			entry     StockHistoryEntry
		)
		if err := histRows.Scan(&productID, &entry.Action, &entry.Date); err != nil {
			return nil, fmt.Errorf("scan stock history: %w", err)
		}
		if i, ok := index[productID]; ok {
			products[i].StockHistory = append(products[i].StockHistory, entry)
		}
	}
	if err := histRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate stock history: %w", err)
	}

	log.Debug("products listed", zap.Int("count", len(products)))
	return products, nil
}

func (r *postgresRepository) Create(ctx context.Context, p Product) (Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "Create"),
		zap.String("sku", p.SKU),
	)

	var createdAt any
	if t, err := time.Parse(DateLayout, p.CreatedAt); err == nil {
		createdAt = t
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return Product{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	_, err = tx.ExecContext(ctx, `
		INSERT INTO products (id, name, category, quantity, unit, image, description, sku, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, p.ID, p.Name, p.Category, p.Quantity, p.Unit, nullable(p.Image), nullable(p.Description), p.SKU, createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
			log.Warn("duplicate product", zap.String("product_id", p.ID))
			return Product{}, ErrDuplicateProduct
		}
		log.Error("insert product failed", zap.Error(err))
		return Product{}, fmt.Errorf("insert product: %w", err)
	}

	for _, h := range p.StockHistory {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO product_stock_history (product_id, action, date) VALUES ($1, $2, $3)`,
			p.ID, h.Action, h.Date,
		); err != nil {
			log.Error("insert stock history failed", zap.Error(err))
			return Product{}, fmt.Errorf("insert stock history: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Product{}, fmt.Errorf("commit product: %w", err)
	}

	log.Info("product created", zap.String("product_id", p.ID))
	return p.Clone(), nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
