package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Simplici0/kalkulator/internal/catalog"
)

// ProductRepository stores catalog products in the products table. Rows are
// returned in insertion order, which is the catalog order.
type ProductRepository struct {
	db *sql.DB
}

func NewProductRepository(db *sql.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) ListProducts(ctx context.Context) ([]catalog.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, behandlung, produkt, typ, laenge, artikel_id, preis, info
		FROM products
		ORDER BY seq
	`)
	if err != nil {
		return nil, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	products := []catalog.Product{}
	for rows.Next() {
		var p catalog.Product
		if err := rows.Scan(&p.ID, &p.Behandlung, &p.Produkt, &p.Typ, &p.Laenge, &p.ArtikelID, &p.Preis, &p.Info); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate products: %w", err)
	}

	return products, nil
}

// InsertProducts inserts all products in one transaction.
func (r *ProductRepository) InsertProducts(ctx context.Context, products []catalog.Product) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin insert products: %w", err)
	}

	if err := insertProducts(ctx, tx, products); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit insert products: %w", err)
	}
	return nil
}

func insertProducts(ctx context.Context, tx *sql.Tx, products []catalog.Product) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO products (id, behandlung, produkt, typ, laenge, artikel_id, preis, info)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert product: %w", err)
	}
	defer stmt.Close()

	for _, p := range products {
		if _, err := stmt.ExecContext(ctx, p.ID, p.Behandlung, p.Produkt, p.Typ, p.Laenge, p.ArtikelID, p.Preis, p.Info); err != nil {
			return fmt.Errorf("insert product %s: %w", p.ID, err)
		}
	}
	return nil
}

func (r *ProductRepository) UpdateProduct(ctx context.Context, p catalog.Product) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET behandlung = ?, produkt = ?, typ = ?, laenge = ?, artikel_id = ?, preis = ?, info = ?,
		    updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`, p.Behandlung, p.Produkt, p.Typ, p.Laenge, p.ArtikelID, p.Preis, p.Info, p.ID)
	if err != nil {
		return fmt.Errorf("update product %s: %w", p.ID, err)
	}
	return expectOneRow(res, p.ID)
}

func (r *ProductRepository) DeleteProduct(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete product %s: %w", id, err)
	}
	return expectOneRow(res, id)
}

// CountProducts returns the number of stored products.
func (r *ProductRepository) CountProducts(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func expectOneRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("product %s: %w", id, catalog.ErrNotFound)
	}
	return nil
}
