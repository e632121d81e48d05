package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/fekuna/omnipos-storefront-service/internal/model"
)

type productRow struct {
	ID          string  `db:"id"`
	Category    string  `db:"category"`
	Price       float64 `db:"price"`
	Title       string  `db:"title"`
	Image       string  `db:"image"`
	Description string  `db:"description"`
}

// PGRepository reads active products of one merchant from the product
// service schema. An empty merchant id reads every merchant.
type PGRepository struct {
	DB         *sqlx.DB
	MerchantID string
}

func NewPGRepository(db *sqlx.DB, merchantID string) *PGRepository {
	return &PGRepository{DB: db, MerchantID: merchantID}
}

func (r *PGRepository) Name() string {
	return "postgres:" + r.MerchantID
}

func (r *PGRepository) FetchAll(ctx context.Context) ([]model.CatalogItem, error) {
	query := `
        SELECT p.id,
               COALESCE(LOWER(c.name), '') AS category,
               p.base_price AS price,
               p.name AS title,
               COALESCE(p.image_url, '') AS image,
               COALESCE(p.description, '') AS description
        FROM products p
        LEFT JOIN categories c ON c.id = p.category_id
        WHERE p.is_active = true
          AND ($1 = '' OR p.merchant_id::text = $1)
        ORDER BY p.created_at, p.id
    `
	var rows []productRow
	if err := r.DB.SelectContext(ctx, &rows, query, r.MerchantID); err != nil {
		return nil, err
	}

	items := make([]model.CatalogItem, len(rows))
	for i, row := range rows {
		items[i] = model.CatalogItem{
			ID:          model.ItemID(row.ID),
			Category:    row.Category,
			Price:       row.Price,
			Title:       row.Title,
			Image:       row.Image,
			Description: row.Description,
		}
	}
	return items, nil
}
