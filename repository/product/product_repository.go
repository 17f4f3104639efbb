package product

import (
	"context"
	"database/sql"
	"strings"

	"github.com/adindapuspa/storesync/constant"
	"github.com/adindapuspa/storesync/model"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type SQL struct {
	conn *sqlx.DB
}

type ProductRepository interface {
	GetByID(ctx context.Context, id string) (*model.Product, error)
	GetByEtsyID(ctx context.Context, etsyID string) (*model.Product, error)
	UpsertByEtsyIDTx(ctx context.Context, tx *sqlx.Tx, payload *model.ProductUpsert) (string, error)
	ReplaceImagesTx(ctx context.Context, tx *sqlx.Tx, productID string, images []model.ProductImage) error
	UpdateFields(ctx context.Context, id string, updates *model.ProductUpdate) error
	ListActive(ctx context.Context) ([]model.Product, error)
	ListPending(ctx context.Context) ([]model.Product, error)
	ListAll(ctx context.Context) ([]model.Product, error)
}

func NewProductRepository(conn *sqlx.DB) ProductRepository {
	return &SQL{conn: conn}
}

const (
	productColumns = `id, etsy_id, title, description, price, quantity, state, url, sync_status, last_synced_at, etsy_created_at, etsy_updated_at, created_at, updated_at`

	getProductByID = `SELECT ` + productColumns + ` FROM product WHERE id = ?`

	getProductByEtsyID = `SELECT ` + productColumns + ` FROM product WHERE etsy_id = ?`

	lockProductIDByEtsyID = `SELECT id FROM product WHERE etsy_id = ? FOR UPDATE`

	insertProduct = `INSERT INTO product (id, etsy_id, title, description, price, quantity, state, url, sync_status, last_synced_at, etsy_created_at, etsy_updated_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	updateProductFromListing = `UPDATE product SET title = ?, description = ?, price = ?, quantity = ?, state = ?, url = ?, sync_status = ?, last_synced_at = ?, etsy_updated_at = ? WHERE id = ?`

	deleteImagesByProduct = `DELETE FROM product_image WHERE product_id = ?`

	insertImage = "INSERT INTO product_image (product_id, url, `rank`) VALUES (?, ?, ?)"

	getImagesByProduct = "SELECT id, product_id, url, `rank` FROM product_image WHERE product_id = ? ORDER BY `rank` ASC, id ASC"

	listActiveProducts = `SELECT ` + productColumns + ` FROM product WHERE state = ? ORDER BY created_at DESC, id DESC`

	listPendingProducts = `SELECT ` + productColumns + ` FROM product WHERE sync_status = ? ORDER BY created_at DESC, id DESC`

	listAllProducts = `SELECT ` + productColumns + ` FROM product ORDER BY created_at DESC, id DESC`
)

func (s *SQL) GetByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, getProductByID, id).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (s *SQL) GetByEtsyID(ctx context.Context, etsyID string) (*model.Product, error) {
	var p model.Product
	if err := s.conn.QueryRowxContext(ctx, getProductByEtsyID, etsyID).StructScan(&p); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// UpsertByEtsyIDTx inserts a new product or refreshes the mutable fields of
// the existing row with the same etsy_id. etsy_id and etsy_created_at are
// written once on insert and never touched again. The etsy_id row is locked
// for the rest of the transaction so the image replace that follows sees a
// stable record.
func (s *SQL) UpsertByEtsyIDTx(ctx context.Context, tx *sqlx.Tx, payload *model.ProductUpsert) (string, error) {
	var id string
	err := tx.GetContext(ctx, &id, lockProductIDByEtsyID, payload.EtsyID)
	if err != nil && err != sql.ErrNoRows {
		return "", err
	}

	if err == sql.ErrNoRows {
		id = uuid.NewString()
		if _, err := tx.ExecContext(ctx, insertProduct,
			id, payload.EtsyID, payload.Title, payload.Description, payload.Price, payload.Quantity,
			payload.State, payload.URL, payload.SyncStatus, payload.LastSyncedAt,
			payload.EtsyCreatedAt, payload.EtsyUpdatedAt); err != nil {
			return "", err
		}
		return id, nil
	}

	if _, err := tx.ExecContext(ctx, updateProductFromListing,
		payload.Title, payload.Description, payload.Price, payload.Quantity, payload.State,
		payload.URL, payload.SyncStatus, payload.LastSyncedAt, payload.EtsyUpdatedAt, id); err != nil {
		return "", err
	}
	return id, nil
}

// ReplaceImagesTx swaps the full image set of one product. Runs inside the
// caller's transaction so readers never observe a partially replaced set.
func (s *SQL) ReplaceImagesTx(ctx context.Context, tx *sqlx.Tx, productID string, images []model.ProductImage) error {
	if _, err := tx.ExecContext(ctx, deleteImagesByProduct, productID); err != nil {
		return err
	}
	for _, img := range images {
		if _, err := tx.ExecContext(ctx, insertImage, productID, img.URL, img.Rank); err != nil {
			return err
		}
	}
	return nil
}

// UpdateFields applies a partial update; nil fields on updates stay
// untouched. Returns sql.ErrNoRows when the id does not exist.
func (s *SQL) UpdateFields(ctx context.Context, id string, updates *model.ProductUpdate) error {
	var exists string
	if err := s.conn.GetContext(ctx, &exists, `SELECT id FROM product WHERE id = ?`, id); err != nil {
		return err
	}

	sets := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	if updates.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *updates.Title)
	}
	if updates.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *updates.Description)
	}
	if updates.Price != nil {
		sets = append(sets, "price = ?")
		args = append(args, *updates.Price)
	}
	if updates.Quantity != nil {
		sets = append(sets, "quantity = ?")
		args = append(args, *updates.Quantity)
	}
	if updates.SyncStatus != nil {
		sets = append(sets, "sync_status = ?")
		args = append(args, *updates.SyncStatus)
	}
	if updates.LastSyncedAt != nil {
		sets = append(sets, "last_synced_at = ?")
		args = append(args, *updates.LastSyncedAt)
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE product SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)
	_, err := s.conn.ExecContext(ctx, query, args...)
	return err
}

func (s *SQL) ListActive(ctx context.Context) ([]model.Product, error) {
	products, err := s.listProducts(ctx, listActiveProducts, constant.ProductStateActive)
	if err != nil {
		return nil, err
	}
	for i := range products {
		images, err := s.getImages(ctx, products[i].ID)
		if err != nil {
			return nil, err
		}
		products[i].Images = images
	}
	return products, nil
}

func (s *SQL) ListPending(ctx context.Context) ([]model.Product, error) {
	return s.listProducts(ctx, listPendingProducts, constant.SyncStatusPending)
}

func (s *SQL) ListAll(ctx context.Context) ([]model.Product, error) {
	return s.listProducts(ctx, listAllProducts)
}

func (s *SQL) listProducts(ctx context.Context, query string, args ...interface{}) ([]model.Product, error) {
	rows, err := s.conn.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := make([]model.Product, 0)
	for rows.Next() {
		var p model.Product
		if err := rows.StructScan(&p); err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (s *SQL) getImages(ctx context.Context, productID string) ([]model.ProductImage, error) {
	rows, err := s.conn.QueryxContext(ctx, getImagesByProduct, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := make([]model.ProductImage, 0)
	for rows.Next() {
		var img model.ProductImage
		if err := rows.StructScan(&img); err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, rows.Err()
}
