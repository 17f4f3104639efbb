package model

import (
	"database/sql"
	"time"

	"github.com/adindapuspa/storesync/constant"
)

type Product struct {
	ID            string              `db:"id" json:"id"`
	EtsyID        string              `db:"etsy_id" json:"etsy_id"`
	Title         string              `db:"title" json:"title"`
	Description   sql.NullString      `db:"description" json:"-"`
	Price         float64             `db:"price" json:"price"`
	Quantity      int                 `db:"quantity" json:"quantity"`
	State         string              `db:"state" json:"state"`
	URL           string              `db:"url" json:"url"`
	SyncStatus    constant.SyncStatus `db:"sync_status" json:"sync_status"`
	LastSyncedAt  sql.NullTime        `db:"last_synced_at" json:"last_synced_at,omitempty"`
	EtsyCreatedAt time.Time           `db:"etsy_created_at" json:"etsy_created_at"`
	EtsyUpdatedAt time.Time           `db:"etsy_updated_at" json:"etsy_updated_at"`
	CreatedAt     time.Time           `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time           `db:"updated_at" json:"updated_at"`

	Images []ProductImage `db:"-" json:"images,omitempty"`
}

type ProductImage struct {
	ID        int64  `db:"id" json:"id"`
	ProductID string `db:"product_id" json:"-"`
	URL       string `db:"url" json:"url"`
	Rank      int    `db:"rank" json:"rank"`
}

// ProductUpsert is the mapped pull payload applied by upsert-by-etsy-id.
type ProductUpsert struct {
	EtsyID        string
	Title         string
	Description   sql.NullString
	Price         float64
	Quantity      int
	State         string
	URL           string
	SyncStatus    constant.SyncStatus
	LastSyncedAt  time.Time
	EtsyCreatedAt time.Time
	EtsyUpdatedAt time.Time
}

// ProductUpdate carries a partial update; nil fields are left untouched.
type ProductUpdate struct {
	Title        *string
	Description  *string
	Price        *float64
	Quantity     *int
	SyncStatus   *constant.SyncStatus
	LastSyncedAt *time.Time
}

type ProductUpdateRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" validate:"omitempty,gte=0"`
}

type PushRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

// PullReport aggregates per-listing outcomes of one inbound sync.
type PullReport struct {
	Fetched int              `json:"fetched"`
	Synced  int              `json:"synced"`
	Skipped int              `json:"skipped"`
	Failed  int              `json:"failed"`
	Items   []PullReportItem `json:"items"`
}

type PullReportItem struct {
	EtsyID string `json:"etsy_id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type PushResult struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// PushReport aggregates per-product outcomes of one bulk outbound sync.
type PushReport struct {
	Processed int          `json:"processed"`
	Succeeded int          `json:"succeeded"`
	Failed    int          `json:"failed"`
	Results   []PushResult `json:"results"`
}

type PushResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PushPendingResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Results []PushResult `json:"results"`
}
