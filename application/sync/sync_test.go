package sync_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	appsync "github.com/adindapuspa/storesync/application/sync"
	"github.com/adindapuspa/storesync/cmd/config"
	"github.com/adindapuspa/storesync/constant"
	productmocks "github.com/adindapuspa/storesync/mocks/repository/product"
	redismocks "github.com/adindapuspa/storesync/mocks/repository/redis"
	txmocks "github.com/adindapuspa/storesync/mocks/repository/tx"
	etsymocks "github.com/adindapuspa/storesync/mocks/thirdparty/etsy"
	"github.com/adindapuspa/storesync/model"
	"github.com/adindapuspa/storesync/thirdparty/etsy"
	cerr "github.com/adindapuspa/storesync/utils/errors"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/mock"
)

func testCreds() *model.Credentials {
	return &model.Credentials{AccessToken: "token", ShopID: "777", APIKey: "key"}
}

func testListing(id int64, title string) model.Listing {
	return model.Listing{
		ListingID:   id,
		Title:       title,
		Description: "Handmade",
		Price:       model.ListingPrice{Amount: 2500, Divisor: 100, CurrencyCode: "USD"},
		Quantity:    5,
		State:       "active",
		URL:         "https://etsy.com/listing/123",
		Images: []model.ListingImage{
			{ListingID: id, ListingImageID: 9, URLFullxfull: "a", Rank: 0},
		},
		CreatedTimestamp: 1700000000,
		UpdatedTimestamp: 1700000100,
	}
}

func upsertFor(etsyID string) interface{} {
	return mock.MatchedBy(func(p *model.ProductUpsert) bool {
		return p.EtsyID == etsyID
	})
}

func TestSyncApp_PullFromEtsy(t *testing.T) {
	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.RedisRepository
		etsyClient  *etsymocks.Client
		credentials *etsymocks.CredentialProvider
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.PullReport
		wantErr  bool
	}{
		{
			name: "success: listings converted and upserted as synced",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.etsyClient.On("ListShopListings", mock.Anything, testCreds()).
					Return([]model.Listing{testListing(123, "Mug")}, nil).Once()
				f.productRepo.On("GetByEtsyID", mock.Anything, "123").Return(nil, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.productRepo.On("UpsertByEtsyIDTx", mock.Anything, mock.Anything,
					mock.MatchedBy(func(p *model.ProductUpsert) bool {
						return p.EtsyID == "123" &&
							p.Title == "Mug" &&
							p.Price == 25.00 &&
							p.Quantity == 5 &&
							p.State == "active" &&
							p.SyncStatus == constant.SyncStatusSynced &&
							p.EtsyCreatedAt.Equal(time.Unix(1700000000, 0)) &&
							p.EtsyUpdatedAt.Equal(time.Unix(1700000100, 0))
					})).Return("prod-1", nil).Once()
				f.productRepo.On("ReplaceImagesTx", mock.Anything, mock.Anything, "prod-1",
					[]model.ProductImage{{URL: "a", Rank: 0}}).Return(nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PullReport{
				Fetched: 1,
				Synced:  1,
				Items: []model.PullReportItem{
					{EtsyID: "123", Title: "Mug", Status: constant.ItemStatusSynced},
				},
			},
		},
		{
			name: "success: one failing listing does not abort the batch",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.etsyClient.On("ListShopListings", mock.Anything, testCreds()).
					Return([]model.Listing{
						testListing(1, "First"),
						testListing(2, "Second"),
						testListing(3, "Third"),
					}, nil).Once()
				f.productRepo.On("GetByEtsyID", mock.Anything, mock.Anything).Return(nil, nil).Times(3)
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Times(3)
				f.productRepo.On("UpsertByEtsyIDTx", mock.Anything, mock.Anything, upsertFor("1")).Return("p1", nil).Once()
				f.productRepo.On("UpsertByEtsyIDTx", mock.Anything, mock.Anything, upsertFor("2")).Return("", errors.New("db error")).Once()
				f.productRepo.On("UpsertByEtsyIDTx", mock.Anything, mock.Anything, upsertFor("3")).Return("p3", nil).Once()
				f.productRepo.On("ReplaceImagesTx", mock.Anything, mock.Anything, "p1", mock.Anything).Return(nil).Once()
				f.productRepo.On("ReplaceImagesTx", mock.Anything, mock.Anything, "p3", mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Times(2)
				f.txRepo.On("RollbackTx", mock.Anything).Return(nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PullReport{
				Fetched: 3,
				Synced:  2,
				Failed:  1,
				Items: []model.PullReportItem{
					{EtsyID: "1", Title: "First", Status: constant.ItemStatusSynced},
					{EtsyID: "2", Title: "Second", Status: constant.ItemStatusError, Error: cerr.SetCustomError(constant.ErrInternal).Error()},
					{EtsyID: "3", Title: "Third", Status: constant.ItemStatusSynced},
				},
			},
		},
		{
			name: "success: pending product skipped when overwrite guard is on",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.etsyClient.On("ListShopListings", mock.Anything, testCreds()).
					Return([]model.Listing{testListing(123, "Mug")}, nil).Once()
				f.productRepo.On("GetByEtsyID", mock.Anything, "123").
					Return(&model.Product{ID: "prod-1", EtsyID: "123", SyncStatus: constant.SyncStatusPending}, nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PullReport{
				Fetched: 1,
				Skipped: 1,
				Items: []model.PullReportItem{
					{EtsyID: "123", Title: "Mug", Status: constant.ItemStatusSkipped, Error: "local edits pending"},
				},
			},
		},
		{
			name: "success: pending product overwritten when last-writer-wins is configured",
			fields: fields{
				config:      &config.Config{Sync: config.SyncConfig{OverwritePending: true}},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.etsyClient.On("ListShopListings", mock.Anything, testCreds()).
					Return([]model.Listing{testListing(123, "Mug")}, nil).Once()
				f.txRepo.On("BeginTx", mock.Anything).Return((*sqlx.Tx)(nil), nil).Once()
				f.productRepo.On("UpsertByEtsyIDTx", mock.Anything, mock.Anything,
					mock.MatchedBy(func(p *model.ProductUpsert) bool {
						return p.EtsyID == "123" && p.SyncStatus == constant.SyncStatusSynced
					})).Return("prod-1", nil).Once()
				f.productRepo.On("ReplaceImagesTx", mock.Anything, mock.Anything, "prod-1", mock.Anything).Return(nil).Once()
				f.txRepo.On("CommitTx", mock.Anything).Return(nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PullReport{
				Fetched: 1,
				Synced:  1,
				Items: []model.PullReportItem{
					{EtsyID: "123", Title: "Mug", Status: constant.ItemStatusSynced},
				},
			},
		},
		{
			name: "error: missing credentials aborts before any remote call",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrCredential)).Once()
			},
			want:    nil,
			wantErr: true,
		},
		{
			name: "error: listing fetch failure aborts the pull",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.etsyClient.On("ListShopListings", mock.Anything, testCreds()).
					Return(nil, &etsy.RemoteAPIError{StatusCode: 500, Body: "boom"}).Once()
			},
			want:    nil,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsync.NewSyncApp(tt.fields.config, tt.fields.txRepo, tt.fields.productRepo, tt.fields.redisRepo, tt.fields.etsyClient, tt.fields.credentials, nil)

			got, err := app.PullFromEtsy(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("PullFromEtsy() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.Fetched != tt.want.Fetched || got.Synced != tt.want.Synced || got.Skipped != tt.want.Skipped || got.Failed != tt.want.Failed {
				t.Fatalf("PullFromEtsy() counts = %+v, want %+v", got, tt.want)
			}
			if len(got.Items) != len(tt.want.Items) {
				t.Fatalf("len(Items) = %d, want %d", len(got.Items), len(tt.want.Items))
			}
			for i := range got.Items {
				if got.Items[i] != tt.want.Items[i] {
					t.Fatalf("Items[%d] = %+v, want %+v", i, got.Items[i], tt.want.Items[i])
				}
			}
		})
	}
}

func TestSyncApp_PushProduct(t *testing.T) {
	pendingProduct := func() *model.Product {
		return &model.Product{
			ID:          "prod-1",
			EtsyID:      "123",
			Title:       "Mug",
			Description: sql.NullString{String: "Handmade", Valid: true},
			Price:       25.00,
			Quantity:    5,
			SyncStatus:  constant.SyncStatusPending,
		}
	}

	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.RedisRepository
		etsyClient  *etsymocks.Client
		credentials *etsymocks.CredentialProvider
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields, start time.Time)
		want     *model.PushResult
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success: both remote calls succeed and product is marked synced",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields, start time.Time) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "prod-1").Return(pendingProduct(), nil).Once()
				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "123",
					mock.MatchedBy(func(u *model.ListingUpdate) bool {
						return u.Title != nil && *u.Title == "Mug" &&
							u.Description != nil && *u.Description == "Handmade" &&
							u.Price != nil && *u.Price == 25.00
					})).Return(nil).Once()
				f.etsyClient.On("UpdateInventory", mock.Anything, testCreds(), "123", 5).Return(nil).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "prod-1",
					mock.MatchedBy(func(u *model.ProductUpdate) bool {
						return u.SyncStatus != nil && *u.SyncStatus == constant.SyncStatusSynced &&
							u.LastSyncedAt != nil && !u.LastSyncedAt.Before(start)
					})).Return(nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PushResult{ID: "prod-1", Title: "Mug", Status: constant.ItemStatusSuccess},
		},
		{
			name: "success: nil description is omitted from the listing update",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields, start time.Time) {
				p := pendingProduct()
				p.Description = sql.NullString{}
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "prod-1").Return(p, nil).Once()
				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "123",
					mock.MatchedBy(func(u *model.ListingUpdate) bool {
						return u.Description == nil
					})).Return(nil).Once()
				f.etsyClient.On("UpdateInventory", mock.Anything, testCreds(), "123", 5).Return(nil).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "prod-1", mock.Anything).Return(nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PushResult{ID: "prod-1", Title: "Mug", Status: constant.ItemStatusSuccess},
		},
		{
			name: "error: unknown product id",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields, start time.Time) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "prod-1").Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrNotFound,
		},
		{
			name: "error: failing listing update marks product error and skips inventory",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields, start time.Time) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "prod-1").Return(pendingProduct(), nil).Once()
				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "123", mock.Anything).
					Return(&etsy.RemoteAPIError{StatusCode: 400, Body: "bad price"}).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "prod-1",
					mock.MatchedBy(func(u *model.ProductUpdate) bool {
						return u.SyncStatus != nil && *u.SyncStatus == constant.SyncStatusError &&
							u.LastSyncedAt == nil
					})).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrRemoteAPI,
		},
		{
			name: "error: failing inventory update marks product error",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields, start time.Time) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("GetByID", mock.Anything, "prod-1").Return(pendingProduct(), nil).Once()
				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "123", mock.Anything).Return(nil).Once()
				f.etsyClient.On("UpdateInventory", mock.Anything, testCreds(), "123", 5).
					Return(&etsy.TimeoutError{Op: "PUT inventory"}).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "prod-1",
					mock.MatchedBy(func(u *model.ProductUpdate) bool {
						return u.SyncStatus != nil && *u.SyncStatus == constant.SyncStatusError
					})).Return(nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrTimeout,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			start := time.Now()
			if tt.mockCall != nil {
				tt.mockCall(tt.fields, start)
			}
			app := appsync.NewSyncApp(tt.fields.config, tt.fields.txRepo, tt.fields.productRepo, tt.fields.redisRepo, tt.fields.etsyClient, tt.fields.credentials, nil)

			got, err := app.PushProduct(context.Background(), "prod-1")
			if (err != nil) != tt.wantErr {
				t.Fatalf("PushProduct() error = %v, wantErr %v", err, tt.wantErr)
			}

			if tt.wantErr {
				var ce cerr.CustomError
				if !errors.As(err, &ce) {
					t.Fatalf("error type = %T, want CustomError", err)
				}
				if ce.ErrorCode() != constant.ErrorTypeCode[tt.errCode] {
					t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[tt.errCode])
				}
				return
			}

			if *got != *tt.want {
				t.Fatalf("PushProduct() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSyncApp_PushPending(t *testing.T) {
	pending := func(id, etsyID, title string) model.Product {
		return model.Product{
			ID:         id,
			EtsyID:     etsyID,
			Title:      title,
			Price:      10,
			Quantity:   1,
			SyncStatus: constant.SyncStatusPending,
		}
	}

	type fields struct {
		config      *config.Config
		txRepo      *txmocks.TxRepository
		productRepo *productmocks.ProductRepository
		redisRepo   *redismocks.RedisRepository
		etsyClient  *etsymocks.Client
		credentials *etsymocks.CredentialProvider
	}
	tests := []struct {
		name     string
		fields   fields
		mockCall func(f fields)
		want     *model.PushReport
		wantErr  bool
	}{
		{
			name: "success: empty pending set yields empty report",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("ListPending", mock.Anything).Return([]model.Product{}, nil).Once()
				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PushReport{Processed: 0, Results: []model.PushResult{}},
		},
		{
			name: "success: second of three failing leaves the others synced",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).Return(testCreds(), nil).Once()
				f.productRepo.On("ListPending", mock.Anything).Return([]model.Product{
					pending("p1", "1", "First"),
					pending("p2", "2", "Second"),
					pending("p3", "3", "Third"),
				}, nil).Once()

				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "1", mock.Anything).Return(nil).Once()
				f.etsyClient.On("UpdateInventory", mock.Anything, testCreds(), "1", 1).Return(nil).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "p1",
					mock.MatchedBy(func(u *model.ProductUpdate) bool {
						return u.SyncStatus != nil && *u.SyncStatus == constant.SyncStatusSynced
					})).Return(nil).Once()

				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "2", mock.Anything).
					Return(&etsy.RemoteAPIError{StatusCode: 500, Body: "oops"}).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "p2",
					mock.MatchedBy(func(u *model.ProductUpdate) bool {
						return u.SyncStatus != nil && *u.SyncStatus == constant.SyncStatusError
					})).Return(nil).Once()

				f.etsyClient.On("UpdateListing", mock.Anything, testCreds(), "3", mock.Anything).Return(nil).Once()
				f.etsyClient.On("UpdateInventory", mock.Anything, testCreds(), "3", 1).Return(nil).Once()
				f.productRepo.On("UpdateFields", mock.Anything, "p3",
					mock.MatchedBy(func(u *model.ProductUpdate) bool {
						return u.SyncStatus != nil && *u.SyncStatus == constant.SyncStatusSynced
					})).Return(nil).Once()

				f.redisRepo.On("InvalidateStorefront", mock.Anything).Return(nil).Once()
			},
			want: &model.PushReport{
				Processed: 3,
				Succeeded: 2,
				Failed:    1,
				Results: []model.PushResult{
					{ID: "p1", Title: "First", Status: constant.ItemStatusSuccess},
					{ID: "p2", Title: "Second", Status: constant.ItemStatusError, Error: cerr.SetCustomErrorWithDetail(constant.ErrRemoteAPI, (&etsy.RemoteAPIError{StatusCode: 500, Body: "oops"}).Error()).Error()},
					{ID: "p3", Title: "Third", Status: constant.ItemStatusSuccess},
				},
			},
		},
		{
			name: "error: missing credentials",
			fields: fields{
				config:      &config.Config{},
				txRepo:      txmocks.NewTxRepository(t),
				productRepo: productmocks.NewProductRepository(t),
				redisRepo:   redismocks.NewRedisRepository(t),
				etsyClient:  etsymocks.NewClient(t),
				credentials: etsymocks.NewCredentialProvider(t),
			},
			mockCall: func(f fields) {
				f.credentials.On("Credentials", mock.Anything).
					Return(nil, cerr.SetCustomError(constant.ErrCredential)).Once()
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if tt.mockCall != nil {
				tt.mockCall(tt.fields)
			}
			app := appsync.NewSyncApp(tt.fields.config, tt.fields.txRepo, tt.fields.productRepo, tt.fields.redisRepo, tt.fields.etsyClient, tt.fields.credentials, nil)

			got, err := app.PushPending(context.Background())
			if (err != nil) != tt.wantErr {
				t.Fatalf("PushPending() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.Processed != tt.want.Processed || got.Succeeded != tt.want.Succeeded || got.Failed != tt.want.Failed {
				t.Fatalf("PushPending() counts = %+v, want %+v", got, tt.want)
			}
			if len(got.Results) != len(tt.want.Results) {
				t.Fatalf("len(Results) = %d, want %d", len(got.Results), len(tt.want.Results))
			}
			for i := range got.Results {
				if got.Results[i] != tt.want.Results[i] {
					t.Fatalf("Results[%d] = %+v, want %+v", i, got.Results[i], tt.want.Results[i])
				}
			}
		})
	}
}
