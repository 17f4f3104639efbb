package sync

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/adindapuspa/storesync/cmd/config"
	"github.com/adindapuspa/storesync/constant"
	"github.com/adindapuspa/storesync/model"
	productrepo "github.com/adindapuspa/storesync/repository/product"
	redisrepo "github.com/adindapuspa/storesync/repository/redis"
	txrepo "github.com/adindapuspa/storesync/repository/tx"
	"github.com/adindapuspa/storesync/thirdparty/etsy"
	"github.com/adindapuspa/storesync/thirdparty/rabbitmq"
	cerr "github.com/adindapuspa/storesync/utils/errors"
	"github.com/adindapuspa/storesync/utils/keylock"
	"github.com/adindapuspa/storesync/utils/logger"
	"go.uber.org/zap"
)

type SyncApp interface {
	PullFromEtsy(ctx context.Context) (*model.PullReport, error)
	PushProduct(ctx context.Context, id string) (*model.PushResult, error)
	PushPending(ctx context.Context) (*model.PushReport, error)
}

type syncAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
	etsyClient  etsy.Client
	credentials etsy.CredentialProvider
	publisher   *rabbitmq.Publisher
	locks       *keylock.KeyLock
}

func NewSyncApp(config *config.Config, txRepo txrepo.TxRepository, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository, etsyClient etsy.Client, credentials etsy.CredentialProvider, publisher *rabbitmq.Publisher) SyncApp {
	return &syncAppImpl{
		config:      config,
		txRepo:      txRepo,
		productRepo: productRepo,
		redisRepo:   redisRepo,
		etsyClient:  etsyClient,
		credentials: credentials,
		publisher:   publisher,
		locks:       keylock.New(),
	}
}

// PullFromEtsy fetches every active listing of the shop and mirrors each one
// onto the local store. Listings are processed independently: one listing's
// failure is recorded in the report and the loop continues. Only the initial
// credential lookup and the listing fetch abort the whole pull.
func (s *syncAppImpl) PullFromEtsy(ctx context.Context) (*model.PullReport, error) {
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		logger.Error("[PullFromEtsy] missing credentials", zap.String("error", err.Error()))
		return nil, err
	}

	listings, err := s.etsyClient.ListShopListings(ctx, creds)
	if err != nil {
		logger.Error("[PullFromEtsy] error etsyClient.ListShopListings", zap.String("error", err.Error()))
		return nil, remoteToCustom(err)
	}

	report := &model.PullReport{
		Fetched: len(listings),
		Items:   make([]model.PullReportItem, 0, len(listings)),
	}
	for _, listing := range listings {
		item := s.pullListing(ctx, listing)
		switch item.Status {
		case constant.ItemStatusSynced:
			report.Synced++
		case constant.ItemStatusSkipped:
			report.Skipped++
		default:
			report.Failed++
		}
		report.Items = append(report.Items, item)
	}

	if err := s.redisRepo.InvalidateStorefront(ctx); err != nil {
		logger.Warn("[PullFromEtsy] error invalidating storefront cache", zap.String("error", err.Error()))
	}

	s.publishResult("pull", report.Fetched, report.Synced+report.Skipped, report.Failed)

	logger.Info("[PullFromEtsy] pull finished",
		zap.Int("fetched", report.Fetched),
		zap.Int("synced", report.Synced),
		zap.Int("skipped", report.Skipped),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// pullListing is one independent unit of work: map the listing, upsert the
// product and replace its image set inside a single transaction. An inbound
// pull is the authoritative refresh and forces sync_status to synced, unless
// the product holds unpushed local edits and OverwritePending is off, in
// which case the listing is skipped and reported as such.
func (s *syncAppImpl) pullListing(ctx context.Context, listing model.Listing) model.PullReportItem {
	etsyID := strconv.FormatInt(listing.ListingID, 10)
	item := model.PullReportItem{EtsyID: etsyID, Title: listing.Title}

	s.locks.Lock(etsyID)
	defer s.locks.Unlock(etsyID)

	if !s.config.Sync.OverwritePending {
		existing, err := s.productRepo.GetByEtsyID(ctx, etsyID)
		if err != nil {
			logger.Error("[pullListing] error productRepo.GetByEtsyID", zap.String("etsy_id", etsyID), zap.String("error", err.Error()))
			item.Status = constant.ItemStatusError
			item.Error = cerr.SetCustomError(constant.ErrInternal).Error()
			return item
		}
		if existing != nil && existing.SyncStatus == constant.SyncStatusPending {
			item.Status = constant.ItemStatusSkipped
			item.Error = "local edits pending"
			return item
		}
	}

	if listing.Price.Divisor == 0 {
		item.Status = constant.ItemStatusError
		item.Error = "listing price has zero divisor"
		return item
	}

	payload := &model.ProductUpsert{
		EtsyID:        etsyID,
		Title:         listing.Title,
		Description:   nullString(listing.Description),
		Price:         float64(listing.Price.Amount) / float64(listing.Price.Divisor),
		Quantity:      listing.Quantity,
		State:         listing.State,
		URL:           listing.URL,
		SyncStatus:    constant.SyncStatusSynced,
		LastSyncedAt:  time.Now(),
		EtsyCreatedAt: time.Unix(listing.CreatedTimestamp, 0),
		EtsyUpdatedAt: time.Unix(listing.UpdatedTimestamp, 0),
	}

	images := make([]model.ProductImage, 0, len(listing.Images))
	for _, img := range listing.Images {
		images = append(images, model.ProductImage{URL: img.URLFullxfull, Rank: img.Rank})
	}

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.Error("[pullListing] begin tx", zap.String("etsy_id", etsyID), zap.String("error", err.Error()))
		item.Status = constant.ItemStatusError
		item.Error = cerr.SetCustomError(constant.ErrInternal).Error()
		return item
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	productID, err := s.productRepo.UpsertByEtsyIDTx(ctx, tx, payload)
	if err != nil {
		logger.Error("[pullListing] error productRepo.UpsertByEtsyIDTx", zap.String("etsy_id", etsyID), zap.String("error", err.Error()))
		item.Status = constant.ItemStatusError
		item.Error = cerr.SetCustomError(constant.ErrInternal).Error()
		return item
	}

	if err := s.productRepo.ReplaceImagesTx(ctx, tx, productID, images); err != nil {
		logger.Error("[pullListing] error productRepo.ReplaceImagesTx", zap.String("etsy_id", etsyID), zap.String("error", err.Error()))
		item.Status = constant.ItemStatusError
		item.Error = cerr.SetCustomError(constant.ErrInternal).Error()
		return item
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.Error("[pullListing] commit tx", zap.String("etsy_id", etsyID), zap.String("error", err.Error()))
		item.Status = constant.ItemStatusError
		item.Error = cerr.SetCustomError(constant.ErrInternal).Error()
		return item
	}
	committed = true

	item.Status = constant.ItemStatusSynced
	return item
}

// PushProduct pushes one product's local fields to Etsy. On success the
// product transitions to synced with a fresh last_synced_at; if either
// remote call fails, it transitions to error and the failure propagates.
func (s *syncAppImpl) PushProduct(ctx context.Context, id string) (*model.PushResult, error) {
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		logger.Error("[PushProduct] missing credentials", zap.String("error", err.Error()))
		return nil, err
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[PushProduct] error productRepo.GetByID", zap.String("id", id), zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}
	if product == nil {
		return nil, cerr.SetCustomError(constant.ErrNotFound)
	}

	if err := s.pushOne(ctx, creds, product); err != nil {
		return nil, err
	}

	if err := s.redisRepo.InvalidateStorefront(ctx); err != nil {
		logger.Warn("[PushProduct] error invalidating storefront cache", zap.String("error", err.Error()))
	}

	return &model.PushResult{
		ID:     product.ID,
		Title:  product.Title,
		Status: constant.ItemStatusSuccess,
	}, nil
}

// PushPending pushes every product currently marked pending. Products in
// error state are not swept: they re-enter only after another local edit
// flips them back to pending. Each product's outcome is collected
// independently; no failure aborts the remaining items.
func (s *syncAppImpl) PushPending(ctx context.Context) (*model.PushReport, error) {
	creds, err := s.credentials.Credentials(ctx)
	if err != nil {
		logger.Error("[PushPending] missing credentials", zap.String("error", err.Error()))
		return nil, err
	}

	pending, err := s.productRepo.ListPending(ctx)
	if err != nil {
		logger.Error("[PushPending] error productRepo.ListPending", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	report := &model.PushReport{
		Processed: len(pending),
		Results:   make([]model.PushResult, 0, len(pending)),
	}
	for i := range pending {
		product := pending[i]
		result := model.PushResult{ID: product.ID, Title: product.Title}
		if err := s.pushOne(ctx, creds, &product); err != nil {
			result.Status = constant.ItemStatusError
			result.Error = err.Error()
			report.Failed++
		} else {
			result.Status = constant.ItemStatusSuccess
			report.Succeeded++
		}
		report.Results = append(report.Results, result)
	}

	if err := s.redisRepo.InvalidateStorefront(ctx); err != nil {
		logger.Warn("[PushPending] error invalidating storefront cache", zap.String("error", err.Error()))
	}

	s.publishResult("push", report.Processed, report.Succeeded, report.Failed)

	logger.Info("[PushPending] push finished",
		zap.Int("processed", report.Processed),
		zap.Int("succeeded", report.Succeeded),
		zap.Int("failed", report.Failed),
	)
	return report, nil
}

// pushOne runs the two remote calls for one product, serially: the listing
// field update first, then the inventory read-modify-write. Both must
// succeed, followed by the local status write, before the product counts as
// synced. If the local write fails the product stays pending and remains
// eligible for the next sweep.
func (s *syncAppImpl) pushOne(ctx context.Context, creds *model.Credentials, product *model.Product) error {
	s.locks.Lock(product.EtsyID)
	defer s.locks.Unlock(product.EtsyID)

	update := &model.ListingUpdate{
		Title: &product.Title,
		Price: &product.Price,
	}
	if product.Description.Valid {
		update.Description = &product.Description.String
	}

	if err := s.etsyClient.UpdateListing(ctx, creds, product.EtsyID, update); err != nil {
		logger.Error("[pushOne] error etsyClient.UpdateListing", zap.String("etsy_id", product.EtsyID), zap.String("error", err.Error()))
		s.markError(ctx, product.ID)
		return remoteToCustom(err)
	}

	if err := s.etsyClient.UpdateInventory(ctx, creds, product.EtsyID, product.Quantity); err != nil {
		logger.Error("[pushOne] error etsyClient.UpdateInventory", zap.String("etsy_id", product.EtsyID), zap.String("error", err.Error()))
		s.markError(ctx, product.ID)
		return remoteToCustom(err)
	}

	now := time.Now()
	synced := constant.SyncStatusSynced
	if err := s.productRepo.UpdateFields(ctx, product.ID, &model.ProductUpdate{
		SyncStatus:   &synced,
		LastSyncedAt: &now,
	}); err != nil {
		logger.Error("[pushOne] error marking synced", zap.String("id", product.ID), zap.String("error", err.Error()))
		return cerr.SetCustomError(constant.ErrInternal)
	}
	return nil
}

func (s *syncAppImpl) markError(ctx context.Context, id string) {
	status := constant.SyncStatusError
	if err := s.productRepo.UpdateFields(ctx, id, &model.ProductUpdate{SyncStatus: &status}); err != nil {
		logger.Error("[markError] error productRepo.UpdateFields", zap.String("id", id), zap.String("error", err.Error()))
	}
}

func (s *syncAppImpl) publishResult(flow string, total, succeeded, failed int) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.SyncResultMessage{
		Flow:      flow,
		Total:     total,
		Succeeded: succeeded,
		Failed:    failed,
		At:        time.Now(),
	}
	if err := s.publisher.PublishSyncResult(msg); err != nil {
		logger.Error("[publishResult] error publisher.PublishSyncResult", zap.String("flow", flow), zap.String("error", err.Error()))
	}
}

func remoteToCustom(err error) error {
	var remoteErr *etsy.RemoteAPIError
	if errors.As(err, &remoteErr) {
		return cerr.SetCustomErrorWithDetail(constant.ErrRemoteAPI, remoteErr.Error())
	}
	var timeoutErr *etsy.TimeoutError
	if errors.As(err, &timeoutErr) {
		return cerr.SetCustomError(constant.ErrTimeout)
	}
	return cerr.SetCustomError(constant.ErrInternal)
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
