package product

import (
	"context"
	"database/sql"

	"github.com/adindapuspa/storesync/cmd/config"
	"github.com/adindapuspa/storesync/constant"
	"github.com/adindapuspa/storesync/model"
	productrepo "github.com/adindapuspa/storesync/repository/product"
	redisrepo "github.com/adindapuspa/storesync/repository/redis"
	"github.com/adindapuspa/storesync/utils/errors"
	"github.com/adindapuspa/storesync/utils/logger"
	"go.uber.org/zap"
)

type ProductApp interface {
	ListStorefront(ctx context.Context) ([]model.Product, error)
	ListAdmin(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id string, req *model.ProductUpdateRequest) (*model.Product, error)
}

type productAppImpl struct {
	config      *config.Config
	productRepo productrepo.ProductRepository
	redisRepo   redisrepo.Repository
}

func NewProductApp(config *config.Config, productRepo productrepo.ProductRepository, redisRepo redisrepo.Repository) ProductApp {
	return &productAppImpl{config: config, productRepo: productRepo, redisRepo: redisRepo}
}

// ListStorefront returns marketplace-active products with their images,
// newest first, served from the redis cache when warm.
func (s *productAppImpl) ListStorefront(ctx context.Context) ([]model.Product, error) {
	cached, err := s.redisRepo.GetStorefront(ctx)
	if err != nil {
		logger.Warn("[ListStorefront] error redisRepo.GetStorefront", zap.String("error", err.Error()))
	}
	if cached != nil {
		return cached, nil
	}

	products, err := s.productRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[ListStorefront] error productRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.SetStorefront(ctx, products, s.config.Sync.CacheTTL); err != nil {
		logger.Warn("[ListStorefront] error redisRepo.SetStorefront", zap.String("error", err.Error()))
	}

	return products, nil
}

func (s *productAppImpl) ListAdmin(ctx context.Context) ([]model.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		logger.Error("[ListAdmin] error productRepo.ListAll", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return products, nil
}

// UpdateProduct applies a partial edit to the product's mutable fields and
// unconditionally flips sync_status to pending: any local edit marks the
// product as needing an outbound push, whatever status it held before.
func (s *productAppImpl) UpdateProduct(ctx context.Context, id string, req *model.ProductUpdateRequest) (*model.Product, error) {
	if req.Price != nil && *req.Price < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}
	if req.Quantity != nil && *req.Quantity < 0 {
		return nil, errors.SetCustomError(constant.ErrInvalidRequest)
	}

	pending := constant.SyncStatusPending
	updates := &model.ProductUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Quantity:    req.Quantity,
		SyncStatus:  &pending,
	}

	if err := s.productRepo.UpdateFields(ctx, id, updates); err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.SetCustomError(constant.ErrNotFound)
		}
		logger.Error("[UpdateProduct] error productRepo.UpdateFields", zap.String("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.InvalidateStorefront(ctx); err != nil {
		logger.Warn("[UpdateProduct] error invalidating storefront cache", zap.String("error", err.Error()))
	}

	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		logger.Error("[UpdateProduct] error productRepo.GetByID", zap.String("id", id), zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return product, nil
}
