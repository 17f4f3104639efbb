package transport

import (
	"encoding/json"
	"fmt"
	"net/http"

	credentialapp "github.com/adindapuspa/storesync/application/credential"
	productapp "github.com/adindapuspa/storesync/application/product"
	syncapp "github.com/adindapuspa/storesync/application/sync"
	"github.com/adindapuspa/storesync/constant"
	"github.com/adindapuspa/storesync/model"
	"github.com/adindapuspa/storesync/utils/errors"
	validatorx "github.com/adindapuspa/storesync/utils/validator"
	"github.com/gorilla/mux"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	ProductApp    productapp.ProductApp
	SyncApp       syncapp.SyncApp
	CredentialApp credentialapp.CredentialApp
}

func NewTransport(ProductApp productapp.ProductApp, SyncApp syncapp.SyncApp, CredentialApp credentialapp.CredentialApp, cronSecret string) http.Handler {
	mux := mux.NewRouter()

	rh := &RestHandler{
		ProductApp:    ProductApp,
		SyncApp:       SyncApp,
		CredentialApp: CredentialApp,
	}

	// Swagger UI
	mux.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Storefront routes
	mux.HandleFunc("/products", rh.ListStorefront).Methods(http.MethodGet)

	// Admin routes
	mux.HandleFunc("/admin/products", rh.ListAdmin).Methods(http.MethodGet)
	mux.HandleFunc("/admin/products/{id}", rh.UpdateProduct).Methods(http.MethodPatch)

	// Sync routes
	mux.HandleFunc("/sync/pull", rh.SyncPull).Methods(http.MethodGet)
	mux.HandleFunc("/sync/push", rh.SyncPush).Methods(http.MethodPost)
	mux.HandleFunc("/sync/push-pending", rh.SyncPushPending).Methods(http.MethodGet)

	// Internal routes, guarded by the cron secret
	internal := mux.PathPrefix("/internal/v1").Subrouter()
	internal.Use(InternalMiddleware(cronSecret))
	internal.HandleFunc("/sync/pull", rh.SyncPull).Methods(http.MethodGet)
	internal.HandleFunc("/token/refresh", rh.RefreshToken).Methods(http.MethodPost)
	internal.HandleFunc("/token/exchange", rh.ExchangeToken).Methods(http.MethodPost)

	// middleware
	mux.Use(LoggingMiddleware())

	return mux
}

// ListStorefront handler
// @Summary List storefront products
// @Description List active products with images, newest first
// @Tags Products
// @Produce json
// @Success 200 {array} model.Product
// @Failure 400 {object} errors.CustomError
// @Router /products [get]
func (s *RestHandler) ListStorefront(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ProductApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProductApp.ListStorefront(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ListAdmin handler
// @Summary List all products
// @Description List every product regardless of state, including sync status
// @Tags Admin
// @Produce json
// @Success 200 {array} model.Product
// @Failure 400 {object} errors.CustomError
// @Router /admin/products [get]
func (s *RestHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.ProductApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProductApp.ListAdmin(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateProduct handler
// @Summary Update a product
// @Description Partially update a product's editable fields; the product is marked pending for the next push
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body model.ProductUpdateRequest true "Update Request"
// @Success 200 {object} model.Product
// @Failure 400 {object} errors.CustomError
// @Router /admin/products/{id} [patch]
func (s *RestHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := mux.Vars(r)["id"]
	if id == "" {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	var req model.ProductUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.ProductApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.ProductApp.UpdateProduct(ctx, id, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SyncPull handler
// @Summary Pull listings from Etsy
// @Description Fetch active shop listings and upsert them locally, skipping products with pending local edits
// @Tags Sync
// @Produce json
// @Success 200 {object} model.PullReport
// @Failure 400 {object} errors.CustomError
// @Router /sync/pull [get]
func (s *RestHandler) SyncPull(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.SyncApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.SyncApp.PullFromEtsy(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SyncPush handler
// @Summary Push one product to Etsy
// @Description Push a single product's local fields to its Etsy listing
// @Tags Sync
// @Accept json
// @Produce json
// @Param request body model.PushRequest true "Push Request"
// @Success 200 {object} model.PushResponse
// @Failure 400 {object} errors.CustomError
// @Router /sync/push [post]
func (s *RestHandler) SyncPush(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.PushRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.SyncApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.SyncApp.PushProduct(ctx, req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.PushResponse{
		Success: true,
		Message: fmt.Sprintf("product %s pushed to Etsy", res.Title),
	})
}

// SyncPushPending handler
// @Summary Push all pending products
// @Description Push every product whose sync status is pending, isolating per-product failures
// @Tags Sync
// @Produce json
// @Success 200 {object} model.PushPendingResponse
// @Failure 400 {object} errors.CustomError
// @Router /sync/push-pending [get]
func (s *RestHandler) SyncPushPending(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.SyncApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	report, err := s.SyncApp.PushPending(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, model.PushPendingResponse{
		Success: report.Failed == 0,
		Message: fmt.Sprintf("%d of %d pending products pushed", report.Succeeded, report.Processed),
		Results: report.Results,
	})
}

// RefreshToken handler
// @Summary Refresh the Etsy token pair
// @Description Exchange the stored refresh token for a new access token pair
// @Tags Internal
// @Produce json
// @Success 200 {object} model.TokenPair
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/token/refresh [post]
func (s *RestHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if s.CredentialApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CredentialApp.Refresh(ctx)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// ExchangeToken handler
// @Summary Exchange an OAuth code for tokens
// @Description Trade an authorization code and PKCE verifier for the first token pair
// @Tags Internal
// @Accept json
// @Produce json
// @Param request body model.TokenExchangeRequest true "Exchange Request"
// @Success 200 {object} model.TokenPair
// @Failure 400 {object} errors.CustomError
// @Router /internal/v1/token/exchange [post]
func (s *RestHandler) ExchangeToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.TokenExchangeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if s.CredentialApp == nil {
		writeError(w, errors.SetCustomError(constant.ErrInternal))
		return
	}

	res, err := s.CredentialApp.Exchange(ctx, req.Code, req.Verifier, req.RedirectURI)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
