package credential

import (
	"context"
	"errors"

	"github.com/adindapuspa/storesync/cmd/config"
	"github.com/adindapuspa/storesync/constant"
	"github.com/adindapuspa/storesync/model"
	redisrepo "github.com/adindapuspa/storesync/repository/redis"
	"github.com/adindapuspa/storesync/thirdparty/etsy"
	cerr "github.com/adindapuspa/storesync/utils/errors"
	"github.com/adindapuspa/storesync/utils/logger"
	"go.uber.org/zap"
)

// CredentialApp is the explicit credential provider injected into the sync
// engine. Tokens refreshed at runtime are persisted in redis and take
// precedence over the bootstrap pair from the environment.
type CredentialApp interface {
	etsy.CredentialProvider
	Refresh(ctx context.Context) (*model.TokenPair, error)
	Exchange(ctx context.Context, code, verifier, redirectURI string) (*model.TokenPair, error)
}

type credentialAppImpl struct {
	config     *config.Config
	redisRepo  redisrepo.Repository
	etsyClient etsy.Client
}

func NewCredentialApp(config *config.Config, redisRepo redisrepo.Repository, etsyClient etsy.Client) CredentialApp {
	return &credentialAppImpl{config: config, redisRepo: redisRepo, etsyClient: etsyClient}
}

func (s *credentialAppImpl) Credentials(ctx context.Context) (*model.Credentials, error) {
	if s.config.Etsy.APIKey == "" || s.config.Etsy.ShopID == "" {
		return nil, cerr.SetCustomError(constant.ErrCredential)
	}

	access := s.config.Etsy.AccessToken
	pair, err := s.redisRepo.GetTokenPair(ctx)
	if err != nil {
		logger.Warn("[Credentials] error redisRepo.GetTokenPair", zap.String("error", err.Error()))
	}
	if pair != nil && pair.AccessToken != "" {
		access = pair.AccessToken
	}

	if access == "" {
		return nil, cerr.SetCustomError(constant.ErrCredential)
	}

	return &model.Credentials{
		AccessToken: access,
		ShopID:      s.config.Etsy.ShopID,
		APIKey:      s.config.Etsy.APIKey,
	}, nil
}

// Refresh exchanges the current refresh token for a new pair and persists
// it, so subsequent Credentials calls pick it up.
func (s *credentialAppImpl) Refresh(ctx context.Context) (*model.TokenPair, error) {
	if s.config.Etsy.APIKey == "" {
		return nil, cerr.SetCustomError(constant.ErrCredential)
	}

	refresh := s.config.Etsy.RefreshToken
	pair, err := s.redisRepo.GetTokenPair(ctx)
	if err != nil {
		logger.Warn("[Refresh] error redisRepo.GetTokenPair", zap.String("error", err.Error()))
	}
	if pair != nil && pair.RefreshToken != "" {
		refresh = pair.RefreshToken
	}
	if refresh == "" {
		return nil, cerr.SetCustomError(constant.ErrCredential)
	}

	newPair, err := s.etsyClient.RefreshToken(ctx, s.config.Etsy.APIKey, refresh)
	if err != nil {
		logger.Error("[Refresh] error etsyClient.RefreshToken", zap.String("error", err.Error()))
		return nil, remoteToCustom(err)
	}

	if err := s.redisRepo.SetTokenPair(ctx, newPair); err != nil {
		logger.Error("[Refresh] error redisRepo.SetTokenPair", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return newPair, nil
}

// Exchange trades an OAuth authorization code for the first token pair and
// persists it. The redirect/PKCE plumbing that produces the code lives
// outside this service.
func (s *credentialAppImpl) Exchange(ctx context.Context, code, verifier, redirectURI string) (*model.TokenPair, error) {
	if s.config.Etsy.APIKey == "" {
		return nil, cerr.SetCustomError(constant.ErrCredential)
	}

	pair, err := s.etsyClient.ExchangeCode(ctx, s.config.Etsy.APIKey, code, verifier, redirectURI)
	if err != nil {
		logger.Error("[Exchange] error etsyClient.ExchangeCode", zap.String("error", err.Error()))
		return nil, remoteToCustom(err)
	}

	if err := s.redisRepo.SetTokenPair(ctx, pair); err != nil {
		logger.Error("[Exchange] error redisRepo.SetTokenPair", zap.String("error", err.Error()))
		return nil, cerr.SetCustomError(constant.ErrInternal)
	}

	return pair, nil
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
