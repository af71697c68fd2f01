// File: services/search/search.go
package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	chaletRepo "chaletbook/database/repository/chalet"
	"chaletbook/models"
	"chaletbook/utils"
)

// Service runs catalog searches and remembers the last-used search parameters
// per browsing session, so the search form can be re-populated across
// navigation. Parameter memory is session-scoped and disposable.
type Service struct {
	Chalets  chaletRepo.ChaletRepository
	Params   utils.KVStore
	ParamTTL time.Duration
}

func (s *Service) paramTTL() time.Duration {
	if s.ParamTTL > 0 {
		return s.ParamTTL
	}
	return time.Hour
}

func paramKey(sessionID string) string {
	return utils.SearchCachePrefix + sessionID
}

// Search runs a catalog query and records the parameters for the session.
// A failure to record is not a search failure.
func (s *Service) Search(ctx context.Context, sessionID string, q models.ChaletSearchQuery, params models.SearchParams) ([]models.Chalet, error) {
	chalets, err := s.Chalets.Search(q)
	if err != nil {
		return nil, fmt.Errorf("chalet search failed: %w", err)
	}
	if sessionID != "" {
		if err := s.RememberParams(ctx, sessionID, params); err != nil {
			utils.GetLogger().Warn("failed to remember search parameters")
		}
	}
	return chalets, nil
}

// RememberParams stores the session's last search parameters.
func (s *Service) RememberParams(ctx context.Context, sessionID string, params models.SearchParams) error {
	data, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("failed to marshal search parameters: %w", err)
	}
	if err := s.Params.Set(ctx, paramKey(sessionID), data, s.paramTTL()); err != nil {
		return fmt.Errorf("failed to store search parameters: %w", err)
	}
	return nil
}

// LastParams returns the session's remembered parameters, or nil when the
// session has none.
func (s *Service) LastParams(ctx context.Context, sessionID string) (*models.SearchParams, error) {
	data, err := s.Params.Get(ctx, paramKey(sessionID))
	if errors.Is(err, utils.ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load search parameters: %w", err)
	}
	var params models.SearchParams
	if err := json.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse search parameters: %w", err)
	}
	return &params, nil
}

// ClearParams forgets the session's remembered parameters.
func (s *Service) ClearParams(ctx context.Context, sessionID string) error {
	if err := s.Params.Del(ctx, paramKey(sessionID)); err != nil {
		return fmt.Errorf("failed to clear search parameters: %w", err)
	}
	return nil
}
