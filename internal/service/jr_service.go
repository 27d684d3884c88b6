package service

import (
	"context"
	"fmt"
	"time"

	"samsat-api/internal/jr"
	"samsat-api/internal/repository"
)

// JrService resolves a plate to vehicle attributes and fetches the external
// JR tariff quote for it.
type JrService interface {
	GetTarifByNopol(ctx context.Context, nopol string) (*jr.Quote, error)
}

type jrService struct {
	repo   repository.KendaraanRepository
	client *jr.Client
	now    func() time.Time
}

func NewJrService(repo repository.KendaraanRepository, client *jr.Client) JrService {
	return &jrService{repo: repo, client: client, now: time.Now}
}

// GetTarifByNopol returns (nil, nil) when the plate is unknown; any JR
// failure (transport after retries, or a provider-reported one) propagates
// with the client's classified message.
func (s *jrService) GetTarifByNopol(ctx context.Context, nopol string) (*jr.Quote, error) {
	k, err := s.repo.FindByNopol(ctx, nopol)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch kendaraan: %w", err)
	}
	if k == nil {
		return nil, nil
	}

	req, err := s.client.BuildRequest(k, s.now())
	if err != nil {
		return nil, err
	}

	return s.client.Fetch(ctx, req)
}
