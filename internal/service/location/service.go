package location

import (
	"context"

	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/location"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/database"
)

type LocationServiceImpl struct {
	db           *database.DB
	locationRepo location.LocationRepository
}

func NewLocationService(db *database.DB, locationRepo location.LocationRepository) location.LocationService {
	return &LocationServiceImpl{
		db:           db,
		locationRepo: locationRepo,
	}
}

func (s *LocationServiceImpl) Create(ctx context.Context, req location.CreateLocationRequest) (location.LocationResponse, error) {
	if err := req.Validate(); err != nil {
		return location.LocationResponse{}, err
	}

	created, err := s.locationRepo.Create(ctx, location.Location{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
	})
	if err != nil {
		return location.LocationResponse{}, err
	}

	return toResponse(created), nil
}

func (s *LocationServiceImpl) GetByID(ctx context.Context, id string) (location.LocationResponse, error) {
	loc, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return location.LocationResponse{}, err
	}
	return toResponse(loc), nil
}

func (s *LocationServiceImpl) List(ctx context.Context) ([]location.LocationResponse, error) {
	locations, err := s.locationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]location.LocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, toResponse(loc))
	}
	return responses, nil
}

func toResponse(loc location.Location) location.LocationResponse {
	return location.LocationResponse{
		ID:      loc.ID,
		Name:    loc.Name,
		Address: loc.Address,
		Phone:   loc.Phone,
	}
}
