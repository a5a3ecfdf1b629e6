package location

import "context"

type LocationService interface {
	Create(ctx context.Context, req CreateLocationRequest) (LocationResponse, error)
	GetByID(ctx context.Context, id string) (LocationResponse, error)
	List(ctx context.Context) ([]LocationResponse, error)
}
