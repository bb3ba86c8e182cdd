package repository

import (
	"context"

	"cinesport/internal/model"
)

// SportRepository defines data access for sports. Writes that collide on name
// yield ErrConflict; deletes of referenced sports yield ErrInUse.
type SportRepository interface {
	List(ctx context.Context) ([]model.Sport, error)
	FindByID(ctx context.Context, id int64) (*model.Sport, error)
	Create(ctx context.Context, s *model.Sport) (*model.Sport, error)
	Update(ctx context.Context, s *model.Sport) (*model.Sport, error)
	Delete(ctx context.Context, id int64) error
}

// LocationRepository defines data access for locations, with the same error contract as SportRepository.
type LocationRepository interface {
	List(ctx context.Context) ([]model.Location, error)
	Create(ctx context.Context, l *model.Location) (*model.Location, error)
	Update(ctx context.Context, l *model.Location) (*model.Location, error)
	Delete(ctx context.Context, id int64) error
}
