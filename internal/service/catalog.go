package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"cinesport/internal/model"
	"cinesport/internal/repository"
	"cinesport/internal/storage"
)

const sportPhotoExpiry = time.Hour

// CatalogService defines management of sports and locations.
type CatalogService interface {
	Sports(ctx context.Context) ([]model.Sport, error)
	CreateSport(ctx context.Context, in model.Sport) (*model.Sport, error)
	UpdateSport(ctx context.Context, id int64, in model.Sport) (*model.Sport, error)
	DeleteSport(ctx context.Context, id int64) error
	// UploadSportPhoto stores the image and records its object key as the sport's photo.
	UploadSportPhoto(ctx context.Context, id int64, r io.Reader, contentType string, size int64) (*model.Sport, error)
	// SportPhotoURL returns a presigned download URL of the sport's photo.
	SportPhotoURL(ctx context.Context, id int64) (string, error)

	Locations(ctx context.Context) ([]model.Location, error)
	CreateLocation(ctx context.Context, name string) (*model.Location, error)
	UpdateLocation(ctx context.Context, id int64, name string) (*model.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

type catalogService struct {
	sports    repository.SportRepository
	locations repository.LocationRepository
	store     storage.Storage
}

// NewCatalogService constructs a new CatalogService.
func NewCatalogService(sports repository.SportRepository, locations repository.LocationRepository, store storage.Storage) CatalogService {
	return &catalogService{sports: sports, locations: locations, store: store}
}

// catalogErr translates repository errors of catalog writes.
func catalogErr(err error, what string) error {
	switch {
	case errors.Is(err, repository.ErrConflict):
		return invalid(what + " already exists")
	case errors.Is(err, repository.ErrInUse):
		return invalid(what + " is referenced by events")
	}
	return missing(err, what+" not found")
}

func (s *catalogService) Sports(ctx context.Context) ([]model.Sport, error) {
	out, err := s.sports.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Sport{}
	}
	return out, nil
}

func (s *catalogService) CreateSport(ctx context.Context, in model.Sport) (*model.Sport, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("name is required")
	}
	out, err := s.sports.Create(ctx, &model.Sport{Name: in.Name, IconURL: strings.TrimSpace(in.IconURL)})
	if err != nil {
		return nil, catalogErr(err, "sport")
	}
	return out, nil
}

func (s *catalogService) UpdateSport(ctx context.Context, id int64, in model.Sport) (*model.Sport, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, invalid("name is required")
	}
	cur, err := s.sports.FindByID(ctx, id)
	if err != nil {
		return nil, missing(err, "sport not found")
	}
	cur.Name = in.Name
	if in.IconURL != "" {
		cur.IconURL = strings.TrimSpace(in.IconURL)
	}
	out, err := s.sports.Update(ctx, cur)
	if err != nil {
		return nil, catalogErr(err, "sport")
	}
	return out, nil
}

func (s *catalogService) DeleteSport(ctx context.Context, id int64) error {
	if err := s.sports.Delete(ctx, id); err != nil {
		return catalogErr(err, "sport")
	}
	return nil
}

func (s *catalogService) UploadSportPhoto(ctx context.Context, id int64, r io.Reader, contentType string, size int64) (*model.Sport, error) {
	if r == nil {
		return nil, invalid("file is required")
	}
	ext, err := storage.ImageExt(contentType)
	if err != nil {
		return nil, invalid("photo must be a jpeg, png or webp image")
	}
	if size > storage.MaxImageSize {
		return nil, invalid("photo is too large")
	}
	sp, err := s.sports.FindByID(ctx, id)
	if err != nil {
		return nil, missing(err, "sport not found")
	}

	key := storage.SportPhotoKey(id, ext)
	if _, err := s.store.Put(ctx, key, r, storage.PutObjectOptions{Size: size, ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}
	previous := sp.PhotoURL
	sp.PhotoURL = key
	out, err := s.sports.Update(ctx, sp)
	if err != nil {
		if key != previous {
			if delErr := s.store.Delete(ctx, key); delErr != nil {
				return nil, fmt.Errorf("db save failed: %v; rollback delete failed: %v", err, delErr)
			}
		}
		return nil, fmt.Errorf("db save failed: %w", err)
	}
	if previous != "" && previous != key {
		if err := s.store.Delete(ctx, previous); err != nil {
			return nil, fmt.Errorf("delete previous photo: %w", err)
		}
	}
	return out, nil
}

func (s *catalogService) SportPhotoURL(ctx context.Context, id int64) (string, error) {
	sp, err := s.sports.FindByID(ctx, id)
	if err != nil {
		return "", missing(err, "sport not found")
	}
	if sp.PhotoURL == "" {
		return "", notFound("sport has no photo")
	}
	url, err := s.store.PresignGet(ctx, sp.PhotoURL, sportPhotoExpiry)
	if err != nil {
		return "", fmt.Errorf("presign photo: %w", err)
	}
	return url, nil
}

func (s *catalogService) Locations(ctx context.Context) ([]model.Location, error) {
	out, err := s.locations.List(ctx)
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []model.Location{}
	}
	return out, nil
}

func (s *catalogService) CreateLocation(ctx context.Context, name string) (*model.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	out, err := s.locations.Create(ctx, &model.Location{Name: name})
	if err != nil {
		return nil, catalogErr(err, "location")
	}
	return out, nil
}

func (s *catalogService) UpdateLocation(ctx context.Context, id int64, name string) (*model.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalid("name is required")
	}
	out, err := s.locations.Update(ctx, &model.Location{ID: id, Name: name})
	if err != nil {
		return nil, catalogErr(err, "location")
	}
	return out, nil
}

func (s *catalogService) DeleteLocation(ctx context.Context, id int64) error {
	if err := s.locations.Delete(ctx, id); err != nil {
		return catalogErr(err, "location")
	}
	return nil
}
