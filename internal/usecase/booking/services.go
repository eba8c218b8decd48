package booking

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BruksfildServices01/barbershop-booking/internal/audit"
	domain "github.com/BruksfildServices01/barbershop-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barbershop-booking/internal/imaging"
	"github.com/BruksfildServices01/barbershop-booking/internal/models"
	"github.com/BruksfildServices01/barbershop-booking/internal/validators"
)

// ErrStorageDisabled is returned by image uploads when no bucket is configured.
var ErrStorageDisabled = errors.New("image storage is not configured")

// maxImageWidth bounds service images; wider uploads are scaled down.
const maxImageWidth = 1000

// ImageStore persists an encoded image and returns its public URL.
type ImageStore interface {
	Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error)
}

// ======================================================
// INPUT
// ======================================================

// ServiceInput carries a full definition on create and a partial one on
// update; nil fields are left unchanged.
type ServiceInput struct {
	Name        *string
	Description *string
	Price       *int64
	DurationMin *int
	Image       *string
	Category    *string
}

func (in ServiceInput) apply(s *models.Service) error {
	if in.Name != nil {
		s.Name = strings.TrimSpace(*in.Name)
	}
	if in.Description != nil {
		s.Description = strings.TrimSpace(*in.Description)
	}
	if in.Price != nil {
		s.Price = *in.Price
	}
	if in.DurationMin != nil {
		s.DurationMin = *in.DurationMin
	}
	if in.Image != nil {
		s.Image = strings.TrimSpace(*in.Image)
	}
	if in.Category != nil {
		s.Category = strings.TrimSpace(*in.Category)
	}
	if s.Category == "" {
		s.Category = models.CategoryMain
	}

	switch {
	case !validators.Check(s.Name, "required,max=100"):
		return validators.NewFieldError("name", "Informe um nome com até 100 caracteres.")
	case !validators.Check(s.Description, "max=500"):
		return validators.NewFieldError("description", "A descrição deve ter até 500 caracteres.")
	case s.Price < 0:
		return validators.NewFieldError("price", "O preço não pode ser negativo.")
	case s.DurationMin <= 0 || s.DurationMin > 24*60:
		return validators.NewFieldError("duration_min", "Duração inválida.")
	case s.Category != models.CategoryMain && s.Category != models.CategorySporadic:
		return validators.NewFieldError("category", "Categoria deve ser main ou sporadic.")
	}
	return nil
}

// ======================================================
// USE CASE
// ======================================================

// ManageServices groups the catalog operations; all but List are admin only.
type ManageServices struct {
	repo   domain.Repository
	images ImageStore
	audit  *audit.Dispatcher
}

func NewManageServices(repo domain.Repository, images ImageStore, audit *audit.Dispatcher) *ManageServices {
	return &ManageServices{repo: repo, images: images, audit: audit}
}

func (uc *ManageServices) List(ctx context.Context) ([]models.Service, error) {
	return uc.repo.ListServices(ctx)
}

func (uc *ManageServices) Create(ctx context.Context, in ServiceInput, userID uint) (*models.Service, error) {
	s := &models.Service{}
	if err := in.apply(s); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateService(ctx, s); err != nil {
		return nil, err
	}

	uc.record(audit.ActionServiceCreated, s.ID, userID, s)
	return s, nil
}

func (uc *ManageServices) Update(ctx context.Context, id uint, in ServiceInput, userID uint) (*models.Service, error) {
	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := in.apply(s); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.record(audit.ActionServiceUpdated, s.ID, userID, s)
	return s, nil
}

// Delete removes the service. Bookings that still reference it keep their
// row; their occupied interval falls back to one slot quantum.
func (uc *ManageServices) Delete(ctx context.Context, id, userID uint) error {
	if err := uc.repo.DeleteService(ctx, id); err != nil {
		return err
	}
	uc.record(audit.ActionServiceDeleted, id, userID, nil)
	return nil
}

// UploadImage normalises the upload to WebP, stores it and points the
// service at the new URL.
func (uc *ManageServices) UploadImage(ctx context.Context, id uint, r io.Reader, userID uint) (*models.Service, error) {
	if uc.images == nil {
		return nil, ErrStorageDisabled
	}

	s, err := uc.repo.GetService(ctx, id)
	if err != nil {
		return nil, err
	}

	encoded, err := imaging.Normalize(r, maxImageWidth)
	if err != nil {
		return nil, validators.NewFieldError("image", "Imagem inválida.")
	}

	key := fmt.Sprintf("services/%d-%d.webp", s.ID, time.Now().UnixNano())
	url, err := uc.images.Upload(ctx, key, imaging.ContentTypeWebP, bytes.NewReader(encoded))
	if err != nil {
		return nil, err
	}

	s.Image = url
	if err := uc.repo.UpdateService(ctx, s); err != nil {
		return nil, err
	}

	uc.record(audit.ActionServiceImage, s.ID, userID, map[string]string{"image": url})
	return s, nil
}

func (uc *ManageServices) record(action string, id, userID uint, meta any) {
	uc.audit.Dispatch(audit.Event{
		UserID:   audit.ID(userID),
		Action:   action,
		Entity:   "service",
		EntityID: audit.ID(id),
		Metadata: meta,
	})
}
