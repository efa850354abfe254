package service

import (
	"context"
	"strings"

	"github.com/campus-events/backend/apperr"
	"github.com/campus-events/backend/entity"
	"github.com/campus-events/backend/repository"
)

type OrganizationService struct {
	organizationRepository *repository.OrganizationRepository
}

func NewOrganizationService(organizationRepository *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{organizationRepository: organizationRepository}
}

type CreateOrganizationInput struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Website       string `json:"website"`
	ContactPerson string `json:"contactPerson"`
}

func (s *OrganizationService) Create(ctx context.Context, input CreateOrganizationInput) (*entity.Organization, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return nil, apperr.Validation("organization name is required")
	}

	return s.organizationRepository.InsertOne(ctx, &entity.Organization{
		Name:          input.Name,
		Email:         normalizeEmail(input.Email),
		Phone:         input.Phone,
		Website:       input.Website,
		ContactPerson: input.ContactPerson,
	})
}

func (s *OrganizationService) ListAll(ctx context.Context) ([]*entity.Organization, error) {
	return s.organizationRepository.FindAll(ctx)
}
