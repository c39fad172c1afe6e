package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "fatura/internal/errors"
	"fatura/internal/models"
)

// billingTypeService handles billing-type business logic.
type billingTypeService struct {
	db *gorm.DB
}

// NewBillingTypeService creates a new BillingTypeServicer.
func NewBillingTypeService(db *gorm.DB) BillingTypeServicer {
	return &billingTypeService{db: db}
}

// CreateBillingType creates a new billing type.
func (s *billingTypeService) CreateBillingType(name string) (*models.BillingType, error) {
	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "billing type name is required")
	}

	billingType := &models.BillingType{Name: name}
	if err := s.db.Create(billingType).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return billingType, nil
}

// ListBillingTypes retrieves all billing types.
func (s *billingTypeService) ListBillingTypes() ([]models.BillingType, error) {
	var billingTypes []models.BillingType
	if err := s.db.Find(&billingTypes).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return billingTypes, nil
}

// GetBillingTypeByID retrieves a billing type by ID.
func (s *billingTypeService) GetBillingTypeByID(id string) (*models.BillingType, error) {
	var billingType models.BillingType
	if err := s.db.Where("id = ?", id).First(&billingType).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBillingTypeNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &billingType, nil
}

// UpdateBillingType renames an existing billing type.
func (s *billingTypeService) UpdateBillingType(id, name string) (*models.BillingType, error) {
	billingType, err := s.GetBillingTypeByID(id)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(name) == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "billing type name is required")
	}

	if err := s.db.Model(billingType).Update("name", name).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return billingType, nil
}

// DeleteBillingType soft-deletes a billing type. Invoices keep their
// billing_type_id reference for historical records.
func (s *billingTypeService) DeleteBillingType(id string) error {
	billingType, err := s.GetBillingTypeByID(id)
	if err != nil {
		return err
	}

	if err := s.db.Delete(billingType).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
