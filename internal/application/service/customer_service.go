package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/salesdesk/salesdesk-api/internal/domain/entity"
	"github.com/salesdesk/salesdesk-api/internal/domain/orderform"
	"github.com/salesdesk/salesdesk-api/internal/domain/repository"
	"github.com/salesdesk/salesdesk-api/pkg/apperror"
)

// CustomerService exposes the customer reference data
type CustomerService struct {
	customerRepo repository.CustomerRepository
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

// ListCustomers returns all customers, ordered by name
func (s *CustomerService) ListCustomers(ctx context.Context) ([]entity.Customer, error) {
	return s.customerRepo.List(ctx)
}

// GetCustomer retrieves a customer by ID
func (s *CustomerService) GetCustomer(ctx context.Context, id uuid.UUID) (*entity.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}
	return customer, nil
}

// customerViews maps customer entities into the order form's immutable view.
func customerViews(customers []entity.Customer) []orderform.Customer {
	views := make([]orderform.Customer, len(customers))
	for i, c := range customers {
		views[i] = orderform.Customer{
			ID:       c.ID.String(),
			Name:     c.Name,
			Address1: c.Address1,
			Address2: c.Address2,
			Address3: c.Address3,
			Suburb:   c.Suburb,
			State:    c.State,
			PostCode: c.PostCode,
		}
	}
	return views
}
