package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sametkarakasoglu-wq/filoooo-web/internal/domain"
	"github.com/sametkarakasoglu-wq/filoooo-web/internal/repository"
)

type customerService struct {
	tx         repository.Tx
	customers  repository.CustomerRepository
	rentals    repository.RentalRepository
	activities repository.ActivityRepository
	now        func() time.Time
}

func NewCustomerService(
	tx repository.Tx,
	customers repository.CustomerRepository,
	rentals repository.RentalRepository,
	activities repository.ActivityRepository,
) CustomerService {
	return &customerService{
		tx:         tx,
		customers:  customers,
		rentals:    rentals,
		activities: activities,
		now:        time.Now,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return nil, errors.New("customer name is required")
	}
	err := s.tx.Atomic(func() error {
		return createCustomerLocked(ctx, s.customers, s.activities, c, s.now())
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// createCustomerLocked adds a customer and its activity entry. It is shared
// with the check-out flow, which registers a new customer inside the same
// transition as the rental itself.
func createCustomerLocked(
	ctx context.Context,
	customers repository.CustomerRepository,
	activities repository.ActivityRepository,
	c *domain.Customer,
	now time.Time,
) error {
	if err := customers.Create(ctx, c); err != nil {
		return err
	}
	return activities.Append(ctx, domain.Activity{
		Icon:    "fa-user-plus",
		Message: fmt.Sprintf("<strong>%s</strong> adında yeni müşteri kaydedildi.", c.Name),
		Time:    now,
	})
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	var c *domain.Customer
	var err error
	s.tx.View(func() {
		c, err = s.customers.GetByID(ctx, id)
	})
	return c, err
}

func (s *customerService) UpdateCustomer(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	err := s.tx.Atomic(func() error {
		if _, err := s.customers.GetByID(ctx, c.ID); err != nil {
			return err
		}
		return s.customers.Update(ctx, c)
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	return s.tx.Atomic(func() error {
		return s.customers.Delete(ctx, id)
	})
}

func (s *customerService) ListCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	var out []domain.Customer
	var err error
	s.tx.View(func() {
		var all []domain.Customer
		all, err = s.customers.List(ctx)
		if err != nil {
			return
		}
		q := strings.ToLower(strings.TrimSpace(query))
		for _, c := range all {
			if q != "" && !strings.Contains(strings.ToLower(c.Name), q) &&
				!strings.Contains(c.Phone, q) && !strings.Contains(c.NationalID, q) {
				continue
			}
			out = append(out, c)
		}
	})
	return out, err
}

func (s *customerService) RentalHistory(ctx context.Context, customerID int64) ([]domain.RentalSummary, error) {
	var out []domain.RentalSummary
	var err error
	s.tx.View(func() {
		if _, err = s.customers.GetByID(ctx, customerID); err != nil {
			return
		}
		var rentals []domain.Rental
		rentals, err = s.rentals.ListByCustomer(ctx, customerID)
		if err != nil {
			return
		}
		for _, r := range rentals {
			out = append(out, domain.RentalSummary{
				Plate:  r.VehiclePlate,
				Date:   r.StartDate,
				Status: string(r.Status),
			})
		}
	})
	return out, err
}
