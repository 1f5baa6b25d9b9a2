package service

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyServiceName    = errors.New("service name cannot be empty")
	ErrServiceNameTooLong  = errors.New("service name is too long (max 255 characters)")
	ErrNonPositiveDuration = errors.New("service duration must be positive")
	ErrNegativePrice       = errors.New("service price cannot be negative")
)

const (
	MaxServiceNameLength = 255
)

// Service is a fixed-duration offering from a tenant's catalog. The duration
// is the sole driver of an appointment's end time.
type Service struct {
	id              uuid.UUID
	tenantID        uuid.UUID
	name            string
	durationMinutes int
	priceCents      int64
	category        string
	active          bool
}

func NewService(id, tenantID uuid.UUID, name string, durationMinutes int, priceCents int64, category string, active bool) (*Service, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyServiceName
	}
	if len(name) > MaxServiceNameLength {
		return nil, ErrServiceNameTooLong
	}
	if durationMinutes <= 0 {
		return nil, ErrNonPositiveDuration
	}
	if priceCents < 0 {
		return nil, ErrNegativePrice
	}

	return &Service{
		id:              id,
		tenantID:        tenantID,
		name:            name,
		durationMinutes: durationMinutes,
		priceCents:      priceCents,
		category:        category,
		active:          active,
	}, nil
}

func (s *Service) ID() uuid.UUID        { return s.id }
func (s *Service) TenantID() uuid.UUID  { return s.tenantID }
func (s *Service) Name() string         { return s.name }
func (s *Service) DurationMinutes() int { return s.durationMinutes }
func (s *Service) PriceCents() int64    { return s.priceCents }
func (s *Service) Category() string     { return s.category }
func (s *Service) Active() bool         { return s.active }
