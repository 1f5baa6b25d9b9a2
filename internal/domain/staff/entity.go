package staff

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyStaffName   = errors.New("staff name cannot be empty")
	ErrStaffNameTooLong = errors.New("staff name is too long (max 255 characters)")
)

const (
	MaxStaffNameLength = 255
)

// Staff is a bookable member of a tenant with a set of assigned services.
// A staff member may only be booked for a service present in that set.
type Staff struct {
	id         uuid.UUID
	tenantID   uuid.UUID
	name       string
	email      *string
	phone      *string
	active     bool
	serviceIDs map[uuid.UUID]struct{}
}

func NewStaff(id, tenantID uuid.UUID, name string, email, phone *string, active bool, serviceIDs []uuid.UUID) (*Staff, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyStaffName
	}
	if len(name) > MaxStaffNameLength {
		return nil, ErrStaffNameTooLong
	}

	assigned := make(map[uuid.UUID]struct{}, len(serviceIDs))
	for _, sid := range serviceIDs {
		assigned[sid] = struct{}{}
	}

	return &Staff{
		id:         id,
		tenantID:   tenantID,
		name:       name,
		email:      email,
		phone:      phone,
		active:     active,
		serviceIDs: assigned,
	}, nil
}

func (s *Staff) ProvidesService(serviceID uuid.UUID) bool {
	_, ok := s.serviceIDs[serviceID]
	return ok
}

func (s *Staff) ID() uuid.UUID       { return s.id }
func (s *Staff) TenantID() uuid.UUID { return s.tenantID }
func (s *Staff) Name() string        { return s.name }
func (s *Staff) Email() *string      { return s.email }
func (s *Staff) Phone() *string      { return s.phone }
func (s *Staff) Active() bool        { return s.active }
