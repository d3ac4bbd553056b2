package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/homebot/internal/common/uuid UUID

// UUID generates record IDs
type UUID interface {
	NewUUID() string
}

// DefaultUUID implements the UUID interface with time-ordered version 7 UUIDs,
// so IDs of list items and games sort by creation
type DefaultUUID struct{}

func New() *DefaultUUID {
	return &DefaultUUID{}
}

// NewUUID returns a new UUID, falling back to a random one if the clock read fails
func (d *DefaultUUID) NewUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
