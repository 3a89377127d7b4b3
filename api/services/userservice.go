package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/als-computing/splash-userservice/models"
)

// IDType selects which identifier a user lookup is keyed on.
type IDType string

const (
	IDTypeORCID IDType = "orcid"
	IDTypeEmail IDType = "email"
)

// ParseIDType maps the wire value of an id_type parameter onto an IDType.
func ParseIDType(s string) (IDType, error) {
	switch strings.ToLower(s) {
	case string(IDTypeORCID):
		return IDTypeORCID, nil
	case string(IDTypeEmail):
		return IDTypeEmail, nil
	default:
		return "", fmt.Errorf("invalid id type %q, must be 'orcid' or 'email'", s)
	}
}

// UserNotFoundError is returned when the facility identity service does not
// know the requested identifier.
type UserNotFoundError struct {
	ID string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user %s not found", e.ID)
}

// CommunicationError is returned when a facility service could not be reached
// or answered with an unexpected status.
type CommunicationError struct {
	Message string
	Err     error
}

func (e *CommunicationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *CommunicationError) Unwrap() error {
	return e.Err
}

// UserService is the common interface facility-specific backends implement.
type UserService interface {
	// GetUser returns a user looked up by ORCID or email. When fetchGroups is
	// set, the user's group list is populated from beamline roles, proposals
	// and ESAFs.
	GetUser(ctx context.Context, id string, idType IDType, fetchGroups bool) (*models.User, error)

	// GetUserGroupDetails returns the v2 view of a user: the consolidated
	// group list plus the beamlines, proposals and ESAFs it was derived from.
	GetUserGroupDetails(ctx context.Context, orcid string) (*models.V2UserGroupDetails, error)
}
