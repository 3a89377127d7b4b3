package models

// UniqueID is an identifier a user is known by in some external system.
type UniqueID struct {
	ID     string `json:"id"`
	Source string `json:"source,omitempty"` // e.g. "ORCID"
}

// User represents a user in the common facility model.
type User struct {
	UID                string     `json:"uid"`
	Authenticators     []UniqueID `json:"authenticators,omitempty"`
	GivenName          string     `json:"given_name,omitempty"`
	FamilyName         string     `json:"family_name,omitempty"`
	CurrentInstitution string     `json:"current_institution,omitempty"`
	CurrentEmail       string     `json:"current_email,omitempty"`
	Groups             []string   `json:"groups"`
	ORCID              string     `json:"orcid"`
}

// AccessGroup represents a named collection of users.
type AccessGroup struct {
	UID     string     `json:"uid"`
	Name    string     `json:"name"`
	Members []UniqueID `json:"members,omitempty"`
}
