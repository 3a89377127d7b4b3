package models

// V2UserEsaf summarises a single ESAF a user is associated with, including the
// roles the user holds on it.
type V2UserEsaf struct {
	// Roles the user holds in the ESAF: "pi", "explead" and/or "participant".
	Roles      []string `json:"roles"`
	ID         string   `json:"id"`
	Title      string   `json:"title,omitempty"`
	ProposalID string   `json:"proposal_id,omitempty"`
	BeamlineID string   `json:"beamline_id,omitempty"`
	// Earliest scheduled start and latest scheduled end among all the date
	// ranges in the ESAF, RFC 3339 formatted.
	EarliestStart string `json:"earliest_start,omitempty"`
	LatestEnd     string `json:"latest_end,omitempty"`
}

// V2UserGroupDetails is the v2 user response: identity fields plus the
// beamlines, proposals and ESAFs the consolidated group list was built from.
type V2UserGroupDetails struct {
	UID                *int     `json:"uid,omitempty"`
	GivenName          string   `json:"given_name,omitempty"`
	FamilyName         string   `json:"family_name,omitempty"`
	CurrentInstitution string   `json:"current_institution,omitempty"`
	CurrentEmail       string   `json:"current_email,omitempty"`
	ORCID              string   `json:"orcid"`
	// Groups is consolidated from beamlines, proposals and ESAFs.
	Groups    []string     `json:"groups"`
	Beamlines []string     `json:"beamlines"`
	Proposals []string     `json:"proposals"`
	Esafs     []V2UserEsaf `json:"esafs"`
}
