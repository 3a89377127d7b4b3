package services

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/als-computing/splash-userservice/internal/appconfig"
	"github.com/als-computing/splash-userservice/models"
)

// ALSHub endpoint paths. The query string carries the identifier, e.g.
// ALSGetPerson/?or=<orcid> or ALSGetPerson/?em=<email>.
const (
	alshubPersonPath      = "ALSGetPerson/"
	alshubProposalsByPath = "ALSGetProposalsBy/"
	alshubPersonRolesPath = "ALSGetPersonRoles/"
)

// ALSHubService implements UserService backed by HTTP calls to the ALSHub
// identity service and the ALS ESAF proposal service.
type ALSHubService struct {
	alshub        *resty.Client
	esaf          *ESAFClient
	approvalRoles []string

	// admins grants beamline groups by email for users not maintained in
	// ALSHub.
	admins map[string][]string
}

// NewALSHubService creates an ALSHubService from configuration.
func NewALSHubService(cfg *appconfig.Config) *ALSHubService {
	tlsConfig := &tls.Config{InsecureSkipVerify: !cfg.TLSVerify}

	alshub := resty.New().
		SetBaseURL(cfg.ALSHub.URL).
		SetTimeout(cfg.RequestTimeout()).
		SetTLSClientConfig(tlsConfig)

	return &ALSHubService{
		alshub:        alshub,
		esaf:          NewESAFClient(cfg.ESAF.URL, cfg.RequestTimeout(), tlsConfig),
		approvalRoles: cfg.ApprovalRoles,
		admins:        cfg.BeamlineAdmins,
	}
}

// alshubPerson is the ALSGetPerson response.
type alshubPerson struct {
	LBNLID      string `json:"LBNLID"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Institution string `json:"Institution"`
	OrgEmail    string `json:"OrgEmail"`
	ORCID       string `json:"orcid"`
}

// alshubProposals is the ALSGetProposalsBy response.
type alshubProposals struct {
	Proposals []string `json:"Proposals"`
}

// alshubPersonRoles is the ALSGetPersonRoles response. Beamline roles arrive
// as a list of single-key objects mapping a beamline id to the role names the
// user holds on that beamline.
type alshubPersonRoles struct {
	BeamlineRoles []map[string][]string `json:"Beamline Roles"`
}

// GetUser returns a user from ALSHub. Makes several calls to ALSHub to
// assemble user info, beamline membership and proposals, which are used to
// populate group names.
func (s *ALSHubService) GetUser(ctx context.Context, id string, idType IDType, fetchGroups bool) (*models.User, error) {
	logger := zerolog.Ctx(ctx)

	person, err := s.fetchPerson(ctx, id, idType)
	if err != nil {
		return nil, err
	}

	orcid := person.ORCID
	if idType == IDTypeORCID {
		orcid = id
	}

	groups := make(map[string]struct{})
	if orcid != "" {
		for _, beamline := range s.staffBeamlines(ctx, orcid, person.OrgEmail) {
			groups[beamline] = struct{}{}
		}
	}

	user := &models.User{
		UID:                person.LBNLID,
		GivenName:          person.FirstName,
		FamilyName:         person.LastName,
		CurrentInstitution: person.Institution,
		CurrentEmail:       person.OrgEmail,
		ORCID:              person.ORCID,
	}

	if !fetchGroups {
		return user, nil
	}

	if orcid == "" {
		logger.Warn().Str("id", id).Msg("asked to fetch groups but ALSHub returned no ORCID for user")
	} else {
		for _, proposal := range s.userProposals(ctx, orcid) {
			groups[proposal] = struct{}{}
		}
		for _, esaf := range s.esaf.UserESAFs(ctx, orcid) {
			if esaf.ProposalFriendlyID != "" {
				groups[esaf.ProposalFriendlyID] = struct{}{}
			}
		}
	}

	user.Groups = sortedKeys(groups)
	return user, nil
}

// GetUserGroupDetails returns the v2 view of a user: group names consolidated
// from beamlines, proposals and ESAFs, plus each of those lists and per-ESAF
// roles and schedule bounds.
func (s *ALSHubService) GetUserGroupDetails(ctx context.Context, orcid string) (*models.V2UserGroupDetails, error) {
	person, err := s.fetchPerson(ctx, orcid, IDTypeORCID)
	if err != nil {
		return nil, err
	}

	beamlines := s.staffBeamlines(ctx, orcid, person.OrgEmail)
	proposals := s.userProposals(ctx, orcid)

	groups := make(map[string]struct{})
	for _, beamline := range beamlines {
		groups[beamline] = struct{}{}
	}
	for _, proposal := range proposals {
		groups[proposal] = struct{}{}
	}

	esafs := []models.V2UserEsaf{}
	for _, record := range s.esaf.UserESAFs(ctx, orcid) {
		if record.ProposalFriendlyID != "" {
			groups[record.ProposalFriendlyID] = struct{}{}
		}
		esafs = append(esafs, record.toV2(orcid))
	}

	details := &models.V2UserGroupDetails{
		GivenName:          person.FirstName,
		FamilyName:         person.LastName,
		CurrentInstitution: person.Institution,
		CurrentEmail:       person.OrgEmail,
		ORCID:              orcid,
		Groups:             sortedKeys(groups),
		Beamlines:          beamlines,
		Proposals:          proposals,
		Esafs:              esafs,
	}

	if uid, err := strconv.Atoi(person.LBNLID); err == nil {
		details.UID = &uid
	}

	return details, nil
}

// fetchPerson queries ALSGetPerson by ORCID or email. A 404 means the user is
// unknown; any other failure is a communication error.
func (s *ALSHubService) fetchPerson(ctx context.Context, id string, idType IDType) (*alshubPerson, error) {
	logger := zerolog.Ctx(ctx)

	queryParam := "or"
	if idType == IDTypeEmail {
		queryParam = "em"
	}

	// The facility services do not reliably label responses as JSON, so the
	// body is decoded regardless of Content-Type.
	var person alshubPerson
	resp, err := s.alshub.R().
		SetContext(ctx).
		SetQueryParam(queryParam, id).
		SetResult(&person).
		ForceContentType("application/json").
		Get(alshubPersonPath)
	if err != nil {
		return nil, &CommunicationError{Message: fmt.Sprintf("exception talking to %s", alshubPersonPath), Err: err}
	}

	logger.Debug().Str("url", resp.Request.URL).Int("status", resp.StatusCode()).Msg("queried ALSHub for person")

	if resp.StatusCode() == http.StatusNotFound {
		return nil, &UserNotFoundError{ID: id}
	}
	if resp.IsError() {
		err := &CommunicationError{Message: fmt.Sprintf(
			"error getting user %s, status code: %d, message: %s", id, resp.StatusCode(), resp.String())}
		logger.Error().Msg(err.Error())
		return nil, err
	}

	return &person, nil
}

// staffBeamlines returns the beamlines a user is considered staff on: those
// where ALSHub reports an approval role, plus any configured admin grants for
// the user's email. Failures talking to ALSHub degrade to the admin grants.
func (s *ALSHubService) staffBeamlines(ctx context.Context, orcid, email string) []string {
	logger := zerolog.Ctx(ctx)

	beamlines := make(map[string]struct{})
	if email != "" {
		for _, beamline := range s.admins[email] {
			beamlines[beamline] = struct{}{}
		}
	}

	var roles alshubPersonRoles
	resp, err := s.alshub.R().
		SetContext(ctx).
		SetQueryParam("or", orcid).
		SetResult(&roles).
		ForceContentType("application/json").
		Get(alshubPersonRolesPath)
	if err != nil || resp.IsError() {
		logger.Info().Str("orcid", orcid).Err(err).Msg("error asking ALSHub for staff roles")
		return sortedKeys(beamlines)
	}

	for _, beamline := range rolesToBeamlines(roles.BeamlineRoles, s.approvalRoles) {
		beamlines[beamline] = struct{}{}
	}
	return sortedKeys(beamlines)
}

// userProposals returns the proposal ids a user is associated with. Failures
// are logged and degrade to an empty list, they never fail the whole lookup.
func (s *ALSHubService) userProposals(ctx context.Context, orcid string) []string {
	logger := zerolog.Ctx(ctx)

	var proposals alshubProposals
	resp, err := s.alshub.R().
		SetContext(ctx).
		SetQueryParam("or", orcid).
		SetResult(&proposals).
		ForceContentType("application/json").
		Get(alshubProposalsByPath)
	if err != nil || resp.IsError() {
		logger.Info().Str("orcid", orcid).Err(err).Msg("error getting user proposals")
		return []string{}
	}

	if len(proposals.Proposals) == 0 {
		logger.Info().Str("orcid", orcid).Msg("no proposals for orcid")
		return []string{}
	}

	logger.Info().Str("orcid", orcid).Strs("proposals", proposals.Proposals).Msg("fetched user proposals")
	return proposals.Proposals
}

// rolesToBeamlines reports the beamlines where the user holds one of the
// approval roles. ALSHub reports each beamline as a single-key object mapping
// the beamline id to the user's role names on it.
func rolesToBeamlines(beamlineRoles []map[string][]string, approvalRoles []string) []string {
	var accessible []string
	for _, beamlineRole := range beamlineRoles {
		for beamlineID, roles := range beamlineRole {
			if len(lo.Intersect(roles, approvalRoles)) > 0 {
				accessible = append(accessible, beamlineID)
			}
		}
	}
	return accessible
}

func sortedKeys(set map[string]struct{}) []string {
	keys := lo.Keys(set)
	sort.Strings(keys)
	return keys
}

var _ UserService = (*ALSHubService)(nil)

// esafDateLocation is the timezone ESAF schedule dates are expressed in.
var esafDateLocation = loadESAFLocation()

func loadESAFLocation() *time.Location {
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		return time.UTC
	}
	return loc
}
