package services

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"

	"github.com/als-computing/splash-userservice/models"
)

const esafInfoPath = "EsafInformation/GetESAF/"

// esafDateFormat is the schedule date layout used by the ESAF service.
const esafDateFormat = "01/02/2006"

// ESAFClient is a client for the ALS ESAF proposal service.
type ESAFClient struct {
	client *resty.Client
}

// NewESAFClient creates an ESAFClient for the given base URL.
func NewESAFClient(baseURL string, timeout time.Duration, tlsConfig *tls.Config) *ESAFClient {
	return &ESAFClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetTLSClientConfig(tlsConfig),
	}
}

type esafPerson struct {
	ORCID string `json:"Orcid"`
}

type esafScheduledEvent struct {
	StartDate string `json:"StartDate"`
	EndDate   string `json:"EndDate"`
}

// ESAFRecord is one ESAF as reported by the ESAF service.
type ESAFRecord struct {
	EsafFriendlyID     string               `json:"EsafFriendlyId"`
	Title              string               `json:"Title"`
	ProposalFriendlyID string               `json:"ProposalFriendlyId"`
	Beamline           string               `json:"Beamline"`
	PI                 *esafPerson          `json:"PI"`
	ExpLead            *esafPerson          `json:"ExpLead"`
	Participants       []esafPerson         `json:"Participants"`
	ScheduledEvents    []esafScheduledEvent `json:"ScheduledEvents"`
}

// UserESAFs returns the ESAFs a user is associated with. Failures are logged
// and degrade to an empty list, they never fail the whole lookup.
func (c *ESAFClient) UserESAFs(ctx context.Context, orcid string) []ESAFRecord {
	logger := zerolog.Ctx(ctx)

	var esafs []ESAFRecord
	resp, err := c.client.R().
		SetContext(ctx).
		SetQueryParam("or", orcid).
		SetResult(&esafs).
		ForceContentType("application/json").
		Get(esafInfoPath)
	if err != nil || resp.IsError() {
		logger.Info().Str("orcid", orcid).Err(err).Msg("error getting user esafs")
		return nil
	}

	if len(esafs) == 0 {
		logger.Info().Str("orcid", orcid).Msg("no esafs for orcid")
		return nil
	}

	logger.Debug().Str("orcid", orcid).Int("count", len(esafs)).Msg("fetched user esafs")
	return esafs
}

// roles reports the roles the given ORCID holds on the ESAF: "pi", "explead"
// and/or "participant".
func (r *ESAFRecord) roles(orcid string) []string {
	roles := []string{}
	if r.PI != nil && r.PI.ORCID == orcid {
		roles = append(roles, "pi")
	}
	if r.ExpLead != nil && r.ExpLead.ORCID == orcid {
		roles = append(roles, "explead")
	}
	for _, participant := range r.Participants {
		if participant.ORCID == orcid {
			roles = append(roles, "participant")
			break
		}
	}
	return roles
}

// scheduleBounds returns the earliest scheduled start and latest scheduled end
// among all the date ranges in the ESAF, RFC 3339 formatted. Unparseable dates
// are skipped.
func (r *ESAFRecord) scheduleBounds() (string, string) {
	var earliest, latest *time.Time
	for _, event := range r.ScheduledEvents {
		if start, ok := parseESAFDate(event.StartDate); ok {
			if earliest == nil || start.Before(*earliest) {
				earliest = &start
			}
		}
		if end, ok := parseESAFDate(event.EndDate); ok {
			if latest == nil || end.After(*latest) {
				latest = &end
			}
		}
	}

	var earliestStart, latestEnd string
	if earliest != nil {
		earliestStart = earliest.Format(time.RFC3339)
	}
	if latest != nil {
		latestEnd = latest.Format(time.RFC3339)
	}
	return earliestStart, latestEnd
}

func (r *ESAFRecord) toV2(orcid string) models.V2UserEsaf {
	earliestStart, latestEnd := r.scheduleBounds()
	return models.V2UserEsaf{
		Roles:         r.roles(orcid),
		ID:            r.EsafFriendlyID,
		Title:         r.Title,
		ProposalID:    r.ProposalFriendlyID,
		BeamlineID:    r.Beamline,
		EarliestStart: earliestStart,
		LatestEnd:     latestEnd,
	}
}

// parseESAFDate parses an ESAF schedule date in MM/DD/YYYY form, in the
// facility's local timezone.
func parseESAFDate(s string) (time.Time, bool) {
	t, err := time.ParseInLocation(esafDateFormat, s, esafDateLocation)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
