package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestESAFRecordRoles(t *testing.T) {
	record := ESAFRecord{
		PI:      &esafPerson{ORCID: "orcid-pi"},
		ExpLead: &esafPerson{ORCID: "orcid-lead"},
		Participants: []esafPerson{
			{ORCID: "orcid-a"},
			{ORCID: "orcid-pi"},
		},
	}

	assert.Equal(t, []string{"pi", "participant"}, record.roles("orcid-pi"))
	assert.Equal(t, []string{"explead"}, record.roles("orcid-lead"))
	assert.Equal(t, []string{"participant"}, record.roles("orcid-a"))
	assert.Empty(t, record.roles("orcid-z"))
}

func TestScheduleBounds(t *testing.T) {
	record := ESAFRecord{
		ScheduledEvents: []esafScheduledEvent{
			{StartDate: "03/15/2024", EndDate: "03/17/2024"},
			{StartDate: "02/01/2024", EndDate: "02/02/2024"},
			{StartDate: "garbage", EndDate: "13/45/2024"},
			{StartDate: "", EndDate: ""},
		},
	}

	earliest, latest := record.scheduleBounds()

	want, ok := parseESAFDate("02/01/2024")
	require.True(t, ok)
	assert.Equal(t, want.Format(time.RFC3339), earliest)

	want, ok = parseESAFDate("03/17/2024")
	require.True(t, ok)
	assert.Equal(t, want.Format(time.RFC3339), latest)
}

func TestScheduleBounds_NoEvents(t *testing.T) {
	record := ESAFRecord{}
	earliest, latest := record.scheduleBounds()
	assert.Empty(t, earliest)
	assert.Empty(t, latest)
}

func TestParseESAFDate(t *testing.T) {
	parsed, ok := parseESAFDate("01/15/2024")
	require.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, time.January, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, esafDateLocation, parsed.Location())

	_, ok = parseESAFDate("2024-01-15")
	assert.False(t, ok)

	_, ok = parseESAFDate("")
	assert.False(t, ok)
}
