package fedex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

func TestParseTrackingResponse(t *testing.T) {
	raw := fixture(t, "track_reply.xml")

	resp, err := ParseTrackingResponse(raw)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, raw, resp.XML)
	assert.Equal(t, "077973360403984", resp.TrackingNumber)
	assert.Equal(t, domain.Location{City: "NASHVILLE", State: "TN", CountryCode: "US"}, resp.Destination)

	// The Memphis scan has no postal code and is dropped.
	require.Len(t, resp.Events, 2)

	first, last := resp.Events[0], resp.Events[1]
	assert.Equal(t, "Picked up", first.Description)
	assert.Equal(t, time.Date(2026, 3, 3, 18, 20, 0, 0, time.UTC), first.Time)
	assert.Equal(t, "30303", first.Location.PostalCode)

	assert.Equal(t, "Delivered", last.Description)
	assert.Equal(t, time.Date(2026, 3, 5, 9, 12, 0, 0, time.UTC), last.Time)
	assert.Equal(t, domain.Location{City: "Nashville", State: "TN", PostalCode: "37211", CountryCode: "US"}, last.Location)

	latest, ok := resp.LatestEvent()
	require.True(t, ok)
	assert.Equal(t, "Delivered", latest.Description)
}

func TestParseTrackingResponse_EventsSortedAscending(t *testing.T) {
	raw := `<TrackReply><Notifications><Severity>SUCCESS</Severity></Notifications><TrackDetails>` +
		event("c", "2026-01-03T00:00:00") + event("a", "2026-01-01 00:00:00") + event("b", "2026-01-02T00:00:00+09:00") +
		`</TrackDetails></TrackReply>`

	resp, err := ParseTrackingResponse(raw)
	require.NoError(t, err)

	require.Len(t, resp.Events, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, resp.Events[i].Description)
		assert.Equal(t, time.UTC, resp.Events[i].Time.Location())
	}
}

func TestParseTrackingResponse_SkipsEventsWithoutAddress(t *testing.T) {
	raw := `<TrackReply><Notifications><Severity>SUCCESS</Severity></Notifications><TrackDetails>` +
		`<Events><Timestamp>2026-01-01T00:00:00</Timestamp><EventDescription>internal</EventDescription></Events>` +
		`<Events><Timestamp>2026-01-01T00:00:00</Timestamp><Address><PostalCode>1</PostalCode></Address></Events>` +
		event("kept", "2026-01-02T00:00:00") +
		`</TrackDetails></TrackReply>`

	resp, err := ParseTrackingResponse(raw)
	require.NoError(t, err)
	require.Len(t, resp.Events, 1)
	assert.Equal(t, "kept", resp.Events[0].Description)
}

func TestParseTrackingResponse_NotFound(t *testing.T) {
	resp, err := ParseTrackingResponse(fixture(t, "track_reply_not_found.xml"))
	require.NoError(t, err)

	assert.False(t, resp.Success)
	assert.Equal(t, "ERROR - 6035: Invalid tracking numbers.   Please check the following numbers and resubmit.", resp.Message)
	assert.Empty(t, resp.TrackingNumber)
	assert.Empty(t, resp.Events)

	_, ok := resp.LatestEvent()
	assert.False(t, ok)
}

func TestParseTrackingResponse_BadResponse(t *testing.T) {
	cases := map[string]string{
		"wrong root":        `<RateReply/>`,
		"missing details":   `<TrackReply><Notifications><Severity>SUCCESS</Severity></Notifications></TrackReply>`,
		"unknown timestamp": `<TrackReply><Notifications><Severity>SUCCESS</Severity></Notifications><TrackDetails>` + event("x", "yesterday") + `</TrackDetails></TrackReply>`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseTrackingResponse(raw)
			assert.ErrorIs(t, err, domain.ErrBadResponse)
		})
	}
}

func event(description, timestamp string) string {
	return `<Events><Timestamp>` + timestamp + `</Timestamp><EventDescription>` + description + `</EventDescription>` +
		`<Address><City>Memphis</City><PostalCode>38118</PostalCode><CountryCode>US</CountryCode></Address></Events>`
}
