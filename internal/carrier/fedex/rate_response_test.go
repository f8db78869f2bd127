package fedex

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/99minutos/carrier-gateway/internal/core/domain"
)

func TestParseRateResponse(t *testing.T) {
	shipment := usShipment(t)
	raw := fixture(t, "rate_reply.xml")

	resp, err := ParseRateResponse(raw, shipment)
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "SUCCESS - 0: Request was successfully processed.", resp.Message)
	assert.Equal(t, raw, resp.XML)
	require.Len(t, resp.Rates, 3)

	standard := resp.Rates[0]
	assert.Equal(t, CarrierName, standard.Carrier)
	assert.Equal(t, "FEDEX_2_DAY", standard.ServiceCode)
	assert.Equal(t, "FEDEX_2_DAY", standard.ServiceType)
	assert.Equal(t, "FedEx 2 Day", standard.ServiceName)
	assert.Equal(t, 23.45, standard.TotalPrice)
	assert.Equal(t, "USD", standard.Currency)
	assert.Equal(t, time.Date(2026, 3, 6, 16, 30, 0, 0, time.UTC), standard.DeliveryDate)
	assert.Equal(t, shipment.Origin, standard.Origin)
	assert.Equal(t, shipment.Destination, standard.Destination)
	assert.Equal(t, shipment.Packages, standard.Packages)

	saturday := resp.Rates[1]
	assert.Equal(t, "FEDEX_2_DAY", saturday.ServiceCode)
	assert.Equal(t, "FEDEX_2_DAY_SATURDAY_DELIVERY", saturday.ServiceType)
	assert.Equal(t, "FedEx 2 Day Saturday Delivery", saturday.ServiceName)
	assert.Equal(t, 38.10, saturday.TotalPrice)

	future := resp.Rates[2]
	assert.Equal(t, "FedEx Future Service", future.ServiceName)
	assert.True(t, future.DeliveryDate.IsZero())
}

func TestParseRateResponse_NoRates(t *testing.T) {
	t.Run("carrier error message is kept", func(t *testing.T) {
		resp, err := ParseRateResponse(fixture(t, "rate_reply_no_rates.xml"), usShipment(t))
		require.NoError(t, err)

		assert.False(t, resp.Success)
		assert.Equal(t, "ERROR - 556: There are no valid services available.", resp.Message)
		assert.Empty(t, resp.Rates)
	})

	t.Run("successful reply without details", func(t *testing.T) {
		raw := `<RateReply><Notifications><Severity>NOTE</Severity><Code>1</Code><Message>ok</Message></Notifications></RateReply>`
		resp, err := ParseRateResponse(raw, usShipment(t))
		require.NoError(t, err)

		assert.False(t, resp.Success)
		assert.Equal(t, "NOTE - 1: ok", resp.Message)
	})

	t.Run("no notifications either", func(t *testing.T) {
		resp, err := ParseRateResponse(`<RateReply/>`, usShipment(t))
		require.NoError(t, err)

		assert.False(t, resp.Success)
		assert.Equal(t, NoRatesMessage, resp.Message)
	})
}

func TestParseRateResponse_WarningIsSuccess(t *testing.T) {
	raw := `<ns:RateReply xmlns:ns="x"><ns:Notifications><ns:Severity>WARNING</ns:Severity><ns:Code>7</ns:Code><ns:Message>w</ns:Message></ns:Notifications>` +
		`<ns:RateReplyDetails><ns:ServiceType>FEDEX_GROUND</ns:ServiceType></ns:RateReplyDetails></ns:RateReply>`

	resp, err := ParseRateResponse(raw, usShipment(t))
	require.NoError(t, err)

	assert.True(t, resp.Success)
	require.Len(t, resp.Rates, 1)
	assert.Equal(t, "FedEx Ground", resp.Rates[0].ServiceName)
	assert.Zero(t, resp.Rates[0].TotalPrice)
}

func TestParseRateResponse_BadResponse(t *testing.T) {
	cases := map[string]string{
		"not xml":     "<RateReply><unclosed></RateReply>",
		"empty":       "",
		"wrong root":  `<TrackReply/>`,
		"bad amount":  `<RateReply><RateReplyDetails><ServiceType>FEDEX_GROUND</ServiceType><RatedShipmentDetails><ShipmentRateDetail><TotalNetCharge><Amount>lots</Amount></TotalNetCharge></ShipmentRateDetail></RatedShipmentDetails></RateReplyDetails></RateReply>`,
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			resp, err := ParseRateResponse(raw, usShipment(t))
			assert.ErrorIs(t, err, domain.ErrBadResponse)
			assert.Nil(t, resp)
		})
	}
}

// A request built for a shipment and a reply rating exactly one service
// yield exactly one estimate for that service.
func TestRateRoundTrip(t *testing.T) {
	shipment := usShipment(t)
	req, err := BuildRateRequest(testCreds, shipment, domain.RequestOptions{}, shipTime)
	require.NoError(t, err)
	require.NotEmpty(t, req)

	reply := fmt.Sprintf(`<v6:RateReply xmlns:v6=%q>`+
		`<v6:Notifications><v6:Severity>SUCCESS</v6:Severity><v6:Code>0</v6:Code><v6:Message>ok</v6:Message></v6:Notifications>`+
		`<v6:RateReplyDetails><v6:ServiceType>PRIORITY_OVERNIGHT</v6:ServiceType>`+
		`<v6:RatedShipmentDetails><v6:ShipmentRateDetail><v6:TotalNetCharge><v6:Currency>USD</v6:Currency><v6:Amount>61.07</v6:Amount></v6:TotalNetCharge></v6:ShipmentRateDetail></v6:RatedShipmentDetails>`+
		`</v6:RateReplyDetails></v6:RateReply>`, rateNamespace)

	resp, err := ParseRateResponse(reply, shipment)
	require.NoError(t, err)
	require.Len(t, resp.Rates, 1)
	assert.Equal(t, "PRIORITY_OVERNIGHT", resp.Rates[0].ServiceCode)
	assert.Equal(t, ServiceTypes["PRIORITY_OVERNIGHT"], resp.Rates[0].ServiceName)
	assert.Equal(t, 61.07, resp.Rates[0].TotalPrice)
}
