package actions

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zero-actions/internal/models"
)

func TestTrackingURLFor(t *testing.T) {
	tests := []struct {
		name    string
		carrier string
		number  string
		want    string
	}{
		{
			name:   "ups inferred from 1Z prefix",
			number: "1Z999AA10123456784",
			want:   "https://www.ups.com/track?tracknum=1Z999AA10123456784",
		},
		{
			name:   "usps inferred from long digit run",
			number: "9400111899223100001234",
			want:   "https://tools.usps.com/go/TrackConfirmAction?tLabels=9400111899223100001234",
		},
		{
			name:   "fedex inferred from twelve digits",
			number: "123456789012",
			want:   "https://www.fedex.com/fedextrack/?trknbr=123456789012",
		},
		{
			name:    "explicit carrier wins over shape",
			carrier: "DHL",
			number:  "1Z999AA10123456784",
			want:    "https://www.dhl.com/en/express/tracking.html?AWB=1Z999AA10123456784",
		},
		{
			name:    "unknown carrier and shape",
			carrier: "pony express",
			number:  "ABC",
			want:    "",
		},
		{
			name: "no number",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, trackingURLFor(tt.carrier, tt.number))
		})
	}
}

func TestTrackPackage_ContextURLWins(t *testing.T) {
	executor := &trackPackageExecutor{Deps{}}

	outcome, aerr := executor.Execute(context.Background(), &Request{
		UserID: "user_42",
		Card:   &models.EmailCard{ID: "card_1", Title: "Your order has shipped"},
		Action: &models.EmailAction{Type: models.ActionTrackPackage},
		Context: ShippingContext{
			Carrier:        "UPS",
			TrackingNumber: "1Z999AA10123456784",
			TrackingURL:    "https://track.example/custom",
		},
	})

	require.Nil(t, aerr)
	require.Len(t, outcome.Directives, 1)
	assert.Equal(t, "https://track.example/custom", outcome.Directives[0].URL)
	assert.Contains(t, outcome.Banner.Message, "1Z999AA10123456784")
}

func TestTrackPackage_BuildsCarrierURL(t *testing.T) {
	executor := &trackPackageExecutor{Deps{}}

	outcome, aerr := executor.Execute(context.Background(), &Request{
		UserID:  "user_42",
		Card:    &models.EmailCard{ID: "card_1", Title: "Your order has shipped"},
		Action:  &models.EmailAction{Type: models.ActionTrackPackage},
		Context: ShippingContext{TrackingNumber: "1Z999AA10123456784"},
	})

	require.Nil(t, aerr)
	assert.Equal(t, "https://www.ups.com/track?tracknum=1Z999AA10123456784", outcome.Directives[0].URL)
}

func TestTrackPackage_NumberFromCardText(t *testing.T) {
	executor := &trackPackageExecutor{Deps{}}

	outcome, aerr := executor.Execute(context.Background(), &Request{
		UserID:  "user_42",
		Card:    &models.EmailCard{ID: "card_1", Title: "Shipped", Body: "Tracking number: 1Z999AA10123456784"},
		Action:  &models.EmailAction{Type: models.ActionTrackPackage},
		Context: ShippingContext{},
	})

	require.Nil(t, aerr)
	assert.Equal(t, "https://www.ups.com/track?tracknum=1Z999AA10123456784", outcome.Directives[0].URL)
}

func TestTrackPackage_NumberWithoutKnownCarrier(t *testing.T) {
	executor := &trackPackageExecutor{Deps{}}

	outcome, aerr := executor.Execute(context.Background(), &Request{
		UserID:  "user_42",
		Card:    &models.EmailCard{ID: "card_1", Title: "Shipped"},
		Action:  &models.EmailAction{Type: models.ActionTrackPackage},
		Context: ShippingContext{Carrier: "pony express", TrackingNumber: "XY123"},
	})

	require.Nil(t, aerr)
	assert.Empty(t, outcome.Directives)
	assert.Equal(t, models.BannerWarning, outcome.Banner.Kind)
	assert.Contains(t, outcome.Banner.Message, "XY123")
}

func TestTrackPackage_NoTrackingInfo(t *testing.T) {
	executor := &trackPackageExecutor{Deps{}}

	outcome, aerr := executor.Execute(context.Background(), &Request{
		UserID:  "user_42",
		Card:    &models.EmailCard{ID: "card_1", Title: "Your order"},
		Action:  &models.EmailAction{Type: models.ActionTrackPackage},
		Context: ShippingContext{},
	})

	assert.Nil(t, outcome)
	require.NotNil(t, aerr)
	assert.Equal(t, CodeMissingContext, aerr.Code)
	assert.Equal(t, "trackingNumber", aerr.Field)
}

func TestTrackPackage_PreviewDisabledWithoutInfo(t *testing.T) {
	executor := &trackPackageExecutor{Deps{}}

	resp := executor.Preview(context.Background(), &Request{
		UserID:  "user_42",
		Card:    &models.EmailCard{ID: "card_1", Title: "Your order"},
		Action:  &models.EmailAction{Type: models.ActionTrackPackage},
		Context: ShippingContext{},
	})

	assert.True(t, resp.Disabled)
	require.Len(t, resp.Warnings, 1)
}
