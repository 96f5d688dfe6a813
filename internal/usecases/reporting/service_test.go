package reporting

import (
	"context"
	"testing"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/newsletter-api/infrastructure/cache"
	mailchimpdomain "github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/mocks"
	"github.com/vfg2006/newsletter-api/internal/config"
	"github.com/vfg2006/newsletter-api/internal/domain"
	"github.com/vfg2006/newsletter-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func setupService(t *testing.T, ttl time.Duration) (*mocks.MockMailchimpIntegrator, ReportingService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockMailchimpIntegrator(ctrl)

	cfg := &config.Config{Cache: config.Cache{MetricsTTL: ttl}}
	return integrator, NewService(cfg, integrator, cache.NewMemoryCache())
}

func assertReportingError(t *testing.T, err error, code, details string, base error) {
	t.Helper()

	var reportingErr *ReportingError
	require.True(t, errors.As(err, &reportingErr), "expected *ReportingError, got %v", err)
	assert.Equal(t, code, reportingErr.Code)
	assert.Equal(t, details, reportingErr.Details)
	assert.ErrorIs(t, err, base)
}

func sentAt(day int) time.Time {
	return time.Date(2024, 3, day, 10, 0, 0, 0, time.UTC)
}

func TestGetAdminMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("agrega e usa o cache", func(t *testing.T) {
		integrator, svc := setupService(t, 5*time.Minute)

		integrator.EXPECT().GetSubscriberCount(gomock.Any()).Return(1200, nil).Times(1)
		integrator.EXPECT().GetCampaignReports(gomock.Any()).Return([]domain.RawCampaign{
			{ID: "a", Title: "Issue A", SendTime: sentAt(1), EmailsSent: 100, OpenRate: 0.5, ClickRate: 0.1},
			{ID: "b", Title: "Issue B", SendTime: sentAt(2), EmailsSent: 300, OpenRate: 0.2, ClickRate: 0.05},
			{ID: "a2", Title: "Issue A ", SendTime: sentAt(3), EmailsSent: 999, OpenRate: 1, ClickRate: 1},
		}, nil).Times(1)

		for i := 0; i < 2; i++ {
			metrics, err := svc.GetAdminMetrics(ctx)
			require.NoError(t, err)

			assert.Equal(t, 1200, metrics.SubscriberCount)
			assert.Equal(t, 2, metrics.PublishedNewsletterCount)
			require.Len(t, metrics.Campaigns, 2)
			assert.Equal(t, "b", metrics.Campaigns[0].ID)
			assert.Equal(t, "a", metrics.Campaigns[1].ID)
			assert.InDelta(t, 27.5, metrics.TotalOpenRate, 1e-9)
			assert.InDelta(t, 6.25, metrics.TotalClickRate, 1e-9)
		}
	})

	t.Run("erro do mailchimp zera a entrada", func(t *testing.T) {
		integrator, svc := setupService(t, 0)

		integrator.EXPECT().GetSubscriberCount(gomock.Any()).Return(0, &mailchimpdomain.Error{Title: "Resource Not Found", Status: 404})
		integrator.EXPECT().GetCampaignReports(gomock.Any()).Return(nil, &mailchimpdomain.Error{Title: "Internal Server Error", Status: 500})

		metrics, err := svc.GetAdminMetrics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, metrics.SubscriberCount)
		assert.Equal(t, 0, metrics.PublishedNewsletterCount)
		assert.NotNil(t, metrics.Campaigns)
		assert.Empty(t, metrics.Campaigns)
		assert.Zero(t, metrics.TotalOpenRate)
		assert.Zero(t, metrics.TotalClickRate)
	})

	t.Run("falha de rede interrompe", func(t *testing.T) {
		integrator, svc := setupService(t, 0)

		integrator.EXPECT().GetSubscriberCount(gomock.Any()).Return(10, nil)
		integrator.EXPECT().GetCampaignReports(gomock.Any()).Return(nil, errors.New("connection reset by peer"))

		metrics, err := svc.GetAdminMetrics(ctx)
		assert.Nil(t, metrics)
		assertReportingError(t, err, apiErrors.ErrInternalServer, "Failed to retrieve admin metrics.", ErrCommunication)
	})

	t.Run("configuração ausente", func(t *testing.T) {
		integrator, svc := setupService(t, 0)

		integrator.EXPECT().GetSubscriberCount(gomock.Any()).Return(0, config.ErrMissingAPIKey)

		_, err := svc.GetAdminMetrics(ctx)
		assertReportingError(t, err, apiErrors.ErrConfiguration, "Server configuration error: Missing Mailchimp API keys.", ErrConfiguration)
	})

	t.Run("api key com formato inválido", func(t *testing.T) {
		integrator, svc := setupService(t, 0)

		integrator.EXPECT().GetSubscriberCount(gomock.Any()).Return(0, config.ErrInvalidAPIKey)

		_, err := svc.GetAdminMetrics(ctx)
		assertReportingError(t, err, apiErrors.ErrConfiguration, "Server configuration error: Invalid Mailchimp API key format.", ErrConfiguration)
	})
}

func TestGetAdminMetrics_CachedResponseKeepsUTC(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("BRT", -3*60*60)
	t.Cleanup(func() { time.Local = local })

	integrator, svc := setupService(t, 5*time.Minute)
	integrator.EXPECT().GetSubscriberCount(gomock.Any()).Return(10, nil).Times(1)
	integrator.EXPECT().GetCampaignReports(gomock.Any()).Return([]domain.RawCampaign{
		{ID: "a", Title: "A", SendTime: sentAt(1), EmailsSent: 10, OpenRate: 0.5},
		{ID: "b", Title: "B", EmailsSent: 10, OpenRate: 0.5},
	}, nil).Times(1)

	json := jsoniter.ConfigCompatibleWithStandardLibrary

	first, err := svc.GetAdminMetrics(context.Background())
	require.NoError(t, err)
	uncached, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := svc.GetAdminMetrics(context.Background())
	require.NoError(t, err)
	cached, err := json.Marshal(second)
	require.NoError(t, err)

	assert.JSONEq(t, string(uncached), string(cached))
	assert.Contains(t, string(cached), `"sendTime":"2024-03-01T10:00:00Z"`)
}

func TestGetSubscriberGrowth(t *testing.T) {
	ctx := context.Background()

	t.Run("histórico", func(t *testing.T) {
		integrator, svc := setupService(t, time.Minute)
		history := []domain.DailySubscriberGrowth{
			{Date: "2024-01", NewSubscribers: 10},
			{Date: "2024-02", NewSubscribers: 25},
		}
		integrator.EXPECT().GetGrowthHistory(gomock.Any()).Return(history, nil).Times(1)

		for i := 0; i < 2; i++ {
			got, err := svc.GetSubscriberGrowth(ctx)
			require.NoError(t, err)
			assert.Equal(t, history, got)
		}
	})

	t.Run("histórico vazio", func(t *testing.T) {
		integrator, svc := setupService(t, 0)
		integrator.EXPECT().GetGrowthHistory(gomock.Any()).Return(nil, nil)

		got, err := svc.GetSubscriberGrowth(ctx)
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	tests := []struct {
		name    string
		err     error
		code    string
		details string
		base    error
	}{
		{"erro do mailchimp", &mailchimpdomain.Error{Title: "Forbidden", Status: 403, Detail: "User does not have access."}, apiErrors.ErrExternalService, "User does not have access.", ErrUpstream},
		{"erro do mailchimp sem detalhe", &mailchimpdomain.Error{Title: "Forbidden", Status: 403}, apiErrors.ErrExternalService, msgGrowthFailed, ErrUpstream},
		{"falha de rede", errors.New("i/o timeout"), apiErrors.ErrInternalServer, msgGrowthFailed, ErrCommunication},
		{"audiência ausente", config.ErrMissingAudienceID, apiErrors.ErrConfiguration, msgConfigurationError, ErrConfiguration},
		{"api key com formato inválido", config.ErrInvalidAPIKey, apiErrors.ErrConfiguration, msgInvalidAPIKey, ErrConfiguration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, svc := setupService(t, 0)
			integrator.EXPECT().GetGrowthHistory(gomock.Any()).Return(nil, tt.err)

			_, err := svc.GetSubscriberGrowth(ctx)
			assertReportingError(t, err, tt.code, tt.details, tt.base)
		})
	}
}
