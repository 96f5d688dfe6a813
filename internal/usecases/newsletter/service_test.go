package newsletter

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

func setupService(t *testing.T, archiveTTL time.Duration) (*mocks.MockMailchimpIntegrator, NewsletterService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	integrator := mocks.NewMockMailchimpIntegrator(ctrl)

	cfg := &config.Config{Cache: config.Cache{ArchiveTTL: archiveTTL}}
	return integrator, NewService(cfg, integrator, cache.NewMemoryCache())
}

func assertNewsletterError(t *testing.T, err error, code, details string, base error) {
	t.Helper()

	var newsletterErr *NewsletterError
	require.True(t, errors.As(err, &newsletterErr), "expected *NewsletterError, got %v", err)
	assert.Equal(t, code, newsletterErr.Code)
	assert.Equal(t, details, newsletterErr.Details)
	assert.ErrorIs(t, err, base)
}

func TestListArchive(t *testing.T) {
	ctx := context.Background()
	preview := "first issue"

	t.Run("deduplica mantendo a última ocorrência", func(t *testing.T) {
		integrator, svc := setupService(t, time.Hour)

		integrator.EXPECT().GetArchiveCampaigns(gomock.Any()).Return([]domain.RawCampaign{
			{ID: "1", Title: "Weekly #1", ArchiveURL: "https://eepurl.com/1", Description: &preview},
			{ID: "2", Title: "Weekly #2", ArchiveURL: "https://eepurl.com/2"},
			{ID: "3", Title: " Weekly #1 ", ArchiveURL: "https://eepurl.com/3"},
			{ID: "4", Title: "   ", ArchiveURL: "https://eepurl.com/4"},
		}, nil).Times(1)

		archive, err := svc.ListArchive(ctx)
		require.NoError(t, err)
		require.Len(t, archive, 2)
		assert.Equal(t, "3", archive[0].ID)
		assert.Equal(t, "https://eepurl.com/3", archive[0].ArchiveURL)
		assert.Equal(t, "2", archive[1].ID)

		// Segunda leitura vem do cache
		cached, err := svc.ListArchive(ctx)
		require.NoError(t, err)
		assert.Len(t, cached, 2)
	})

	t.Run("lista vazia", func(t *testing.T) {
		integrator, svc := setupService(t, 0)
		integrator.EXPECT().GetArchiveCampaigns(gomock.Any()).Return(nil, nil)

		archive, err := svc.ListArchive(ctx)
		require.NoError(t, err)
		assert.NotNil(t, archive)
		assert.Empty(t, archive)
	})

	tests := []struct {
		name    string
		err     error
		code    string
		details string
		base    error
		status  int
	}{
		{
			name:    "erro do mailchimp com detalhe",
			err:     &mailchimpdomain.Error{Title: "API Key Invalid", Status: 401, Detail: "Your API key may be invalid."},
			code:    apiErrors.ErrExternalService,
			details: "Your API key may be invalid.",
			base:    ErrUpstream,
			status:  401,
		},
		{
			name:    "erro do mailchimp sem detalhe",
			err:     &mailchimpdomain.Error{Title: "Internal Server Error", Status: 500},
			code:    apiErrors.ErrExternalService,
			details: msgArchiveUpstream,
			base:    ErrUpstream,
			status:  500,
		},
		{
			name:    "falha de rede",
			err:     errors.New("dial tcp: connection refused"),
			code:    apiErrors.ErrInternalServer,
			details: msgArchiveFailed,
			base:    ErrCommunication,
		},
		{
			name:    "api key ausente",
			err:     config.ErrMissingAPIKey,
			code:    apiErrors.ErrConfiguration,
			details: "Server configuration error: Missing Mailchimp API Key.",
			base:    ErrConfiguration,
		},
		{
			name:    "api key com formato inválido",
			err:     errors.Wrap(config.ErrInvalidAPIKey, "mailchimp client"),
			code:    apiErrors.ErrConfiguration,
			details: "Server configuration error: Invalid Mailchimp API key format.",
			base:    ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, svc := setupService(t, time.Hour)
			integrator.EXPECT().GetArchiveCampaigns(gomock.Any()).Return(nil, tt.err).Times(2)

			_, err := svc.ListArchive(ctx)
			assertNewsletterError(t, err, tt.code, tt.details, tt.base)

			var newsletterErr *NewsletterError
			require.True(t, errors.As(err, &newsletterErr))
			assert.Equal(t, tt.status, newsletterErr.Status)

			// Falhas não ficam no cache
			_, err = svc.ListArchive(ctx)
			assert.Error(t, err)
		})
	}
}

func TestListArchive_CachedResponseKeepsUTC(t *testing.T) {
	local := time.Local
	time.Local = time.FixedZone("BRT", -3*60*60)
	t.Cleanup(func() { time.Local = local })

	integrator, svc := setupService(t, time.Hour)
	integrator.EXPECT().GetArchiveCampaigns(gomock.Any()).Return([]domain.RawCampaign{
		{ID: "1", Title: "Spring", SendTime: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "2", Title: "No date"},
	}, nil).Times(1)

	json := jsoniter.ConfigCompatibleWithStandardLibrary

	first, err := svc.ListArchive(context.Background())
	require.NoError(t, err)
	uncached, err := json.Marshal(first)
	require.NoError(t, err)

	second, err := svc.ListArchive(context.Background())
	require.NoError(t, err)
	cached, err := json.Marshal(second)
	require.NoError(t, err)

	assert.JSONEq(t, string(uncached), string(cached))
	assert.Contains(t, string(cached), `"sendTime":"2024-04-01T10:00:00Z"`)
	assert.Contains(t, string(cached), `"sendTime":"0001-01-01T00:00:00Z"`)
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()

	t.Run("sucesso com campos normalizados", func(t *testing.T) {
		integrator, svc := setupService(t, 0)
		integrator.EXPECT().Subscribe(gomock.Any(), domain.SubscribeRequest{
			Email:     "reader@example.com",
			FirstName: "Ana",
		}).Return(nil)

		result, err := svc.Subscribe(ctx, &domain.SubscribeRequest{Email: "  reader@example.com ", FirstName: " Ana "})
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully subscribed! 🎉", result.Message)
	})

	invalidEmails := []string{"", "   ", "reader.example.com"}
	for _, email := range invalidEmails {
		t.Run("email inválido "+email, func(t *testing.T) {
			_, svc := setupService(t, 0)

			result, err := svc.Subscribe(ctx, &domain.SubscribeRequest{Email: email})
			assert.False(t, result.Success)
			assert.Equal(t, "Please enter a valid email address.", result.Message)
			assertNewsletterError(t, err, apiErrors.ErrInvalidFormat, result.Message, ErrInvalidEmail)
		})
	}

	tests := []struct {
		name    string
		err     error
		code    string
		message string
		base    error
	}{
		{
			name:    "email já inscrito",
			err:     &mailchimpdomain.Error{Title: "Member Exists", Status: 400, Detail: "reader@example.com is already a list member."},
			code:    apiErrors.ErrMemberExists,
			message: "This email is already subscribed.",
			base:    ErrAlreadySubscribed,
		},
		{
			name:    "outro erro do mailchimp",
			err:     &mailchimpdomain.Error{Title: "Invalid Resource", Status: 400, Detail: "Looks fake or invalid."},
			code:    apiErrors.ErrExternalService,
			message: "Subscription failed: Looks fake or invalid.",
			base:    ErrUpstream,
		},
		{
			name:    "erro do mailchimp sem detalhe",
			err:     &mailchimpdomain.Error{Title: "Bad Request", Status: 400},
			code:    apiErrors.ErrExternalService,
			message: "Subscription failed: Unknown error.",
			base:    ErrUpstream,
		},
		{
			name:    "falha de rede",
			err:     errors.Wrap(context.DeadlineExceeded, "mailchimp: POST /lists/abc/members"),
			code:    apiErrors.ErrCommunication,
			message: "Network error. Please try again later.",
			base:    ErrCommunication,
		},
		{
			name:    "audiência não configurada",
			err:     config.ErrMissingAudienceID,
			code:    apiErrors.ErrConfiguration,
			message: "Server configuration error. Please try again later.",
			base:    ErrConfiguration,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			integrator, svc := setupService(t, 0)
			integrator.EXPECT().Subscribe(gomock.Any(), gomock.Any()).Return(tt.err)

			result, err := svc.Subscribe(ctx, &domain.SubscribeRequest{Email: "reader@example.com"})
			require.NotNil(t, result)
			assert.False(t, result.Success)
			assert.Equal(t, tt.message, result.Message)
			assertNewsletterError(t, err, tt.code, tt.message, tt.base)
		})
	}
}
