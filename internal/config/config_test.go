package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMailchimp_DataCenter(t *testing.T) {
	tests := []struct {
		name    string
		apiKey  string
		want    string
		wantErr error
	}{
		{name: "valid key", apiKey: "abc123-us21", want: "us21"},
		{name: "missing key", apiKey: "", wantErr: ErrMissingAPIKey},
		{name: "no suffix", apiKey: "abc123", wantErr: ErrInvalidAPIKey},
		{name: "empty suffix", apiKey: "abc123-", wantErr: ErrInvalidAPIKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc, err := Mailchimp{APIKey: tt.apiKey}.DataCenter()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, dc)
		})
	}
}

func TestMailchimp_APIURL(t *testing.T) {
	url, err := Mailchimp{APIKey: "abc-us6"}.APIURL()
	require.NoError(t, err)
	assert.Equal(t, "https://us6.api.mailchimp.com/3.0", url)

	url, err = Mailchimp{APIKey: "abc-us6", BaseURL: "http://127.0.0.1:9999/3.0/"}.APIURL()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/3.0", url)

	_, err = Mailchimp{BaseURL: "http://127.0.0.1:9999"}.APIURL()
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	t.Setenv("MAILCHIMP_API_KEY", "key-us3")
	t.Setenv("MAILCHIMP_AUDIENCE_ID", "aud1")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, http://b.test")
	t.Setenv("CACHE_METRICS_TTL", "90s")
	t.Setenv("ADMIN_DASHBOARD_PASSWORD", "s3cret")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "key-us3", cfg.Mailchimp.APIKey)
	assert.Equal(t, "aud1", cfg.Mailchimp.AudienceID)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 90*time.Second, cfg.Cache.MetricsTTL)
	assert.Equal(t, time.Hour, cfg.Cache.ArchiveTTL)
	assert.Equal(t, 1000, cfg.Mailchimp.ReportCount)
	assert.Equal(t, "memory", cfg.Cache.Driver)
	assert.Empty(t, cfg.Warnings())
}

func TestConfig_Warnings(t *testing.T) {
	cfg := &Config{}
	warnings := cfg.Warnings()
	assert.Len(t, warnings, 3)
	assert.Contains(t, warnings, ErrMissingAPIKey.Error())
	assert.Contains(t, warnings, ErrMissingAudienceID.Error())
}
