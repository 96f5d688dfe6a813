package mailchimp

import (
	"context"

	"github.com/sirupsen/logrus"
	mailchimpdomain "github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/mailchimpclient"
	"github.com/vfg2006/newsletter-api/internal/config"
	"github.com/vfg2006/newsletter-api/internal/domain"
	"github.com/vfg2006/newsletter-api/pkg/utils"
)

// Campos pedidos ao Mailchimp para o arquivo público
var archiveFields = []string{
	"campaigns.id",
	"campaigns.settings.title",
	"campaigns.long_archive_url",
	"campaigns.send_time",
	"campaigns.preview_text",
}

// Campos pedidos ao Mailchimp para as métricas do dashboard
var reportFields = []string{
	"campaigns.id",
	"campaigns.settings.title",
	"campaigns.send_time",
	"campaigns.report_summary.emails_sent",
	"campaigns.report_summary.open_rate",
	"campaigns.report_summary.click_rate",
	"campaigns.preview_text",
}

type MailchimpIntegrator interface {
	GetArchiveCampaigns(ctx context.Context) ([]domain.RawCampaign, error)
	GetCampaignReports(ctx context.Context) ([]domain.RawCampaign, error)
	GetSubscriberCount(ctx context.Context) (int, error)
	GetGrowthHistory(ctx context.Context) ([]domain.DailySubscriberGrowth, error)
	Subscribe(ctx context.Context, request domain.SubscribeRequest) error
}

type MailchimpService struct {
	cfg    *config.Config
	Client mailchimpclient.Client
}

func New(cfg *config.Config, client mailchimpclient.Client) MailchimpIntegrator {
	return &MailchimpService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *MailchimpService) GetArchiveCampaigns(ctx context.Context) ([]domain.RawCampaign, error) {
	return s.getSentCampaigns(ctx, s.cfg.Mailchimp.ArchiveCount, archiveFields)
}

func (s *MailchimpService) GetCampaignReports(ctx context.Context) ([]domain.RawCampaign, error) {
	return s.getSentCampaigns(ctx, s.cfg.Mailchimp.ReportCount, reportFields)
}

func (s *MailchimpService) getSentCampaigns(ctx context.Context, count int, fields []string) ([]domain.RawCampaign, error) {
	resp, err := s.Client.GetCampaigns(ctx, mailchimpclient.CampaignsParams{
		Status: mailchimpclient.CampaignStatusSent,
		Count:  count,
		Fields: fields,
	})
	if err != nil {
		return nil, err
	}

	campaigns := make([]domain.RawCampaign, 0, len(resp.Campaigns))
	for _, campaign := range resp.Campaigns {
		campaigns = append(campaigns, FactoryRawCampaign(campaign))
	}

	logrus.WithField("total_campaigns", len(campaigns)).Debug("mailchimp: sent campaigns retrieved")

	return campaigns, nil
}

func (s *MailchimpService) GetSubscriberCount(ctx context.Context) (int, error) {
	list, err := s.Client.GetList(ctx, s.cfg.Mailchimp.AudienceID)
	if err != nil {
		return 0, err
	}

	if list.Stats == nil {
		return 0, nil
	}

	return list.Stats.MemberCount.Int(), nil
}

func (s *MailchimpService) GetGrowthHistory(ctx context.Context) ([]domain.DailySubscriberGrowth, error) {
	resp, err := s.Client.GetGrowthHistory(ctx, s.cfg.Mailchimp.AudienceID, s.cfg.Mailchimp.GrowthHistoryCount)
	if err != nil {
		return nil, err
	}

	history := make([]domain.DailySubscriberGrowth, 0, len(resp.History))
	for _, entry := range resp.History {
		history = append(history, domain.DailySubscriberGrowth{
			Date:           entry.Month.String(),
			NewSubscribers: entry.Subscribed.Int(),
		})
	}

	return domain.SortGrowthHistory(history), nil
}

func (s *MailchimpService) Subscribe(ctx context.Context, request domain.SubscribeRequest) error {
	member := mailchimpdomain.MemberRequest{
		EmailAddress: request.Email,
		Status:       mailchimpdomain.MemberStatusSubscribed,
		MergeFields: map[string]string{
			"FNAME": request.FirstName,
		},
	}

	_, err := s.Client.AddListMember(ctx, s.cfg.Mailchimp.AudienceID, member)
	return err
}

// FactoryRawCampaign converte a campanha do Mailchimp para o domínio.
// Campos ausentes ou inválidos viram zero.
func FactoryRawCampaign(campaign mailchimpdomain.Campaign) domain.RawCampaign {
	raw := domain.RawCampaign{
		ID:         campaign.ID.String(),
		Title:      campaign.Settings.Title.String(),
		ArchiveURL: campaign.LongArchiveURL.String(),
	}

	if campaign.PreviewText != nil {
		description := campaign.PreviewText.String()
		raw.Description = &description
	}

	sendTime, err := utils.ParseTimestamp(campaign.SendTime.String())
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"campaign_id": campaign.ID,
			"send_time":   campaign.SendTime.String(),
			"error":       err.Error(),
		}).Warn("mailchimp: invalid campaign send_time")
	}
	raw.SendTime = sendTime

	if campaign.ReportSummary != nil {
		raw.EmailsSent = campaign.ReportSummary.EmailsSent.Int()
		raw.OpenRate = campaign.ReportSummary.OpenRate.Float()
		raw.ClickRate = campaign.ReportSummary.ClickRate.Float()
	}

	return raw
}
