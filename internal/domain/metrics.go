package domain

import (
	"math"
	"sort"
)

// RecentCampaignsLimit é a quantidade de campanhas recentes exibidas no dashboard
const RecentCampaignsLimit = 5

type AdminMetrics struct {
	SubscriberCount          int              `json:"subscriberCount"`
	PublishedNewsletterCount int              `json:"publishedNewsletterCount"`
	Campaigns                []CampaignMetric `json:"campaigns"`
	TotalOpenRate            float64          `json:"totalOpenRate"`
	TotalClickRate           float64          `json:"totalClickRate"`
}

// AggregateMetrics calcula as métricas do dashboard a partir das campanhas enviadas.
// As taxas totais são médias ponderadas pelo número de emails enviados.
func AggregateMetrics(records []RawCampaign, subscriberCount int) *AdminMetrics {
	unique := DedupeByTitle(records, func(c RawCampaign) string { return c.Title }, KeepFirst)

	var (
		totalEmailsSent int
		totalOpens      float64
		totalClicks     float64
	)

	campaigns := make([]CampaignMetric, 0, len(unique))
	for _, raw := range unique {
		emailsSent := max(raw.EmailsSent, 0)
		openRate := fractionToPercent(raw.OpenRate)
		clickRate := fractionToPercent(raw.ClickRate)

		totalEmailsSent += emailsSent
		totalOpens += float64(emailsSent) * (openRate / 100)
		totalClicks += float64(emailsSent) * (clickRate / 100)

		campaigns = append(campaigns, CampaignMetric{
			ID:          raw.ID,
			Title:       raw.Title,
			SendTime:    raw.SendTime,
			EmailsSent:  emailsSent,
			OpenRate:    openRate,
			ClickRate:   clickRate,
			Description: raw.Description,
		})
	}

	metrics := &AdminMetrics{
		SubscriberCount:          max(subscriberCount, 0),
		PublishedNewsletterCount: len(campaigns),
	}

	if totalEmailsSent > 0 {
		metrics.TotalOpenRate = totalOpens / float64(totalEmailsSent) * 100
		metrics.TotalClickRate = totalClicks / float64(totalEmailsSent) * 100
	}

	// Mais recentes primeiro; empates mantêm a ordem de chegada
	sort.SliceStable(campaigns, func(i, j int) bool {
		return campaigns[i].SendTime.After(campaigns[j].SendTime)
	})

	if len(campaigns) > RecentCampaignsLimit {
		campaigns = campaigns[:RecentCampaignsLimit]
	}
	metrics.Campaigns = campaigns

	return metrics
}

// fractionToPercent converte a taxa do Mailchimp (0-1) para porcentagem.
// Valores inválidos contam como zero.
func fractionToPercent(rate float64) float64 {
	if math.IsNaN(rate) || math.IsInf(rate, 0) || rate < 0 {
		return 0
	}
	return rate * 100
}
