package mailchimpclient

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	mailchimpdomain "github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/domain"
)

const CampaignStatusSent = "sent"

type CampaignsParams struct {
	Status string
	Count  int
	Fields []string
}

type ResponseCampaigns struct {
	Campaigns  []mailchimpdomain.Campaign `json:"campaigns"`
	TotalItems int                        `json:"total_items"`
}

func (p CampaignsParams) query() url.Values {
	params := url.Values{}
	if p.Status != "" {
		params.Add("status", p.Status)
	}
	if p.Count > 0 {
		params.Add("count", strconv.Itoa(p.Count))
	}
	if len(p.Fields) > 0 {
		params.Add("fields", strings.Join(p.Fields, ","))
	}
	return params
}

func (c *MailchimpClient) GetCampaigns(ctx context.Context, params CampaignsParams) (*ResponseCampaigns, error) {
	var response ResponseCampaigns
	if err := c.do(ctx, http.MethodGet, "/campaigns", params.query(), nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
