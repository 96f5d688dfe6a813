package mailchimpclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	mailchimpdomain "github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/newsletter-api/internal/config"
)

type ResponseGrowthHistory struct {
	ListID     string                               `json:"list_id"`
	History    []mailchimpdomain.GrowthHistoryEntry `json:"history"`
	TotalItems int                                  `json:"total_items"`
}

func (c *MailchimpClient) GetList(ctx context.Context, listID string) (*mailchimpdomain.List, error) {
	if listID == "" {
		return nil, config.ErrMissingAudienceID
	}

	var response mailchimpdomain.List
	path := fmt.Sprintf("/lists/%s", url.PathEscape(listID))
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *MailchimpClient) GetGrowthHistory(ctx context.Context, listID string, count int) (*ResponseGrowthHistory, error) {
	if listID == "" {
		return nil, config.ErrMissingAudienceID
	}

	params := url.Values{}
	if count > 0 {
		params.Add("count", strconv.Itoa(count))
	}

	var response ResponseGrowthHistory
	path := fmt.Sprintf("/lists/%s/growth-history", url.PathEscape(listID))
	if err := c.do(ctx, http.MethodGet, path, params, nil, &response); err != nil {
		return nil, err
	}

	return &response, nil
}

func (c *MailchimpClient) AddListMember(ctx context.Context, listID string, member mailchimpdomain.MemberRequest) (*mailchimpdomain.Member, error) {
	if listID == "" {
		return nil, config.ErrMissingAudienceID
	}

	var response mailchimpdomain.Member
	path := fmt.Sprintf("/lists/%s/members", url.PathEscape(listID))
	if err := c.do(ctx, http.MethodPost, path, nil, member, &response); err != nil {
		return nil, err
	}

	return &response, nil
}
