package mailchimpclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	mailchimpdomain "github.com/vfg2006/newsletter-api/infrastructure/integrator/mailchimp/domain"
	"github.com/vfg2006/newsletter-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// basicAuthUser pode ser qualquer valor; o Mailchimp só valida a API key como senha
const basicAuthUser = "any"

type Client interface {
	GetCampaigns(ctx context.Context, params CampaignsParams) (*ResponseCampaigns, error)
	GetList(ctx context.Context, listID string) (*mailchimpdomain.List, error)
	GetGrowthHistory(ctx context.Context, listID string, count int) (*ResponseGrowthHistory, error)
	AddListMember(ctx context.Context, listID string, member mailchimpdomain.MemberRequest) (*mailchimpdomain.Member, error)
}

type MailchimpClient struct {
	httpClient *http.Client
	cfg        config.Mailchimp
}

func NewClient(cfg *config.Config) Client {
	return &MailchimpClient{
		httpClient: &http.Client{
			Timeout: cfg.Mailchimp.Timeout,
		},
		cfg: cfg.Mailchimp,
	}
}

// do executa uma chamada autenticada e decodifica o corpo de sucesso em out (quando não nil)
func (c *MailchimpClient) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	baseURL, err := c.cfg.APIURL()
	if err != nil {
		return err
	}

	endpoint := baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "mailchimp: encoding request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return errors.Wrap(err, "mailchimp: creating request")
	}

	req.SetBasicAuth(basicAuthUser, c.cfg.APIKey)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"method": method,
			"path":   path,
		}).Error("mailchimp: request failed")
		return errors.Wrapf(err, "mailchimp: %s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := c.HandleResponse(resp)
	if err != nil {
		return err
	}

	if out == nil || len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrap(err, "mailchimp: decoding response")
	}

	return nil
}

// HandleResponse lê o corpo e converte respostas não-2xx em *mailchimpdomain.Error
func (c *MailchimpClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "mailchimp: reading response body")
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	apiErr := &mailchimpdomain.Error{}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Title == "" {
		apiErr.Title = http.StatusText(resp.StatusCode)
	}
	if apiErr.Status == 0 {
		apiErr.Status = resp.StatusCode
	}

	logrus.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"title":       apiErr.Title,
		"detail":      apiErr.Detail,
		"url":         resp.Request.URL.Path,
	}).Warn("mailchimp: api returned an error")

	return nil, apiErr
}
