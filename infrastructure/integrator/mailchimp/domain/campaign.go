package domain

type CampaignSettings struct {
	Title Text `json:"title"`
}

func (s *CampaignSettings) UnmarshalJSON(data []byte) error {
	type plain CampaignSettings
	var decoded plain
	decodeObject(data, &decoded)
	*s = CampaignSettings(decoded)
	return nil
}

type ReportSummary struct {
	EmailsSent Number `json:"emails_sent"`
	OpenRate   Number `json:"open_rate"`
	ClickRate  Number `json:"click_rate"`
}

// UnmarshalJSON aceita report_summary em qualquer formato; fora de objeto vira zero
func (r *ReportSummary) UnmarshalJSON(data []byte) error {
	type plain ReportSummary
	var decoded plain
	decodeObject(data, &decoded)
	*r = ReportSummary(decoded)
	return nil
}

type Campaign struct {
	ID             Text             `json:"id"`
	Settings       CampaignSettings `json:"settings"`
	SendTime       Text             `json:"send_time"`
	LongArchiveURL Text             `json:"long_archive_url"`
	PreviewText    *Text            `json:"preview_text"`
	ReportSummary  *ReportSummary   `json:"report_summary"`
}

type Paging struct {
	TotalItems int `json:"total_items"`
}
