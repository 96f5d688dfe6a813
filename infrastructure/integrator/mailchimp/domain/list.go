package domain

type ListStats struct {
	MemberCount Number `json:"member_count"`
}

func (s *ListStats) UnmarshalJSON(data []byte) error {
	type plain ListStats
	var decoded plain
	decodeObject(data, &decoded)
	*s = ListStats(decoded)
	return nil
}

// List é a audiência do Mailchimp; só as estatísticas interessam aqui
type List struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Stats *ListStats `json:"stats"`
}

type GrowthHistoryEntry struct {
	ListID     string `json:"list_id"`
	Month      Text   `json:"month"`
	Subscribed Number `json:"subscribed"`
}

const (
	MemberStatusSubscribed = "subscribed"
	MemberStatusPending    = "pending"
)

type MemberRequest struct {
	EmailAddress string            `json:"email_address"`
	Status       string            `json:"status"`
	MergeFields  map[string]string `json:"merge_fields,omitempty"`
}

type Member struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
	Status       string `json:"status"`
}
