package domain

import (
	"strings"
	"time"
)

// RawCampaign representa uma campanha enviada como reportada pelo Mailchimp.
// OpenRate e ClickRate ainda estão em fração (0-1).
type RawCampaign struct {
	ID          string
	Title       string
	SendTime    time.Time
	EmailsSent  int
	OpenRate    float64
	ClickRate   float64
	ArchiveURL  string
	Description *string
}

// CampaignMetric é a campanha exibida no dashboard, com taxas em porcentagem (0-100)
type CampaignMetric struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	SendTime    time.Time `json:"sendTime"`
	EmailsSent  int       `json:"emailsSent"`
	OpenRate    float64   `json:"openRate"`
	ClickRate   float64   `json:"clickRate"`
	Description *string   `json:"description,omitempty"`
}

// NewsletterCampaign é uma edição do arquivo público de newsletters
type NewsletterCampaign struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ArchiveURL  string    `json:"archiveUrl"`
	SendTime    time.Time `json:"sendTime"`
	Description *string   `json:"description,omitempty"`
}

// DuplicatePolicy define qual ocorrência vence quando dois registros têm o mesmo título
type DuplicatePolicy int

const (
	// KeepFirst mantém a primeira ocorrência e ignora as seguintes
	KeepFirst DuplicatePolicy = iota
	// KeepLast mantém a posição da primeira ocorrência com o valor da última
	KeepLast
)

// NormalizeTitle é a chave de deduplicação: o título sem espaços nas pontas
func NormalizeTitle(title string) string {
	return strings.TrimSpace(title)
}

// DedupeByTitle remove registros com título repetido. Registros com título vazio
// (após o trim) são descartados. A ordem de saída segue a primeira aparição de cada título.
func DedupeByTitle[T any](records []T, title func(T) string, policy DuplicatePolicy) []T {
	unique := make([]T, 0, len(records))
	positions := make(map[string]int, len(records))

	for _, record := range records {
		key := NormalizeTitle(title(record))
		if key == "" {
			continue
		}

		if pos, seen := positions[key]; seen {
			if policy == KeepLast {
				unique[pos] = record
			}
			continue
		}

		positions[key] = len(unique)
		unique = append(unique, record)
	}

	return unique
}

// SendTimesInUTC devolve os registros com SendTime em UTC. Leituras do cache
// voltam no fuso local do processo.
func SendTimesInUTC(records []RawCampaign) []RawCampaign {
	normalized := make([]RawCampaign, len(records))
	for i, record := range records {
		record.SendTime = record.SendTime.UTC()
		normalized[i] = record
	}
	return normalized
}

// NewNewsletterCampaign converte a campanha bruta em entrada do arquivo
func NewNewsletterCampaign(raw RawCampaign) NewsletterCampaign {
	return NewsletterCampaign{
		ID:          raw.ID,
		Title:       raw.Title,
		ArchiveURL:  raw.ArchiveURL,
		SendTime:    raw.SendTime,
		Description: raw.Description,
	}
}

// DedupeArchive deduplica o arquivo público; títulos repetidos ficam com a última ocorrência
func DedupeArchive(campaigns []NewsletterCampaign) []NewsletterCampaign {
	return DedupeByTitle(campaigns, func(c NewsletterCampaign) string { return c.Title }, KeepLast)
}
