package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeArchive(t *testing.T) {
	jan := time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    []NewsletterCampaign
		expected []NewsletterCampaign
	}{
		{
			name:     "lista vazia retorna lista vazia",
			input:    nil,
			expected: []NewsletterCampaign{},
		},
		{
			name: "títulos repetidos ficam com a última ocorrência na posição da primeira",
			input: []NewsletterCampaign{
				{ID: "1", Title: "Weekly #1", SendTime: jan},
				{ID: "2", Title: "Weekly #2", SendTime: feb},
				{ID: "3", Title: "  Weekly #1 ", SendTime: feb},
			},
			expected: []NewsletterCampaign{
				{ID: "3", Title: "  Weekly #1 ", SendTime: feb},
				{ID: "2", Title: "Weekly #2", SendTime: feb},
			},
		},
		{
			name: "títulos vazios ou só com espaços são descartados",
			input: []NewsletterCampaign{
				{ID: "1", Title: ""},
				{ID: "2", Title: "   "},
				{ID: "3", Title: "Launch"},
			},
			expected: []NewsletterCampaign{
				{ID: "3", Title: "Launch"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DedupeArchive(tt.input))
		})
	}
}

func TestDedupeByTitle_Policies(t *testing.T) {
	records := []RawCampaign{
		{ID: "a1", Title: "A"},
		{ID: "b1", Title: "B"},
		{ID: "a2", Title: "A "},
		{ID: "b2", Title: "\tB"},
	}
	title := func(c RawCampaign) string { return c.Title }

	first := DedupeByTitle(records, title, KeepFirst)
	assert.Equal(t, []string{"a1", "b1"}, ids(first))

	last := DedupeByTitle(records, title, KeepLast)
	assert.Equal(t, []string{"a2", "b2"}, ids(last))

	// Entrada não é alterada
	assert.Equal(t, "a1", records[0].ID)
}

func TestDedupeByTitle_NoDuplicateTitlesInOutput(t *testing.T) {
	titles := []string{"x", " x", "y", "x ", "", "z", "y", "  "}
	records := make([]RawCampaign, 0, len(titles))
	for i, title := range titles {
		records = append(records, RawCampaign{ID: string(rune('a' + i)), Title: title})
	}

	for _, policy := range []DuplicatePolicy{KeepFirst, KeepLast} {
		seen := map[string]bool{}
		for _, c := range DedupeByTitle(records, func(c RawCampaign) string { return c.Title }, policy) {
			key := NormalizeTitle(c.Title)
			assert.NotEmpty(t, key)
			assert.False(t, seen[key], "título duplicado: %q", key)
			seen[key] = true
		}
		assert.Len(t, seen, 3)
	}
}

func ids(records []RawCampaign) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.ID)
	}
	return out
}

func TestSendTimesInUTC(t *testing.T) {
	brt := time.FixedZone("BRT", -3*60*60)
	records := []RawCampaign{
		{ID: "1", SendTime: time.Date(2024, 4, 1, 7, 0, 0, 0, brt)},
		{ID: "2"},
	}

	normalized := SendTimesInUTC(records)

	require.Len(t, normalized, 2)
	assert.Equal(t, time.UTC, normalized[0].SendTime.Location())
	assert.True(t, normalized[0].SendTime.Equal(time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, time.UTC, normalized[1].SendTime.Location())
	assert.True(t, normalized[1].SendTime.IsZero())
	assert.Equal(t, brt, records[0].SendTime.Location())
}
