package utils

import "time"

// ParseTimestamp interpreta datas RFC 3339 como as do Mailchimp (`2024-04-01T10:00:00+00:00`).
// String vazia resulta no tempo zero sem erro; em caso de erro também retorna o tempo zero.
func ParseTimestamp(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, err
	}

	return parsed.UTC(), nil
}
