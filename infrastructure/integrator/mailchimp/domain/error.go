package domain

import "fmt"

const titleMemberExists = "Member Exists"

// Error é o documento de problema (RFC 7807) devolvido pelo Mailchimp em respostas não-2xx
type Error struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail"`
	Instance string `json:"instance"`
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("mailchimp: %d %s: %s", e.Status, e.Title, e.Detail)
	}
	return fmt.Sprintf("mailchimp: %d %s", e.Status, e.Title)
}

func (e *Error) IsMemberExists() bool {
	return e.Title == titleMemberExists
}
