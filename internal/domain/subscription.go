package domain

import "strings"

type SubscribeRequest struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
}

type SubscribeResult struct {
	Message string `json:"message"`
	Success bool   `json:"success"`
}

// Normalize remove espaços nas pontas dos campos do formulário
func (r *SubscribeRequest) Normalize() {
	r.Email = strings.TrimSpace(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
}

func (r *SubscribeRequest) HasValidEmail() bool {
	return r.Email != "" && strings.Contains(r.Email, "@")
}
