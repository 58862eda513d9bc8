package dto

// ConviteRequest aceita email individual, email de contato de curso ou o
// curinga "todos@<domínio>".
type ConviteRequest struct {
	Email string `json:"email" validate:"required,min=3,max=255"`
}
