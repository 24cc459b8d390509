package request

// AuthenticateRequest carries the client credential pair: the access
// code plus either email or slug.
type AuthenticateRequest struct {
	Email string `json:"email,omitempty"`
	Slug  string `json:"slug,omitempty"`
	Code  string `json:"code" validate:"required"`
}

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}
