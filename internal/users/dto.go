package users

// CreateUserRequest is the registration payload.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// ConfirmUserRequest confirms a freshly registered account.
type ConfirmUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// LoginRequest carries login credentials.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// UpdateUserRequest carries optional profile changes. Birth date uses the
// YYYY-MM-DD form.
type UpdateUserRequest struct {
	DisplayName *string `json:"display_name"`
	BirthDate   *string `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
}

// UserInfoResponse is the authenticated profile view.
type UserInfoResponse struct {
	Username      string `json:"username"`
	Age           int    `json:"age"`
	DisplayName   string `json:"display_name"`
	CreateDate    string `json:"create_date"`
	AccountStatus string `json:"account_status"`
}

// GenericResponse wraps a human readable outcome message.
type GenericResponse struct {
	Message string `json:"message"`
}
