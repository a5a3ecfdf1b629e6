package auth

import (
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/domain/user"
	"github.com/abdelmoulehnajeh/redcastle-sub001/internal/pkg/validator"
)

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{Field: "username", Message: "is required"})
	}
	if r.Password == "" {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type LoginResponse struct {
	AccessToken      string         `json:"access_token"`
	RefreshToken     string         `json:"-"` // delivered as an HttpOnly cookie
	RefreshExpiresAt int64          `json:"-"`
	ExpiresAt        int64          `json:"expires_at"`
	Role             string         `json:"role"`
	EmployeeID       *string        `json:"employee_id,omitempty"`
	Navigation       []user.NavItem `json:"navigation"`
}

type RefreshResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}
