package models

// SignInRequest is the body of a password grant on the remote store.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUpRequest is the body of a remote store registration.
type SignUpRequest struct {
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	FullName    string   `json:"full_name,omitempty"`
	CompanyName string   `json:"company_name,omitempty"`
	GSTState    string   `json:"gst_state,omitempty"`
	Role        UserRole `json:"role,omitempty"`
}

// User returns the account described by the request.
func (r SignUpRequest) User() User {
	return User{
		Email:       r.Email,
		Password:    r.Password,
		FullName:    r.FullName,
		CompanyName: r.CompanyName,
		GSTState:    r.GSTState,
		Role:        r.Role,
	}
}

// NewSignUpRequest builds the registration body for user.
func NewSignUpRequest(user User) SignUpRequest {
	return SignUpRequest{
		Email:       user.Email,
		Password:    user.Password,
		FullName:    user.FullName,
		CompanyName: user.CompanyName,
		GSTState:    user.GSTState,
		Role:        user.Role,
	}
}

// APIError is the JSON error body returned by the remote store server.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
