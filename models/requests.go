package models

// SignUpRequest is the payload of POST /api/auth/sign-up. All fields are
// required and supplied by the caller; role and creation date are assigned
// by the server.
type SignUpRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// SignInRequest is the payload of POST /api/auth/sign-in.
type SignInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// DocumentsRequest is the payload of POST /api/database/: it names the
// collection whose documents should be returned.
type DocumentsRequest struct {
	DB string `json:"db"`
}

// RefreshRequest is the payload of POST /api/database/update: it names the
// collection to refresh and the scraper page to fetch.
type RefreshRequest struct {
	DB   string `json:"db"`
	Page string `json:"page"`
}
