package models

// Identity holds the verified claims of a logged-in visitor, extracted from
// the session token by the middleware. Requests without a valid session
// carry no Identity.
type Identity struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
