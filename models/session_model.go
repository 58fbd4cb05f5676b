package models

// Session is what survives between requests: the backend access token plus
// the username captured at login. User details beyond that are re-fetched
// per page via the "who am I" endpoint.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}
