package clients

// Authorization is the record the authorizations API creates for an OAuth
// application. An empty Token means the record exists but the server withheld
// the credential, which forces the delete-and-recreate step during sign-in.
type Authorization struct {
	ID             int    `json:"id"`
	Token          string `json:"token"`
	TokenLastEight string `json:"token_last_eight,omitempty"`
	HashedToken    string `json:"hashed_token,omitempty"`
	Scopes         Scopes `json:"scopes,omitempty"`
	Note           string `json:"note,omitempty"`
	NoteURL        string `json:"note_url,omitempty"`
	Fingerprint    string `json:"fingerprint,omitempty"`
}

// HasToken reports whether the server handed back a usable credential.
func (a *Authorization) HasToken() bool {
	return a.Token != ""
}
