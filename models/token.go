package models

// Token is the persisted session row. The row alone cannot authenticate
// anyone: its Credential field is the user's Credential wrapped under key
// material that only the client-held token string carries.
type Token struct {
	// TokenID is the store-assigned identifier, embedded in the token
	// string so validation can find this row.
	TokenID int64 `json:"-"`

	// UserID is the owning account.
	UserID int64 `json:"-"`

	// Credential is the user's 64-byte Credential wrapped under the token
	// credential (data key + salt held only by the client).
	Credential []byte `json:"-"`

	// LastActive is the Unix second of the last successful validation.
	// Rows idle longer than the token TTL are rejected and eventually
	// deleted.
	LastActive int64 `json:"-"`

	// CreatedAt is the Unix-second mint timestamp.
	CreatedAt int64 `json:"-"`
}

// TableName returns the name of the database table associated with the
// Token model.
func (t Token) TableName() string {
	return "token"
}
