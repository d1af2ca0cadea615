package models

// Password is the persisted vault entry row. Only Name and the timestamps
// are plaintext; Username, Password, and Attachment are independent
// envelope ciphertexts under the owner's Credential.
type Password struct {
	ID     int64 `json:"-"`
	UserID int64 `json:"-"`

	// Name is the plaintext label used for listing.
	Name string `json:"-"`

	Username   []byte `json:"-"`
	Password   []byte `json:"-"`
	Attachment []byte `json:"-"`

	UpdatedAt int64 `json:"-"`
	CreatedAt int64 `json:"-"`
}

// TableName returns the name of the database table associated with the
// Password model.
func (p Password) TableName() string {
	return "password"
}

// PasswordListItem is the plaintext projection returned by the list
// operation, ordered by UpdatedAt descending.
type PasswordListItem struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	UpdatedAt int64  `json:"updated_at"`
}

// PasswordView is a fully decrypted vault entry as returned to an
// authenticated owner by the view operation.
type PasswordView struct {
	ID         int64   `json:"id"`
	Name       string  `json:"name"`
	Username   string  `json:"username"`
	Password   string  `json:"password"`
	Attachment *string `json:"attachment"`
}

// PasswordCreate carries the plaintext fields of a new vault entry.
// Attachment is optional; nil means the entry has none.
type PasswordCreate struct {
	Name       string
	Username   string
	Password   string
	Attachment *string
}

// PasswordUpdate carries replacement fields for an existing entry. All
// secret fields are re-encrypted on update even when unchanged, so the
// stored nonces always differ between writes.
type PasswordUpdate = PasswordCreate
