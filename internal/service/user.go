package service

import (
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
)

// User is an authenticated principal: the account id plus the unwrapped
// 64-byte Credential recovered during login or token validation. It exists
// only for the duration of one request.
type User struct {
	// ID is the account's store-assigned identifier.
	ID int64

	// Credential is the plaintext long-lived secret that keys this user's
	// vault fields.
	Credential *crypto.Credential
}

// Destroy zeroizes the held Credential. Callers that obtained a User from
// [AuthService.Login], [AuthService.CreateUser], or [AuthService.FindUser]
// should defer this once the request is finished.
func (u *User) Destroy() {
	if u != nil && u.Credential != nil {
		u.Credential.Destroy()
	}
}
