package store

// Fixed statements for the user and token tables. The password table uses
// squirrel-built queries instead (see repository_password.go) because its
// statements carry more columns than are comfortable to maintain as text.
const (
	createUser = `
		INSERT INTO user (username, salt, credential, suspend, created_at)
		VALUES (?, ?, ?, 0, ?)
		ON CONFLICT (username) DO NOTHING;`

	findUserByUsername = `
		SELECT id, username, salt, credential, suspend, created_at
		FROM user
		WHERE username = ?;`

	findUserByID = `
		SELECT id, username, salt, credential, suspend, created_at
		FROM user
		WHERE id = ?;`

	updateUserSuspend = `
		UPDATE user SET suspend = ? WHERE id = ?;`

	updateUserCredential = `
		UPDATE user SET salt = ?, credential = ? WHERE id = ?;`

	createToken = `
		INSERT INTO token (user_id, credential, last_active, created_at)
		VALUES (?, ?, ?, ?);`

	findTokenByID = `
		SELECT id, user_id, credential, last_active, created_at
		FROM token
		WHERE id = ?;`

	updateTokenLastActive = `
		UPDATE token SET last_active = ? WHERE id = ?;`

	deleteToken = `
		DELETE FROM token WHERE id = ?;`

	deleteIdleTokens = `
		DELETE FROM token WHERE last_active <= ?;`
)
