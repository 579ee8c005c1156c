package db

const userColumns = `
	u.id,
	u.email,
	u.hash_password,
	u.firstname,
	u.lastname,
	u.nickname,
	u.profile_img,
	u.birthday,
	u.refresh_token,
	u.password_reset_token,
	u.password_reset_expires_at,
	u.verify_email_at,
	u.token_version,
	u.isactive,
	u.created_by,
	u.updated_by,
	u.created_at,
	u.updated_at
`

const userGetByEmailQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.email = ?
`

const userGetByIDQ = `
SELECT ` + userColumns + `
FROM users u
WHERE u.id = ?
`

const userCreateQ = `
INSERT INTO users (email, hash_password, firstname, lastname, nickname, birthday, isactive)
VALUES (?, ?, ?, ?, ?, ?, ?)
`
