package config

type ctxKey string

const (
	UidKey   ctxKey = "uid"
	EmailKey ctxKey = "email"
)

const (
	// ActiveFlag is the single-character users.isactive value that
	// permits login. Anything else is treated as inactive.
	ActiveFlag = "Y"
)

const CSRFHeaderName = "X-CSRF-Token"
