package models

// Response is the uniform JSON envelope returned by every endpoint.
// Successful calls carry Data (or Message); failures carry Error and,
// for machine-actionable denials, a short Code such as
// "INSUFFICIENT_CREDITS" or "LIMIT_REACHED".
type Response struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    string `json:"code,omitempty"`
}

// AuthPayload is the Data value returned by register and login: the public
// profile plus the bearer token the client must present on private routes.
type AuthPayload struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

// HealthPayload reports liveness and which vendor credential groups are
// configured. It never reveals the credentials themselves.
type HealthPayload struct {
	Status    string         `json:"status"`
	Timestamp string         `json:"timestamp"`
	Services  HealthServices `json:"services"`
}

// HealthServices is the per-capability configuration flag set of
// [HealthPayload].
type HealthServices struct {
	AI    bool `json:"ai"`
	Image bool `json:"image"`
	Voice bool `json:"voice"`
}
