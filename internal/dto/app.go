package dto

type HealthResponse struct {
	Status    string  `json:"status"`
	Uptime    float64 `json:"uptime"`
	Timestamp string  `json:"timestamp"`
}

type CSRFTokenResponse struct {
	CSRFToken string `json:"csrfToken"`
}
