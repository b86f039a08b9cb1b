package models

// OpenMeteoErrorResponse is the body Open-Meteo sends with a 4xx status.
type OpenMeteoErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
