package public

import "time"

type createSurveyRequest struct {
	Store        string `json:"store"`
	Tiempo       string `json:"tiempo"`
	Presentacion int    `json:"presentacion"`
	Calidad      string `json:"calidad"`
	Confirmacion bool   `json:"confirmacion"`
}

type surveyResponse struct {
	ID           string    `json:"id"`
	Store        string    `json:"store"`
	Tiempo       string    `json:"tiempo"`
	Presentacion int       `json:"presentacion"`
	Calidad      string    `json:"calidad"`
	Confirmacion bool      `json:"confirmacion"`
	GlobalScore  float64   `json:"globalScore"`
	Status       string    `json:"status"`
	Timestamp    time.Time `json:"timestamp"`
}

type storeListResponse struct {
	Stores []string `json:"stores"`
}
