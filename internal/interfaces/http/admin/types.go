package admin

import "time"

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

type loginResponse struct {
	Token  string         `json:"token"`
	Viewer viewerResponse `json:"viewer"`
}

type viewerResponse struct {
	Email   string `json:"email"`
	Store   string `json:"store"`
	Manager bool   `json:"manager"`
}

type passwordChangeRequest struct {
	NewPassword string `json:"newPassword"`
}

type completeSurveyRequest struct {
	ClientName    string `json:"clientName"`
	ReceptionDate string `json:"receptionDate"`
	DeliveryDate  string `json:"deliveryDate"`
}

type surveyItemResponse struct {
	ID           string    `json:"id"`
	Store        string    `json:"store"`
	Tiempo       string    `json:"tiempo"`
	Presentacion int       `json:"presentacion"`
	Calidad      string    `json:"calidad"`
	Confirmacion bool      `json:"confirmacion"`
	GlobalScore  *float64  `json:"globalScore,omitempty"`
	Score        float64   `json:"score"`
	LowScore     bool      `json:"lowScore"`
	Status       string    `json:"status"`
	ClientName   string    `json:"clientName"`
	DaysProcess  int       `json:"daysProcess"`
	Timestamp    time.Time `json:"timestamp"`
}

type surveyListResponse struct {
	Items []surveyItemResponse `json:"items"`
}

type kpiResponse struct {
	SurveyCount  int     `json:"surveyCount"`
	AvgScore     float64 `json:"avgGlobalScore"`
	Alert        bool    `json:"alert"`
	AvgDays      float64 `json:"avgDays"`
	PendingCount int     `json:"pendingCount"`
}

type dashboardResponse struct {
	Months        []string             `json:"months"`
	SelectedMonth string               `json:"selectedMonth"`
	KPIs          kpiResponse          `json:"kpis"`
	Items         []surveyItemResponse `json:"items"`
}
