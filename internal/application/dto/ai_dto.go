package dto

// InventoryInsights es el análisis estructurado devuelto por el LLM sobre
// una instantánea de productos y transacciones.
type InventoryInsights struct {
	Summary     string   `json:"summary"`
	Warnings    []string `json:"warnings"`
	Suggestions []string `json:"suggestions"`
	Forecast    string   `json:"forecast"`
}

// InsightsResponse respuesta de GET /api/ai/insights. Available es false
// cuando el análisis no pudo obtenerse (la degradación nunca es un error HTTP).
type InsightsResponse struct {
	Available bool               `json:"available"`
	Insights  *InventoryInsights `json:"insights,omitempty"`
}

// ChatRequest body para POST /api/ai/chat.
type ChatRequest struct {
	Query string `json:"query"`
}

// ChatResponse respuesta del asistente.
type ChatResponse struct {
	Reply string `json:"reply"`
}
