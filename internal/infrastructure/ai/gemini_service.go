package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/smartstock/smartstock-api/internal/application/dto"
	"github.com/smartstock/smartstock-api/internal/application/ports"
	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa AdvisoryService.
var _ ports.AdvisoryService = (*GeminiService)(nil)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	// analysisPrompt define el rol del modelo y el formato de salida del
	// análisis. Usar response_mime_type=application/json obliga a Gemini a
	// devolver JSON puro, eliminando la necesidad de limpiar bloques de
	// markdown.
	analysisPrompt = `Eres un analista de inventarios experto. Con base en los productos y el historial de movimientos que recibes, devuelve ÚNICAMENTE un objeto JSON (sin texto adicional) con esta estructura exacta:
{
  "summary": "<resumen general del estado del inventario, en español>",
  "warnings": ["<alerta de stock bajo, sobrestock u otra anomalía>"],
  "suggestions": ["<acción concreta recomendada>"],
  "forecast": "<pronóstico breve de demanda basado en los movimientos recientes>"
}

Reglas:
- warnings y suggestions: máximo 5 entradas cada una, frases cortas.
- summary y forecast: máximo 300 caracteres cada uno, en español.`

	// chatPrompt define el rol del asistente conversacional.
	chatPrompt = `Eres el asistente de SmartStock, un sistema de inventarios. Responde en español, de forma breve y concreta, usando únicamente los datos de productos que recibes como contexto. Si la pregunta no puede responderse con esos datos, dilo claramente.`
)

// GeminiService adaptador que implementa AdvisoryService llamando a la API
// REST de Google Gemini. Usa únicamente la librería estándar de Go (net/http)
// para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas devuelven error y el caso de uso degrada
// la respuesta en lugar de fallar.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey:  apiKey,
		model:   model,
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	ResponseMIMEType string  `json:"responseMimeType,omitempty"` // "application/json" → JSON puro garantizado
	Temperature      float32 `json:"temperature"`
	MaxOutputTokens  int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// Analyze envía el inventario y el historial reciente al modelo y devuelve el
// análisis estructurado.
func (s *GeminiService) Analyze(
	ctx context.Context,
	products []entity.Product,
	transactions []entity.Transaction,
) (*dto.InventoryInsights, error) {
	// Acotar el historial: el análisis usa los movimientos recientes, no
	// todo el libro.
	if len(transactions) > 50 {
		transactions = transactions[:50]
	}

	productsJSON, err := json.Marshal(products)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar productos: %w", err)
	}
	transactionsJSON, err := json.Marshal(transactions)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar transacciones: %w", err)
	}

	userText := fmt.Sprintf("Productos:\n%s\n\nMovimientos recientes:\n%s", productsJSON, transactionsJSON)

	rawJSON, err := s.generate(ctx, analysisPrompt, userText, genConfig{
		ResponseMIMEType: "application/json",
		Temperature:      0.2, // baja temperatura para respuestas más deterministas
		MaxOutputTokens:  1024,
	})
	if err != nil {
		return nil, err
	}

	var insights dto.InventoryInsights
	if err := json.Unmarshal([]byte(rawJSON), &insights); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}
	return &insights, nil
}

// Chat responde una pregunta libre usando los productos actuales como contexto.
func (s *GeminiService) Chat(
	ctx context.Context,
	query string,
	products []entity.Product,
) (string, error) {
	productsJSON, err := json.Marshal(products)
	if err != nil {
		return "", fmt.Errorf("AI: serializar productos: %w", err)
	}

	userText := fmt.Sprintf("Inventario actual:\n%s\n\nPregunta: %s", productsJSON, query)

	reply, err := s.generate(ctx, chatPrompt, userText, genConfig{
		Temperature:     0.6,
		MaxOutputTokens: 512,
	})
	if err != nil {
		return "", err
	}
	return reply, nil
}

// generate ejecuta una llamada a generateContent y devuelve el texto del
// primer candidato.
func (s *GeminiService) generate(ctx context.Context, system, user string, cfg genConfig) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: system}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: user}},
			},
		},
		GenerationConfig: cfg,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent?key=%s", s.baseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 256*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
