package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartstock/smartstock-api/internal/domain/entity"
)

// newTestService apunta el adaptador a un servidor HTTP falso.
func newTestService(t *testing.T, handler http.HandlerFunc) *GeminiService {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	svc := NewGeminiService("test-key", "gemini-1.5-flash")
	svc.baseURL = srv.URL
	return svc
}

func geminiTextResponse(text string) []byte {
	raw, _ := json.Marshal(map[string]any{
		"candidates": []map[string]any{
			{"content": map[string]any{"parts": []map[string]string{{"text": text}}}},
		},
	})
	return raw
}

func testProducts() []entity.Product {
	return []entity.Product{{
		ID: "p1", Name: "Tornillo 3/8", SKU: "TORN-001",
		Quantity: 2, MinThreshold: 5, Price: decimal.NewFromInt(500),
	}}
}

// ── Analyze ───────────────────────────────────────────────────────────────────

func TestAnalyze_DecodificaElAnalisisEstructurado(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "application/json", req.GenerationConfig.ResponseMIMEType,
			"el análisis debe exigir JSON puro")
		require.NotEmpty(t, req.Contents)
		assert.Contains(t, req.Contents[0].Parts[0].Text, "TORN-001",
			"el prompt debe incluir el inventario")

		_, _ = w.Write(geminiTextResponse(`{
			"summary": "Inventario estable",
			"warnings": ["TORN-001 por debajo del umbral"],
			"suggestions": ["Reordenar TORN-001"],
			"forecast": "Demanda constante"
		}`))
	})

	insights, err := svc.Analyze(context.Background(), testProducts(), nil)

	require.NoError(t, err)
	assert.Equal(t, "Inventario estable", insights.Summary)
	assert.Len(t, insights.Warnings, 1)
	assert.Len(t, insights.Suggestions, 1)
	assert.Equal(t, "Demanda constante", insights.Forecast)
}

func TestAnalyze_RespuestaNoJSONEsError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(geminiTextResponse("esto no es json"))
	})

	_, err := svc.Analyze(context.Background(), testProducts(), nil)
	assert.Error(t, err)
}

func TestAnalyze_ErrorHTTPIncluyeElMensajeDeGemini(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"code":429,"message":"cuota agotada"}}`))
	})

	_, err := svc.Analyze(context.Background(), testProducts(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cuota agotada")
}

func TestAnalyze_SinAPIKeyEsError(t *testing.T) {
	svc := NewGeminiService("", "gemini-1.5-flash")
	_, err := svc.Analyze(context.Background(), testProducts(), nil)
	assert.Error(t, err)
}

// ── Chat ──────────────────────────────────────────────────────────────────────

func TestChat_DevuelveElTextoDelModelo(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req geminiRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Empty(t, req.GenerationConfig.ResponseMIMEType,
			"el chat responde texto libre, no JSON")
		assert.Contains(t, req.Contents[0].Parts[0].Text, "¿cuánto stock queda?")

		_, _ = w.Write(geminiTextResponse("  Quedan 2 unidades de TORN-001.  "))
	})

	reply, err := svc.Chat(context.Background(), "¿cuánto stock queda?", testProducts())

	require.NoError(t, err)
	assert.Equal(t, "Quedan 2 unidades de TORN-001.", reply, "el texto llega sin espacios sobrantes")
}

func TestChat_RespuestaVaciaEsError(t *testing.T) {
	svc := newTestService(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	_, err := svc.Chat(context.Background(), "hola", nil)
	assert.Error(t, err)
}
