package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/AthemiS13/nutrix/nutrition"
)

const defaultEstimateBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent"

// EstimateService turns a free-text meal description into a nutrient vector
// via a generative endpoint. From the core's point of view the output is
// just another vector to log; nothing downstream special-cases it.
type EstimateService struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

func NewEstimateService() *EstimateService {
	return &EstimateService{
		apiKey:  os.Getenv("GEMINI_API_KEY"),
		baseURL: defaultEstimateBaseURL,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func NewEstimateServiceWithBaseURL(baseURL string) *EstimateService {
	s := NewEstimateService()
	s.baseURL = baseURL
	return s
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// EstimateNutrients asks the model for absolute macros for the described
// portion and decodes them strictly: a reply missing any of the four fields
// is rejected rather than zero-filled.
func (s *EstimateService) EstimateNutrients(description string, massGrams float64) (nutrition.Vector, error) {
	prompt := fmt.Sprintf(
		"You are a nutritionist. Estimate the nutrition of this meal: %q (total portion %.0f g). "+
			"Respond with only a JSON object with numeric fields calories, protein, fats and carbohydrates "+
			"for the whole portion. No prose, no markdown.",
		description, massGrams,
	)

	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return nutrition.Vector{}, fmt.Errorf("failed to marshal estimate payload: %w", err)
	}

	req, err := http.NewRequest("POST", s.baseURL+"?key="+s.apiKey, bytes.NewReader(body))
	if err != nil {
		return nutrition.Vector{}, fmt.Errorf("failed to create estimate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nutrition.Vector{}, fmt.Errorf("failed to call estimate API: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nutrition.Vector{}, fmt.Errorf("failed to read estimate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nutrition.Vector{}, fmt.Errorf("estimate API error %d: %s", resp.StatusCode, string(raw))
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return nutrition.Vector{}, fmt.Errorf("failed to parse estimate JSON: %w", err)
	}
	if len(gr.Candidates) == 0 || len(gr.Candidates[0].Content.Parts) == 0 {
		return nutrition.Vector{}, fmt.Errorf("estimate API returned no candidates")
	}

	text := stripCodeFences(gr.Candidates[0].Content.Parts[0].Text)
	var fields map[string]float64
	if err := json.Unmarshal([]byte(text), &fields); err != nil {
		return nutrition.Vector{}, fmt.Errorf("estimate reply is not a nutrient object: %w", err)
	}
	return nutrition.VectorFromMap(fields)
}

// Models wrap JSON replies in markdown fences more often than not.
func stripCodeFences(text string) string {
	t := strings.TrimSpace(text)
	t = strings.TrimPrefix(t, "```json")
	t = strings.TrimPrefix(t, "```")
	t = strings.TrimSuffix(t, "```")
	return strings.TrimSpace(t)
}
