package recommend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"kampung_chill/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

const (
	geminiModel    = "gemini-3-flash-preview"
	geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent"

	fallbackNoCredentials = "The spirits suggest a cooling Watermelon treat for today!"
	fallbackOnFailure     = "Cool down with our signature Vanilla Blue – a childhood favorite!"
	fallbackEmptyReply    = "Watermelon is always a classic choice!"
)

// GeminiGateway asks Gemini for a one-line flavour suggestion. Every failure
// path degrades to a static suggestion; callers always get a display string
// and never an error.

type GeminiGateway struct {
	apiKey   string
	endpoint string
	client   *http.Client
	mockMode bool
	log      *logrus.Logger
}

var _ interfaces.IFlavorRecommender = (*GeminiGateway)(nil)

func NewGeminiGateway(apiKey string, log *logrus.Logger) *GeminiGateway {
	g := &GeminiGateway{
		apiKey:   apiKey,
		endpoint: fmt.Sprintf(geminiEndpoint, geminiModel),
		client:   &http.Client{Timeout: 10 * time.Second},
		mockMode: isRecommenderMockEnabled(),
		log:      log,
	}
	if g.mockMode {
		log.Infof("[shop][recommend] mock mode enabled")
	} else if apiKey == "" {
		log.Warnf("[shop][recommend] GEMINI_API_KEY missing, serving fallback suggestions")
	}
	return g
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

func (g *GeminiGateway) Recommend(ctx context.Context, mood, weather string) string {
	if g.mockMode {
		return fmt.Sprintf("Feeling %s on a %s day? Watermelon never misses.", strings.ToLower(mood), strings.ToLower(weather))
	}
	if g.apiKey == "" {
		return fallbackNoCredentials
	}

	prompt := fmt.Sprintf(
		"Current mood: %s. Weather: %s. Recommend ONE flavor from our list "+
			"(Watermelon, Brown Sugar Milk Tea, Hazelnut Coffee, Vanilla Blue, Bubblegum, Chocolate, Honeydew, Durian) "+
			"with a 1-sentence nostalgic reason.",
		mood, weather,
	)

	body, err := json.Marshal(geminiRequest{Contents: []geminiContent{{Parts: []geminiPart{{Text: prompt}}}}})
	if err != nil {
		g.log.Warnf("[shop][recommend] request marshal failed err=%v", err)
		return fallbackOnFailure
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint, bytes.NewReader(body))
	if err != nil {
		g.log.Warnf("[shop][recommend] request build failed err=%v", err)
		return fallbackOnFailure
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		g.log.Warnf("[shop][recommend] gemini call failed err=%v", err)
		return fallbackOnFailure
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.log.Warnf("[shop][recommend] gemini returned status=%d", resp.StatusCode)
		return fallbackOnFailure
	}

	var parsed geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		g.log.Warnf("[shop][recommend] response decode failed err=%v", err)
		return fallbackOnFailure
	}

	text := ""
	if len(parsed.Candidates) > 0 && len(parsed.Candidates[0].Content.Parts) > 0 {
		text = strings.TrimSpace(parsed.Candidates[0].Content.Parts[0].Text)
	}
	if text == "" {
		return fallbackEmptyReply
	}
	return text
}

func isRecommenderMockEnabled() bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv("RECOMMENDER_MOCK")))
	switch v {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
