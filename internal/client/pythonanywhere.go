package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

const pythonAnyWhereURL = "https://ftapi.pythonanywhere.com/translate"

type PythonAnyWhereAPI struct {
	client  *http.Client
	baseURL string
}

func NewPythonAnyWhereAPI(client *http.Client) *PythonAnyWhereAPI {
	return &PythonAnyWhereAPI{client: client, baseURL: pythonAnyWhereURL}
}

func (p *PythonAnyWhereAPI) Translate(ctx context.Context, text, source, target string) (models.Translation, error) {
	params := url.Values{}
	if source != "" && source != AutoDetect {
		params.Set("sl", source)
	}
	params.Set("dl", target)
	params.Set("text", text)

	resp, err := doJSON(ctx, p.client, p.baseURL+"?"+params.Encode())
	if err != nil {
		return models.Translation{}, err
	}
	defer resp.Body.Close()

	var result models.TranslationResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return models.Translation{}, fmt.Errorf("failed to decode translation of %q: %w", text, err)
	}

	if result.DestinationText == "" {
		return models.Translation{}, fmt.Errorf("empty translation: %v", text)
	}

	detected := result.SourceLanguage
	if detected == "" {
		detected = source
	}

	return models.Translation{
		Text:          result.DestinationText,
		Pronunciation: result.Pronunciation.DestinationTextPhonetic,
		Source:        detected,
		Target:        target,
	}, nil
}
