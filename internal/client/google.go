package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

const googleURL = "https://translate.googleapis.com/translate_a/single"

type GoogleAPI struct {
	client  *http.Client
	baseURL string
}

func NewGoogleAPI(client *http.Client) *GoogleAPI {
	return &GoogleAPI{client: client, baseURL: googleURL}
}

func (g *GoogleAPI) Translate(ctx context.Context, text, source, target string) (models.Translation, error) {
	if source == "" {
		source = AutoDetect
	}

	params := url.Values{}
	params.Set("client", "gtx")
	params.Set("sl", source)
	params.Set("tl", target)
	params.Add("dt", "t")
	params.Add("dt", "rm")
	params.Set("q", text)

	resp, err := doJSON(ctx, g.client, g.baseURL+"?"+params.Encode())
	if err != nil {
		return models.Translation{}, err
	}
	defer resp.Body.Close()

	var data models.GoogleResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.Translation{}, err
	}

	trans, err := parseGoogle(data)
	if err != nil {
		return models.Translation{}, err
	}

	trans.Target = target
	if trans.Source == "" {
		trans.Source = source
	}
	return trans, nil
}

// parseGoogle reads the positional gtx payload:
// [[["translated","source",...], ..., [null,null,"translit","source translit"]], null, "detected"].
func parseGoogle(data models.GoogleResponse) (models.Translation, error) {
	if len(data) == 0 {
		return models.Translation{}, errors.New("empty response")
	}

	segments, ok := data[0].([]any)
	if !ok {
		return models.Translation{}, errors.New("malformed response")
	}

	var (
		text          strings.Builder
		pronunciation string
	)
	for _, s := range segments {
		seg, ok := s.([]any)
		if !ok || len(seg) == 0 {
			continue
		}
		if part, ok := seg[0].(string); ok {
			text.WriteString(part)
			continue
		}
		if len(seg) > 2 {
			if translit, ok := seg[2].(string); ok {
				pronunciation = translit
			}
		}
	}

	if text.Len() == 0 {
		return models.Translation{}, errors.New("empty translation")
	}

	trans := models.Translation{
		Text:          text.String(),
		Pronunciation: pronunciation,
	}
	if len(data) > 2 {
		if detected, ok := data[2].(string); ok {
			trans.Source = detected
		}
	}
	return trans, nil
}
