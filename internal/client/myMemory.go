package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/245124737105-sketch/PolyglotPal/internal/models"
)

const myMemoryURL = "https://api.mymemory.translated.net/get"

type MyMemoryAPI struct {
	client  *http.Client
	baseURL string
}

func NewMyMemoryAPI(client *http.Client) *MyMemoryAPI {
	return &MyMemoryAPI{client: client, baseURL: myMemoryURL}
}

func (m *MyMemoryAPI) Translate(ctx context.Context, text, source, target string) (models.Translation, error) {
	pairSource := source
	if pairSource == "" || pairSource == AutoDetect {
		pairSource = "Autodetect"
	}

	params := url.Values{}
	params.Set("q", text)
	params.Set("langpair", pairSource+"|"+target)

	resp, err := doJSON(ctx, m.client, m.baseURL+"?"+params.Encode())
	if err != nil {
		return models.Translation{}, err
	}
	defer resp.Body.Close()

	var data models.MyMemoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return models.Translation{}, err
	}

	if data.ResponseBody.ResponseStatus != http.StatusOK {
		return models.Translation{}, fmt.Errorf("mymemory status %d: %s", data.ResponseBody.ResponseStatus, data.ResponseBody.ResponseDetails)
	}

	if data.ResponseBody.TranslatedText == "" {
		return models.Translation{}, errors.New("empty translation")
	}

	detected := source
	if (detected == "" || detected == AutoDetect) && len(data.Matches) > 0 && data.Matches[0].Source != "" {
		detected = data.Matches[0].Source
	}

	return models.Translation{
		Text:   data.ResponseBody.TranslatedText,
		Source: detected,
		Target: target,
	}, nil
}
