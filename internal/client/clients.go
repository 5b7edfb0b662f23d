package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/245124737105-sketch/PolyglotPal/internal/common"
	"github.com/245124737105-sketch/PolyglotPal/internal/config"
	"github.com/245124737105-sketch/PolyglotPal/internal/models"
	"github.com/245124737105-sketch/PolyglotPal/internal/storage/cache"
	"go.uber.org/zap"
)

const AutoDetect = "auto"

type Translator interface {
	Translate(ctx context.Context, text, source, target string) (models.Translation, error)
}

type provider struct {
	name string
	Translator
}

// Chain asks each provider in turn and returns the first successful
// translation.
type Chain struct {
	providers []provider
	log       *zap.Logger
}

func NewChain(log *zap.Logger) *Chain {
	return &Chain{log: log}
}

func (c *Chain) Add(name string, t Translator) *Chain {
	c.providers = append(c.providers, provider{name: name, Translator: t})
	return c
}

func (c *Chain) Translate(ctx context.Context, text, source, target string) (models.Translation, error) {
	var errs []error
	for _, p := range c.providers {
		trans, err := p.Translate(ctx, text, source, target)
		if err == nil {
			return trans, nil
		}

		c.log.Warn("translation provider failed", zap.String("provider", p.name), zap.String("target", target), zap.Error(err))
		errs = append(errs, fmt.Errorf("%s: %w", p.name, err))

		if ctx.Err() != nil {
			break
		}
	}

	if len(errs) == 0 {
		return models.Translation{}, fmt.Errorf("%w: no translation providers configured", common.ErrUpstream)
	}
	return models.Translation{}, fmt.Errorf("%w: %w", common.ErrUpstream, errors.Join(errs...))
}

// Cached remembers successful translations. Failures are never cached.
type Cached struct {
	next  Translator
	cache *cache.Cache
}

func NewCached(next Translator, c *cache.Cache) *Cached {
	return &Cached{next: next, cache: c}
}

func (c *Cached) Translate(ctx context.Context, text, source, target string) (models.Translation, error) {
	key := cache.TranslationKey(text, source, target)
	if trans, ok := c.cache.GetTranslation(key); ok {
		return trans, nil
	}

	trans, err := c.next.Translate(ctx, text, source, target)
	if err != nil {
		return models.Translation{}, err
	}

	c.cache.SetTranslation(key, trans)
	return trans, nil
}

// InitClients builds the provider chain from config, wrapped in the
// translation cache when one is given.
func InitClients(cfg config.TranslatorConfig, c *cache.Cache, log *zap.Logger) (Translator, error) {
	httpClient := &http.Client{Timeout: cfg.Timeout}

	chain := NewChain(log)
	for _, name := range cfg.Providers {
		switch name {
		case "google":
			chain.Add(name, NewGoogleAPI(httpClient))
		case "pythonanywhere":
			chain.Add(name, NewPythonAnyWhereAPI(httpClient))
		case "mymemory":
			chain.Add(name, NewMyMemoryAPI(httpClient))
		default:
			return nil, fmt.Errorf("unknown translation provider %q", name)
		}
	}

	if c == nil {
		return chain, nil
	}
	return NewCached(chain, c), nil
}

func doJSON(ctx context.Context, client *http.Client, rawURL string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; PolyglotPal/1.0)")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return resp, nil
}
