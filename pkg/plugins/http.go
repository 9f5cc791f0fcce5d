package plugins

import (
	"context"

	"github.com/goccy/go-yaml"

	"github.com/craig5/range/internal/transport"
	"github.com/craig5/range/pkg/errors"
	"github.com/craig5/range/pkg/rangedata"
)

// HTTPPluginName is the registry name of the http plugin.
const HTTPPluginName = "http"

// HTTPPlugin fetches a range data document from a configured URL. The
// response is decoded as YAML, which also covers JSON payloads.
//
// Module config keys: url (required), timeout (optional duration),
// auth_token (optional bearer token).
type HTTPPlugin struct {
	// fetch is swappable for tests.
	fetch func(ctx context.Context, cfg ModuleConfig) ([]byte, error)
}

// NewHTTPPlugin creates an http plugin backed by the transport client.
func NewHTTPPlugin() *HTTPPlugin {
	return &HTTPPlugin{
		fetch: func(ctx context.Context, cfg ModuleConfig) ([]byte, error) {
			client := transport.New(cfg.Duration("timeout", transport.DefaultTimeout), cfg.String("auth_token"))
			return client.Get(ctx, cfg.String("url"))
		},
	}
}

// Name returns the registry name of this plugin.
func (p *HTTPPlugin) Name() string {
	return HTTPPluginName
}

// Sync fetches and decodes the configured URL.
func (p *HTTPPlugin) Sync(ctx context.Context, cfg ModuleConfig) (rangedata.Tree, error) {
	url := cfg.String("url")
	if url == "" {
		return nil, &errors.ValidationError{Field: "url", Message: "http plugin requires a url"}
	}

	fetch := p.fetch
	if fetch == nil {
		fetch = NewHTTPPlugin().fetch
	}
	body, err := fetch(ctx, cfg)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := yaml.Unmarshal(body, &doc); err != nil {
		return nil, errors.WrapParse("yaml", url, err)
	}

	tree, ok := rangedata.Normalize(doc).(rangedata.Tree)
	if !ok {
		return nil, &errors.ValidationError{Field: "url", Value: url, Message: "document is not a mapping"}
	}
	return tree, nil
}
