package customHttpClient

import (
	"net/http"

	"github.com/bart800/Denham-cms-sub000/internal/config"
)

// Shared pooled transport so outbound AI calls reuse connections instead of
// paying the handshake per document.

var customTransport = &http.Transport{
	MaxIdleConns:        config.MaxIdleConns,
	MaxIdleConnsPerHost: config.MaxIdleConnsPerHost,
	IdleConnTimeout:     config.IdleConnTimeout,
}

func PooledClient() *http.Client {
	return &http.Client{Transport: customTransport}
}
