package clients

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/vadiminshakov/late/internal/domain"
)

const (
	defaultDexScreenerTimeout = 10 * time.Second
	maxResponseBytes          = 1 << 20
)

var (
	// ErrNetwork transport failure or non-2xx response.
	ErrNetwork = errors.New("market data source unavailable")
	// ErrDataShape response did not contain a usable pair record.
	ErrDataShape = errors.New("unexpected market data shape")
)

// networkError keeps the transport cause while matching ErrNetwork.
type networkError struct {
	op  string
	err error
}

func (e *networkError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrNetwork, e.op, e.err)
}

func (e *networkError) Unwrap() error { return e.err }

func (e *networkError) Is(target error) bool { return target == ErrNetwork }

// pair record paths, relative to the first element of "pairs"
const (
	pathMarketCap   = "marketCap"
	pathVolume24h   = "volume.h24"
	pathPriceUSD    = "priceUsd"
	pathChange24h   = "priceChange.h24"
	pathLiquidity   = "liquidity.usd"
	pathPairsRecord = "pairs"
)

// DexScreenerClient reads the latest pair record from the DexScreener API.
type DexScreenerClient struct {
	url        string
	httpClient *http.Client
}

// NewDexScreenerClient creates a client for the given pair endpoint.
// A zero timeout falls back to the default.
func NewDexScreenerClient(url string, timeout time.Duration) *DexScreenerClient {
	if timeout <= 0 {
		timeout = defaultDexScreenerTimeout
	}
	return &DexScreenerClient{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchSnapshot issues a single uncached GET and maps the first pair record.
// Fields absent from the record, or not numeric, are NaN in the result.
func (c *DexScreenerClient) FetchSnapshot(ctx context.Context) (domain.MarketSnapshot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return domain.EmptySnapshot(), errors.Wrap(err, "failed to create HTTP request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.EmptySnapshot(), &networkError{op: "request failed", err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes+1))
	if err != nil {
		return domain.EmptySnapshot(), &networkError{op: "failed to read response body", err: err}
	}
	if len(body) > maxResponseBytes {
		return domain.EmptySnapshot(), errors.Wrapf(ErrDataShape, "response exceeds %d bytes", maxResponseBytes)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return domain.EmptySnapshot(), errors.Wrap(ErrNetwork, fmt.Sprintf("API error: %d", resp.StatusCode))
	}

	return parsePairs(body)
}

func parsePairs(body []byte) (domain.MarketSnapshot, error) {
	if !gjson.ValidBytes(body) {
		return domain.EmptySnapshot(), errors.Wrap(ErrDataShape, "response is not valid JSON")
	}

	pairs := gjson.GetBytes(body, pathPairsRecord)
	if !pairs.IsArray() {
		return domain.EmptySnapshot(), errors.Wrap(ErrDataShape, "no pairs in response")
	}

	records := pairs.Array()
	if len(records) == 0 {
		return domain.EmptySnapshot(), errors.Wrap(ErrDataShape, "pairs list is empty")
	}

	first := records[0]
	if !first.IsObject() {
		return domain.EmptySnapshot(), errors.Wrap(ErrDataShape, "pair record is not an object")
	}

	return domain.MarketSnapshot{
		MarketCapUSD:      number(first.Get(pathMarketCap)),
		Volume24hUSD:      number(first.Get(pathVolume24h)),
		PriceUSD:          number(first.Get(pathPriceUSD)),
		PriceChange24hPct: number(first.Get(pathChange24h)),
		LiquidityUSD:      number(first.Get(pathLiquidity)),
	}, nil
}

// number accepts JSON numbers and numeric strings, anything else is NaN.
func number(r gjson.Result) float64 {
	var v float64
	switch r.Type {
	case gjson.Number:
		v = r.Num
	case gjson.String:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(r.Str), 64)
		if err != nil {
			return math.NaN()
		}
		v = parsed
	default:
		return math.NaN()
	}

	if math.IsInf(v, 0) {
		return math.NaN()
	}
	return v
}
