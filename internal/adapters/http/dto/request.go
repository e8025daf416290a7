package dto

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/go-transform-demo/internal/domain"
)

const (
	msgMustBeInteger     = "must be an integer"
	msgMustBeNonNegative = "must be a finite, non-negative number"
	msgOutOfRange        = "must be between -2147483648 and 2147483647"
)

// ProductsQuery holds the query parameters of GET /api/v1/products.
type ProductsQuery struct {
	MinPrice float64
}

// ParseProductsQuery reads min_price, falling back to defaultMin when absent.
func ParseProductsQuery(q url.Values, defaultMin float64) (ProductsQuery, error) {
	out := ProductsQuery{MinPrice: defaultMin}

	raw := strings.TrimSpace(q.Get("min_price"))
	if raw == "" {
		return out, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return out, &domain.ValidationError{Fields: map[string]string{"min_price": msgMustBeNonNegative}}
	}
	out.MinPrice = v
	return out, nil
}

// ComposeQuery holds the query parameters of GET /api/v1/compose.
type ComposeQuery struct {
	Input int
}

// ParseComposeQuery reads the required input parameter. It is limited to the
// 32-bit range so that both composition orders stay exact.
func ParseComposeQuery(q url.Values) (ComposeQuery, error) {
	raw := strings.TrimSpace(q.Get("input"))
	if raw == "" {
		return ComposeQuery{}, &domain.ValidationError{Fields: map[string]string{"input": domain.MsgRequired}}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return ComposeQuery{}, &domain.ValidationError{Fields: map[string]string{"input": msgMustBeInteger}}
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return ComposeQuery{}, &domain.ValidationError{Fields: map[string]string{"input": msgOutOfRange}}
	}
	return ComposeQuery{Input: int(v)}, nil
}

// BenchmarkQuery holds the query parameters of GET /api/v1/benchmark.
type BenchmarkQuery struct {
	Size int
}

// ParseBenchmarkQuery reads size, falling back to defaultSize when absent.
// Range checks are left to the service.
func ParseBenchmarkQuery(q url.Values, defaultSize int) (BenchmarkQuery, error) {
	raw := strings.TrimSpace(q.Get("size"))
	if raw == "" {
		return BenchmarkQuery{Size: defaultSize}, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return BenchmarkQuery{}, &domain.ValidationError{Fields: map[string]string{"size": msgMustBeInteger}}
	}
	return BenchmarkQuery{Size: v}, nil
}
