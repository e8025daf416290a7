// Package dto provides HTTP query parsing, response DTOs, and RFC 9457
// Problem Details error responses for the serve-mode HTTP adapter.
package dto

import "github.com/jsamuelsen11/go-transform-demo/internal/ports"

// ProductListResponse lists the products priced above MinPrice.
type ProductListResponse struct {
	MinPrice float64  `json:"min_price"`
	Products []string `json:"products"`
	Count    int      `json:"count"`
}

// ToProductListResponse builds a ProductListResponse. Products is never null.
func ToProductListResponse(minPrice float64, names []string) ProductListResponse {
	if names == nil {
		names = []string{}
	}
	return ProductListResponse{
		MinPrice: minPrice,
		Products: names,
		Count:    len(names),
	}
}

// ComposeResponse carries both composition orders for one input.
type ComposeResponse struct {
	Input int `json:"input"`
	Then  int `json:"then"`
	After int `json:"after"`
}

// ToComposeResponse converts a ports.Composition.
func ToComposeResponse(c ports.Composition) ComposeResponse {
	return ComposeResponse{Input: c.Input, Then: c.Then, After: c.After}
}

// CheckResultResponse is one self-check outcome.
type CheckResultResponse struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
}

// CheckReportResponse summarizes a self-check run.
type CheckReportResponse struct {
	Passed  int                   `json:"passed"`
	Failed  int                   `json:"failed"`
	Results []CheckResultResponse `json:"results"`
}

// ToCheckReportResponse converts a ports.CheckReport.
func ToCheckReportResponse(r ports.CheckReport) CheckReportResponse {
	results := make([]CheckResultResponse, len(r.Results))
	for i, res := range r.Results {
		results[i] = CheckResultResponse{Name: res.Name, Passed: res.Passed}
	}
	return CheckReportResponse{
		Passed:  r.Passed,
		Failed:  r.Failed,
		Results: results,
	}
}

// BenchmarkResponse reports one loop vs pipeline comparison. Timings are in
// nanoseconds.
type BenchmarkResponse struct {
	Size          int   `json:"size"`
	Parallel      bool  `json:"parallel"`
	LoopSum       int64 `json:"loop_sum"`
	PipelineSum   int64 `json:"pipeline_sum"`
	SumsMatch     bool  `json:"sums_match"`
	LoopNanos     int64 `json:"loop_ns"`
	PipelineNanos int64 `json:"pipeline_ns"`
}

// ToBenchmarkResponse converts a ports.BenchmarkReport.
func ToBenchmarkResponse(r *ports.BenchmarkReport) BenchmarkResponse {
	return BenchmarkResponse{
		Size:          r.Size,
		Parallel:      r.Parallel,
		LoopSum:       r.LoopSum,
		PipelineSum:   r.PipelineSum,
		SumsMatch:     r.LoopSum == r.PipelineSum,
		LoopNanos:     r.LoopElapsed.Nanoseconds(),
		PipelineNanos: r.PipelineElapsed.Nanoseconds(),
	}
}
