package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/angelmondragon/adspend-backend/internal/adspend"
	"github.com/angelmondragon/adspend-backend/pkg/config"
	"github.com/angelmondragon/adspend-backend/pkg/logger"
	"github.com/angelmondragon/adspend-backend/pkg/types"
)

// NotRecognized is the answer for any question outside the supported one.
const NotRecognized = "Question not recognized"

var requiredTerms = []string{"last 30 days", "cac", "roas"}

var answeredMetrics = map[string]bool{
	adspend.MetricCAC:  true,
	adspend.MetricROAS: true,
}

// Doer is the subset of *http.Client the router needs.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Router answers the 30-day CAC/ROAS question by calling the comparison endpoint.
type Router struct {
	baseURL *url.URL
	client  Doer
	logg    *logger.Logger
}

func NewRouter(cfg config.AgentConfig, client Doer, logg *logger.Logger) (*Router, error) {
	base, err := url.Parse(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"))
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid agent base url %q", cfg.BaseURL)
	}
	if client == nil {
		client = &http.Client{Timeout: cfg.Timeout}
	}
	if logg == nil {
		logg = logger.Nop()
	}
	return &Router{baseURL: base, client: client, logg: logg}, nil
}

// Matches reports whether the question mentions every required term, ignoring case.
func Matches(question string) bool {
	q := strings.ToLower(question)
	for _, term := range requiredTerms {
		if !strings.Contains(q, term) {
			return false
		}
	}
	return true
}

// Answer is either the filtered comparison rows or a not-recognized error.
type Answer struct {
	Rows  []adspend.ComparisonRow
	Error string
}

// Payload returns the JSON shape printed to callers.
func (a Answer) Payload() any {
	if a.Error != "" {
		return map[string]string{"error": a.Error}
	}
	if a.Rows == nil {
		return []adspend.ComparisonRow{}
	}
	return a.Rows
}

func (r *Router) Ask(ctx context.Context, question string) (Answer, error) {
	if !Matches(question) {
		r.logg.Info(r.logg.WithField(ctx, "question", question), "agent.question_not_recognized")
		return Answer{Error: NotRecognized}, nil
	}

	rows, err := r.compare30d(ctx)
	if err != nil {
		return Answer{}, err
	}

	filtered := make([]adspend.ComparisonRow, 0, len(answeredMetrics))
	for _, row := range rows {
		if answeredMetrics[row.Metric] {
			filtered = append(filtered, row)
		}
	}
	return Answer{Rows: filtered}, nil
}

func (r *Router) compare30d(ctx context.Context) ([]adspend.ComparisonRow, error) {
	endpoint := r.baseURL.JoinPath("compare_30d")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build compare request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp)
	}

	var rows []adspend.ComparisonRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode compare response: %w", err)
	}
	return rows, nil
}

func statusError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var envelope types.ErrorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("compare_30d returned %d: %s", resp.StatusCode, envelope.Error.Message)
	}
	return fmt.Errorf("compare_30d returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
}
