package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"comet-food-bot/internal/config"
)

const (
	connectTimeout = 5 * time.Second
	readTimeout    = 15 * time.Second

	searchPageSize = 5 // fixed result cap requested from the search endpoint
	maxRecipes     = 5 // qualifying details collected before enrichment stops

	searchMaxAttempts = 3
	searchBaseDelay   = time.Second // doubles per attempt
)

// Client calls the Spoonacular recipe API on behalf of a plan.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	cache      *DetailCache

	// overridable in tests
	retryBaseDelay time.Duration
}

// NewClient creates a Spoonacular client using the injected detail cache.
func NewClient(cfg *config.Config, cache *DetailCache) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: readTimeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{Timeout: connectTimeout}).DialContext,
			},
		},
		baseURL:        strings.TrimRight(cfg.SpoonacularBaseURL, "/"),
		apiKey:         cfg.SpoonacularAPIKey,
		cache:          cache,
		retryBaseDelay: searchBaseDelay,
	}
}

// FindCandidates runs the ingredient-based recipe search for the plan
// constraints. Timeouts are retried up to 3 times with exponential backoff and
// then surface as ErrUpstreamTimeout; any other upstream failure is returned
// immediately as an UpstreamError.
func (c *Client) FindCandidates(ctx context.Context, cons Constraints) ([]Candidate, error) {
	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("ingredients", strings.Join(cons.Ingredients, ","))
	params.Set("maxReadyTime", strconv.Itoa(cons.TimeMinutes))
	params.Set("maxPrice", strconv.FormatFloat(cons.Budget, 'f', -1, 64))
	params.Set("number", strconv.Itoa(searchPageSize))
	params.Set("ranking", "2")
	params.Set("ignorePantry", "true")
	if goal := strings.ToLower(cons.Goal); goal != "" && goal != "none" {
		params.Set("diet", goal)
	}

	searchURL := fmt.Sprintf("%s/recipes/findByIngredients?%s", c.baseURL, params.Encode())

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = c.retryBaseDelay
	policy.Multiplier = 2
	policy.RandomizationFactor = 0

	var candidates []Candidate
	operation := func() error {
		body, err := c.get(ctx, searchURL)
		if err != nil {
			if isTimeout(err) {
				return err // retryable
			}
			return backoff.Permanent(err)
		}
		if err := json.Unmarshal(body, &candidates); err != nil {
			return backoff.Permanent(fmt.Errorf("failed to decode search response: %w", err))
		}
		return nil
	}

	err := backoff.Retry(operation,
		backoff.WithContext(backoff.WithMaxRetries(policy, searchMaxAttempts-1), ctx))
	if err != nil {
		if isTimeout(err) {
			return nil, fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return nil, err
	}
	return candidates, nil
}

// FetchDetail returns the full detail for a recipe id, read through the cache.
func (c *Client) FetchDetail(ctx context.Context, id int) (*RecipeDetail, error) {
	return c.cache.GetOrFill(id, func() (*RecipeDetail, error) {
		params := url.Values{}
		params.Set("apiKey", c.apiKey)
		params.Set("includeNutrition", "true")
		detailURL := fmt.Sprintf("%s/recipes/%d/information?%s", c.baseURL, id, params.Encode())

		body, err := c.get(ctx, detailURL)
		if err != nil {
			return nil, err
		}
		var detail RecipeDetail
		if err := json.Unmarshal(body, &detail); err != nil {
			return nil, fmt.Errorf("failed to decode detail response: %w", err)
		}
		return &detail, nil
	})
}

// FilterAndEnrich fetches the detail for each candidate and keeps the ones
// that satisfy the plan constraints: ready time within the ceiling, price per
// serving (cents) within budget, and the nutrition goal predicate. Duplicate
// candidate ids are skipped, a failed detail fetch skips only that candidate,
// and enrichment stops once maxRecipes details qualify.
func (c *Client) FilterAndEnrich(ctx context.Context, candidates []Candidate, cons Constraints) []RecipeDetail {
	var accepted []RecipeDetail
	seen := make(map[int]struct{})

	for _, cand := range candidates {
		if _, dup := seen[cand.ID]; dup {
			continue
		}
		seen[cand.ID] = struct{}{}

		detail, err := c.FetchDetail(ctx, cand.ID)
		if err != nil {
			log.Printf("Warning: failed to fetch details for recipe %d: %v", cand.ID, err)
			continue
		}

		if detail.ReadyInMinutes > cons.TimeMinutes {
			continue
		}
		if detail.PricePerServing/100 > cons.Budget {
			continue
		}
		if !goalSatisfied(strings.ToLower(cons.Goal), detail) {
			continue
		}

		accepted = append(accepted, *detail)
		if len(accepted) >= maxRecipes {
			break
		}
	}
	return accepted
}

// get performs one GET request and maps non-2xx responses to UpstreamError.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
		}
	}
	return body, nil
}

// isTimeout reports whether err is a network timeout or deadline expiry.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
