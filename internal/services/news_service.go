package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/justsurfingit/job-tracker/internal/metrics"
	"github.com/justsurfingit/job-tracker/internal/models"
	"github.com/justsurfingit/job-tracker/internal/validation"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

var ErrNewsAPIKeyMissing = errors.New("news API key is not configured")

// NewsAPIError carries the provider's own status and message.
type NewsAPIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *NewsAPIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("news API error (HTTP %d, %s): %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("news API error (HTTP %d): %s", e.StatusCode, e.Message)
}

const (
	DefaultNewsBaseURL = "https://newsapi.org"
	careerQuery        = "career development"
	newsPageSize       = 20
	maxNewsBodyBytes   = 4 << 20
)

// NewsCategories are the job fields the category feed accepts.
var NewsCategories = []string{
	"technology",
	"healthcare",
	"finance",
	"education",
	"engineering",
	"marketing",
	"design",
}

type NewsQuery struct {
	Query string
	// RequireImage drops articles without an image URL.
	RequireImage bool
}

type NewsService struct {
	BaseURL    string
	HTTPClient *http.Client
	// APIKey is consulted on every call so a key added to the environment
	// later is picked up without a restart.
	APIKey func() string
	Logger *zap.Logger
}

func NewNewsService(baseURL string, timeout time.Duration, logger *zap.Logger) *NewsService {
	if baseURL == "" {
		baseURL = DefaultNewsBaseURL
	}
	return &NewsService{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: timeout},
		APIKey:     func() string { return os.Getenv("NEWS_API_KEY") },
		Logger:     logger,
	}
}

type newsResponse struct {
	Status   string               `json:"status"`
	Code     string               `json:"code"`
	Message  string               `json:"message"`
	Articles []models.NewsArticle `json:"articles"`
}

// CareerFeed is the general career-development feed shown on the news page.
func (s *NewsService) CareerFeed(ctx context.Context) ([]models.NewsArticle, error) {
	return s.Search(ctx, NewsQuery{Query: careerQuery, RequireImage: true})
}

func (s *NewsService) CategoryFeed(ctx context.Context, category string) ([]models.NewsArticle, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if !lo.Contains(NewsCategories, category) {
		return nil, validation.Invalid("category", fmt.Sprintf("must be one of %v", NewsCategories))
	}
	return s.Search(ctx, NewsQuery{Query: category, RequireImage: true})
}

func (s *NewsService) CompanyFeed(ctx context.Context, company string) ([]models.NewsArticle, error) {
	company = strings.TrimSpace(company)
	if company == "" {
		return nil, validation.Invalid("company", "is required")
	}
	return s.Search(ctx, NewsQuery{Query: strconv.Quote(company)})
}

// Search runs a keyword search against the everything endpoint.
func (s *NewsService) Search(ctx context.Context, q NewsQuery) ([]models.NewsArticle, error) {
	apiKey := s.APIKey()
	if apiKey == "" {
		return nil, ErrNewsAPIKeyMissing
	}

	start := time.Now()
	articles, err := s.fetch(ctx, q.Query, apiKey)
	metrics.ObserveExternalCall("news", "search", err, time.Since(start))
	if err != nil {
		s.Logger.Error("news search failed", zap.String("query", q.Query), zap.Error(err))
		return nil, err
	}

	if q.RequireImage {
		articles = lo.Filter(articles, func(a models.NewsArticle, _ int) bool {
			return a.HasImage()
		})
	}
	return articles, nil
}

func (s *NewsService) fetch(ctx context.Context, query, apiKey string) ([]models.NewsArticle, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("sortBy", "publishedAt")
	params.Set("language", "en")
	params.Set("pageSize", strconv.Itoa(newsPageSize))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.BaseURL+"/v2/everything?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("build news request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	// The key stays out of the URL so transport errors never carry it.
	req.Header.Set("X-Api-Key", apiKey)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("news request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxNewsBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read news response: %w", err)
	}

	var data newsResponse
	decodeErr := json.Unmarshal(body, &data)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &NewsAPIError{StatusCode: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
		if decodeErr == nil && data.Message != "" {
			apiErr.Code = data.Code
			apiErr.Message = data.Message
		}
		return nil, apiErr
	}
	if decodeErr != nil {
		return nil, fmt.Errorf("decode news response: %w", decodeErr)
	}
	if data.Status != "ok" {
		return nil, &NewsAPIError{StatusCode: resp.StatusCode, Code: data.Code, Message: data.Message}
	}
	return data.Articles, nil
}
