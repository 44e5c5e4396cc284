package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"lawhub_backend/internal/config"
	"lawhub_backend/internal/services/dto"
	"lawhub_backend/pkg/apperrors"
)

// CompanySearchService proxies company name lookups to the Kakao Local
// keyword API so the REST key never reaches the client.
type CompanySearchService interface {
	Search(ctx context.Context, query string) ([]dto.CompanySearchResult, error)
}

type companySearchService struct {
	client *http.Client
	cfg    config.KakaoConfig
}

func NewCompanySearchService(cfg config.KakaoConfig) CompanySearchService {
	return &companySearchService{
		client: &http.Client{Timeout: 5 * time.Second},
		cfg:    cfg,
	}
}

type kakaoDocument struct {
	PlaceName       string `json:"place_name"`
	AddressName     string `json:"address_name"`
	RoadAddressName string `json:"road_address_name"`
	CategoryName    string `json:"category_name"`
}

type kakaoResponse struct {
	Documents []kakaoDocument `json:"documents"`
}

func (s *companySearchService) Search(ctx context.Context, query string) ([]dto.CompanySearchResult, error) {
	if query == "" {
		return nil, apperrors.NewBadRequestError("Query parameter is required")
	}

	reqURL := fmt.Sprintf("%s?query=%s&size=10", s.cfg.Endpoint, url.QueryEscape(query))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	req.Header.Set("Authorization", "KakaoAK "+s.cfg.RESTAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, apperrors.UpstreamError(err, "kakao")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.UpstreamError(
			fmt.Errorf("kakao api returned status %d", resp.StatusCode), "kakao")
	}

	var body kakaoResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, apperrors.UpstreamError(err, "kakao")
	}

	results := make([]dto.CompanySearchResult, 0, len(body.Documents))
	for _, doc := range body.Documents {
		address := doc.RoadAddressName
		if address == "" {
			address = doc.AddressName
		}
		results = append(results, dto.CompanySearchResult{
			Name:     doc.PlaceName,
			Address:  address,
			Category: doc.CategoryName,
		})
	}

	return results, nil
}
