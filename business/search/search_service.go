package search

import (
	"context"
	"errors"
	"fmt"
	"math"

	"myLaptopHub/business/recommend"
	"myLaptopHub/domain"
	"myLaptopHub/pkg/logger"
	"myLaptopHub/pkg/metrics"
)

// ranking strategies, also used as metric labels
const (
	StrategyTFIDFOnly      = "tfidf_only"
	StrategyHybridGeneral  = "hybrid_general"
	StrategyHybridSpecific = "hybrid_specific"
	StrategyCBFTFIDF       = "cbf_tfidf"
	StrategyFeed           = "hybrid_feed"
)

const (
	searchResultLimit = 20
	feedResultLimit   = 10

	feedCBFWeight = 0.7
	feedCFWeight  = 0.3
)

// ---- Repository interfaces ----

type LaptopRepository interface {
	FindAll(ctx context.Context) ([]domain.Laptop, error)
	FindByIDs(ctx context.Context, ids []uint64) ([]domain.Laptop, error)
}

type ReviewRepository interface {
	FindAll(ctx context.Context) ([]domain.Review, error)
	RatingSummaries(ctx context.Context) (map[uint64]domain.RatingSummary, error)
}

type ClickRepository interface {
	FindByUser(ctx context.Context, userID uint64) ([]domain.UserClick, error)
	FindAll(ctx context.Context) ([]domain.UserClick, error)
}

type searchService struct {
	laptopRepo LaptopRepository
	reviewRepo ReviewRepository
	clickRepo  ClickRepository

	tfidf *recommend.TFIDFScorer
	cbf   *recommend.CBFScorer
	cf    *recommend.CFScorer
}

func NewSearchService(
	laptopRepo LaptopRepository,
	reviewRepo ReviewRepository,
	clickRepo ClickRepository,
	stemmer recommend.Stemmer,
	cfg recommend.Config,
) *searchService {
	return &searchService{
		laptopRepo: laptopRepo,
		reviewRepo: reviewRepo,
		clickRepo:  clickRepo,
		tfidf:      recommend.NewTFIDFScorer(recommend.NewTokenizer(stemmer), cfg),
		cbf:        recommend.NewCBFScorer(cfg),
		cf:         recommend.NewCFScorer(cfg),
	}
}

// Search ranks the catalog against a free-text query. The blend depends
// on what is available: TF-IDF alone for anonymous users, the full
// three-way hybrid for users with click history, and CBF+TF-IDF when
// the collaborative signal is too thin.
func (s *searchService) Search(ctx context.Context, userID uint64, rawQuery string) (*domain.SearchResponse, error) {
	if rawQuery == "" {
		logger.Error("empty search query")
		return nil, errors.New("search query is required")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when searching")
		return nil, fmt.Errorf("context error: %w", err)
	}

	query := NormalizeQuery(rawQuery)
	priceRange := ExtractPriceRange(query)
	cleanQuery := RemovePriceTerms(query)
	brandFilter := ExtractBrandFilter(cleanQuery)
	cleanQuery = RemoveBrandTerms(cleanQuery)
	isSpecific := IsSpecificQuery(query)
	isHardware := IsSpecificHardwareQuery(cleanQuery)

	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load laptops for search", err)
		return nil, err
	}

	reviews, err := s.reviewRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load reviews for search", err)
		return nil, err
	}

	ratings, err := s.reviewRepo.RatingSummaries(ctx)
	if err != nil {
		logger.Error("failed to load rating summaries", err)
		return nil, err
	}

	byID := make(map[uint64]domain.Laptop, len(laptops))
	for _, l := range laptops {
		byID[l.ID] = l
	}

	tfidfScores := normalizeScores(s.tfidf.Score(cleanQuery, laptops, groupReviews(reviews), priceRange))

	strategy := StrategyTFIDFOnly
	combined := combineScores(tfidfScores, nil, nil, blendWeights{TFIDF: 1}, byID, brandFilter)

	clicks := s.userClicks(ctx, userID)
	if len(clicks) > 0 {
		cbfScores := s.cbf.Score(clicks, laptops, ratings)
		cfScores := s.collaborativeScores(ctx, userID, laptops, ratings)

		if cfInsufficient(cfScores) {
			strategy = StrategyCBFTFIDF
			metrics.StrategyFallbacksTotal.WithLabelValues("cf").Inc()

			tfidfWeight := 0.6
			if isSpecific || isHardware {
				tfidfWeight = 0.7
			}
			combined = combineScores(tfidfScores, cbfScores, nil, queryPriorityWeights(tfidfWeight), byID, brandFilter)
		} else if isSpecific || isHardware {
			strategy = StrategyHybridSpecific

			tfidfWeight := 0.6
			if isHardware {
				tfidfWeight = 0.7
			}
			combined = combineScores(tfidfScores, cbfScores, cfScores, specificWeights(tfidfWeight), byID, brandFilter)
		} else {
			strategy = StrategyHybridGeneral
			combined = combineScores(tfidfScores, cbfScores, cfScores, generalWeights, byID, brandFilter)
		}
	}

	if brandFilter != "" {
		combined = applyBrandFilter(combined, byID, brandFilter)
	}

	top := topScores(filterLowScores(combined), searchResultLimit)

	metrics.SearchRequestsTotal.WithLabelValues(strategy).Inc()
	metrics.SearchResultCount.Observe(float64(len(top)))

	if len(top) == 0 {
		logger.Warn("no search results",
			"query", query,
			"clean_query", cleanQuery,
			"strategy", strategy,
			"brand_filter", brandFilter,
			"trace_id", recommend.TraceIDFromContext(ctx),
		)
		return &domain.SearchResponse{Strategy: strategy, Results: []domain.SearchResult{}}, nil
	}

	results, err := s.buildResults(ctx, top, ratings)
	if err != nil {
		return nil, err
	}

	logger.Info("search results",
		"query", query,
		"clean_query", cleanQuery,
		"strategy", strategy,
		"brand_filter", brandFilter,
		"result_count", len(results),
		"trace_id", recommend.TraceIDFromContext(ctx),
	)

	return &domain.SearchResponse{Strategy: strategy, Results: results}, nil
}

// ForYou builds the personalized landing feed. CBF carries most of the
// weight; CF refines it when enough neighbours exist.
func (s *searchService) ForYou(ctx context.Context, userID uint64, limit int) (*domain.SearchResponse, error) {
	if userID == 0 {
		logger.Error("invalid user id for feed")
		return nil, errors.New("invalid user id")
	}

	if err := ctx.Err(); err != nil {
		logger.Error("context error when building feed")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if limit <= 0 || limit > feedResultLimit {
		limit = feedResultLimit
	}

	laptops, err := s.laptopRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load laptops for feed", err)
		return nil, err
	}

	ratings, err := s.reviewRepo.RatingSummaries(ctx)
	if err != nil {
		logger.Error("failed to load rating summaries", err)
		return nil, err
	}

	clicks := s.userClicks(ctx, userID)
	cbfScores := s.cbf.Score(clicks, laptops, ratings)
	cfScores := s.collaborativeScores(ctx, userID, laptops, ratings)

	cbfWeight, cfWeight := feedCBFWeight, feedCFWeight
	if len(cbfScores) == 0 {
		cbfWeight = 0
	}
	if len(cfScores) == 0 {
		cfWeight = 0
	}
	if cbfWeight == 0 && cfWeight == 0 {
		return &domain.SearchResponse{Strategy: StrategyFeed, Results: []domain.SearchResult{}}, nil
	}

	combined := make(map[uint64]domain.LaptopScore, len(laptops))
	for _, l := range laptops {
		score := cbfScores[l.ID]*cbfWeight + cfScores[l.ID]*cfWeight
		if score == 0 {
			continue
		}
		combined[l.ID] = domain.LaptopScore{
			LaptopID: l.ID,
			Score:    score,
			CBF:      cbfScores[l.ID],
			CF:       cfScores[l.ID],
		}
	}

	top := topScores(combined, limit)
	metrics.FeedRequestsTotal.Inc()

	results, err := s.buildResults(ctx, top, ratings)
	if err != nil {
		return nil, err
	}

	logger.Info("feed built",
		"user_id", userID,
		"result_count", len(results),
		"trace_id", recommend.TraceIDFromContext(ctx),
	)

	return &domain.SearchResponse{Strategy: StrategyFeed, Results: results}, nil
}

// userClicks loads click history, degrading to anonymous search on error.
func (s *searchService) userClicks(ctx context.Context, userID uint64) []domain.UserClick {
	if userID == 0 {
		return nil
	}
	clicks, err := s.clickRepo.FindByUser(ctx, userID)
	if err != nil {
		logger.Error("failed to load user clicks, continuing without personalization", err)
		return nil
	}
	return clicks
}

// collaborativeScores runs CF, degrading to nil scores on error.
func (s *searchService) collaborativeScores(ctx context.Context, userID uint64, laptops []domain.Laptop, ratings map[uint64]domain.RatingSummary) map[uint64]float64 {
	allClicks, err := s.clickRepo.FindAll(ctx)
	if err != nil {
		logger.Error("failed to load click matrix, skipping collaborative scores", err)
		return nil
	}

	grouped := make(map[uint64][]domain.UserClick)
	for _, c := range allClicks {
		grouped[c.UserID] = append(grouped[c.UserID], c)
	}

	return s.cf.Score(userID, grouped, laptops, ratings)
}

// cfInsufficient mirrors the fallback rule: no nonzero scores, or a
// candidate pool too small to trust.
func cfInsufficient(cfScores map[uint64]float64) bool {
	nonzero := 0
	for _, v := range cfScores {
		if v > 0 {
			nonzero++
		}
	}
	return nonzero == 0 || len(cfScores) < 5
}

func (s *searchService) buildResults(ctx context.Context, top []domain.LaptopScore, ratings map[uint64]domain.RatingSummary) ([]domain.SearchResult, error) {
	ids := make([]uint64, len(top))
	for i, t := range top {
		ids[i] = t.LaptopID
	}

	laptops, err := s.laptopRepo.FindByIDs(ctx, ids)
	if err != nil {
		logger.Error("failed to load result laptops", err)
		return nil, err
	}

	byID := make(map[uint64]domain.Laptop, len(laptops))
	for _, l := range laptops {
		byID[l.ID] = l
	}

	results := make([]domain.SearchResult, 0, len(top))
	for _, t := range top {
		l, ok := byID[t.LaptopID]
		if !ok {
			continue
		}
		summary := ratings[t.LaptopID]
		results = append(results, domain.SearchResult{
			Laptop:      l,
			Score:       math.Round(t.Score*10000) / 10000,
			AvgRating:   math.Round(summary.AvgRating*10) / 10,
			ReviewCount: summary.ReviewCount,
		})
	}
	return results, nil
}

func groupReviews(reviews []domain.Review) map[uint64][]domain.Review {
	grouped := make(map[uint64][]domain.Review)
	for _, r := range reviews {
		grouped[r.LaptopID] = append(grouped[r.LaptopID], r)
	}
	return grouped
}
