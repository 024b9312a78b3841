package policy

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	policyerrors "go-hrms/internal/policy/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	CatalogCacheKey = "policy:catalog"
	catalogCacheTTL = 30 * time.Minute
	dateLayout      = "2006-01-02"
)

type Service interface {
	// Seed fills an empty catalog with the default policies and FAQ.
	Seed(ctx context.Context) error
	Catalog(ctx context.Context) (CatalogResponse, error)
	// Search matches query case-insensitively; an empty category or "all"
	// matches every category.
	Search(ctx context.Context, query, category string) (CatalogResponse, error)
	Vote(ctx context.Context, faqID string, helpful bool) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("policy.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("policy.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func (s *service) Seed(ctx context.Context) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	n, err := qtx.CountPolicies(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Debug("policy catalog already seeded", zap.Int64("policies", n))
		return nil
	}

	policies := defaultPolicies()
	for i := range policies {
		policies[i].ID = uuid.New()
	}
	faq := defaultFAQ()
	for i := range faq {
		faq[i].ID = uuid.New()
	}

	if err := qtx.CreatePolicies(ctx, policies); err != nil {
		return err
	}
	if err := qtx.CreateFAQ(ctx, faq); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info("policy catalog seeded", zap.Int("policies", len(policies)), zap.Int("faq", len(faq)))
	return nil
}

func (s *service) Catalog(ctx context.Context) (CatalogResponse, error) {
	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, CatalogCacheKey).Result()
		if err == nil {
			var resp CatalogResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn("policy catalog cache read failed", zap.Error(err))
		}
	}

	v, err, _ := s.sf.Do(CatalogCacheKey, func() (any, error) {
		policies, err := s.repo.ListPolicies(ctx)
		if err != nil {
			return nil, err
		}
		faq, err := s.repo.ListFAQ(ctx)
		if err != nil {
			return nil, err
		}

		resp := CatalogResponse{
			Policies: make([]PolicyResponse, len(policies)),
			FAQ:      make([]FAQResponse, len(faq)),
		}
		for i, p := range policies {
			resp.Policies[i] = mapPolicy(p)
		}
		for i, f := range faq {
			resp.FAQ[i] = mapFAQ(f)
		}

		if s.rdb != nil {
			if body, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, CatalogCacheKey, body, catalogCacheTTL).Err(); err != nil {
					s.logger.Warn("policy catalog cache write failed", zap.Error(err))
				}
			}
		}
		return resp, nil
	})
	if err != nil {
		s.logger.Error("load policy catalog failed", zap.Error(err))
		return CatalogResponse{}, err
	}

	return v.(CatalogResponse), nil
}

func (s *service) Search(ctx context.Context, query, category string) (CatalogResponse, error) {
	catalog, err := s.Catalog(ctx)
	if err != nil {
		return CatalogResponse{}, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	category = strings.ToLower(strings.TrimSpace(category))
	inCategory := func(c string) bool {
		return category == "" || category == "all" || c == category
	}

	resp := CatalogResponse{Policies: []PolicyResponse{}, FAQ: []FAQResponse{}}
	for _, p := range catalog.Policies {
		if inCategory(p.Category) && matches(q, p.Title, p.Content, p.Tags) {
			resp.Policies = append(resp.Policies, p)
		}
	}
	for _, f := range catalog.FAQ {
		if inCategory(f.Category) && matches(q, f.Question, f.Answer, f.Tags) {
			resp.FAQ = append(resp.FAQ, f)
		}
	}
	return resp, nil
}

func (s *service) Vote(ctx context.Context, faqID string, helpful bool) error {
	id, err := uuid.Parse(faqID)
	if err != nil {
		return policyerrors.ErrInvalidFAQID
	}

	ok, err := s.repo.Vote(ctx, id, helpful)
	if err != nil {
		s.logger.Error("faq vote failed", zap.String("faq_id", faqID), zap.Error(err))
		return err
	}
	if !ok {
		return policyerrors.ErrFAQNotFound
	}

	s.invalidate(ctx)
	s.logger.Info("faq vote recorded", zap.String("faq_id", faqID), zap.Bool("helpful", helpful))
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, CatalogCacheKey).Err(); err != nil {
		s.logger.Error("policy catalog cache invalidation failed", zap.Error(err))
	}
}

func matches(q, a, b string, tags []string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(a), q) || strings.Contains(strings.ToLower(b), q) {
		return true
	}
	for _, t := range tags {
		if strings.Contains(strings.ToLower(t), q) {
			return true
		}
	}
	return false
}

func mapPolicy(p Policy) PolicyResponse {
	return PolicyResponse{
		ID:            p.ID.String(),
		Title:         p.Title,
		Category:      p.Category,
		Content:       p.Content,
		EffectiveDate: p.EffectiveDate.Format(dateLayout),
		LastUpdated:   p.LastUpdated.Format(dateLayout),
		Tags:          p.Tags,
	}
}

func mapFAQ(f FAQItem) FAQResponse {
	return FAQResponse{
		ID:         f.ID.String(),
		Question:   f.Question,
		Answer:     f.Answer,
		Category:   f.Category,
		Tags:       f.Tags,
		Helpful:    f.Helpful,
		NotHelpful: f.NotHelpful,
	}
}
