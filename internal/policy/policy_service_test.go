package policy_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-hrms/internal/policy"
	policyerrors "go-hrms/internal/policy/errors"
	policyMock "go-hrms/internal/policy/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	repo      *policyMock.MockRepository
	redisMock redismock.ClientMock
	service   policy.Service
}

func newServiceDeps(t *testing.T) *serviceDeps {
	t.Helper()
	ctrl := gomock.NewController(t)

	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rdb, redisMock := redismock.NewClientMock()
	repo := policyMock.NewMockRepository(ctrl)
	repo.EXPECT().WithTx(gomock.Any()).Return(repo).AnyTimes()

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		repo:      repo,
		redisMock: redisMock,
		service:   policy.NewService(db, repo, rdb, zap.NewNop()),
	}
}

func samplePolicies() []policy.Policy {
	effective := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return []policy.Policy{
		{ID: uuid.New(), Title: "Sick Leave Policy", Category: "sick", Content: "Medical certificates are required.", EffectiveDate: effective, LastUpdated: effective, Tags: []string{"medical"}},
		{ID: uuid.New(), Title: "Annual Leave Policy", Category: "vacation", Content: "20 days per year.", EffectiveDate: effective, LastUpdated: effective, Tags: []string{"annual", "approval"}},
	}
}

func sampleFAQ() []policy.FAQItem {
	return []policy.FAQItem{
		{ID: uuid.New(), Question: "How long does leave approval take?", Answer: "2-3 business days.", Category: "approval", Tags: []string{"timeline"}, Helpful: 38, NotHelpful: 5},
		{ID: uuid.New(), Question: "How do I sync my calendar?", Answer: "Connect Google Calendar.", Category: "calendar", Tags: []string{"sync"}, Helpful: 28, NotHelpful: 4},
	}
}

func TestPolicyService_Catalog(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := newServiceDeps(t)
		cached := policy.CatalogResponse{Policies: []policy.PolicyResponse{{ID: "p-1", Title: "Cached"}}, FAQ: []policy.FAQResponse{}}
		body, _ := json.Marshal(cached)
		deps.redisMock.ExpectGet(policy.CatalogCacheKey).SetVal(string(body))

		resp, err := deps.service.Catalog(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		deps := newServiceDeps(t)
		policies, faq := samplePolicies(), sampleFAQ()
		deps.redisMock.ExpectGet(policy.CatalogCacheKey).RedisNil()
		deps.repo.EXPECT().ListPolicies(ctx).Return(policies, nil)
		deps.repo.EXPECT().ListFAQ(ctx).Return(faq, nil)

		want := policy.CatalogResponse{
			Policies: []policy.PolicyResponse{
				{ID: policies[0].ID.String(), Title: "Sick Leave Policy", Category: "sick", Content: "Medical certificates are required.", EffectiveDate: "2024-01-01", LastUpdated: "2024-01-01", Tags: []string{"medical"}},
				{ID: policies[1].ID.String(), Title: "Annual Leave Policy", Category: "vacation", Content: "20 days per year.", EffectiveDate: "2024-01-01", LastUpdated: "2024-01-01", Tags: []string{"annual", "approval"}},
			},
			FAQ: []policy.FAQResponse{
				{ID: faq[0].ID.String(), Question: "How long does leave approval take?", Answer: "2-3 business days.", Category: "approval", Tags: []string{"timeline"}, Helpful: 38, NotHelpful: 5},
				{ID: faq[1].ID.String(), Question: "How do I sync my calendar?", Answer: "Connect Google Calendar.", Category: "calendar", Tags: []string{"sync"}, Helpful: 28, NotHelpful: 4},
			},
		}
		body, _ := json.Marshal(want)
		deps.redisMock.ExpectSet(policy.CatalogCacheKey, body, 30*time.Minute).SetVal("OK")

		resp, err := deps.service.Catalog(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, resp)
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("repository failure", func(t *testing.T) {
		deps := newServiceDeps(t)
		deps.redisMock.ExpectGet(policy.CatalogCacheKey).RedisNil()
		deps.repo.EXPECT().ListPolicies(ctx).Return(nil, errors.New("db down"))

		_, err := deps.service.Catalog(ctx)

		assert.Error(t, err)
	})
}

func TestPolicyService_Search(t *testing.T) {
	ctx := context.Background()
	svc := policy.NewService(nil, &staticRepo{policies: samplePolicies(), faq: sampleFAQ()}, nil, zap.NewNop())

	cases := []struct {
		name         string
		query        string
		category     string
		wantPolicies int
		wantFAQ      int
	}{
		{"everything", "", "", 2, 2},
		{"title match is case-insensitive", "SICK", "", 1, 0},
		{"tag match", "approval", "", 1, 1},
		{"answer match", "google", "all", 0, 1},
		{"category narrows", "", "calendar", 0, 1},
		{"no match", "maternity", "", 0, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := svc.Search(ctx, tc.query, tc.category)
			require.NoError(t, err)
			assert.Len(t, resp.Policies, tc.wantPolicies)
			assert.Len(t, resp.FAQ, tc.wantFAQ)
		})
	}
}

func TestPolicyService_Vote(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("records vote and invalidates cache", func(t *testing.T) {
		deps := newServiceDeps(t)
		deps.repo.EXPECT().Vote(ctx, id, true).Return(true, nil)
		deps.redisMock.ExpectDel(policy.CatalogCacheKey).SetVal(1)

		assert.NoError(t, deps.service.Vote(ctx, id.String(), true))
		assert.NoError(t, deps.redisMock.ExpectationsWereMet())
	})

	t.Run("unknown item", func(t *testing.T) {
		deps := newServiceDeps(t)
		deps.repo.EXPECT().Vote(ctx, id, false).Return(false, nil)

		assert.ErrorIs(t, deps.service.Vote(ctx, id.String(), false), policyerrors.ErrFAQNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		deps := newServiceDeps(t)
		assert.ErrorIs(t, deps.service.Vote(ctx, "nope", true), policyerrors.ErrInvalidFAQID)
	})
}

func TestPolicyService_Seed(t *testing.T) {
	ctx := context.Background()

	t.Run("empty catalog is seeded", func(t *testing.T) {
		deps := newServiceDeps(t)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().CountPolicies(ctx).Return(int64(0), nil)
		deps.repo.EXPECT().CreatePolicies(ctx, gomock.Len(3)).Return(nil)
		deps.repo.EXPECT().CreateFAQ(ctx, gomock.Len(4)).Return(nil)
		deps.sqlMock.ExpectCommit()
		deps.redisMock.ExpectDel(policy.CatalogCacheKey).SetVal(0)

		assert.NoError(t, deps.service.Seed(ctx))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("existing catalog is left alone", func(t *testing.T) {
		deps := newServiceDeps(t)
		deps.sqlMock.ExpectBegin()
		deps.repo.EXPECT().CountPolicies(ctx).Return(int64(3), nil)
		deps.sqlMock.ExpectRollback()

		assert.NoError(t, deps.service.Seed(ctx))
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

// staticRepo serves a fixed catalog.
type staticRepo struct {
	policy.Repository
	policies []policy.Policy
	faq      []policy.FAQItem
}

func (r *staticRepo) ListPolicies(context.Context) ([]policy.Policy, error) { return r.policies, nil }
func (r *staticRepo) ListFAQ(context.Context) ([]policy.FAQItem, error)     { return r.faq, nil }
