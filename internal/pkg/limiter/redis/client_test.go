//go:build integration
// +build integration

package rlimiter

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/gummi-coder/Novora-sub009/internal/pkg/limiter"
	"github.com/gummi-coder/Novora-sub009/internal/pkg/rdb"
)

type RedisLimiterIntegrationTestSuite struct {
	suite.Suite
	limiter *RedisLimiter
}

func (s *RedisLimiterIntegrationTestSuite) SetupTest() {
	dsn := os.Getenv("NOVORA_REDIS_DSN")
	if dsn == "" {
		s.T().Skip("NOVORA_REDIS_DSN is not set")
	}

	r, err := rdb.NewClient(dsn)
	s.Require().NoError(err)

	s.Require().NoError(r.Client().FlushDB(context.Background()).Err())

	s.limiter = NewRedisLimiter(r.Client())
}

func (s *RedisLimiterIntegrationTestSuite) Test_RateLimitAllow() {
	vals := []int{10, 20}
	limit := 2

	for _, duration := range vals {
		uid := ulid.Make().String()
		s.Run(fmt.Sprintf("%s-%v", uid, duration), func() {
			require.NoError(s.T(), s.limiter.Allow(context.Background(), uid, limit, duration))
			require.NoError(s.T(), s.limiter.Allow(context.Background(), uid, limit, duration))

			err := s.limiter.Allow(context.Background(), uid, limit, duration)
			require.ErrorIs(s.T(), err, limiter.ErrRateLimitExceeded)
			require.Greater(s.T(), limiter.GetRetryAfter(err), time.Duration(0))
		})
	}
}

func TestRedisLimiterIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RedisLimiterIntegrationTestSuite))
}
