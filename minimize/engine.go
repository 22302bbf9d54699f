package minimize

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gnoswap-labs/qmc/internal/cache"
	"github.com/gnoswap-labs/qmc/internal/qm"
)

type Engine interface {
	Solve(values []int) (*qm.Result, error)
}

// Solver is the default Engine. It is safe for concurrent use.
type Solver struct {
	config Config
	logger *zap.Logger
	cache  *cache.Cache
}

// New builds a Solver for config. A nil logger discards output.
func New(config Config, logger *zap.Logger) (*Solver, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Solver{config: config, logger: logger}

	if config.Cache.Dir != "" {
		c, err := cache.NewCache(config.Cache.Dir)
		if err != nil {
			return nil, err
		}
		if config.Cache.MaxAge > 0 {
			c.SetMaxAge(config.Cache.MaxAge)
		}
		s.cache = c
	}
	return s, nil
}

// ClearCache drops every stored result. It is a no-op without a cache.
func (s *Solver) ClearCache() {
	if s.cache == nil {
		return
	}
	s.cache.InvalidateAll()
	s.logger.Debug("cache cleared", zap.String("dir", s.cache.CacheDir))
}

func (s *Solver) Solve(values []int) (*qm.Result, error) {
	if s.cache != nil {
		if res, ok := s.cache.Get(values); ok {
			s.logger.Debug("cache hit", zap.Ints("minterms", values))
			return res, nil
		}
	}

	res, err := qm.Minimize(values, qm.WithLogger(s.logger))
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(res); err != nil {
			s.logger.Warn("failed to store result", zap.Error(err))
		}
	}
	return res, nil
}

// Close flushes the cache, if any.
func (s *Solver) Close() error {
	if s.cache == nil {
		return nil
	}
	if err := s.cache.Flush(); err != nil {
		return fmt.Errorf("failed to flush cache: %w", err)
	}
	return nil
}
