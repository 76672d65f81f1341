package parser

import (
	"log/slog"
	"time"
)

// Strategy is a pure function from extracted text to transactions. An
// empty result is not an error: it is the signal for the chain to try the
// next, looser strategy.
type Strategy interface {
	Name() string
	Parse(text string, now time.Time) []Transaction
}

// Chain runs strategies in order of strictness until one yields a
// non-empty result. Exhausting the chain yields an empty slice.
type Chain struct {
	strategies []Strategy
	logger     *slog.Logger
}

// NewChain builds a strategy chain. Strategies are tried in the order
// given.
func NewChain(logger *slog.Logger, strategies ...Strategy) *Chain {
	if logger == nil {
		logger = slog.Default()
	}
	return &Chain{strategies: strategies, logger: logger}
}

// Run returns the first non-empty strategy result along with the name of
// the strategy that produced it, or (nil, "") when every strategy came up
// empty.
func (c *Chain) Run(text string, now time.Time) ([]Transaction, string) {
	for _, s := range c.strategies {
		txs := s.Parse(text, now)
		c.logger.Debug("strategy attempted", "strategy", s.Name(), "transactions", len(txs))
		if len(txs) > 0 {
			return txs, s.Name()
		}
	}
	return nil, ""
}
