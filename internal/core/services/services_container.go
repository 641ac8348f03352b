package services

import (
	portsrepo "github.com/SscSPs/finance_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/platform/config"
	"github.com/SscSPs/finance_tracker/internal/platform/metrics"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// m may be nil, in which case domain metrics are not recorded.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, m *metrics.Metrics) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Transaction = NewTransactionService(
		repos.TransactionRepo,
		repos.ExchangeRateRepo,
		WithTransactionMetrics(m),
	)
	container.SavingsGoal = NewSavingsGoalService(
		repos.SavingsGoalRepo,
		repos.TransactionRepo,
		WithSavingsGoalMetrics(m),
	)
	container.Currency = NewCurrencyService(repos.ExchangeRateRepo)
	container.User = NewUserService(repos.UserRepo)

	cryptoOpts := []CryptoServiceOption{WithCryptoMetrics(m)}
	if repos.QuoteCache != nil {
		cryptoOpts = append(cryptoOpts, WithQuoteCache(repos.QuoteCache, cfg.CryptoCacheTTL))
	}
	container.Crypto = NewCryptoService(repos.MarketQuotes, cryptoOpts...)

	return container
}
