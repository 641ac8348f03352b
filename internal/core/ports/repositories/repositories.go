package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	TransactionRepo  TransactionRepositoryFacade
	SavingsGoalRepo  SavingsGoalRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
	UserRepo         UserRepositoryFacade

	// MarketQuotes is required for the investor endpoints; QuoteCache may be nil.
	MarketQuotes MarketQuoteReader
	QuoteCache   QuoteCache
}
