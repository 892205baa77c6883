package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CompanyRepo      CompanyRepositoryFacade
	RequestRepo      RequestRepositoryFacade
	RackRepo         RackRepositoryFacade
	SummaryRepo      SummaryRepositoryFacade
	AuditLogRepo     AuditLogRepositoryFacade
	NotificationRepo NotificationRepositoryFacade
	AdminRepo        AdminRepositoryFacade
}
