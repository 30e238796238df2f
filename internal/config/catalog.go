package config

const (
	envCatalogPageSize = "CATALOG_PAGE_SIZE"

	defaultCatalogPageSize = 10
)

// CatalogConfig controls catalog pagination.
type CatalogConfig struct {
	PageSize int
}

func loadCatalog() CatalogConfig {
	return CatalogConfig{
		PageSize: intEnvOrDefault(envCatalogPageSize, defaultCatalogPageSize),
	}
}
