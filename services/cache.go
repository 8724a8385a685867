package services

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Staleness policy: geography reference data is near-static and stays valid
// for an hour; tenant data for five minutes. Everything else is fetched on
// every request.
const (
	ReferenceDataTTL = 1 * time.Hour
	TenantDataTTL    = 5 * time.Minute
)

var (
	referenceCache = gocache.New(ReferenceDataTTL, 10*time.Minute)
	tenantCache    = gocache.New(TenantDataTTL, time.Minute)
)

// FlushCaches drops all cached reference and tenant data (used by tests and
// by mutations that invalidate their entity)
func FlushCaches() {
	referenceCache.Flush()
	tenantCache.Flush()
}
