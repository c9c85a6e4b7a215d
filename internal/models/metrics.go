package models

import "time"

// SystemMetrics is the aggregated runtime snapshot served to the dashboard.
type SystemMetrics struct {
	CacheHitRatio            float64   `json:"cacheHitRatio"`
	CacheHits                uint64    `json:"cacheHits"`
	CacheMisses              uint64    `json:"cacheMisses"`
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	StoreOpCount             uint64    `json:"storeOpCount"`
	AverageStoreOpDurationMs float64   `json:"averageStoreOpDurationMs"`
	CatalogSubscribers       int       `json:"catalogSubscribers"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}
