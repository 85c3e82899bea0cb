// Package domain contains the core business types and logic for vquery.
// It has no dependencies on adapters or external services, keeping the
// orchestration rules (ingestion lifecycle, query staleness, clip caching)
// testable in isolation.
package domain
