// Package driven defines the interfaces the core depends on: the remote
// indexing backend, configuration and local history storage. Adapters under
// internal/adapters/driven implement these ports.
package driven
