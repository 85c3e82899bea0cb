// Package driving defines the service interfaces exposed to the CLI and
// TUI adapters. Services under internal/core/services implement them.
package driving
