// Package services implements the driving ports by orchestrating the
// driven ports: ingestion lifecycle, project catalog, query execution and
// clip resolution with request coalescing.
package services
