// Package domain contains the core model for shiplog: shipment records, the
// DD/MM/YYYY date rules, issuer identity and the error kinds surfaced to users.
//
// The domain does not depend on the terminal UI, spreadsheets or the filesystem.
// Infra/adapters map into/from these types.
package domain
