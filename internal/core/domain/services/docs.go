// Package services contains domain services that coordinate logic across
// multiple aggregates. The PartnerAssigner implements the partner selection
// pipeline that matches delivery partners to requested items.
package services
