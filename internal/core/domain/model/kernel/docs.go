// Package kernel contains shared value objects used across the domain model.
// These are the building blocks that aggregates and entities in the item,
// location, partner, and order packages are composed from.
package kernel
