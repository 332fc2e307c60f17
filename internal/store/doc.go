// Package store defines interfaces for item storage operations.
// These interfaces abstract the underlying storage mechanism from the
// application's core logic, allowing business rules to remain independent
// of how items are actually held. The only implementation today is the
// in-memory one under internal/platform/memory.
package store
