// pkg/entity/entity.go
package entity

// ID is a unique identifier for an entity. The board issues IDs from
// per-kind monotonic counters starting at zero; an ID is never reused
// while its entity is live.
type ID uint64
