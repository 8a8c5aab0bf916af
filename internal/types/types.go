// internal/types/types.go
package types

// EntityID - уникальный идентификатор сущности. Идентификаторы не переиспользуются.
type EntityID uint64
