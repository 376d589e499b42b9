package core

// Entity is a stable particle identifier
// IDs are allocated monotonically by the world and never reused
type Entity uint64
