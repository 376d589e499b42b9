package parameter

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn       = 10 // Resolve cursor, insert new particles
	PriorityMotion      = 20 // Integrate every kinetic entity
	PriorityLifecycle   = 30 // Shrink and remove, after motion
	PriorityDiagnostics = 90 // Telemetry, reads final frame state
)
