package nvme

import "fmt"

// Namespace identifiers.
const (
	NSIDNone   uint32 = 0x00000000 // No namespace
	NSIDLowest uint32 = 0x00000001 // First valid namespace
	NSIDAll    uint32 = 0xFFFFFFFF // Broadcast to all namespaces
)

// QueuePriority is the priority class of a submission queue under weighted
// round robin arbitration.
type QueuePriority uint8

// Submission queue priorities.
const (
	PriorityUrgent QueuePriority = iota
	PriorityHigh
	PriorityMedium
	PriorityLow
)

// String returns a human-readable priority name.
func (p QueuePriority) String() string {
	switch p {
	case PriorityUrgent:
		return "Urgent"
	case PriorityHigh:
		return "High"
	case PriorityMedium:
		return "Medium"
	case PriorityLow:
		return "Low"
	default:
		return fmt.Sprintf("Unknown Priority (%d)", p)
	}
}

// ArbitrationMethod selects how the controller picks the next submission queue.
type ArbitrationMethod uint8

// Arbitration methods.
const (
	RoundRobin ArbitrationMethod = iota
	WeightedRoundRobin
)

// String returns a human-readable arbitration method name.
func (a ArbitrationMethod) String() string {
	switch a {
	case RoundRobin:
		return "Round Robin"
	case WeightedRoundRobin:
		return "Weighted Round Robin"
	default:
		return fmt.Sprintf("Unknown Arbitration (%d)", a)
	}
}
