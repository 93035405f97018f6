// Package notify carries mutation events to whoever is listening: connected
// SSE clients through the in-process hub, and the notification worker
// through Kafka. Delivery is fire-and-forget on both paths; a failed or
// missed delivery never affects the request that caused the event.
package notify

// Realtime event names, part of the client contract.
const (
	EventFlightUpdated        = "flightUpdated"
	EventBookingStatusUpdated = "bookingStatusUpdated"
	EventBookingDeleted       = "bookingDeleted"
	EventUserDeleted          = "userDeleted"
	EventAdminDeleted         = "adminDeleted"
)

// Event is the envelope pushed to clients and published to Kafka. Payload
// holds the minimal identifying fields, e.g. {bookingId, newStatus}.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}
