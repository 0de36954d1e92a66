package realtime

// EventType mirrors the change-data-capture event kinds
type EventType string

const (
	EventInsert EventType = "INSERT"
	EventUpdate EventType = "UPDATE"
	EventDelete EventType = "DELETE"
)

// Watched table names
const (
	TableStaff    = "staff"
	TableOrders   = "orders"
	TablePayroll  = "staff_payroll"
	TableAdvances = "staff_advances"
)

// Event is one row-change notification. Old carries the prior row (DELETE
// and UPDATE), New the resulting row (INSERT and UPDATE). Only the
// {eventType, old, new} shape is a contract; payloads are the model structs
// of the table in question.
type Event struct {
	Type  EventType   `json:"eventType"`
	Table string      `json:"table"`
	Old   interface{} `json:"old,omitempty"`
	New   interface{} `json:"new,omitempty"`
}
