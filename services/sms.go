package services

// SMSSender is the outbound SMS capability. Delivery is best-effort
// everywhere it is used: a failed send is logged and swallowed, it never
// rolls back or blocks the state change that triggered it.
type SMSSender interface {
	Send(phone, message string) error
}
