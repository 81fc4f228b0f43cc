package log

// Standard field names so log records stay grep-able across components.
const (
	FieldComponent = "component"
	FieldRequestID = "request_id"
	FieldMethod    = "method"
	FieldPath      = "path"
	FieldStatus    = "status"
	FieldDuration  = "duration_ms"
	FieldRemote    = "remote_addr"
	FieldBackend   = "backend"
	FieldQueue     = "queue"
	FieldExchange  = "exchange"
)

// Component names used across the binaries.
const (
	ComponentApp    = "lezioni"
	ComponentStore  = "store"
	ComponentWorker = "ledger-worker"
)
