package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod    = "method"
	AttrPath      = "path"
	AttrStatus    = "status"
	AttrOperation = "operation"
	AttrKind      = "kind"
)

// Scoreboard operations used as the AttrOperation value.
const (
	OpStart  = "start"
	OpUpdate = "update"
	OpFinish = "finish"
	OpGet    = "get"
)
