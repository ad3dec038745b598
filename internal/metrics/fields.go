package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod = "method"
	AttrPath   = "path"
	AttrStatus = "status"
	AttrSource = "source"
	AttrChain  = "chain"
)

// Chain names used as metric attributes.
const (
	ChainSchedule = "schedule"
	ChainNews     = "news"
)
