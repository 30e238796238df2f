package metrics

// Attribute keys shared by the otel instruments.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrProvider = "provider"
	AttrSlice    = "slice"
	AttrOutcome  = "outcome"
)
