package far

// RefineOption configures a RefineUniform or RefineAdaptive call.
type RefineOption func(*refineOptions)

type refineOptions struct {
	fullTopology bool
	computeMasks bool
}

// WithFullTopology keeps full adjacency on the last level. By default the
// last level of a uniform refinement only holds face-vertices.
func WithFullTopology(full bool) RefineOption {
	return func(o *refineOptions) {
		o.fullTopology = full
	}
}

// WithComputeMasks computes a mask for every refined vertex.
func WithComputeMasks(compute bool) RefineOption {
	return func(o *refineOptions) {
		o.computeMasks = compute
	}
}

func applyRefineOptions(opts []RefineOption) refineOptions {
	var o refineOptions
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
