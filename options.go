package asciicam

// Option configures a Pipeline during creation.
//
// Example:
//
//	p := asciicam.NewPipeline(asciicam.WithResampler(
//	    asciicam.InterpolatorResampler{Interpolator: draw.NearestNeighbor}))
type Option func(*pipelineOptions)

// pipelineOptions holds optional configuration for Pipeline creation.
type pipelineOptions struct {
	resampler Resampler
}

// defaultOptions returns the default pipeline options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		resampler: DefaultResampler,
	}
}

// WithResampler sets the filter used to downsample frames onto the sample
// grid. A nil resampler keeps the default.
func WithResampler(r Resampler) Option {
	return func(o *pipelineOptions) {
		if r != nil {
			o.resampler = r
		}
	}
}
