// Package metrics instruments the conversion engine the way this codebase
// instruments its other services: prometheus collectors registered against
// a registry and scraped over HTTP, rather than pushed or logged ad hoc.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder is the metrics collaborator the CLI injects into its call path.
// The CORE engine never imports this package directly; it is wired in one
// layer up, at cmd/numconv, matching the same boundary tracelog and config
// observe.
type Recorder struct {
	conversions *prometheus.CounterVec
	digits      *prometheus.HistogramVec
	scaleK      *prometheus.GaugeVec
}

// Path identifies which branch of the dispatcher a conversion took, for the
// "path" label on numconv_conversions_total.
type Path string

const (
	PathLiteral  Path = "literal"
	PathFastUint Path = "fast_uint"
	PathGeneral  Path = "general"
)

// New creates a Recorder and registers its collectors with reg.
func New(reg *prometheus.Registry) *Recorder {
	r := &Recorder{
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "numconv_conversions_total",
			Help: "Number of Stringify calls, partitioned by radix and dispatch path.",
		}, []string{"radix", "path"}),
		digits: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "numconv_digits_generated",
			Help:    "Number of digits produced by the general (Dragon4) path.",
			Buckets: []float64{1, 2, 4, 8, 12, 17, 24, 32},
		}, []string{"radix"}),
		scaleK: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "numconv_scale_k",
			Help: "Most recent decimal-point scale exponent k produced by Scale, by radix.",
		}, []string{"radix"}),
	}
	reg.MustRegister(r.conversions, r.digits, r.scaleK)
	return r
}

// Noop is the zero-cost Recorder for any caller that doesn't want metrics
// collection: it is a nil *Recorder, and every method returns immediately
// on a nil receiver, so the zero value works too.
var Noop *Recorder

// ObserveConversion records one completed Stringify call.
func (r *Recorder) ObserveConversion(radix int, path Path) {
	if r == nil {
		return
	}
	r.conversions.WithLabelValues(radixLabel(radix), string(path)).Inc()
}

// ObserveDigits records the digit count produced by the general path.
func (r *Recorder) ObserveDigits(radix int, n int) {
	if r == nil {
		return
	}
	r.digits.WithLabelValues(radixLabel(radix)).Observe(float64(n))
}

// ObserveScaleK records the scale exponent k discovered for this conversion.
func (r *Recorder) ObserveScaleK(radix int, k int) {
	if r == nil {
		return
	}
	r.scaleK.WithLabelValues(radixLabel(radix)).Set(float64(k))
}

func radixLabel(radix int) string {
	return strconv.Itoa(radix)
}
