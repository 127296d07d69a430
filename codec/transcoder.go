package codec

import (
	"context"
	"time"

	"github.com/hupe1980/nvec"
)

// Transcoder runs a Codec with logging and metrics.
// It is safe for concurrent use if its MetricsCollector is.
type Transcoder struct {
	codec   Codec
	logger  *Logger
	metrics MetricsCollector
}

// NewTranscoder returns a Transcoder for c. A nil c means Default.
func NewTranscoder(c Codec, optFns ...Option) *Transcoder {
	if c == nil {
		c = Default
	}
	o := applyOptions(optFns)
	return &Transcoder{
		codec:   c,
		logger:  o.logger.WithCodec(c.Name()),
		metrics: o.metricsCollector,
	}
}

// Codec returns the wrapped codec.
func (t *Transcoder) Codec() Codec { return t.codec }

// Encode marshals v with the wrapped codec.
func (t *Transcoder) Encode(ctx context.Context, v nvec.Vector) ([]byte, error) {
	start := time.Now()
	b, err := t.codec.Marshal(v)
	t.metrics.RecordEncode(len(b), time.Since(start), err)
	t.logger.LogEncode(ctx, v.Len(), len(b), err)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Decode unmarshals data with the wrapped codec.
func (t *Transcoder) Decode(ctx context.Context, data []byte) (nvec.Vector, error) {
	start := time.Now()
	v, err := t.codec.Unmarshal(data)
	t.metrics.RecordDecode(len(data), time.Since(start), err)
	t.logger.LogDecode(ctx, len(data), v.Len(), err)
	if err != nil {
		return nvec.Vector{}, err
	}
	return v, nil
}
