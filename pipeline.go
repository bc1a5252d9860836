package pixfilter

import "math"

// StageType identifies a pipeline stage.
type StageType uint8

// Stage types, in pipeline order.
const (
	StageBlur StageType = iota
	StageSharpen
	StagePixelate
	StageGrayscale
	StageAutoExposure
	StageBrightness
	StageContrast
	StageSaturation
	StageGamma
)

// String returns the stage name.
func (t StageType) String() string {
	switch t {
	case StageBlur:
		return "blur"
	case StageSharpen:
		return "sharpen"
	case StagePixelate:
		return "pixelate"
	case StageGrayscale:
		return "grayscale"
	case StageAutoExposure:
		return "auto-exposure"
	case StageBrightness:
		return "brightness"
	case StageContrast:
		return "contrast"
	case StageSaturation:
		return "saturation"
	case StageGamma:
		return "gamma"
	default:
		return "unknown"
	}
}

// Neighborhood reports whether the stage reads neighboring pixels.
// Neighborhood stages always precede point-wise color remaps.
func (t StageType) Neighborhood() bool {
	return t == StageBlur || t == StageSharpen || t == StagePixelate
}

// Stage is one filter invocation with its parameter. Value is unused by
// grayscale and auto-exposure; pixelate truncates it to an int.
type Stage struct {
	Type  StageType
	Value float64
}

// Apply runs the stage's filter on b.
func (s Stage) Apply(b *Buffer) (*Buffer, error) {
	switch s.Type {
	case StageBlur:
		return Blur(b, s.Value)
	case StageSharpen:
		return Sharpen(b, s.Value)
	case StagePixelate:
		return Pixelate(b, stageInt(s.Value))
	case StageGrayscale:
		return Grayscale(b)
	case StageAutoExposure:
		return AutoExposure(b)
	case StageBrightness:
		return Brightness(b, s.Value)
	case StageContrast:
		return Contrast(b, s.Value)
	case StageSaturation:
		return Saturation(b, s.Value)
	case StageGamma:
		return Gamma(b, s.Value)
	default:
		return nil, paramError("stage", float64(s.Type), "unknown stage type")
	}
}

// maxStageInt bounds integer stage values so they survive the round trip
// through Stage.Value. Any larger pixel size already covers every buffer
// dimension in practice.
const maxStageInt = math.MaxInt32

// stageInt converts an integer stage value back from float64, saturating
// instead of relying on out-of-range conversion.
func stageInt(v float64) int {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= maxStageInt:
		return maxStageInt
	}
	return int(v)
}

// Pipeline applies a fixed, ordered sequence of filters.
//
// The order is:
//
//	blur → sharpen → pixelate → grayscale → auto-exposure →
//	brightness → contrast → saturation → gamma
//
// Neighborhood filters run before color remaps so that remaps do not bias
// neighborhood averages, and grayscale runs before saturation. Stages whose
// parameter is at its identity value are omitted.
//
// A Pipeline is immutable and safe for concurrent use.
type Pipeline struct {
	stages []Stage
}

// NewPipeline validates p and builds the stage list.
func NewPipeline(p Params) (*Pipeline, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	var stages []Stage
	add := func(t StageType, v float64) {
		stages = append(stages, Stage{Type: t, Value: v})
	}

	if p.BlurRadius > 0 {
		add(StageBlur, p.BlurRadius)
	}
	if p.SharpenAmount > 0 {
		add(StageSharpen, p.SharpenAmount)
	}
	if p.PixelSize > 1 {
		add(StagePixelate, float64(min(p.PixelSize, maxStageInt)))
	}
	if p.Monochrome {
		add(StageGrayscale, 0)
	}
	if p.AutoExposure {
		add(StageAutoExposure, 0)
	}
	if p.Brightness != 0 {
		add(StageBrightness, p.Brightness)
	}
	if p.Contrast != 100 {
		add(StageContrast, p.Contrast)
	}
	if p.Saturation != 100 {
		add(StageSaturation, p.Saturation)
	}
	if p.Gamma != 1 {
		add(StageGamma, p.Gamma)
	}

	return &Pipeline{stages: stages}, nil
}

// Stages returns a copy of the stages the pipeline runs, in order.
func (pl *Pipeline) Stages() []Stage {
	out := make([]Stage, len(pl.stages))
	copy(out, pl.stages)
	return out
}

// Len returns the number of stages.
func (pl *Pipeline) Len() int {
	return len(pl.stages)
}

// IsEmpty returns true if the pipeline has no stages.
func (pl *Pipeline) IsEmpty() bool {
	return len(pl.stages) == 0
}

// Apply runs every stage over b and returns the final buffer. An empty
// pipeline returns b itself. b is never modified; on error no buffer is
// returned.
func (pl *Pipeline) Apply(b *Buffer) (*Buffer, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if pl.IsEmpty() {
		return b, nil
	}

	log := Logger()
	cur := b
	for _, s := range pl.stages {
		log.Debug("pixfilter: stage", "stage", s.Type.String(), "value", s.Value,
			"width", b.width, "height", b.height)

		next, err := s.Apply(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// Apply runs the pipeline described by p over b.
// See [Pipeline] for the stage order.
func Apply(b *Buffer, p Params) (*Buffer, error) {
	pl, err := NewPipeline(p)
	if err != nil {
		return nil, err
	}
	return pl.Apply(b)
}
