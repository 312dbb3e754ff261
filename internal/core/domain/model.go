package domain

const (
	FieldBrightness = "brightness"
	FieldContrast   = "contrast"
)

// AdjustmentRequest is the request-domain pair. Brightness is neutral at 0.5, contrast at 1.0.
type AdjustmentRequest struct {
	Brightness float64 `schema:"brightness,required"`
	Contrast   float64 `schema:"contrast,required"`
}

// TransformParameters is the transform-domain pair consumed by the linear pixel primitive:
// dst = saturate(|src*Scale + Offset|).
type TransformParameters struct {
	Scale  float64
	Offset float64
}

var Identity = TransformParameters{Scale: 1, Offset: 0}

type Engine string

const (
	EngineImaging Engine = "imaging"
	EngineBild    Engine = "bild"
)

type Staging string

const (
	StagingMemory   Staging = "memory"
	StagingTempFile Staging = "tempfile"
)
