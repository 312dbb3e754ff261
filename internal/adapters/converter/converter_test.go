package converter

import (
	"image"
	"image/color"
	"imgadjust/internal/core/domain"
	"imgadjust/internal/core/port"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gradientImage(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x * 16), G: uint8(y * 16), B: uint8((x + y) * 8), A: 255})
		}
	}
	return img
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

func engines() map[string]port.ImageConverter {
	return map[string]port.ImageConverter{
		"imaging": NewImagingConverter(),
		"bild":    NewBildConverter(),
	}
}

func TestConvert_IdentityPreservesPixels(t *testing.T) {
	src := gradientImage(16, 16)

	for name, c := range engines() {
		t.Run(name, func(t *testing.T) {
			out, err := c.Convert(src, domain.Identity)
			require.NoError(t, err)
			require.Equal(t, src.Bounds().Size(), out.Bounds().Size())

			for y := 0; y < 16; y++ {
				for x := 0; x < 16; x++ {
					assert.Equal(t, src.NRGBAAt(x, y), nrgbaAt(out, x, y))
				}
			}
		})
	}
}

func TestConvert_ScaleAndOffset(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 0, G: 10, B: 20, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 100, G: 127, B: 128, A: 255})
	src.SetNRGBA(2, 0, color.NRGBA{R: 200, G: 254, B: 255, A: 255})

	params := domain.TransformParameters{Scale: 2, Offset: 1}
	want := []color.NRGBA{
		{R: 1, G: 21, B: 41, A: 255},
		{R: 201, G: 255, B: 255, A: 255},
		{R: 255, G: 255, B: 255, A: 255},
	}

	for name, c := range engines() {
		t.Run(name, func(t *testing.T) {
			out, err := c.Convert(src, params)
			require.NoError(t, err)

			for x, w := range want {
				assert.Equal(t, w, nrgbaAt(out, x, 0))
			}
		})
	}
}

func TestConvert_DoesNotMutateSource(t *testing.T) {
	src := gradientImage(8, 8)
	before := append([]uint8(nil), src.Pix...)

	for name, c := range engines() {
		t.Run(name, func(t *testing.T) {
			_, err := c.Convert(src, domain.TransformParameters{Scale: 3, Offset: 40})
			require.NoError(t, err)
			assert.Equal(t, before, src.Pix)
		})
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name   string
		src    image.Image
		params domain.TransformParameters
	}{
		{name: "nil image", src: nil, params: domain.Identity},
		{name: "empty image", src: image.NewNRGBA(image.Rect(0, 0, 0, 0)), params: domain.Identity},
		{name: "nan scale", src: gradientImage(2, 2), params: domain.TransformParameters{Scale: math.NaN()}},
		{name: "infinite scale", src: gradientImage(2, 2), params: domain.TransformParameters{Scale: math.Inf(1)}},
		{name: "nan offset", src: gradientImage(2, 2), params: domain.TransformParameters{Scale: 1, Offset: math.NaN()}},
	}

	for name, c := range engines() {
		for _, tc := range tests {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				out, err := c.Convert(tc.src, tc.params)
				require.Error(t, err)
				assert.Nil(t, out)
				assert.ErrorIs(t, err, domain.ErrTransformFailed)
			})
		}
	}
}

func TestConvert_InfiniteOffsetSaturates(t *testing.T) {
	src := gradientImage(4, 4)
	params := domain.TransformParameters{Scale: 1, Offset: math.Inf(1)}

	for name, c := range engines() {
		t.Run(name, func(t *testing.T) {
			out, err := c.Convert(src, params)
			require.NoError(t, err)

			for y := 0; y < 4; y++ {
				for x := 0; x < 4; x++ {
					assert.Equal(t, color.NRGBA{R: 255, G: 255, B: 255, A: 255}, nrgbaAt(out, x, y))
				}
			}
		})
	}
}

func TestLookupTable(t *testing.T) {
	tests := []struct {
		name   string
		params domain.TransformParameters
		in     int
		want   uint8
	}{
		{name: "identity", params: domain.Identity, in: 77, want: 77},
		{name: "black out", params: domain.TransformParameters{Scale: 0, Offset: 0}, in: 200, want: 0},
		{name: "absolute value", params: domain.TransformParameters{Scale: -1, Offset: 0}, in: 90, want: 90},
		{name: "saturates high", params: domain.TransformParameters{Scale: 10, Offset: 0}, in: 30, want: 255},
		{name: "infinite offset", params: domain.TransformParameters{Scale: 0, Offset: math.Inf(1)}, in: 0, want: 255},
		{name: "rounds", params: domain.TransformParameters{Scale: 0.5, Offset: 0}, in: 3, want: 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lookupTable(tc.params)[tc.in])
		})
	}
}

func TestNewConverter(t *testing.T) {
	tests := []struct {
		name    string
		engine  domain.Engine
		want    any
		wantErr bool
	}{
		{name: "default", engine: "", want: &ImagingConverter{}},
		{name: "imaging", engine: domain.EngineImaging, want: &ImagingConverter{}},
		{name: "bild", engine: domain.EngineBild, want: &BildConverter{}},
		{name: "unknown", engine: "opencv", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewConverter(tc.engine)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrStartupFailed)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.want, got)
		})
	}
}
