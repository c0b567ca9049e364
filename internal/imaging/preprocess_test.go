package imaging

import (
	"image"
	"image/color"
	"testing"
)

func TestGrayscaleDimensions(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 8, 6))
	g := Grayscale(src)
	if g.Bounds() != src.Bounds() {
		t.Fatalf("bounds changed: got %v want %v", g.Bounds(), src.Bounds())
	}
}

func TestMedianBlurRemovesSaltNoise(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 9, 9))
	// uniform dark field with one bright outlier
	for y := 0; y < 9; y++ {
		for x := 0; x < 9; x++ {
			g.SetGray(x, y, color.Gray{Y: 10})
		}
	}
	g.SetGray(4, 4, color.Gray{Y: 255})

	out := MedianBlur3(g)
	if got := out.GrayAt(4, 4).Y; got != 10 {
		t.Fatalf("outlier survived median filter: got %d want 10", got)
	}
}

func TestAdaptiveThresholdIsBinary(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 32, 32))
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			g.SetGray(x, y, color.Gray{Y: uint8(x * 8)})
		}
	}
	out := AdaptiveThreshold(g, 11, 2)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			v := out.GrayAt(x, y).Y
			if v != 0 && v != 255 {
				t.Fatalf("pixel (%d,%d)=%d is not binarized", x, y, v)
			}
		}
	}
}

func TestPreprocessDarkTextOnLightStaysDark(t *testing.T) {
	g := image.NewGray(image.Rect(0, 0, 40, 40))
	for y := 0; y < 40; y++ {
		for x := 0; x < 40; x++ {
			g.SetGray(x, y, color.Gray{Y: 230})
		}
	}
	// a thick dark stroke
	for y := 10; y < 30; y++ {
		for x := 18; x < 22; x++ {
			g.SetGray(x, y, color.Gray{Y: 20})
		}
	}
	out := Preprocess(g)
	if got := out.GrayAt(20, 20).Y; got != 0 {
		t.Fatalf("stroke center should threshold to black, got %d", got)
	}
	if got := out.GrayAt(5, 5).Y; got != 255 {
		t.Fatalf("background should threshold to white, got %d", got)
	}
}
