// Package imaging prepares scanned images for OCR. The pipeline is
// grayscale conversion, a 3x3 median blur to knock out salt-and-pepper
// noise, then adaptive mean thresholding to binarize uneven lighting.
package imaging

import (
	"image"
	"image/color"
	"sort"
)

const (
	// adaptiveBlock is the side length of the neighborhood used for
	// adaptive thresholding. Must be odd.
	adaptiveBlock = 11
	// adaptiveOffset is subtracted from the neighborhood mean before
	// comparing against the pixel value.
	adaptiveOffset = 2
)

// Preprocess runs the full cleanup pipeline and returns a binarized
// grayscale image ready for tesseract.
func Preprocess(src image.Image) *image.Gray {
	g := Grayscale(src)
	g = MedianBlur3(g)
	return AdaptiveThreshold(g, adaptiveBlock, adaptiveOffset)
}

// Grayscale converts any image to 8-bit grayscale using the standard
// luminance weights.
func Grayscale(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok {
		return g
	}
	b := src.Bounds()
	out := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.GrayModel.Convert(src.At(x, y)))
		}
	}
	return out
}

// MedianBlur3 applies a 3x3 median filter. Border pixels use the
// clamped neighborhood so the output keeps the input dimensions.
func MedianBlur3(src *image.Gray) *image.Gray {
	b := src.Bounds()
	out := image.NewGray(b)
	var window [9]byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			n := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					nx, ny := clamp(x+dx, b.Min.X, b.Max.X-1), clamp(y+dy, b.Min.Y, b.Max.Y-1)
					window[n] = src.GrayAt(nx, ny).Y
					n++
				}
			}
			s := window[:n]
			sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
			out.SetGray(x, y, color.Gray{Y: s[n/2]})
		}
	}
	return out
}

// AdaptiveThreshold binarizes src: a pixel becomes white when its value
// exceeds the mean of its block-sized neighborhood minus offset,
// otherwise black. Uses a summed-area table so large images stay cheap.
func AdaptiveThreshold(src *image.Gray, block, offset int) *image.Gray {
	if block%2 == 0 {
		block++
	}
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	out := image.NewGray(b)
	if w == 0 || h == 0 {
		return out
	}

	// integral[y][x] holds the sum of all pixels above and left of (x, y).
	integral := make([][]int64, h+1)
	for i := range integral {
		integral[i] = make([]int64, w+1)
	}
	for y := 0; y < h; y++ {
		var row int64
		for x := 0; x < w; x++ {
			row += int64(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			integral[y+1][x+1] = integral[y][x+1] + row
		}
	}

	half := block / 2
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			x0, y0 := clamp(x-half, 0, w-1), clamp(y-half, 0, h-1)
			x1, y1 := clamp(x+half, 0, w-1), clamp(y+half, 0, h-1)
			count := int64((x1 - x0 + 1) * (y1 - y0 + 1))
			sum := integral[y1+1][x1+1] - integral[y0][x1+1] - integral[y1+1][x0] + integral[y0][x0]
			mean := sum / count
			v := int64(src.GrayAt(b.Min.X+x, b.Min.Y+y).Y)
			if v > mean-int64(offset) {
				out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: 255})
			} else {
				out.SetGray(b.Min.X+x, b.Min.Y+y, color.Gray{Y: 0})
			}
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
