// Package imageio writes a rendered image to a bitstream. Pixel (0,0) is
// the top-left, matching render.Image's own layout.
package imageio

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/cosmcif/raytracer/render"
)

// WritePPM writes img to w as a binary (P6) PPM.
func WritePPM(w io.Writer, img *render.Image) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "P6\n%d %d\n255\n", img.Width, img.Height); err != nil {
		return fmt.Errorf("imageio: writing header: %w", err)
	}

	buf := make([]byte, 3)
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			c := img.At(x, y)
			buf[0] = toByte(c[0])
			buf[1] = toByte(c[1])
			buf[2] = toByte(c[2])
			if _, err := bw.Write(buf); err != nil {
				return fmt.Errorf("imageio: writing pixel (%d,%d): %w", x, y, err)
			}
		}
	}
	return bw.Flush()
}

// WritePPMFile creates path and writes img to it as a PPM.
func WritePPMFile(path string, img *render.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("imageio: creating %q: %w", path, err)
	}
	defer f.Close()

	if err := WritePPM(f, img); err != nil {
		return err
	}
	return nil
}

func toByte(c float32) byte {
	v := c*255 + 0.5
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return byte(v)
}
