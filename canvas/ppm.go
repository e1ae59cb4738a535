package canvas

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// Max line length for plain PPM files.
const ppmMaxLineLen = 70

// Encode canvas as a plain (P3) PPM image.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.width, c.height)

	for y := 0; y < c.height; y++ {
		lineLen := 0
		for x := 0; x < c.width; x++ {
			col := c.pixels[y*c.width+x]
			for _, comp := range col {
				token := strconv.Itoa(int(toByte(comp)))
				if lineLen > 0 && lineLen+1+len(token) > ppmMaxLineLen {
					bw.WriteByte('\n')
					lineLen = 0
				}
				if lineLen > 0 {
					bw.WriteByte(' ')
					lineLen++
				}
				bw.WriteString(token)
				lineLen += len(token)
			}
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
