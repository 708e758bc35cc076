package avatar

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// palette 는 RandomBackground 일 때 이름 해시로 고르는 배경색이다.
var palette = []color.RGBA{
	{0xef, 0x44, 0x44, 0xff},
	{0xf9, 0x73, 0x16, 0xff},
	{0xea, 0xb3, 0x08, 0xff},
	{0x22, 0xc5, 0x5e, 0xff},
	{0x14, 0xb8, 0xa6, 0xff},
	{0x06, 0xb6, 0xd4, 0xff},
	{0x3b, 0x82, 0xf6, 0xff},
	{0x8b, 0x5c, 0xf6, 0xff},
	{0xec, 0x48, 0x99, 0xff},
}

// glyphBox 는 이니셜을 그리는 저해상도 캔버스 크기다. 최종 크기로 확대된다.
const glyphBox = 32

// Render 는 이니셜이 들어간 정사각형 이미지를 만든다. 같은 입력이면 항상 같은 픽셀이 나온다.
func Render(name string, v Variant) image.Image {
	p := v.Params()
	bg := backgroundColor(name, p.Background)
	fg := parseHex(p.Color, color.RGBA{0xff, 0xff, 0xff, 0xff})

	small := image.NewRGBA(image.Rect(0, 0, glyphBox, glyphBox))
	draw.Draw(small, small.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	initials := Initials(name)
	face := basicfont.Face7x13
	d := &font.Drawer{
		Dst:  small,
		Src:  image.NewUniform(fg),
		Face: face,
	}
	width := d.MeasureString(initials).Round()
	x := (glyphBox - width) / 2
	y := (glyphBox-face.Height)/2 + face.Ascent
	d.Dot = fixed.P(x, y)
	d.DrawString(initials)
	if p.Bold {
		d.Dot = fixed.P(x+1, y)
		d.DrawString(initials)
	}

	out := image.NewRGBA(image.Rect(0, 0, p.Size, p.Size))
	draw.NearestNeighbor.Scale(out, out.Bounds(), small, small.Bounds(), draw.Src, nil)
	return out
}

func WritePNG(w io.Writer, name string, v Variant) error {
	if err := png.Encode(w, Render(name, v)); err != nil {
		return fmt.Errorf("encode avatar: %w", err)
	}
	return nil
}

// DataURI 는 외부 서비스 없이 쓸 수 있도록 PNG 를 data URI 로 인라인한다.
func DataURI(name string, v Variant) string {
	var buf bytes.Buffer
	// bytes.Buffer 에 대한 png 인코딩은 실패하지 않는다.
	_ = png.Encode(&buf, Render(name, v))
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func backgroundColor(name, spec string) color.RGBA {
	if spec == RandomBackground {
		return palette[xxhash.Sum64String(strings.ToLower(name))%uint64(len(palette))]
	}
	return parseHex(spec, color.RGBA{0xff, 0xff, 0xff, 0xff})
}

// parseHex 는 "fff" 또는 "ffc107" 형태를 해석한다. 형식이 틀리면 fallback.
func parseHex(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return fallback
	}
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}
}
