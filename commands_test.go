package uartmatrix

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestCommandPayloads(t *testing.T) {
	red := RgbColor{R: 255}
	cases := []struct {
		name    string
		cmd     Command
		op      Opcode
		payload []byte
	}{
		{"param request", ParamRequest{}, OpParamRequest, []byte{}},
		{"clear", Clear{}, OpClear, []byte{}},
		{"enable output", EnableOutput{}, OpEnableOutput, []byte{}},
		{"disable output", DisableOutput{}, OpDisableOutput, []byte{}},
		{"ping", Ping{}, OpPing, []byte{}},
		{"switch mode", SwitchMode{Mode: ModeDirect}, OpSwitchMode, []byte{1}},
		{"write line", WriteLine{Row: 3, Text: []byte("THISISATEST")}, OpWriteLine,
			append([]byte{3, 11}, "THISISATEST"...)},
		{"write line empty", WriteLine{Row: 1}, OpWriteLine, []byte{1, 0}},
		{"set font", SetFont{Row: 1, Font: FontIBM}, OpSetFont, []byte{1, 2}},
		{"set color", SetColor{Row: 2, Color: RgbColor{R: 10, G: 20, B: 30}}, OpSetColor, []byte{2, 10, 20, 30}},
		{"set animation", SetAnimation{Row: 1, Animation: AnimationSlide, Speed: 20, Direction: DirectionRight},
			OpSetAnimation, []byte{1, 2, 20, 1}},
		{"draw pixel", DrawPixel{Point: Point{X: 10, Y: 20}, Color: red}, OpDrawPixel, []byte{10, 20, 255, 0, 0}},
		{"draw line", DrawLine{P1: Point{1, 2}, P2: Point{3, 4}, Thickness: 1, Color: red},
			OpDrawLine, []byte{1, 2, 3, 4, 1, 255, 0, 0}},
		{"draw rectangle", DrawRectangle{P1: Point{0, 0}, P2: Point{63, 31}, Thickness: 1, Color: RgbColor{G: 255}, Filled: true},
			OpDrawRectangle, []byte{0, 0, 63, 31, 1, 0, 255, 0, 1}},
		{"draw triangle", DrawTriangle{P1: Point{1, 2}, P2: Point{3, 4}, P3: Point{5, 6}, Thickness: 2, Color: RgbColor{7, 8, 9}},
			OpDrawTriangle, []byte{1, 2, 3, 4, 5, 6, 2, 7, 8, 9, 0}},
		{"draw circle", DrawCircle{Center: Point{5, 6}, Radius: 4, Thickness: 1, Color: RgbColor{1, 2, 3}, Filled: true},
			OpDrawCircle, []byte{5, 6, 4, 1, 1, 2, 3, 1}},
		{"draw row", DrawRow{Row: 7, Pixels: []RgbColor{{1, 2, 3}, {4, 5, 6}}}, OpDrawRow, []byte{7, 1, 2, 3, 4, 5, 6}},
		{"draw degenerate rectangle", DrawRectangle{P1: Point{9, 9}, P2: Point{9, 9}},
			OpDrawRectangle, []byte{9, 9, 9, 9, 0, 0, 0, 0, 0}},
	}

	buf := make([]byte, MaxFrameSize)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			n, err := Encode(buf, tc.cmd)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if n != FrameLen(len(tc.payload)) {
				t.Fatalf("length: expected %d, got %d", FrameLen(len(tc.payload)), n)
			}
			op, payload := splitFrame(t, buf[:n])
			if op != tc.op {
				t.Fatalf("opcode: expected %s, got %s", tc.op, op)
			}
			if !bytes.Equal(payload, tc.payload) {
				t.Fatalf("payload: expected %v, got %v", tc.payload, payload)
			}
		})
	}
}

func TestEncodeFunctionsMatchCommands(t *testing.T) {
	a := make([]byte, MaxFrameSize)
	b := make([]byte, MaxFrameSize)
	c := RgbColor{R: 1, G: 2, B: 3}
	pixels := []RgbColor{c, c, c}

	cases := []struct {
		name string
		fn   func([]byte) (int, error)
		cmd  Command
	}{
		{"param request", EncodeParamRequest, ParamRequest{}},
		{"switch mode", func(d []byte) (int, error) { return EncodeSwitchMode(d, ModeText) }, SwitchMode{Mode: ModeText}},
		{"write line", func(d []byte) (int, error) { return EncodeWriteLine(d, 2, []byte("abc")) }, WriteLine{Row: 2, Text: []byte("abc")}},
		{"set font", func(d []byte) (int, error) { return EncodeSetFont(d, 1, FontPro) }, SetFont{Row: 1, Font: FontPro}},
		{"set color", func(d []byte) (int, error) { return EncodeSetColor(d, 1, c) }, SetColor{Row: 1, Color: c}},
		{"set animation", func(d []byte) (int, error) { return EncodeSetAnimation(d, 1, AnimationBlink, 5, DirectionLeft) },
			SetAnimation{Row: 1, Animation: AnimationBlink, Speed: 5}},
		{"draw pixel", func(d []byte) (int, error) { return EncodeDrawPixel(d, Point{1, 1}, c) }, DrawPixel{Point: Point{1, 1}, Color: c}},
		{"draw line", func(d []byte) (int, error) { return EncodeDrawLine(d, Point{1, 1}, Point{2, 2}, 3, c) },
			DrawLine{P1: Point{1, 1}, P2: Point{2, 2}, Thickness: 3, Color: c}},
		{"draw rectangle", func(d []byte) (int, error) { return EncodeDrawRectangle(d, Point{1, 1}, Point{2, 2}, 3, c, true) },
			DrawRectangle{P1: Point{1, 1}, P2: Point{2, 2}, Thickness: 3, Color: c, Filled: true}},
		{"draw triangle", func(d []byte) (int, error) { return EncodeDrawTriangle(d, Point{1, 1}, Point{2, 2}, Point{3, 3}, 1, c, false) },
			DrawTriangle{P1: Point{1, 1}, P2: Point{2, 2}, P3: Point{3, 3}, Thickness: 1, Color: c}},
		{"draw circle", func(d []byte) (int, error) { return EncodeDrawCircle(d, Point{8, 8}, 4, 1, c, true) },
			DrawCircle{Center: Point{8, 8}, Radius: 4, Thickness: 1, Color: c, Filled: true}},
		{"draw row", func(d []byte) (int, error) { return EncodeDrawRow(d, 0, pixels) }, DrawRow{Pixels: pixels}},
		{"clear", EncodeClear, Clear{}},
		{"enable output", EncodeEnableOutput, EnableOutput{}},
		{"disable output", EncodeDisableOutput, DisableOutput{}},
		{"ping", EncodePing, Ping{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			na, err := tc.fn(a)
			if err != nil {
				t.Fatalf("encode function failed: %v", err)
			}
			nb, err := Encode(b, tc.cmd)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if !bytes.Equal(a[:na], b[:nb]) {
				t.Fatalf("frames differ: % x vs % x", a[:na], b[:nb])
			}
		})
	}
}

func TestWriteLineTextBoundaries(t *testing.T) {
	buf := make([]byte, MaxFrameSize)

	n, err := EncodeWriteLine(buf, 0, bytes.Repeat([]byte{'A'}, MaxLineText))
	if err != nil {
		t.Fatalf("%d byte text rejected: %v", MaxLineText, err)
	}
	if n != FrameLen(255) {
		t.Fatalf("expected %d bytes, got %d", FrameLen(255), n)
	}
	_, payload := splitFrame(t, buf[:n])
	if payload[1] != 253 {
		t.Fatalf("text_len: expected 253, got %d", payload[1])
	}

	for _, size := range []int{MaxLineText + 1, MaxTextLength} {
		_, err := EncodeWriteLine(buf, 0, bytes.Repeat([]byte{'A'}, size))
		if !errors.Is(err, ErrPayloadTooLarge) {
			t.Fatalf("%d byte text: expected ErrPayloadTooLarge, got %v", size, err)
		}
	}

	_, err = EncodeWriteLine(buf, 0, bytes.Repeat([]byte{'A'}, MaxTextLength+1))
	if !errors.Is(err, ErrTextTooLong) {
		t.Fatalf("256 byte text: expected ErrTextTooLong, got %v", err)
	}
	var encErr *EncodeError
	if !errors.As(err, &encErr) {
		t.Fatalf("expected *EncodeError, got %T", err)
	}
	if encErr.Opcode != OpWriteLine || encErr.Field != "text" || encErr.Value != 256 || encErr.Limit != MaxTextLength {
		t.Fatalf("unexpected error details: %+v", encErr)
	}
}

func TestDrawRowPixelBoundaries(t *testing.T) {
	buf := make([]byte, MaxFrameSize)
	px := RgbColor{R: 9, G: 8, B: 7}

	n, err := EncodeDrawRow(buf, 4, repeatPixel(px, MaxRowPixels))
	if err != nil {
		t.Fatalf("84 pixels rejected: %v", err)
	}
	_, payload := splitFrame(t, buf[:n])
	if len(payload) != 253 {
		t.Fatalf("payload: expected 253 bytes, got %d", len(payload))
	}
	if payload[0] != 4 || payload[1] != 9 || payload[252] != 7 {
		t.Fatalf("unexpected payload layout: %v", payload[:4])
	}

	_, err = EncodeDrawRow(buf, 4, append(repeatPixel(px, MaxRowPixels), px))
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("85 pixels: expected ErrPayloadTooLarge, got %v", err)
	}
}

func repeatPixel(c RgbColor, n int) []RgbColor {
	out := make([]RgbColor, n)
	for i := range out {
		out[i] = c
	}
	return out
}

func TestFieldOutOfRange(t *testing.T) {
	cases := []struct {
		name  string
		cmd   Command
		field string
	}{
		{"mode", SwitchMode{Mode: 2}, "mode"},
		{"font", SetFont{Font: 3}, "font"},
		{"animation", SetAnimation{Animation: 3}, "animation"},
		{"direction", SetAnimation{Animation: AnimationSlide, Direction: 2}, "direction"},
	}
	buf := bytes.Repeat([]byte{0xEE}, MaxFrameSize)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(buf, tc.cmd)
			if !errors.Is(err, ErrFieldOutOfRange) {
				t.Fatalf("expected ErrFieldOutOfRange, got %v", err)
			}
			var encErr *EncodeError
			if !errors.As(err, &encErr) || encErr.Field != tc.field {
				t.Fatalf("expected field %q, got %v", tc.field, err)
			}
			if buf[0] != 0xEE {
				t.Fatalf("buffer modified on error")
			}
		})
	}
}

func TestEncodeNilCommand(t *testing.T) {
	buf := make([]byte, MaxFrameSize)
	if _, err := Encode(buf, nil); !errors.Is(err, errNilCommand) {
		t.Fatalf("expected errNilCommand, got %v", err)
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	cmd := DrawTriangle{P1: Point{1, 2}, P2: Point{30, 40}, P3: Point{200, 100}, Thickness: 2, Color: RgbColor{R: 1}, Filled: true}
	a := make([]byte, MaxFrameSize)
	b := bytes.Repeat([]byte{0xEE}, MaxFrameSize)
	na, err := Encode(a, cmd)
	if err != nil {
		t.Fatalf("first encode failed: %v", err)
	}
	nb, err := Encode(b, cmd)
	if err != nil {
		t.Fatalf("second encode failed: %v", err)
	}
	if !bytes.Equal(a[:na], b[:nb]) {
		t.Fatalf("frames differ: % x vs % x", a[:na], b[:nb])
	}
}

func TestErrorKindStrings(t *testing.T) {
	if ErrTextTooLong.Error() != "uartmatrix: text too long" {
		t.Fatalf("unexpected error text: %q", ErrTextTooLong.Error())
	}
	if ErrBufferTooSmall.Code() != -1 || ErrPayloadTooLarge.Code() != -5 {
		t.Fatalf("unexpected codes: %d %d", ErrBufferTooSmall.Code(), ErrPayloadTooLarge.Code())
	}
	if ErrorKind(99).String() != "unknown error (99)" {
		t.Fatalf("unexpected unknown string: %q", ErrorKind(99).String())
	}
}

func TestEncodeErrorMessage(t *testing.T) {
	buf := make([]byte, MaxFrameSize)
	_, err := EncodeWriteLine(buf, 0, bytes.Repeat([]byte{'A'}, MaxTextLength+1))
	if err == nil {
		t.Fatal("expected an error")
	}
	want := "uartmatrix: WriteLine: text too long text=256 (limit 255)"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
	if n := strings.Count(err.Error(), "uartmatrix:"); n != 1 {
		t.Fatalf("expected one package prefix, got %d in %q", n, err.Error())
	}
}
