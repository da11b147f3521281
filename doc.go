// Package uartmatrix provides a Go library for encoding display commands for
// UART-driven LED/text matrix controllers.
//
// # Overview
//
// The package converts high-level display commands (write a text row, set a
// row color or font, draw shapes, control output) into self-contained binary
// frames that the matrix firmware consumes over a byte-oriented link. It only
// encodes: opening the serial port, writing the bytes, reading device replies
// and retrying are left to the caller.
//
// # Frame Format
//
// Every command produces exactly one frame:
//
//	[1B SYNC=0x55][1B OPCODE][1B PAYLOAD_LEN][PAYLOAD...][1B CHECKSUM]
//
//   - PAYLOAD_LEN is 0-255, so a payload never exceeds 255 bytes
//   - CHECKSUM is the 8-bit sum (mod 256) of OPCODE, PAYLOAD_LEN and PAYLOAD
//   - Fixed-width fields come first, the variable tail (text or pixels) last
//   - A frame never exceeds MaxFrameSize (512) bytes
//
// # Quick Start
//
//	buf := make([]byte, uartmatrix.MaxFrameSize)
//
//	n, err := uartmatrix.EncodeWriteLine(buf, 0, []byte("Hello!"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	port.Write(buf[:n])
//
//	n, err = uartmatrix.EncodeDrawPixel(buf,
//	    uartmatrix.Point{X: 10, Y: 20},
//	    uartmatrix.RgbColor{R: 255},
//	)
//
// # Commands
//
// Commands are a closed set of value types implementing Command:
//
//   - Control: ParamRequest, Clear, EnableOutput, DisableOutput, Ping
//   - Text mode: SwitchMode, WriteLine, SetFont, SetColor, SetAnimation
//   - Direct mode: DrawPixel, DrawLine, DrawRectangle, DrawTriangle,
//     DrawCircle, DrawRow
//
// Each has a matching EncodeXxx function. Encode accepts any Command, and the
// payload layout of every opcode can be inspected with Lookup.
//
// # Errors
//
// Every check runs before a byte is written. A rejected command leaves the
// destination buffer untouched and returns an *EncodeError that matches one of
// ErrBufferTooSmall, ErrFrameTooLarge, ErrFieldOutOfRange, ErrTextTooLong or
// ErrPayloadTooLarge with errors.Is. Text is never truncated.
//
// # Concurrency
//
// Encoding is synchronous, never retains the destination buffer and is
// safe to call from many goroutines with independent buffers. An Encoder is
// immutable after NewEncoder. A Batch is a caller-owned builder and must not
// be mutated concurrently.
package uartmatrix
