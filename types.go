package uartmatrix

import (
	"fmt"
	"image/color"
)

// ─── Protokol Sabitleri ─────────────────────────────────────────────────────────

const (
	// MaxFrameSize, tek bir çerçevenin alabileceği en büyük byte sayısıdır.
	// Cihaz tarafındaki alım tamponu bu boyuttadır.
	MaxFrameSize = 512

	// MaxTextLength, WriteLine metni için text_len alanının üst sınırıdır (byte).
	// Bu sınırı aşan metin kesilmez, ErrTextTooLong ile reddedilir.
	// Payload satır ve text_len byte'larını da taşıdığından tek çerçeveye
	// en fazla MaxLineText (253) byte sığar; 254-255 byte'lık metin
	// ErrPayloadTooLarge ile reddedilir.
	MaxTextLength = 255

	// MaxLineText, tek bir WriteLine çerçevesine sığan en uzun metindir.
	// Format: [1B row][1B text_len][253B text] = 255
	MaxLineText = MaxPayloadLength - 2

	// MaxPayloadLength, PAYLOAD_LEN alanının (1 byte) taşıyabileceği en büyük
	// veri uzunluğudur.
	MaxPayloadLength = 255

	// MaxRowPixels, tek bir DrawRow çerçevesine sığan en fazla piksel sayısıdır.
	// Format: [1B row][3B RGB]*N, 1 + 3*84 = 253 <= 255
	MaxRowPixels = (MaxPayloadLength - 1) / 3

	// SyncByte, her çerçevenin ilk byte'ıdır ('U').
	// Alıcı bozulma sonrası bu byte'ı arayarak yeniden senkronize olur.
	SyncByte byte = 0x55

	// headerLength, çerçeve başlık uzunluğudur.
	// Format: [1B SYNC][1B OPCODE][1B PAYLOAD_LEN]
	headerLength = 3

	// checksumLength, çerçeve sonundaki checksum alanının uzunluğudur.
	checksumLength = 1

	// minFrameSize, boş payload'lu bir kontrol çerçevesinin boyutudur.
	minFrameSize = headerLength + checksumLength
)

// ─── Opcode'lar ─────────────────────────────────────────────────────────────────

// Opcode, çerçevenin 2. byte'ında taşınan komut numarasıdır.
// Cihaz, hangi çözücüyü kullanacağını bu değere göre seçer.
type Opcode uint8

const (
	// OpParamRequest, cihazdan ekran parametrelerini ister. Payload yoktur.
	OpParamRequest Opcode = 0x00

	// OpSwitchMode, metin ve doğrudan çizim modları arasında geçiş yapar.
	// Payload: [1B mode]
	OpSwitchMode Opcode = 0x01

	// OpWriteLine, bir satıra metin yazar.
	// Payload: [1B row][1B text_len][NB text]
	OpWriteLine Opcode = 0x02

	// OpSetFont, bir satırın fontunu değiştirir.
	// Payload: [1B row][1B font]
	OpSetFont Opcode = 0x03

	// OpSetColor, bir satırın metin rengini değiştirir.
	// Payload: [1B row][3B RGB]
	OpSetColor Opcode = 0x04

	// OpSetAnimation, bir satırın animasyonunu ayarlar.
	// Payload: [1B row][1B animation][1B speed][1B direction]
	OpSetAnimation Opcode = 0x05

	// OpDrawPixel, tek bir piksel çizer.
	// Payload: [2B point][3B RGB]
	OpDrawPixel Opcode = 0x06

	// OpDrawRow, bir piksel satırını baştan sona doldurur.
	// Payload: [1B row][3B RGB]*N
	OpDrawRow Opcode = 0x07

	// OpDrawLine, iki nokta arasında çizgi çizer.
	// Payload: [2B p1][2B p2][1B thickness][3B RGB]
	OpDrawLine Opcode = 0x08

	// OpDrawRectangle, dikdörtgen çizer.
	// Payload: [2B p1][2B p2][1B thickness][3B RGB][1B filled]
	OpDrawRectangle Opcode = 0x09

	// OpDrawTriangle, üçgen çizer.
	// Payload: [2B p1][2B p2][2B p3][1B thickness][3B RGB][1B filled]
	OpDrawTriangle Opcode = 0x0A

	// OpDrawCircle, daire çizer.
	// Payload: [2B center][1B radius][1B thickness][3B RGB][1B filled]
	OpDrawCircle Opcode = 0x0B

	// OpClear, ekranı temizler. Payload yoktur.
	OpClear Opcode = 0x0C

	// OpEnableOutput, LED çıkışını açar. Payload yoktur.
	OpEnableOutput Opcode = 0x0D

	// OpDisableOutput, LED çıkışını kapatır. Payload yoktur.
	OpDisableOutput Opcode = 0x0E

	// OpPing, bağlantı kontrolü için gönderilir. Payload yoktur.
	OpPing Opcode = 0x0F

	// opcodeCount, tanımlı opcode sayısıdır. Katalog tablosunun boyutudur.
	opcodeCount = 16
)

// String, Opcode'un okunabilir adını döner.
func (o Opcode) String() string {
	if int(o) < len(catalog) && catalog[o].name != "" {
		return catalog[o].name
	}
	return fmt.Sprintf("Unknown(0x%02x)", uint8(o))
}

// ─── Geometri ve Renk ───────────────────────────────────────────────────────────

// Point, matris üzerindeki bir koordinattır (0-255).
type Point struct {
	X uint8
	Y uint8
}

// RgbColor, 8 bit kanallı bir renktir.
// color.Color arayüzünü uygular, böylece image paketleriyle doğrudan kullanılabilir.
type RgbColor struct {
	R uint8
	G uint8
	B uint8
}

// DefaultColor, cihazın açılışta kullandığı orta gri renktir.
var DefaultColor = RgbColor{R: 128, G: 128, B: 128}

// RGBA, color.Color arayüzünü uygular. Alfa her zaman tam opaktır.
func (c RgbColor) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xffff
}

// RgbColorFrom, herhangi bir color.Color değerini 8 bit RGB'ye dönüştürür.
// Alfa kanalı yok sayılır (premultiplied değerler olduğu gibi alınır).
func RgbColorFrom(c color.Color) RgbColor {
	if rgb, ok := c.(RgbColor); ok {
		return rgb
	}
	r, g, b, _ := c.RGBA()
	return RgbColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// ─── Ekran Modları ──────────────────────────────────────────────────────────────

// DisplayMode, cihazın çalışma modunu belirler.
type DisplayMode uint8

const (
	ModeText   DisplayMode = 0 // Satır tabanlı metin modu
	ModeDirect DisplayMode = 1 // Doğrudan piksel/şekil çizim modu
)

// String, DisplayMode'un okunabilir adını döner.
func (m DisplayMode) String() string {
	switch m {
	case ModeText:
		return "Text"
	case ModeDirect:
		return "Direct"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(m))
	}
}

// ─── Font Tipleri ───────────────────────────────────────────────────────────────

// FontType, metin satırlarında kullanılan font tipidir.
type FontType uint8

const (
	FontDefault FontType = 0 // Varsayılan font
	FontPro     FontType = 1 // Pro font
	FontIBM     FontType = 2 // IBM BIOS fontu
)

// String, FontType'ın okunabilir adını döner.
func (f FontType) String() string {
	switch f {
	case FontDefault:
		return "Default"
	case FontPro:
		return "Pro"
	case FontIBM:
		return "IBM"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(f))
	}
}

// ─── Animasyonlar ───────────────────────────────────────────────────────────────

// AnimationType, bir metin satırına uygulanan animasyondur.
type AnimationType uint8

const (
	AnimationNone  AnimationType = 0 // Sabit metin
	AnimationBlink AnimationType = 1 // Yanıp sönme
	AnimationSlide AnimationType = 2 // Kayan yazı
)

// String, AnimationType'ın okunabilir adını döner.
func (a AnimationType) String() string {
	switch a {
	case AnimationNone:
		return "None"
	case AnimationBlink:
		return "Blink"
	case AnimationSlide:
		return "Slide"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(a))
	}
}

// Direction, kayan yazı animasyonunun yönüdür.
// Diğer animasyonlarda cihaz bu alanı yok sayar.
type Direction uint8

const (
	DirectionLeft  Direction = 0
	DirectionRight Direction = 1
)

// String, Direction'ın okunabilir adını döner.
func (d Direction) String() string {
	switch d {
	case DirectionLeft:
		return "Left"
	case DirectionRight:
		return "Right"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(d))
	}
}

// ─── Seçenek Yapıları ───────────────────────────────────────────────────────────

// EncoderOption, Encoder yapılandırma seçeneklerini tanımlar.
// Functional Options pattern kullanılır.
type EncoderOption func(*encoderOptions)

type encoderOptions struct {
	maxFrameSize int
	rowWidth     int
	logger       Logger
}

func defaultEncoderOptions() encoderOptions {
	return encoderOptions{
		maxFrameSize: MaxFrameSize,
		rowWidth:     0,
		logger:       nil,
	}
}

// WithMaxFrameSize, cihazın alım tamponu 512 byte'tan küçükse çerçeve
// sınırını düşürür. Değer [4, MaxFrameSize] aralığına sıkıştırılır.
//
//	enc := uartmatrix.NewEncoder(uartmatrix.WithMaxFrameSize(64))
func WithMaxFrameSize(n int) EncoderOption {
	return func(o *encoderOptions) {
		switch {
		case n < minFrameSize:
			n = minFrameSize
		case n > MaxFrameSize:
			n = MaxFrameSize
		}
		o.maxFrameSize = n
	}
}

// WithRowWidth, matrisin adreslenebilir satır genişliğini ayarlar.
// Ayarlandığında bu genişlikten uzun DrawRow komutları reddedilir.
// 0 (varsayılan) kontrolü kapatır.
func WithRowWidth(width int) EncoderOption {
	return func(o *encoderOptions) {
		if width < 0 {
			width = 0
		}
		o.rowWidth = width
	}
}

// WithLogger, özel bir loglama arayüzü ayarlar.
// Varsayılan olarak loglama devre dışıdır.
func WithLogger(l Logger) EncoderOption {
	return func(o *encoderOptions) {
		o.logger = l
	}
}

// ─── Logger Arayüzü ─────────────────────────────────────────────────────────────

// Logger, kütüphanenin loglama arayüzüdür.
// stdlib log paketiyle doğrudan uyumludur; zerolog için NewZerologLogger kullanılır.
type Logger interface {
	// Printf, formatlanmış bir log mesajı yazar.
	Printf(format string, v ...interface{})
}
