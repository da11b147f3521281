package uartmatrix

import (
	"fmt"
)

// ─── Hata Tipleri ───────────────────────────────────────────────────────────────

// ErrorKind, kodlayıcının döndürebileceği hata türleridir.
// Tüm hatalar tampona tek bir byte yazılmadan önce tespit edilir.
//
//	n, err := uartmatrix.EncodePing(buf)
//	if errors.Is(err, uartmatrix.ErrBufferTooSmall) {
//	    // daha büyük tampon ile tekrar dene
//	}
type ErrorKind int

const (
	ErrBufferTooSmall  ErrorKind = 1 // Çağıranın tamponu çerçeveye yetmiyor
	ErrFrameTooLarge   ErrorKind = 2 // Çerçeve, çerçeve sınırını aşıyor
	ErrFieldOutOfRange ErrorKind = 3 // Alan değeri tanımlı aralığın dışında
	ErrTextTooLong     ErrorKind = 4 // Metin MaxTextLength'ten uzun
	ErrPayloadTooLarge ErrorKind = 5 // Payload 255 byte sınırını aşıyor
)

// String, ErrorKind'ın okunabilir adını döner.
func (e ErrorKind) String() string {
	switch e {
	case ErrBufferTooSmall:
		return "buffer too small"
	case ErrFrameTooLarge:
		return "frame too large"
	case ErrFieldOutOfRange:
		return "field out of range"
	case ErrTextTooLong:
		return "text too long"
	case ErrPayloadTooLarge:
		return "payload too large"
	default:
		return fmt.Sprintf("unknown error (%d)", int(e))
	}
}

// Error, ErrorKind'ı error interface'i olarak kullanılabilir hale getirir.
func (e ErrorKind) Error() string {
	return "uartmatrix: " + e.String()
}

// Code, bayt sayısı veya negatif hata kodu bekleyen C tarzı çağıranlar için
// negatif sonuç kodunu döner.
func (e ErrorKind) Code() int {
	return -int(e)
}

// EncodeError, reddedilen bir komutun ayrıntılarını taşır.
// errors.Is ile Kind'a göre eşleştirilebilir.
type EncodeError struct {
	Kind   ErrorKind
	Opcode Opcode
	Field  string // Hatalı alanın adı (bounds hatalarında "frame")
	Value  int    // Alanın gerçek değeri veya istenen uzunluk
	Limit  int    // İzin verilen en büyük değer veya uzunluk
}

// Error, hatayı okunabilir biçimde döner.
func (e *EncodeError) Error() string {
	return fmt.Sprintf("uartmatrix: %s: %s %s=%d (limit %d)", e.Opcode, e.Kind.String(), e.Field, e.Value, e.Limit)
}

// Unwrap, errors.Is(err, ErrTextTooLong) gibi karşılaştırmaları mümkün kılar.
func (e *EncodeError) Unwrap() error {
	return e.Kind
}

func newEncodeError(kind ErrorKind, op Opcode, field string, value, limit int) *EncodeError {
	return &EncodeError{Kind: kind, Opcode: op, Field: field, Value: value, Limit: limit}
}
