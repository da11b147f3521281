package uartmatrix

import (
	"errors"
	"fmt"
	"slices"
)

// errNilCommand, Encode'a nil komut verildiğinde döner.
var errNilCommand = errors.New("uartmatrix: nil command")

// defaultEncoder, paket seviyesindeki Encode* fonksiyonlarının kullandığı
// kodlayıcıdır. Loglama kapalıdır ve hiçbir zaman değiştirilmez.
var defaultEncoder = NewEncoder()

// Encoder, komutları çerçevelere dönüştüren yapılandırılmış kodlayıcıdır.
// NewEncoder sonrası değiştirilemez; birden fazla goroutine tarafından
// ayrı tamponlarla aynı anda kullanılabilir.
//
// Kullanım:
//
//	enc := uartmatrix.NewEncoder(
//	    uartmatrix.WithRowWidth(64),
//	    uartmatrix.WithLogger(log.Default()),
//	)
//	buf := make([]byte, uartmatrix.MaxFrameSize)
//	n, err := enc.Encode(buf, uartmatrix.Ping{})
type Encoder struct {
	// opts, kodlayıcı yapılandırma seçenekleridir.
	opts encoderOptions
}

// NewEncoder, verilen seçeneklerle yeni bir Encoder oluşturur.
//
//	// Basit kullanım
//	enc := uartmatrix.NewEncoder()
//
//	// 64 byte alım tamponlu bir cihaz için
//	enc := uartmatrix.NewEncoder(uartmatrix.WithMaxFrameSize(64))
func NewEncoder(options ...EncoderOption) *Encoder {
	opts := defaultEncoderOptions()
	for _, opt := range options {
		opt(&opts)
	}
	return &Encoder{opts: opts}
}

// MaxFrameSize, bu kodlayıcının üreteceği en büyük çerçeve boyutunu döner.
func (e *Encoder) MaxFrameSize() int {
	return e.opts.maxFrameSize
}

// RowWidth, DrawRow için ayarlanmış satır genişliğini döner (0 = kontrol yok).
func (e *Encoder) RowWidth() int {
	return e.opts.rowWidth
}

// Encode, komutu dst'nin başına tek bir çerçeve olarak yazar ve yazılan byte
// sayısını döner. dst'nin uzunluğu tampon kapasitesi olarak kabul edilir.
//
// Hata durumunda dst'ye hiçbir şey yazılmaz. nil komut dışında dönen hata *EncodeError'dır
// ve errors.Is ile ErrorKind değerlerine eşleşir.
func (e *Encoder) Encode(dst []byte, cmd Command) (int, error) {
	payloadLen, err := e.prepare(cmd, len(dst))
	if err != nil {
		e.reject(cmd, err)
		return 0, err
	}
	return writeFrame(dst, cmd.Opcode(), payloadLen, cmd), nil
}

// FrameLen, komutun kodlandığında kaç byte tutacağını döner.
// Kontroller Encode ile aynıdır, yalnızca tampon kapasitesi kontrol edilmez.
func (e *Encoder) FrameLen(cmd Command) (int, error) {
	payloadLen, err := e.prepare(cmd, -1)
	if err != nil {
		return 0, err
	}
	return FrameLen(payloadLen), nil
}

// AppendFrame, komutun çerçevesini dst'nin sonuna ekler ve genişletilmiş
// dilimi döner. Hata durumunda dst değiştirilmeden döner.
//
//	var stream []byte
//	stream, _ = enc.AppendFrame(stream, uartmatrix.Clear{})
//	stream, _ = enc.AppendFrame(stream, uartmatrix.EnableOutput{})
func (e *Encoder) AppendFrame(dst []byte, cmd Command) ([]byte, error) {
	payloadLen, err := e.prepare(cmd, -1)
	if err != nil {
		e.reject(cmd, err)
		return dst, err
	}
	n := FrameLen(payloadLen)
	off := len(dst)
	dst = slices.Grow(dst, n)[:off+n]
	writeFrame(dst[off:], cmd.Opcode(), payloadLen, cmd)
	return dst, nil
}

// EncodeCommands, komutları sırayla tek bir byte akışına ekler.
// İlk hatada durur; hata, komutun sırasını içerecek şekilde sarılır ve o ana
// kadar eklenen çerçeveler dönmez.
func (e *Encoder) EncodeCommands(cmds ...Command) ([]byte, error) {
	var stream []byte
	for i, cmd := range cmds {
		var err error
		stream, err = e.AppendFrame(stream, cmd)
		if err != nil {
			return nil, fmt.Errorf("komut %d: %w", i, err)
		}
	}
	return stream, nil
}

// prepare, komutun alanlarını ve çerçeve sınırlarını doğrular, payload
// uzunluğunu döner. capacity < 0 ise tampon kontrolü yapılmaz.
func (e *Encoder) prepare(cmd Command, capacity int) (int, error) {
	if isNilCommand(cmd) {
		return 0, errNilCommand
	}
	op := cmd.Opcode()
	shape := catalog[op]

	if c, ok := cmd.(checker); ok {
		if err := c.check(&e.opts); err != nil {
			return 0, err
		}
	}

	payloadLen := shape.fixedLen
	if t, ok := cmd.(tailer); ok {
		payloadLen += t.tailLen() * shape.tailElem
	}

	if _, err := checkFrameBounds(op, payloadLen, e.opts.maxFrameSize, capacity); err != nil {
		return 0, err
	}
	return payloadLen, nil
}

// ─── Dahili Yardımcılar ─────────────────────────────────────────────────────────

// reject, reddedilen komutu loglar.
func (e *Encoder) reject(cmd Command, err error) {
	if isNilCommand(cmd) {
		e.logf("nil komut reddedildi")
		return
	}
	e.logf("%s reddedildi: %v", cmd.Opcode(), err)
}

// logf, yapılandırılmış logger varsa mesaj yazar.
func (e *Encoder) logf(format string, v ...interface{}) {
	if e.opts.logger != nil {
		e.opts.logger.Printf("[uartmatrix] "+format, v...)
	}
}

// ─── Paket Seviyesi Kısayollar ──────────────────────────────────────────────────

// Encode, komutu varsayılan kodlayıcı ile dst'ye yazar.
// Bkz. Encoder.Encode.
func Encode(dst []byte, cmd Command) (int, error) {
	return defaultEncoder.Encode(dst, cmd)
}

// AppendFrame, komutun çerçevesini varsayılan kodlayıcı ile dst'ye ekler.
func AppendFrame(dst []byte, cmd Command) ([]byte, error) {
	return defaultEncoder.AppendFrame(dst, cmd)
}
