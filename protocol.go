package uartmatrix

// ─── Çerçeve Oluşturma ──────────────────────────────────────────────────────────
//
// Bu dosya, UART matris protokolü için düşük seviyeli çerçeve oluşturma
// fonksiyonlarını içerir. Çok byte'lı alan yoktur, byte sıralaması önemsizdir.
//
// Çerçeve Genel Formatı:
//   [1 byte] SYNC = 0x55
//   [1 byte] OPCODE
//   [1 byte] PAYLOAD_LEN (0-255)
//   [N byte] PAYLOAD (komuta göre değişir)
//   [1 byte] CHECKSUM = (OPCODE + PAYLOAD_LEN + PAYLOAD...) mod 256

// Checksum, verilen byte'ların 8 bit toplamını döner (mod 256).
// Çerçevede OPCODE'dan payload sonuna kadar olan bölge üzerinden hesaplanır.
func Checksum(data []byte) byte {
	var sum byte
	for _, b := range data {
		sum += b
	}
	return sum
}

// FrameLen, verilen payload uzunluğu için toplam çerçeve uzunluğunu döner.
//
//	FrameLen(0) == 4 // Ping, Clear vb.
//	FrameLen(5) == 9 // DrawPixel
func FrameLen(payloadLen int) int {
	return headerLength + payloadLen + checksumLength
}

// checkFrameBounds, çerçevenin payload tavanına, çerçeve sınırına ve çağıranın
// tamponuna sığdığını doğrular. Başarılıysa toplam çerçeve uzunluğunu döner.
//
// Kontrol sırası:
//  1. payloadLen <= MaxPayloadLength   (ErrPayloadTooLarge)
//  2. FrameLen(payloadLen) <= maxFrame (ErrFrameTooLarge)
//  3. FrameLen(payloadLen) <= capacity (ErrBufferTooSmall)
//
// capacity < 0 ise tampon kontrolü atlanır (AppendFrame tamponu kendisi büyütür).
func checkFrameBounds(op Opcode, payloadLen, maxFrame, capacity int) (int, error) {
	if payloadLen > MaxPayloadLength {
		return 0, newEncodeError(ErrPayloadTooLarge, op, "payload", payloadLen, MaxPayloadLength)
	}
	n := FrameLen(payloadLen)
	if n > maxFrame {
		return 0, newEncodeError(ErrFrameTooLarge, op, "frame", n, maxFrame)
	}
	if capacity >= 0 && n > capacity {
		return 0, newEncodeError(ErrBufferTooSmall, op, "buffer", n, capacity)
	}
	return n, nil
}

// writeFrame, doğrulanmış bir komutu dst'nin başına yazar ve yazılan byte
// sayısını döner. dst en az FrameLen(payloadLen) uzunluğunda olmalıdır.
//
// Çerçeve Formatı:
//
//	[0]      SYNC
//	[1]      OPCODE
//	[2]      PAYLOAD_LEN
//	[3..N+2] PAYLOAD (cmd.pack ile doldurulur)
//	[N+3]    CHECKSUM
func writeFrame(dst []byte, op Opcode, payloadLen int, cmd Command) int {
	end := headerLength + payloadLen

	dst[0] = SyncByte
	dst[1] = byte(op)
	dst[2] = byte(payloadLen)

	p := packer{buf: dst[headerLength:end]}
	cmd.pack(&p)

	dst[end] = Checksum(dst[1:end])
	return end + checksumLength
}

// packer, önceden boyutlandırılmış payload bölgesine alanları sırayla yazar.
// Bölge boyutu katalogdan hesaplandığı için taşma olmaz.
type packer struct {
	buf []byte
	off int
}

func (p *packer) u8(v uint8) {
	p.buf[p.off] = v
	p.off++
}

func (p *packer) flag(v bool) {
	if v {
		p.u8(1)
		return
	}
	p.u8(0)
}

func (p *packer) point(pt Point) {
	p.buf[p.off] = pt.X
	p.buf[p.off+1] = pt.Y
	p.off += 2
}

func (p *packer) color(c RgbColor) {
	p.buf[p.off] = c.R
	p.buf[p.off+1] = c.G
	p.buf[p.off+2] = c.B
	p.off += 3
}

func (p *packer) bytes(b []byte) {
	p.off += copy(p.buf[p.off:], b)
}

func (p *packer) pixels(px []RgbColor) {
	for _, c := range px {
		p.color(c)
	}
}
