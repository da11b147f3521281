package uartmatrix

// ─── Komut Tipleri ──────────────────────────────────────────────────────────────
//
// Her komut kendi parametrelerinin tek sahibidir. Command arayüzü dışarıdan
// uygulanamaz (pack metodu dışa açık değildir); böylece opcode ile payload
// düzeni arasında kataloğun bilmediği bir eşleşme oluşamaz.

// Command, cihaza gönderilebilecek bir ekran komutudur.
// Komutlar değer olarak verilir (Ping{}); nil işaretçi (*Ping)(nil) nil komut
// sayılır ve reddedilir.
type Command interface {
	// Opcode, komutun çerçevedeki numarasını döner.
	Opcode() Opcode

	// pack, payload alanlarını katalogdaki sırayla yazar.
	pack(p *packer)
}

// checker, alan aralığı kontrolü gerektiren komutlar tarafından uygulanır.
type checker interface {
	check(o *encoderOptions) error
}

// tailer, değişken uzunluklu kuyruk taşıyan komutlar tarafından uygulanır.
// Dönen değer byte değil eleman sayısıdır.
type tailer interface {
	tailLen() int
}

// isNilCommand, cmd nil ise ya da nil bir komut işaretçisi taşıyorsa true döner.
// Komutlar değer tipleridir; *Ping gibi işaretçiler de Command'i sağlar ama
// nil olduklarında Opcode çağrısı panikler.
func isNilCommand(cmd Command) bool {
	switch c := cmd.(type) {
	case nil:
		return true
	case *ParamRequest:
		return c == nil
	case *SwitchMode:
		return c == nil
	case *WriteLine:
		return c == nil
	case *SetFont:
		return c == nil
	case *SetColor:
		return c == nil
	case *SetAnimation:
		return c == nil
	case *DrawPixel:
		return c == nil
	case *DrawRow:
		return c == nil
	case *DrawLine:
		return c == nil
	case *DrawRectangle:
		return c == nil
	case *DrawTriangle:
		return c == nil
	case *DrawCircle:
		return c == nil
	case *Clear:
		return c == nil
	case *EnableOutput:
		return c == nil
	case *DisableOutput:
		return c == nil
	case *Ping:
		return c == nil
	}
	return false
}

func checkMax(op Opcode, field string, v, limit int) error {
	if v > limit {
		return newEncodeError(ErrFieldOutOfRange, op, field, v, limit)
	}
	return nil
}

// ─── Kontrol Komutları ──────────────────────────────────────────────────────────

// ParamRequest, cihazdan ekran parametrelerini ister.
type ParamRequest struct{}

// Clear, ekranı temizler.
type Clear struct{}

// EnableOutput, LED çıkışını açar.
type EnableOutput struct{}

// DisableOutput, LED çıkışını kapatır.
type DisableOutput struct{}

// Ping, bağlantı kontrolü için boş bir çerçevedir.
type Ping struct{}

func (ParamRequest) Opcode() Opcode  { return OpParamRequest }
func (Clear) Opcode() Opcode         { return OpClear }
func (EnableOutput) Opcode() Opcode  { return OpEnableOutput }
func (DisableOutput) Opcode() Opcode { return OpDisableOutput }
func (Ping) Opcode() Opcode          { return OpPing }

func (ParamRequest) pack(*packer)  {}
func (Clear) pack(*packer)         {}
func (EnableOutput) pack(*packer)  {}
func (DisableOutput) pack(*packer) {}
func (Ping) pack(*packer)          {}

// ─── Metin Modu Komutları ───────────────────────────────────────────────────────

// SwitchMode, cihazı metin veya doğrudan çizim moduna geçirir.
type SwitchMode struct {
	Mode DisplayMode
}

func (SwitchMode) Opcode() Opcode { return OpSwitchMode }

func (c SwitchMode) check(*encoderOptions) error {
	return checkMax(OpSwitchMode, "mode", int(c.Mode), int(ModeDirect))
}

func (c SwitchMode) pack(p *packer) {
	p.u8(uint8(c.Mode))
}

// WriteLine, bir metin satırını değiştirir.
// Tek çerçeveye en fazla MaxLineText byte sığar; kodlayıcı metni kesmez.
// Text çağrı süresince ödünç alınır, saklanmaz.
type WriteLine struct {
	Row  uint8
	Text []byte
}

func (WriteLine) Opcode() Opcode { return OpWriteLine }

func (c WriteLine) check(*encoderOptions) error {
	if len(c.Text) > MaxTextLength {
		return newEncodeError(ErrTextTooLong, OpWriteLine, "text", len(c.Text), MaxTextLength)
	}
	return nil
}

func (c WriteLine) tailLen() int { return len(c.Text) }

func (c WriteLine) pack(p *packer) {
	p.u8(c.Row)
	p.u8(uint8(len(c.Text)))
	p.bytes(c.Text)
}

// SetFont, bir satırın fontunu değiştirir.
type SetFont struct {
	Row  uint8
	Font FontType
}

func (SetFont) Opcode() Opcode { return OpSetFont }

func (c SetFont) check(*encoderOptions) error {
	return checkMax(OpSetFont, "font", int(c.Font), int(FontIBM))
}

func (c SetFont) pack(p *packer) {
	p.u8(c.Row)
	p.u8(uint8(c.Font))
}

// SetColor, bir satırın metin rengini değiştirir.
type SetColor struct {
	Row   uint8
	Color RgbColor
}

func (SetColor) Opcode() Opcode { return OpSetColor }

func (c SetColor) pack(p *packer) {
	p.u8(c.Row)
	p.color(c.Color)
}

// SetAnimation, bir satırın animasyonunu ayarlar.
// Payload her zaman 4 byte'tır; Speed ve Direction kullanılmayan
// animasyonlarda da gönderilir.
type SetAnimation struct {
	Row       uint8
	Animation AnimationType
	Speed     uint8
	Direction Direction
}

func (SetAnimation) Opcode() Opcode { return OpSetAnimation }

func (c SetAnimation) check(*encoderOptions) error {
	if err := checkMax(OpSetAnimation, "animation", int(c.Animation), int(AnimationSlide)); err != nil {
		return err
	}
	return checkMax(OpSetAnimation, "direction", int(c.Direction), int(DirectionRight))
}

func (c SetAnimation) pack(p *packer) {
	p.u8(c.Row)
	p.u8(uint8(c.Animation))
	p.u8(c.Speed)
	p.u8(uint8(c.Direction))
}

// ─── Çizim Komutları ────────────────────────────────────────────────────────────
//
// Şekil komutlarında nokta sırası veya dejenere şekiller (p1 == p2 gibi)
// kontrol edilmez; değerler olduğu gibi paketlenir.

// DrawPixel, tek bir piksel çizer.
type DrawPixel struct {
	Point Point
	Color RgbColor
}

func (DrawPixel) Opcode() Opcode { return OpDrawPixel }

func (c DrawPixel) pack(p *packer) {
	p.point(c.Point)
	p.color(c.Color)
}

// DrawLine, iki nokta arasında çizgi çizer.
type DrawLine struct {
	P1, P2    Point
	Thickness uint8
	Color     RgbColor
}

func (DrawLine) Opcode() Opcode { return OpDrawLine }

func (c DrawLine) pack(p *packer) {
	p.point(c.P1)
	p.point(c.P2)
	p.u8(c.Thickness)
	p.color(c.Color)
}

// DrawRectangle, köşegen iki noktası verilen bir dikdörtgen çizer.
type DrawRectangle struct {
	P1, P2    Point
	Thickness uint8
	Color     RgbColor
	Filled    bool
}

func (DrawRectangle) Opcode() Opcode { return OpDrawRectangle }

func (c DrawRectangle) pack(p *packer) {
	p.point(c.P1)
	p.point(c.P2)
	p.u8(c.Thickness)
	p.color(c.Color)
	p.flag(c.Filled)
}

// DrawTriangle, üç köşesi verilen bir üçgen çizer.
type DrawTriangle struct {
	P1, P2, P3 Point
	Thickness  uint8
	Color      RgbColor
	Filled     bool
}

func (DrawTriangle) Opcode() Opcode { return OpDrawTriangle }

func (c DrawTriangle) pack(p *packer) {
	p.point(c.P1)
	p.point(c.P2)
	p.point(c.P3)
	p.u8(c.Thickness)
	p.color(c.Color)
	p.flag(c.Filled)
}

// DrawCircle, merkez ve yarıçapı verilen bir daire çizer.
type DrawCircle struct {
	Center    Point
	Radius    uint8
	Thickness uint8
	Color     RgbColor
	Filled    bool
}

func (DrawCircle) Opcode() Opcode { return OpDrawCircle }

func (c DrawCircle) pack(p *packer) {
	p.point(c.Center)
	p.u8(c.Radius)
	p.u8(c.Thickness)
	p.color(c.Color)
	p.flag(c.Filled)
}

// DrawRow, bir piksel satırını soldan sağa doldurur.
// Bir çerçeveye en fazla MaxRowPixels piksel sığar. Satır genişliğiyle
// tutarlılık yalnızca WithRowWidth ayarlandığında kontrol edilir.
type DrawRow struct {
	Row    uint8
	Pixels []RgbColor
}

func (DrawRow) Opcode() Opcode { return OpDrawRow }

func (c DrawRow) check(o *encoderOptions) error {
	if o.rowWidth > 0 {
		return checkMax(OpDrawRow, "pixels", len(c.Pixels), o.rowWidth)
	}
	return nil
}

func (c DrawRow) tailLen() int { return len(c.Pixels) }

func (c DrawRow) pack(p *packer) {
	p.u8(c.Row)
	p.pixels(c.Pixels)
}

// ─── Komut Başına Kodlayıcılar ──────────────────────────────────────────────────
//
// Aşağıdaki fonksiyonlar varsayılan kodlayıcıyı kullanır ve çerçeveyi dst'nin
// başına yazar. Başarılıysa yazılan byte sayısını döner; hata durumunda dst'ye
// hiçbir şey yazılmaz.

// EncodeParamRequest, ekran parametre isteği çerçevesini yazar.
func EncodeParamRequest(dst []byte) (int, error) {
	return Encode(dst, ParamRequest{})
}

// EncodeSwitchMode, mod değiştirme çerçevesini yazar.
//
//	n, err := uartmatrix.EncodeSwitchMode(buf, uartmatrix.ModeDirect)
func EncodeSwitchMode(dst []byte, mode DisplayMode) (int, error) {
	return Encode(dst, SwitchMode{Mode: mode})
}

// EncodeWriteLine, satıra metin yazma çerçevesini yazar.
//
//	n, err := uartmatrix.EncodeWriteLine(buf, 0, []byte("MERHABA"))
//	if err != nil {
//	    return err
//	}
//	port.Write(buf[:n])
func EncodeWriteLine(dst []byte, row uint8, text []byte) (int, error) {
	return Encode(dst, WriteLine{Row: row, Text: text})
}

// EncodeSetFont, satır fontu çerçevesini yazar.
func EncodeSetFont(dst []byte, row uint8, font FontType) (int, error) {
	return Encode(dst, SetFont{Row: row, Font: font})
}

// EncodeSetColor, satır rengi çerçevesini yazar.
func EncodeSetColor(dst []byte, row uint8, color RgbColor) (int, error) {
	return Encode(dst, SetColor{Row: row, Color: color})
}

// EncodeSetAnimation, satır animasyonu çerçevesini yazar.
//
//	n, err := uartmatrix.EncodeSetAnimation(buf, 1, uartmatrix.AnimationSlide, 20, uartmatrix.DirectionLeft)
func EncodeSetAnimation(dst []byte, row uint8, animation AnimationType, speed uint8, direction Direction) (int, error) {
	return Encode(dst, SetAnimation{Row: row, Animation: animation, Speed: speed, Direction: direction})
}

// EncodeDrawPixel, piksel çizme çerçevesini yazar.
func EncodeDrawPixel(dst []byte, point Point, color RgbColor) (int, error) {
	return Encode(dst, DrawPixel{Point: point, Color: color})
}

// EncodeDrawLine, çizgi çizme çerçevesini yazar.
func EncodeDrawLine(dst []byte, p1, p2 Point, thickness uint8, color RgbColor) (int, error) {
	return Encode(dst, DrawLine{P1: p1, P2: p2, Thickness: thickness, Color: color})
}

// EncodeDrawRectangle, dikdörtgen çizme çerçevesini yazar.
func EncodeDrawRectangle(dst []byte, p1, p2 Point, thickness uint8, color RgbColor, filled bool) (int, error) {
	return Encode(dst, DrawRectangle{P1: p1, P2: p2, Thickness: thickness, Color: color, Filled: filled})
}

// EncodeDrawTriangle, üçgen çizme çerçevesini yazar.
func EncodeDrawTriangle(dst []byte, p1, p2, p3 Point, thickness uint8, color RgbColor, filled bool) (int, error) {
	return Encode(dst, DrawTriangle{P1: p1, P2: p2, P3: p3, Thickness: thickness, Color: color, Filled: filled})
}

// EncodeDrawCircle, daire çizme çerçevesini yazar.
func EncodeDrawCircle(dst []byte, center Point, radius, thickness uint8, color RgbColor, filled bool) (int, error) {
	return Encode(dst, DrawCircle{Center: center, Radius: radius, Thickness: thickness, Color: color, Filled: filled})
}

// EncodeDrawRow, piksel satırı çerçevesini yazar.
func EncodeDrawRow(dst []byte, row uint8, pixels []RgbColor) (int, error) {
	return Encode(dst, DrawRow{Row: row, Pixels: pixels})
}

// EncodeClear, ekran temizleme çerçevesini yazar.
func EncodeClear(dst []byte) (int, error) {
	return Encode(dst, Clear{})
}

// EncodeEnableOutput, çıkışı açma çerçevesini yazar.
func EncodeEnableOutput(dst []byte) (int, error) {
	return Encode(dst, EnableOutput{})
}

// EncodeDisableOutput, çıkışı kapatma çerçevesini yazar.
func EncodeDisableOutput(dst []byte) (int, error) {
	return Encode(dst, DisableOutput{})
}

// EncodePing, ping çerçevesini yazar.
func EncodePing(dst []byte) (int, error) {
	return Encode(dst, Ping{})
}
