package uartmatrix

import (
	"fmt"
	"image"

	"github.com/google/uuid"
)

// ─── Batch (Komut Dizisi) ───────────────────────────────────────────────────────
//
// Batch, cihaza sırayla gönderilecek komutların çağırana ait listesidir.
// Kodlayıcı durumsuzdur; Batch yalnızca komutları toplar ve Encode ile
// her komut için ayrı bir çerçeve üretir. Aktarım (UART yazma, komutlar
// arası bekleme, yanıt okuma) çağıranın sorumluluğundadır.
//
// Batch eşzamanlı değişikliklere karşı korunmaz.

// maxRows, 1 byte'lık satır numarasıyla adreslenebilen satır sayısıdır.
const maxRows = 256

// limitRows, satır başına girdileri ilk maxRows elemanla sınırlar;
// daha fazlası satır 0'dan başlayarak önceki satırların üzerine yazardı.
func limitRows[T any](rows []T) []T {
	if len(rows) > maxRows {
		return rows[:maxRows]
	}
	return rows
}

// Frame, Batch kodlamasının ürettiği tek bir çerçevedir.
type Frame struct {
	// Opcode, çerçevedeki komutun numarasıdır.
	Opcode Opcode

	// Data, SYNC'ten CHECKSUM'a kadar tam çerçevedir.
	Data []byte
}

// Batch, sıralı bir komut listesidir.
type Batch struct {
	// ID, aktarım loglarında batch'i izlemek için benzersiz kimliktir.
	ID string

	commands []Command
}

// RowAnimation, AddRowAnimations için satır başına animasyon ayarıdır.
type RowAnimation struct {
	Animation AnimationType
	Speed     uint8
	Direction Direction
}

// NewBatch, boş bir Batch oluşturur.
//
//	batch := uartmatrix.NewBatch()
//	batch.Add(uartmatrix.SwitchMode{Mode: uartmatrix.ModeText})
//	batch.AddTextRows([]string{"SATIR 1", "", "SATIR 3"})
//	frames, err := batch.Encode()
func NewBatch() *Batch {
	return &Batch{
		ID: uuid.New().String(),
	}
}

// Add, batch'in sonuna komut ekler ve zincirleme için batch'i döner.
// nil komutlar atlanır.
func (b *Batch) Add(cmds ...Command) *Batch {
	for _, cmd := range cmds {
		if !isNilCommand(cmd) {
			b.commands = append(b.commands, cmd)
		}
	}
	return b
}

// AddTextRows, her boş olmayan satır için bir WriteLine ekler.
// Satır numarası dilimdeki sıradır; boş satırlar cihazdaki mevcut metni korur.
// Satır numarası 1 byte olduğundan ilk maxRows girdiden sonrası eklenmez.
//
//	batch.AddTextRows([]string{"SICAKLIK", "21.5 C"})
func (b *Batch) AddTextRows(rows []string) *Batch {
	for i, text := range limitRows(rows) {
		if text == "" {
			continue
		}
		b.commands = append(b.commands, WriteLine{Row: uint8(i), Text: []byte(text)})
	}
	return b
}

// AddRowColors, her satır için bir SetColor ekler (en fazla maxRows satır).
func (b *Batch) AddRowColors(colors []RgbColor) *Batch {
	for i, c := range limitRows(colors) {
		b.commands = append(b.commands, SetColor{Row: uint8(i), Color: c})
	}
	return b
}

// AddRowFonts, her satır için bir SetFont ekler (en fazla maxRows satır).
func (b *Batch) AddRowFonts(fonts []FontType) *Batch {
	for i, f := range limitRows(fonts) {
		b.commands = append(b.commands, SetFont{Row: uint8(i), Font: f})
	}
	return b
}

// AddRowAnimations, her satır için bir SetAnimation ekler (en fazla maxRows satır).
func (b *Batch) AddRowAnimations(anims []RowAnimation) *Batch {
	for i, a := range limitRows(anims) {
		b.commands = append(b.commands, SetAnimation{
			Row:       uint8(i),
			Animation: a.Animation,
			Speed:     a.Speed,
			Direction: a.Direction,
		})
	}
	return b
}

// AddImage, görüntünün her satırı için bir DrawRow ekler (yukarıdan aşağıya).
// Satır numarası görüntü sınırlarına göredir: Bounds().Min.Y satır 0'dır.
//
// Genişliği MaxRowPixels'ı aşan görüntüler Encode sırasında
// ErrPayloadTooLarge ile reddedilir; görüntü önceden ölçeklenmelidir.
// maxRows'tan fazla satır eklenmez.
func (b *Batch) AddImage(img image.Image) *Batch {
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y && y-bounds.Min.Y < maxRows; y++ {
		pixels := make([]RgbColor, 0, bounds.Dx())
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, RgbColorFrom(img.At(x, y)))
		}
		b.commands = append(b.commands, DrawRow{Row: uint8(y - bounds.Min.Y), Pixels: pixels})
	}
	return b
}

// Len, batch'teki komut sayısını döner.
func (b *Batch) Len() int {
	return len(b.commands)
}

// Commands, komutların bir kopyasını döner.
func (b *Batch) Commands() []Command {
	out := make([]Command, len(b.commands))
	copy(out, b.commands)
	return out
}

// Encode, batch'i varsayılan kodlayıcı ile çerçevelere dönüştürür.
func (b *Batch) Encode() ([]Frame, error) {
	return defaultEncoder.EncodeBatch(b)
}

// EncodeBatch, batch'teki her komutu ayrı bir çerçeveye kodlar.
// Tüm çerçeveler tek bir ortak dizide tutulur; Frame.Data dilimleri bu
// dizinin parçalarıdır.
//
// İlk hatada durur ve hiçbir çerçeve dönmez. Hata, batch kimliği ve komut
// sırasıyla sarılır; errors.Is ile ErrorKind'a erişilebilir.
func (e *Encoder) EncodeBatch(b *Batch) ([]Frame, error) {
	sizes := make([]int, len(b.commands))
	total := 0
	for i, cmd := range b.commands {
		n, err := e.FrameLen(cmd)
		if err != nil {
			e.reject(cmd, err)
			return nil, fmt.Errorf("batch %s: komut %d (%s): %w", b.ID, i, cmd.Opcode(), err)
		}
		sizes[i] = n
		total += n
	}

	stream := make([]byte, total)
	frames := make([]Frame, len(b.commands))
	off := 0
	for i, cmd := range b.commands {
		end := off + sizes[i]
		// Boyutlar yukarıda doğrulandı, Encode tekrar hata döndürmez.
		if _, err := e.Encode(stream[off:end:end], cmd); err != nil {
			return nil, fmt.Errorf("batch %s: komut %d (%s): %w", b.ID, i, cmd.Opcode(), err)
		}
		frames[i] = Frame{Opcode: cmd.Opcode(), Data: stream[off:end:end]}
		off = end
	}

	e.logf("batch %s kodlandı: %d çerçeve, %d byte", b.ID, len(frames), total)
	return frames, nil
}

// Bytes, çerçeveleri tek bir akış halinde birleştirir.
func Bytes(frames []Frame) []byte {
	n := 0
	for _, f := range frames {
		n += len(f.Data)
	}
	out := make([]byte, 0, n)
	for _, f := range frames {
		out = append(out, f.Data...)
	}
	return out
}
