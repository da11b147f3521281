package uartmatrix

// ─── Komut Kataloğu ─────────────────────────────────────────────────────────────
//
// Katalog, her opcode için payload alanlarının sırasını ve genişliğini tanımlar.
// Sabit genişlikli alanlar önce, değişken uzunluklu kuyruk (metin veya piksel
// dizisi) en sonda yer alır; böylece cihaz kuyruğa kadar her alanı sabit
// ofsetten okuyabilir.
//
// Tablo paket yüklenirken bir kez oluşturulur ve hiçbir zaman değiştirilmez.

// FieldKind, payload içindeki bir alanın tipidir.
type FieldKind uint8

const (
	FieldU8     FieldKind = iota + 1 // 1 byte skaler
	FieldBool                        // 1 byte, 0 veya 1
	FieldLength                      // 1 byte, ardından gelen kuyruğun eleman sayısı
	FieldPoint                       // 2 byte: x, y
	FieldColor                       // 3 byte: r, g, b
	FieldText                        // değişken: ham metin byte'ları
	FieldPixels                      // değişken: RGB üçlüleri
)

// Width, alanın sabit byte genişliğini döner. Değişken alanlar için 0 döner.
func (k FieldKind) Width() int {
	switch k {
	case FieldU8, FieldBool, FieldLength:
		return 1
	case FieldPoint:
		return 2
	case FieldColor:
		return 3
	default:
		return 0
	}
}

// ElemWidth, değişken uzunluklu bir alanın eleman başına byte sayısıdır.
func (k FieldKind) ElemWidth() int {
	switch k {
	case FieldText:
		return 1
	case FieldPixels:
		return 3
	default:
		return 0
	}
}

// IsVariable, alanın değişken uzunluklu kuyruk olup olmadığını belirtir.
func (k FieldKind) IsVariable() bool {
	return k.ElemWidth() > 0
}

// Field, payload'daki adlandırılmış bir alandır.
type Field struct {
	Name string
	Kind FieldKind
}

// Shape, bir opcode'un payload düzenidir.
type Shape struct {
	Opcode Opcode
	Name   string
	Fields []Field
}

// FixedLen, payload'ın sabit kısmının byte uzunluğudur.
func (s Shape) FixedLen() int {
	n := 0
	for _, f := range s.Fields {
		n += f.Kind.Width()
	}
	return n
}

// Tail, varsa değişken uzunluklu kuyruk alanını döner.
func (s Shape) Tail() (Field, bool) {
	if len(s.Fields) == 0 {
		return Field{}, false
	}
	last := s.Fields[len(s.Fields)-1]
	return last, last.Kind.IsVariable()
}

type catalogEntry struct {
	name     string
	fields   []Field
	fixedLen int
	tailElem int // kuyruk eleman genişliği, kuyruk yoksa 0
}

func entry(name string, fields ...Field) catalogEntry {
	e := catalogEntry{name: name, fields: fields}
	for _, f := range fields {
		e.fixedLen += f.Kind.Width()
		e.tailElem += f.Kind.ElemWidth()
	}
	return e
}

var catalog = [opcodeCount]catalogEntry{
	OpParamRequest: entry("ParamRequest"),
	OpSwitchMode:   entry("SwitchMode", Field{"mode", FieldU8}),
	OpWriteLine: entry("WriteLine",
		Field{"row", FieldU8},
		Field{"text_len", FieldLength},
		Field{"text", FieldText},
	),
	OpSetFont: entry("SetFont",
		Field{"row", FieldU8},
		Field{"font", FieldU8},
	),
	OpSetColor: entry("SetColor",
		Field{"row", FieldU8},
		Field{"color", FieldColor},
	),
	OpSetAnimation: entry("SetAnimation",
		Field{"row", FieldU8},
		Field{"animation", FieldU8},
		Field{"speed", FieldU8},
		Field{"direction", FieldU8},
	),
	OpDrawPixel: entry("DrawPixel",
		Field{"point", FieldPoint},
		Field{"color", FieldColor},
	),
	OpDrawRow: entry("DrawRow",
		Field{"row", FieldU8},
		Field{"pixels", FieldPixels},
	),
	OpDrawLine: entry("DrawLine",
		Field{"p1", FieldPoint},
		Field{"p2", FieldPoint},
		Field{"thickness", FieldU8},
		Field{"color", FieldColor},
	),
	OpDrawRectangle: entry("DrawRectangle",
		Field{"p1", FieldPoint},
		Field{"p2", FieldPoint},
		Field{"thickness", FieldU8},
		Field{"color", FieldColor},
		Field{"filled", FieldBool},
	),
	OpDrawTriangle: entry("DrawTriangle",
		Field{"p1", FieldPoint},
		Field{"p2", FieldPoint},
		Field{"p3", FieldPoint},
		Field{"thickness", FieldU8},
		Field{"color", FieldColor},
		Field{"filled", FieldBool},
	),
	OpDrawCircle: entry("DrawCircle",
		Field{"center", FieldPoint},
		Field{"radius", FieldU8},
		Field{"thickness", FieldU8},
		Field{"color", FieldColor},
		Field{"filled", FieldBool},
	),
	OpClear:         entry("Clear"),
	OpEnableOutput:  entry("EnableOutput"),
	OpDisableOutput: entry("DisableOutput"),
	OpPing:          entry("Ping"),
}

// Lookup, opcode'un payload düzenini döner.
// Dönen Shape'in Fields dilimi kopyadır; değiştirilmesi kataloğu etkilemez.
func Lookup(op Opcode) (Shape, bool) {
	if int(op) >= len(catalog) || catalog[op].name == "" {
		return Shape{}, false
	}
	e := catalog[op]
	fields := make([]Field, len(e.fields))
	copy(fields, e.fields)
	return Shape{Opcode: op, Name: e.name, Fields: fields}, true
}

// Opcodes, katalogdaki tüm opcode'ları sayısal sırayla döner.
func Opcodes() []Opcode {
	ops := make([]Opcode, 0, len(catalog))
	for i, e := range catalog {
		if e.name != "" {
			ops = append(ops, Opcode(i))
		}
	}
	return ops
}
