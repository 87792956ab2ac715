package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
)

const (
	MagicHeader string = `DLVS` // 4 байта
	Version1    uint32 = 1
)

// Биты упакованных флагов уровня.
const (
	flagNoTeleport uint32 = 1 << iota
	flagIsMaze
	flagGraveyard
	flagHasVault
	flagHasCourt
	flagHasSwamp
	flagHasBeehive
	flagHasMorgue
	flagHasBarracks
	flagHasZoo
	flagHasTemple
	flagHasLepHall
	flagHasNest
	flagHasAnthole
	flagHasShop
)

// Биты клетки в cellRecord.Bits.
const (
	cellLit uint8 = 1 << iota
	cellCanDig
	cellEdge
)

// LevelFileHeader - это точное представление заголовка файла в памяти.
// binary.Write умеет писать это целиком, так как тут нет слайсов и строк,
// только массивы и числа.
type LevelFileHeader struct {
	Magic         [4]byte // 4 байта
	Version       uint32  // 4 байта
	Seed          int64   // 8 байт
	Branch        int8    // 1 байт
	Level         int8    // 1 байт
	FountainCount uint8   // 1 байт
	SinkCount     uint8   // 1 байт
	Flags         uint32  // 4 байта
	RoomCount     int32
	DoorCount     int32
	TrapCount     int32
	StairCount    int32
	MonsterCount  int32
	ObjectCount   int32
}

// cellRecord - одна клетка сетки. Пишется подряд для всех ColNo*RowNo
// клеток, построчно.
type cellRecord struct {
	Type    uint8
	Flags   uint8 // DoorState либо AltarAlign, как в Cell
	Bits    uint8
	RoomIdx int8
}

type roomRecord struct {
	X, Y, W, H int16
	Type       uint8
	Lit        uint8
	DoorCount  int16
	FirstDoor  int16
	Parent     int16
}

type doorRecord struct {
	X, Y uint8
}

type trapRecord struct {
	X, Y       uint8
	Kind       uint8
	Once       uint8
	DestBranch int8
	DestLevel  int8
}

type stairRecord struct {
	X, Y       uint8
	Up         uint8
	DestBranch int8
	DestLevel  int8
}

// monsterRecord - фиксированная часть записи монстра; за ней следует
// имя переменной длины (NameLen байт).
type monsterRecord struct {
	X, Y    uint8
	Kind    uint8
	HP      int16
	MaxHP   int16
	Bits    uint8 // bit0 = sleeping, bit1 = peaceful
	NameLen uint8
}

type objectRecord struct {
	X, Y     uint8
	Class    uint8
	Unpaid   uint8
	Quantity int32
	Price    int32
}

// LevelStore сохраняет сгенерированные уровни в бинарные снапшоты
// и читает их обратно.
type LevelStore struct {
	SaveDir string
}

func NewLevelStore(dir string) *LevelStore {
	// Создаем папку если нет
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		_ = os.Mkdir(dir, 0755)
	}
	return &LevelStore{SaveDir: dir}
}

// FileName - каноничное имя снапшота уровня.
func FileName(l *domain.Level) string {
	return fmt.Sprintf("level_%d_%d_%d.dlvs", l.ID.Branch, l.ID.Level, l.Seed)
}

func (s *LevelStore) Save(l *domain.Level) error {
	path := filepath.Join(s.SaveDir, FileName(l))

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return writeBinary(f, l)
}

func packFlags(fl domain.LevelFlags) uint32 {
	var v uint32
	set := func(cond bool, bit uint32) {
		if cond {
			v |= bit
		}
	}
	set(fl.NoTeleport, flagNoTeleport)
	set(fl.IsMaze, flagIsMaze)
	set(fl.Graveyard, flagGraveyard)
	set(fl.HasVault, flagHasVault)
	set(fl.HasCourt, flagHasCourt)
	set(fl.HasSwamp, flagHasSwamp)
	set(fl.HasBeehive, flagHasBeehive)
	set(fl.HasMorgue, flagHasMorgue)
	set(fl.HasBarracks, flagHasBarracks)
	set(fl.HasZoo, flagHasZoo)
	set(fl.HasTemple, flagHasTemple)
	set(fl.HasLepHall, flagHasLepHall)
	set(fl.HasNest, flagHasNest)
	set(fl.HasAnthole, flagHasAnthole)
	set(fl.HasShop, flagHasShop)
	return v
}

func writeBinary(w io.Writer, l *domain.Level) error {
	// 1. Подготавливаем и пишем ГЛОБАЛЬНЫЙ ЗАГОЛОВОК
	header := LevelFileHeader{
		Version:       Version1,
		Seed:          l.Seed,
		Branch:        l.ID.Branch,
		Level:         l.ID.Level,
		FountainCount: uint8(l.Flags.FountainCount),
		SinkCount:     uint8(l.Flags.SinkCount),
		Flags:         packFlags(l.Flags),
		RoomCount:     int32(len(l.Rooms)),
		DoorCount:     int32(len(l.Doors)),
		TrapCount:     int32(len(l.Traps)),
		StairCount:    int32(len(l.Stairs)),
		MonsterCount:  int32(len(l.Monsters)),
		ObjectCount:   int32(len(l.Objects)),
	}
	copy(header.Magic[:], MagicHeader) // Копируем строку в массив [4]byte

	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	// 2. Сетка. Построчно, фиксированный размер.
	grid := make([]cellRecord, 0, domain.ColNo*domain.RowNo)
	for y := 0; y < domain.RowNo; y++ {
		for x := 0; x < domain.ColNo; x++ {
			c := l.At(x, y)
			var bits uint8
			if c.Lit {
				bits |= cellLit
			}
			if c.CanDig {
				bits |= cellCanDig
			}
			if c.Edge {
				bits |= cellEdge
			}
			grid = append(grid, cellRecord{
				Type:    uint8(c.Type),
				Flags:   c.RawFlags(),
				Bits:    bits,
				RoomIdx: c.RoomIdx,
			})
		}
	}
	if err := binary.Write(w, binary.LittleEndian, grid); err != nil {
		return fmt.Errorf("failed to write grid: %w", err)
	}

	// 3. Комнаты
	for i := range l.Rooms {
		r := &l.Rooms[i]
		lit := uint8(0)
		if r.Lit {
			lit = 1
		}
		rec := roomRecord{
			X: int16(r.X), Y: int16(r.Y), W: int16(r.W), H: int16(r.H),
			Type:      uint8(r.Type),
			Lit:       lit,
			DoorCount: int16(r.DoorCount),
			FirstDoor: int16(r.FirstDoor),
			Parent:    int16(r.Parent),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write room %d: %w", i, err)
		}
	}

	// 4. Двери
	for i := range l.Doors {
		d := &l.Doors[i]
		rec := doorRecord{X: uint8(d.X), Y: uint8(d.Y)}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write door %d: %w", i, err)
		}
	}

	// 5. Ловушки
	for i := range l.Traps {
		t := &l.Traps[i]
		once := uint8(0)
		if t.Once {
			once = 1
		}
		rec := trapRecord{
			X: uint8(t.X), Y: uint8(t.Y),
			Kind:       uint8(t.Kind),
			Once:       once,
			DestBranch: t.Dest.Branch,
			DestLevel:  t.Dest.Level,
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write trap %d: %w", i, err)
		}
	}

	// 6. Лестницы
	for i := range l.Stairs {
		st := &l.Stairs[i]
		up := uint8(0)
		if st.Up {
			up = 1
		}
		rec := stairRecord{
			X: uint8(st.X), Y: uint8(st.Y),
			Up:         up,
			DestBranch: st.Dest.Branch,
			DestLevel:  st.Dest.Level,
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write stair %d: %w", i, err)
		}
	}

	// 7. Монстры. Имя переменной длины пишется сразу за фиксированной частью.
	for i := range l.Monsters {
		m := &l.Monsters[i]
		nameBytes := []byte(m.Name)
		if len(nameBytes) > 255 {
			return fmt.Errorf("monster name too long: %d", len(nameBytes))
		}

		var bits uint8
		if m.Sleeping {
			bits |= 1
		}
		if m.Peaceful {
			bits |= 2
		}
		rec := monsterRecord{
			X: uint8(m.X), Y: uint8(m.Y),
			Kind:    uint8(m.Kind),
			HP:      int16(m.HP),
			MaxHP:   int16(m.MaxHP),
			Bits:    bits,
			NameLen: uint8(len(nameBytes)),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write monster %d: %w", i, err)
		}
		if _, err := w.Write(nameBytes); err != nil {
			return err
		}
	}

	// 8. Предметы
	for i := range l.Objects {
		o := &l.Objects[i]
		unpaid := uint8(0)
		if o.Unpaid {
			unpaid = 1
		}
		rec := objectRecord{
			X: uint8(o.X), Y: uint8(o.Y),
			Class:    uint8(o.Class),
			Unpaid:   unpaid,
			Quantity: int32(o.Quantity),
			Price:    int32(o.Price),
		}
		if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
			return fmt.Errorf("failed to write object %d: %w", i, err)
		}
	}

	return nil
}
