package storage

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
)

func (s *LevelStore) Load(path string) (*domain.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return readBinary(f)
}

func unpackFlags(v uint32) domain.LevelFlags {
	return domain.LevelFlags{
		NoTeleport:  v&flagNoTeleport != 0,
		IsMaze:      v&flagIsMaze != 0,
		Graveyard:   v&flagGraveyard != 0,
		HasVault:    v&flagHasVault != 0,
		HasCourt:    v&flagHasCourt != 0,
		HasSwamp:    v&flagHasSwamp != 0,
		HasBeehive:  v&flagHasBeehive != 0,
		HasMorgue:   v&flagHasMorgue != 0,
		HasBarracks: v&flagHasBarracks != 0,
		HasZoo:      v&flagHasZoo != 0,
		HasTemple:   v&flagHasTemple != 0,
		HasLepHall:  v&flagHasLepHall != 0,
		HasNest:     v&flagHasNest != 0,
		HasAnthole:  v&flagHasAnthole != 0,
		HasShop:     v&flagHasShop != 0,
	}
}

func readBinary(r io.Reader) (*domain.Level, error) {
	// 1. Читаем заголовок целиком
	var header LevelFileHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	// Валидация
	if string(header.Magic[:]) != MagicHeader {
		return nil, fmt.Errorf("invalid magic")
	}
	if header.Version != Version1 {
		return nil, fmt.Errorf("unsupported version: %d (expected %d)", header.Version, Version1)
	}

	l := domain.NewLevel(domain.NewDLevel(header.Branch, header.Level), header.Seed)
	l.Flags = unpackFlags(header.Flags)
	l.Flags.FountainCount = int(header.FountainCount)
	l.Flags.SinkCount = int(header.SinkCount)

	// 2. Сетка
	grid := make([]cellRecord, domain.ColNo*domain.RowNo)
	if err := binary.Read(r, binary.LittleEndian, grid); err != nil {
		return nil, fmt.Errorf("failed to read grid: %w", err)
	}
	for y := 0; y < domain.RowNo; y++ {
		for x := 0; x < domain.ColNo; x++ {
			rec := grid[y*domain.ColNo+x]
			c := l.At(x, y)
			c.Type = domain.CellType(rec.Type)
			c.SetRawFlags(rec.Flags)
			c.Lit = rec.Bits&cellLit != 0
			c.CanDig = rec.Bits&cellCanDig != 0
			c.Edge = rec.Bits&cellEdge != 0
			c.RoomIdx = rec.RoomIdx
		}
	}

	// 3. Комнаты
	for i := 0; i < int(header.RoomCount); i++ {
		var rec roomRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read room %d: %w", i, err)
		}
		room := domain.Room{
			X: int(rec.X), Y: int(rec.Y), W: int(rec.W), H: int(rec.H),
			Type:      domain.RoomType(rec.Type),
			Lit:       rec.Lit != 0,
			DoorCount: int(rec.DoorCount),
			FirstDoor: int(rec.FirstDoor),
			Parent:    int(rec.Parent),
		}
		l.Rooms = append(l.Rooms, room)
	}

	// 4. Двери
	for i := 0; i < int(header.DoorCount); i++ {
		var rec doorRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read door %d: %w", i, err)
		}
		l.Doors = append(l.Doors, domain.DoorPos{X: int(rec.X), Y: int(rec.Y)})
	}

	// 5. Ловушки
	for i := 0; i < int(header.TrapCount); i++ {
		var rec trapRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read trap %d: %w", i, err)
		}
		l.Traps = append(l.Traps, domain.Trap{
			X: int(rec.X), Y: int(rec.Y),
			Kind: domain.TrapKind(rec.Kind),
			Once: rec.Once != 0,
			Dest: domain.NewDLevel(rec.DestBranch, rec.DestLevel),
		})
	}

	// 6. Лестницы
	for i := 0; i < int(header.StairCount); i++ {
		var rec stairRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read stair %d: %w", i, err)
		}
		l.Stairs = append(l.Stairs, domain.Stairway{
			X: int(rec.X), Y: int(rec.Y),
			Up:   rec.Up != 0,
			Dest: domain.NewDLevel(rec.DestBranch, rec.DestLevel),
		})
	}

	// 7. Монстры
	for i := 0; i < int(header.MonsterCount); i++ {
		var rec monsterRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read monster %d: %w", i, err)
		}
		m := domain.Monster{
			X: int(rec.X), Y: int(rec.Y),
			Kind:       domain.MonsterKind(rec.Kind),
			HP:         int(rec.HP),
			MaxHP:      int(rec.MaxHP),
			Difficulty: domain.MonsterKind(rec.Kind).Difficulty(),
			Sleeping:   rec.Bits&1 != 0,
			Peaceful:   rec.Bits&2 != 0,
		}
		if rec.NameLen > 0 {
			nameBuf := make([]byte, rec.NameLen)
			if _, err := io.ReadFull(r, nameBuf); err != nil {
				return nil, fmt.Errorf("failed to read monster name %d: %w", i, err)
			}
			m.Name = string(nameBuf)
		}
		l.Monsters = append(l.Monsters, m)
	}

	// 8. Предметы
	for i := 0; i < int(header.ObjectCount); i++ {
		var rec objectRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("failed to read object %d: %w", i, err)
		}
		l.Objects = append(l.Objects, domain.Object{
			X: int(rec.X), Y: int(rec.Y),
			Class:    domain.ObjectClass(rec.Class),
			Unpaid:   rec.Unpaid != 0,
			Quantity: int(rec.Quantity),
			Price:    int(rec.Price),
		})
	}

	return l, nil
}
