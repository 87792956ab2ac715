package engine

import (
	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/api"
)

// BuildSnapshot создает полный "снимок" уровня для отправки клиенту.
// Клетки нетронутой породы опускаются: клиент рендерит их фоном,
// а их на карте большинство.
func BuildSnapshot(l *domain.Level) *api.LevelSnapshot {
	snap := &api.LevelSnapshot{
		Type:   "LEVEL",
		Seed:   l.Seed,
		Branch: l.ID.Branch,
		Depth:  l.ID.Level,
		Grid:   api.GridMeta{Width: domain.ColNo, Height: domain.RowNo},
		Flags: api.LevelFlagsView{
			NoTeleport: l.Flags.NoTeleport,
			IsMaze:     l.Flags.IsMaze,
			Graveyard:  l.Flags.Graveyard,
			HasVault:   l.Flags.HasVault,
			HasShop:    l.Flags.HasShop,
			HasTemple:  l.Flags.HasTemple,
		},
	}

	// Построчно, чтобы порядок клеток в снимке был стабильным.
	for y := 0; y < domain.RowNo; y++ {
		for x := 0; x < domain.ColNo; x++ {
			c := l.At(x, y)
			if c.Type == domain.Stone {
				continue
			}
			cv := api.CellView{
				X:       x,
				Y:       y,
				Terrain: uint8(c.Type),
				Symbol:  string(c.Type.Symbol()),
				Lit:     c.Lit,
				Room:    c.RoomIdx,
			}
			if c.Type.IsDoor() {
				cv.Door = uint8(c.DoorState())
			}
			if c.Type == domain.Altar {
				cv.Altar = uint8(c.AltarAlign())
			}
			snap.Cells = append(snap.Cells, cv)
		}
	}

	for i := range l.Rooms {
		r := &l.Rooms[i]
		snap.Rooms = append(snap.Rooms, api.RoomView{
			X: r.X, Y: r.Y, W: r.W, H: r.H,
			Kind:  r.Type.String(),
			Lit:   r.Lit,
			Doors: r.DoorCount,
		})
	}

	for i := range l.Traps {
		t := &l.Traps[i]
		tv := api.TrapView{X: t.X, Y: t.Y, Kind: t.Kind.String()}
		if t.Kind == domain.MagicPortal {
			tv.Dest = &api.LevelRef{Branch: t.Dest.Branch, Depth: t.Dest.Level}
		}
		snap.Traps = append(snap.Traps, tv)
	}

	for i := range l.Stairs {
		st := &l.Stairs[i]
		snap.Stairs = append(snap.Stairs, api.StairView{
			X: st.X, Y: st.Y, Up: st.Up,
			Dest: api.LevelRef{Branch: st.Dest.Branch, Depth: st.Dest.Level},
		})
	}

	for i := range l.Monsters {
		m := &l.Monsters[i]
		snap.Monsters = append(snap.Monsters, api.MonsterView{
			X: m.X, Y: m.Y,
			Kind:     m.Kind.String(),
			Name:     m.Name,
			HP:       m.HP,
			Sleeping: m.Sleeping,
			Peaceful: m.Peaceful,
		})
	}

	for i := range l.Objects {
		o := &l.Objects[i]
		snap.Objects = append(snap.Objects, api.ObjectView{
			X: o.X, Y: o.Y,
			Class:    o.Class.String(),
			Quantity: o.Quantity,
			Price:    o.Price,
		})
	}

	return snap
}
