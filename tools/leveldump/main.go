package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"

	"github.com/pierreaubert/nethack-rs-sub002/internal/domain"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/dungeon"
	"github.com/pierreaubert/nethack-rs-sub002/pkg/utils"
)

// Стили террейна для цветного дампа.
var (
	styleWall     = color.Style{color.FgGray}
	styleFloor    = color.Style{color.FgWhite}
	styleCorridor = color.Style{color.FgDarkGray}
	styleDoor     = color.Style{color.FgYellow}
	styleWater    = color.Style{color.FgBlue, color.OpBold}
	styleLava     = color.Style{color.FgRed, color.OpBold}
	styleStairs   = color.Style{color.FgGreen, color.OpBold}
	styleSpecial  = color.Style{color.FgMagenta, color.OpBold}
	styleMonster  = color.Style{color.FgRed}
	styleGold     = color.Style{color.FgYellow, color.OpBold}
)

func styleFor(t domain.CellType) color.Style {
	switch {
	case t.IsWall(), t == domain.Tree, t == domain.IronBars:
		return styleWall
	case t == domain.RoomFloor, t == domain.Ice:
		return styleFloor
	case t == domain.Corridor, t == domain.SecretCorridor, t == domain.Cloud:
		return styleCorridor
	case t.IsDoor():
		return styleDoor
	case t.IsPool(), t == domain.Air:
		return styleWater
	case t == domain.Lava:
		return styleLava
	case t == domain.Stairs, t == domain.Ladder:
		return styleStairs
	case t.IsFurniture():
		return styleSpecial
	}
	return styleFloor
}

func main() {
	var seed int64
	var seedText string
	var branch, depth int
	var plain bool
	flag.Int64Var(&seed, "seed", 42, "Master seed")
	flag.StringVar(&seedText, "seed-text", "", "Master seed as text (hashed, overrides -seed)")
	flag.IntVar(&branch, "branch", 0, "Dungeon branch (0=main, 1=gehennom, 2=mines, 7=planes)")
	flag.IntVar(&depth, "depth", 1, "Level within the branch")
	flag.BoolVar(&plain, "plain", false, "Disable colors")
	flag.Parse()

	if seedText != "" {
		seed = utils.StringToSeed(seedText)
	}
	if plain {
		color.Disable()
	}

	id := domain.NewDLevel(int8(branch), int8(depth))
	if id.Branch < domain.BranchMain || id.Branch > domain.BranchPlanes ||
		id.Level < 1 || id.Level > domain.BranchMaxLevel(id.Branch) {
		fmt.Fprintf(os.Stderr, "invalid level %d:%d\n", branch, depth)
		os.Exit(1)
	}

	l := dungeon.Generate(id, utils.LevelSeed(seed, id.Branch, id.Level))

	// Монстры и золото поверх террейна.
	overlay := make(map[[2]int]string)
	for i := range l.Objects {
		o := &l.Objects[i]
		if o.Class == domain.GoldClass {
			overlay[[2]int{o.X, o.Y}] = styleGold.Sprint("$")
		}
	}
	for i := range l.Monsters {
		m := &l.Monsters[i]
		overlay[[2]int{m.X, m.Y}] = styleMonster.Sprint(strings.ToLower(m.Kind.String())[:1])
	}

	for y := 0; y < domain.RowNo; y++ {
		var sb strings.Builder
		for x := 0; x < domain.ColNo; x++ {
			if s, ok := overlay[[2]int{x, y}]; ok {
				sb.WriteString(s)
				continue
			}
			t := l.TypeAt(x, y)
			sb.WriteString(styleFor(t).Sprint(string(t.Symbol())))
		}
		fmt.Println(sb.String())
	}

	fmt.Printf("\n%s  seed=%d  depth=%d\n", id, l.Seed, id.Depth())
	fmt.Printf("rooms=%d doors=%d traps=%d stairs=%d monsters=%d objects=%d\n",
		len(l.Rooms), len(l.Doors), len(l.Traps), len(l.Stairs), len(l.Monsters), len(l.Objects))
	for i := range l.Rooms {
		r := &l.Rooms[i]
		if r.Type != domain.Ordinary {
			fmt.Printf("  room %d: %s at (%d,%d) %dx%d\n", i, r.Type, r.X, r.Y, r.W, r.H)
		}
	}
}
