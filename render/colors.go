package render

import (
	"fmt"

	"github.com/fatih/color"
)

type paint func(a ...any) string

// palette holds one paint function per syntax element.
type palette struct {
	section paint
	key     paint
	str     paint
	number  paint
	boolean paint
	null    paint
	punct   paint
	added   paint
	removed paint
}

func newPalette(enabled bool) *palette {
	if !enabled {
		p := fmt.Sprint
		return &palette{p, p, p, p, p, p, p, p, p}
	}
	mk := func(attrs ...color.Attribute) paint {
		c := color.New(attrs...)
		// Overrides color.NoColor.
		c.EnableColor()
		return c.SprintFunc()
	}
	return &palette{
		section: mk(color.FgMagenta, color.Bold),
		key:     mk(color.FgYellow),
		str:     mk(color.FgGreen),
		number:  mk(color.FgCyan),
		boolean: mk(color.FgBlue),
		null:    mk(color.FgHiBlack),
		punct:   mk(color.FgHiWhite),
		added:   mk(color.FgGreen),
		removed: mk(color.FgRed),
	}
}
