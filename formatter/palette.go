package formatter

import (
	"github.com/fatih/color"

	"github.com/philipp01105/bootlog/core"
)

// levelStyle is one row of the level lookup table.
type levelStyle struct {
	glyph   string
	glyphFg []color.Attribute
	stamp   []color.Attribute
	message []color.Attribute // nil leaves the message unstyled
}

var levelStyles = [...]levelStyle{
	core.ErrorLevel: {
		glyph:   "🚨",
		glyphFg: []color.Attribute{color.FgRed},
		stamp:   []color.Attribute{color.FgHiRed, color.Underline},
		message: []color.Attribute{color.FgRed},
	},
	core.WarnLevel: {
		glyph:   "⚠️",
		glyphFg: []color.Attribute{color.FgYellow},
		stamp:   []color.Attribute{color.FgYellow, color.Underline},
		message: []color.Attribute{color.FgYellow},
	},
	core.InfoLevel: {
		glyph:   "ℹ️",
		glyphFg: []color.Attribute{color.FgBlue},
		stamp:   []color.Attribute{color.FgHiBlack},
		message: []color.Attribute{color.FgBlue},
	},
	core.DebugLevel: {
		glyph:   "🐛",
		glyphFg: []color.Attribute{color.FgGreen},
		stamp:   []color.Attribute{color.FgGreen, color.Underline},
		message: []color.Attribute{color.FgGreen},
	},
	core.LogLevel: {
		glyph:   "💬",
		glyphFg: []color.Attribute{color.FgHiBlack},
		stamp:   []color.Attribute{color.FgHiBlack},
	},
}

var environmentStyles = map[core.Environment]color.Attribute{
	core.Development: color.FgHiBlack,
	core.Production:  color.FgRed,
	core.Test:        color.FgYellow,
}

// keepInProduction lists the levels that pass production suppression.
var keepInProduction = [...]bool{
	core.ErrorLevel: true,
	core.WarnLevel:  true,
	core.LogLevel:   true,
}

// painter renders text with a fixed set of attributes, or unchanged when nil.
type painter struct {
	c *color.Color
}

func newPainter(colored bool, attrs ...color.Attribute) painter {
	if len(attrs) == 0 {
		return painter{}
	}
	c := color.New(attrs...)
	// Override the package-wide NoColor switch so output only depends on Config
	if colored {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return painter{c: c}
}

func (p painter) paint(s string) string {
	if p.c == nil {
		return s
	}
	return p.c.Sprint(s)
}

// levelPalette is a levelStyle resolved for one formatter.
type levelPalette struct {
	glyph   string
	stamp   painter
	message painter
}

func buildPalette(colored bool) [len(levelStyles)]levelPalette {
	var p [len(levelStyles)]levelPalette
	for i, st := range levelStyles {
		p[i] = levelPalette{
			glyph:   newPainter(colored, st.glyphFg...).paint(st.glyph),
			stamp:   newPainter(colored, st.stamp...),
			message: newPainter(colored, st.message...),
		}
	}
	return p
}

// environmentTag returns the styled "[name]" tag, or "" for unrecognized environments.
func environmentTag(env core.Environment, colored bool) string {
	attr, ok := environmentStyles[env]
	if !ok {
		return ""
	}
	return newPainter(colored, attr).paint("[" + env.String() + "]")
}
