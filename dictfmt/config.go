package dictfmt

import (
	"os"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config represents a set of configuration parameters for rendering.
type Config struct {
	LineWidth int            // maximum line width in 'en's, 0 for unlimited
	Color     bool           // colorize keys and levels
	Context   *uax11.Context // context for display widths; LatinContext if nil
	Palette   *Palette       // colors to use if Color is set
}

// Palette holds the colors for the parts of rendered output.
type Palette struct {
	Key   *color.Color
	Value *color.Color
	Level *color.Color
}

// DefaultPalette returns the palette used if Config.Palette is nil.
func DefaultPalette() *Palette {
	return &Palette{
		Key:   color.New(color.FgBlue, color.Bold),
		Value: color.New(color.FgGreen),
		Level: color.New(color.FgRed),
	}
}

func (cfg *Config) normalized() *Config {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Palette == nil {
		c.Palette = DefaultPalette()
	}
	if c.LineWidth < 0 {
		c.LineWidth = 0
	}
	return &c
}

// paint colors s with c, if coloring is enabled. Colors are forced on, as
// clients asking for them may write to something other than a terminal.
// c itself is left untouched, it may belong to a client palette.
func (cfg *Config) paint(c *color.Color, s string) string {
	if !cfg.Color || c == nil {
		return s
	}
	forced := *c
	forced.EnableColor()
	return forced.Sprint(s)
}

// ConfigFromTerminal is a simple helper for creating a rendering Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals.
func ConfigFromTerminal() *Config {
	config := &Config{
		Context: uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Color = true
		w, _, err := term.GetSize(fd)
		if err != nil || w < 20 {
			config.LineWidth = 80
		} else {
			config.LineWidth = w
		}
	}
	tracer().Infof("dict rendering: line width set to %d en", config.LineWidth)
	return config
}
