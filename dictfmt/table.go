package dictfmt

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/npillmayer/dict"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

const separator = " │ "

var setupGraphemes sync.Once

// Table writes all entries of a dict to w, one per line and in key order.
// Keys are padded to a common display width, values are truncated with an
// ellipsis to fit cfg.LineWidth. cfg may be nil.
func Table(w io.Writer, d *dict.Dict, cfg *Config) error {
	if w == nil {
		return fmt.Errorf("%w: no writer", dict.ErrIllegalArguments)
	}
	cfg = cfg.normalized()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	keywidth := 0
	for k := range d.Keys() {
		keywidth = max(keywidth, width(displayKey(k), cfg.Context))
	}
	valuewidth := 0
	if cfg.LineWidth > 0 {
		valuewidth = max(cfg.LineWidth-keywidth-width(separator, cfg.Context), 1)
	}
	tracer().Debugf("dict table: key width %d, value width %d", keywidth, valuewidth)
	var err error
	for k, v := range d.All() {
		key := displayKey(k)
		value := displayKey(v)
		if valuewidth > 0 {
			value = truncate(value, valuewidth, cfg.Context)
		}
		pad := strings.Repeat(" ", keywidth-width(key, cfg.Context))
		line := cfg.paint(cfg.Palette.Key, key) + pad + separator +
			cfg.paint(cfg.Palette.Value, value) + "\n"
		if _, err = io.WriteString(w, line); err != nil {
			break
		}
	}
	return err
}

// width returns the display width of s in 'en's.
func width(s string, context *uax11.Context) int {
	if s == "" {
		return 0
	}
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// truncate shortens s to at most w 'en's, cutting at grapheme boundaries.
// Shortened strings end with an ellipsis.
func truncate(s string, w int, context *uax11.Context) string {
	if width(s, context) <= w {
		return s
	}
	gstr := grapheme.StringFromString(s)
	var sb strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := width(g, context)
		if used+gw > w-1 {
			break
		}
		sb.WriteString(g)
		used += gw
	}
	sb.WriteString("…")
	return sb.String()
}
