package config

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
)

// Snapshot computes a stable hash of every field that reaches the engine.
// Exclusions are order-insensitive; sort precedence and access order are not.
func (c *Config) Snapshot() string {
	if c == nil {
		return ""
	}
	h := sha256.New()
	w := func(parts ...string) {
		h.Write([]byte(strings.Join(parts, "=")))
		h.Write([]byte{0})
	}
	b := strconv.FormatBool

	w("source", c.Source)
	w("dest", c.Dest)
	w("description_path", c.DescriptionPath)
	exclude := slices.Clone(c.Exclude)
	slices.Sort(exclude)
	w("exclude", strings.Join(exclude, ","))
	w("theme", c.Theme)
	w("package", c.Package)
	w("autofill", strings.Join(c.Autofill, ","))
	for _, id := range c.Groups.Keys() {
		w("groups."+id, c.Groups[id])
	}
	w("no_update_notifier", b(c.NoUpdateNotifier))
	w("verbose", b(c.Verbose))
	w("strict", b(c.Strict))
	w("display.access", strings.Join(c.Display.Access, ","))
	w("display.alias", b(c.Display.Alias))
	w("display.watermark", b(c.Display.Watermark))
	w("base_path", c.BasePath)
	w("shortcut_icon", c.ShortcutIcon)
	w("sort", strings.Join(c.Sort, ","))
	return hex.EncodeToString(h.Sum(nil))
}
