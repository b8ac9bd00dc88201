package content

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sync"

	"go-pestcontrol-web/pkg/locale"
)

//go:embed locales/*.json
var embeddedLocales embed.FS

var (
	uiStrings map[string]map[string]string
	loadOnce  sync.Once
)

func load() {
	loadOnce.Do(func() {
		uiStrings = make(map[string]map[string]string)
		entries, err := fs.ReadDir(embeddedLocales, "locales")
		if err != nil {
			fmt.Printf("i18n: failed to read embedded locales: %v\n", err)
			return
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			name := e.Name()
			if len(name) < 6 || name[len(name)-5:] != ".json" {
				continue
			}
			b, err := embeddedLocales.ReadFile("locales/" + name)
			if err != nil {
				fmt.Printf("i18n: failed to read embedded %s: %v\n", name, err)
				continue
			}
			var m map[string]string
			if err := json.Unmarshal(b, &m); err != nil {
				fmt.Printf("i18n: failed to parse embedded %s: %v\n", name, err)
				continue
			}
			uiStrings[name[:len(name)-5]] = m
		}
	})
}

// T returns the UI chrome string for key in the given locale, falling
// back to English, then to the key itself so a missing entry renders
// something visible instead of nothing.
func T(l locale.Locale, key string) string {
	load()
	if m, ok := uiStrings[string(l)]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	if m, ok := uiStrings[string(locale.English)]; ok {
		if v, ok := m[key]; ok {
			return v
		}
	}
	return key
}
