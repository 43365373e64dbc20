// Copyright (c) 2026 Keymaster Team
// Passgen - Unicode password generator
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"regexp"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestInitAndAvailableLocales(t *testing.T) {
	Init("en")
	if GetLang() != "en" {
		t.Fatalf("expected lang 'en', got %q", GetLang())
	}

	av := GetAvailableLocales()
	want := map[string]string{"en": "English", "de": "Deutsch"}
	for k, name := range want {
		if av[k] != name {
			t.Fatalf("expected locale %q named %q, got %q", k, name, av[k])
		}
	}
	if got := Locales(); len(got) != 2 || got[0] != "de" || got[1] != "en" {
		t.Fatalf("unexpected sorted locales %v", got)
	}
}

func TestT_BasicAndFormatting(t *testing.T) {
	Init("en")
	defer Init("en")

	if got := T("tui.help.quit"); got != "quit" {
		t.Fatalf("expected 'quit', got %q", got)
	}
	if got := T("cli.history.pruned", 7); got != "Deleted 7 entries" {
		t.Fatalf("unexpected formatted translation: %q", got)
	}

	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("expected lang 'de', got %q", GetLang())
	}
	if got := T("tui.help.quit"); got != "beenden" {
		t.Fatalf("expected German 'beenden', got %q", got)
	}
}

func TestT_Fallbacks(t *testing.T) {
	Init("fr")
	defer Init("en")

	if got := T("tui.help.quit"); got != "quit" {
		t.Fatalf("unknown language should fall back to English, got %q", got)
	}
	if got := T("no.such.message"); got != "no.such.message" {
		t.Fatalf("unknown id should return itself, got %q", got)
	}
	if got := T("tui.title", map[string]any{"Unused": 1}); got != "Passgen" {
		t.Fatalf("template data path: got %q", got)
	}
}

var verbs = regexp.MustCompile(`%[-+# 0-9.]*[a-zA-Z]`)

func loadLocale(t *testing.T, name string) map[string]string {
	t.Helper()
	data, err := localeFS.ReadFile("locales/" + name)
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	out := map[string]string{}
	if err := yaml.Unmarshal(data, &out); err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	return out
}

func TestLocalesMatchEnglish(t *testing.T) {
	en := loadLocale(t, "en.yaml")
	for _, tag := range Locales() {
		if tag == "en" {
			continue
		}
		t.Run(tag, func(t *testing.T) {
			other := loadLocale(t, tag+".yaml")
			for id, text := range en {
				tr, ok := other[id]
				if !ok {
					t.Fatalf("%s: missing %q", tag, id)
				}
				if a, b := verbs.FindAllString(text, -1), verbs.FindAllString(tr, -1); len(a) != len(b) {
					t.Fatalf("%s: %q has verbs %v, English has %v", tag, id, b, a)
				}
			}
			for id := range other {
				if _, ok := en[id]; !ok {
					t.Fatalf("%s: %q has no English original", tag, id)
				}
			}
		})
	}
}
