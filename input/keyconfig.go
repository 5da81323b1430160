package input

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"plus":      '+',
	"minus":     '-',
	"lbracket":  '[',
	"rbracket":  ']',
	"backslash": '\\',
}

// keyFile is the keymap TOML layout
//
//	[keys]
//	"Ctrl-Q" = "quit"
//	[runes]
//	w = "zoom_in"
type keyFile struct {
	Keys  map[string]string `toml:"keys"`
	Runes map[string]string `toml:"runes"`
}

// specialKeys indexes tcell key names case-insensitively
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// LoadKeyConfig parses TOML keymap data into a sparse override KeyTable
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeyConfig(data []byte) (*KeyTable, error) {
	var raw keyFile
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, fmt.Errorf("keymap parse: %w", err)
	}

	kt := &KeyTable{
		Keys:  make(map[tcell.Key]Intent, len(raw.Keys)),
		Runes: make(map[rune]Intent, len(raw.Runes)),
	}

	for name, action := range raw.Keys {
		key, ok := specialKeys[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("keymap [keys]: unknown key %q", name)
		}
		intent, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("keymap [keys] %q: %w", name, err)
		}
		kt.Keys[key] = intent
	}

	for name, action := range raw.Runes {
		r, err := parseRune(name)
		if err != nil {
			return nil, fmt.Errorf("keymap [runes]: %w", err)
		}
		intent, err := resolveAction(action)
		if err != nil {
			return nil, fmt.Errorf("keymap [runes] %q: %w", name, err)
		}
		kt.Runes[r] = intent
	}
	return kt, nil
}

func resolveAction(name string) (Intent, error) {
	intent, ok := actionRegistry[name]
	if !ok {
		return IntentNone, fmt.Errorf("unknown action %q", name)
	}
	return intent, nil
}

func parseRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("rune key %q must be one character or an alias", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}
