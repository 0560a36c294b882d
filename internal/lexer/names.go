package lexer

import (
	"strings"
	"sync"

	"golang.org/x/text/unicode/runenames"
)

var (
	runeNamesOnce sync.Once
	runeNames     map[string]rune
)

// runeNameRanges covers the planes that carry named characters.
var runeNameRanges = [][2]rune{
	{0x0000, 0x3FFFF},
	{0xE0000, 0xE0FFF},
}

// lookupRuneName resolves a Unicode character name such as "GREEK SMALL
// LETTER ALPHA". Matching ignores case and surrounding spaces.
func lookupRuneName(name string) (rune, bool) {
	runeNamesOnce.Do(buildRuneNames)
	r, ok := runeNames[strings.ToUpper(strings.TrimSpace(name))]
	return r, ok
}

func buildRuneNames() {
	runeNames = make(map[string]rune, 1<<16)
	for _, bounds := range runeNameRanges {
		for r := bounds[0]; r <= bounds[1]; r++ {
			if r >= 0xD800 && r <= 0xDFFF {
				continue
			}
			// Control and unassigned code points report placeholder names
			// like "<control>".
			if name := runenames.Name(r); name != "" && name[0] != '<' {
				if _, dup := runeNames[name]; !dup {
					runeNames[name] = r
				}
			}
		}
	}
}
