package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Language selects the phrase table used when rendering unit names.
type Language int

const (
	English Language = iota
	German
)

func (l Language) String() string {
	switch l {
	case German:
		return "de"
	default:
		return "en"
	}
}

// ParseLanguage accepts "en"/"english" and "de"/"german"/"deutsch".
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "en", "english":
		return English, nil
	case "de", "german", "deutsch":
		return German, nil
	default:
		return English, fmt.Errorf("units: unknown language %q", s)
	}
}

type phrases struct {
	times string
	per   string
	power func(name string, exp int) string
}

var phraseTables = map[Language]phrases{
	English: {
		times: " times ",
		per:   " per ",
		power: func(name string, exp int) string {
			switch exp {
			case 1:
				return name
			case 2:
				return name + " squared"
			case 3:
				return name + " cubed"
			default:
				return name + " to the power of " + strconv.Itoa(exp)
			}
		},
	},
	German: {
		times: " mal ",
		per:   " pro ",
		power: func(name string, exp int) string {
			switch exp {
			case 1:
				return name
			case 2:
				return "Quadrat" + strings.ToLower(name)
			case 3:
				return "Kubik" + strings.ToLower(name)
			default:
				return name + " hoch " + strconv.Itoa(exp)
			}
		},
	},
}

func (l Language) phrases() phrases {
	if p, ok := phraseTables[l]; ok {
		return p
	}
	return phraseTables[English]
}
