package display

import (
	"strings"
	"unicode"

	"github.com/harrison/cairn/internal/models"
)

const shellSpecial = "\\'\"`$&|;<>()[]{}*?!#~%^"

// IsQuotable reports whether name contains whitespace or a character a shell
// would interpret
func IsQuotable(name string) bool {
	return strings.ContainsFunc(name, func(r rune) bool {
		return unicode.IsSpace(r) || strings.ContainsRune(shellSpecial, r)
	})
}

// Quote wraps name according to style. A "link ⇒ target" name is quoted one
// side at a time. In auto mode alignSpace prefixes unquoted names with a
// space so they line up with quoted ones.
func Quote(name string, style models.QuoteStyle, alignSpace bool) string {
	if style == models.QuoteNever {
		return name
	}
	if link, target, ok := models.SplitSymlinkName(name); ok {
		return quoteOne(link, style, alignSpace) + models.SymlinkArrow + quoteOne(target, style, false)
	}
	return quoteOne(name, style, alignSpace)
}

func quoteOne(name string, style models.QuoteStyle, alignSpace bool) string {
	return quoteAround(name, style, alignSpace, func(text string) string { return text })
}

// quoteAround quotes name like quoteOne, passing the escaped text through
// wrap before the quotes go on
func quoteAround(name string, style models.QuoteStyle, alignSpace bool, wrap func(string) string) string {
	switch style {
	case models.QuoteSingle:
		return "'" + wrap(strings.ReplaceAll(name, "'", `\'`)) + "'"
	case models.QuoteDouble:
		return `"` + wrap(strings.ReplaceAll(name, `"`, `\"`)) + `"`
	case models.QuoteNever:
		return wrap(name)
	default:
		if IsQuotable(name) {
			return "'" + wrap(strings.ReplaceAll(name, "'", `\'`)) + "'"
		}
		if alignSpace {
			return " " + wrap(name)
		}
		return wrap(name)
	}
}
