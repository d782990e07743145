package pattern

import (
	"strings"

	"github.com/goodsign/monday"
)

// languages maps ISO 639-1 codes to the monday locale holding their month names.
var languages = map[string]monday.Locale{
	"en": monday.LocaleEnUS,
	"de": monday.LocaleDeDE,
	"fr": monday.LocaleFrFR,
	"es": monday.LocaleEsES,
	"it": monday.LocaleItIT,
	"pt": monday.LocalePtPT,
	"nl": monday.LocaleNlNL,
	"ru": monday.LocaleRuRU,
	"pl": monday.LocalePlPL,
	"cs": monday.LocaleCsCZ,
	"da": monday.LocaleDaDK,
	"fi": monday.LocaleFiFI,
	"sv": monday.LocaleSvSE,
	"nb": monday.LocaleNbNO,
	"nn": monday.LocaleNnNO,
	"ja": monday.LocaleJaJP,
	"zh": monday.LocaleZhCN,
	"ko": monday.LocaleKoKR,
	"tr": monday.LocaleTrTR,
	"uk": monday.LocaleUkUA,
	"el": monday.LocaleElGR,
	"ro": monday.LocaleRoRO,
	"hu": monday.LocaleHuHU,
	"bg": monday.LocaleBgBG,
	"id": monday.LocaleIdID,
	"th": monday.LocaleThTH,
}

// Locale returns the monday locale for a language code, falling back to US English.
func Locale(lang string) monday.Locale {
	if loc, ok := languages[strings.ToLower(lang)]; ok {
		return loc
	}
	return monday.LocaleEnUS
}
