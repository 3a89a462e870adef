// File: tables.go
// Title: Transliteration Tables
// Description: Generic replacements for characters that canonical
//              decomposition cannot fold (ligatures, stroked letters, Cyrillic,
//              Greek) plus per-language overrides and slug symbol names.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package asciix

var genericChars = map[string]string{
	// Latin letters without a canonical decomposition
	"ß": "ss", "ẞ": "SS", "Æ": "AE", "æ": "ae", "Ø": "O", "ø": "o",
	"Œ": "OE", "œ": "oe", "Đ": "D", "đ": "d", "Ð": "D", "ð": "d",
	"Ł": "L", "ł": "l", "Þ": "TH", "þ": "th", "Ħ": "H", "ħ": "h",
	"ı": "i", "Ŋ": "N", "ŋ": "n", "ĸ": "k", "Ŀ": "L", "ŀ": "l",
	"ſ": "s", "ƒ": "f", "Ə": "E", "ə": "e", "Ŧ": "T", "ŧ": "t",
	"Ɨ": "I", "ɨ": "i", "Ʉ": "U", "ʉ": "u", "Ɖ": "D", "ɖ": "d",

	// Cyrillic
	"А": "A", "Б": "B", "В": "V", "Г": "G", "Д": "D", "Е": "E", "Ё": "Yo",
	"Ж": "Zh", "З": "Z", "И": "I", "Й": "Y", "К": "K", "Л": "L", "М": "M",
	"Н": "N", "О": "O", "П": "P", "Р": "R", "С": "S", "Т": "T", "У": "U",
	"Ф": "F", "Х": "Kh", "Ц": "Ts", "Ч": "Ch", "Ш": "Sh", "Щ": "Shch",
	"Ъ": "", "Ы": "Y", "Ь": "", "Э": "E", "Ю": "Yu", "Я": "Ya",
	"а": "a", "б": "b", "в": "v", "г": "g", "д": "d", "е": "e", "ё": "yo",
	"ж": "zh", "з": "z", "и": "i", "й": "y", "к": "k", "л": "l", "м": "m",
	"н": "n", "о": "o", "п": "p", "р": "r", "с": "s", "т": "t", "у": "u",
	"ф": "f", "х": "kh", "ц": "ts", "ч": "ch", "ш": "sh", "щ": "shch",
	"ъ": "", "ы": "y", "ь": "", "э": "e", "ю": "yu", "я": "ya",
	"Є": "Ye", "є": "ye", "І": "I", "і": "i", "Ї": "Yi", "ї": "yi",
	"Ґ": "G", "ґ": "g", "Ђ": "Dj", "ђ": "dj", "Ј": "J", "ј": "j",
	"Љ": "Lj", "љ": "lj", "Њ": "Nj", "њ": "nj", "Ћ": "C", "ћ": "c",
	"Џ": "Dz", "џ": "dz", "Ѓ": "Gj", "ѓ": "gj", "Ќ": "Kj", "ќ": "kj",
	"Ѕ": "Dz", "ѕ": "dz", "Ў": "U", "ў": "u",

	// Greek
	"Α": "A", "Β": "V", "Γ": "G", "Δ": "D", "Ε": "E", "Ζ": "Z", "Η": "I",
	"Θ": "Th", "Ι": "I", "Κ": "K", "Λ": "L", "Μ": "M", "Ν": "N", "Ξ": "X",
	"Ο": "O", "Π": "P", "Ρ": "R", "Σ": "S", "Τ": "T", "Υ": "Y", "Φ": "F",
	"Χ": "Ch", "Ψ": "Ps", "Ω": "O",
	"α": "a", "β": "v", "γ": "g", "δ": "d", "ε": "e", "ζ": "z", "η": "i",
	"θ": "th", "ι": "i", "κ": "k", "λ": "l", "μ": "m", "ν": "n", "ξ": "x",
	"ο": "o", "π": "p", "ρ": "r", "σ": "s", "ς": "s", "τ": "t", "υ": "y",
	"φ": "f", "χ": "ch", "ψ": "ps", "ω": "o",

	// Punctuation and symbols
	"\u00a0": " ", "\u2007": " ", "\u202f": " ", "\u2009": " ",
	"“": `"`, "”": `"`, "„": `"`, "‟": `"`, "«": `"`, "»": `"`,
	"‘": "'", "’": "'", "‚": "'", "‛": "'", "‹": "'", "›": "'",
	"–": "-", "—": "-", "‐": "-", "‑": "-", "−": "-",
	"…": "...", "•": "*", "×": "x", "÷": "/",
	"©": "(c)", "®": "(r)", "™": "TM", "€": "EUR", "£": "GBP", "¥": "JPY",
	"¼": "1/4", "½": "1/2", "¾": "3/4", "¹": "1", "²": "2", "³": "3",
}

var languageChars = map[string]map[string]string{
	"de": {
		"Ä": "Ae", "Ö": "Oe", "Ü": "Ue", "ä": "ae", "ö": "oe", "ü": "ue",
	},
	"de_at": {
		"Ä": "Ae", "Ö": "Oe", "Ü": "Ue", "ä": "ae", "ö": "oe", "ü": "ue",
	},
	"de_ch": {
		"Ä": "Ae", "Ö": "Oe", "Ü": "Ue", "ä": "ae", "ö": "oe", "ü": "ue",
	},
	"da": {
		"Æ": "Ae", "æ": "ae", "Ø": "Oe", "ø": "oe", "Å": "Aa", "å": "aa",
		"É": "E", "é": "e",
	},
	"nb": {
		"Æ": "AE", "æ": "ae", "Ø": "OE", "ø": "oe", "Å": "AA", "å": "aa",
	},
	"sv": {
		"Ä": "A", "ä": "a", "Ö": "O", "ö": "o", "Å": "A", "å": "a",
	},
	"fi": {
		"Ä": "A", "ä": "a", "Ö": "O", "ö": "o",
	},
	"fr": {
		"Œ": "OE", "œ": "oe", "Æ": "AE", "æ": "ae", "Ÿ": "Y", "ÿ": "y",
	},
	"tr": {
		"Ş": "S", "ş": "s", "İ": "I", "ı": "i", "Ç": "C", "ç": "c",
		"Ğ": "G", "ğ": "g", "Ü": "U", "ü": "u", "Ö": "O", "ö": "o",
	},
	"az": {
		"Ə": "E", "ə": "e", "Ş": "S", "ş": "s", "İ": "I", "ı": "i",
		"Ç": "C", "ç": "c", "Ğ": "G", "ğ": "g",
	},
	"ru": {
		"Ъ": "", "ъ": "", "Ь": "", "ь": "", "Ё": "Yo", "ё": "yo",
	},
	"uk": {
		"И": "Y", "и": "y", "Г": "H", "г": "h", "Й": "Y", "й": "i",
		"Ь": "", "ь": "", "Щ": "Shch", "щ": "shch",
	},
	"bg": {
		"Щ": "Sht", "щ": "sht", "Ъ": "A", "ъ": "a", "Ь": "Y", "ь": "y",
		"Ю": "Yu", "ю": "yu", "Я": "Ya", "я": "ya", "Ж": "Zh", "ж": "zh",
	},
	"sr": {
		"Ђ": "Dj", "ђ": "dj", "Ћ": "C", "ћ": "c", "Ц": "C", "ц": "c",
		"Ч": "C", "ч": "c", "Ш": "S", "ш": "s", "Ж": "Z", "ж": "z",
	},
	"el": {
		"Η": "I", "η": "i", "Υ": "Y", "υ": "y", "Β": "V", "β": "v",
		"ΟΥ": "OU", "ου": "ou", "Ου": "Ou",
	},
	"pl": {
		"Ł": "L", "ł": "l",
	},
	"hu": {
		"Ő": "O", "ő": "o", "Ű": "U", "ű": "u",
	},
	"ro": {
		"Ș": "S", "ș": "s", "Ş": "S", "ş": "s", "Ț": "T", "ț": "t",
		"Ţ": "T", "ţ": "t",
	},
	"lv": {
		"Ā": "A", "ā": "a", "Ē": "E", "ē": "e", "Ī": "I", "ī": "i",
		"Ū": "U", "ū": "u", "Ķ": "K", "ķ": "k", "Ļ": "L", "ļ": "l",
		"Ņ": "N", "ņ": "n",
	},
	"lt": {
		"Ą": "A", "ą": "a", "Ę": "E", "ę": "e", "Ė": "E", "ė": "e",
		"Į": "I", "į": "i", "Ų": "U", "ų": "u", "Ū": "U", "ū": "u",
	},
	"cs": {
		"Ů": "U", "ů": "u",
	},
	"ka": {
		"ა": "a", "ბ": "b", "გ": "g", "დ": "d", "ე": "e", "ვ": "v",
		"ზ": "z", "თ": "t", "ი": "i", "კ": "k", "ლ": "l", "მ": "m",
		"ნ": "n", "ო": "o", "პ": "p", "ჟ": "zh", "რ": "r", "ს": "s",
		"ტ": "t", "უ": "u", "ფ": "f", "ქ": "k", "ღ": "gh", "ყ": "q",
		"შ": "sh", "ჩ": "ch", "ც": "ts", "ძ": "dz", "წ": "ts", "ჭ": "ch",
		"ხ": "kh", "ჯ": "j", "ჰ": "h",
	},
}

// languageAliases maps codes that share a table
var languageAliases = map[string]string{
	"no":    "nb",
	"nn":    "nb",
	"de_de": "de",
	"sk":    "cs",
	"mk":    "sr",
}

var slugSymbols = map[string]map[string]string{
	"en": {"&": "and", "@": "at", "%": "percent", "+": "plus", "=": "equals"},
	"de": {"&": "und", "@": "at", "%": "prozent", "+": "plus", "=": "gleich"},
	"fr": {"&": "et", "@": "arobase", "%": "pour cent", "+": "plus", "=": "egal"},
	"es": {"&": "y", "@": "arroba", "%": "por ciento", "+": "mas", "=": "igual"},
	"it": {"&": "e", "@": "chiocciola", "%": "per cento", "+": "piu", "=": "uguale"},
	"nl": {"&": "en", "@": "at", "%": "procent", "+": "plus", "=": "gelijk"},
	"pt": {"&": "e", "@": "arroba", "%": "por cento", "+": "mais", "=": "igual"},
	"pl": {"&": "i", "@": "at", "%": "procent", "+": "plus", "=": "rowna sie"},
	"tr": {"&": "ve", "@": "at", "%": "yuzde", "+": "arti", "=": "esittir"},
	"ru": {"&": "i", "@": "sobaka", "%": "protsent", "+": "plyus", "=": "ravno"},
	"sv": {"&": "och", "@": "snabel a", "%": "procent", "+": "plus", "=": "lika med"},
	"da": {"&": "og", "@": "snabel a", "%": "procent", "+": "plus", "=": "lig med"},
}
