package cmd

import (
	"github.com/msto63/stringy/pkg/stringy"
)

const (
	catAccess    = "access"
	catAffix     = "affix"
	catCase      = "case"
	catSearch    = "search"
	catPredicate = "predicate"
	catSpace     = "whitespace"
	catReplace   = "replace"
	catSplit     = "split"
	catCodec     = "codec"
	catHTML      = "html"
	catCrypto    = "crypto"
	catRandom    = "random"
)

func init() {
	registerAccess()
	registerAffix()
	registerCase()
	registerSearch()
	registerPredicates()
	registerWhitespace()
	registerReplace()
	registerSplit()
	registerCodecs()
	registerCrypto()
	registerRandom()
}

func op(name, category, usage, summary string, minArgs, maxArgs int,
	run func(env *Env, s stringy.Stringy, a *Args) (any, error)) {
	register(&Operation{
		Name:     name,
		Category: category,
		Usage:    usage,
		Summary:  summary,
		MinArgs:  minArgs,
		MaxArgs:  maxArgs,
		Run:      run,
	})
}

func unary(name, category, summary string, fn func(stringy.Stringy) stringy.Stringy) {
	op(name, category, "", summary, 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return fn(s), nil
	})
}

func predicate(name, summary string, fn func(stringy.Stringy) bool) {
	op(name, catPredicate, "", summary, 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return fn(s), nil
	})
}

func registerAccess() {
	op("length", catAccess, "", "number of codepoints", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.Length(), nil
	})
	op("grapheme-count", catAccess, "", "number of user-perceived characters", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.GraphemeCount(), nil
	})
	op("at", catAccess, "<index>", "codepoint at index, negative counts from the end", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.At(a.Int(0, 0)), nil
	})
	op("first", catAccess, "<n>", "first n codepoints", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.First(a.Int(0, 0)), nil
	})
	op("last", catAccess, "<n>", "last n codepoints", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Last(a.Int(0, 0)), nil
	})
	op("substr", catAccess, "<start> [length]", "codepoint substring", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Substr(a.Int(0, 0), a.Ints(1)...), nil
	})
	op("slice", catAccess, "<start> [end]", "codepoints from start up to end", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Slice(a.Int(0, 0), a.Ints(1)...), nil
	})
	op("chars", catAccess, "", "one codepoint per line", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.Chars(), nil
	})
	op("graphemes", catAccess, "", "one grapheme cluster per line", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.Graphemes(), nil
	})
	op("chunk", catAccess, "[length]", "pieces of length codepoints", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Chunk(a.Ints(0)...)
	})
	op("nth", catAccess, "<step> [offset]", "every step-th codepoint", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Nth(a.Int(0, 1), a.Ints(1)...), nil
	})
	unary("reverse", catAccess, "codepoints in reverse order", stringy.Stringy.Reverse)
	unary("shuffle", catAccess, "codepoints in random order", stringy.Stringy.Shuffle)
	op("format", catAccess, "[args...]", "expand printf verbs and %:name parameters", 0, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		args := make([]any, 0, a.Len())
		for _, v := range a.Rest(0) {
			args = append(args, v)
		}
		return s.Format(args...), nil
	})
}

func registerAffix() {
	op("append", catAffix, "<suffix...>", "append text", 1, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Append(a.Rest(0)...), nil
	})
	op("prepend", catAffix, "<prefix...>", "prepend text", 1, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Prepend(a.Rest(0)...), nil
	})
	op("ensure-left", catAffix, "<prefix>", "add prefix when missing", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.EnsureLeft(a.String(0, "")), nil
	})
	op("ensure-right", catAffix, "<suffix>", "add suffix when missing", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.EnsureRight(a.String(0, "")), nil
	})
	op("remove-left", catAffix, "<prefix>", "remove prefix when present", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.RemoveLeft(a.String(0, "")), nil
	})
	op("remove-right", catAffix, "<suffix>", "remove suffix when present", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.RemoveRight(a.String(0, "")), nil
	})
	op("surround", catAffix, "<text>", "add text on both sides", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Surround(a.String(0, "")), nil
	})
	op("repeat", catAffix, "<count>", "repeat the text", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Repeat(a.Int(0, 1)), nil
	})
	op("insert", catAffix, "<text> <index>", "insert text at a codepoint index", 2, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Insert(a.String(0, ""), a.Int(1, 0)), nil
	})
	op("before-first", catAffix, "<separator>", "text before the first separator", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.BeforeFirst(a.String(0, "")), nil
	})
	op("before-last", catAffix, "<separator>", "text before the last separator", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.BeforeLast(a.String(0, "")), nil
	})
	op("after-first", catAffix, "<separator>", "text after the first separator", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.AfterFirst(a.String(0, "")), nil
	})
	op("after-last", catAffix, "<separator>", "text after the last separator", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.AfterLast(a.String(0, "")), nil
	})
	op("between", catAffix, "<start> <end> [offset]", "text between two delimiters", 2, 3, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Between(a.String(0, ""), a.String(1, ""), a.Ints(2)...), nil
	})
	op("substring-of", catAffix, "<needle> [before]", "text from the first needle on, or before it", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.SubstringOf(a.String(0, ""), a.Bools(1)...), nil
	})
}

func registerCase() {
	op("to-upper-case", catCase, "[language]", "uppercase with language rules", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToUpperCase(stringy.CaseOptions{Language: a.String(0, "")}), nil
	})
	op("to-lower-case", catCase, "[language]", "lowercase with language rules", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToLowerCase(stringy.CaseOptions{Language: a.String(0, "")}), nil
	})
	op("to-title-case", catCase, "[language]", "titlecase every word", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToTitleCase(stringy.CaseOptions{Language: a.String(0, "")}), nil
	})
	op("upper-case-first", catCase, "", "uppercase the first codepoint", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.UpperCaseFirst(), nil
	})
	op("lower-case-first", catCase, "", "lowercase the first codepoint", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.LowerCaseFirst(), nil
	})
	op("titleize", catCase, "[ignore...]", "capitalize words except the ignored ones", 0, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Titleize(stringy.TitleizeOptions{Ignore: a.Rest(0)}), nil
	})
	op("titleize-for-humans", catCase, "[ignore...]", "title case keeping small words lowercase", 0, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.TitleizeForHumans(a.Rest(0)...), nil
	})
	op("delimit", catCase, "<delimiter>", "lowercase words joined by delimiter", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Delimit(a.String(0, "")), nil
	})
	unary("swap-case", catCase, "invert the case of every codepoint", stringy.Stringy.SwapCase)
	unary("capitalize-personal-name", catCase, "capitalize names with particles", stringy.Stringy.CapitalizePersonalName)
	unary("camelize", catCase, "camelCase", stringy.Stringy.Camelize)
	unary("upper-camelize", catCase, "UpperCamelCase", stringy.Stringy.UpperCamelize)
	unary("studly-case", catCase, "StudlyCase", stringy.Stringy.StudlyCase)
	unary("pascal-case", catCase, "PascalCase", stringy.Stringy.PascalCase)
	unary("snake-case", catCase, "snake_case of the words", stringy.Stringy.SnakeCase)
	unary("snakeize", catCase, "snake_case splitting camel humps and digits", stringy.Stringy.Snakeize)
	unary("kebab-case", catCase, "kebab-case", stringy.Stringy.KebabCase)
	unary("dasherize", catCase, "lowercase words joined by dashes", stringy.Stringy.Dasherize)
	unary("underscored", catCase, "lowercase words joined by underscores", stringy.Stringy.Underscored)
	unary("humanize", catCase, "human readable label from an identifier", stringy.Stringy.Humanize)
}

func registerSearch() {
	op("index-of", catSearch, "<needle> [offset]", "codepoint index of needle or -1", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IndexOf(a.String(0, ""), a.Ints(1)...), nil
	})
	op("index-of-ignore-case", catSearch, "<needle> [offset]", "case-insensitive index-of", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IndexOfIgnoreCase(a.String(0, ""), a.Ints(1)...), nil
	})
	op("index-of-last", catSearch, "<needle> [offset]", "codepoint index of the last needle or -1", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IndexOfLast(a.String(0, ""), a.Ints(1)...), nil
	})
	op("contains", catSearch, "<needle> [case-sensitive]", "whether needle occurs", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Contains(a.String(0, ""), a.Bools(1)...), nil
	})
	op("contains-all", catSearch, "<a|b|...>", "whether every needle occurs", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ContainsAll(a.List(0)), nil
	})
	op("contains-any", catSearch, "<a|b|...>", "whether any needle occurs", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ContainsAny(a.List(0)), nil
	})
	op("starts-with", catSearch, "<prefix> [case-sensitive]", "whether the text starts with prefix", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.StartsWith(a.String(0, ""), a.Bools(1)...), nil
	})
	op("ends-with", catSearch, "<suffix> [case-sensitive]", "whether the text ends with suffix", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.EndsWith(a.String(0, ""), a.Bools(1)...), nil
	})
	op("is", catSearch, "<pattern>", "whether the text matches a * wildcard pattern", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Is(a.String(0, "")), nil
	})
	op("count-substr", catSearch, "<substring> [case-sensitive]", "non-overlapping occurrences", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.CountSubstr(a.String(0, ""), a.Bools(1)...), nil
	})
	op("is-equals", catSearch, "<value...>", "whether every value equals the text", 1, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IsEquals(anyValues(a.Rest(0))...)
	})
	op("is-equals-case-insensitive", catSearch, "<value...>", "case-insensitive is-equals", 1, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IsEqualsCaseInsensitive(anyValues(a.Rest(0))...)
	})
	op("similarity", catSearch, "<other>", "similarity percentage", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Similarity(a.String(0, "")), nil
	})
	op("is-similar", catSearch, "<other> [percent]", "whether similarity reaches percent, default 80", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IsSimilar(a.String(0, ""), a.Floats(1)...), nil
	})
	op("longest-common-prefix", catSearch, "<other>", "shared prefix", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.LongestCommonPrefix(a.String(0, "")), nil
	})
	op("longest-common-suffix", catSearch, "<other>", "shared suffix", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.LongestCommonSuffix(a.String(0, "")), nil
	})
	op("longest-common-substring", catSearch, "<other>", "longest shared substring", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.LongestCommonSubstring(a.String(0, "")), nil
	})
}

func anyValues(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func registerPredicates() {
	predicate("is-empty", "no codepoints", stringy.Stringy.IsEmpty)
	predicate("is-blank", "only whitespace", stringy.Stringy.IsBlank)
	predicate("is-alpha", "only letters", stringy.Stringy.IsAlpha)
	predicate("is-alphanumeric", "only letters and digits", stringy.Stringy.IsAlphanumeric)
	predicate("is-hexadecimal", "only hex digits", stringy.Stringy.IsHexadecimal)
	predicate("is-numeric", "a decimal number", stringy.Stringy.IsNumeric)
	predicate("is-lower-case", "only lowercase letters", stringy.Stringy.IsLowerCase)
	predicate("is-upper-case", "only uppercase letters", stringy.Stringy.IsUpperCase)
	predicate("has-lower-case", "at least one lowercase letter", stringy.Stringy.HasLowerCase)
	predicate("has-upper-case", "at least one uppercase letter", stringy.Stringy.HasUpperCase)
	predicate("is-punctuation", "only punctuation", stringy.Stringy.IsPunctuation)
	predicate("is-printable", "only printable codepoints", stringy.Stringy.IsPrintable)
	predicate("is-html", "contains HTML tags", stringy.Stringy.IsHTML)
	predicate("is-serialized", "PHP serialized data", stringy.Stringy.IsSerialized)
	predicate("to-boolean", "truthiness of the text", stringy.Stringy.ToBoolean)
	op("is-base64", catPredicate, "[empty-valid]", "valid base64", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IsBase64(a.Bools(0)...), nil
	})
	op("is-json", catPredicate, "[only-structured]", "valid JSON", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IsJSON(a.Bools(0)...), nil
	})
	op("is-email", catPredicate, "[dns]", "valid email address, optionally with a DNS lookup", 0, 1, func(env *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.IsEmailContext(env.context(), stringy.EmailOptions{
			ExampleDomainCheck:   true,
			TypoInDomainCheck:    true,
			TemporaryDomainCheck: true,
			DNSCheck:             a.Bool(0, false),
		}), nil
	})
}

func registerWhitespace() {
	op("trim", catSpace, "[chars]", "trim both ends", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Trim(a.Strings(0)...), nil
	})
	op("trim-left", catSpace, "[chars]", "trim the start", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.TrimLeft(a.Strings(0)...), nil
	})
	op("trim-right", catSpace, "[chars]", "trim the end", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.TrimRight(a.Strings(0)...), nil
	})
	unary("collapse-whitespace", catSpace, "trim and collapse inner whitespace", stringy.Stringy.CollapseWhitespace)
	unary("strip-whitespace", catSpace, "remove all whitespace", stringy.Stringy.StripWhitespace)
	op("to-spaces", catSpace, "[tab-length]", "tabs to spaces", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToSpaces(a.Ints(0)...), nil
	})
	op("to-tabs", catSpace, "[tab-length]", "spaces to tabs", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToTabs(a.Ints(0)...), nil
	})
	op("pad", catSpace, "<length> <pad> [left|right|both]", "pad to length", 2, 3, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Pad(a.Int(0, 0), a.String(1, " "), a.Strings(2)...)
	})
	op("pad-left", catSpace, "<length> [pad]", "pad on the left", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.PadLeft(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("pad-right", catSpace, "<length> [pad]", "pad on the right", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.PadRight(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("pad-both", catSpace, "<length> [pad]", "center within length", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.PadBoth(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("line-wrap", catSpace, "<limit>", "break lines after limit codepoints", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.LineWrap(a.Int(0, 0)), nil
	})
	op("line-wrap-after-word", catSpace, "<limit>", "break lines at word boundaries", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.LineWrapAfterWord(a.Int(0, 0)), nil
	})
	op("soft-wrap", catSpace, "<width> [break]", "wrap without cutting words", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.SoftWrap(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("hard-wrap", catSpace, "<width> [break]", "wrap cutting long words", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.HardWrap(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("truncate", catSpace, "<length> [suffix]", "cut to length including suffix", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Truncate(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("safe-truncate", catSpace, "<length> [suffix]", "cut to length without splitting words", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.SafeTruncate(a.Int(0, 0), a.String(1, "")), nil
	})
	op("shorten-after-word", catSpace, "<length> [add-on]", "cut at the last word boundary", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ShortenAfterWord(a.Int(0, 0), a.Strings(1)...), nil
	})
	op("extract-text", catSpace, "<search> [length]", "excerpt around search", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ExtractText(a.String(0, ""), a.Int(1, 200)), nil
	})
}

func registerReplace() {
	op("replace", catReplace, "<search> <replacement> [case-sensitive]", "replace every occurrence", 2, 3, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Replace(a.String(0, ""), a.String(1, ""), a.Bools(2)...), nil
	})
	op("replace-all", catReplace, "<a|b|...> <replacement>", "replace each listed search", 2, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ReplaceAll(a.List(0), a.String(1, "")), nil
	})
	op("replace-first", catReplace, "<search> <replacement>", "replace the first occurrence", 2, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ReplaceFirst(a.String(0, ""), a.String(1, "")), nil
	})
	op("replace-last", catReplace, "<search> <replacement>", "replace the last occurrence", 2, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ReplaceLast(a.String(0, ""), a.String(1, "")), nil
	})
	op("replace-beginning", catReplace, "<search> <replacement>", "replace a leading search", 2, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ReplaceBeginning(a.String(0, ""), a.String(1, "")), nil
	})
	op("replace-ending", catReplace, "<search> <replacement>", "replace a trailing search", 2, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ReplaceEnding(a.String(0, ""), a.String(1, "")), nil
	})
	op("regex-replace", catReplace, "<pattern> <replacement> [modifiers]", "replace regular expression matches", 2, 3, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.RegexReplace(a.String(0, ""), a.String(1, ""), a.String(2, ""))
	})
	op("strip", catReplace, "<search...>", "remove every search", 1, -1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Strip(a.Rest(0)...), nil
	})
}

func registerSplit() {
	op("split", catSplit, "<pattern> [limit]", "split on a regular expression", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Split(a.String(0, ""), a.Ints(1)...)
	})
	op("explode", catSplit, "<delimiter> [limit]", "split on a literal delimiter", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Explode(a.String(0, ""), a.Ints(1)...), nil
	})
	op("lines", catSplit, "", "split into lines", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.Lines(), nil
	})
	op("words", catSplit, "[min-length]", "the words of the text", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Words("", true, a.Ints(0)...), nil
	})
}

func registerCodecs() {
	unary("base64-encode", catCodec, "base64 encode", stringy.Stringy.Base64Encode)
	unary("base64-decode", catCodec, "base64 decode", stringy.Stringy.Base64Decode)
	unary("hex-encode", catCodec, "\\x escape every codepoint", stringy.Stringy.HexEncode)
	unary("hex-decode", catCodec, "decode \\x escapes", stringy.Stringy.HexDecode)
	unary("url-encode", catCodec, "form URL encoding", stringy.Stringy.URLEncode)
	unary("url-decode", catCodec, "form URL decoding", stringy.Stringy.URLDecode)
	unary("url-encode-raw", catCodec, "RFC 3986 encoding", stringy.Stringy.URLEncodeRaw)
	unary("url-decode-raw", catCodec, "RFC 3986 decoding", stringy.Stringy.URLDecodeRaw)
	unary("utf8ify", catCodec, "repair broken UTF-8", stringy.Stringy.Utf8ify)
	unary("tidy", catCodec, "replace smart quotes and dashes", stringy.Stringy.Tidy)
	unary("escape", catCodec, "HTML escape", stringy.Stringy.Escape)
	op("slugify", catCodec, "[separator]", "URL slug using the configured defaults", 0, 1, func(env *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Slugify(stringy.SlugOptions{
			Separator:    a.String(0, env.Settings.Separator),
			Language:     env.Settings.Language,
			Replacements: env.Settings.Replacements,
			KeepCase:     !env.Settings.Lowercase,
		}), nil
	})
	op("urlify", catCodec, "[separator]", "URL segment using the configured language", 0, 1, func(env *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.URLify(stringy.URLifyOptions{
			Separator:    a.String(0, env.Settings.Separator),
			Language:     env.Settings.Language,
			Replacements: env.Settings.Replacements,
			KeepCase:     !env.Settings.Lowercase,
		}), nil
	})
	op("to-ascii", catCodec, "[language]", "fold to ASCII", 0, 1, func(env *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToASCII(stringy.ASCIIOptions{Language: a.String(0, env.Settings.Language)}), nil
	})
	op("to-transliterate", catCodec, "[unknown]", "transliterate to ASCII", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.ToTransliterate(stringy.TransliterateOptions{Unknown: a.String(0, "")}), nil
	})
	op("encode", catCodec, "<encoding>", "transcode the text", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Encode(a.String(0, ""))
	})
	unary("html-encode", catHTML, "encode HTML entities", func(s stringy.Stringy) stringy.Stringy { return s.HTMLEncode() })
	unary("html-decode", catHTML, "decode HTML entities", func(s stringy.Stringy) stringy.Stringy { return s.HTMLDecode() })
	unary("remove-xss", catHTML, "sanitize untrusted HTML", stringy.Stringy.RemoveXSS)
	unary("new-line-to-html-break", catHTML, "newlines to <br>", stringy.Stringy.NewLineToHTMLBreak)
	unary("stripe-css-media-queries", catHTML, "drop @media blocks", stringy.Stringy.StripeCSSMediaQueries)
	unary("stripe-empty-html-tags", catHTML, "drop empty tag pairs", stringy.Stringy.StripeEmptyHTMLTags)
	op("remove-html", catHTML, "[allowed-tags]", "strip tags", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.RemoveHTML(a.Strings(0)...), nil
	})
	op("remove-html-break", catHTML, "[replacement]", "replace <br> tags", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.RemoveHTMLBreak(a.Strings(0)...), nil
	})
}

func registerCrypto() {
	unary("md5", catCrypto, "MD5 digest", stringy.Stringy.MD5)
	unary("sha1", catCrypto, "SHA-1 digest", stringy.Stringy.SHA1)
	unary("sha256", catCrypto, "SHA-256 digest", stringy.Stringy.SHA256)
	unary("sha512", catCrypto, "SHA-512 digest", stringy.Stringy.SHA512)
	op("crc32", catCrypto, "", "CRC-32 checksum", 0, 0, func(_ *Env, s stringy.Stringy, _ *Args) (any, error) {
		return s.CRC32(), nil
	})
	op("hash", catCrypto, "<algorithm>", "digest by algorithm name", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Hash(a.String(0, ""))
	})
	op("crypt", catCrypto, "<salt>", "crypt(3) style hash", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Crypt(a.String(0, ""))
	})
	op("bcrypt", catCrypto, "[cost]", "bcrypt password hash", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Bcrypt(a.Ints(0)...)
	})
	op("encrypt", catCrypto, "<password>", "authenticated encryption, hex output", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Encrypt(a.String(0, ""))
	})
	op("decrypt", catCrypto, "<password>", "reverse encrypt", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.Decrypt(a.String(0, ""))
	})
}

func registerRandom() {
	op("append-random-string", catRandom, "<length> [alphabet]", "append random codepoints", 1, 2, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.AppendRandomString(a.Int(0, 0), a.Strings(1)...)
	})
	op("append-password", catRandom, "<length>", "append a random password", 1, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.AppendPassword(a.Int(0, 0))
	})
	op("append-unique-identifier", catRandom, "[extra]", "append an MD5 hashed unique id", 0, 1, func(_ *Env, s stringy.Stringy, a *Args) (any, error) {
		return s.AppendUniqueIdentifier(a.String(0, "")), nil
	})
}
