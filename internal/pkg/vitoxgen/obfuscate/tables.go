package obfuscate

// teencode maps a lower-case grapheme to its phonetic and typo spellings.
// Candidates repeat to weight the unchanged spelling.
var teencode = map[string][]string{
	"a":  {"4", "a", "a", "@"},
	"e":  {"3", "e", "e"},
	"i":  {"1", "j", "i", "i"},
	"o":  {"0", "o", "o", "()"},
	"u":  {"u", "u", "µ"},
	"b":  {"b", "b", "bz"},
	"c":  {"c", "k", "c"},
	"d":  {"j", "z", "d"},
	"đ":  {"d", "đ", "+)", "d"},
	"g":  {"g", "g", "q"},
	"h":  {"h", "h", "k"},
	"k":  {"k", "k", "c"},
	"l":  {"l", "l", "1"},
	"n":  {"n", "n", "l"},
	"r":  {"r", "z", "r"},
	"s":  {"s", "x", "s"},
	"t":  {"t", "t", "+"},
	"v":  {"v", "v", "z"},
	"x":  {"x", "s", "x"},
	"y":  {"y", "i", "j"},
	"ph": {"f", "ph"},
	"qu": {"w", "qu", "q"},
	"ch": {"ck", "ch"},
	"kh": {"k", "kh", "x"},
	"ng": {"g", "ng", "q"},
	"nh": {"nk", "nh"},
	"th": {"tk", "th"},
	"tr": {"ch", "tr"},
	"gi": {"j", "z", "gi"},
}

// homoglyphs maps Latin letters to Cyrillic look-alikes. Lookup is case-sensitive.
var homoglyphs = map[rune]rune{
	'a': '\u0430', 'c': '\u0441', 'e': '\u0435', 'i': '\u0456', 'o': '\u043e', 'p': '\u0440', 'x': '\u0445', 'y': '\u0443',
	'A': '\u0410', 'B': '\u0412', 'C': '\u0421', 'E': '\u0415', 'H': '\u041d', 'I': '\u0406', 'K': '\u041a', 'M': '\u041c',
	'O': '\u041e', 'P': '\u0420', 'T': '\u0422', 'X': '\u0425',
}

var separators = []string{".", ",", "-", "_", " ", "*", "+", "/", "\\", "|", ""}

const vowelInventory = "aeiouyáàảãạăắằẳẵặâấầẩẫậéèẻẽẹêếềểễệíìỉĩịóòỏõọôốồổỗộơớờởỡợúùủũụưứừửữựýỳỷỹỵ"

var vowels = func() map[rune]struct{} {
	m := make(map[rune]struct{}, len(vowelInventory))
	for _, r := range vowelInventory {
		m[r] = struct{}{}
	}
	return m
}()

// digraphKeys are the two-rune teencode keys, kept in a set for the lookahead scan.
var digraphKeys = func() map[string]struct{} {
	m := make(map[string]struct{})
	for k := range teencode {
		if len([]rune(k)) == 2 {
			m[k] = struct{}{}
		}
	}
	return m
}()

func Separators() []string {
	return append([]string(nil), separators...)
}

func IsVowel(r rune) bool {
	_, ok := vowels[r]
	return ok
}

// TeencodeCandidates returns a copy of the spellings registered for key, or nil.
func TeencodeCandidates(key string) []string {
	cands, ok := teencode[key]
	if !ok {
		return nil
	}
	return append([]string(nil), cands...)
}

func Homoglyph(r rune) (rune, bool) {
	g, ok := homoglyphs[r]
	return g, ok
}
