package morse

import (
	"fmt"
	"strings"
)

// WordSeparator - код, которым кодируется пробел между словами
const WordSeparator = "/"

var forward = map[rune]string{
	'A': ".-", 'B': "-...", 'C': "-.-.", 'D': "-..", 'E': ".", 'F': "..-.",
	'G': "--.", 'H': "....", 'I': "..", 'J': ".---", 'K': "-.-", 'L': ".-..",
	'M': "--", 'N': "-.", 'O': "---", 'P': ".--.", 'Q': "--.-", 'R': ".-.",
	'S': "...", 'T': "-", 'U': "..-", 'V': "...-", 'W': ".--", 'X': "-..-",
	'Y': "-.--", 'Z': "--..", '1': ".----", '2': "..---", '3': "...--",
	'4': "....-", '5': ".....", '6': "-....", '7': "--...", '8': "---..",
	'9': "----.", '0': "-----", ' ': WordSeparator,
}

var reverse = buildReverse(forward)

// buildReverse строит обратную таблицу и проверяет биекцию
func buildReverse(table map[rune]string) map[string]rune {
	rev := make(map[string]rune, len(table))
	for symbol, code := range table {
		if prev, exists := rev[code]; exists {
			panic(fmt.Sprintf("morse: code %q assigned to both %q and %q", code, prev, symbol))
		}
		rev[code] = symbol
	}
	return rev
}

// Encode переводит текст в код Морзе.
// Символы вне алфавита отбрасываются, коды разделяются одним пробелом.
func Encode(text string) string {
	codes := make([]string, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		if code, ok := forward[r]; ok {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, " ")
}

// Decode переводит последовательность кодов, разделённых пробелами, обратно в текст.
// Неизвестные коды отбрасываются.
func Decode(code string) string {
	var sb strings.Builder
	for _, token := range strings.Split(code, " ") {
		if r, ok := reverse[token]; ok {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// Alphabet возвращает копию таблицы кодов
func Alphabet() map[rune]string {
	out := make(map[rune]string, len(forward))
	for r, c := range forward {
		out[r] = c
	}
	return out
}
