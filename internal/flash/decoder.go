package flash

import (
	"strings"

	"github.com/shenikar/tacticax/internal/morse"
)

const (
	DefaultThreshold  uint8 = 128
	DefaultUnitFrames       = 2
)

// Decoder превращает яркость кадров камеры в токены кода Морзе.
// Длительности считаются в единицах UnitFrames (длина точки в кадрах).
type Decoder struct {
	Threshold  uint8
	UnitFrames int
}

// NewDecoder создает декодер, подставляя значения по умолчанию для нулевых параметров
func NewDecoder(threshold uint8, unitFrames int) *Decoder {
	if threshold == 0 {
		threshold = DefaultThreshold
	}
	if unitFrames <= 0 {
		unitFrames = DefaultUnitFrames
	}
	return &Decoder{Threshold: threshold, UnitFrames: unitFrames}
}

type run struct {
	lit    bool
	frames int
}

func (d *Decoder) runs(samples []uint8) []run {
	var out []run
	for _, s := range samples {
		lit := s >= d.Threshold
		if n := len(out); n > 0 && out[n-1].lit == lit {
			out[n-1].frames++
			continue
		}
		out = append(out, run{lit: lit, frames: 1})
	}
	return out
}

// Tokens возвращает последовательность кодов через пробел, слова разделены "/"
func (d *Decoder) Tokens(samples []uint8) string {
	unit := d.UnitFrames
	if unit <= 0 {
		unit = 1
	}

	var (
		letters []string
		current strings.Builder
	)
	flush := func() {
		if current.Len() > 0 {
			letters = append(letters, current.String())
			current.Reset()
		}
	}

	for _, r := range d.runs(samples) {
		if r.lit {
			if r.frames < 2*unit {
				current.WriteByte('.')
			} else {
				current.WriteByte('-')
			}
			continue
		}

		// пауза до первой вспышки не значима
		if current.Len() == 0 && len(letters) == 0 {
			continue
		}
		switch {
		case r.frames < 2*unit:
		case r.frames < 5*unit:
			flush()
		default:
			flush()
			letters = append(letters, morse.WordSeparator)
		}
	}
	flush()

	// хвостовая пауза не должна давать разделитель слов
	for len(letters) > 0 && letters[len(letters)-1] == morse.WordSeparator {
		letters = letters[:len(letters)-1]
	}
	return strings.Join(letters, " ")
}

// Decode переводит кадры сразу в текст
func (d *Decoder) Decode(samples []uint8) string {
	return morse.Decode(d.Tokens(samples))
}
