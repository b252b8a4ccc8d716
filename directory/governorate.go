package directory

import "github.com/candidatos-info/diretorio/slug"

// DefaultGovernorate replaces any governorate that is not one of the 18.
const DefaultGovernorate = "Baghdad"

// Governorates are Iraq's 18 governorates, the only values a candidate
// governorate can hold.
var Governorates = []string{
	"Baghdad",
	"Basra",
	"Nineveh",
	"Erbil",
	"Sulaymaniyah",
	"Duhok",
	"Kirkuk",
	"Anbar",
	"Diyala",
	"Saladin",
	"Najaf",
	"Karbala",
	"Babil",
	"Wasit",
	"Maysan",
	"Dhi Qar",
	"Muthanna",
	"Qadisiyah",
}

var governoratesBySlug = func() map[string]string {
	m := make(map[string]string, len(Governorates))
	for _, g := range Governorates {
		m[slug.Make(g)] = g
	}
	return m
}()

// Resolution is the outcome of mapping a raw governorate value.
type Resolution struct {
	Value     string // one of Governorates
	Original  string // raw value as received
	Defaulted bool   // true when Original was not recognized
}

// ResolveGovernorate maps raw to its canonical governorate. Values are
// compared by slug, so "dhi qar" and "Dhi-Qar" are Dhi Qar. Anything
// else resolves to DefaultGovernorate with Defaulted set.
func ResolveGovernorate(raw string) Resolution {
	if g, ok := governoratesBySlug[slug.Make(raw)]; ok {
		return Resolution{Value: g, Original: raw}
	}
	return Resolution{Value: DefaultGovernorate, Original: raw, Defaulted: true}
}
