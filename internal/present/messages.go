package present

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys. English output is the key itself unless a plural form is registered.
const (
	keyMeters     = "%d m"
	keyKilometers = "%.1f km"
	keyMinutes    = "%d mins"
	keyHours      = "%d hours"
	keyDays       = "%d days"
	keyCost       = "$%d"
	keySentence   = "This home is %s away from your office. That would take %s each direction. That's %s in your car, each year at a cost of %s."
)

func init() {
	mustSet(language.English, keyMinutes, plural.Selectf(1, "%d",
		"=1", "%d min",
		"other", "%d mins"))
	mustSet(language.English, keyHours, plural.Selectf(1, "%d",
		"=1", "%d hour",
		"other", "%d hours"))
	mustSet(language.English, keyDays, plural.Selectf(1, "%d",
		"=1", "%d day",
		"other", "%d days"))

	mustSet(language.German, keyMinutes, plural.Selectf(1, "%d",
		"=1", "%d Minute",
		"other", "%d Minuten"))
	mustSet(language.German, keyHours, plural.Selectf(1, "%d",
		"=1", "%d Stunde",
		"other", "%d Stunden"))
	mustSet(language.German, keyDays, plural.Selectf(1, "%d",
		"=1", "%d Tag",
		"other", "%d Tage"))
	mustSetString(language.German, keyCost, "%d $")
	mustSetString(language.German, keySentence,
		"Dieses Haus ist %s von deinem Büro entfernt. Das sind %s pro Richtung. Das macht %s im Auto pro Jahr, bei Kosten von %s.")
}

func mustSet(tag language.Tag, key string, msg ...catalog.Message) {
	if err := message.Set(tag, key, msg...); err != nil {
		panic("present: register " + key + ": " + err.Error())
	}
}

func mustSetString(tag language.Tag, key, msg string) {
	if err := message.SetString(tag, key, msg); err != nil {
		panic("present: register " + key + ": " + err.Error())
	}
}
