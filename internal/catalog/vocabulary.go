package catalog

// Vocabulary translates English landmark terms that show up in
// encyclopedic summaries. Keys are lowercase.
var Vocabulary = map[string]string{
	"tower":     "kule",
	"towers":    "kuleler",
	"museum":    "müze",
	"museums":   "müzeler",
	"palace":    "saray",
	"church":    "kilise",
	"mosque":    "cami",
	"cathedral": "katedral",
	"basilica":  "bazilika",
	"bridge":    "köprü",
	"castle":    "kale",
	"fortress":  "kale",
	"square":    "meydan",
	"park":      "park",
	"garden":    "bahçe",
	"gardens":   "bahçeler",
	"monument":  "anıt",
	"statue":    "heykel",
	"fountain":  "çeşme",
	"gallery":   "galeri",
	"market":    "çarşı",
	"bazaar":    "çarşı",
	"century":   "yüzyıl",
	"ancient":   "antik",
	"historic":  "tarihi",
	"city":      "şehir",
	"old town":  "eski şehir",
}
