package catalog

// FallbackEntry is a hand-authored summary shown when no live source
// returned anything.
type FallbackEntry struct {
	Name        string
	Kind        string
	Description string
	Location    string // empty means the requested city
}

var cityFallbacks = map[string][]FallbackEntry{
	"Ankara": {
		{Name: "Anıtkabir", Kind: "historic", Description: "Mustafa Kemal Atatürk'ün anıt mezarı ve çevresindeki müze kompleksi."},
		{Name: "Ankara Kalesi", Kind: "fortifications", Description: "Ulus'un tepesinde, eski Ankara evleriyle çevrili tarihi kale."},
		{Name: "Anadolu Medeniyetleri Müzesi", Kind: "museums", Description: "Paleolitik çağdan günümüze Anadolu uygarlıklarının eserleri."},
	},
	"İzmir": {
		{Name: "Saat Kulesi", Kind: "architecture", Description: "Konak Meydanı'nın simgesi olan 1901 yapımı saat kulesi."},
		{Name: "Kemeraltı Çarşısı", Kind: "marketplaces", Description: "Dar sokakları, hanları ve esnafıyla şehrin tarihi çarşısı."},
		{Name: "Kordon", Kind: "urban_environment", Description: "Körfez boyunca uzanan, gün batımının izlendiği sahil yolu."},
	},
	"Antalya": {
		{Name: "Kaleiçi", Kind: "historic", Description: "Roma, Bizans ve Osmanlı izlerini taşıyan surlarla çevrili eski şehir."},
		{Name: "Düden Şelalesi", Kind: "natural", Description: "Denize dökülen sularıyla ünlü şelale."},
		{Name: "Konyaaltı Plajı", Kind: "beaches", Description: "Toros Dağları manzaralı, kilometrelerce uzanan çakıl plaj."},
		{Name: "Hadrian Kapısı", Kind: "historic", Description: "İmparator Hadrianus'un ziyareti anısına yapılan üç kemerli kapı."},
	},
	"Kapadokya": {
		{Name: "Göreme Açık Hava Müzesi", Kind: "museums", Description: "Kayaya oyulmuş kiliseler ve fresklerle dolu manastır vadisi."},
		{Name: "Peri Bacaları", Kind: "geological_formations", Description: "Volkanik tüflerin aşınmasıyla oluşmuş koni biçimli kayalar."},
	},
}

var fallbackIndex = indexByFold(cityFallbacks)

// CityFallback returns the authored fallback entries for city, if any.
func CityFallback(city string) ([]FallbackEntry, bool) {
	display, ok := fallbackIndex[Fold(city)]
	if !ok {
		return nil, false
	}
	return cityFallbacks[display], true
}

// Filler names the generic entries used when a city has no authored table.
// Each is a format string taking the city name.
var Filler = []FallbackEntry{
	{Name: "%s Şehir Merkezi", Kind: "urban_environment", Description: "%s şehir merkezinde yürüyerek keşfedilecek sokaklar ve meydanlar."},
	{Name: "%s Tarihi Çarşısı", Kind: "marketplaces", Description: "%s çarşısında yerel ürünler ve el sanatları."},
	{Name: "%s Seyir Noktası", Kind: "natural", Description: "%s manzarasını yukarıdan görebileceğiniz bir nokta."},
}

var categoryFallbacks = map[string][]FallbackEntry{
	"historical": {
		{Name: "Efes Antik Kenti", Kind: "historic", Location: "İzmir", Description: "Celsus Kütüphanesi ve büyük tiyatrosuyla Ege'nin en iyi korunmuş antik kenti."},
		{Name: "Truva Antik Kenti", Kind: "historic", Location: "Çanakkale", Description: "Homeros'un destanlarına konu olan, dokuz katmanlı antik yerleşim."},
	},
	"museums": {
		{Name: "İstanbul Arkeoloji Müzeleri", Kind: "museums", Location: "İstanbul", Description: "İskender Lahdi'ni barındıran, ülkenin ilk müze binası."},
		{Name: "Zeugma Mozaik Müzesi", Kind: "museums", Location: "Gaziantep", Description: "Çingene Kızı mozaiği ile tanınan dünyanın en büyük mozaik müzelerinden biri."},
	},
	"nature": {
		{Name: "Pamukkale Travertenleri", Kind: "natural", Location: "Denizli", Description: "Kalsiyum yüklü sıcak suların oluşturduğu bembeyaz teraslar."},
		{Name: "Uzungöl", Kind: "natural", Location: "Trabzon", Description: "Karadeniz dağları arasında, ladin ormanlarıyla çevrili göl."},
	},
	"beaches": {
		{Name: "Ölüdeniz", Kind: "beaches", Location: "Muğla", Description: "Turkuaz lagünü ve yamaç paraşütüyle ünlü koy."},
		{Name: "Patara Plajı", Kind: "beaches", Location: "Antalya", Description: "Caretta carettaların yumurtladığı on sekiz kilometrelik kumsal."},
	},
}

// CategoryFallback returns the authored mock entries for a category id.
func CategoryFallback(id string) ([]FallbackEntry, bool) {
	e, ok := categoryFallbacks[id]
	return e, ok
}
