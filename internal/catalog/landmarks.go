package catalog

type Landmark struct {
	Name        string
	Kind        string
	Description string
	Image       string // empty until resolved
}

// landmarks is authoritative for the cities it names.
var landmarks = map[string][]Landmark{
	"Paris": {
		{Name: "Eyfel Kulesi", Kind: "architecture", Description: "1889 Dünya Fuarı için inşa edilen, Paris'in simgesi haline gelmiş demir kule."},
		{Name: "Louvre Müzesi", Kind: "museums", Description: "Mona Lisa'ya ev sahipliği yapan, dünyanın en çok ziyaret edilen sanat müzesi."},
		{Name: "Notre-Dame Katedrali", Kind: "religion", Description: "Seine Nehri'ndeki Île de la Cité üzerinde yükselen Gotik katedral."},
		{Name: "Zafer Takı", Kind: "historic", Description: "Napolyon'un zaferleri anısına Champs-Élysées'nin ucuna inşa edilen anıtsal kemer."},
		{Name: "Sacré-Cœur Bazilikası", Kind: "religion", Description: "Montmartre tepesinden şehre bakan beyaz kubbeli bazilika."},
	},
	"İstanbul": {
		{Name: "Ayasofya", Kind: "historic", Description: "537 yılında tamamlanan, bin yılı aşkın süre dünyanın en büyük katedrali olan yapı."},
		{Name: "Topkapı Sarayı", Kind: "museums", Description: "Osmanlı padişahlarının yaklaşık dört yüzyıl boyunca yaşadığı saray kompleksi."},
		{Name: "Sultanahmet Camii", Kind: "religion", Description: "İç mekanındaki mavi çinileriyle Mavi Cami olarak da bilinen 17. yüzyıl camisi."},
		{Name: "Galata Kulesi", Kind: "architecture", Description: "Haliç'e ve Boğaz'a hakim, Ceneviz döneminden kalma taş kule."},
		{Name: "Kapalıçarşı", Kind: "shops", Description: "Altmıştan fazla sokağı ve binlerce dükkanıyla dünyanın en eski kapalı çarşılarından biri."},
	},
	"Roma": {
		{Name: "Kolezyum", Kind: "historic", Description: "Gladyatör dövüşlerine sahne olmuş, Roma İmparatorluğu'nun en büyük amfitiyatrosu."},
		{Name: "Trevi Çeşmesi", Kind: "architecture", Description: "İçine bozuk para atanın Roma'ya geri döneceğine inanılan Barok çeşme."},
		{Name: "Pantheon", Kind: "historic", Description: "İki bin yıllık beton kubbesi hâlâ ayakta olan antik Roma tapınağı."},
		{Name: "Vatikan Müzeleri", Kind: "museums", Description: "Sistine Şapeli'ni de kapsayan, papalık koleksiyonlarının sergilendiği müzeler."},
	},
}

var landmarkIndex = indexByFold(landmarks)

// LandmarkCity returns the display key of the curated table matching city.
func LandmarkCity(city string) (string, bool) {
	display, ok := landmarkIndex[Fold(city)]
	return display, ok
}

// Landmarks returns a copy of the curated entries for a display key.
func Landmarks(display string) []Landmark {
	src := landmarks[display]
	out := make([]Landmark, len(src))
	copy(out, src)
	return out
}

// LandmarkCities lists every city with curated landmarks.
func LandmarkCities() []string {
	out := make([]string, 0, len(landmarks))
	for k := range landmarks {
		out = append(out, k)
	}
	return out
}
