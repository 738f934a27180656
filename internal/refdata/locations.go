package refdata

// manualCoordinates carries coordinates for the ancient place names
// the footsteps table uses. The location registry overlays this table
// at request time: registry coordinates win on a name collision, the
// manual table supplies names the registry lacks.
var manualCoordinates = map[string]Coordinate{
	"Ur":                {Latitude: 30.9626, Longitude: 46.1025, ModernName: "Tell el-Muqayyar, Iraq"},
	"Haran":             {Latitude: 36.8650, Longitude: 39.0317, ModernName: "Harran, Turkey"},
	"Shechem":           {Latitude: 32.2137, Longitude: 35.2821, ModernName: "Nablus"},
	"Salem":             {Latitude: 31.7683, Longitude: 35.2137, ModernName: "Jerusalem"},
	"Moriah":            {Latitude: 31.7767, Longitude: 35.2354, ModernName: "Temple Mount, Jerusalem"},
	"Machpelah":         {Latitude: 31.5246, Longitude: 35.1108, ModernName: "Hebron"},
	"Horeb":             {Latitude: 28.5395, Longitude: 33.9751, ModernName: "Mount Sinai"},
	"Mount Sinai":       {Latitude: 28.5395, Longitude: 33.9751, ModernName: "Jebel Musa, Egypt"},
	"Red Sea":           {Latitude: 29.5469, Longitude: 34.9529, ModernName: "Gulf of Suez"},
	"Rameses":           {Latitude: 30.8074, Longitude: 31.8238, ModernName: "Qantir, Egypt"},
	"Marah":             {Latitude: 29.2000, Longitude: 33.0667, ModernName: "Ain Hawarah"},
	"Elim":              {Latitude: 29.1589, Longitude: 33.0856, ModernName: "Wadi Gharandel"},
	"Wilderness of Sin": {Latitude: 29.0000, Longitude: 33.3333, ModernName: "Debbet er-Ramleh"},
	"Rephidim":          {Latitude: 28.7247, Longitude: 33.8456, ModernName: "Wadi Refayid"},
	"Kadesh Barnea":     {Latitude: 30.6875, Longitude: 34.4947, ModernName: "Ein Qadis"},
	"Kadesh":            {Latitude: 30.6875, Longitude: 34.4947, ModernName: "Ein Qadis"},
	"Mount Hor":         {Latitude: 30.3172, Longitude: 35.4072, ModernName: "Jebel Harun, Jordan"},
	"Mount Nebo":        {Latitude: 31.7683, Longitude: 35.7253, ModernName: "Siyagha, Jordan"},
	"Valley of Elah":    {Latitude: 31.6903, Longitude: 34.9639, ModernName: "Wadi es-Sunt"},
	"Gibeah":            {Latitude: 31.8239, Longitude: 35.2308, ModernName: "Tell el-Ful"},
	"En Gedi":           {Latitude: 31.4614, Longitude: 35.3922, ModernName: "Ein Gedi"},
	"Ziklag":            {Latitude: 31.3778, Longitude: 34.8736, ModernName: "Tell esh-Sharia"},
	"Jordan":            {Latitude: 31.8567, Longitude: 35.5500, ModernName: "Jordan River"},
	"Jordan River":      {Latitude: 32.3094, Longitude: 35.5547, ModernName: "Yardenit"},
	"Cana":              {Latitude: 32.7469, Longitude: 35.3394, ModernName: "Kafr Kanna"},
	"Sea of Galilee":    {Latitude: 32.8258, Longitude: 35.5908, ModernName: "Lake Kinneret"},
	"Capernaum":         {Latitude: 32.8808, Longitude: 35.5753, ModernName: "Tel Hum"},
	"Mount":             {Latitude: 32.7279, Longitude: 35.3658, ModernName: "Mount of Beatitudes"},
	"Bethsaida":         {Latitude: 32.9097, Longitude: 35.6308, ModernName: "Et-Tell"},
	"Caesarea Philippi": {Latitude: 33.2483, Longitude: 35.6944, ModernName: "Banias"},
	"Mount Tabor":       {Latitude: 32.6868, Longitude: 35.3907, ModernName: "Har Tavor"},
	"Jericho":           {Latitude: 31.8571, Longitude: 35.4442, ModernName: "Ariha"},
	"Bethany":           {Latitude: 31.7717, Longitude: 35.2561, ModernName: "Al-Eizariya"},
	"Upper Room":        {Latitude: 31.7717, Longitude: 35.2292, ModernName: "Mount Zion, Jerusalem"},
	"Gethsemane":        {Latitude: 31.7794, Longitude: 35.2397, ModernName: "Garden of Gethsemane"},
	"Golgotha":          {Latitude: 31.7786, Longitude: 35.2294, ModernName: "Church of the Holy Sepulchre"},
	"Mount of Olives":   {Latitude: 31.7767, Longitude: 35.2428, ModernName: "Har HaZeitim"},
	"Tarsus":            {Latitude: 36.9177, Longitude: 34.8948, ModernName: "Tarsus, Turkey"},
	"Arabia":            {Latitude: 30.3285, Longitude: 35.4444, ModernName: "Petra region"},
	"Antioch":           {Latitude: 36.2012, Longitude: 36.1608, ModernName: "Antakya, Turkey"},
	"Cyprus":            {Latitude: 35.1264, Longitude: 33.4299, ModernName: "Cyprus"},
	"Pisidian Antioch":  {Latitude: 38.3063, Longitude: 31.1891, ModernName: "Yalvaç, Turkey"},
	"Iconium":           {Latitude: 37.8746, Longitude: 32.4932, ModernName: "Konya, Turkey"},
	"Lystra":            {Latitude: 37.5781, Longitude: 32.4534, ModernName: "Hatunsaray, Turkey"},
	"Derbe":             {Latitude: 37.3489, Longitude: 33.3878, ModernName: "Kerti Hüyük, Turkey"},
	"Philippi":          {Latitude: 41.0136, Longitude: 24.2886, ModernName: "Filippoi, Greece"},
	"Thessalonica":      {Latitude: 40.6401, Longitude: 22.9444, ModernName: "Thessaloniki, Greece"},
	"Athens":            {Latitude: 37.9838, Longitude: 23.7275, ModernName: "Athens, Greece"},
	"Corinth":           {Latitude: 37.9058, Longitude: 22.8797, ModernName: "Korinthos, Greece"},
	"Ephesus":           {Latitude: 37.9493, Longitude: 27.3681, ModernName: "Selçuk, Turkey"},
	"Caesarea":          {Latitude: 32.4989, Longitude: 34.8925, ModernName: "Caesarea Maritima"},
	"Malta":             {Latitude: 35.9375, Longitude: 14.3754, ModernName: "Malta"},
	"Rome":              {Latitude: 41.9028, Longitude: 12.4964, ModernName: "Rome, Italy"},
	"Mediterranean":     {Latitude: 35.0000, Longitude: 18.0000, ModernName: "Mediterranean Sea"},
	"Nile River":        {Latitude: 30.0444, Longitude: 31.2357, ModernName: "Cairo, Egypt"},
	"Egypt":             {Latitude: 30.0444, Longitude: 31.2357, ModernName: "Cairo, Egypt"},
	"Wilderness":        {Latitude: 30.5852, Longitude: 34.7668, ModernName: "Negev Desert"},
	"Midian":            {Latitude: 28.3969, Longitude: 34.8613, ModernName: "Northwest Saudi Arabia"},
	"Judean Hills":      {Latitude: 31.7500, Longitude: 35.2000, ModernName: "Judean Hills, Israel"},
	"Machaerus":         {Latitude: 31.5397, Longitude: 35.6653, ModernName: "Mukawir, Jordan"},
	"Dan":               {Latitude: 33.2486, Longitude: 35.6525, ModernName: "Tel Dan"},
	"Bethel":            {Latitude: 31.9308, Longitude: 35.2203, ModernName: "Beitin"},
	"Hebron":            {Latitude: 31.5246, Longitude: 35.1108, ModernName: "Al-Khalil"},
	"Jerusalem":         {Latitude: 31.7683, Longitude: 35.2137, ModernName: "Jerusalem"},
	"Bethlehem":         {Latitude: 31.7054, Longitude: 35.2024, ModernName: "Bethlehem"},
	"Nazareth":          {Latitude: 32.6996, Longitude: 35.3035, ModernName: "Nazareth"},
	"Damascus":          {Latitude: 33.5138, Longitude: 36.2765, ModernName: "Damascus, Syria"},
}
