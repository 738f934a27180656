package refdata

// footsteps is the biographical milestone table, keyed by canonical
// figure name. Years and locations follow the traditional chronology;
// location names resolve against the manual table or the location
// registry.
var footsteps = map[string][]Footstep{
	"Abraham": {
		{Year: -2000, Location: "Ur", Title: "Birth", Description: "Born in Ur of the Chaldeans", Verse: "Genesis 11:27-28"},
		{Year: -1925, Location: "Haran", Title: "Move to Haran", Description: "Travels to Haran with his father Terah", Verse: "Genesis 11:31"},
		{Year: -1921, Location: "Shechem", Title: "Arrival in Canaan", Description: "Reaches Shechem in Canaan and builds an altar", Verse: "Genesis 12:6"},
		{Year: -1920, Location: "Bethel", Title: "Altar at Bethel", Description: "Moves to the hills east of Bethel and builds an altar", Verse: "Genesis 12:8"},
		{Year: -1920, Location: "Egypt", Title: "Refuge in Egypt", Description: "Goes down to Egypt to escape the famine", Verse: "Genesis 12:10"},
		{Year: -1919, Location: "Bethel", Title: "Return from Egypt", Description: "Comes back from Egypt and returns to Bethel", Verse: "Genesis 13:3"},
		{Year: -1918, Location: "Hebron", Title: "Settles at Hebron", Description: "Settles near the great trees of Mamre", Verse: "Genesis 13:18"},
		{Year: -1913, Location: "Dan", Title: "Rescue of Lot", Description: "Pursues the raiders as far as Dan and rescues Lot", Verse: "Genesis 14:14"},
		{Year: -1913, Location: "Salem", Title: "Meets Melchizedek", Description: "Met by Melchizedek king of Salem", Verse: "Genesis 14:18"},
		{Year: -1900, Location: "Hebron", Title: "Birth of Isaac", Description: "Isaac is born when Abraham is a hundred years old", Verse: "Genesis 21:2-3"},
		{Year: -1876, Location: "Moriah", Title: "Offering of Isaac", Description: "Prepares to offer Isaac on Mount Moriah", Verse: "Genesis 22:2"},
		{Year: -1860, Location: "Hebron", Title: "Death of Sarah", Description: "Sarah dies at Hebron at a hundred and twenty-seven", Verse: "Genesis 23:2"},
		{Year: -1860, Location: "Machpelah", Title: "Purchase of Machpelah", Description: "Buys the cave of Machpelah as a burial site for Sarah", Verse: "Genesis 23:19"},
		{Year: -1825, Location: "Hebron", Title: "Death of Abraham", Description: "Dies at a hundred and seventy-five and is buried at Machpelah", Verse: "Genesis 25:8"},
	},
	"Moses": {
		{Year: -1526, Location: "Egypt", Title: "Birth", Description: "Born to a Levite family in Egypt", Verse: "Exodus 2:1-2"},
		{Year: -1526, Location: "Nile River", Title: "Set adrift on the Nile", Description: "Found by Pharaoh's daughter and adopted", Verse: "Exodus 2:3"},
		{Year: -1486, Location: "Egypt", Title: "Kills an Egyptian", Description: "Strikes down an Egyptian beating a Hebrew", Verse: "Exodus 2:11-12"},
		{Year: -1486, Location: "Midian", Title: "Flight to Midian", Description: "Flees to Midian and helps the daughters of Reuel", Verse: "Exodus 2:15"},
		{Year: -1447, Location: "Horeb", Title: "The burning bush", Description: "Called by God at Mount Horeb", Verse: "Exodus 3:2"},
		{Year: -1446, Location: "Egypt", Title: "Return to Egypt", Description: "Goes to Pharaoh together with Aaron", Verse: "Exodus 4:20"},
		{Year: -1446, Location: "Rameses", Title: "The Exodus begins", Description: "Sets out from Rameses toward Succoth", Verse: "Exodus 12:37"},
		{Year: -1446, Location: "Red Sea", Title: "Crossing the Red Sea", Description: "The sea parts and Israel crosses on dry ground", Verse: "Exodus 14:22"},
		{Year: -1446, Location: "Marah", Title: "The bitter water of Marah", Description: "Makes the bitter water sweet", Verse: "Exodus 15:23"},
		{Year: -1446, Location: "Elim", Title: "Arrival at Elim", Description: "Camp at twelve springs and seventy palm trees", Verse: "Exodus 15:27"},
		{Year: -1446, Location: "Wilderness of Sin", Title: "Manna and quail", Description: "God provides manna and quail", Verse: "Exodus 16:13-14"},
		{Year: -1446, Location: "Rephidim", Title: "Battle at Rephidim", Description: "Israel defeats the Amalekites", Verse: "Exodus 17:8"},
		{Year: -1446, Location: "Mount Sinai", Title: "The Ten Commandments", Description: "Receives the Ten Commandments on Mount Sinai", Verse: "Exodus 19:20"},
		{Year: -1445, Location: "Mount Sinai", Title: "The golden calf", Description: "Confronts Israel over the golden calf", Verse: "Exodus 32:19"},
		{Year: -1445, Location: "Kadesh Barnea", Title: "Spies sent to Canaan", Description: "Sends twelve spies into Canaan", Verse: "Numbers 13:26"},
		{Year: -1407, Location: "Kadesh", Title: "Death of Miriam", Description: "Miriam dies at Kadesh", Verse: "Numbers 20:1"},
		{Year: -1407, Location: "Mount Hor", Title: "Death of Aaron", Description: "Aaron dies on Mount Hor", Verse: "Numbers 20:28"},
		{Year: -1406, Location: "Mount Nebo", Title: "Death of Moses", Description: "Dies on Mount Nebo overlooking Canaan", Verse: "Deuteronomy 34:5"},
	},
	"David": {
		{Year: -1040, Location: "Bethlehem", Title: "Birth", Description: "Born in Bethlehem as a son of Jesse", Verse: "1 Samuel 16:1"},
		{Year: -1025, Location: "Bethlehem", Title: "Anointing", Description: "Anointed by Samuel", Verse: "1 Samuel 16:13"},
		{Year: -1024, Location: "Gibeah", Title: "Saul's court", Description: "Becomes Saul's armor-bearer", Verse: "1 Samuel 16:21"},
		{Year: -1023, Location: "Valley of Elah", Title: "Goliath defeated", Description: "Strikes down Goliath in the Valley of Elah", Verse: "1 Samuel 17:49"},
		{Year: -1020, Location: "Wilderness", Title: "Flight into the wilderness", Description: "Flees from Saul into the wilderness", Verse: "1 Samuel 22:1"},
		{Year: -1018, Location: "En Gedi", Title: "The cave at En Gedi", Description: "Spares Saul's life in the cave at En Gedi", Verse: "1 Samuel 24:3"},
		{Year: -1015, Location: "Ziklag", Title: "Settles at Ziklag", Description: "Settles in Philistine Ziklag", Verse: "1 Samuel 27:6"},
		{Year: -1010, Location: "Hebron", Title: "King of Judah", Description: "Anointed king of Judah at Hebron", Verse: "2 Samuel 2:4"},
		{Year: -1003, Location: "Jerusalem", Title: "Conquest of Jerusalem", Description: "Takes Jerusalem from the Jebusites", Verse: "2 Samuel 5:7"},
		{Year: -1002, Location: "Jerusalem", Title: "The ark brought up", Description: "Brings the ark of the covenant to Jerusalem", Verse: "2 Samuel 6:12"},
		{Year: -995, Location: "Jerusalem", Title: "Temple plans", Description: "Plans to build the temple but is refused", Verse: "2 Samuel 7:2"},
		{Year: -985, Location: "Jerusalem", Title: "Bathsheba", Description: "Commits adultery with Bathsheba and has Uriah killed", Verse: "2 Samuel 11:2"},
		{Year: -982, Location: "Jerusalem", Title: "Absalom's revolt", Description: "Flees Jerusalem during Absalom's rebellion", Verse: "2 Samuel 15:14"},
		{Year: -982, Location: "Jordan", Title: "Crossing the Jordan", Description: "Crosses the Jordan fleeing Absalom", Verse: "2 Samuel 17:22"},
		{Year: -970, Location: "Jerusalem", Title: "Solomon crowned", Description: "Has Solomon anointed king", Verse: "1 Kings 1:39"},
		{Year: -970, Location: "Jerusalem", Title: "Death of David", Description: "Dies at seventy in Jerusalem", Verse: "1 Kings 2:10"},
	},
	"Jesus": {
		{Year: -4, Location: "Bethlehem", Title: "Nativity", Description: "Born in a stable in Bethlehem", Verse: "Luke 2:4-7"},
		{Year: -4, Location: "Jerusalem", Title: "Presentation at the temple", Description: "Presented at the temple forty days after birth", Verse: "Luke 2:22"},
		{Year: -3, Location: "Egypt", Title: "Flight to Egypt", Description: "Carried to Egypt to escape Herod", Verse: "Matthew 2:14"},
		{Year: -1, Location: "Nazareth", Title: "Settles in Nazareth", Description: "Returns from Egypt and settles in Nazareth", Verse: "Matthew 2:23"},
		{Year: 8, Location: "Jerusalem", Title: "The boy at the temple", Description: "Discusses with the teachers at Passover, aged twelve", Verse: "Luke 2:42"},
		{Year: 27, Location: "Jordan River", Title: "Baptism", Description: "Baptized by John in the Jordan", Verse: "Matthew 3:13"},
		{Year: 27, Location: "Wilderness", Title: "Temptation in the wilderness", Description: "Tempted for forty days in the wilderness", Verse: "Matthew 4:1"},
		{Year: 27, Location: "Cana", Title: "First miracle", Description: "Turns water into wine at the wedding in Cana", Verse: "John 2:1-11"},
		{Year: 27, Location: "Capernaum", Title: "Ministry at Capernaum", Description: "Makes Capernaum the base of his ministry", Verse: "Matthew 4:13"},
		{Year: 28, Location: "Sea of Galilee", Title: "Calling the disciples", Description: "Calls the first disciples by the Sea of Galilee", Verse: "Matthew 4:18-22"},
		{Year: 28, Location: "Mount", Title: "Sermon on the Mount", Description: "Teaches the Beatitudes on the mountainside", Verse: "Matthew 5:1"},
		{Year: 29, Location: "Bethsaida", Title: "Feeding the five thousand", Description: "Feeds five thousand near Bethsaida", Verse: "John 6:5-13"},
		{Year: 29, Location: "Caesarea Philippi", Title: "Peter's confession", Description: "Receives Peter's confession at Caesarea Philippi", Verse: "Matthew 16:13"},
		{Year: 29, Location: "Mount Tabor", Title: "Transfiguration", Description: "Transfigured on Mount Tabor", Verse: "Matthew 17:1-2"},
		{Year: 30, Location: "Jericho", Title: "Through Jericho", Description: "Meets Zacchaeus in Jericho", Verse: "Luke 19:1"},
		{Year: 30, Location: "Bethany", Title: "Raising of Lazarus", Description: "Raises Lazarus at Bethany", Verse: "John 11:43-44"},
		{Year: 30, Location: "Jerusalem", Title: "Triumphal entry", Description: "Enters Jerusalem on Palm Sunday", Verse: "Matthew 21:9"},
		{Year: 30, Location: "Jerusalem", Title: "Cleansing of the temple", Description: "Drives the merchants out of the temple", Verse: "Matthew 21:12"},
		{Year: 30, Location: "Upper Room", Title: "The Last Supper", Description: "Shares the last supper in the upper room", Verse: "Matthew 26:26"},
		{Year: 30, Location: "Gethsemane", Title: "Prayer at Gethsemane", Description: "Prays in the garden of Gethsemane", Verse: "Matthew 26:36"},
		{Year: 30, Location: "Golgotha", Title: "Crucifixion", Description: "Crucified at Golgotha", Verse: "Matthew 27:33"},
		{Year: 30, Location: "Jerusalem", Title: "Resurrection", Description: "Raised from the tomb", Verse: "Matthew 28:6"},
		{Year: 30, Location: "Mount of Olives", Title: "Ascension", Description: "Ascends from the Mount of Olives", Verse: "Acts 1:9"},
	},
	"Paul": {
		{Year: 5, Location: "Tarsus", Title: "Birth", Description: "Born in Tarsus of Cilicia", Verse: "Acts 22:3"},
		{Year: 30, Location: "Jerusalem", Title: "Witness to Stephen's death", Description: "Present at the stoning of Stephen", Verse: "Acts 7:58"},
		{Year: 34, Location: "Damascus", Title: "Conversion on the Damascus road", Description: "Meets Jesus on the road to Damascus", Verse: "Acts 9:3-4"},
		{Year: 34, Location: "Damascus", Title: "Meets Ananias", Description: "Regains his sight when Ananias lays hands on him", Verse: "Acts 9:17"},
		{Year: 34, Location: "Arabia", Title: "Stay in Arabia", Description: "Withdraws into Arabia for three years", Verse: "Galatians 1:17"},
		{Year: 37, Location: "Jerusalem", Title: "First Jerusalem visit", Description: "Introduced to the apostles by Barnabas", Verse: "Acts 9:26"},
		{Year: 37, Location: "Tarsus", Title: "Return to Tarsus", Description: "Returns to his home city of Tarsus", Verse: "Acts 9:30"},
		{Year: 43, Location: "Antioch", Title: "Ministry at Antioch", Description: "Teaches in Antioch with Barnabas for a year", Verse: "Acts 11:26"},
		{Year: 46, Location: "Antioch", Title: "First missionary journey", Description: "Sent out from Antioch on the first journey", Verse: "Acts 13:3"},
		{Year: 46, Location: "Cyprus", Title: "Mission to Cyprus", Description: "Preaches at Salamis and Paphos", Verse: "Acts 13:4"},
		{Year: 47, Location: "Pisidian Antioch", Title: "Pisidian Antioch", Description: "Preaches in the synagogue at Pisidian Antioch", Verse: "Acts 13:14"},
		{Year: 47, Location: "Iconium", Title: "Mission to Iconium", Description: "Many Jews and Greeks believe at Iconium", Verse: "Acts 14:1"},
		{Year: 48, Location: "Lystra", Title: "Healing at Lystra", Description: "Heals a man lame from birth", Verse: "Acts 14:8-10"},
		{Year: 48, Location: "Derbe", Title: "Mission to Derbe", Description: "Preaches the gospel in Derbe", Verse: "Acts 14:20"},
		{Year: 49, Location: "Jerusalem", Title: "Council of Jerusalem", Description: "Attends the council over circumcision", Verse: "Acts 15:2"},
		{Year: 50, Location: "Antioch", Title: "Second missionary journey", Description: "Sets out with Silas on the second journey", Verse: "Acts 15:40"},
		{Year: 50, Location: "Philippi", Title: "Mission to Philippi", Description: "Converts Lydia and the jailer", Verse: "Acts 16:12"},
		{Year: 51, Location: "Thessalonica", Title: "Mission to Thessalonica", Description: "Preaches three sabbaths in the synagogue", Verse: "Acts 17:1"},
		{Year: 51, Location: "Athens", Title: "Speech at Athens", Description: "Addresses the philosophers at the Areopagus", Verse: "Acts 17:22"},
		{Year: 51, Location: "Corinth", Title: "Eighteen months in Corinth", Description: "Ministers in Corinth for a year and six months", Verse: "Acts 18:11"},
		{Year: 53, Location: "Ephesus", Title: "Third missionary journey", Description: "Ministers three years in Ephesus", Verse: "Acts 19:1"},
		{Year: 56, Location: "Ephesus", Title: "Riot at Ephesus", Description: "The riot stirred up by Demetrius", Verse: "Acts 19:23"},
		{Year: 57, Location: "Jerusalem", Title: "Arrest", Description: "Arrested at the temple", Verse: "Acts 21:33"},
		{Year: 59, Location: "Caesarea", Title: "Imprisonment at Caesarea", Description: "Held two years at Caesarea", Verse: "Acts 24:27"},
		{Year: 59, Location: "Mediterranean", Title: "Voyage to Rome", Description: "Sent by sea to Rome under guard", Verse: "Acts 27:1"},
		{Year: 60, Location: "Malta", Title: "Shipwreck at Malta", Description: "Shipwrecked and winters three months on Malta", Verse: "Acts 28:1"},
		{Year: 60, Location: "Rome", Title: "Arrival in Rome", Description: "Lives two years under house arrest in Rome", Verse: "Acts 28:16"},
		{Year: 67, Location: "Rome", Title: "Martyrdom", Description: "Martyred under Nero", Verse: "2 Timothy 4:6"},
	},
	"John the Baptist": {
		{Year: -4, Location: "Judean Hills", Title: "Birth", Description: "Born to Zechariah and Elizabeth", Verse: "Luke 1:57"},
		{Year: 26, Location: "Jordan River", Title: "Baptizing ministry begins", Description: "Begins baptizing at the Jordan", Verse: "Matthew 3:1"},
		{Year: 27, Location: "Jordan River", Title: "Baptism of Jesus", Description: "Baptizes Jesus in the Jordan", Verse: "Matthew 3:13-17"},
		{Year: 29, Location: "Machaerus", Title: "Martyrdom", Description: "Beheaded by Herod Antipas", Verse: "Matthew 14:10"},
	},
	"Peter": {
		{Year: 1, Location: "Bethsaida", Title: "Birth", Description: "Born in Bethsaida of Galilee", Verse: "John 1:44"},
		{Year: 28, Location: "Sea of Galilee", Title: "Called as a disciple", Description: "Called by Jesus at the Sea of Galilee", Verse: "Matthew 4:18-20"},
		{Year: 29, Location: "Caesarea Philippi", Title: "Confession of faith", Description: "Confesses Jesus as the Messiah", Verse: "Matthew 16:16"},
		{Year: 30, Location: "Jerusalem", Title: "Denial of Jesus", Description: "Denies Jesus three times", Verse: "Matthew 26:69-75"},
		{Year: 30, Location: "Jerusalem", Title: "Pentecost sermon", Description: "Preaches the first sermon after Pentecost", Verse: "Acts 2:14"},
		{Year: 44, Location: "Jerusalem", Title: "Delivered from prison", Description: "Imprisoned by Herod Agrippa and freed by an angel", Verse: "Acts 12:7-11"},
		{Year: 50, Location: "Jerusalem", Title: "Council of Jerusalem", Description: "Speaks on the Gentile mission at the council", Verse: "Acts 15:7-11"},
		{Year: 64, Location: "Rome", Title: "Martyrdom", Description: "Crucified upside down in Rome", Verse: "1 Peter 5:13"},
	},
	"Mary": {
		{Year: -18, Location: "Nazareth", Title: "Birth", Description: "Born in Nazareth", Verse: "Luke 1:26"},
		{Year: -5, Location: "Nazareth", Title: "Annunciation", Description: "Gabriel announces the birth of Jesus", Verse: "Luke 1:26-38"},
		{Year: -4, Location: "Bethlehem", Title: "Birth of Jesus", Description: "Gives birth to Jesus in Bethlehem", Verse: "Luke 2:6-7"},
		{Year: 30, Location: "Golgotha", Title: "At the cross", Description: "Stands by the cross of Jesus", Verse: "John 19:25"},
		{Year: 30, Location: "Jerusalem", Title: "Pentecost", Description: "Present with the disciples at Pentecost", Verse: "Acts 1:14"},
	},
}
