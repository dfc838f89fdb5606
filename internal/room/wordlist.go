package room

// commonWords is the fixed corpus the typing game draws from: 1000
// unique lowercase English words.
var commonWords = []string{
	"the", "be", "to", "of", "and", "a", "in", "that", "have", "i",
	"it", "for", "not", "on", "with", "he", "as", "you", "do", "at",
	"this", "but", "his", "by", "from", "they", "we", "say", "her", "she",
	"or", "an", "will", "my", "one", "all", "would", "there", "their", "what",
	"so", "up", "out", "if", "about", "who", "get", "which", "go", "me",
	"when", "make", "can", "like", "time", "no", "just", "him", "know", "take",
	"people", "into", "year", "your", "good", "some", "could", "them", "see", "other",
	"than", "then", "now", "look", "only", "come", "its", "over", "think", "also",
	"back", "after", "use", "two", "how", "our", "work", "first", "well", "way",
	"even", "new", "want", "because", "any", "these", "give", "day", "most", "us",
	"is", "was", "are", "been", "has", "had", "were", "said", "did", "having",
	"may", "should", "am", "water", "long", "little", "very", "great", "own", "old",
	"right", "big", "high", "different", "small", "large", "next", "early", "young", "important",
	"few", "public", "bad", "same", "able", "man", "woman", "child", "world", "school",
	"state", "family", "student", "group", "country", "problem", "hand", "part", "place", "case",
	"week", "company", "system", "program", "question", "government", "number", "night", "point", "home",
	"room", "mother", "area", "money", "story", "fact", "month", "lot", "book", "eye",
	"job", "word", "business", "issue", "side", "kind", "head", "house", "service", "friend",
	"father", "power", "hour", "game", "line", "end", "member", "law", "car", "city",
	"community", "name", "president", "team", "minute", "idea", "body", "information", "face", "others",
	"level", "office", "door", "health", "person", "art", "war", "history", "party", "result",
	"change", "morning", "reason", "research", "girl", "guy", "moment", "air", "teacher", "force",
	"education", "foot", "boy", "age", "policy", "process", "music", "market", "sense", "nation",
	"plan", "college", "interest", "death", "experience", "effect", "dog", "cat", "bird", "fish",
	"horse", "cow", "pig", "sheep", "goat", "chicken", "duck", "rabbit", "mouse", "lion",
	"tiger", "bear", "wolf", "fox", "deer", "monkey", "elephant", "snake", "frog", "bee",
	"ant", "spider", "red", "blue", "green", "yellow", "orange", "purple", "pink", "brown",
	"black", "white", "gray", "silver", "gold", "run", "walk", "jump", "swim", "fly",
	"climb", "crawl", "dance", "sing", "talk", "speak", "listen", "hear", "watch", "read",
	"write", "draw", "paint", "play", "stop", "start", "open", "close", "push", "pull",
	"throw", "catch", "kick", "hit", "cut", "break", "fix", "build", "carry", "hold",
	"drop", "lift", "move", "turn", "spin", "roll", "slide", "fall", "rise", "stand",
	"sit", "sleep", "wake", "eat", "drink", "cook", "bake", "wash", "clean", "dry",
	"wear", "dress", "buy", "sell", "pay", "spend", "save", "count", "add", "subtract",
	"divide", "share", "find", "lose", "keep", "bring", "send", "receive", "travel", "drive",
	"ride", "sail", "land", "arrive", "leave", "stay", "wait", "hurry", "rest", "help",
	"hurt", "heal", "grow", "plant", "pick", "gather", "hunt", "chase", "follow", "lead",
	"guide", "teach", "learn", "study", "test", "pass", "fail", "win", "try", "practice",
	"improve", "apple", "banana", "bread", "butter", "cake", "candy", "cheese", "coffee", "corn",
	"cream", "egg", "flour", "fruit", "grape", "juice", "lemon", "meat", "milk", "nut",
	"onion", "pasta", "pepper", "potato", "rice", "salad", "salt", "soup", "sugar", "tea",
	"tomato", "vegetable", "arm", "bone", "brain", "ear", "elbow", "finger", "hair", "heart",
	"knee", "leg", "lip", "mouth", "neck", "nose", "shoulder", "skin", "stomach", "throat",
	"thumb", "toe", "tongue", "tooth", "beach", "bridge", "building", "castle", "church", "farm",
	"field", "forest", "garden", "hill", "island", "lake", "mountain", "ocean", "park", "path",
	"river", "road", "rock", "sand", "sea", "sky", "star", "stone", "street", "sun",
	"tree", "valley", "village", "wall", "wave", "wood", "bed", "blanket", "bottle", "bowl",
	"box", "brush", "camera", "chair", "clock", "cloth", "coat", "computer", "cup", "desk",
	"dish", "fan", "floor", "fork", "glass", "hammer", "hat", "key", "kitchen", "knife",
	"lamp", "letter", "lock", "map", "mirror", "nail", "needle", "pan", "paper", "pen",
	"pencil", "phone", "picture", "pillow", "plate", "pocket", "radio", "ring", "rope", "scissors",
	"screen", "shelf", "shirt", "shoe", "soap", "sock", "spoon", "table", "tool", "towel",
	"toy", "umbrella", "wallet", "wheel", "window", "above", "across", "against", "along", "among",
	"around", "before", "behind", "below", "beneath", "beside", "between", "beyond", "during", "except",
	"inside", "near", "outside", "through", "toward", "under", "until", "upon", "within", "without",
	"always", "never", "often", "sometimes", "usually", "rarely", "soon", "later", "today", "tomorrow",
	"yesterday", "again", "already", "almost", "alone", "together", "apart", "away", "here", "far",
	"everywhere", "nowhere", "somewhere", "anywhere", "happy", "sad", "angry", "afraid", "brave", "calm",
	"proud", "shy", "tired", "hungry", "thirsty", "sick", "healthy", "strong", "weak", "fast",
	"slow", "loud", "quiet", "bright", "dark", "heavy", "light", "hard", "soft", "smooth",
	"rough", "sharp", "dull", "hot", "cold", "warm", "cool", "wet", "full", "empty",
	"dirty", "fresh", "rich", "poor", "cheap", "expensive", "free", "busy", "ready", "easy",
	"difficult", "simple", "complex", "safe", "dangerous", "quick", "lazy", "mean", "nice", "rude",
	"polite", "honest", "fair", "wrong", "true", "false", "real", "fake", "deep", "shallow",
	"wide", "narrow", "thick", "thin", "tall", "short", "round", "flat", "straight", "curved",
	"closed", "three", "four", "five", "six", "seven", "eight", "nine", "ten", "eleven",
	"twelve", "twenty", "thirty", "forty", "fifty", "hundred", "thousand", "million", "second", "third",
	"last", "ask", "answer", "begin", "believe", "belong", "call", "care", "choose", "compare",
	"complete", "consider", "continue", "cost", "cover", "create", "cry", "decide", "deliver", "describe",
	"destroy", "develop", "die", "disappear", "discover", "discuss", "dream", "earn", "enjoy", "enter",
	"exist", "expect", "explain", "express", "feel", "fight", "fill", "finish", "fit", "forget",
	"forgive", "gain", "guess", "happen", "hate", "hope", "imagine", "include", "increase", "intend",
	"invite", "join", "joke", "judge", "kill", "kiss", "knock", "laugh", "lay", "lie",
	"live", "love", "manage", "marry", "matter", "mention", "mind", "miss", "need", "notice",
	"obtain", "offer", "order", "pause", "perform", "permit", "prefer", "prepare", "present", "press",
	"prevent", "produce", "promise", "protect", "prove", "provide", "raise", "reach", "realize", "recognize",
	"reduce", "refuse", "remain", "remember", "remove", "repair", "repeat", "replace", "reply", "report",
	"require", "return", "reveal", "search", "seem", "select", "serve", "set", "settle", "shake",
	"shine", "shoot", "shout", "show", "shut", "smell", "smile", "sound", "spell", "stretch",
	"strike", "succeed", "suffer", "suggest", "supply", "support", "suppose", "surprise", "survive", "taste",
	"tell", "thank", "tie", "touch", "train", "treat", "trust", "understand", "visit", "vote",
	"warn", "wish", "wonder", "worry", "act", "aim", "army", "award", "bank", "base",
	"battle", "beauty", "bell", "belt", "bill", "birth", "bit", "block", "blood", "board",
	"boat", "border", "bottom", "branch", "brand", "breath", "brother", "budget", "bus", "button",
	"camp", "cap", "captain", "card", "cash", "cause", "cell", "center", "century", "chain",
	"chance", "channel", "chapter", "charge", "chart", "chief", "choice", "circle", "claim", "class",
	"click", "client", "club", "coach", "coast", "code", "column", "comfort", "comment", "concept",
	"concert", "control", "copy", "core", "corner", "couple", "course", "court", "cousin", "craft",
	"credit", "crew", "crime", "crop", "crowd", "crown", "culture", "current", "curve", "custom",
	"cycle", "damage", "data", "date", "deal", "debt", "decade", "degree", "demand", "design",
	"desire", "detail", "device", "diet", "dinner", "direction", "distance", "doctor", "doubt", "dozen",
	"draft", "drama", "dust", "duty", "edge", "effort", "energy", "engine", "entry", "error",
	"event", "example", "exchange", "exercise", "exit", "factor", "failure", "faith", "fame", "fashion",
	"fault", "fear", "feature", "fee", "feed", "feeling", "figure", "file", "film", "fire",
	"firm", "flag", "flame", "flavor", "flight", "flow", "flower", "focus", "food", "form",
	"frame", "fuel", "fun", "function", "future", "gap", "gas", "gate", "gear", "gift",
	"goal", "grade", "grain", "grass", "ground", "growth", "guard", "guest", "gun", "habit",
	"hall", "harbor", "harm", "hero", "hole", "holiday", "honor", "hook", "host", "hotel",
	"humor", "ice", "image", "impact", "income", "industry", "injury", "ink", "input", "insect",
	"instance", "iron", "item", "jacket", "jail", "jar", "jaw", "jet", "joint", "journey",
}
