package game

// scrambleWords is the pool for the word scramble game. Entries shorter than
// two letters are skipped by the generator since they cannot be scrambled.
var scrambleWords = []string{
	"ball", "tree", "book", "fish", "apple", "house", "happy", "bump", "plate",
	"glass", "bottle", "fork", "water", "chat", "cup",
	"cat", "dog", "sun", "moon", "star", "bird", "door", "shoe", "sock",
	"jump", "run", "walk", "sing", "play", "blue", "red", "green", "yellow",
	"small", "big", "cold", "hot", "milk", "bread", "chair", "table", "hand",
	"foot", "head", "eyes", "ears", "nose", "mouth", "face", "time", "game",
	"park", "road", "car", "bus", "train", "plane", "boat", "swim", "read",
	"write", "draw", "talk", "baby", "child", "adult", "man", "woman", "boy",
	"girl", "family", "friend", "love", "kind", "nice", "good", "bad", "sad",
	"cry", "laugh", "smile", "food", "drink", "eat", "sleep", "day", "night",
	"morning", "mouse", "snake", "tiger", "lion", "zebra", "horse", "sheep",
	"cow", "pig", "farm", "city", "town", "home", "room", "bed", "sofa",
	"desk", "light", "dark", "near", "far", "slow", "fast", "loud", "quiet",
	"clean", "dirty", "new", "old", "young", "true", "false", "yes", "no",
	"up", "down", "in", "out", "on", "off", "under", "over", "with", "without",
	"and", "but", "or", "if", "so", "then", "when", "where", "why", "how",
	"what", "who", "whom", "whose", "which", "this", "that", "these", "those",
	"my", "your", "his", "her", "its", "our", "their", "me", "you", "him",
	"it", "us", "them", "he", "she", "we", "they", "am",
	"is", "are", "was", "were", "be", "been", "have", "has", "had", "do",
	"does", "did", "can", "could", "will", "would", "shall", "should", "may",
	"might", "must",
}

// wordPair is a correctly spelled word and its misspelled counterpart with
// one extra letter.
type wordPair struct {
	word      string
	incorrect string
}

// eliminationPairs is the fixed pool for the letter elimination game. Pairs
// are drawn without replacement; exhausting them ends the round early.
var eliminationPairs = []wordPair{
	{word: "flower", incorrect: "flowper"},
	{word: "basket", incorrect: "basxket"},
	{word: "purple", incorrect: "purpole"},
	{word: "orange", incorrect: "orlange"},
	{word: "castle", incorrect: "casftle"},
	{word: "plant", incorrect: "planit"},
	{word: "pencil", incorrect: "pehncil"},
	{word: "button", incorrect: "butrton"},
	{word: "monkey", incorrect: "monakey"},
	{word: "school", incorrect: "schoonl"},
	{word: "yellow", incorrect: "yelllow"},
	{word: "rocket", incorrect: "rojcket"},
	{word: "circle", incorrect: "ciracle"},
	{word: "summer", incorrect: "sumdmer"},
	{word: "family", incorrect: "famkily"},
	{word: "pillow", incorrect: "pillqow"},
	{word: "window", incorrect: "winbdow"},
	{word: "jungle", incorrect: "juxngle"},
	{word: "number", incorrect: "numbzer"},
	{word: "market", incorrect: "markqet"},
}

// recognitionWords is the pool for the word recognition game. Words here are
// long enough to produce convincing look-alike decoys.
var recognitionWords = []string{
	"ball", "tree", "book", "fish", "apple", "house", "happy", "plate",
	"glass", "bottle", "water", "bread", "chair", "table", "mouse", "snake",
	"tiger", "horse", "sheep", "train", "plane", "family", "friend", "morning",
	"school", "window", "yellow", "summer", "pillow", "jungle", "number",
	"market", "flower", "basket", "purple", "orange", "castle", "pencil",
	"button", "monkey",
}
