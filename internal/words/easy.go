package words

// easyWords is the pool for difficulty levels 1-3.
var easyWords = []string{
	"apple", "baby", "ball", "bank", "beach", "bear", "bell", "bird",
	"block", "boat", "book", "box", "bread", "bridge", "brush", "bus",
	"cake", "candle", "car", "card", "cat", "chair", "chalk", "cheese",
	"chicken", "circle", "city", "class", "clock", "cloud", "coat", "coin",
	"cold", "corn", "cow", "crown", "cup", "dance", "day", "deer",
	"desk", "dish", "doctor", "dog", "doll", "door", "dream", "dress",
	"drum", "duck", "earth", "egg", "face", "fall", "farm", "fast",
	"feather", "fence", "field", "fire", "fish", "flag", "floor", "flower",
	"fog", "food", "foot", "fork", "fox", "frog", "fruit", "game",
	"garden", "gate", "gift", "glass", "glove", "goat", "gold", "grass",
	"green", "hand", "hat", "heart", "hill", "home", "honey", "horse",
	"house", "ice", "island", "jacket", "jar", "juice", "jump", "key",
	"king", "kite", "lake", "lamp", "leaf", "lemon", "letter", "light",
	"lion", "lock", "map", "milk", "mirror", "money", "moon", "mouse",
	"mouth", "music", "nail", "nest", "night", "nose", "nurse", "ocean",
	"orange", "oven", "paint", "paper", "park", "party", "pen", "pencil",
	"phone", "piano", "picture", "pig", "pillow", "plane", "plant", "plate",
	"pocket", "pond", "queen", "rabbit", "rain", "ring", "river", "road",
	"rock", "roof", "room", "rope", "rose", "salt", "sand", "school",
	"sea", "seed", "sheep", "shell", "ship", "shirt", "shoe", "shop",
	"sky", "sleep", "smile", "snake", "snow", "soap", "sock", "song",
	"spoon", "spring", "star", "stone", "store", "storm", "street", "sugar",
	"summer", "sun", "table", "tail", "teacher", "tent", "ticket", "tiger",
	"time", "tooth", "train", "tree", "truck", "water", "wheel", "window",
	"winter", "wolf", "wood", "yard",
}
