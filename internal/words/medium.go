package words

// mediumWords is the pool for difficulty levels 4-6.
var mediumWords = []string{
	"abstract", "account", "achieve", "acquire", "activity", "advance", "advice", "ancient",
	"anxiety", "approach", "arrange", "artist", "assist", "assume", "athlete", "attach",
	"attempt", "attract", "balance", "barrier", "behave", "benefit", "biology", "breath",
	"budget", "burden", "camera", "capable", "capital", "capture", "career", "century",
	"channel", "chapter", "charge", "chemical", "circle", "citizen", "classic", "climate",
	"collect", "colony", "combine", "comfort", "command", "comment", "commerce", "common",
	"compact", "company", "compare", "compass", "compete", "complex", "concept", "concern",
	"concrete", "conduct", "confirm", "conflict", "connect", "consider", "constant", "construct",
	"consult", "contain", "content", "contest", "context", "continue", "contract", "contrast",
	"control", "convert", "convince", "copper", "correct", "council", "counter", "courage",
	"create", "creature", "credit", "crisis", "critic", "culture", "current", "curtain",
	"custom", "damage", "danger", "debate", "decade", "decent", "declare", "decline",
	"decrease", "defeat", "defend", "define", "degree", "deliver", "demand", "depend",
	"deposit", "depth", "derive", "describe", "desert", "deserve", "design", "desire",
	"destroy", "detail", "detect", "develop", "device", "devote", "diamond", "differ",
	"digital", "dinner", "direct", "discover", "discuss", "disease", "display", "distance",
	"distinct", "district", "diverse", "divide", "domain", "domestic", "dominant", "double",
	"dragon", "drama", "drawer", "drawing", "driver", "during", "dynamic", "eager",
	"eagle", "earlier", "eastern", "economic", "editor", "effect", "effort", "either",
	"element", "emerge", "emotion", "emperor", "employ", "empty", "enable", "enemy",
	"energy", "enforce", "engage", "engine", "enhance", "enjoy", "enough", "ensure",
	"enter", "entire", "entry", "equal", "equipment", "error", "escape", "essay",
	"establish", "estate", "estimate", "ethics", "ethnic", "evening", "event", "evidence",
	"evil", "evolve", "exact", "examine", "example", "exceed", "excellent", "except",
	"exchange", "excite", "exclude", "execute", "exercise", "exhibit", "exist", "expand",
}
