package words

// hardWords is the pool for difficulty levels 7-9.
var hardWords = []string{
	"abbreviate", "abdomen", "abolish", "abrasive", "abridge", "absolve", "absorb", "abundance",
	"accelerate", "accentuate", "accessible", "accommodate", "accomplish", "accumulate", "accurate", "acknowledge",
	"acquaintance", "adequate", "adjacent", "adjust", "administer", "admirable", "adolescent", "advantage",
	"adversary", "advocate", "aesthetic", "affiliate", "affluent", "aggregate", "aggressive", "agriculture",
	"algorithm", "alienate", "alleviate", "allocate", "alternate", "ambiguous", "ambitious", "amplify",
	"analogous", "analyze", "ancestor", "anticipate", "antiquated", "apparatus", "apparent", "appreciate",
	"apprentice", "appropriate", "approximate", "arbitrary", "architect", "archive", "aristocrat", "articulate",
	"artificial", "ascertain", "aspect", "aspire", "assemble", "assessment", "asset", "associate",
	"astronomy", "asymmetric", "atmosphere", "attain", "attribute", "audible", "authentic", "authorize",
	"autonomous", "auxiliary", "available", "avalanche", "avenue", "aversion", "aviation", "awkward",
	"bachelor", "bacteria", "bankruptcy", "baroque", "battalion", "battery", "beneficial", "benevolent",
	"bias", "bibliography", "bilateral", "biography", "bizarre", "blatant", "blend", "blueprint",
	"boisterous", "boundary", "bourgeois", "boycott", "bracelet", "brevity", "brilliant", "brittle",
	"broadcast", "bureaucracy", "burglar", "calculate", "calibrate", "calligraphy", "camouflage", "campaign",
	"candidate", "capability", "capacity", "captivate", "carbohydrate", "cardiovascular", "carnivore", "cartography",
	"casual", "catastrophe", "category", "cathedral", "cautious", "celebrate", "celestial", "cellular",
	"cemetery", "census", "centennial", "ceremony", "certificate", "challenge", "chamber", "champion",
	"chancellor", "character", "characteristic", "charcoal", "charisma", "charitable", "charter", "chasm",
	"choreography", "chromosome", "chronic", "chronological", "circuit", "circulate", "circumference", "circumstance",
	"civilian", "civilization", "clarify", "classify", "clause", "client", "clinic", "coalition",
	"coexist", "cognition", "coherent", "coincide", "collaborate", "collapse", "colleague", "collective",
	"collision", "colonial", "column", "combat", "combination", "comedy", "commentary", "commission",
	"commit", "commodity", "communicate", "community", "comparable", "compartment", "compassion", "compatible",
	"compel", "compensate", "competent", "compile", "complement", "complete", "component", "compose",
	"compound", "comprehend", "comprehensive", "comprise", "compromise", "compulsory", "compute", "conceal",
}
