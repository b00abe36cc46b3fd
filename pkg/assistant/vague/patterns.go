// PURPOSE: Ordered rule tables for vague query classification

package vague

import "regexp"

// Category labels the kind of vagueness detected in a query.
type Category string

const (
	CategorySymptomProblem     Category = "symptom_problem"
	CategorySpatialConstraint  Category = "spatial_constraint"
	CategorySubjectiveSlang    Category = "subjective_slang"
	CategoryLifestyleContext   Category = "lifestyle_context"
	CategoryNegationComplexity Category = "negation_complexity"
	CategorySentimentAction    Category = "sentiment_action"
	CategoryClear              Category = "clear"
)

// Tools an analysis can recommend to the handler.
const (
	ToolSearchProducts = "search_products"
	ToolBuildBundle    = "build_bundle"
	ToolPolicyInfo     = "get_policy_info"
	ToolNone           = "none"
)

// rule is one pattern with its interpretation. Rules are evaluated in
// declaration order; the highest-confidence match wins and earlier rules
// win ties.
type rule struct {
	pattern       *regexp.Regexp
	intent        string
	query         string
	filters       map[string]string
	tool          string
	toolArgs      map[string]string
	excludes      map[string]string // attribute -> negated value
	clarification string
	extractNumber bool
	isBundle      bool
}

type ruleSet struct {
	category Category
	rules    []rule
}

func re(pattern string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)` + pattern)
}

var ruleSets = []ruleSet{
	{
		category: CategorySymptomProblem,
		rules: []rule{
			{
				pattern: re(`\b(back\s*(is\s*)?(killing|hurting|aching|pain|sore|hurt|hurts)|lower\s*back|back\s*pain|bad\s*posture|posture\s*(issue|problem)|sitting\s*(all\s*day|too\s*(long|much)))\b`),
				intent:  "needs ergonomic support for back pain",
				query:   "ergonomic office chair lumbar support",
				filters: map[string]string{"category": "chairs"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(clutter(ed)?|messy|disorganized|no\s*space|stuff\s*everywhere|too\s*much\s*stuff|organize|storage\s*solution)\b`),
				intent:  "needs storage and organization",
				query:   "storage cabinet bookshelf organizer",
				filters: map[string]string{"category": "storage"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(spill(ing|s)?|water\s*damage|stain(s|ed)?|coffee\s*(ring|stain)|waterproof)\b`),
				intent:  "wants water and stain resistant surfaces",
				query:   "water resistant desk stain proof easy clean",
				filters: map[string]string{"material": "glass"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(neck\s*(pain|hurts|aching|strain)|looking\s*down|screen\s*too\s*low)\b`),
				intent:  "needs a monitor stand or adjustable desk",
				query:   "monitor stand adjustable height desk riser",
				filters: map[string]string{"category": "office"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(can'?t\s*sleep|insomnia|tossing\s*(and\s*)?turning|bad\s*sleep|sleep\s*(issues?|problems?))\b`),
				intent:  "needs a better bed or mattress",
				query:   "comfortable mattress bed frame quality",
				filters: map[string]string{"category": "bedroom"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(just\s*moved|moving\s*in|new\s*(apartment|place|home)|first\s*(apartment|place)|empty\s*(apartment|room))\b`),
				intent:  "needs starter furniture for a new place",
				query:   "essential furniture starter living room bedroom",
				tool:    ToolSearchProducts,
			},
		},
	},
	{
		category: CategorySpatialConstraint,
		rules: []rule{
			{
				pattern: re(`\b(shoe\s*box|tiny|cramped|small\s*(space|apartment|room|studio)|micro\s*(apartment|studio)|no\s*room)\b`),
				intent:  "has very limited space, needs compact pieces",
				query:   "space saving compact folding furniture",
				filters: map[string]string{"size": "compact"},
				tool:    ToolSearchProducts,
			},
			{
				pattern:       re(`\b(family\s*of\s*(\d+)|(\d+)\s*people|big\s*family|large\s*family|seat\s*(\d+))\b`),
				intent:        "needs large furniture for a family",
				query:         "large dining table family seating",
				filters:       map[string]string{"category": "tables"},
				tool:          ToolSearchProducts,
				extractNumber: true,
			},
			{
				pattern: re(`\b(awkward\s*corner|corner\s*space|empty\s*corner|corner\s*of\s*(the\s*)?(room|office))\b`),
				intent:  "has a corner space to fill",
				query:   "corner desk corner shelf l-shaped",
				filters: map[string]string{"descriptor": "l shape"},
				tool:    ToolSearchProducts,
			},
			{
				pattern:       re(`\b(narrow\s*(door(way)?|hall(way)?|stairs)|won'?t\s*fit|too\s*wide)\b`),
				intent:        "has delivery space constraints",
				query:         "modular easy assembly compact",
				tool:          ToolSearchProducts,
				clarification: "What are the dimensions of your doorway or space? I can help find pieces that fit.",
			},
			{
				pattern: re(`\b(balcony|patio|deck|backyard|outdoor|garden|terrace)\b`),
				intent:  "needs outdoor furniture",
				query:   "outdoor furniture weather resistant patio",
				filters: map[string]string{"category": "outdoor"},
				tool:    ToolSearchProducts,
			},
		},
	},
	{
		category: CategorySubjectiveSlang,
		rules: []rule{
			{
				pattern: re(`\b(boujee|bougie|fancy|luxur(y|ious)|high\s*end|premium|upscale|classy)\b`),
				intent:  "wants luxury or premium items",
				query:   "premium luxury high quality",
				filters: map[string]string{"material": "leather"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(broke|student|budget|cheap(est)?|affordable|don'?t\s*have\s*much|limited\s*budget|tight\s*budget|(have\s*)?no\s*money|on\s*a\s*budget)\b`),
				intent:  "has strict budget constraints",
				query:   "affordable budget value",
				filters: map[string]string{"price_max": "200"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(industrial|loft|warehouse|factory)\b`),
				intent:  "wants industrial style",
				query:   "industrial style metal wood rustic",
				filters: map[string]string{"style": "industrial", "material": "metal"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(minimalist|minimal|clean\s*lines?|sleek|modern|scandinavian)\b`),
				intent:  "wants minimalist or modern style",
				query:   "minimalist modern sleek simple design",
				filters: map[string]string{"style": "modern", "color": "white"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(cozy|cosy|hygge|snug|homey)\b`),
				intent:  "wants cozy, comfortable pieces",
				query:   "cozy comfortable soft plush",
				filters: map[string]string{"material": "fabric"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(rustic|farmhouse|country|cottage|barn|reclaimed)\b`),
				intent:  "wants rustic or farmhouse style",
				query:   "rustic farmhouse wood natural country",
				filters: map[string]string{"style": "rustic", "material": "wood"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(mid\s*century|retro|60s|70s|vintage\s*modern)\b`),
				intent:  "wants mid-century modern style",
				query:   "mid century modern retro vintage",
				filters: map[string]string{"style": "mid-century"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(moody|gothic|dramatic|noir|black\s*everything)\b`),
				intent:  "wants a dark aesthetic",
				query:   "dark black matte",
				filters: map[string]string{"color": "black"},
				tool:    ToolSearchProducts,
			},
		},
	},
	{
		category: CategoryLifestyleContext,
		rules: []rule{
			{
				pattern: re(`\b(stream(ing|er)?|twitch|youtube(r)?|gam(ing|er)|esports|rgb)\b`),
				intent:  "is a gamer or streamer, needs a gaming setup",
				query:   "gaming desk gaming chair RGB",
				filters: map[string]string{"category": "office", "style": "gaming"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b((i\s*have\s*(a\s*)?(cat|dog|pet|puppy|kitten))|(cat|dog|pet|puppy)\s*(scratch(es|ing)?|chew(s|ing)?|fur|hair|mess|friendly|proof|resistant)|pet\s*proof|pet\s*friendly)\b`),
				intent:  "has pets, needs pet-friendly furniture",
				query:   "pet friendly scratch resistant easy clean durable",
				filters: map[string]string{"material": "leather"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(sit\s*stand|standing\s*desk|stand(ing)?\s*up|on\s*my\s*feet)\b`),
				intent:  "works standing, needs a standing desk",
				query:   "adjustable standing desk sit stand height adjustable",
				filters: map[string]string{"category": "desks"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(man\s*cave|game\s*room|theater|cinema|movie\s*night)\b`),
				intent:  "wants entertainment room furniture",
				query:   "recliner leather tv stand entertainment",
				filters: map[string]string{"room_type": "living", "color": "black"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(work(ing)?\s*from\s*home|wfh|home\s*office|remote\s*work(er)?|zoom\s*calls?|hybrid\s*work)\b`),
				intent:  "works from home, needs an office setup",
				query:   "home office desk ergonomic chair professional",
				filters: map[string]string{"room_type": "office"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(party|parties|entertaining|dinner\s*party|host(ing)?)\b`),
				intent:  "hosts gatherings, needs entertaining furniture",
				query:   "dining table large bar cart serving",
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(kid(s|'s)?|child(ren)?|toddler|baby|nursery|playroom)\b`),
				intent:  "needs child-friendly furniture",
				query:   "kids furniture safe rounded edges child friendly",
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(home\s*gym|workout|exercise|fitness|training|weights)\b`),
				intent:  "needs home gym equipment",
				query:   "gym equipment fitness training home gym",
				filters: map[string]string{"category": "fitness"},
				tool:    ToolSearchProducts,
			},
			{
				pattern: re(`\b(guest(s)?|spare\s*room|visitor|overnight)\b`),
				intent:  "needs guest room furniture",
				query:   "guest bed sofa bed foldable mattress",
				filters: map[string]string{"category": "bedroom"},
				tool:    ToolSearchProducts,
			},
		},
	},
	{
		category: CategoryNegationComplexity,
		rules: []rule{
			{
				pattern:  re(`\b(not|no|without|isn'?t|aren'?t|don'?t\s*want)\s*(made\s*of\s*)?(wood(en)?)\b`),
				intent:   "wants non-wood materials",
				query:    "metal glass plastic",
				filters:  map[string]string{"material": "metal"},
				tool:     ToolSearchProducts,
				excludes: map[string]string{"material": "wood"},
			},
			{
				pattern: re(`\b(no|without|don'?t\s*want)\s*wheels?\b`),
				intent:  "wants stationary furniture without wheels",
				query:   "stationary no wheels sled base fixed",
				tool:    ToolSearchProducts,
			},
			{
				pattern:  re(`\b(not|no|without|isn'?t|aren'?t|don'?t\s*want)\s*leather\b`),
				intent:   "wants non-leather materials",
				query:    "fabric mesh velvet",
				filters:  map[string]string{"material": "fabric"},
				tool:     ToolSearchProducts,
				excludes: map[string]string{"material": "leather"},
			},
			{
				pattern:  re(`\b(not|no|without|don'?t\s*want)\s*plastic\b`),
				intent:   "wants non-plastic materials",
				query:    "wood metal glass natural",
				filters:  map[string]string{"material": "wood"},
				tool:     ToolSearchProducts,
				excludes: map[string]string{"material": "plastic"},
			},
			{
				pattern:  re(`\b(not|no|without|anything\s*but)\s*fabric\b`),
				intent:   "wants non-fabric materials",
				query:    "leather metal wood",
				filters:  map[string]string{"material": "leather"},
				tool:     ToolSearchProducts,
				excludes: map[string]string{"material": "fabric"},
			},
			{
				pattern: re(`\b(not\s*(too\s*)?expensive|reasonably\s*priced)\b`),
				intent:  "wants moderately priced items",
				query:   "affordable mid range value",
				tool:    ToolSearchProducts,
			},
			{
				pattern:  re(`\b((\w+)\s*and\s*(\w+)\s*(for\s*)?(under|below|less\s*than|within)\s*\$?(\d+))\b`),
				intent:   "wants multiple items within a total budget",
				tool:     ToolBuildBundle,
				isBundle: true,
			},
		},
	},
	{
		category: CategorySentimentAction,
		rules: []rule{
			{
				pattern:       re(`\b(hate|hated?|terrible|awful|worst|return|refund|money\s*back|regret)\b`),
				intent:        "is unhappy with a purchase, may want a return",
				tool:          ToolPolicyInfo,
				toolArgs:      map[string]string{"policy_type": "returns"},
				clarification: "I'm sorry to hear that. Would you like information about our return policy?",
			},
			{
				pattern:  re(`\b(when\s*(will|does)|how\s*long|delivery|shipping|arrive|eta|track(ing)?)\b`),
				intent:   "is asking about delivery or shipping",
				tool:     ToolPolicyInfo,
				toolArgs: map[string]string{"policy_type": "shipping"},
			},
			{
				pattern:  re(`\b(payment\s*plan|installment|afterpay|zip\s*pay|lay\s*by|finance|pay\s*later)\b`),
				intent:   "is asking about payment options",
				tool:     ToolPolicyInfo,
				toolArgs: map[string]string{"policy_type": "payment"},
			},
		},
	},
}

// clearProductWords make a query count as a literal product search when
// no vague pattern applies.
var clearProductWords = []string{
	"desk", "chair", "table", "sofa", "couch", "bed", "mattress",
	"shelf", "bookshelf", "cabinet", "drawer", "wardrobe", "dresser",
	"lamp", "rug", "curtain", "mirror", "ottoman", "bench",
	"treadmill", "dumbbell", "weight", "scooter", "bike",
	"dog bed", "cat tree", "pet", "cage", "kennel", "stool", "locker",
}
