// PURPOSE: Rule-based intent routing for the shopping assistant

package intent

import (
	"regexp"
	"strconv"
	"strings"
)

// Type is a routable user intent.
type Type string

const (
	ProductSearch  Type = "product_search"
	ProductSpecQA  Type = "product_spec_qa"
	CartAdd        Type = "cart_add"
	CartRemove     Type = "cart_remove"
	CartShow       Type = "cart_show"
	ReturnPolicy   Type = "return_policy"
	ShippingInfo   Type = "shipping_info"
	PaymentOptions Type = "payment_options"
	WarrantyInfo   Type = "warranty_info"
	ContactInfo    Type = "contact_info"
	StoreHours     Type = "store_hours"
	StoreLocation  Type = "store_location"
	Comparison     Type = "comparison"
	Refinement     Type = "refinement"
	Greeting       Type = "greeting"
	GeneralHelp    Type = "general_help"
	OutOfScope     Type = "out_of_scope"
)

type patternGroup struct {
	intent   Type
	patterns []*regexp.Regexp
}

func compileAll(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, len(exprs))
	for i, e := range exprs {
		out[i] = regexp.MustCompile(e)
	}
	return out
}

// Groups are scanned in order; the first matching pattern decides.
var patternGroups = []patternGroup{
	{ProductSearch, compileAll(
		`\b(show|find|search|looking for|want|need|browse)\b.*\b(chairs?|tables?|desks?|sofas?|beds?|shelves|shelving|lockers?|stools?|furniture)\b`,
		`\b(office|bedroom|living room|dining)\b.*\b(furniture|chairs?|tables?)\b`,
		`\bdo you have\b.*\b(any|some)\b`,
		`\b(tell me about|what is|what are|information about|info about|details about|describe)\b.*\b(chairs?|tables?|desks?|sofas?|beds?|shelves|shelving|lockers?|stools?|furniture|storage|cabinet)\b`,
		`\b(modern|industrial|rustic|scandinavian|contemporary|minimalist|classic)\b`,
		`\b(wood(en)?|metal(lic)?|leather|fabric|glass|rattan|plastic)\b`,
		`\b(red|blue|green|yellow|black|white|brown|gray|orange|purple|pink)\b`,
		`\b(cheap|expensive|under|over|less than|more than)\b`,
		`\b(show|find)\s+(me|us)\b`,
	)},
	{ProductSpecQA, compileAll(
		`\b(dimensions?|sizes?|width|height|depth|weight|material|color|specifications?|specs?|details?)\b`,
		`\bhow (big|large|small|heavy|long|wide|tall|deep)\b`,
		`\bwhat (is|are) (the|its)\b.*\b(dimensions?|sizes?|material|color|weight)\b`,
		`\b(made of|assembly|care instruction|warranty)\b`,
		`\b(seat|weight capacity|load)\b`,
	)},
	{CartAdd, compileAll(
		`\b(add|put)\b.*\b(to|in|into)\b.*\b(cart|basket)\b`,
		`\b(buy|purchase|order)\b.*\b(this|that|the|it)\b`,
		`\b(i'll take)\b.*\b(this|that|the|it|one)\b`,
	)},
	{CartRemove, compileAll(
		`\b(remove|delete|take out)\b.*\b(from|out of)\b.*\b(cart|basket)\b`,
		`\bdon't want\b.*\b(anymore|this|that)\b`,
	)},
	{CartShow, compileAll(
		`\b(show|view|see|check)\b.*\b(cart|basket)\b`,
		`\bwhat's in\b.*\b(cart|basket)\b`,
		`\b(my cart|my basket|cart contents)\b`,
	)},
	{ReturnPolicy, compileAll(
		`\b(return|refund|exchange)\b.*\b(policy|process|procedure)\b`,
		`\bcan i return\b`,
		`\bhow (long|many days)\b.*\b(return|refund)\b`,
		`\breturn.*\b(period|policy|window)\b`,
	)},
	{ShippingInfo, compileAll(
		`\b(shipping|delivery|freight|postage)\b.*\b(cost|price|fee|charge)\b`,
		`\b(free shipping|delivery fee)\b`,
		`\bhow long\b.*\b(deliver|shipping|delivery)\b`,
		`\b(delivery time|shipping time|arrive)\b`,
		`\bship to\b.*\b(postcode|suburb|location)\b`,
	)},
	{PaymentOptions, compileAll(
		`\b(payment|pay|paying)\b.*\b(method|option|way)\b`,
		`\bdo you accept\b.*\b(card|paypal|afterpay|zip)\b`,
		`\b(afterpay|zip pay|buy now pay later)\b`,
	)},
	{WarrantyInfo, compileAll(
		`\b(warranty|guarantee)\b`,
		`\bhow long\b.*\b(warranty|covered)\b`,
	)},
	{ContactInfo, compileAll(
		`\b(contact|call|phone|email|reach)\b.*\b(you|customer service|support)\b`,
		`\b(phone number|email address|contact details)\b`,
		`\bhow (can|do) i contact\b`,
		`\b(live chat|speak to|talk to)\b.*\b(someone|person|representative)\b`,
	)},
	{StoreHours, compileAll(
		`\b(open|opening|store)\b.*\b(hour|time)\b`,
		`\b(when|what time)\b.*\b(open|close)\b`,
		`\bare you open\b`,
	)},
	{StoreLocation, compileAll(
		`\b(where|location|address|store location)\b`,
		`\b(physical store|warehouse|pickup)\b`,
		`\bcan i visit\b`,
	)},
	{GeneralHelp, compileAll(
		`\b(help|assist|support)\b`,
		`\bwhat can you\b`,
		`\bhow does.*work\b`,
	)},
}

var greetingPatterns = compileAll(
	`^\s*(hello|hi|hey|g'day|greetings|good morning|good afternoon|good evening)\s*$`,
	`^\s*(hi|hey|hello)\s+(there|everyone|guys)\s*$`,
	`^\s*how\s+are\s+you\s*\??$`,
	`^\s*what'?s\s+up\s*\??$`,
	`^hi+$`,
	`^hey+$`,
	`^hello+$`,
	`^howdy$`,
)

var greetingExact = map[string]bool{
	"hi": true, "hello": true, "hey": true, "g'day": true, "greetings": true,
	"good morning": true, "good afternoon": true, "good evening": true,
	"howdy": true, "hi there": true, "hello there": true, "hey there": true,
}

// Side-by-side requests outrank context references, since "compare the
// first one and the second one" also looks like a spec question.
var comparisonPatterns = compileAll(
	`\b(compare|comparison)\b`,
	`\bdifference(s)?\s+between\b`,
	`\bwhich\s+(one\s+)?is\s+(better|cheaper|bigger|larger|sturdier)\b`,
	`\b(vs\.?|versus)\b`,
)

// Questions about previously shown products are spec Q&A, not new search.
var contextReferencePatterns = compileAll(
	`\b(this|that|the|it)\s+(one|chair|table|desk|sofa|bed|product|item)`,
	`\b(first|second|third|last|option)\s+(one|chair|table|product)`,
	`\b(option|number)\s+\d+`,
	`\bmore (info|information|details|about)\s+(this|that|the|it)`,
	`\b(feature|spec|dimension|detail)s?\s+of\s+(this|that|the|it)`,
)

// Detector routes free-text messages to intents. Stateless.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// Detect returns the routed intent. Greetings and references to shown
// products take priority over the generic pattern scan; short unmatched
// messages fall out of scope.
func (d *Detector) Detect(message string) Type {
	lower := strings.TrimSpace(strings.ToLower(message))

	if greetingExact[lower] {
		return Greeting
	}

	for _, p := range comparisonPatterns {
		if p.MatchString(lower) {
			return Comparison
		}
	}

	for _, p := range contextReferencePatterns {
		if p.MatchString(lower) {
			return ProductSpecQA
		}
	}

	for _, p := range greetingPatterns {
		if p.MatchString(lower) {
			return Greeting
		}
	}

	for _, g := range patternGroups {
		for _, p := range g.patterns {
			if p.MatchString(lower) {
				return g.intent
			}
		}
	}

	if len(strings.Fields(message)) > 3 {
		return GeneralHelp
	}
	return OutOfScope
}

// Short attribute-only follow-ups ("in black", "under $300") narrow the
// previous search rather than starting a new one.
var refinementCuePatterns = compileAll(
	`\b(red|blue|green|yellow|black|white|brown|gray|grey|orange|purple|pink|beige|cream|navy|silver|gold)\b`,
	`\b(wood(en)?|metal(lic)?|leather|fabric|glass|rattan|plastic)\b`,
	`\b(modern|contemporary|industrial|minimalist|rustic|scandinavian|classic)\b`,
	`\b(cheaper|less\s+expensive|under|below|max(imum)?)\s*\$?\d*`,
	`\b(smaller|bigger|larger|wider|taller|compact)\b`,
)

// IsRefinement reports whether the message reads as a refinement of an
// earlier search. A fresh product word always means a new search.
func (d *Detector) IsRefinement(message string) bool {
	lower := strings.TrimSpace(strings.ToLower(message))
	if len(strings.Fields(lower)) > 6 {
		return false
	}
	for _, c := range categoryEntityKeywords {
		if containsAny(lower, c.keywords) {
			return false
		}
	}
	for _, p := range refinementCuePatterns {
		if p.MatchString(lower) {
			return true
		}
	}
	return false
}

var (
	categoryEntityKeywords = []struct {
		category string
		keywords []string
	}{
		{"chair", []string{"chair", "chairs", "seating"}},
		{"table", []string{"table", "tables", "desk", "desks"}},
		{"sofa", []string{"sofa", "sofas", "couch", "couches"}},
		{"bed", []string{"bed", "beds", "mattress"}},
		{"shelf", []string{"shelf", "shelves", "shelving", "bookcase"}},
		{"stool", []string{"stool", "stools", "bar stool"}},
		{"locker", []string{"locker", "lockers", "cabinet", "cabinets"}},
		{"storage", []string{"storage", "wardrobe", "dresser"}},
	}

	colorEntities = []string{
		"red", "blue", "green", "yellow", "black", "white", "brown", "gray", "grey",
		"orange", "purple", "pink", "beige", "cream", "navy", "silver", "gold",
	}
	materialEntities = []string{"wood", "metal", "leather", "fabric", "glass", "rattan", "plastic"}
	styleEntities    = []string{"modern", "contemporary", "industrial", "minimalist", "rustic", "scandinavian", "classic"}

	roomEntityKeywords = []struct {
		room     string
		keywords []string
	}{
		{"office", []string{"office", "workspace", "study"}},
		{"bedroom", []string{"bedroom", "bed room"}},
		{"living_room", []string{"living room", "lounge"}},
		{"dining_room", []string{"dining room", "dining"}},
		{"outdoor", []string{"outdoor", "patio", "garden"}},
	}

	priceUnderPattern = regexp.MustCompile(`(?:under|below|max(?:imum)?)\s*\$?(\d+)`)
	ordinalPattern    = regexp.MustCompile(`\b(first|second|third|fourth|fifth|1st|2nd|3rd|4th|5th|\d+)\b`)
	skuPattern        = regexp.MustCompile(`\b([A-Z]+-\d+)\b`)
	quantityPattern   = regexp.MustCompile(`\b(?:need|want|get|buy)\s+(\d+)`)
	postcodePattern   = regexp.MustCompile(`\b(\d{4})\b`)
)

var ordinalIndex = map[string]string{
	"first": "1", "second": "2", "third": "3", "fourth": "4", "fifth": "5",
	"1st": "1", "2nd": "2", "3rd": "3", "4th": "4", "5th": "5",
}

// ExtractEntities pulls the structured slots an intent needs from the
// message. Values are strings; numeric slots hold decimal text.
func (d *Detector) ExtractEntities(message string, intentType Type) map[string]string {
	entities := map[string]string{}
	lower := strings.ToLower(message)

	switch intentType {
	case ProductSearch:
		entities["query"] = message

		for _, c := range categoryEntityKeywords {
			if containsAny(lower, c.keywords) {
				entities["category"] = c.category
				break
			}
		}
		if m := priceUnderPattern.FindStringSubmatch(lower); m != nil {
			entities["price_max"] = m[1]
		}
		for _, color := range colorEntities {
			if strings.Contains(lower, color) {
				entities["color"] = color
				break
			}
		}
		for _, material := range materialEntities {
			if strings.Contains(lower, material) {
				entities["material"] = material
				break
			}
		}
		for _, style := range styleEntities {
			if strings.Contains(lower, style) {
				entities["style"] = style
				break
			}
		}
		for _, r := range roomEntityKeywords {
			if containsAny(lower, r.keywords) {
				entities["room_type"] = r.room
				break
			}
		}

	case ProductSpecQA:
		if m := skuPattern.FindStringSubmatch(message); m != nil {
			entities["product_reference"] = m[1]
			entities["reference_type"] = "sku"
		} else if m := ordinalPattern.FindStringSubmatch(lower); m != nil {
			entities["product_reference"] = normalizeOrdinal(m[1])
			entities["reference_type"] = "index"
		}
		entities["question"] = message

	case CartAdd:
		if m := ordinalPattern.FindStringSubmatch(lower); m != nil {
			entities["product_reference"] = normalizeOrdinal(m[1])
			entities["reference_type"] = "index"
		}
		if m := quantityPattern.FindStringSubmatch(lower); m != nil {
			entities["quantity"] = m[1]
		} else {
			entities["quantity"] = "1"
		}

	case ShippingInfo:
		if m := postcodePattern.FindStringSubmatch(message); m != nil {
			entities["postcode"] = m[1]
		}
	}

	return entities
}

func normalizeOrdinal(word string) string {
	if v, ok := ordinalIndex[word]; ok {
		return v
	}
	if _, err := strconv.Atoi(word); err == nil {
		return word
	}
	return word
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
