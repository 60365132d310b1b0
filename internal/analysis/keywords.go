package analysis

// The keyword tables below are the static rule base for every extractor in
// this package. They are compiled once at package init and never mutated.
//
// Order matters for emotions: classification is a stable argmax, and ties
// at the maximum score resolve to the emotion declared first. Themes and
// symbol categories are order-insensitive (presence tests), but keeping
// them in slices gives deterministic iteration for output and tests.

// emotionEntry pairs an emotion label with its indicator keywords.
type emotionEntry struct {
	label    string
	keywords []string
}

// emotionTable is the ordered emotion rule base. The declared order is the
// tie-break contract: joy beats fear beats anger, and so on, when scores tie.
var emotionTable = []emotionEntry{
	{"joy", []string{
		"happy", "joy", "joyful", "excited", "wonderful", "amazing",
		"great", "fantastic", "love", "loving", "bliss", "euphoric",
		"delighted", "cheerful", "elated", "thrilled",
	}},
	{"fear", []string{
		"scared", "afraid", "terrified", "nightmare", "horror",
		"panic", "frightened", "anxious", "worried", "nervous",
		"dread", "terror", "phobia", "fearful",
	}},
	{"anger", []string{
		"angry", "mad", "furious", "rage", "annoyed", "frustrated",
		"irritated", "upset", "hostile", "aggressive", "violent",
		"outraged", "livid", "enraged",
	}},
	{"sadness", []string{
		"sad", "depressed", "crying", "tears", "lonely", "grief",
		"sorrow", "melancholy", "miserable", "heartbroken",
		"devastated", "mourning", "despair",
	}},
	{"anxiety", []string{
		"worried", "anxious", "nervous", "stress", "stressed",
		"tension", "uneasy", "restless", "agitated", "troubled",
		"concerned", "apprehensive",
	}},
	{"love", []string{
		"love", "loving", "romantic", "romance", "affection",
		"tender", "caring", "passionate", "intimate", "adore",
		"cherish", "devotion",
	}},
	{"surprise", []string{
		"surprised", "shock", "shocked", "amazed", "astonished",
		"stunned", "bewildered", "confused", "unexpected",
		"sudden", "startled",
	}},
}

// EmotionNeutral is the label produced when no emotion keyword matches.
const EmotionNeutral = "neutral"

// EmotionLabels returns every emotion label the classifier can produce,
// in declared order, with neutral last.
func EmotionLabels() []string {
	labels := make([]string, 0, len(emotionTable)+1)
	for _, e := range emotionTable {
		labels = append(labels, e.label)
	}
	return append(labels, EmotionNeutral)
}

// themeEntry pairs a theme tag with its indicator keywords.
type themeEntry struct {
	tag      string
	keywords []string
}

// themeTable is the fixed theme vocabulary. A theme is present when any of
// its keywords occurs as a case-insensitive substring of the text.
var themeTable = []themeEntry{
	{"flying", []string{
		"fly", "flying", "soar", "soaring", "wings", "air", "sky",
		"floating", "levitate", "hovering", "glide", "gliding",
	}},
	{"falling", []string{
		"fall", "falling", "drop", "dropping", "cliff", "height",
		"plummet", "tumble", "tumbling", "descent",
	}},
	{"chase", []string{
		"chase", "chasing", "run", "running", "escape", "escaping",
		"pursue", "pursuing", "follow", "following", "hunt", "hunting",
	}},
	{"water", []string{
		"water", "ocean", "sea", "river", "lake", "swim", "swimming",
		"drown", "drowning", "flood", "flooding", "rain", "storm",
	}},
	{"animals", []string{
		"dog", "cat", "bird", "snake", "lion", "tiger", "bear",
		"wolf", "horse", "elephant", "animal", "pet", "wild",
	}},
	{"death", []string{
		"death", "die", "dying", "dead", "funeral", "grave",
		"cemetery", "corpse", "ghost", "spirit",
	}},
	{"school", []string{
		"school", "teacher", "exam", "test", "classroom", "student",
		"homework", "grade", "university", "college",
	}},
	{"work", []string{
		"work", "office", "boss", "meeting", "job", "career",
		"colleague", "workplace", "business", "professional",
	}},
	{"family", []string{
		"mother", "father", "mom", "dad", "family", "parent",
		"sibling", "brother", "sister", "child", "relative",
	}},
	{"house", []string{
		"house", "home", "room", "bedroom", "kitchen", "bathroom",
		"door", "window", "stairs", "basement", "attic",
	}},
	{"vehicle", []string{
		"car", "truck", "bus", "train", "plane", "airplane",
		"boat", "ship", "bicycle", "motorcycle", "vehicle",
	}},
	{"food", []string{
		"food", "eat", "eating", "meal", "dinner", "lunch",
		"breakfast", "restaurant", "kitchen", "cooking",
	}},
}

// ThemeVocabulary returns the fixed set of theme tags in declared order.
func ThemeVocabulary() []string {
	tags := make([]string, len(themeTable))
	for i, t := range themeTable {
		tags[i] = t.tag
	}
	return tags
}

// lucidityIndicators are phrases whose presence suggests the dreamer was
// aware of dreaming. Multi-word phrases are matched as whole substrings.
var lucidityIndicators = []string{
	"realized", "aware", "conscious", "control", "lucid",
	"knew i was dreaming", "reality check", "dream sign",
	"became aware", "took control", "dream control",
	"lucid dreaming", "wake up in dream",
}

// symbolCategory groups dream symbols used by the complexity scorer.
type symbolCategory struct {
	name    string
	symbols []string
}

// symbolTable holds the six symbol categories for the density metric.
// Each (category, keyword) pair counts at most once per text.
var symbolTable = []symbolCategory{
	{"water", []string{"ocean", "river", "lake", "rain", "flood", "swimming"}},
	{"flying", []string{"fly", "soar", "wings", "floating", "levitate"}},
	{"animals", []string{"dog", "cat", "bird", "snake", "lion", "bear", "wolf"}},
	{"people", []string{"friend", "family", "stranger", "crowd", "person"}},
	{"places", []string{"house", "school", "work", "city", "forest", "mountain"}},
	{"emotions", []string{"happy", "sad", "angry", "scared", "excited", "worried"}},
}

// stopWords are excluded from keyword extraction.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "in": {}, "on": {}, "at": {},
	"to": {}, "for": {}, "of": {}, "with": {}, "by": {}, "from": {}, "up": {},
	"about": {}, "into": {}, "through": {}, "during": {}, "before": {},
	"after": {}, "above": {}, "below": {}, "between": {}, "among": {},
	"throughout": {}, "despite": {}, "towards": {}, "upon": {},
	"concerning": {}, "was": {}, "were": {}, "been": {}, "have": {},
	"has": {}, "had": {}, "do": {}, "does": {}, "did": {}, "will": {},
	"would": {}, "could": {}, "should": {}, "may": {}, "might": {},
	"must": {}, "can": {}, "shall": {}, "this": {}, "that": {},
	"these": {}, "those": {},
}
