// Package extract turns raw message text into typed candidate values for the
// planning flow: cooking durations, monetary amounts, ingredient candidates, a
// dietary goal tag and a coarse command category. Extraction is rule-based:
// regular expressions plus a part-of-speech pass for food nouns.
package extract

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	prose "github.com/jdkato/prose/v2"
)

// Command is a coarse classification of what the user seems to be asking for.
type Command string

const (
	CommandNewPlan  Command = "new_plan"
	CommandShowPlan Command = "show_plan"
	CommandEditPlan Command = "edit_plan"
)

// Entities holds every candidate value found in a single message. Duration and
// money matches are accumulated across all patterns in order of appearance;
// callers treat the first entry as authoritative and ignore the rest.
type Entities struct {
	Time        []int     // minutes
	Money       []float64 // currency-agnostic amounts
	Ingredients []string  // lowercased, deduplicated, sorted
	Goal        string    // goal tag, or "" when none matched
	Command     Command   // "" when no category matched
}

type commandPattern struct {
	command Command
	re      *regexp.Regexp
}

// Checked in order; the first match wins.
var commandPatterns = []commandPattern{
	{CommandNewPlan, regexp.MustCompile(`(want|need|create|make).*(meal|food|plan|diet)|create.*(?:low-carb|high-protein|keto)`)},
	{CommandShowPlan, regexp.MustCompile(`(show|display|view|see).*plan`)},
	{CommandEditPlan, regexp.MustCompile(`(edit|modify|change|update).*plan`)},
}

// The bare numeric-plus-unit pattern overlaps with the verb-anchored ones, so a
// phrase like "have 30 minutes" is appended twice. Only the first entry is used
// downstream; the duplicates are collected and discarded.
var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*(minutes?|mins?|hours?|hrs?)`),
	regexp.MustCompile(`(?i)have\s*(\d+)\s*(minutes?|mins?|hours?|hrs?)`),
	regexp.MustCompile(`(?i)takes?\s*(\d+)\s*(minutes?|mins?|hours?|hrs?)`),
	regexp.MustCompile(`(?i)spend\s*(\d+)\s*(minutes?|mins?|hours?|hrs?)`),
}

var moneyPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\$?\s*(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`budget.*?(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`costs?.*?\$?\s*(\d+(?:\.\d{2})?)`),
	regexp.MustCompile(`spend.*?\$?\s*(\d+(?:\.\d{2})?)`),
}

var ingredientPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:have|got|with)\s*((?:[a-zA-Z]+(?:,\s*)?)+)`),
	regexp.MustCompile(`ingredients?:?\s*((?:[a-zA-Z]+(?:,\s*)?)+)`),
	regexp.MustCompile(`using\s*((?:[a-zA-Z]+(?:,\s*)?)+)`),
	regexp.MustCompile(`cook(?:ing)?\s*with\s*((?:[a-zA-Z]+(?:,\s*)?)+)`),
}

type goalPattern struct {
	tag string
	re  *regexp.Regexp
}

// Checked in order; the first match wins. Separators tolerate spaces,
// hyphens and underscores ("low carb", "low-carb", "low_carb").
var goalPatterns = []goalPattern{
	{"low_carb", regexp.MustCompile(`low[\s_-]*carb|low[\s_-]*carbon?hydrates?`)},
	{"high_protein", regexp.MustCompile(`high[\s_-]*protein|protein[\s_-]*rich`)},
	{"keto", regexp.MustCompile(`keto(?:genic)?`)},
	{"low_fat", regexp.MustCompile(`low[\s_-]*fat|reduced[\s_-]*fat`)},
	{"low_calorie", regexp.MustCompile(`low[\s_-]*cal(?:orie)?s?|diet[\s_-]*friendly`)},
}

// Extract scans text for all recognized entity kinds. It is a pure function of
// its input and never fails: unparseable fragments are simply skipped.
func Extract(text string) Entities {
	textLower := strings.ToLower(text)

	entities := Entities{}

	for _, cp := range commandPatterns {
		if cp.re.MatchString(textLower) {
			entities.Command = cp.command
			break
		}
	}

	for _, re := range timePatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			value, err := strconv.Atoi(match[1])
			if err != nil {
				continue
			}
			if strings.Contains(strings.ToLower(match[2]), "hour") || strings.Contains(strings.ToLower(match[2]), "hr") {
				value *= 60
			}
			entities.Time = append(entities.Time, value)
		}
	}

	for _, re := range moneyPatterns {
		for _, match := range re.FindAllStringSubmatch(text, -1) {
			value, err := strconv.ParseFloat(match[1], 64)
			if err != nil {
				continue
			}
			entities.Money = append(entities.Money, value)
		}
	}

	seen := make(map[string]struct{})
	for _, word := range foodNouns(text) {
		seen[word] = struct{}{}
	}
	for _, re := range ingredientPatterns {
		for _, match := range re.FindAllStringSubmatch(textLower, -1) {
			for _, part := range strings.Split(match[1], ",") {
				part = strings.TrimSpace(part)
				if part != "" {
					seen[part] = struct{}{}
				}
			}
		}
	}
	for word := range seen {
		entities.Ingredients = append(entities.Ingredients, word)
	}
	sort.Strings(entities.Ingredients)

	for _, gp := range goalPatterns {
		if gp.re.MatchString(textLower) {
			entities.Goal = gp.tag
			break
		}
	}

	return entities
}

// foodNouns runs a part-of-speech pass over the text and returns the nouns
// that look like food words. The tagger alone cannot tell food from furniture,
// so candidates are restricted to a fixed lexicon of common ingredients.
func foodNouns(text string) []string {
	doc, err := prose.NewDocument(text,
		prose.WithExtraction(false),
		prose.WithSegmentation(false))
	if err != nil {
		return nil
	}

	var nouns []string
	for _, tok := range doc.Tokens() {
		if !strings.HasPrefix(tok.Tag, "NN") {
			continue
		}
		word := strings.ToLower(tok.Text)
		if _, ok := foodLexicon[word]; ok {
			nouns = append(nouns, word)
		}
	}
	return nouns
}
