package morfo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Card is the per-language configuration tree driving a family resolver.
// Cards are immutable after DecodeCard returns; resolvers only read them.
// The schema is additive: unknown keys in the source document are ignored.
type Card struct {
	Language   string          `json:"language" yaml:"language"`
	Name       string          `json:"name,omitempty" yaml:"name,omitempty"`
	Family     Family          `json:"family" yaml:"family"`
	Phonetics  Phonetics       `json:"phonetics,omitempty" yaml:"phonetics,omitempty"`
	Morphology MorphologyRules `json:"morphology,omitempty" yaml:"morphology,omitempty"`
	Syntax     Syntax          `json:"syntax,omitempty" yaml:"syntax,omitempty"`
	Verbs      Verbs           `json:"verbs,omitempty" yaml:"verbs,omitempty"`
	Articles   Articles        `json:"articles,omitempty" yaml:"articles,omitempty"`
	Structure  string          `json:"structure,omitempty" yaml:"structure,omitempty"`
}

type Phonetics struct {
	// Vowels is the language's vowel inventory as a rune set. Empty means
	// the plain Latin five.
	Vowels string `json:"vowels,omitempty" yaml:"vowels,omitempty"`
	// HarmonyGroups maps a group name to the vowels that trigger it.
	HarmonyGroups map[string][]string `json:"harmonyGroups,omitempty" yaml:"harmony_groups,omitempty"`
	// CharClasses are named character/cluster sets matched against stem
	// edges (Italian impure clusters, Arabic sun letters, ...).
	CharClasses map[string][]string `json:"charClasses,omitempty" yaml:"char_classes,omitempty"`
	// Connector is the buffer inserted between vowel-final stem and
	// vowel-initial suffix (Ezafe glide, Dravidian euphonic y/v).
	Connector string `json:"connector,omitempty" yaml:"connector,omitempty"`
	// SilentFinals are word-final consonants treated as vowel-equivalent
	// (the Persian silent he).
	SilentFinals string `json:"silentFinals,omitempty" yaml:"silent_finals,omitempty"`
	// DefaultVowel is the trigger vowel assumed for stems without one.
	DefaultVowel string `json:"defaultVowel,omitempty" yaml:"default_vowel,omitempty"`
}

// VowelSet returns the effective vowel inventory.
func (p *Phonetics) VowelSet() string {
	if p.Vowels != "" {
		return p.Vowels
	}

	return latinVowels
}

type MorphologyRules struct {
	// CaseSensitive controls irregular lookup; the default (false) folds
	// the lemma before matching.
	CaseSensitive bool `json:"caseSensitive,omitempty" yaml:"case_sensitive,omitempty"`
	// Irregulars short-circuit all suffix rules: feature key → lemma → form.
	Irregulars map[string]map[string]string `json:"irregulars,omitempty" yaml:"irregulars,omitempty"`
	// SuffixRules per feature key, applied longest ending first.
	SuffixRules map[string][]SuffixRule `json:"suffixRules,omitempty" yaml:"suffix_rules,omitempty"`
	// Suffixes are attachable morphemes by type (case markers, particles,
	// harmony copulas), each an invariant string or a variant map.
	Suffixes map[string]SuffixSpec `json:"suffixes,omitempty" yaml:"suffixes,omitempty"`
	// Verbalizers turn a noun root into a predicate (polysynthetic).
	Verbalizers map[string]SuffixSpec `json:"verbalizers,omitempty" yaml:"verbalizers,omitempty"`
	// PersonMarks are person/number endings keyed like "3singular".
	PersonMarks map[string]SuffixSpec `json:"personMarks,omitempty" yaml:"person_marks,omitempty"`
	// NounClasses for class-prefix languages, keyed by class name.
	NounClasses map[string]NounClass `json:"nounClasses,omitempty" yaml:"noun_classes,omitempty"`
	// DefaultClass is the noun class assumed for human referents when
	// the input does not carry one.
	DefaultClass string `json:"defaultClass,omitempty" yaml:"default_class,omitempty"`
	// Mutations map an initial grapheme to its mutated form (Celtic
	// lenition after the article).
	Mutations map[string]string `json:"mutations,omitempty" yaml:"mutations,omitempty"`
	// Deletions are stem-final characters dropped before a suffix fuses on.
	Deletions string `json:"deletions,omitempty" yaml:"deletions,omitempty"`
}

// Irregular looks up a lemma in the irregular table for a feature key.
func (m *MorphologyRules) Irregular(feature, lemma string) (string, bool) {
	table, ok := m.Irregulars[feature]
	if !ok {
		return "", false
	}

	if form, ok := table[lemma]; ok {
		return form, true
	}
	if !m.CaseSensitive {
		folded := strings.ToLower(lemma)
		for key, form := range table {
			if strings.ToLower(key) == folded {
				return form, true
			}
		}
	}

	return "", false
}

type SuffixRule struct {
	EndsWith    string `json:"endsWith" yaml:"ends_with"`
	ReplaceWith string `json:"replaceWith" yaml:"replace_with"`
}

// SuffixSpec is either an invariant string or a variant map. Map form uses
// the "default" key as the invariant fallback.
type SuffixSpec struct {
	Invariant string
	Variants  map[string]string
}

// Variant picks the form registered under key, falling back to the
// invariant/default form.
func (s SuffixSpec) Variant(key string) string {
	if v, ok := s.Variants[key]; ok {
		return v
	}

	return s.Invariant
}

func (s SuffixSpec) IsZero() bool {
	return s.Invariant == "" && len(s.Variants) == 0
}

func (s *SuffixSpec) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		s.Variants = nil
		return value.Decode(&s.Invariant)
	}

	if err := value.Decode(&s.Variants); err != nil {
		return err
	}
	s.Invariant = s.Variants["default"]

	return nil
}

func (s *SuffixSpec) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		s.Variants = nil
		return json.Unmarshal(data, &s.Invariant)
	}

	if err := json.Unmarshal(data, &s.Variants); err != nil {
		return err
	}
	s.Invariant = s.Variants["default"]

	return nil
}

func (s SuffixSpec) MarshalYAML() (interface{}, error) {
	if len(s.Variants) == 0 {
		return s.Invariant, nil
	}

	return s.Variants, nil
}

func (s SuffixSpec) MarshalJSON() ([]byte, error) {
	if len(s.Variants) == 0 {
		return json.Marshal(s.Invariant)
	}

	return json.Marshal(s.Variants)
}

type NounClass struct {
	Prefix string `json:"prefix" yaml:"prefix"`
	// AdjPrefix is the adjective concord; empty means same as Prefix.
	AdjPrefix string `json:"adjPrefix,omitempty" yaml:"adj_prefix,omitempty"`
	// VowelPrefix replaces Prefix before vowel-initial stems.
	VowelPrefix string `json:"vowelPrefix,omitempty" yaml:"vowel_prefix,omitempty"`
	Copula      string `json:"copula,omitempty" yaml:"copula,omitempty"`
}

type Syntax struct {
	// WordOrder is the default clause linearization for constructions,
	// e.g. [subject, copula, predicate].
	WordOrder []string `json:"wordOrder,omitempty" yaml:"word_order,omitempty"`
	// ConstructionOrders override WordOrder for a named construction.
	ConstructionOrders map[string][]string `json:"constructionOrders,omitempty" yaml:"construction_orders,omitempty"`
	DefaultTense     Tense      `json:"defaultTense,omitempty" yaml:"default_tense,omitempty"`
	SpeechLevel      string     `json:"speechLevel,omitempty" yaml:"speech_level,omitempty"`
	CopulaType       CopulaType `json:"copulaType,omitempty" yaml:"copula_type,omitempty"`
	ZeroCopulaTenses []Tense    `json:"zeroCopulaTenses,omitempty" yaml:"zero_copula_tenses,omitempty"`
	// Indefinite is the indefinite-marking strategy: none, article,
	// suffix or particle.
	Indefinite string `json:"indefinite,omitempty" yaml:"indefinite,omitempty"`
	// Adpositions is "pre", "post" or "none".
	Adpositions string `json:"adpositions,omitempty" yaml:"adpositions,omitempty"`
	// AdjectiveOrder places attributive adjectives "pre" or "post" the
	// head noun; empty means "pre".
	AdjectiveOrder   string `json:"adjectiveOrder,omitempty" yaml:"adjective_order,omitempty"`
	// AttachedArticles concatenates the article onto the head without a
	// space (Arabic al-, Hebrew ha-).
	AttachedArticles bool   `json:"attachedArticles,omitempty" yaml:"attached_articles,omitempty"`
	Punctuation      string `json:"punctuation,omitempty" yaml:"punctuation,omitempty"`
	PersonalArticle  string `json:"personalArticle,omitempty" yaml:"personal_article,omitempty"`
	NoSpaces         bool   `json:"noSpaces,omitempty" yaml:"no_spaces,omitempty"`
	SerialComma      bool   `json:"serialComma,omitempty" yaml:"serial_comma,omitempty"`
	Conjunction      string `json:"conjunction,omitempty" yaml:"conjunction,omitempty"`
	AppositionCommas string `json:"appositionCommas,omitempty" yaml:"apposition_commas,omitempty"`
	Ezafe            bool   `json:"ezafe,omitempty" yaml:"ezafe,omitempty"`
}

// TerminalMark returns the sentence-final punctuation, defaulting to a
// full stop.
func (s *Syntax) TerminalMark() string {
	if s.Punctuation != "" {
		return s.Punctuation
	}

	return "."
}

func (s *Syntax) Tense() Tense {
	if s.DefaultTense != "" {
		return s.DefaultTense
	}

	return TensePresent
}

// ZeroCopulaFor reports whether the copula is dropped in the given tense.
func (s *Syntax) ZeroCopulaFor(tense Tense) bool {
	if s.CopulaType == CopulaZero {
		return true
	}
	for _, t := range s.ZeroCopulaTenses {
		if t == tense {
			return true
		}
	}

	return false
}

type Verbs struct {
	// Copula resolves through tense → person → number → gender → speech
	// level, with a "default" branch honored at every level.
	Copula FallbackNode `json:"copula,omitempty" yaml:"copula,omitempty"`
	// Forms are per-lemma verb tables resolved the same way.
	Forms map[string]FallbackNode `json:"forms,omitempty" yaml:"forms,omitempty"`
}

type Articles struct {
	Definite   map[string]ArticleForm `json:"definite,omitempty" yaml:"definite,omitempty"`
	Indefinite map[string]ArticleForm `json:"indefinite,omitempty" yaml:"indefinite,omitempty"`
}

// Form fetches the article paradigm for a gender key, falling back to the
// table's "default" entry.
func (a *Articles) Form(kind ArticleKind, genderKey string) (ArticleForm, bool) {
	var table map[string]ArticleForm
	switch kind {
	case ArticleDefinite:
		table = a.Definite
	case ArticleIndefinite:
		table = a.Indefinite
	default:
		return ArticleForm{}, false
	}

	if form, ok := table[genderKey]; ok {
		return form, true
	}
	form, ok := table["default"]

	return form, ok
}

type ArticleForm struct {
	Default string `json:"default" yaml:"default"`
	// VowelInitial is used before vowel-initial heads (l', un').
	VowelInitial string `json:"vowelInitial,omitempty" yaml:"vowel_initial,omitempty"`
	// Impure is used before the card's "impure" consonant clusters (lo, uno).
	Impure string `json:"impure,omitempty" yaml:"impure,omitempty"`
	// Stressed is used before stressed-vowel heads.
	Stressed string `json:"stressed,omitempty" yaml:"stressed,omitempty"`
}

// FallbackNode is a lookup tree whose every branch may carry a "default"
// child. Resolve never fails: a missing branch degrades to the nearest
// default, and a tree with no matching path resolves to the empty string.
type FallbackNode struct {
	Leaf     string
	Children map[string]FallbackNode
}

func (n FallbackNode) Resolve(keys ...string) string {
	cur := n
	for _, key := range keys {
		if len(cur.Children) == 0 {
			break
		}

		if child, ok := cur.Children[key]; ok {
			cur = child
			continue
		}
		if child, ok := cur.Children["default"]; ok {
			cur = child
			continue
		}
		// The table does not represent this level at all; skip the key
		// so shallow tables (e.g. keyed by gender only) still resolve.
	}

	for len(cur.Children) > 0 {
		child, ok := cur.Children["default"]
		if !ok {
			return cur.Leaf
		}
		cur = child
	}

	return cur.Leaf
}

func (n FallbackNode) IsZero() bool {
	return n.Leaf == "" && len(n.Children) == 0
}

func (n *FallbackNode) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		n.Children = nil
		return value.Decode(&n.Leaf)
	}

	n.Leaf = ""
	return value.Decode(&n.Children)
}

func (n *FallbackNode) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		n.Children = nil
		return json.Unmarshal(data, &n.Leaf)
	}

	n.Leaf = ""
	return json.Unmarshal(data, &n.Children)
}

func (n FallbackNode) MarshalYAML() (interface{}, error) {
	if len(n.Children) == 0 {
		return n.Leaf, nil
	}

	return n.Children, nil
}

func (n FallbackNode) MarshalJSON() ([]byte, error) {
	if len(n.Children) == 0 {
		return json.Marshal(n.Leaf)
	}

	return json.Marshal(n.Children)
}

// DecodeCard parses a card from YAML or JSON (yaml.v3 accepts both),
// validates the family, and normalizes rule ordering so resolvers can
// rely on longest-ending-first suffix rules.
func DecodeCard(data []byte) (*Card, error) {
	card := new(Card)
	if err := yaml.Unmarshal(data, card); err != nil {
		return nil, err
	}

	if !card.Family.Valid() {
		return nil, fmt.Errorf("%w: %q (language %q)", ErrUnknownFamily, card.Family, card.Language)
	}

	card.normalize()

	return card, nil
}

func (c *Card) normalize() {
	for key := range c.Morphology.SuffixRules {
		rules := c.Morphology.SuffixRules[key]
		sort.SliceStable(rules, func(i, j int) bool {
			return len(rules[i].EndsWith) > len(rules[j].EndsWith)
		})
	}
}
