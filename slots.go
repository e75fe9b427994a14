package morfo

// SemanticSlots is the language-neutral input for the one-sentence
// biography path. Lemmas arrive already resolved by the lexicon
// collaborator; a missing lemma is the concept ID passed through as a
// literal string.
type SemanticSlots struct {
	Name        string `json:"name" yaml:"name"`
	Gender      Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	Profession  string `json:"profession" yaml:"profession"`
	Nationality string `json:"nationality,omitempty" yaml:"nationality,omitempty"`
}

// Features is the feature bundle attached to a lemma when it is realized.
// Zero values mean "unmarked"; resolvers fall back rather than fail.
type Features struct {
	Gender Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	Case   string `json:"case,omitempty" yaml:"case,omitempty"`
	// Class is the noun class for class-prefix languages.
	Class  string `json:"class,omitempty" yaml:"class,omitempty"`
	Number Number `json:"number,omitempty" yaml:"number,omitempty"`
	Person Person `json:"person,omitempty" yaml:"person,omitempty"`
	Tense  Tense  `json:"tense,omitempty" yaml:"tense,omitempty"`
}

// Key is the feature key used against irregular and suffix-rule tables:
// case wins over noun class, which wins over gender.
func (f Features) Key() string {
	if f.Case != "" {
		return f.Case
	}
	if f.Class != "" {
		return f.Class
	}

	return f.Gender.Key()
}

// NP is a role-tagged noun-phrase bundle used by constructions.
type NP struct {
	Lemma    string      `json:"lemma" yaml:"lemma"`
	Features Features    `json:"features,omitempty" yaml:"features,omitempty"`
	Article  ArticleKind `json:"article,omitempty" yaml:"article,omitempty"`
	// Adjective is an optional attributive modifier lemma agreeing with
	// the head.
	Adjective string `json:"adjective,omitempty" yaml:"adjective,omitempty"`
	// Name marks the NP as a proper name: no inflection, personal
	// article where the language uses one.
	Name bool `json:"name,omitempty" yaml:"name,omitempty"`
}

// IsZero reports an absent NP slot.
func (np NP) IsZero() bool {
	return np.Lemma == ""
}

// CopulaFeatures index the card's copula table.
type CopulaFeatures struct {
	Tense  Tense  `json:"tense,omitempty" yaml:"tense,omitempty"`
	Person Person `json:"person,omitempty" yaml:"person,omitempty"`
	Number Number `json:"number,omitempty" yaml:"number,omitempty"`
	Gender Gender `json:"gender,omitempty" yaml:"gender,omitempty"`
	Level  string `json:"level,omitempty" yaml:"level,omitempty"`
}

// Keys returns the copula table path in its fixed resolution order.
func (f CopulaFeatures) Keys() []string {
	tense := f.Tense
	if tense == "" {
		tense = TensePresent
	}
	person := f.Person
	if person == "" {
		person = PersonThird
	}
	number := f.Number
	if number == "" {
		number = NumberSingular
	}
	level := f.Level
	if level == "" {
		level = "default"
	}

	return []string{string(tense), string(person), string(number), f.Gender.Key(), level}
}
