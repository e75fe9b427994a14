package morfo

// Family selects the morphology resolver for a language card. The set is
// closed: morphology.New refuses unknown families so that adding one is a
// compile-and-config change, not a silent fallthrough.
type Family string

func (f Family) Valid() bool {
	switch f {
	case FamilyAgglutinative, FamilyRomance, FamilySlavic, FamilySemitic, FamilyBantu,
		FamilyCeltic, FamilyDravidian, FamilyGermanic, FamilyIndoAryan, FamilyIranic,
		FamilyIsolating, FamilyJaponic, FamilyKoreanic, FamilyPolysynthetic, FamilyAustronesian:
		return true
	default:
		return false
	}
}

const (
	FamilyAgglutinative Family = "agglutinative"
	FamilyRomance       Family = "romance"
	FamilySlavic        Family = "slavic"
	FamilySemitic       Family = "semitic"
	FamilyBantu         Family = "bantu"
	FamilyCeltic        Family = "celtic"
	FamilyDravidian     Family = "dravidian"
	FamilyGermanic      Family = "germanic"
	FamilyIndoAryan     Family = "indo_aryan"
	FamilyIranic        Family = "iranic"
	FamilyIsolating     Family = "isolating"
	FamilyJaponic       Family = "japonic"
	FamilyKoreanic      Family = "koreanic"
	FamilyPolysynthetic Family = "polysynthetic"
	FamilyAustronesian  Family = "austronesian"
)

// Gender is the natural gender carried by the semantic input. Grammatical
// gender is a card concern and never appears in slots.
type Gender string

func (g Gender) Valid() bool {
	switch g {
	case GenderMale, GenderFemale, GenderUnspecified:
		return true
	default:
		return false
	}
}

// Key returns the lookup key used against card tables. Unspecified gender
// resolves as the base (male) form, matching the reference data.
func (g Gender) Key() string {
	if g == GenderFemale {
		return string(GenderFemale)
	}

	return string(GenderMale)
}

const (
	GenderMale        Gender = "male"
	GenderFemale      Gender = "female"
	GenderUnspecified Gender = "unspecified"
)

type Tense string

const (
	TensePresent Tense = "present"
	TensePast    Tense = "past"
	TenseFuture  Tense = "future"
)

type Person string

const (
	PersonFirst  Person = "1"
	PersonSecond Person = "2"
	PersonThird  Person = "3"
)

type Number string

const (
	NumberSingular Number = "singular"
	NumberPlural   Number = "plural"
)

// CopulaType decides how (and whether) the copula surfaces.
type CopulaType string

const (
	// CopulaZero renders as the empty string; normalization guarantees no
	// stray whitespace where it was elided.
	CopulaZero CopulaType = "zero"
	// CopulaStandalone is a free word selected from the verbs.copula table.
	CopulaStandalone CopulaType = "standalone"
	// CopulaSuffix attaches to the preceding token (Turkish -dır, Korean 이다).
	CopulaSuffix CopulaType = "suffix"
)

// ArticleKind is the article requested for an NP, not its surface form.
type ArticleKind string

// None reports an absent article request; the zero value and the
// explicit "none" are equivalent.
func (k ArticleKind) None() bool {
	return k == "" || k == ArticleNone
}

const (
	ArticleNone       ArticleKind = "none"
	ArticleDefinite   ArticleKind = "definite"
	ArticleIndefinite ArticleKind = "indefinite"
	// ArticlePersonal marks proper names in languages that article them
	// (Tagalog si, Catalan en/na).
	ArticlePersonal ArticleKind = "personal"
)
