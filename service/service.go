package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/morfo-lang/morfo"
	"github.com/morfo-lang/morfo/construction"
	"github.com/morfo-lang/morfo/morphology"
	"go.uber.org/zap"
)

const renderWorkers = 3

// Service fans render requests out over target languages. All state it
// touches is read-only after startup, so calls are safe to run
// concurrently.
type Service struct {
	Lexicon morfo.Lexicon
	Cards   CardSource
	Logger  *zap.Logger
}

// BioRequest asks for the one-sentence biography in each listed
// language. Empty Languages means every loaded card. Profession and
// Nationality are concept IDs for the lexicon; an unresolvable ID is
// used as a literal lemma.
type BioRequest struct {
	Name        string       `json:"name"`
	Gender      morfo.Gender `json:"gender,omitempty"`
	Profession  string       `json:"profession"`
	Nationality string       `json:"nationality,omitempty"`
	Languages   []string     `json:"languages,omitempty"`
}

type BioResult struct {
	Language string `json:"language"`
	Text     string `json:"text"`
	Error    string `json:"error,omitempty"`
}

func (s *Service) Languages(ctx context.Context) ([]*morfo.Card, error) {
	return s.Cards.ListCards(ctx)
}

// RenderBio renders the request across languages with a fixed worker
// pool; results come back in request order.
func (s *Service) RenderBio(ctx context.Context, req BioRequest) ([]BioResult, error) {
	if req.Gender != "" && !req.Gender.Valid() {
		return nil, fmt.Errorf("unsupported gender %q", req.Gender)
	}

	languages := req.Languages
	if len(languages) == 0 {
		cards, err := s.Cards.ListCards(ctx)
		if err != nil {
			return nil, err
		}
		languages = make([]string, 0, len(cards))
		for _, card := range cards {
			languages = append(languages, card.Language)
		}
	}

	reqID := requestID()
	results := make([]BioResult, len(languages))

	wg := &sync.WaitGroup{}
	nextIndex := int32(-1)
	for i := 0; i < renderWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			i := int(atomic.AddInt32(&nextIndex, 1))
			for i < len(languages) {
				results[i] = s.renderBioIn(ctx, languages[i], req)
				i = int(atomic.AddInt32(&nextIndex, 1))
			}
		}()
	}
	wg.Wait()

	if s.Logger != nil {
		s.Logger.Debug("rendered bio",
			zap.String("request_id", reqID),
			zap.String("name", req.Name),
			zap.Int("languages", len(languages)),
		)
	}

	return results, nil
}

func (s *Service) renderBioIn(ctx context.Context, language string, req BioRequest) BioResult {
	res := BioResult{Language: language}

	card, err := s.Cards.Card(ctx, language)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	resolver, err := morphology.New(card)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	profession, err := s.lemma(ctx, req.Profession, language)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	nationality, err := s.lemma(ctx, req.Nationality, language)
	if err != nil {
		res.Error = err.Error()
		return res
	}

	res.Text = resolver.RenderBio(morfo.SemanticSlots{
		Name:        req.Name,
		Gender:      req.Gender,
		Profession:  profession,
		Nationality: nationality,
	})

	return res
}

// lemma resolves a concept ID through the lexicon. A missing lexicon or
// lexeme degrades to the ID itself; schema and config errors surface.
func (s *Service) lemma(ctx context.Context, conceptID, language string) (string, error) {
	if conceptID == "" || s.Lexicon == nil {
		return conceptID, nil
	}

	lexeme, err := s.Lexicon.Lexeme(ctx, conceptID, language)
	if errors.Is(err, morfo.ErrLexemeNotFound) || errors.Is(err, morfo.ErrLexiconNotFound) {
		return conceptID, nil
	} else if err != nil {
		return "", err
	}

	return lexeme.Lemma, nil
}

// ClauseRequest renders one construction pattern in one language. Only
// the slot bundle matching Pattern needs to be set.
type ClauseRequest struct {
	Language string `json:"language"`
	Pattern  string `json:"pattern"`

	Attributive *construction.AttributiveSlots `json:"attributive,omitempty"`
	PredicateNP *construction.PredicateNPSlots `json:"predicateNp,omitempty"`
	Locative    *construction.LocativeSlots    `json:"locative,omitempty"`
	Existential *construction.ExistentialSlots `json:"existential,omitempty"`
	Possession  *construction.PossessionSlots  `json:"possession,omitempty"`
	Apposition  *construction.AppositionSlots  `json:"apposition,omitempty"`
	Relative    *construction.RelativeSlots    `json:"relative,omitempty"`
	Clauses     []string                       `json:"clauses,omitempty"`
}

func (s *Service) RenderClause(ctx context.Context, req ClauseRequest) (string, error) {
	card, err := s.Cards.Card(ctx, req.Language)
	if err != nil {
		return "", err
	}

	resolver, err := morphology.New(card)
	if err != nil {
		return "", err
	}
	profile := construction.ProfileFromCard(card)

	switch req.Pattern {
	case "attributive_adjective":
		if req.Attributive == nil {
			return "", fmt.Errorf("pattern %q needs the attributive slots", req.Pattern)
		}
		return construction.AttributiveAdjective(*req.Attributive, profile, resolver), nil
	case "attributive_np":
		if req.PredicateNP == nil {
			return "", fmt.Errorf("pattern %q needs the predicateNp slots", req.Pattern)
		}
		return construction.AttributiveNP(*req.PredicateNP, profile, resolver), nil
	case "equative":
		if req.PredicateNP == nil {
			return "", fmt.Errorf("pattern %q needs the predicateNp slots", req.Pattern)
		}
		return construction.Equative(*req.PredicateNP, profile, resolver), nil
	case "locative":
		if req.Locative == nil {
			return "", fmt.Errorf("pattern %q needs the locative slots", req.Pattern)
		}
		return construction.Locative(*req.Locative, profile, resolver), nil
	case "existential":
		if req.Existential == nil {
			return "", fmt.Errorf("pattern %q needs the existential slots", req.Pattern)
		}
		return construction.Existential(*req.Existential, profile, resolver), nil
	case "possession_have":
		if req.Possession == nil {
			return "", fmt.Errorf("pattern %q needs the possession slots", req.Pattern)
		}
		return construction.PossessionHave(*req.Possession, profile, resolver), nil
	case "possession_existential":
		if req.Possession == nil {
			return "", fmt.Errorf("pattern %q needs the possession slots", req.Pattern)
		}
		return construction.PossessionExistential(*req.Possession, profile, resolver), nil
	case "apposition":
		if req.Apposition == nil {
			return "", fmt.Errorf("pattern %q needs the apposition slots", req.Pattern)
		}
		return construction.Apposition(*req.Apposition, profile, resolver), nil
	case "relative_clause":
		if req.Relative == nil {
			return "", fmt.Errorf("pattern %q needs the relative slots", req.Pattern)
		}
		return construction.RelativeClause(*req.Relative, profile, resolver), nil
	case "coordination":
		return construction.Coordinate(req.Clauses, profile), nil
	default:
		return "", fmt.Errorf("unknown construction pattern %q", req.Pattern)
	}
}

func requestID() string {
	id := uuid.New()

	return base64.RawURLEncoding.EncodeToString(id[:])
}
