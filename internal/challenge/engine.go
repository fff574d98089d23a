package challenge

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/focusnest/focusgate/internal/domain"
)

// Service generates and grades unlock challenges. Challenges live only for
// the attempt they were issued for and are never persisted.
type Service interface {
	Generate(difficulty domain.Tier) (*domain.Challenge, error)
	Check(ch *domain.Challenge, answerIndex int) bool
}

type generator func() *domain.Challenge

type service struct {
	intn   func(n int) int
	recent *expirable.LRU[string, struct{}]

	easy   []generator
	medium []generator
	hard   []generator
}

// NewService creates a challenge engine backed by the default random source.
func NewService() Service {
	return NewServiceWithRand(rand.Intn)
}

// NewServiceWithRand creates a challenge engine with an injected random
// source. intn must behave like rand.Intn.
func NewServiceWithRand(intn func(n int) int) Service {
	s := &service{
		intn:   intn,
		recent: expirable.NewLRU[string, struct{}](RecentPromptCacheSize, nil, RecentPromptTTL),
	}
	s.easy = []generator{s.easyArithmetic, s.easyLargest, s.easyReflection}
	s.medium = []generator{s.mediumMultiStep, s.mediumSequence, s.mediumLogic}
	s.hard = []generator{s.hardRiddle, s.hardMemory}
	return s
}

// Generate picks a generator for the tier uniformly at random and runs it.
// Prompts seen recently are redrawn a few times so a retry after a failed
// attempt is not the same question again.
func (s *service) Generate(difficulty domain.Tier) (*domain.Challenge, error) {
	var gens []generator
	switch difficulty {
	case domain.TierEasy:
		gens = s.easy
	case domain.TierMedium:
		gens = s.medium
	case domain.TierHard:
		gens = s.hard
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, difficulty)
	}

	var ch *domain.Challenge
	for attempt := 0; attempt < MaxGenerateAttempts; attempt++ {
		ch = gens[s.intn(len(gens))]()
		if _, seen := s.recent.Get(ch.Prompt); !seen {
			break
		}
	}
	s.recent.Add(ch.Prompt, struct{}{})
	return ch, nil
}

// Check grades a selected option index. Intent challenges on the easy tier
// accept every option.
func (s *service) Check(ch *domain.Challenge, answerIndex int) bool {
	if ch.Type == domain.ChallengeIntent && ch.Difficulty == domain.TierEasy {
		return answerIndex >= 0 && answerIndex < len(ch.Options)
	}
	return answerIndex == ch.CorrectAnswer
}

// randRange returns a uniform integer in [min, max] inclusive.
func (s *service) randRange(min, max int) int {
	return min + s.intn(max-min+1)
}

// shuffleWithAnswer shuffles the correct option together with its
// distractors and reports where the correct one landed.
func (s *service) shuffleWithAnswer(correct string, distractors []string) ([]string, int) {
	all := make([]string, 0, len(distractors)+1)
	all = append(all, correct)
	all = append(all, distractors...)
	for i := len(all) - 1; i > 0; i-- {
		j := s.intn(i + 1)
		all[i], all[j] = all[j], all[i]
	}
	for i, opt := range all {
		if opt == correct {
			return all, i
		}
	}
	return all, 0
}

// numericDistractors produces DistractorCount distinct wrong numbers near
// the correct result, offset uniformly within [-spread, spread].
func (s *service) numericDistractors(result, spread int) []string {
	correct := fmt.Sprint(result)
	seen := map[string]struct{}{}
	out := make([]string, 0, DistractorCount)
	for len(out) < DistractorCount {
		d := fmt.Sprint(result + s.randRange(-spread, spread))
		if d == correct {
			continue
		}
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}

func challengeID(prefix string) string {
	return prefix + "_" + strings.Split(uuid.NewString(), "-")[0]
}
