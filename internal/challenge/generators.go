package challenge

import (
	"fmt"
	"strings"

	"github.com/focusnest/focusgate/internal/domain"
)

func (s *service) easyArithmetic() *domain.Challenge {
	a := s.randRange(2, 20)
	b := s.randRange(2, 20)
	ops := []struct {
		sym    string
		result int
	}{
		{"+", a + b},
		{"-", a - b},
		{"×", a * b},
	}
	op := ops[s.intn(len(ops))]
	options, answer := s.shuffleWithAnswer(fmt.Sprint(op.result), s.numericDistractors(op.result, 5))
	return &domain.Challenge{
		ID:            challengeID("easy_arith"),
		Type:          domain.ChallengeArithmetic,
		Difficulty:    domain.TierEasy,
		Prompt:        fmt.Sprintf("What is %d %s %d?", a, op.sym, b),
		Options:       options,
		CorrectAnswer: answer,
		TimeLimitSec:  EasyArithmeticTimeLimitSec,
		PointsReward:  EasyPointsReward,
	}
}

func (s *service) easyLargest() *domain.Challenge {
	// Distinct values, so a unique largest always exists and three
	// distractors are always available.
	seen := map[int]struct{}{}
	nums := make([]int, 0, 6)
	for len(nums) < 6 {
		n := s.randRange(10, 999)
		if _, dup := seen[n]; dup {
			continue
		}
		seen[n] = struct{}{}
		nums = append(nums, n)
	}

	max := nums[0]
	for _, n := range nums[1:] {
		if n > max {
			max = n
		}
	}

	shown := make([]string, len(nums))
	var distractors []string
	for i, n := range nums {
		shown[i] = fmt.Sprint(n)
		if n != max && len(distractors) < DistractorCount {
			distractors = append(distractors, fmt.Sprint(n))
		}
	}

	options, answer := s.shuffleWithAnswer(fmt.Sprint(max), distractors)
	return &domain.Challenge{
		ID:            challengeID("easy_largest"),
		Type:          domain.ChallengePattern,
		Difficulty:    domain.TierEasy,
		Prompt:        "Tap the largest number: " + strings.Join(shown, ", "),
		Options:       options,
		CorrectAnswer: answer,
		TimeLimitSec:  EasyLargestTimeLimitSec,
		PointsReward:  EasyPointsReward,
	}
}

func (s *service) easyReflection() *domain.Challenge {
	return &domain.Challenge{
		ID:         challengeID("easy_reflect"),
		Type:       domain.ChallengeIntent,
		Difficulty: domain.TierEasy,
		Prompt:     reflectionPrompts[s.intn(len(reflectionPrompts))],
		Options:    append([]string(nil), reflectionOptions...),
		// Nominal answer only; Check accepts every option for intent.
		CorrectAnswer: 1,
		TimeLimitSec:  EasyReflectionTimeLimitSec,
		PointsReward:  EasyPointsReward,
	}
}

func (s *service) mediumMultiStep() *domain.Challenge {
	a := s.randRange(10, 50)
	b := s.randRange(2, 10)
	c := s.randRange(1, 20)
	result := a*b + c
	options, answer := s.shuffleWithAnswer(fmt.Sprint(result), s.numericDistractors(result, 15))
	return &domain.Challenge{
		ID:            challengeID("med_multi"),
		Type:          domain.ChallengeArithmetic,
		Difficulty:    domain.TierMedium,
		Prompt:        fmt.Sprintf("(%d × %d) + %d = ?", a, b, c),
		Options:       options,
		CorrectAnswer: answer,
		TimeLimitSec:  MediumMultiStepTimeLimitSec,
		PointsReward:  MediumPointsReward,
	}
}

func (s *service) mediumSequence() *domain.Challenge {
	start := s.randRange(2, 10)
	step := s.randRange(2, 7)
	multiplicative := s.intn(2) == 1

	seq := make([]string, 0, 5)
	v := start
	for i := 0; i < 5; i++ {
		seq = append(seq, fmt.Sprint(v))
		if multiplicative {
			v *= step
		} else {
			v += step
		}
	}
	next := v

	options, answer := s.shuffleWithAnswer(fmt.Sprint(next), s.numericDistractors(next, step*3))
	return &domain.Challenge{
		ID:            challengeID("med_seq"),
		Type:          domain.ChallengePattern,
		Difficulty:    domain.TierMedium,
		Prompt:        "What comes next? " + strings.Join(seq, ", ") + ", ?",
		Options:       options,
		CorrectAnswer: answer,
		TimeLimitSec:  MediumSequenceTimeLimitSec,
		PointsReward:  MediumPointsReward,
	}
}

func (s *service) mediumLogic() *domain.Challenge {
	p := logicProblems[s.intn(len(logicProblems))]
	return &domain.Challenge{
		ID:            challengeID("med_logic"),
		Type:          domain.ChallengeLogic,
		Difficulty:    domain.TierMedium,
		Prompt:        p.Prompt,
		Options:       append([]string(nil), p.Options...),
		CorrectAnswer: p.Correct,
		TimeLimitSec:  MediumLogicTimeLimitSec,
		PointsReward:  MediumPointsReward,
	}
}

func (s *service) hardRiddle() *domain.Challenge {
	p := hardRiddles[s.intn(len(hardRiddles))]
	return &domain.Challenge{
		ID:            challengeID("hard_puzzle"),
		Type:          domain.ChallengeLogic,
		Difficulty:    domain.TierHard,
		Prompt:        p.Prompt,
		Options:       append([]string(nil), p.Options...),
		CorrectAnswer: p.Correct,
		TimeLimitSec:  HardRiddleTimeLimitSec,
		PointsReward:  HardPointsReward,
	}
}

func (s *service) hardMemory() *domain.Challenge {
	used := map[int]struct{}{}
	picked := make([]string, 0, memoryPickCount)
	for len(picked) < memoryPickCount {
		idx := s.intn(len(memorySymbols))
		if _, dup := used[idx]; dup {
			continue
		}
		used[idx] = struct{}{}
		picked = append(picked, memorySymbols[idx])
	}

	removedIdx := s.intn(len(picked))
	removed := picked[removedIdx]
	shown := make([]string, 0, len(picked)-1)
	for i, sym := range picked {
		if i != removedIdx {
			shown = append(shown, sym)
		}
	}

	pickedSet := map[string]struct{}{}
	for _, sym := range picked {
		pickedSet[sym] = struct{}{}
	}
	var distractors []string
	for _, sym := range memorySymbols {
		if _, in := pickedSet[sym]; in {
			continue
		}
		distractors = append(distractors, sym)
		if len(distractors) == DistractorCount {
			break
		}
	}

	options, answer := s.shuffleWithAnswer(removed, distractors)
	return &domain.Challenge{
		ID:            challengeID("hard_memory"),
		Type:          domain.ChallengeMemory,
		Difficulty:    domain.TierHard,
		Prompt:        fmt.Sprintf("Memorize these symbols: %s. Now showing: %s. Which is missing?", strings.Join(picked, " "), strings.Join(shown, " ")),
		Options:       options,
		CorrectAnswer: answer,
		TimeLimitSec:  HardMemoryTimeLimitSec,
		PointsReward:  HardPointsReward,
	}
}
