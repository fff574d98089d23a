package challenge

import "time"

// Time limits and point rewards per generator.
const (
	EasyArithmeticTimeLimitSec = 15
	EasyLargestTimeLimitSec    = 10
	EasyReflectionTimeLimitSec = 15
	EasyPointsReward           = 1

	MediumMultiStepTimeLimitSec = 45
	MediumSequenceTimeLimitSec  = 45
	MediumLogicTimeLimitSec     = 60
	MediumPointsReward          = 3

	HardRiddleTimeLimitSec = 90
	HardMemoryTimeLimitSec = 30
	HardPointsReward       = 5
)

// DistractorCount is how many wrong options accompany the correct one.
const DistractorCount = 3

// Recent-prompt cache tuning. A prompt stays hot long enough that an
// immediate retry after a failure draws a different question.
const (
	RecentPromptCacheSize = 64
	RecentPromptTTL       = 10 * time.Minute
	MaxGenerateAttempts   = 5
)

// reflectionPrompts are the easy-tier intent questions. Any answer passes;
// the point is the pause, not the answer.
var reflectionPrompts = []string{
	"What are you opening this for?",
	"Do you really need this right now?",
	"Is this a mindful choice?",
	"What could you do instead?",
}

// reflectionOptions are shown unshuffled; index 1 is the nominal answer.
var reflectionOptions = []string{"Just browsing", "I have a purpose", "Bored", "Need info"}

type cataloguedProblem struct {
	Prompt  string
	Options []string
	Correct int
}

var logicProblems = []cataloguedProblem{
	{
		Prompt:  "If all Bloops are Razzies, and all Razzies are Lazzies, are all Bloops Lazzies?",
		Options: []string{"Yes", "No", "Maybe", "Not enough info"},
		Correct: 0,
	},
	{
		Prompt:  "A is taller than B. B is taller than C. Who is shortest?",
		Options: []string{"A", "B", "C", "Cannot tell"},
		Correct: 2,
	},
	{
		Prompt:  "If it rains, the ground gets wet. The ground is wet. Did it rain?",
		Options: []string{"Yes", "No", "Not necessarily", "Always"},
		Correct: 2,
	},
	{
		Prompt:  "Every cat has a tail. Tom has a tail. Is Tom a cat?",
		Options: []string{"Yes", "No", "Not necessarily", "Always"},
		Correct: 2,
	},
	{
		Prompt:  "If today is Monday, what day is it 3 days from now?",
		Options: []string{"Wednesday", "Thursday", "Friday", "Tuesday"},
		Correct: 1,
	},
	{
		Prompt:  "A clock shows 3:15. What is the angle between hour and minute hands?",
		Options: []string{"7.5°", "0°", "15°", "90°"},
		Correct: 0,
	},
}

var hardRiddles = []cataloguedProblem{
	{
		Prompt:  "I speak without a mouth and hear without ears. I have no body, but I come alive with wind. What am I?",
		Options: []string{"Echo", "Shadow", "Cloud", "Fire"},
		Correct: 0,
	},
	{
		Prompt:  "A man has 53 socks: 21 blue, 15 black, 17 red. Lights are off. Minimum socks to guarantee a matching pair?",
		Options: []string{"2", "3", "4", "21"},
		Correct: 2,
	},
	{
		Prompt:  "If you rearrange 'CIFAIPC', you get the name of a(n):",
		Options: []string{"Ocean", "Country", "Animal", "City"},
		Correct: 0,
	},
	{
		Prompt:  "A farmer has 17 sheep. All but 9 run away. How many sheep remain?",
		Options: []string{"8", "9", "17", "0"},
		Correct: 1,
	},
	{
		Prompt:  "Three light switches control 3 bulbs in another room. You can enter the room once. How do you determine which switch controls which bulb?",
		Options: []string{"Turn on 1, wait, turn on 2, enter", "Turn all on, enter", "Use a mirror", "Impossible"},
		Correct: 0,
	},
	{
		Prompt:  "What has 13 hearts but no organs?",
		Options: []string{"A deck of cards", "A hospital", "A clock", "A tree"},
		Correct: 0,
	},
}

// memorySymbols is the pool the hard memory generator draws from.
var memorySymbols = []string{"★", "♦", "♣", "♥", "⬡", "△", "◇", "⊕", "⊗", "☾"}

// memoryPickCount is how many symbols are shown before one is hidden.
const memoryPickCount = 6
