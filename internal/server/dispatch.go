package server

import "github.com/quizworks/capitalquiz/internal/quiz"

// Intent display names as configured in the host agent.
const (
	intentWelcome          = "Default Welcome Intent"
	intentPermission       = "actions_intent_PERMISSION"
	intentPlayGame         = "Play Game"
	intentChooseDifficulty = "Choose Difficulty Level"
	intentRoundYes         = "Game Round - yes"
	intentRound            = "Game Round"
	intentRoundNo          = "Game Round - no"
)

// intentHandlers is the dispatch table from router-supplied intent names to
// engine operations. Adding an intent means adding a row here, not touching
// any registration mechanism.
var intentHandlers = map[string]func(*conversation){
	intentWelcome:          handleWelcomeIntent,
	intentPermission:       handlePermissionIntent,
	intentPlayGame:         handlePlayGameIntent,
	intentChooseDifficulty: handleChooseDifficultyIntent,
	intentRoundYes:         handleChooseDifficultyIntent,
	intentRound:            handleGameRoundIntent,
	intentRoundNo:          handleQuitIntent,
}

// handleWelcomeIntent greets a known user and offers a game, or asks for NAME
// permission on first contact.
func handleWelcomeIntent(c *conversation) {
	if name := c.storage.UserName; name != "" {
		c.say(c.bundle.Welcome(name), c.bundle.AskForAGame())
		c.suggest(c.bundle.Yes(), c.bundle.No())
		c.arm(quiz.ExpectStartGame, 2)
		return
	}

	c.askPermission = true
	c.suggest(c.bundle.Yes(), c.bundle.No())
}

// handlePermissionIntent stores the granted display name (or "Anonymous")
// and moves on to the game offer either way.
func handlePermissionIntent(c *conversation) {
	c.arm(quiz.ExpectStartGame, 2)

	if c.granted {
		name := c.profileName
		if name == "" {
			name = "Anonymous"
		}
		c.storage.UserName = name
		c.storageDirty = true
		c.say(c.bundle.Thanks(name), c.bundle.AskForAGame())
	} else {
		c.say(c.bundle.NoWorries(), c.bundle.AskForAGame())
	}
	c.suggest(c.bundle.Yes(), c.bundle.No())
}

func handlePlayGameIntent(c *conversation) {
	c.apply(c.engine.StartOrResume(&c.session))
}

// handleChooseDifficultyIntent records the chosen level and starts a round.
// Without a usable difficultyLevel parameter (the "yes, play again" path can
// arrive bare) it falls back to prompting for one.
func handleChooseDifficultyIntent(c *conversation) {
	raw, _ := c.params["difficultyLevel"].(string)
	level, err := quiz.ParseLevel(raw)
	if err != nil {
		c.apply(c.engine.StartOrResume(&c.session))
		return
	}
	c.apply(c.engine.ChooseDifficulty(&c.session, level))
}

// handleGameRoundIntent treats the parsed city parameter, or failing that the
// raw utterance, as the capital guess.
func handleGameRoundIntent(c *conversation) {
	answer, _ := c.params["city"].(string)
	if answer == "" {
		answer = c.query
	}
	c.apply(c.engine.SubmitAnswer(&c.session, answer))
}

func handleQuitIntent(c *conversation) {
	c.say(c.bundle.Bye())
	c.endSession = true
	c.session.Reset()
}
