package locale

import "github.com/quizworks/capitalquiz/internal/quiz"

// English is the default bundle.
var English = &Bundle{
	DatasetLocale: "en",

	yes:              "Yes",
	no:               "No",
	initialWelcome:   `Welcome to "Name the Capital" quiz! Can I ask your name?`,
	bye:              "Goodbye!",
	noWorries:        "Ok, no worries.",
	askForAGame:      "Do you want to play?",
	correct:          "Correct!",
	rules:            "Rules are easy. I say country and you name the capital.",
	chooseDifficulty: "Please choose difficulty level.",
	playAgain:        "Do you want to play again?",
	noCountries:      "I have no countries for that difficulty level.",

	welcomeFmt:   "Hello again, %s!",
	thanksFmt:    "Thanks %s!",
	incorrectFmt: "Correct answer is %s.",
	scoreFmt:     "Your score is %d.",
	levelFmt:     "Your difficulty level - %s.",

	levelNames: map[quiz.Level]string{
		quiz.LevelEasy:   "Easy",
		quiz.LevelHard:   "Hard",
		quiz.LevelInsane: "Insane",
	},
}
