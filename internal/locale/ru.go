package locale

import "github.com/quizworks/capitalquiz/internal/quiz"

// Russian mirrors the English bundle key for key.
var Russian = &Bundle{
	DatasetLocale: "ru",

	yes:              "Да",
	no:               "Нет",
	initialWelcome:   `Добро пожаловать в игру "Назови Столицу"! Могу ли я спросить ваше имя?`,
	bye:              "До свидания!",
	noWorries:        "Без проблем.",
	askForAGame:      "Хотите начать игру?",
	correct:          "Правильно!",
	rules:            "Правила простые. Я говорю страну, а вы называете столицу.",
	chooseDifficulty: "Пожалуйста выберите уровень сложности.",
	playAgain:        "Хотите ли вы сыграть еще?",
	noCountries:      "Для этого уровня сложности у меня нет стран.",

	welcomeFmt:   "Снова привет, %s!",
	thanksFmt:    "Спасибо %s!",
	incorrectFmt: "Правильный ответ - %s.",
	scoreFmt:     "Ваш результат - %d.",
	levelFmt:     "Ваш уровень сложности - %s.",

	levelNames: map[quiz.Level]string{
		quiz.LevelEasy:   "Легкий",
		quiz.LevelHard:   "Сложный",
		quiz.LevelInsane: "Бог",
	},
}
