package server

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/quizworks/capitalquiz/internal/locale"
	"github.com/quizworks/capitalquiz/internal/quiz"
)

// conversation is the working state of one webhook turn: the resolved locale
// bundle, the engine, the loaded session, and everything the intent handler
// wants sent back.
type conversation struct {
	bundle  *locale.Bundle
	engine  *quiz.Engine
	session quiz.Session
	storage userData

	params      map[string]any
	query       string
	profileName string
	granted     bool

	messages      []string
	suggestions   []string
	expect        quiz.Expectation
	expectTurns   int
	askPermission bool
	endSession    bool
	storageDirty  bool
}

// apply folds an engine reply into the turn's output.
func (c *conversation) apply(reply quiz.Reply) {
	c.messages = append(c.messages, reply.Messages...)
	c.suggestions = reply.Suggestions
	c.expect = reply.Expect
	c.expectTurns = reply.ExpectTurns
}

func (c *conversation) say(messages ...string) {
	c.messages = append(c.messages, messages...)
}

func (c *conversation) suggest(titles ...string) {
	c.suggestions = titles
}

func (c *conversation) arm(expect quiz.Expectation, turns int) {
	c.expect = expect
	c.expectTurns = turns
}

func handleWebhook(logger *slog.Logger, app *App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req webhookRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid webhook payload")
			return
		}

		intent := req.QueryResult.Intent.DisplayName
		handler, ok := intentHandlers[intent]
		if !ok {
			// Unknown intents are the host's problem; answer with an empty
			// fulfillment so its static responses apply.
			logger.Warn("unhandled intent", "intent", intent)
			writeJSON(w, http.StatusOK, webhookResponse{})
			return
		}

		tag := req.OriginalDetectIntentRequest.Payload.User.Locale
		if tag == "" {
			tag = req.QueryResult.LanguageCode
		}
		bundle := locale.ForTag(tag)

		state, err := app.sessions.Get(r.Context(), req.Session)
		if err != nil {
			logger.Error("loading session", "error", err, "session", req.Session)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		conv := &conversation{
			bundle:      bundle,
			engine:      quiz.NewEngine(app.selectorFor(bundle.DatasetLocale), bundle),
			session:     state,
			storage:     parseUserStorage(req.OriginalDetectIntentRequest.Payload.User.UserStorage),
			params:      req.QueryResult.Parameters,
			query:       req.QueryResult.QueryText,
			profileName: req.OriginalDetectIntentRequest.Payload.User.Profile.DisplayName,
			granted:     req.OriginalDetectIntentRequest.permissionGranted(),
		}

		handler(conv)

		if conv.session.Empty() {
			err = app.sessions.Delete(r.Context(), req.Session)
		} else {
			err = app.sessions.Put(r.Context(), req.Session, conv.session)
		}
		if err != nil {
			logger.Error("saving session", "error", err, "session", req.Session)
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, buildResponse(req.Session, conv))
	}
}

func buildResponse(sessionPath string, conv *conversation) webhookResponse {
	resp := webhookResponse{
		FulfillmentText: strings.Join(conv.messages, " "),
	}

	if conv.expect != quiz.ExpectNothing {
		resp.OutputContexts = []outputContext{{
			Name:          sessionPath + "/contexts/" + string(conv.expect),
			LifespanCount: conv.expectTurns,
		}}
	}

	google := googleResponse{
		ExpectUserResponse: !conv.endSession,
	}
	if conv.storageDirty {
		google.UserStorage = encodeUserStorage(conv.storage)
	}
	if resp.FulfillmentText != "" {
		rich := &richResponse{
			Items: []richItem{{SimpleResponse: &simpleResponse{TextToSpeech: resp.FulfillmentText}}},
		}
		for _, title := range conv.suggestions {
			rich.Suggestions = append(rich.Suggestions, suggestion{Title: title})
		}
		google.RichResponse = rich
	}
	if conv.askPermission {
		google.SystemIntent = &systemIntent{
			Intent: "actions.intent.PERMISSION",
			Data: permissionValueSpec{
				Type:        permissionValueSpecType,
				OptContext:  conv.bundle.InitialWelcome(),
				Permissions: []string{"NAME"},
			},
		}
	}
	resp.Payload = &googlePayload{Google: google}
	return resp
}
