package server

import "encoding/json"

// Dialogflow v2 webhook wire types. Only the fields the quiz reads or writes
// are modeled; everything else passes through the host untouched.

type webhookRequest struct {
	ResponseID                  string        `json:"responseId"`
	Session                     string        `json:"session"`
	QueryResult                 queryResult   `json:"queryResult"`
	OriginalDetectIntentRequest detectRequest `json:"originalDetectIntentRequest"`
}

type queryResult struct {
	QueryText    string         `json:"queryText"`
	Parameters   map[string]any `json:"parameters"`
	LanguageCode string         `json:"languageCode"`
	Intent       struct {
		DisplayName string `json:"displayName"`
	} `json:"intent"`
}

type detectRequest struct {
	Payload struct {
		User   assistantUser    `json:"user"`
		Inputs []assistantInput `json:"inputs"`
	} `json:"payload"`
}

type assistantUser struct {
	Locale      string `json:"locale"`
	UserStorage string `json:"userStorage"`
	Profile     struct {
		DisplayName string `json:"displayName"`
	} `json:"profile"`
}

type assistantInput struct {
	Arguments []assistantArgument `json:"arguments"`
}

type assistantArgument struct {
	Name      string `json:"name"`
	BoolValue bool   `json:"boolValue"`
}

// permissionGranted digs the PERMISSION argument out of the assistant inputs.
func (d *detectRequest) permissionGranted() bool {
	for _, input := range d.Payload.Inputs {
		for _, arg := range input.Arguments {
			if arg.Name == "PERMISSION" {
				return arg.BoolValue
			}
		}
	}
	return false
}

// userData is the persisted user profile carried in the assistant's
// userStorage blob. The quiz only reads the display name.
type userData struct {
	UserName string `json:"userName,omitempty"`
}

type userStorageEnvelope struct {
	Data userData `json:"data"`
}

func parseUserStorage(raw string) userData {
	if raw == "" {
		return userData{}
	}
	var env userStorageEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return userData{}
	}
	return env.Data
}

func encodeUserStorage(data userData) string {
	raw, err := json.Marshal(userStorageEnvelope{Data: data})
	if err != nil {
		return ""
	}
	return string(raw)
}

type webhookResponse struct {
	FulfillmentText string          `json:"fulfillmentText,omitempty"`
	OutputContexts  []outputContext `json:"outputContexts,omitempty"`
	Payload         *googlePayload  `json:"payload,omitempty"`
}

type outputContext struct {
	Name          string `json:"name"`
	LifespanCount int    `json:"lifespanCount,omitempty"`
}

type googlePayload struct {
	Google googleResponse `json:"google"`
}

type googleResponse struct {
	ExpectUserResponse bool          `json:"expectUserResponse"`
	UserStorage        string        `json:"userStorage,omitempty"`
	RichResponse       *richResponse `json:"richResponse,omitempty"`
	SystemIntent       *systemIntent `json:"systemIntent,omitempty"`
}

type richResponse struct {
	Items       []richItem   `json:"items"`
	Suggestions []suggestion `json:"suggestions,omitempty"`
}

type richItem struct {
	SimpleResponse *simpleResponse `json:"simpleResponse,omitempty"`
}

type simpleResponse struct {
	TextToSpeech string `json:"textToSpeech"`
}

type suggestion struct {
	Title string `json:"title"`
}

type systemIntent struct {
	Intent string              `json:"intent"`
	Data   permissionValueSpec `json:"data"`
}

type permissionValueSpec struct {
	Type        string   `json:"@type"`
	OptContext  string   `json:"optContext"`
	Permissions []string `json:"permissions"`
}

const permissionValueSpecType = "type.googleapis.com/google.actions.v2.PermissionValueSpec"
