package handler

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/events"
)

// update is the subset of a Telegram webhook update the bridge reads.
type update struct {
	Message struct {
		Text string `json:"text"`
	} `json:"message"`
}

// outcomeBody is the JSON body of every response, success or failure.
type outcomeBody struct {
	Message string `json:"message"`
}

// decodeUpdate extracts the message text from the webhook event body.
// Missing keys yield an empty question without error; only a non-parseable
// body is a failure.
func decodeUpdate(event events.LambdaFunctionURLRequest) (string, error) {
	body := []byte(event.Body)
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(event.Body)
		if err != nil {
			return "", fmt.Errorf("handler: decode base64 body: %w", err)
		}
		body = decoded
	}

	var u update
	if err := json.Unmarshal(body, &u); err != nil {
		return "", fmt.Errorf("handler: parse update body: %w", err)
	}
	return u.Message.Text, nil
}

func respond(status int, message, corrID string) events.LambdaFunctionURLResponse {
	body, _ := json.Marshal(outcomeBody{Message: message})
	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type":     "application/json",
			"X-Correlation-Id": corrID,
		},
		Body: string(body),
	}
}
