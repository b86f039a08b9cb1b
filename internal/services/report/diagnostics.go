package report

import (
	"bytes"
	"encoding/json"
	"fmt"

	"weather-report/internal/repositories"
)

// Diagnose turns a failed run into the text shown to the user. nil yields "".
func Diagnose(err error) string {
	fe := repositories.Classify(err)
	if fe == nil {
		return ""
	}

	switch fe.Kind {
	case repositories.KindHTTPStatus:
		msg := fmt.Sprintf("\n❌ HTTP error occurred: %v\n", fe)
		if fe.HasJSONBody() {
			return msg + "🔎 API response: " + compactJSON(fe.Body) + "\n"
		}
		return msg + "⚠️ No JSON body in error response.\n"
	case repositories.KindConnection:
		return fmt.Sprintf("\n❌ Connection error: %v\n", fe)
	case repositories.KindTimeout:
		return fmt.Sprintf("\n⏳ Request timed out: %v\n", fe)
	case repositories.KindRequest:
		return fmt.Sprintf("\n⚠️ General request error: %v\n", fe)
	default:
		return fmt.Sprintf("\n🔥 Unexpected error: %v\n", fe)
	}
}

func compactJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
