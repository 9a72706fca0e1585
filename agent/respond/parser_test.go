package respond

import (
	"errors"
	"testing"

	contractx "github.com/skillradar/agentcore/agent/contract"
)

type intentPayload struct {
	Type       string  `json:"type"`
	Confidence float64 `json:"confidence"`
}

func TestExtractJSONPlainObject(t *testing.T) {
	t.Parallel()

	got, err := ExtractJSON(`{"type":"tutoring","confidence":0.9}`)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if string(got) != `{"type":"tutoring","confidence":0.9}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestExtractJSONStripsFences(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"json fence":     "```json\n{\"type\":\"assessment\"}\n```",
		"bare fence":     "```\n{\"type\":\"assessment\"}\n```",
		"fence no break": "```json\n{\"type\":\"assessment\"}```",
	}
	for name, raw := range cases {
		got, err := ExtractJSON(raw)
		if err != nil {
			t.Fatalf("%s: ExtractJSON() error = %v", name, err)
		}
		if string(got) != `{"type":"assessment"}` {
			t.Fatalf("%s: unexpected payload: %s", name, got)
		}
	}
}

func TestExtractJSONSurroundingProse(t *testing.T) {
	t.Parallel()

	raw := "Sure! Here is the result you asked for:\n{\"score\": 80, \"feedback\": \"good {effort}\"}\nLet me know if you need more."
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if string(got) != `{"score": 80, "feedback": "good {effort}"}` {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestExtractJSONNestedObjects(t *testing.T) {
	t.Parallel()

	raw := `{"plan":{"steps":["a","b"],"meta":{"time":"5m"}}}`
	got, err := ExtractJSON(raw)
	if err != nil {
		t.Fatalf("ExtractJSON() error = %v", err)
	}
	if string(got) != raw {
		t.Fatalf("unexpected payload: %s", got)
	}
}

func TestExtractJSONFailsLoudly(t *testing.T) {
	t.Parallel()

	for name, raw := range map[string]string{
		"empty":      "",
		"prose only": "I could not produce the requested structure.",
		"unbalanced": `{"type":"tutoring"`,
		"fence only": "```json\n```",
		"bad json":   `{"type": tutoring}`,
	} {
		if _, err := ExtractJSON(raw); !errors.Is(err, contractx.ErrResponsePayload) {
			t.Fatalf("%s: expected ErrResponsePayload, got %v", name, err)
		}
	}
}

func TestDecodeTyped(t *testing.T) {
	t.Parallel()

	out, err := Decode[intentPayload]("```json\n{\"type\":\"tutoring\",\"confidence\":0.82}\n```")
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if out.Type != "tutoring" || out.Confidence != 0.82 {
		t.Fatalf("unexpected decode result: %+v", out)
	}
}

func TestDecodeTypeMismatch(t *testing.T) {
	t.Parallel()

	_, err := Decode[intentPayload](`{"type":"tutoring","confidence":"high"}`)
	if !errors.Is(err, contractx.ErrResponsePayload) {
		t.Fatalf("expected ErrResponsePayload, got %v", err)
	}
}
