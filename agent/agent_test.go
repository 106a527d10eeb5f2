package agent

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/etnz/standings"
	"google.golang.org/genai"
)

func TestExpertCallRejectsNonStringQuestion(t *testing.T) {
	e := NewExpert("Statistician", "test expert")

	// A model can pass anything; a bad argument must come back as an
	// error response the model can read, not crash the session.
	resp := e.Call(context.Background(), "id-1", map[string]any{"question": 42})

	if resp.ID != "id-1" || resp.Name != "Statistician" {
		t.Errorf("response identity = %q/%q, want id-1/Statistician", resp.ID, resp.Name)
	}
	msg, ok := resp.Response["error"].(string)
	if !ok {
		t.Fatalf("error entry = %T (%v), want a serializable string", resp.Response["error"], resp.Response["error"])
	}
	if !strings.Contains(msg, "int") {
		t.Errorf("error message %q does not name the offending type", msg)
	}
}

func TestLibraryUnknownFunction(t *testing.T) {
	lib := NewLibrary([]Function{})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "id-2", Name: "NoSuchTool"})

	msg, ok := resp.Response["error"].(string)
	if !ok {
		t.Fatalf("error entry = %T, want a serializable string", resp.Response["error"])
	}
	if !strings.Contains(msg, "NoSuchTool") {
		t.Errorf("error message %q does not name the unknown function", msg)
	}
}

func TestLibraryDispatch(t *testing.T) {
	echo := &Func{
		Decl: &genai.FunctionDeclaration{Name: "Echo"},
		Func: func(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
			return okResponse(id, "Echo", args["text"].(string))
		},
	}
	lib := NewLibrary([]Function{echo})

	resp := lib(context.Background(), &genai.FunctionCall{ID: "id-3", Name: "Echo", Args: map[string]any{"text": "hello"}})
	if got := resp.Response["output"]; got != "hello" {
		t.Errorf("dispatched output = %v, want hello", got)
	}
}

func TestStatisticianToolsUseLoader(t *testing.T) {
	ds := standings.NewDataset(
		standings.SessionRecord{Player: "Alice", Date: standings.MustParseDate("2024-01-05"), Net: standings.M(50, "USD")},
		standings.SessionRecord{Player: "Bob", Date: standings.MustParseDate("2024-01-05"), Net: standings.M(-50, "USD")},
	)
	loads := 0
	e := NewStatistician(func() (*standings.Dataset, error) {
		loads++
		return ds, nil
	})

	resp := e.Library(context.Background(), &genai.FunctionCall{ID: "id-4", Name: "Standings"})
	out, ok := resp.Response["output"].(string)
	if !ok {
		t.Fatalf("standings tool answered %v, want markdown output", resp.Response)
	}
	if !strings.Contains(out, "Alice") {
		t.Errorf("standings output misses the leader:\n%s", out)
	}
	if loads != 1 {
		t.Errorf("loader called %d times, want 1", loads)
	}
}

func TestStatisticianToolsReportLoaderFailure(t *testing.T) {
	e := NewStatistician(func() (*standings.Dataset, error) {
		return nil, fmt.Errorf("ledger file is corrupt")
	})

	resp := e.Library(context.Background(), &genai.FunctionCall{ID: "id-5", Name: "Profile", Args: map[string]any{"player": "Alice"}})
	msg, ok := resp.Response["error"].(string)
	if !ok || !strings.Contains(msg, "corrupt") {
		t.Errorf("loader failure answered %v, want the error surfaced", resp.Response)
	}
}

func TestNextInputDrainsPromptsThenEOF(t *testing.T) {
	var out bytes.Buffer
	a := New(&out, strings.NewReader(""))

	prompts := []string{"  who is up?  ", ""}

	input, eof, err := a.nextInput(&prompts)
	if err != nil || eof {
		t.Fatalf("nextInput = (%q, %v, %v), want queued prompt", input, eof, err)
	}
	if input != "who is up?" {
		t.Errorf("queued prompt = %q, want trimmed %q", input, "who is up?")
	}
	if !strings.Contains(out.String(), "who is up?") {
		t.Error("queued prompt was not echoed to the transcript")
	}

	if input, _, _ := a.nextInput(&prompts); input != "" {
		t.Errorf("blank queued prompt = %q, want empty", input)
	}

	_, eof, err = a.nextInput(&prompts)
	if err != nil {
		t.Fatalf("nextInput at end of input: %v", err)
	}
	if !eof {
		t.Error("exhausted reader must report a clean eof")
	}
}
