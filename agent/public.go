package agent

import (
	"context"
	"fmt"

	"github.com/etnz/standings"
	"github.com/etnz/standings/docs"
	"github.com/etnz/standings/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// Loader reads the canonical dataset for the statistician's tools. The
// caller owns the ledger location (flags, defaults), the agent never
// hardcodes a path.
type Loader func() (*standings.Dataset, error)

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name: "Facilitator",
		// Used by facilitators to know what they can expected from the expert
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is a member of a home poker group. He is here primarily to learn who is up,
			who is down, and how his own game is trending.

			Devise a plan of questions to ask to each experts and come up with the best reponse to the user's request.

			The user will assume that you know the group's players, check the standings first to learn who they are.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewStatistician creates the expert in charge of the session ledger,
// reading it through the given loader.
func NewStatistician(load Loader) *Expert {

	lib := []Function{standingsReport(load), profileReport(load), sessionLog(load)}

	return &Expert{
		Name: "Statistician",
		Description: `This is the Statistician. He is in charge of reading the group's session ledger.
		He can compute the standings, any player's profile, and the chronological session log.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a statistician in charge of a poker group's session ledger.
				You know how to use the Tools to extract relevant figures about the group and its players.
				You are part of a team of experts, yours is everything about sessions and results. They might ask
				you questions in approximative language, figure out what they meant.

				Use the available tools to get information about the group
				  - standings and group totals
				  - a single player's profile and streaks
				  - the session log
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func errResponse(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func okResponse(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var rangeProperties = map[string]*genai.Schema{
	"from": {
		Type: genai.TypeString,
		Description: `Start of the date range, inclusive. Unset means no lower bound.
		It uses a flexible date format based on YYYY-MM-DD:

		` + must(docs.GetTopic("dates")),
	},
	"to": {
		Type:        genai.TypeString,
		Description: "End of the date range, inclusive. Unset means no upper bound. Same format as 'from'.",
	},
}

func standingsReport(load Loader) *Func {
	return &Func{

		Decl: &genai.FunctionDeclaration{
			Name: "Standings",
			Description: `Standings computes the group leaderboard over an optional date range.

			It details each player's session count, total and average net, win rate,
			and best and worst single session, plus group-wide totals and extremes.
			`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: rangeProperties,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted standings report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			filter, err := parseFilter(args)
			if err != nil {
				return errResponse(id, "Standings", err)
			}
			ds, err := load()
			if err != nil {
				return errResponse(id, "Standings", err)
			}
			report := renderer.OverviewMarkdown(standings.NewStandings(ds.Select(filter)))
			return okResponse(id, "Standings", report)
		},
	}
}

func profileReport(load Loader) *Func {
	return &Func{

		Decl: &genai.FunctionDeclaration{
			Name: "Profile",
			Description: `Profile computes a single player's report: games played, win rate,
			average and median net, best and worst session, streaks, and recent sessions.
			`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"player": {
						Type:        genai.TypeString,
						Description: "The player's name, exactly as it appears in the standings.",
					},
				},
				Required: []string{"player"},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted player profile.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			player, ok := args["player"].(string)
			if !ok {
				return errResponse(id, "Profile", fmt.Errorf("argument 'player' is not a string as expected but %T", args["player"]))
			}
			ds, err := load()
			if err != nil {
				return errResponse(id, "Profile", err)
			}
			report := renderer.ProfileMarkdown(standings.NewPlayerProfile(ds, player, standings.DefaultRecentLimit))
			return okResponse(id, "Profile", report)
		},
	}
}

func sessionLog(load Loader) *Func {
	return &Func{

		Decl: &genai.FunctionDeclaration{
			Name: "SessionLog",
			Description: `SessionLog lists every recorded session in chronological order,
			with each player's running cumulative net, over an optional date range.
			`,
			Parameters: &genai.Schema{
				Type:       genai.TypeObject,
				Properties: rangeProperties,
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted session log.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			filter, err := parseFilter(args)
			if err != nil {
				return errResponse(id, "SessionLog", err)
			}
			ds, err := load()
			if err != nil {
				return errResponse(id, "SessionLog", err)
			}
			return okResponse(id, "SessionLog", renderer.SessionsMarkdown(ds.Select(filter)))
		},
	}
}

func parseFilter(args map[string]any) (standings.Filter, error) {
	var filter standings.Filter
	from, err := parseDateArg(args, "from")
	if err != nil {
		return filter, err
	}
	to, err := parseDateArg(args, "to")
	if err != nil {
		return filter, err
	}
	filter.Range = standings.NewRange(from, to)
	return filter, nil
}

func parseDateArg(args map[string]any, key string) (standings.Date, error) {
	idate, hasDate := args[key]
	if !hasDate {
		return standings.Date{}, nil
	}
	sdate, ok := idate.(string)
	if !ok {
		return standings.Date{}, fmt.Errorf("argument %q is not a string as expected but %T", key, idate)
	}
	if sdate == "" {
		return standings.Date{}, nil
	}

	date, err := standings.ParseDate(sdate)
	if err != nil {
		return standings.Date{}, fmt.Errorf("argument %q must be a valid date got %q. Below is the doc about the format date\n\n%s ", key, sdate, must(docs.GetTopic("dates")))
	}

	return date, nil
}
