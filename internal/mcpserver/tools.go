package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/unbound-force/recase/internal/recase"
	"github.com/unbound-force/recase/internal/report"
	"github.com/unbound-force/recase/internal/style"
)

type recaseInput struct {
	Reference  string   `json:"reference"             jsonschema:"Identifier whose style is copied"`
	Targets    []string `json:"targets"               jsonschema:"Strings to rewrite"`
	Priorities []string `json:"priorities,omitempty"  jsonschema:"Style specs preferred when the reference is ambiguous, e.g. a_b or aB"`
	Positional bool     `json:"positional,omitempty"  jsonschema:"Copy per-character casing instead of inferring a style"`
}

type recaseOutput struct {
	Results []string          `json:"results"`
	Style   *report.StyleJSON `json:"style,omitempty"`
}

func handleRecase(_ context.Context, _ *mcp.CallToolRequest, input recaseInput) (*mcp.CallToolResult, recaseOutput, error) {
	if len(input.Targets) == 0 {
		return errResult(errors.New("targets must not be empty")), recaseOutput{}, nil
	}

	out := recaseOutput{Results: make([]string, 0, len(input.Targets))}

	if input.Positional {
		for _, t := range input.Targets {
			out.Results = append(out.Results, recase.MatchPositional(input.Reference, t))
		}
		return nil, out, nil
	}

	priorities, err := style.ParseAll(input.Priorities)
	if err != nil {
		return errResult(err), recaseOutput{}, nil
	}

	s := recase.Classify(input.Reference, priorities)
	for _, t := range input.Targets {
		out.Results = append(out.Results, recase.Render(t, s))
	}
	sj := report.NewStyleJSON(s)
	out.Style = &sj
	return nil, out, nil
}

type classifyInput struct {
	Reference  string   `json:"reference"            jsonschema:"Identifier to classify"`
	Priorities []string `json:"priorities,omitempty" jsonschema:"Style specs preferred when the reference is ambiguous"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, report.JSONReport, error) {
	priorities, err := style.ParseAll(input.Priorities)
	if err != nil {
		return errResult(err), report.JSONReport{}, nil
	}
	ex := recase.Explain(input.Reference, priorities)
	return nil, report.NewJSONReport(ex, priorities, serverVersion), nil
}
