// Package wire defines the JSON request/response contract used by networked
// hosts of the solver: plain data types plus conversion functions to and
// from pkg/solver. It intentionally stops at the wire format -- no HTTP
// handler, task queue, or CORS policy lives here; a host embeds this
// package into whatever transport it runs.
package wire

import (
	"encoding/json"
	"time"

	"github.com/mrgriscom/minesweepr/pkg/solver"
)

// otherTag is the JSON key used for the aggregate probability of cells not
// referenced by any rule.
const otherTag = "_other"

// Rule is one JSON-encoded constraint: exactly NumMines mines among Cells.
type Rule struct {
	NumMines int      `json:"num_mines"`
	Cells    []string `json:"cells"`
}

// Request is the JSON body a caller sends to solve a board. Exactly one of
// MineProb or the (TotalCells, TotalMines) pair must be set; UnmarshalJSON
// does not enforce this -- ToPrevalence does, at conversion time.
type Request struct {
	Rules      []Rule   `json:"rules"`
	MineProb   *float64 `json:"mine_prob,omitempty"`
	TotalCells int      `json:"total_cells,omitempty"`
	TotalMines int      `json:"total_mines,omitempty"`
}

// ToPrevalence converts the request's mine-density fields into the model
// Solve expects, returning an Invalid-argument error if neither or both
// forms were supplied.
func (r Request) ToPrevalence() (solver.Prevalence, error) {
	hasProb := r.MineProb != nil
	hasCounts := r.TotalCells != 0 || r.TotalMines != 0
	switch {
	case hasProb && hasCounts:
		return solver.Prevalence{}, solver.InvalidArgumentError("request specifies both mine_prob and total_cells/total_mines")
	case hasProb:
		return solver.ProbabilisticPrevalence(*r.MineProb)
	case hasCounts:
		return solver.DiscretePrevalence(r.TotalCells, r.TotalMines), nil
	default:
		return solver.Prevalence{}, solver.InvalidArgumentError("request specifies neither mine_prob nor total_cells/total_mines")
	}
}

// ToRawRules converts the request's rules into the solver's input type.
func (r Request) ToRawRules() []solver.RawRule {
	out := make([]solver.RawRule, len(r.Rules))
	for i, rule := range r.Rules {
		cells := make([]solver.Cell, len(rule.Cells))
		for j, c := range rule.Cells {
			cells[j] = c
		}
		out[i] = solver.NewRawRule(rule.NumMines, cells)
	}
	return out
}

// Response is the JSON body returned for a solve request. Solution is nil
// on Inconsistent; Error carries a message for any other failure (argument
// validation, or a host-level condition such as a CPU quota).
type Response struct {
	Solution       map[string]float64 `json:"solution"`
	ProcessingTime float64            `json:"processing_time,omitempty"`
	Error          string             `json:"error,omitempty"`
}

// Solve runs the solver against a JSON request and renders the result (or
// failure) into the JSON response shape. It never returns a Go error. An
// Inconsistent board is communicated in-band as a nil Response.Solution
// with Response.Error left empty; Response.Error is set only for other
// failures, such as an invalid prevalence.
func Solve(req Request) Response {
	start := time.Now()

	prevalence, err := req.ToPrevalence()
	if err != nil {
		return Response{Error: err.Error()}
	}

	result, err := solver.Solve(req.ToRawRules(), prevalence, otherTag)
	elapsed := time.Since(start).Seconds()
	if err != nil {
		if solver.IsInconsistent(err) {
			return Response{Solution: nil, ProcessingTime: elapsed}
		}
		return Response{Error: err.Error(), ProcessingTime: elapsed}
	}

	solution := make(map[string]float64, len(result))
	for cell, p := range result {
		solution[cell.(string)] = p
	}
	return Response{Solution: solution, ProcessingTime: elapsed}
}

// MarshalResponse is a thin convenience wrapper for hosts that want the
// raw bytes directly.
func MarshalResponse(resp Response) ([]byte, error) {
	return json.Marshal(resp)
}
