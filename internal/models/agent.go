package models

import "fmt"

// Agent is a bare name + creation timestamp; agents are never updated or
// deleted, and uniqueness of the name is by convention only.
type Agent struct {
	Name      string `json:"agent_name"`
	CreatedAt string `json:"created_at"`
}

var AgentHeader = []string{"agent_name", "created_at"}

func (a Agent) Row() []any {
	return []any{a.Name, a.CreatedAt}
}

func ParseAgentRow(row []any) (Agent, error) {
	if len(row) < len(AgentHeader) {
		return Agent{}, fmt.Errorf("agent row has %d columns, want %d", len(row), len(AgentHeader))
	}
	return Agent{Name: cellString(row[0]), CreatedAt: cellString(row[1])}, nil
}
