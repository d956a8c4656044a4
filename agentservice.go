package main

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/imjamesonzeller/agent0-tray/agent"
	"github.com/imjamesonzeller/agent0-tray/tray"
)

var _ tray.Actions = (*agent.Client)(nil)

// AgentService exposes the backend actions to the frontend.
type AgentService struct {
	client *agent.Client
	logger *zap.Logger
}

func NewAgentService(client *agent.Client, logger *zap.Logger) *AgentService {
	return &AgentService{client: client, logger: logger}
}

func (s *AgentService) PauseService() (string, error) {
	return s.run(agent.ActionPause)
}

func (s *AgentService) ResumeService() (string, error) {
	return s.run(agent.ActionResume)
}

func (s *AgentService) OpenDashboard() (string, error) {
	return s.run(agent.ActionDashboard)
}

// DashboardURL lets the page show where the dashboard lives.
func (s *AgentService) DashboardURL() string {
	return s.client.DashboardURL()
}

func (s *AgentService) run(action agent.Action) (string, error) {
	msg, err := s.client.Do(context.Background(), action)
	if err != nil {
		fields := []zap.Field{zap.String("action", string(action)), zap.String("source", "frontend")}
		var actionErr *agent.ActionError
		if errors.As(err, &actionErr) {
			fields = append(fields, zap.Stringer("kind", actionErr.Kind))
		}
		s.logger.Error(err.Error(), fields...)
		return "", err
	}
	return msg, nil
}
