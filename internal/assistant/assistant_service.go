package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go-hrms/internal/leave"
	"go-hrms/internal/ledger"
	"go-hrms/internal/shared/contextutil"

	"go.uber.org/zap"
)

// BalanceReader and RequestLister are the read sides the assistant needs
// from the ledger and leave services.
type BalanceReader interface {
	GetBalance(ctx context.Context, userID string) (ledger.BalanceResponse, error)
}

type RequestLister interface {
	ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
}

type Service interface {
	// Chat never fails on an upstream completion error; it answers from the
	// fallback table instead.
	Chat(ctx context.Context, userID string, req ChatRequest) (ChatResponse, error)
}

type service struct {
	completer Completer
	balances  BalanceReader
	requests  RequestLister
	timeout   time.Duration
	logger    *zap.Logger
}

func NewService(completer Completer, balances BalanceReader, requests RequestLister, timeout time.Duration, logger ...*zap.Logger) Service {
	l := zap.L().Named("assistant.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("assistant.service")
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &service{completer: completer, balances: balances, requests: requests, timeout: timeout, logger: l}
}

func (s *service) Chat(ctx context.Context, userID string, req ChatRequest) (ChatResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	balance, err := s.balances.GetBalance(ctx, userID)
	if err != nil {
		log.Warn("assistant balance snapshot unavailable", zap.String("user_id", userID), zap.Error(err))
		balance = ledger.BalanceResponse{UserID: userID}
	}

	if s.completer != nil {
		reply, err := s.complete(ctx, balance, req)
		if err == nil {
			log.Debug("assistant answered by model", zap.String("user_id", userID))
			return ChatResponse{Reply: reply, Source: SourceAI}, nil
		}
		log.Warn("assistant completion failed, using fallback", zap.String("user_id", userID), zap.Error(err))
	}

	requests, err := s.requests.ListMine(ctx, userID)
	if err != nil {
		log.Warn("assistant request listing unavailable", zap.String("user_id", userID), zap.Error(err))
		requests = nil
	}

	return ChatResponse{Reply: fallbackReply(req.Message, balance, requests), Source: SourceFallback}, nil
}

func (s *service) complete(ctx context.Context, balance ledger.BalanceResponse, req ChatRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := make([]ChatMessage, 0, len(req.History)+2)
	messages = append(messages, ChatMessage{Role: RoleSystem, Content: systemPrompt(balance)})
	messages = append(messages, req.History...)
	messages = append(messages, ChatMessage{Role: RoleUser, Content: strings.TrimSpace(req.Message)})

	return s.completer.Complete(ctx, messages)
}

func systemPrompt(b ledger.BalanceResponse) string {
	return fmt.Sprintf(
		"You are an HR leave management assistant. Answer questions about leave policies, balances, and planning. "+
			"Use the following user context if relevant: Sick: %d/%d, Casual: %d/%d, Vacation: %d/%d.",
		b.Sick.Available, b.Sick.Allocated,
		b.Casual.Available, b.Casual.Allocated,
		b.Vacation.Available, b.Vacation.Allocated,
	)
}
