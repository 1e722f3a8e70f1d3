package app

import (
	"fmt"

	"github.com/shrimpsizemoose/frageverk/internal/quiz"
	"github.com/shrimpsizemoose/frageverk/internal/session"
	"github.com/shrimpsizemoose/frageverk/internal/store"
)

type Service struct {
	Config   *Config
	Store    store.AccountStore
	Sessions session.Store
	Bank     quiz.Bank
}

func NewService(configPath string) (*Service, error) {
	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	accountStore, err := NewStore(config.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to init store: %w", err)
	}

	sessions, err := NewSessionStore(config)
	if err != nil {
		return nil, fmt.Errorf("failed to init session store: %w", err)
	}

	bank, err := quiz.LoadBank(config.Quiz.BankPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load question bank: %w", err)
	}

	return &Service{
		Config:   config,
		Store:    accountStore,
		Sessions: sessions,
		Bank:     bank,
	}, nil
}

func (s *Service) Close() error {
	var errs []error

	if err := s.Store.Close(); err != nil {
		errs = append(errs, fmt.Errorf("store: %w", err))
	}
	if err := s.Sessions.Close(); err != nil {
		errs = append(errs, fmt.Errorf("sessions: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors while closing: %v", errs)
	}
	return nil
}
