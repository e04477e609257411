package otpstore

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// MemoryStore keeps records in process memory
type MemoryStore struct {
	mu      sync.Mutex
	records map[string]Record
	now     func() time.Time
	cron    *cron.Cron
}

// NewMemoryStore creates an empty store. A nil clock uses time.Now.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		records: make(map[string]Record),
		now:     now,
	}
}

func (s *MemoryStore) Set(_ context.Context, record Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record.ExpiresAt = s.now().Add(ttl)
	s.records[record.Email] = record
	return nil
}

func (s *MemoryStore) Get(_ context.Context, email string) (*Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.records[email]
	if !ok {
		return nil, ErrNotFound
	}
	if !s.now().Before(record.ExpiresAt) {
		delete(s.records, email)
		return nil, ErrNotFound
	}
	return &record, nil
}

func (s *MemoryStore) Delete(_ context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.records, email)
	return nil
}

// Sweep drops every expired record and returns how many were removed
func (s *MemoryStore) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	removed := 0
	for email, record := range s.records {
		if !now.Before(record.ExpiresAt) {
			delete(s.records, email)
			removed++
		}
	}
	return removed
}

// Len returns the number of staged records, expired ones included
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}

// StartSweeper runs Sweep on a cron schedule such as "@every 1m"
func (s *MemoryStore) StartSweeper(schedule string) error {
	c := cron.New()

	_, err := c.AddFunc(schedule, func() {
		if n := s.Sweep(); n > 0 {
			log.Printf("🧹 Removed %d expired OTP records", n)
		}
	})
	if err != nil {
		return err
	}

	s.cron = c
	c.Start()
	log.Printf("OTP sweeper started (%s)", schedule)
	return nil
}

// Stop halts the sweeper if it was started
func (s *MemoryStore) Stop() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
