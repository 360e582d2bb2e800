package services

import (
	"context"
	"time"

	"github.com/avoronov/digital-library/internal/logger"
	"github.com/avoronov/digital-library/internal/models"
)

const (
	recentBooksLimit = 6  // books shown on the public overview
	recentLoansLimit = 10 // borrow records shown on the dashboard
)

// ReaderCounter counts users by role.
type ReaderCounter interface {
	CountByRole(ctx context.Context, role string) (int, error)
}

// BookStatsReader reads catalog aggregates for the overview.
type BookStatsReader interface {
	Counts(ctx context.Context) (titles, copies int, err error)
	Recent(ctx context.Context, limit int) ([]models.BookDB, error)
}

// LoanStatsReader reads lending aggregates for the dashboards.
type LoanStatsReader interface {
	CountsAt(ctx context.Context, now time.Time) (active, overdue, returned int, err error)
	Recent(ctx context.Context, limit int) ([]models.BorrowRecordDetail, error)
	ListAll(ctx context.Context, status string, now time.Time) ([]models.BorrowRecordDetail, error)
}

// StatsCache caches computed library statistics.
type StatsCache interface {
	Get(ctx context.Context) (*models.LibraryStats, error)
	Set(ctx context.Context, stats models.LibraryStats) error
}

// StatsService computes library statistics for the public overview and the
// librarian dashboard, caching them in Redis.
type StatsService struct {
	userRepo  ReaderCounter
	bookRepo  BookStatsReader
	loanRepo  LoanStatsReader
	cacheRepo StatsCache
}

// NewStatsService creates a new StatsService.
func NewStatsService(userRepo ReaderCounter, bookRepo BookStatsReader, loanRepo LoanStatsReader, cacheRepo StatsCache) *StatsService {
	return &StatsService{
		userRepo:  userRepo,
		bookRepo:  bookRepo,
		loanRepo:  loanRepo,
		cacheRepo: cacheRepo,
	}
}

// Stats returns the library counters, from cache when possible. Loan
// counters are derived from the record timestamps at call time.
func (s *StatsService) Stats(ctx context.Context) (models.LibraryStats, error) {
	cached, err := s.cacheRepo.Get(ctx)
	if err != nil {
		logger.Log.Errorw("failed to read stats cache", "error", err)
	} else if cached != nil {
		return *cached, nil
	}

	titles, copies, err := s.bookRepo.Counts(ctx)
	if err != nil {
		logger.Log.Errorw("failed to count books", "error", err)
		return models.LibraryStats{}, err
	}

	readers, err := s.userRepo.CountByRole(ctx, models.RoleReader)
	if err != nil {
		logger.Log.Errorw("failed to count readers", "error", err)
		return models.LibraryStats{}, err
	}

	active, overdue, returned, err := s.loanRepo.CountsAt(ctx, time.Now().UTC())
	if err != nil {
		logger.Log.Errorw("failed to count loans", "error", err)
		return models.LibraryStats{}, err
	}

	stats := models.LibraryStats{
		TotalBooks:    titles,
		TotalCopies:   copies,
		TotalReaders:  readers,
		ActiveLoans:   active,
		OverdueLoans:  overdue,
		ReturnedLoans: returned,
	}

	if err := s.cacheRepo.Set(ctx, stats); err != nil {
		logger.Log.Errorw("failed to cache stats", "error", err)
	}

	return stats, nil
}

// Overview returns the public landing page data: the library counters and
// the most recently added books.
func (s *StatsService) Overview(ctx context.Context) (models.LibraryStats, []models.BookDB, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return models.LibraryStats{}, nil, err
	}

	recent, err := s.bookRepo.Recent(ctx, recentBooksLimit)
	if err != nil {
		logger.Log.Errorw("failed to get recent books", "error", err)
		return models.LibraryStats{}, nil, err
	}

	return stats, recent, nil
}

// Dashboard returns the librarian dashboard data: the library counters, the
// most recent borrow records and every currently overdue record.
func (s *StatsService) Dashboard(ctx context.Context) (stats models.LibraryStats, recent, overdue []models.BorrowRecordDetail, err error) {
	stats, err = s.Stats(ctx)
	if err != nil {
		return models.LibraryStats{}, nil, nil, err
	}

	now := time.Now().UTC()

	recent, err = s.loanRepo.Recent(ctx, recentLoansLimit)
	if err != nil {
		logger.Log.Errorw("failed to get recent borrow records", "error", err)
		return models.LibraryStats{}, nil, nil, err
	}
	for i := range recent {
		recent[i].Status = recent[i].StatusAt(now)
	}

	overdue, err = s.loanRepo.ListAll(ctx, models.StatusOverdue, now)
	if err != nil {
		logger.Log.Errorw("failed to get overdue records", "error", err)
		return models.LibraryStats{}, nil, nil, err
	}
	for i := range overdue {
		overdue[i].Status = models.StatusOverdue
	}

	return stats, recent, overdue, nil
}
