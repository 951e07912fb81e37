package ticketing

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"festivalapi/internal/database"
	"festivalapi/internal/domain"
	"festivalapi/internal/repository"
)

func setupService(t *testing.T) *Service {
	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	require.NoError(t, db.Create(&domain.Festival{
		ID:         "FEST-1",
		Name:       "Jazz sous les pommiers",
		Discipline: "Musique",
	}).Error)

	return NewService(repository.NewTicketingRepository(db))
}

func TestService_Create_Defaults(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	batch := &domain.Ticketing{
		Name:         "early-bird",
		FestivalID:   "FEST-1",
		TotalTickets: 100,
	}
	require.NoError(t, service.Create(ctx, batch))

	stored, err := service.Get(ctx, "early-bird")
	require.NoError(t, err)
	assert.Equal(t, uint(100), stored.AvailableTickets)
	assert.Equal(t, domain.TicketingOpen, stored.Status)
	assert.False(t, stored.OpenedAt.IsZero())
}

func TestService_Create_Invalid(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	err := service.Create(ctx, &domain.Ticketing{Name: "no-festival", TotalTickets: 10})
	assert.ErrorIs(t, err, ErrInvalidRequest)

	err = service.Create(ctx, &domain.Ticketing{Name: "no-tickets", FestivalID: "FEST-1"})
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_Book_DecrementsAndDerivesStatus(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, &domain.Ticketing{
		Name:         "standard",
		FestivalID:   "FEST-1",
		TotalTickets: 100,
	}))

	batch, err := service.Book(ctx, "standard", 80)
	require.NoError(t, err)
	assert.Equal(t, uint(20), batch.AvailableTickets)
	assert.Equal(t, domain.TicketingOpen, batch.Status)

	batch, err = service.Book(ctx, "standard", 12)
	require.NoError(t, err)
	assert.Equal(t, uint(8), batch.AvailableTickets)
	assert.Equal(t, domain.TicketingLastPlaces, batch.Status)

	batch, err = service.Book(ctx, "standard", 8)
	require.NoError(t, err)
	assert.Equal(t, uint(0), batch.AvailableTickets)
	assert.Equal(t, domain.TicketingClosed, batch.Status)

	_, err = service.Book(ctx, "standard", 1)
	assert.ErrorIs(t, err, ErrSoldOut)
}

func TestService_Book_Insufficient(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	require.NoError(t, service.Create(ctx, &domain.Ticketing{
		Name:         "small",
		FestivalID:   "FEST-1",
		TotalTickets: 5,
	}))

	_, err := service.Book(ctx, "small", 6)
	assert.ErrorIs(t, err, ErrSoldOut)

	stored, err := service.Get(ctx, "small")
	require.NoError(t, err)
	assert.Equal(t, uint(5), stored.AvailableTickets)
}

func TestService_Book_UnknownBatch(t *testing.T) {
	service := setupService(t)

	_, err := service.Book(context.Background(), "nope", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Book_ZeroCount(t *testing.T) {
	service := setupService(t)

	_, err := service.Book(context.Background(), "standard", 0)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestService_ListByFestival(t *testing.T) {
	service := setupService(t)
	ctx := context.Background()

	for _, name := range []string{"early-bird", "standard"} {
		require.NoError(t, service.Create(ctx, &domain.Ticketing{
			Name:         name,
			FestivalID:   "FEST-1",
			TotalTickets: 10,
		}))
	}

	batches, err := service.ListByFestival(ctx, "FEST-1")
	require.NoError(t, err)
	assert.Len(t, batches, 2)

	batches, err = service.ListByFestival(ctx, "FEST-2")
	require.NoError(t, err)
	assert.Empty(t, batches)
}
