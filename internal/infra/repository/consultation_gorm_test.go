package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivafit/vivafit-api/internal/db/dbtest"
	"github.com/vivafit/vivafit-api/internal/domain/account"
	domain "github.com/vivafit/vivafit-api/internal/domain/consultation"
	"github.com/vivafit/vivafit-api/internal/models"
)

type fixture struct {
	repo   *ConsultationGormRepository
	client account.Account
	other  account.Account
	pro    account.Account
	pro2   account.Account
}

func newFixture(t *testing.T) fixture {
	db := dbtest.New(t)

	return fixture{
		repo:   NewConsultationGormRepository(db),
		client: dbtest.CreateAccount(t, db, "John Doe", "user@example.com", account.RoleClient),
		other:  dbtest.CreateAccount(t, db, "Ana Lima", "ana@example.com", account.RoleClient),
		pro:    dbtest.CreateAccount(t, db, "Dr. Jane Smith", "pro@example.com", account.RoleProfessional),
		pro2:   dbtest.CreateAccount(t, db, "Dr. Paulo Reis", "paulo@example.com", account.RoleProfessional),
	}
}

func (f fixture) book(t *testing.T, client, pro account.Account, date, hhmm string, created time.Time) *domain.Consultation {
	t.Helper()

	c, err := domain.NewConsultation(client.Actor(), domain.BookingInput{
		ProfessionalID: pro.ID,
		Date:           date,
		Time:           hhmm,
	}, created)
	require.NoError(t, err)
	require.NoError(t, f.repo.CreateConsultation(context.Background(), c))
	return c
}

func ids(list []domain.Consultation) []string {
	out := make([]string, 0, len(list))
	for _, c := range list {
		out = append(out, c.ID)
	}
	return out
}

func TestListForParticipantIsScoped(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	mine := f.book(t, f.client, f.pro, "2025-01-10", "09:00", now)
	otherPro := f.book(t, f.client, f.pro2, "2025-01-11", "09:00", now)
	otherClient := f.book(t, f.other, f.pro, "2025-01-12", "09:00", now)

	clientList, err := f.repo.ListForParticipant(ctx, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID, otherPro.ID}, ids(clientList))

	proList, err := f.repo.ListForParticipant(ctx, f.pro.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{mine.ID, otherClient.ID}, ids(proList))

	for _, c := range proList {
		assert.True(t, c.HasParty(f.pro.ID))
	}

	none, err := f.repo.ListForParticipant(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListForParticipantOrder(t *testing.T) {
	f := newFixture(t)
	now := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	late := f.book(t, f.client, f.pro, "2025-03-01", "08:00", now)
	afternoon := f.book(t, f.client, f.pro, "2025-02-01", "15:30", now)
	morning := f.book(t, f.client, f.pro, "2025-02-01", "09:00", now)
	tieSecond := f.book(t, f.client, f.pro, "2025-01-15", "10:00", now.Add(time.Minute))
	tieFirst := f.book(t, f.client, f.pro, "2025-01-15", "10:00", now)

	list, err := f.repo.ListForParticipant(context.Background(), f.client.ID)
	require.NoError(t, err)

	assert.Equal(t,
		[]string{tieFirst.ID, tieSecond.ID, morning.ID, afternoon.ID, late.ID},
		ids(list))
}

func TestListLoadsCounterparties(t *testing.T) {
	f := newFixture(t)
	f.book(t, f.client, f.pro, "2025-01-10", "09:00", time.Now())

	list, err := f.repo.ListForParticipant(context.Background(), f.client.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NotNil(t, list[0].Professional)
	assert.Equal(t, "Dr. Jane Smith", list[0].Professional.Name)
	require.NotNil(t, list[0].Client)
	assert.Equal(t, "user@example.com", list[0].Client.Email)
	assert.Empty(t, list[0].Client.PasswordHash)
}

func TestGetForParticipant(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.book(t, f.client, f.pro, "2025-01-10", "09:00", time.Now())

	got, err := f.repo.GetForParticipant(ctx, c.ID, f.pro.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
	assert.Equal(t, domain.StatusScheduled, got.Status)
	assert.Equal(t, "2025-01-10", got.ScheduledDate.Format(domain.DateLayout))

	_, err = f.repo.GetForParticipant(ctx, c.ID, f.pro2.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = f.repo.GetForParticipant(ctx, "missing", f.client.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.book(t, f.client, f.pro, "2025-01-10", "09:00", time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC))

	at := time.Date(2025, 1, 2, 10, 0, 0, 0, time.UTC)
	require.NoError(t, f.repo.UpdateStatus(ctx, c.ID, domain.StatusConfirmed, at))

	got, err := f.repo.GetForParticipant(ctx, c.ID, f.client.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
	assert.True(t, got.UpdatedAt.Equal(at), "updated_at %s", got.UpdatedAt)

	assert.ErrorIs(t, f.repo.UpdateStatus(ctx, "missing", domain.StatusConfirmed, at), domain.ErrNotFound)
}

func TestIsProfessional(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ok, err := f.repo.IsProfessional(ctx, f.pro.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = f.repo.IsProfessional(ctx, f.client.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = f.repo.IsProfessional(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEnsureClientLinkIsIdempotent(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.repo.EnsureClientLink(ctx, f.client.ID, f.pro.ID))
	require.NoError(t, f.repo.EnsureClientLink(ctx, f.client.ID, f.pro.ID))

	var count int64
	require.NoError(t, f.repo.db.Model(&models.ClientLink{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
