package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pledge-customizer/internal/models"
)

func TestStorage_Packages(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	require.NoError(t, storage.Ping(ctx))
	require.NoError(t, CheckDatabaseReady(ctx, storage))

	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	addPeriod(t, storage, models.PackageProlong, "abo", string(models.PeriodRegular), begin, begin.AddDate(1, 0, 0))
	addPeriod(t, storage, models.PackageProlong, "abo", string(models.PeriodBonus), begin.AddDate(1, 0, 0), begin.AddDate(1, 1, 0))

	tests := []struct {
		name        string
		pkgName     string
		wantOptions []string
		wantErr     error
	}{
		{name: "пакет продления", pkgName: models.PackageProlong, wantOptions: []string{"abo", "benefactor"}},
		{name: "подарок месяцев", pkgName: models.PackageAboGiveMonths, wantOptions: []string{"months", "notebook"}},
		{name: "неизвестный пакет", pkgName: "UNKNOWN", wantErr: ErrPackageNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, err := storage.GetPackage(ctx, tt.pkgName)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			templates := make([]string, 0, len(pkg.Options))
			for _, o := range pkg.Options {
				templates = append(templates, o.TemplateID)
			}
			assert.Equal(t, tt.wantOptions, templates)
		})
	}

	prolong, err := storage.GetPackage(ctx, models.PackageProlong)
	require.NoError(t, err)
	abo := prolong.Options[0]
	assert.True(t, abo.UserPrice)
	assert.Equal(t, "MEMBER", abo.OptionGroup)
	require.NotNil(t, abo.DefaultAmount)
	assert.Equal(t, 1, *abo.DefaultAmount)
	require.NotNil(t, abo.Reward)
	assert.True(t, abo.Reward.IsMembership())
	assert.Equal(t, "year", abo.Reward.Interval)
	require.Len(t, abo.AdditionalPeriods, 2)
	assert.Equal(t, models.PeriodRegular, abo.AdditionalPeriods[0].Kind)
	assert.True(t, begin.Equal(abo.AdditionalPeriods[0].BeginDate))

	donate, err := storage.GetPackage(ctx, models.PackageDonate)
	require.NoError(t, err)
	assert.Nil(t, donate.Options[0].Reward)
	assert.Nil(t, donate.Options[0].DefaultAmount)

	all, err := storage.ListPackages(ctx)
	require.NoError(t, err)
	require.Len(t, all, 7)
	assert.Equal(t, "ABO", all[0].Name)
	assert.NotEmpty(t, all[0].Options)
}

func TestStorage_Pledges(t *testing.T) {
	storage := setupTestDatabase(t)
	ctx := context.Background()

	pkg, err := storage.GetPackage(ctx, "ABO")
	require.NoError(t, err)

	pledge := &models.Pledge{
		ID:          uuid.New(),
		PackageID:   pkg.ID,
		PackageName: pkg.Name,
		Total:       28000,
		Email:       "anna@example.com",
		Status:      models.PledgeSubmitted,
		Options: []models.PledgeOption{
			{OptionID: pkg.Options[0].ID, TemplateID: "abo", Amount: 1, Periods: 1, Price: 24000},
			{OptionID: pkg.Options[1].ID, TemplateID: "notebook", Amount: 2, Periods: 1, Price: 2000},
		},
	}
	require.NoError(t, storage.CreatePledge(ctx, pledge))
	assert.False(t, pledge.CreatedAt.IsZero())

	got, err := storage.GetPledge(ctx, pledge.ID)
	require.NoError(t, err)
	assert.Equal(t, pledge.ID, got.ID)
	assert.Equal(t, 28000, got.Total)
	assert.Equal(t, "anna@example.com", got.Email)
	assert.Equal(t, pledge.Options, got.Options)

	_, err = storage.GetPledge(ctx, uuid.New())
	assert.ErrorIs(t, err, ErrPledgeNotFound)

	duplicate := *pledge
	err = storage.CreatePledge(ctx, &duplicate)
	assert.Error(t, err)
}
