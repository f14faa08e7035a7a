package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactbook/internal/country/models"
	"contactbook/internal/country/store"
	dErrors "contactbook/pkg/domain-errors"
)

func newService() *Service {
	return New(store.NewInMemory(), nil)
}

func TestAddCountry_NilRequest(t *testing.T) {
	svc := newService()
	_, err := svc.AddCountry(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeBadRequest))
}

func TestAddCountry_MissingName(t *testing.T) {
	svc := newService()
	_, err := svc.AddCountry(context.Background(), &models.AddCountryRequest{})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeValidation))
}

func TestAddCountry_DuplicateName(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	_, err := svc.AddCountry(ctx, &models.AddCountryRequest{CountryName: "Japan"})
	require.NoError(t, err)

	_, err = svc.AddCountry(ctx, &models.AddCountryRequest{CountryName: "Japan"})
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
}

func TestAddCountry_AppearsInGetAllCountries(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	created, err := svc.AddCountry(ctx, &models.AddCountryRequest{CountryName: "Japan"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.CountryID)

	all, err := svc.GetAllCountries(ctx)
	require.NoError(t, err)
	assert.Contains(t, all, created)
}

func TestGetAllCountries_EmptyStore(t *testing.T) {
	svc := newService()
	all, err := svc.GetAllCountries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetCountryByCountryID(t *testing.T) {
	svc := newService()
	ctx := context.Background()

	t.Run("nil id returns nil", func(t *testing.T) {
		resp, err := svc.GetCountryByCountryID(ctx, nil)
		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("miss returns nil, not an error", func(t *testing.T) {
		id := uuid.New()
		resp, err := svc.GetCountryByCountryID(ctx, &id)
		require.NoError(t, err)
		assert.Nil(t, resp)
	})

	t.Run("hit returns the projection", func(t *testing.T) {
		created, err := svc.AddCountry(ctx, &models.AddCountryRequest{CountryName: "Brazil"})
		require.NoError(t, err)

		resp, err := svc.GetCountryByCountryID(ctx, &created.CountryID)
		require.NoError(t, err)
		assert.Equal(t, created, resp)
	})
}
