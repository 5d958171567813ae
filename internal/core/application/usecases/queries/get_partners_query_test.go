package queries_test

import (
	"testing"

	"campusdrop/internal/core/application/usecases/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetPartnersQuery_Valid(t *testing.T) {
	query := queries.NewGetPartnersQuery()
	err := query.Validate()
	require.NoError(t, err)
}

func TestGetPartnersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetPartnersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetPartnersQueryIsNotConstructed)
}
