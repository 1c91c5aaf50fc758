package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/fee-details-api/pkg/jwt"
)

const secret = "test-secret"

func TestGenerateParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "company-1", "billing", 5)
	require.NoError(t, err)

	userID, companyID, err := pkgjwt.Parse(secret, "billing", tok)
	require.NoError(t, err)
	assert.Equal(t, "user-1", userID)
	assert.Equal(t, "company-1", companyID)
}

func TestParse_Rechazos(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, "user-1", "company-1", "billing", 5)
	require.NoError(t, err)

	_, _, err = pkgjwt.Parse("otro-secret", "", tok)
	assert.Error(t, err, "firma incorrecta")

	_, _, err = pkgjwt.Parse(secret, "otro-issuer", tok)
	assert.Error(t, err, "issuer distinto")

	expired, err := pkgjwt.Generate(secret, "user-1", "company-1", "", -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(secret, "", expired)
	assert.Error(t, err, "token expirado")

	noCompany, err := pkgjwt.Generate(secret, "user-1", "", "", 5)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(secret, "", noCompany)
	assert.ErrorIs(t, err, pkgjwt.ErrMissingCompany)
}
