package entities

import (
	"errors"
	"testing"
	"time"

	"oficina_xpto/internal/domain/valueobjects"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomerParams() NewCustomerParams {
	return NewCustomerParams{
		ID:       "cust-1",
		Document: "529.982.247-25",
		Name:     "  Maria Souza ",
		Email:    "Maria@Example.com",
		Phone:    "11 98765-4321",
		Address:  "Rua das Flores, 123",
	}
}

func TestNewCustomer(t *testing.T) {
	t.Run("individual derived from cpf", func(t *testing.T) {
		c, err := NewCustomer(validCustomerParams(), t0)
		require.NoError(t, err)

		assert.Equal(t, "Maria Souza", c.Name())
		assert.Equal(t, "maria@example.com", c.Email().String())
		assert.Equal(t, "52998224725", c.Document().String())
		assert.True(t, c.IsIndividual())
		assert.False(t, c.IsCompany())
		assert.Equal(t, t0, c.CreatedAt())
	})

	t.Run("company with cnpj", func(t *testing.T) {
		p := validCustomerParams()
		p.Document = "11.222.333/0001-81"
		p.Type = CustomerTypeCompany
		c, err := NewCustomer(p, t0)
		require.NoError(t, err)
		assert.True(t, c.IsCompany())
	})

	cases := []struct {
		name   string
		mutate func(*NewCustomerParams)
		want   error
	}{
		{"type mismatch", func(p *NewCustomerParams) { p.Type = CustomerTypeCompany }, ErrDocumentTypeMismatch},
		{"unknown type", func(p *NewCustomerParams) { p.Type = "ROBOT" }, ErrInvalidCustomerType},
		{"bad document", func(p *NewCustomerParams) { p.Document = "123" }, valueobjects.ErrInvalidDocument},
		{"bad email", func(p *NewCustomerParams) { p.Email = "nope" }, valueobjects.ErrInvalidEmail},
		{"short name", func(p *NewCustomerParams) { p.Name = " A " }, ErrInvalidName},
		{"short phone", func(p *NewCustomerParams) { p.Phone = "123456789" }, ErrInvalidPhone},
		{"short address", func(p *NewCustomerParams) { p.Address = "Rua A" }, ErrInvalidAddress},
		{"missing id", func(p *NewCustomerParams) { p.ID = "" }, ErrInvalidCustomer},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validCustomerParams()
			tc.mutate(&p)
			_, err := NewCustomer(p, t0)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
		})
	}
}

func TestCustomer_UpdatePersonalInfo(t *testing.T) {
	c, err := NewCustomer(validCustomerParams(), t0)
	require.NoError(t, err)
	later := t0.Add(time.Hour)

	updated, err := c.UpdatePersonalInfo(" Maria S. ", "11912345678", "Av. Paulista, 1000", "gate code 12", later)
	require.NoError(t, err)
	assert.Equal(t, "Maria S.", updated.Name())
	assert.Equal(t, "gate code 12", updated.AdditionalInfo())
	assert.Equal(t, later, updated.UpdatedAt())
	assert.Equal(t, "Maria Souza", c.Name())

	_, err = c.UpdatePersonalInfo("Maria", "1191234", "Av. Paulista, 1000", "", later)
	assert.True(t, errors.Is(err, ErrInvalidPhone))
}

func TestCustomer_ChangeEmail(t *testing.T) {
	c, _ := NewCustomer(validCustomerParams(), t0)

	updated, err := c.ChangeEmail("NEW@mail.com", t0)
	require.NoError(t, err)
	assert.Equal(t, "new@mail.com", updated.Email().String())

	_, err = c.ChangeEmail("broken@", t0)
	assert.True(t, errors.Is(err, valueobjects.ErrInvalidEmail))
}

func TestCustomer_ChangeDocument(t *testing.T) {
	c, _ := NewCustomer(validCustomerParams(), t0)

	updated, err := c.ChangeDocument("111.444.777-35", t0)
	require.NoError(t, err)
	assert.Equal(t, "11144477735", updated.Document().String())

	_, err = c.ChangeDocument("11.222.333/0001-81", t0)
	assert.True(t, errors.Is(err, ErrDocumentTypeMismatch))
	assert.Equal(t, "52998224725", c.Document().String())
}

func TestCustomer_SnapshotRoundTrip(t *testing.T) {
	c, _ := NewCustomer(validCustomerParams(), t0)
	snap := c.Snapshot()
	snap.Version = 2

	restored, err := RestoreCustomer(snap)
	require.NoError(t, err)
	assert.Equal(t, c.Email(), restored.Email())
	assert.Equal(t, c.Document(), restored.Document())
	assert.Equal(t, int64(2), restored.Version())

	snap.Email = "corrupted"
	_, err = RestoreCustomer(snap)
	assert.Error(t, err)
}
