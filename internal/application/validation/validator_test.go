package validation_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockmate-api/internal/application/dto"
	"github.com/jhoicas/stockmate-api/internal/application/validation"
	"github.com/jhoicas/stockmate-api/internal/domain"
)

func intPtr(n int) *int { return &n }

func TestStruct_DTOValido(t *testing.T) {
	in := dto.CreateWarehouseRequest{Name: "Central", Location: "Bogotá", Capacity: intPtr(100)}
	assert.NoError(t, validation.Struct(in))
}

func TestStruct_CamposFaltantes(t *testing.T) {
	err := validation.Struct(dto.CreateWarehouseRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	fields := make([]string, 0, len(verr.Fields))
	for _, f := range verr.Fields {
		fields = append(fields, f.Field)
	}
	assert.ElementsMatch(t, []string{"name", "location", "capacity"}, fields)
}

func TestStruct_BulkUsaRutaJSON(t *testing.T) {
	in := dto.BulkUpdateQuantitiesRequest{Updates: []dto.QuantityUpdate{{ID: "a", Quantity: intPtr(-1)}}}
	err := validation.Struct(in)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "updates[0].quantity", verr.Fields[0].Field)
}

func TestStruct_BulkVacio(t *testing.T) {
	err := validation.Struct(dto.BulkUpdateQuantitiesRequest{Updates: []dto.QuantityUpdate{}})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestEmail(t *testing.T) {
	assert.True(t, validation.Email("tienda@example.com"))
	assert.False(t, validation.Email("no-es-email"))
	assert.False(t, validation.Email(""))
}

func TestStruct_TopesDeEnteroYEmail(t *testing.T) {
	assert.NoError(t, validation.Struct(dto.CreateWarehouseRequest{Name: "Central", Location: "Cali", Capacity: intPtr(2147483647)}))
	assert.ErrorIs(t, validation.Struct(dto.CreateWarehouseRequest{Name: "Central", Location: "Cali", Capacity: intPtr(5000000000)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, validation.Struct(dto.UpdateWarehouseRequest{Capacity: intPtr(2147483648)}), domain.ErrInvalidInput)
	assert.ErrorIs(t, validation.Struct(dto.UpdateQuantityRequest{Quantity: intPtr(3000000000)}), domain.ErrInvalidInput)

	in := dto.BulkUpdateQuantitiesRequest{Updates: []dto.QuantityUpdate{{ID: "a", Quantity: intPtr(2147483648)}}}
	var verr *validation.Error
	require.True(t, errors.As(validation.Struct(in), &verr))
	assert.Equal(t, "updates[0].quantity", verr.Fields[0].Field)

	long := strings.Repeat("a", 311) + "@tienda.co" // 321 caracteres
	assert.ErrorIs(t, validation.Struct(dto.EmailRequest{Email: long}), domain.ErrInvalidInput)
	assert.ErrorIs(t, validation.Struct(dto.LoginRequest{Email: long, Password: "x"}), domain.ErrInvalidInput)
	assert.NoError(t, validation.Struct(dto.EmailRequest{Email: "a@tienda.co"}))
}
