package bind_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/warehouse/pkg/bind"
)

type purchase struct {
	ProductID uint `json:"product_id" validate:"required"`
	Leftover  int  `json:"leftover"   validate:"gte=0"`
}

func post(body string) *http.Request {
	return httptest.NewRequest(http.MethodPost, "/purchase", strings.NewReader(body))
}

func TestJSON(t *testing.T) {
	var p purchase
	errs, err := bind.JSON(post(`{"product_id": 3, "leftover": 0}`), &p)
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Equal(t, purchase{ProductID: 3}, p)

	errs, err = bind.JSON(post(`{"leftover": -2}`), &purchase{})
	require.NoError(t, err)
	assert.Contains(t, errs, "product_id")
	assert.Contains(t, errs, "leftover")

	_, err = bind.JSON(post(`{"product_id": "x"`), &purchase{})
	assert.ErrorContains(t, err, "invalid JSON")

	_, err = bind.JSON(post(``), &purchase{})
	assert.ErrorContains(t, err, "empty")
}

func TestJSON_BodyLimit(t *testing.T) {
	bind.SetMaxBodyBytes(16)
	t.Cleanup(func() { bind.SetMaxBodyBytes(0) })

	_, err := bind.JSON(post(`{"product_id": 1, "leftover": 1000000}`), &purchase{})
	assert.ErrorContains(t, err, "too large")
}

func TestQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?id=5&num=-3&bad=abc&zero=0", nil)

	id, err := bind.QueryUint(r, "id")
	require.NoError(t, err)
	assert.Equal(t, uint(5), id)

	_, err = bind.QueryUint(r, "missing")
	assert.Error(t, err)
	_, err = bind.QueryUint(r, "zero")
	assert.Error(t, err)
	_, err = bind.QueryUint(r, "num")
	assert.Error(t, err)

	n, err := bind.OptionalQueryInt(r, "num")
	require.NoError(t, err)
	assert.Equal(t, -3, *n)

	n, err = bind.OptionalQueryInt(r, "missing")
	require.NoError(t, err)
	assert.Nil(t, n)

	_, err = bind.OptionalQueryInt(r, "bad")
	assert.Error(t, err)
}
