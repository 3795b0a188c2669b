package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest("GET", "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetUserIDAcceptsJWTClaimTypes(t *testing.T) {
	cases := []struct {
		name string
		val  interface{}
		want uint64
	}{
		{"float64 claim", float64(42), 42},
		{"uint64", uint64(7), 7},
		{"int", 3, 3},
		{"int64", int64(9), 9},
		{"numeric string", "15", 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := testContext(t)
			c.Set("user_id", tc.val)
			got, err := getUserID(c)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestGetUserIDRejectsMissingOrBogus(t *testing.T) {
	c := testContext(t)
	_, err := getUserID(c)
	assert.Error(t, err)

	c.Set("user_id", "not-a-number")
	_, err = getUserID(c)
	assert.Error(t, err)
}

func TestPathID(t *testing.T) {
	c := testContext(t)
	c.SetParamNames("id")
	c.SetParamValues("12")
	id, err := pathID(c, "id")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), id)

	c.SetParamValues("0")
	_, err = pathID(c, "id")
	assert.Error(t, err)

	c.SetParamValues("abc")
	_, err = pathID(c, "id")
	assert.Error(t, err)
}
