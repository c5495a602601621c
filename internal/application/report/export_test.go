package report

import (
	"bytes"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToFlatRowsEmptyInput(t *testing.T) {
	rows := ToFlatRows(nil, nil, nil)
	assert.Equal(t, []map[string]string{}, rows)

	rows = ToFlatRows([]map[string]interface{}{}, []Column{{Header: "A", Field: "a"}}, nil)
	assert.Equal(t, []map[string]string{}, rows)
}

func TestToFlatRowsNilBecomesNA(t *testing.T) {
	rows := ToFlatRows([]map[string]interface{}{
		{"a": nil, "b": 1},
	}, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, map[string]string{"a": "N/A", "b": "1"}, rows[0])
}

func TestToFlatRowsMissingFieldBecomesNA(t *testing.T) {
	columns := []Column{
		{Header: "ID", Field: "id"},
		{Header: "Coupon", Field: "coupon_code"},
	}

	rows := ToFlatRows([]map[string]interface{}{{"id": "b1"}}, columns, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "b1", rows[0]["id"])
	assert.Equal(t, "N/A", rows[0]["coupon_code"])
}

func TestToFlatRowsValueCoercion(t *testing.T) {
	rows := ToFlatRows([]map[string]interface{}{
		{
			"count":   int64(7),
			"price":   149.5,
			"whole":   100.0,
			"active":  true,
			"checkin": time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		},
	}, nil, nil)

	require.Len(t, rows, 1)
	assert.Equal(t, "7", rows[0]["count"])
	assert.Equal(t, "149.5", rows[0]["price"])
	assert.Equal(t, "100", rows[0]["whole"])
	assert.Equal(t, "true", rows[0]["active"])
	assert.Equal(t, "2024-06-01", rows[0]["checkin"])
}

func TestToFlatRowsCurrencyFormatter(t *testing.T) {
	columns := []Column{
		{Header: "Booking", Field: "id"},
		{Header: "Amount", Field: "final_price", Currency: true},
	}
	inr := func(amount float64) string { return fmt.Sprintf("₹%.2f", amount) }

	rows := ToFlatRows([]map[string]interface{}{
		{"id": "b1", "final_price": 1200.0},
		{"id": "b2", "final_price": nil},
	}, columns, inr)

	require.Len(t, rows, 2)
	assert.Equal(t, "₹1200.00", rows[0]["final_price"])
	assert.Equal(t, "N/A", rows[1]["final_price"])
}

func TestWriteCSV(t *testing.T) {
	columns := []Column{
		{Header: "Booking ID", Field: "id"},
		{Header: "Customer", Field: "user_name"},
	}
	rows := []map[string]string{
		{"id": "b1", "user_name": "Priya Shah"},
		{"id": "b2"},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, columns, rows)

	require.NoError(t, err)
	assert.Equal(t, "Booking ID,Customer\nb1,Priya Shah\nb2,N/A\n", buf.String())
}

func TestWriteCSVNoRowsHeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCSV(&buf, []Column{{Header: "ID", Field: "id"}}, nil)

	require.NoError(t, err)
	assert.Equal(t, "ID\n", buf.String())
}
